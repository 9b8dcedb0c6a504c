package config

const (
	AppEnvBase = "GOVESC_"

	DefaultServer   = "127.0.0.1:8181"
	DefaultKey      = "0f9c31a1-5bc7-4f4d-9f2e-3a7b1d2c8e90" //TODO Remove after testing
	DefaultPassword = ""

	// Default VESC Options
	DefaultPort   = "can0"
	DefaultVescID = 0x68
)

type Config struct {
	ServerCfg ServerConfig
	VescCfg   VescConfig
	LimitCfg  LimitConfig
}

type ServerConfig struct {
	Server   string
	Key      string
	Password string
}

type VescConfig struct {
	Port   string
	VescID uint8
}

// LimitConfig holds the user configured command bounds. A nil field means
// the bound was not set and the channel's feasible bound (if any) applies.
type LimitConfig struct {
	DutyCycleMin *float64
	DutyCycleMax *float64
	CurrentMin   *float64
	CurrentMax   *float64
	BrakeMin     *float64
	BrakeMax     *float64
	SpeedMin     *float64
	SpeedMax     *float64
	PositionMin  *float64
	PositionMax  *float64
	ServoMin     *float64
	ServoMax     *float64
}
