package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

func GetConfig() Config {
	cfg := Config{
		ServerCfg: GetServerConfig(),
		VescCfg:   GetVescConfig(),
		LimitCfg:  GetLimitConfig(),
	}

	log.Printf("app Config: \n%+v\n", cfg)
	return cfg
}

func GetServerConfig() ServerConfig {
	return ServerConfig{
		Server:   GetStringEnv("SERVER", DefaultServer),
		Key:      GetSecretEnv("VESCKEY", DefaultKey),
		Password: GetSecretEnv("VESCPASSWORD", DefaultPassword),
	}
}

func GetVescConfig() VescConfig {
	return VescConfig{
		Port:   GetStringEnv("PORT", DefaultPort),
		VescID: uint8(GetIntEnv("VESCID", DefaultVescID)),
	}
}

func GetLimitConfig() LimitConfig {
	return LimitConfig{
		DutyCycleMin: GetOptFloatEnv("DUTY_CYCLE_MIN"),
		DutyCycleMax: GetOptFloatEnv("DUTY_CYCLE_MAX"),
		CurrentMin:   GetOptFloatEnv("CURRENT_MIN"),
		CurrentMax:   GetOptFloatEnv("CURRENT_MAX"),
		BrakeMin:     GetOptFloatEnv("BRAKE_MIN"),
		BrakeMax:     GetOptFloatEnv("BRAKE_MAX"),
		SpeedMin:     GetOptFloatEnv("SPEED_MIN"),
		SpeedMax:     GetOptFloatEnv("SPEED_MAX"),
		PositionMin:  GetOptFloatEnv("POSITION_MIN"),
		PositionMax:  GetOptFloatEnv("POSITION_MAX"),
		ServoMin:     GetOptFloatEnv("SERVO_MIN"),
		ServoMax:     GetOptFloatEnv("SERVO_MAX"),
	}
}

func GetIntEnv(env string, defaultValue int) int {
	envValue, found := os.LookupEnv(AppEnvBase + env)
	if !found {
		return defaultValue
	} else {
		value, err := strconv.ParseInt(strings.Trim(envValue, "\r"), 0, 32)
		if err != nil {
			log.Printf("warning:%s not parsed - error: %s\n", env, err)
			return defaultValue
		} else {
			return int(value)
		}
	}
}

func GetBoolEnv(env string, defaultValue bool) bool {
	envValue, found := os.LookupEnv(AppEnvBase + env)
	if !found {
		return defaultValue
	} else {
		value, err := strconv.ParseBool(strings.Trim(envValue, "\r"))
		if err != nil {
			log.Printf("warning:%s not parsed - error: %s\n", env, err)
			return defaultValue
		} else {
			return value
		}
	}
}

func GetStringEnv(env string, defaultValue string) string {
	envValue, found := os.LookupEnv(AppEnvBase + env)
	if !found {
		return defaultValue
	} else {
		return strings.ToLower(strings.Trim(envValue, "\r"))
	}
}

func GetFloatEnv(env string, defaultValue float64) float64 {
	envValue, found := os.LookupEnv(AppEnvBase + env)
	if !found {
		return defaultValue
	} else {
		value, err := strconv.ParseFloat(envValue, 64)
		if err != nil {
			return defaultValue
		}
		return value
	}
}

// GetSecretEnv preserves case, for keys and passwords.
func GetSecretEnv(env string, defaultValue string) string {
	envValue, found := os.LookupEnv(AppEnvBase + env)
	if !found {
		return defaultValue
	}
	return strings.Trim(envValue, "\r")
}

// GetOptFloatEnv returns nil when the variable is unset or unparseable, so
// an absent bound stays absent instead of becoming a sentinel number.
func GetOptFloatEnv(env string) *float64 {
	envValue, found := os.LookupEnv(AppEnvBase + env)
	if !found {
		return nil
	}
	value, err := strconv.ParseFloat(strings.Trim(envValue, "\r"), 64)
	if err != nil {
		log.Printf("warning:%s not parsed - error: %s\n", env, err)
		return nil
	}
	return &value
}
