package vesc

// State is one telemetry sample aggregated from the controller's periodic
// status broadcasts.
type State struct {
	VoltageInput   float64
	TemperaturePCB float64
	CurrentMotor   float64
	CurrentInput   float64
	Speed          float64
	DutyCycle      float64
	ChargeDrawn    float64
	ChargeRegen    float64
	EnergyDrawn    float64
	EnergyRegen    float64
	Displacement   float64
	PidPosition    float64
}

type StateUpdateFunc func(State)

// VescIFace is the hardware side of the driver. Set calls are fire and
// forget; transport errors are logged by the implementation and never
// surfaced to the caller.
type VescIFace interface {
	Connect(port string, controllerID uint8) error
	Close() error
	SetStateCallback(callback StateUpdateFunc)

	SetDutyCycle(value float64)
	SetCurrent(value float64)
	SetBrake(value float64)
	SetSpeed(value float64)
	SetPosition(value float64)
	SetServo(value float64)
}
