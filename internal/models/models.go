package models

import (
	"github.com/google/uuid"
)

type ConnectReq struct {
	Key      string `json:"key"`
	Password string `json:"password"`
}

type ConnectResp struct {
	Car Car
}

type Car struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	ShortName string    `json:"short_name"`
	Type      string    `json:"type"`
}

// CommandMsg carries one raw command value for a single channel.
type CommandMsg struct {
	Value     float64 `json:"value"`
	TimeStamp int64   `json:"time_stamp"`
}

// VescState mirrors the controller telemetry sample as published on the bus.
type VescState struct {
	VoltageInput     float64 `json:"voltage_input"`
	CurrentMotor     float64 `json:"current_motor"`
	CurrentInput     float64 `json:"current_input"`
	AvgId            float64 `json:"avg_id"`
	AvgIq            float64 `json:"avg_iq"`
	DutyCycle        float64 `json:"duty_cycle"`
	Speed            float64 `json:"speed"`
	ChargeDrawn      float64 `json:"charge_drawn"`
	ChargeRegen      float64 `json:"charge_regen"`
	EnergyDrawn      float64 `json:"energy_drawn"`
	EnergyRegen      float64 `json:"energy_regen"`
	Displacement     float64 `json:"displacement"`
	DistanceTraveled float64 `json:"distance_traveled"`
	FaultCode        int     `json:"fault_code"`
	PidPosNow        float64 `json:"pid_pos_now"`
	ControllerId     uint8   `json:"controller_id"`
	NtcTempMos1      float64 `json:"ntc_temp_mos1"`
	NtcTempMos2      float64 `json:"ntc_temp_mos2"`
	NtcTempMos3      float64 `json:"ntc_temp_mos3"`
	AvgVd            float64 `json:"avg_vd"`
	AvgVq            float64 `json:"avg_vq"`
}

type VescStateStamped struct {
	TimeStamp int64     `json:"time_stamp"`
	State     VescState `json:"state"`
}

// ServoState reports the servo position actually commanded after clipping.
// The controller's telemetry does not include it, so the driver publishes it
// as a sensor-like signal.
type ServoState struct {
	Position  float64 `json:"position"`
	TimeStamp int64   `json:"time_stamp"`
}

// LinkStats reports CAN interface packet counters from procfs.
type LinkStats struct {
	Interface string `json:"interface"`
	RxPackets uint64 `json:"rx_packets"`
	RxErrors  uint64 `json:"rx_errors"`
	RxDropped uint64 `json:"rx_dropped"`
	TxPackets uint64 `json:"tx_packets"`
	TxErrors  uint64 `json:"tx_errors"`
	TxDropped uint64 `json:"tx_dropped"`
	TimeStamp int64  `json:"time_stamp"`
}

type Ping struct {
	Source    string `json:"source"`
	TimeStamp int64  `json:"time_stamp"`
}
