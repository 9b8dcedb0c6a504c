package vesc

import (
	"encoding/binary"
	"math"
)

// CAN packet ids from the VESC firmware. Command frames use an extended id
// of (packet<<8)|controllerID with a big endian scaled integer payload.
const (
	packetSetDuty            uint32 = 0
	packetSetCurrent         uint32 = 1
	packetSetCurrentBrake    uint32 = 2
	packetSetRPM             uint32 = 3
	packetSetPos             uint32 = 4
	packetProcessShortBuffer uint32 = 8
	packetStatus             uint32 = 9
	packetStatus2            uint32 = 14
	packetStatus3            uint32 = 15
	packetStatus4            uint32 = 16
	packetStatus5            uint32 = 27
)

// COMM command forwarded through a short buffer frame. The VESC has no
// dedicated CAN packet for the servo output.
const commSetServoPos byte = 12

// Payload scale factors.
const (
	dutyScale     = 1e5
	currentScale  = 1e3
	positionScale = 1e6
	servoScale    = 1e3

	statusCurrentScale = 10.0
	statusDutyScale    = 1000.0
	chargeScale        = 1e4
	energyScale        = 1e4
	tempScale          = 10.0
	pidPosScale        = 50.0
	voltageScale       = 10.0
)

func commandID(packet uint32, controllerID uint8) uint32 {
	return packet<<8 | uint32(controllerID)
}

func encodeInt32(value float64) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(int32(math.Round(value))))
	return buf
}

// servoPayload wraps a COMM_SET_SERVO_POS command in a short buffer frame:
// sender id, process flag, command id, then the position scaled to uint16.
func servoPayload(senderID uint8, value float64) []byte {
	scaled := uint16(math.Round(value * servoScale))
	return []byte{senderID, 0x00, commSetServoPos, byte(scaled >> 8), byte(scaled)}
}

func decodeInt32(data []byte) int32 {
	return int32(binary.BigEndian.Uint32(data))
}

func decodeInt16(data []byte) int16 {
	return int16(binary.BigEndian.Uint16(data))
}

// applyStatus merges one status broadcast into state. It reports whether the
// packet id was a known status frame with a complete payload.
func applyStatus(state *State, packet uint32, data []byte) bool {
	switch packet {
	case packetStatus:
		if len(data) < 8 {
			return false
		}
		state.Speed = float64(decodeInt32(data[0:4]))
		state.CurrentMotor = float64(decodeInt16(data[4:6])) / statusCurrentScale
		state.DutyCycle = float64(decodeInt16(data[6:8])) / statusDutyScale
	case packetStatus2:
		if len(data) < 8 {
			return false
		}
		state.ChargeDrawn = float64(decodeInt32(data[0:4])) / chargeScale
		state.ChargeRegen = float64(decodeInt32(data[4:8])) / chargeScale
	case packetStatus3:
		if len(data) < 8 {
			return false
		}
		state.EnergyDrawn = float64(decodeInt32(data[0:4])) / energyScale
		state.EnergyRegen = float64(decodeInt32(data[4:8])) / energyScale
	case packetStatus4:
		if len(data) < 8 {
			return false
		}
		state.TemperaturePCB = float64(decodeInt16(data[0:2])) / tempScale
		state.CurrentInput = float64(decodeInt16(data[4:6])) / statusCurrentScale
		state.PidPosition = float64(decodeInt16(data[6:8])) / pidPosScale
	case packetStatus5:
		if len(data) < 6 {
			return false
		}
		state.Displacement = float64(decodeInt32(data[0:4]))
		state.VoltageInput = float64(decodeInt16(data[4:6])) / voltageScale
	default:
		return false
	}
	return true
}
