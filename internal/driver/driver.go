package driver

import (
	"log"
	"math"
	"sync/atomic"
	"time"

	"github.com/Speshl/gorrc_vesc/internal/config"
	"github.com/Speshl/gorrc_vesc/internal/limit"
	"github.com/Speshl/gorrc_vesc/internal/models"
	"github.com/Speshl/gorrc_vesc/internal/vesc"
)

// Feasible bounds per channel. The controller accepts any value on the
// remaining channels, though its own configuration may restrict them
// further.
const (
	DutyCycleFeasibleMin = -1.0
	DutyCycleFeasibleMax = 1.0
	ServoFeasibleMin     = 0.0
	ServoFeasibleMax     = 1.0
)

const radToDeg = 180.0 / math.Pi

type Mode int32

const (
	ModeInitializing Mode = iota
	ModeOperating
)

func (m Mode) String() string {
	switch m {
	case ModeInitializing:
		return "initializing"
	case ModeOperating:
		return "operating"
	default:
		return "unknown"
	}
}

type StatePublisher func(models.VescStateStamped)
type ServoPublisher func(models.ServoState)

// Driver gates the six command channels behind the startup state machine
// and clamps each through its channel limit before touching the hardware.
// Command handlers and the tick loop run on separate goroutines, so mode
// and the telemetry latch are atomics.
type Driver struct {
	vesc   vesc.VescIFace
	vescID uint8

	mode          atomic.Int32
	stateReceived atomic.Bool

	dutyCycleLimit *limit.CommandLimit
	currentLimit   *limit.CommandLimit
	brakeLimit     *limit.CommandLimit
	speedLimit     *limit.CommandLimit
	positionLimit  *limit.CommandLimit
	servoLimit     *limit.CommandLimit

	publishState StatePublisher
	publishServo ServoPublisher
}

func NewDriver(cfg config.LimitConfig, vescID uint8, v vesc.VescIFace, publishState StatePublisher, publishServo ServoPublisher) *Driver {
	dutyMin := DutyCycleFeasibleMin
	dutyMax := DutyCycleFeasibleMax
	servoMin := ServoFeasibleMin
	servoMax := ServoFeasibleMax

	d := &Driver{
		vesc:   v,
		vescID: vescID,

		dutyCycleLimit: limit.New("duty_cycle", &dutyMin, &dutyMax, cfg.DutyCycleMin, cfg.DutyCycleMax),
		currentLimit:   limit.New("current", nil, nil, cfg.CurrentMin, cfg.CurrentMax),
		brakeLimit:     limit.New("brake", nil, nil, cfg.BrakeMin, cfg.BrakeMax),
		speedLimit:     limit.New("speed", nil, nil, cfg.SpeedMin, cfg.SpeedMax),
		positionLimit:  limit.New("position", nil, nil, cfg.PositionMin, cfg.PositionMax),
		servoLimit:     limit.New("servo", &servoMin, &servoMax, cfg.ServoMin, cfg.ServoMax),

		publishState: publishState,
		publishServo: publishServo,
	}
	d.mode.Store(int32(ModeInitializing))

	v.SetStateCallback(d.HandleState)
	return d
}

func (d *Driver) Mode() Mode {
	return Mode(d.mode.Load())
}

func (d *Driver) operating() bool {
	return d.Mode() == ModeOperating
}

// Tick advances the startup state machine. Commands are dropped until the
// first telemetry sample proves the controller is alive; once operating the
// driver never goes back.
func (d *Driver) Tick() {
	switch d.Mode() {
	case ModeInitializing:
		if d.stateReceived.Load() {
			d.mode.Store(int32(ModeOperating))
			log.Println("VESC driver initialized")
		}
	case ModeOperating:
		// reserved for transport liveness checks
	default:
		log.Panicf("unknown driver mode: %d", d.mode.Load())
	}
}

// HandleState receives a telemetry sample from the hardware, latches that
// telemetry has arrived, and republishes the stamped bus form.
func (d *Driver) HandleState(state vesc.State) {
	d.stateReceived.Store(true)
	d.publishState(models.VescStateStamped{
		TimeStamp: time.Now().UnixMilli(),
		State:     d.mapState(state),
	})
}

func (d *Driver) SetDutyCycle(value float64) {
	if !d.operating() {
		return
	}
	d.vesc.SetDutyCycle(d.dutyCycleLimit.Clip(value))
}

func (d *Driver) SetCurrent(value float64) {
	if !d.operating() {
		return
	}
	d.vesc.SetCurrent(d.currentLimit.Clip(value))
}

func (d *Driver) SetBrake(value float64) {
	if !d.operating() {
		return
	}
	d.vesc.SetBrake(d.brakeLimit.Clip(value))
}

func (d *Driver) SetSpeed(value float64) {
	if !d.operating() {
		return
	}
	d.vesc.SetSpeed(d.speedLimit.Clip(value))
}

// SetPosition takes radians; bounds are radian-denominated, so the value is
// clipped first and converted to the controller's degrees after.
func (d *Driver) SetPosition(value float64) {
	if !d.operating() {
		return
	}
	d.vesc.SetPosition(d.positionLimit.Clip(value) * radToDeg)
}

// SetServo forwards the clipped value and republishes it so downstream
// consumers can observe what was actually commanded.
func (d *Driver) SetServo(value float64) {
	if !d.operating() {
		return
	}
	clipped := d.servoLimit.Clip(value)
	d.vesc.SetServo(clipped)
	d.publishServo(models.ServoState{
		Position:  clipped,
		TimeStamp: time.Now().UnixMilli(),
	})
}

func (d *Driver) mapState(state vesc.State) models.VescState {
	// avg_id/avg_iq/avg_vd/avg_vq, fault_code, and distance_traveled stay
	// zero; the status broadcasts do not carry them.
	return models.VescState{
		VoltageInput: state.VoltageInput,
		CurrentMotor: state.CurrentMotor,
		CurrentInput: state.CurrentInput,
		DutyCycle:    state.DutyCycle,
		Speed:        state.Speed,
		ChargeDrawn:  state.ChargeDrawn,
		ChargeRegen:  state.ChargeRegen,
		EnergyDrawn:  state.EnergyDrawn,
		EnergyRegen:  state.EnergyRegen,
		Displacement: state.Displacement,
		PidPosNow:    state.PidPosition,
		ControllerId: d.vescID,

		// one PCB sensor fanned out to the three NTC fields
		NtcTempMos1: state.TemperaturePCB,
		NtcTempMos2: state.TemperaturePCB,
		NtcTempMos3: state.TemperaturePCB,
	}
}
