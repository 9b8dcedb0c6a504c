package vesc

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-daq/canbus"
)

// ClientID is this driver's node id on the CAN bus, used as the sender id
// in short buffer frames.
const ClientID uint8 = 0x00

// recvRetryDelay paces retries after a failed socket read.
const recvRetryDelay = 100 * time.Millisecond

// Can drives a single VESC over a SocketCAN interface.
type Can struct {
	sock         *canbus.Socket
	controllerID uint8

	lock     sync.Mutex
	callback StateUpdateFunc
	state    State
	closed   bool
}

func NewCan() *Can {
	return &Can{}
}

// SetStateCallback registers the telemetry callback. Must be called before
// Connect; the callback runs on the socket reader goroutine.
func (c *Can) SetStateCallback(callback StateUpdateFunc) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.callback = callback
}

func (c *Can) Connect(port string, controllerID uint8) error {
	sock, err := canbus.New()
	if err != nil {
		return fmt.Errorf("error creating can socket - %w", err)
	}

	err = sock.Bind(port)
	if err != nil {
		return fmt.Errorf("error binding can socket to %s - %w", port, err)
	}

	c.sock = sock
	c.controllerID = controllerID

	go c.readLoop()
	return nil
}

func (c *Can) Close() error {
	c.lock.Lock()
	c.closed = true
	c.lock.Unlock()
	if c.sock == nil {
		return nil
	}
	return c.sock.Close()
}

func (c *Can) SetDutyCycle(value float64) {
	c.send(packetSetDuty, encodeInt32(value*dutyScale))
}

func (c *Can) SetCurrent(value float64) {
	c.send(packetSetCurrent, encodeInt32(value*currentScale))
}

func (c *Can) SetBrake(value float64) {
	c.send(packetSetCurrentBrake, encodeInt32(value*currentScale))
}

func (c *Can) SetSpeed(value float64) {
	c.send(packetSetRPM, encodeInt32(value))
}

// SetPosition commands the motor position in degrees. The VESC must be in
// encoder mode for this to have an effect.
func (c *Can) SetPosition(value float64) {
	c.send(packetSetPos, encodeInt32(value*positionScale))
}

func (c *Can) SetServo(value float64) {
	c.send(packetProcessShortBuffer, servoPayload(ClientID, value))
}

func (c *Can) send(packet uint32, data []byte) {
	_, err := c.sock.Send(canbus.Frame{
		ID:   commandID(packet, c.controllerID),
		Data: data,
		Kind: canbus.EFF,
	})
	if err != nil {
		log.Printf("error sending can frame 0x%x - %s\n", commandID(packet, c.controllerID), err.Error())
	}
}

func (c *Can) readLoop() {
	for {
		frame, err := c.sock.Recv()
		if err != nil {
			if c.recvFailed(err) {
				return
			}
			continue
		}
		c.handleFrame(frame)
	}
}

// recvFailed reports whether the read loop should stop. A transient receive
// error is logged and retried after a short backoff so telemetry recovers
// instead of dying silently while commands keep flowing.
func (c *Can) recvFailed(err error) bool {
	c.lock.Lock()
	closed := c.closed
	c.lock.Unlock()
	if closed {
		return true
	}
	log.Printf("error reading can frame - %s\n", err.Error())
	time.Sleep(recvRetryDelay)
	return false
}

func (c *Can) handleFrame(frame canbus.Frame) {
	if frame.Kind != canbus.EFF {
		return
	}
	if uint8(frame.ID&0xFF) != c.controllerID {
		return
	}

	c.lock.Lock()
	updated := applyStatus(&c.state, frame.ID>>8, frame.Data)
	state := c.state
	callback := c.callback
	c.lock.Unlock()

	if updated && callback != nil {
		callback(state)
	}
}
