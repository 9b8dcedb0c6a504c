package vesc

import (
	"errors"
	"testing"

	"github.com/go-daq/canbus"
	"github.com/stretchr/testify/assert"
)

func frameFor(packet uint32, sender uint8, data []byte) canbus.Frame {
	return canbus.Frame{
		ID:   packet<<8 | uint32(sender),
		Data: data,
		Kind: canbus.EFF,
	}
}

func TestRecvFailedRetriesWhileOpen(t *testing.T) {
	c := NewCan()

	assert.False(t, c.recvFailed(errors.New("read: transient")))
	assert.False(t, c.recvFailed(errors.New("read: transient")))
}

func TestRecvFailedStopsAfterClose(t *testing.T) {
	c := NewCan()
	c.closed = true

	assert.True(t, c.recvFailed(errors.New("use of closed file")))
}

func TestHandleFrameIgnoresOtherNodes(t *testing.T) {
	var got []State
	c := NewCan()
	c.controllerID = 0x68
	c.SetStateCallback(func(s State) { got = append(got, s) })

	// status frame from a different controller id
	c.handleFrame(frameFor(packetStatus, 0x23, []byte{0x00, 0x00, 0x0B, 0xB8, 0x00, 0x7D, 0x00, 0xFA}))
	assert.Empty(t, got)

	c.handleFrame(frameFor(packetStatus, 0x68, []byte{0x00, 0x00, 0x0B, 0xB8, 0x00, 0x7D, 0x00, 0xFA}))
	assert.Len(t, got, 1)
	assert.InDelta(t, 3000.0, got[0].Speed, 1e-9)
}
