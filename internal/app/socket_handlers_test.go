package app

import (
	"testing"

	"github.com/Speshl/gorrc_vesc/internal/models"
	socketio "github.com/googollee/go-socket.io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConn stubs just enough of socketio.Conn for the handlers' log lines.
type fakeConn struct {
	socketio.Conn
}

func (fakeConn) ID() string { return "test-conn" }

func TestRegisterSuccessEmptyMsgs(t *testing.T) {
	a := &App{}

	assert.NotPanics(t, func() {
		a.onRegisterSuccess(fakeConn{}, []string{})
	})
	assert.Empty(t, a.carInfo.Name)
}

func TestRegisterSuccessSetsCarInfo(t *testing.T) {
	a := &App{}

	msg, err := encode(models.ConnectResp{
		Car: models.Car{Name: "bench rig", ShortName: "bench"},
	})
	require.NoError(t, err)

	a.onRegisterSuccess(fakeConn{}, []string{msg})

	assert.Equal(t, "bench rig", a.carInfo.Name)
	assert.Equal(t, "bench", a.carInfo.ShortName)
}

func TestRegisterSuccessBadPayload(t *testing.T) {
	a := &App{}

	assert.NotPanics(t, func() {
		a.onRegisterSuccess(fakeConn{}, []string{"not base64!!"})
	})
	assert.Empty(t, a.carInfo.Name)
}

func TestDecodeCommandBadPayload(t *testing.T) {
	cmd, ok := decodeCommand(fakeConn{}, "duty_cycle", "not base64!!")

	assert.False(t, ok)
	assert.Zero(t, cmd.Value)
}
