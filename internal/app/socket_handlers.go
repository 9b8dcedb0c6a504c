package app

import (
	"encoding/base64"
	"encoding/json"
	"log"

	"github.com/Speshl/gorrc_vesc/internal/models"
	socketio "github.com/googollee/go-socket.io"
)

func (a *App) onDutyCycle(socketConn socketio.Conn, msg string) {
	cmd, ok := decodeCommand(socketConn, "duty_cycle", msg)
	if ok {
		a.driver.SetDutyCycle(cmd.Value)
	}
}

func (a *App) onCurrent(socketConn socketio.Conn, msg string) {
	cmd, ok := decodeCommand(socketConn, "current", msg)
	if ok {
		a.driver.SetCurrent(cmd.Value)
	}
}

func (a *App) onBrake(socketConn socketio.Conn, msg string) {
	cmd, ok := decodeCommand(socketConn, "brake", msg)
	if ok {
		a.driver.SetBrake(cmd.Value)
	}
}

func (a *App) onSpeed(socketConn socketio.Conn, msg string) {
	cmd, ok := decodeCommand(socketConn, "speed", msg)
	if ok {
		a.driver.SetSpeed(cmd.Value)
	}
}

func (a *App) onPosition(socketConn socketio.Conn, msg string) {
	cmd, ok := decodeCommand(socketConn, "position", msg)
	if ok {
		a.driver.SetPosition(cmd.Value)
	}
}

func (a *App) onServo(socketConn socketio.Conn, msg string) {
	cmd, ok := decodeCommand(socketConn, "servo", msg)
	if ok {
		a.driver.SetServo(cmd.Value)
	}
}

func (a *App) onRegisterSuccess(socketConn socketio.Conn, msgs []string) {
	if len(msgs) == 0 {
		log.Println("register_success had no msgs")
		return
	}
	if len(msgs) != 1 {
		log.Printf("register_success from %s had to many msgs: %d\n", socketConn.ID(), len(msgs))
	}
	msg := msgs[0]

	decodedMsg := models.ConnectResp{}
	err := decode(msg, &decodedMsg)
	if err != nil {
		log.Printf("register_success from %s failed unmarshaling: %s\n - msg - %s", socketConn.ID(), err.Error(), msg)
		return
	}

	a.carInfo = decodedMsg.Car
	log.Printf("vesc driver connected as %s(%s)\n", a.carInfo.Name, a.carInfo.ShortName)
}

func decodeCommand(socketConn socketio.Conn, channel string, msg string) (models.CommandMsg, bool) {
	cmd := models.CommandMsg{}
	err := decode(msg, &cmd)
	if err != nil {
		log.Printf("%s command from %s failed unmarshaling: %s\n - msg - %s", channel, socketConn.ID(), err.Error(), msg)
		return cmd, false
	}
	return cmd, true
}

func encode(data any) (string, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(jsonBytes), nil
}

func decode(msg string, target any) error {
	jsonBytes, err := base64.StdEncoding.DecodeString(msg)
	if err != nil {
		return err
	}
	return json.Unmarshal(jsonBytes, target)
}
