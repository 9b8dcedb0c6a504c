package main

import (
	"fmt"
	"log"

	"github.com/Speshl/gorrc_vesc/internal/app"
	"github.com/Speshl/gorrc_vesc/internal/config"
	socketio "github.com/googollee/go-socket.io"
)

func main() {
	cfg := config.GetConfig()

	socketURI := fmt.Sprintf("http://%s", cfg.ServerCfg.Server)
	client, err := socketio.NewClient(socketURI, nil)
	if err != nil {
		err = fmt.Errorf("error creating client - %w", err)
		panic(err)
	}

	app := app.NewApp(cfg, client)

	err = app.RegisterHandlers()
	if err != nil {
		log.Fatalf("failed registering handlers: %s", err.Error())
	}

	err = app.Start()
	if err != nil {
		log.Printf("driver shutdown with error: %s", err.Error())
	} else {
		log.Println("driver shutdown successfully")
	}
}
