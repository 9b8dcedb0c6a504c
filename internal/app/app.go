package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Speshl/gorrc_vesc/internal/config"
	"github.com/Speshl/gorrc_vesc/internal/driver"
	"github.com/Speshl/gorrc_vesc/internal/models"
	"github.com/Speshl/gorrc_vesc/internal/vesc"
	socketio "github.com/googollee/go-socket.io"
	"github.com/prometheus/procfs"
	"golang.org/x/sync/errgroup"
)

const (
	TickInterval   = 20 * time.Millisecond // 50Hz driver state machine
	HealthInterval = 30 * time.Second
)

type App struct {
	ctx       context.Context
	ctxCancel context.CancelFunc

	cfg    config.Config
	client *socketio.Client

	vesc   vesc.VescIFace
	driver *driver.Driver

	carInfo models.Car
}

func NewApp(cfg config.Config, client *socketio.Client) *App {
	ctx, cancel := context.WithCancel(context.Background())

	a := &App{
		ctx:       ctx,
		ctxCancel: cancel,
		cfg:       cfg,
		client:    client,
		vesc:      vesc.NewCan(),
	}
	a.driver = driver.NewDriver(cfg.LimitCfg, cfg.VescCfg.VescID, a.vesc, a.publishState, a.publishServo)
	return a
}

func (a *App) RegisterHandlers() error {
	log.Println("registering handlers")
	a.client.OnEvent("reply", func(s socketio.Conn, msg string) {
		log.Println("Receive Message /reply: ", "reply", msg)
	})

	a.client.OnEvent("command_duty_cycle", a.onDutyCycle)
	a.client.OnEvent("command_current", a.onCurrent)
	a.client.OnEvent("command_brake", a.onBrake)
	a.client.OnEvent("command_speed", a.onSpeed)
	a.client.OnEvent("command_position", a.onPosition)
	a.client.OnEvent("command_servo", a.onServo)

	a.client.OnEvent("register_success", a.onRegisterSuccess)

	log.Println("attemping to connect to server...")
	err := a.client.Connect() //Client must have atleast 1 event handler to work
	if err != nil {
		return fmt.Errorf("error connecting to server - %w", err)
	}
	log.Println("connected to server")
	return nil
}

func (a *App) Start() error {
	group, groupCtx := errgroup.WithContext(a.ctx)
	log.Println("starting...")

	// connection failure is fatal, no retry
	err := a.vesc.Connect(a.cfg.VescCfg.Port, a.cfg.VescCfg.VescID)
	if err != nil {
		return fmt.Errorf("failed to connect to the VESC 0x%x @ %s - %w", a.cfg.VescCfg.VescID, a.cfg.VescCfg.Port, err)
	}
	log.Printf("VESC driver started, listening to node 0x%x @ %s\n", a.cfg.VescCfg.VescID, a.cfg.VescCfg.Port)

	defer func() {
		log.Println("stopping...")
		a.vesc.Close()
		a.client.Close()
	}()

	//kill listener
	group.Go(func() error {
		signalChannel := make(chan os.Signal, 1)
		signal.Notify(signalChannel, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
		select {
		case sig := <-signalChannel:
			log.Printf("received signal: %s\n", sig)
			a.ctxCancel()
			return fmt.Errorf("received signal: %s", sig)
		case <-groupCtx.Done():
			fmt.Printf("closing signal goroutine\n")
			return groupCtx.Err()
		}
	})

	//Driver state machine tick
	group.Go(func() error {
		tickTicker := time.NewTicker(TickInterval)
		defer tickTicker.Stop()
		for {
			select {
			case <-groupCtx.Done():
				log.Println("driver ticker stopped")
				return groupCtx.Err()
			case <-tickTicker.C:
				a.driver.Tick()
			}
		}
	})

	//Send connect and send healthchecks
	group.Go(func() error {
		encodedMsg, _ := encode(models.ConnectReq{
			Key:      a.cfg.ServerCfg.Key,
			Password: a.cfg.ServerCfg.Password,
		})
		a.client.Emit("vesc_connect", encodedMsg)

		healthTicker := time.NewTicker(HealthInterval)
		defer healthTicker.Stop()

		for {
			select {
			case <-groupCtx.Done():
				log.Println("health checker stopped")
				return groupCtx.Err()
			case <-healthTicker.C:
				log.Println("healthcheck: healthy")
				a.client.Emit("vesc_healthy", "")
				a.publishLinkStats()
			}
		}
	})

	err = group.Wait()
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Println("context was cancelled")
			return nil
		} else {
			return fmt.Errorf("driver stopping due to error - %w", err)
		}
	}

	log.Println("shutting down")
	return nil
}

func (a *App) publishState(state models.VescStateStamped) {
	encodedMsg, err := encode(state)
	if err != nil {
		log.Printf("failed encoding vesc state: %s\n", err.Error())
		return
	}
	a.client.Emit("vesc_state", encodedMsg)
}

func (a *App) publishServo(state models.ServoState) {
	encodedMsg, err := encode(state)
	if err != nil {
		log.Printf("failed encoding servo state: %s\n", err.Error())
		return
	}
	a.client.Emit("servo_position_command", encodedMsg)
}

// publishLinkStats reads the CAN interface packet counters from procfs and
// emits them alongside the healthcheck.
func (a *App) publishLinkStats() {
	fs, err := procfs.NewDefaultFS()
	if err != nil {
		log.Printf("failed opening procfs: %s\n", err.Error())
		return
	}

	netDev, err := fs.NetDev()
	if err != nil {
		log.Printf("failed reading net dev stats: %s\n", err.Error())
		return
	}

	line, found := netDev[a.cfg.VescCfg.Port]
	if !found {
		log.Printf("no net dev stats for %s\n", a.cfg.VescCfg.Port)
		return
	}

	encodedMsg, err := encode(models.LinkStats{
		Interface: line.Name,
		RxPackets: line.RxPackets,
		RxErrors:  line.RxErrors,
		RxDropped: line.RxDropped,
		TxPackets: line.TxPackets,
		TxErrors:  line.TxErrors,
		TxDropped: line.TxDropped,
		TimeStamp: time.Now().UnixMilli(),
	})
	if err != nil {
		log.Printf("failed encoding link stats: %s\n", err.Error())
		return
	}
	a.client.Emit("link_stats", encodedMsg)
}
