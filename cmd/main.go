package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eventure/eventure_api/config"
	deps "github.com/eventure/eventure_api/internal/debs"
	api "github.com/eventure/eventure_api/internal/http/rest"
)

const (
	allowConnectionsAfterShutdown = 1 * time.Second
)

func main() {
	cfg := config.New()
	deps := deps.New(cfg)

	a := &api.API{
		Config: cfg,
		Deps:   deps,
	}
	a.Init()
	go deps.WebSocket.Run()
	go func() {
		log.Printf("Server running on port %v ...", cfg.Port)
		log.Fatal(a.Serve())
	}()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-stopChan

	log.Println("Request to shutdown server. Doing nothing for ", allowConnectionsAfterShutdown)
	waitTimer := time.NewTimer(allowConnectionsAfterShutdown)
	<-waitTimer.C

	log.Println("Shutting down server...")
	log.Fatal(a.Shutdown())
}
