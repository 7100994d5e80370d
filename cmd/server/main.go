package main

import (
	httpapi "gess/internal/api/http"
	"gess/internal/api/ws"
	"gess/internal/config"
	"gess/internal/room"
	"gess/internal/store"

	"github.com/sirupsen/logrus"
)

// @title Gess API
// @version 1.0
// @description REST and WebSocket API for the Gess rules engine (Go + Gin)
// @BasePath /
func main() {
	cfg := config.Load()
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(lvl)
	}

	mem := store.NewMemoryStore()
	hub := ws.NewHub()
	rm := room.NewManager(mem, cfg, hub)
	hub.SetManager(rm)

	r := httpapi.NewRouter(rm, hub)

	logrus.WithField("addr", cfg.HTTPAddr).Info("listening")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logrus.Fatal(err)
	}
}
