package server

import (
	"fmt"
	"net/http"

	"smart-scheduler/core/config"
	"smart-scheduler/core/logger"
	"smart-scheduler/core/middleware"
	"smart-scheduler/modules/meeting"
	meetingservice "smart-scheduler/modules/meeting/service"
	"smart-scheduler/modules/rules"
	rulesservice "smart-scheduler/modules/rules/service"
	"smart-scheduler/modules/scheduling"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Run loads configuration, wires all modules and starts the HTTP server.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.Server.LogLevel)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	mw := middleware.NewMiddleware()
	e.Use(mw.RequestID())
	e.Use(mw.RequestLogger())
	e.Use(echomw.Recover())

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Shared state: one rule registry and one meeting store per process.
	parser := rulesservice.NewRuleParser()
	registry := rulesservice.NewRuleRegistry(parser, cfg.Scheduler.SeedDefaultRules)
	store := meetingservice.NewMeetingStore()

	rules.Init(e, parser, registry)
	meeting.Init(e, store)
	scheduling.Init(e, registry, store)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server:Starting", "addr", addr)
	return e.Start(addr)
}
