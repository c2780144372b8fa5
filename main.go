package main

import (
	"smart-scheduler/core/logger"
	"smart-scheduler/core/server"
)

// @title SmartScheduler API
// @version 1.0
// @description Scheduling constraint engine: natural-language rules, booking validation and availability grids

// @host localhost:7070
// @BasePath /api/v1

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", "error", err)
	}
}
