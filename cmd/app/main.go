package main

import (
	"visitpazar/config"
	"visitpazar/di"
	"visitpazar/shared/logger"
	"visitpazar/shared/timezone"
)

// @title VisitPazar API
// @version 1.0
// @description Places, guides, events and bookings for visitors of Novi Pazar.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	timezone.Init(cfg)

	http := di.InitializeService()
	http.Serve()
}
