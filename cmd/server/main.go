package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/limaJavier/genetic-timetabling/internal/server"
	"github.com/limaJavier/genetic-timetabling/pkg/config"
	"github.com/limaJavier/genetic-timetabling/pkg/logger"
	"github.com/limaJavier/genetic-timetabling/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	m := metrics.New()
	handler := server.NewScheduleHandler(cfg.Optimizer, cfg.MaxGenerations, cfg.Days, logr, m)
	r := server.NewRouter(handler, m, logr)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
