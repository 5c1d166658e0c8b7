package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/shelkesagar29/WSN-Real-Time-Monitoring/internal/config"
	applogger "github.com/shelkesagar29/WSN-Real-Time-Monitoring/internal/logger"
	"github.com/shelkesagar29/WSN-Real-Time-Monitoring/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := applogger.NewLogger(cfg.Log.Level, cfg.Log.Format, "wsn-monitor")
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Starting wsn-monitor service",
		zap.String("mqtt_broker", cfg.MQTT.Broker),
		zap.String("topic", cfg.Monitor.Topic),
		zap.String("data_class", cfg.Monitor.DataClass),
	)

	monitorService, err := service.NewMonitorService(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to create monitor service", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := monitorService.Start(ctx); err != nil {
		logger.Fatal("Failed to start monitor service", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))

	cancel()
	if err := monitorService.Stop(context.Background()); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Service stopped")
}
