package service

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	goredis "github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/shelkesagar29/WSN-Real-Time-Monitoring/internal/cache"
	"github.com/shelkesagar29/WSN-Real-Time-Monitoring/internal/config"
	"github.com/shelkesagar29/WSN-Real-Time-Monitoring/internal/consumer"
	"github.com/shelkesagar29/WSN-Real-Time-Monitoring/internal/database"
	"github.com/shelkesagar29/WSN-Real-Time-Monitoring/internal/fusion"
	mqttcommon "github.com/shelkesagar29/WSN-Real-Time-Monitoring/internal/mqtt"
	rediscommon "github.com/shelkesagar29/WSN-Real-Time-Monitoring/internal/redis"
	"github.com/shelkesagar29/WSN-Real-Time-Monitoring/internal/repository"
	"github.com/shelkesagar29/WSN-Real-Time-Monitoring/internal/web"
)

// MonitorService owns every resource of the monitor: broker connection,
// database, Redis, the ingestion pipeline and the presentation server.
type MonitorService struct {
	config     *config.Config
	logger     *zap.Logger
	db         *sql.DB
	redis      *goredis.Client
	mqttClient *mqttcommon.Client
	recorders  []repository.Recorder
	consumer   *consumer.MQTTConsumer
	webServer  *web.Server
	board      *fusion.Board
}

// NewMonitorService connects all collaborators and wires the pipeline.
func NewMonitorService(cfg *config.Config, logger *zap.Logger) (*MonitorService, error) {
	s := &MonitorService{
		config: cfg,
		logger: logger,
		board:  fusion.NewBoard(),
	}

	var recorders []repository.Recorder

	if cfg.Monitor.Persist.Postgres {
		db, err := database.NewPostgresDB(&cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		s.db = db
		recorders = append(recorders, repository.NewPostgresRecorder(db, cfg.Monitor.DataClass, logger))
	}

	if cfg.Monitor.Persist.CSV {
		path := filepath.Join(cfg.Monitor.Persist.CSVDir, cfg.Monitor.DataClass+".csv")
		csvRecorder, err := repository.NewCSVRecorder(path, logger)
		if err != nil {
			s.closeResources()
			return nil, fmt.Errorf("failed to open csv recorder: %w", err)
		}
		recorders = append(recorders, csvRecorder)
	}
	s.recorders = recorders

	var cacheManager *cache.Manager
	publishers := []fusion.Publisher{s.board}

	if cfg.Cache.Enabled {
		redisClient := rediscommon.NewRedisClient(&cfg.Redis)
		if err := rediscommon.Ping(context.Background(), redisClient); err != nil {
			s.closeResources()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		s.redis = redisClient
		cacheManager = cache.NewManager(cfg, redisClient, logger)
		publishers = append(publishers, cacheManager)
	}

	var hub *web.Hub
	if cfg.Web.Enabled {
		hub = web.NewHub(logger)
		publishers = append(publishers, hub)
	}

	fuser := fusion.NewFuser(logger)
	assembler := fusion.NewAssembler(logger, publishers...)
	pipeline := NewPipeline(fuser, assembler, recorders, cacheManager, logger)

	mqttClient, err := mqttcommon.NewClient(&cfg.MQTT, logger)
	if err != nil {
		s.closeResources()
		return nil, fmt.Errorf("failed to connect to MQTT: %w", err)
	}
	s.mqttClient = mqttClient

	s.consumer = consumer.NewMQTTConsumer(cfg, mqttClient, pipeline, logger)

	if cfg.Web.Enabled {
		stats := func() interface{} {
			return s.consumer.Metrics().GetSnapshot()
		}
		s.webServer = web.NewServer(cfg.Web.Addr, hub, s.board, stats, logger)
	}

	return s, nil
}

// Board exposes the in-process snapshot handoff.
func (s *MonitorService) Board() *fusion.Board {
	return s.board
}

// Start begins ingestion and presentation. It returns once everything is
// subscribed and listening.
func (s *MonitorService) Start(ctx context.Context) error {
	s.logger.Info("Starting monitor service components")

	if s.webServer != nil {
		s.webServer.Start(ctx)
	}

	if err := s.consumer.Start(ctx); err != nil {
		return fmt.Errorf("failed to start MQTT consumer: %w", err)
	}

	s.logger.Info("Monitor service started successfully")
	return nil
}

// Stop shuts everything down in reverse dependency order.
func (s *MonitorService) Stop(ctx context.Context) error {
	s.logger.Info("Stopping monitor service")

	if s.consumer != nil {
		if err := s.consumer.Stop(ctx); err != nil {
			s.logger.Error("Error stopping consumer", zap.Error(err))
		}
	}

	if s.webServer != nil {
		if err := s.webServer.Stop(ctx); err != nil {
			s.logger.Error("Error stopping web server", zap.Error(err))
		}
	}

	s.closeResources()

	s.logger.Info("Monitor service stopped")
	return nil
}

func (s *MonitorService) closeResources() {
	if s.mqttClient != nil {
		s.mqttClient.Disconnect()
		s.mqttClient = nil
	}

	for _, recorder := range s.recorders {
		if err := recorder.Close(); err != nil {
			s.logger.Error("Error closing recorder", zap.Error(err))
		}
	}
	s.recorders = nil

	if s.redis != nil {
		rediscommon.Close(s.redis)
		s.redis = nil
	}

	if s.db != nil {
		database.Close(s.db)
		s.db = nil
	}
}
