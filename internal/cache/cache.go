// Package cache publishes pipeline output to Redis: the latest presentation
// snapshot under a TTL key, and every persisted sample onto a stream for
// downstream consumers.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/shelkesagar29/WSN-Real-Time-Monitoring/internal/config"
	"github.com/shelkesagar29/WSN-Real-Time-Monitoring/internal/models"
	rediscommon "github.com/shelkesagar29/WSN-Real-Time-Monitoring/internal/redis"
)

// Manager owns the Redis publication paths.
type Manager struct {
	config      *config.Config
	redisClient *redis.Client
	logger      *zap.Logger
}

// NewManager creates a cache manager.
func NewManager(cfg *config.Config, redisClient *redis.Client, logger *zap.Logger) *Manager {
	return &Manager{
		config:      cfg,
		redisClient: redisClient,
		logger:      logger,
	}
}

// Publish caches the snapshot under the configured key with a TTL, so a
// presentation client can always fetch the latest generation.
func (m *Manager) Publish(ctx context.Context, snapshot *models.Snapshot) error {
	jsonData, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	err = m.redisClient.Set(
		ctx,
		m.config.Cache.SnapshotKey,
		jsonData,
		time.Duration(m.config.Cache.SnapshotTTL)*time.Second,
	).Err()
	if err != nil {
		return fmt.Errorf("failed to set snapshot cache: %w", err)
	}

	m.logger.Debug("Updated snapshot cache",
		zap.String("key", m.config.Cache.SnapshotKey),
		zap.Uint64("generation", snapshot.Generation),
	)
	return nil
}

// PublishSample puts one persisted fused sample onto the sample stream.
func (m *Manager) PublishSample(ctx context.Context, sample *models.FusedSample) error {
	streamID, err := rediscommon.PublishJSONToStream(ctx, m.redisClient, m.config.Cache.Stream, sample)
	if err != nil {
		return fmt.Errorf("failed to publish sample to stream: %w", err)
	}

	m.logger.Debug("Published fused sample to stream",
		zap.String("stream", m.config.Cache.Stream),
		zap.String("stream_id", streamID),
	)
	return nil
}
