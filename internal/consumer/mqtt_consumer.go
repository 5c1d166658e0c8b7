// Package consumer subscribes to the rig report topic and drives the
// ingestion pipeline, keeping per-message counters.
package consumer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/shelkesagar29/WSN-Real-Time-Monitoring/internal/config"
	"github.com/shelkesagar29/WSN-Real-Time-Monitoring/internal/models"
	mqttcommon "github.com/shelkesagar29/WSN-Real-Time-Monitoring/internal/mqtt"
)

// Pipeline is the per-message entry point of the core.
type Pipeline interface {
	Process(ctx context.Context, payload []byte) error
}

// Metrics holds monitoring counters.
type Metrics struct {
	mu sync.RWMutex

	MessagesProcessed int64 `json:"messages_processed"`
	MessagesSucceeded int64 `json:"messages_succeeded"`
	MessagesFailed    int64 `json:"messages_failed"`

	ErrorsDecode int64 `json:"errors_decode"`
	ErrorsFusion int64 `json:"errors_fusion"`
	ErrorsFrame  int64 `json:"errors_frame"`
	ErrorsOther  int64 `json:"errors_other"`

	TotalProcessingTime time.Duration `json:"total_processing_time_ns"`
	LastProcessTime     time.Time     `json:"last_process_time"`
	StartTime           time.Time     `json:"start_time"`
}

// GetSnapshot returns a copy of the counters (thread safe).
func (m *Metrics) GetSnapshot() Metrics {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Metrics{
		MessagesProcessed:   m.MessagesProcessed,
		MessagesSucceeded:   m.MessagesSucceeded,
		MessagesFailed:      m.MessagesFailed,
		ErrorsDecode:        m.ErrorsDecode,
		ErrorsFusion:        m.ErrorsFusion,
		ErrorsFrame:         m.ErrorsFrame,
		ErrorsOther:         m.ErrorsOther,
		TotalProcessingTime: m.TotalProcessingTime,
		LastProcessTime:     m.LastProcessTime,
		StartTime:           m.StartTime,
	}
}

func (m *Metrics) recordSuccess(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MessagesProcessed++
	m.MessagesSucceeded++
	m.TotalProcessingTime += duration
	m.LastProcessTime = time.Now()
}

func (m *Metrics) recordFailure(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MessagesProcessed++
	m.MessagesFailed++
	switch {
	case errors.Is(err, models.ErrDecode):
		m.ErrorsDecode++
	case errors.Is(err, models.ErrFusion):
		m.ErrorsFusion++
	case errors.Is(err, models.ErrShape), errors.Is(err, models.ErrFieldNotFound):
		m.ErrorsFrame++
	default:
		m.ErrorsOther++
	}
}

// MQTTConsumer subscribes to the rig topic and feeds the pipeline.
type MQTTConsumer struct {
	config     *config.Config
	mqttClient *mqttcommon.Client
	pipeline   Pipeline
	logger     *zap.Logger
	metrics    *Metrics
}

// NewMQTTConsumer creates a consumer.
func NewMQTTConsumer(
	cfg *config.Config,
	mqttClient *mqttcommon.Client,
	pipeline Pipeline,
	logger *zap.Logger,
) *MQTTConsumer {
	return &MQTTConsumer{
		config:     cfg,
		mqttClient: mqttClient,
		pipeline:   pipeline,
		logger:     logger,
		metrics: &Metrics{
			StartTime: time.Now(),
		},
	}
}

// Metrics exposes the counter set.
func (c *MQTTConsumer) Metrics() *Metrics {
	return c.metrics
}

// Start subscribes to the report topic.
func (c *MQTTConsumer) Start(ctx context.Context) error {
	if err := c.mqttClient.Subscribe(c.config.Monitor.Topic, c.config.MQTT.QoS, func(topic string, payload []byte) error {
		return c.handleMessage(ctx, topic, payload)
	}); err != nil {
		return fmt.Errorf("failed to subscribe to report topic: %w", err)
	}

	c.logger.Info("MQTT consumer started",
		zap.String("topic", c.config.Monitor.Topic),
	)
	return nil
}

// Stop unsubscribes.
func (c *MQTTConsumer) Stop(ctx context.Context) error {
	if err := c.mqttClient.Unsubscribe(c.config.Monitor.Topic); err != nil {
		c.logger.Error("Failed to unsubscribe", zap.Error(err))
	}

	c.logger.Info("MQTT consumer stopped")
	return nil
}

// handleMessage runs one report through the pipeline. Failures are counted
// and logged; the next message is unaffected.
func (c *MQTTConsumer) handleMessage(ctx context.Context, topic string, payload []byte) error {
	c.logger.Debug("Received rig report",
		zap.String("topic", topic),
		zap.Int("payload_size", len(payload)),
	)

	start := time.Now()
	if err := c.pipeline.Process(ctx, payload); err != nil {
		c.metrics.recordFailure(err)
		return fmt.Errorf("failed to process report: %w", err)
	}

	c.metrics.recordSuccess(time.Since(start))
	return nil
}
