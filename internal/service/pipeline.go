package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/shelkesagar29/WSN-Real-Time-Monitoring/internal/cache"
	"github.com/shelkesagar29/WSN-Real-Time-Monitoring/internal/decoder"
	"github.com/shelkesagar29/WSN-Real-Time-Monitoring/internal/fusion"
	"github.com/shelkesagar29/WSN-Real-Time-Monitoring/internal/repository"
)

// Pipeline drives one raw report through decode, fusion, persistence and
// frame assembly. Errors are isolated per message: a failing report never
// corrupts the in-progress sample or the history window.
type Pipeline struct {
	// mu serializes Process. The MQTT client delivers messages in order on
	// one goroutine, but the core state machines tolerate no concurrent
	// mutation, so the invariant is enforced here rather than assumed.
	mu sync.Mutex

	fuser     *fusion.Fuser
	assembler *fusion.Assembler
	recorders []repository.Recorder
	cache     *cache.Manager // nil when Redis publication is disabled
	logger    *zap.Logger
}

// NewPipeline wires the core components.
func NewPipeline(
	fuser *fusion.Fuser,
	assembler *fusion.Assembler,
	recorders []repository.Recorder,
	cacheManager *cache.Manager,
	logger *zap.Logger,
) *Pipeline {
	return &Pipeline{
		fuser:     fuser,
		assembler: assembler,
		recorders: recorders,
		cache:     cacheManager,
		logger:    logger,
	}
}

// Process handles one inbound report payload.
func (p *Pipeline) Process(ctx context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	report, err := decoder.Decode(payload)
	if err != nil {
		return err
	}

	sample, err := p.fuser.Merge(report)
	if err != nil {
		return err
	}
	if sample == nil {
		// Mid-cycle report, nothing emitted yet.
		return nil
	}

	if repository.ShouldPersist(sample) {
		for _, recorder := range p.recorders {
			if err := recorder.Record(ctx, sample); err != nil {
				// Persistence skips the row; the sample still presents.
				p.logger.Warn("Failed to persist fused sample",
					zap.String("timestamp", sample.Timestamp),
					zap.Error(err),
				)
			}
		}
		if p.cache != nil {
			if err := p.cache.PublishSample(ctx, sample); err != nil {
				p.logger.Warn("Failed to publish sample to stream", zap.Error(err))
			}
		}
	}

	return p.assembler.Ingest(ctx, sample)
}
