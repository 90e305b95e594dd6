package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-product-catalog/internal/logger"
	"github.com/MKhiriev/go-product-catalog/internal/service"
)

// HealthProbe pings the storage on a fixed interval and forwards the result
// to its sinks. The first probe runs immediately.
type HealthProbe struct {
	checker  service.HealthService
	interval time.Duration
	sinks    []StorageStatusSink

	logger *logger.Logger
}

func NewHealthProbe(checker service.HealthService, interval time.Duration, logger *logger.Logger, sinks ...StorageStatusSink) *HealthProbe {
	return &HealthProbe{
		checker:  checker,
		interval: interval,
		sinks:    sinks,
		logger:   logger,
	}
}

func (p *HealthProbe) Run(ctx context.Context) error {
	p.probe(ctx)
	if p.interval <= 0 {
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			p.probe(ctx)
		}
	}
}

func (p *HealthProbe) probe(ctx context.Context) {
	err := p.checker.Check(ctx)
	if err != nil && ctx.Err() != nil {
		return
	}

	up := err == nil
	if !up {
		p.logger.Warn().Err(err).Str("func", "*HealthProbe.probe").Msg("storage is unavailable")
	}
	for _, sink := range p.sinks {
		sink.SetStorageUp(up)
	}
}
