package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"frontdesk/config"
	"frontdesk/infras/otel"
	overstayService "frontdesk/internal/domains/overstay/service"
	propertyService "frontdesk/internal/domains/property/service"
	"frontdesk/shared/constant"
)

const (
	defaultInterval    = 5 * time.Minute
	defaultConcurrency = 4
)

// Scheduler runs the overstay sweep for every active property on a fixed interval.
type Scheduler struct {
	property propertyService.Property
	detector overstayService.Detector
	cfg      *config.Config
	otel     otel.Otel

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(property propertyService.Property, detector overstayService.Detector, cfg *config.Config, otel otel.Otel) *Scheduler {
	return &Scheduler{
		property: property,
		detector: detector,
		cfg:      cfg,
		otel:     otel,
	}
}

// Start sweeps once immediately and then on every tick until Stop. It is a no-op when the
// sweep is disabled or already running.
func (s *Scheduler) Start(ctx context.Context) {
	if !s.cfg.Overstay.SweepEnable {
		log.Info().Msg("Overstay sweep disabled")

		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	interval := s.interval()

	log.Info().Dur("interval", interval).Int("concurrency", s.concurrency()).Msg("Starting overstay sweep")

	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			if _, err := s.Sweep(ctx, time.Now().UTC()); err != nil {
				log.Error().Err(err).Msg("Overstay sweep failed")
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

// Stop cancels the loop and waits for an in-flight sweep to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	s.wg.Wait()

	log.Info().Msg("Overstay sweep stopped")
}

// Sweep runs Detect for each active property in parallel. A failing property is logged and
// does not stop the others.
func (s *Scheduler) Sweep(ctx context.Context, now time.Time) (created int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSchedulerScopeName, constant.OtelSchedulerScopeName+".Sweep")
	defer scope.End()
	defer scope.TraceIfError(&err)

	properties, err := s.property.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list active properties: %w", err)
	}

	var total atomic.Int64

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.concurrency())

	for _, prop := range properties {
		group.Go(func() error {
			n, err := s.detector.Detect(groupCtx, prop.ID, now)
			if err != nil {
				log.Error().Err(err).Str("property_id", prop.ID).Msg("Overstay detection failed for property")

				return nil
			}

			total.Add(int64(n))

			return nil
		})
	}

	_ = group.Wait()

	created = int(total.Load())

	scope.SetAttributes(map[string]any{
		"sweep.properties": len(properties),
		"sweep.created":    created,
	})

	log.Info().Int("properties", len(properties)).Int("created", created).Msg("Overstay sweep completed")

	return created, nil
}

func (s *Scheduler) interval() time.Duration {
	if s.cfg.Overstay.SweepIntervalSeconds <= 0 {
		return defaultInterval
	}

	return time.Duration(s.cfg.Overstay.SweepIntervalSeconds) * time.Second
}

func (s *Scheduler) concurrency() int {
	if s.cfg.Overstay.SweepConcurrency <= 0 {
		return defaultConcurrency
	}

	return s.cfg.Overstay.SweepConcurrency
}
