package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/Aakash17x08/linkhive/internal/hive"
	"github.com/Aakash17x08/linkhive/internal/logger"
	"github.com/Aakash17x08/linkhive/internal/sources/seed"
)

// Seeder applies a seed file to an empty hive: on start, on a periodic
// re-check, and on a manual trigger. A hive that already holds data is
// never touched.
type Seeder struct {
	loader        *seed.Loader
	mapper        *seed.Mapper
	hive          *hive.Hive
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewSeeder creates a new seeder
func NewSeeder(
	seedFile string,
	h *hive.Hive,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *Seeder {
	return &Seeder{
		loader:        seed.NewLoader(seedFile),
		mapper:        seed.NewMapper(),
		hive:          h,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start seeds immediately and begins the periodic re-check loop.
func (s *Seeder) Start(ctx context.Context) error {
	if err := s.Seed(ctx); err != nil {
		return fmt.Errorf("initial seed failed: %w", err)
	}

	ticker := time.NewTicker(s.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := s.Seed(ctx); err != nil {
					s.logger.Error("failed to apply seed file",
						logger.Error(err))
				}
			case <-s.manualTrigger:
				s.logger.Info("manual seed triggered")
				if err := s.Seed(ctx); err != nil {
					s.logger.Error("failed to apply seed file",
						logger.Error(err))
				}
			case <-s.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the seeder
func (s *Seeder) Stop() {
	close(s.stopCh)
}

// Seed loads the seed file and replaces the document when the hive is
// empty; otherwise it is a no-op.
func (s *Seeder) Seed(ctx context.Context) error {
	if !s.hive.Empty() {
		s.logger.Debug("hive already holds data, seed skipped")
		return nil
	}

	config, err := s.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load seed: %w", err)
	}

	doc, skipped := s.mapper.MapDocument(config)
	if skipped > 0 {
		s.logger.Warn("seed file contains invalid entries",
			logger.Int("skipped", skipped))
	}

	s.hive.Replace(ctx, doc)
	s.logger.Info("seed applied",
		logger.Int("sections", len(doc.Sections)))
	return nil
}
