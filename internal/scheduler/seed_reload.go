package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/clipkeeper/clipkeeperd/internal/logger"
	"github.com/clipkeeper/clipkeeperd/internal/seed"
	redisstore "github.com/clipkeeper/clipkeeperd/internal/store/redis"
)

// SeedReloader periodically re-imports the optional bookmarks.yaml seed
// file into the per-video records. Imports merge: entries whose time
// already exists within tolerance are skipped, so the page-side
// recorder's bookmarks are never clobbered.
type SeedReloader struct {
	loader        *seed.Loader
	mapper        *seed.Mapper
	store         *redisstore.Store
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}

	mu         sync.RWMutex
	lastImport time.Time
	lastAdded  int
}

// NewSeedReloader creates a seed reloader for the given file.
func NewSeedReloader(
	seedFile string,
	store *redisstore.Store,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *SeedReloader {
	return &SeedReloader{
		loader:        seed.NewLoader(seedFile),
		mapper:        seed.NewMapper(),
		store:         store,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start imports once immediately, then keeps re-importing on the
// configured interval or on a manual trigger.
func (sr *SeedReloader) Start(ctx context.Context) error {
	if err := sr.Reload(ctx); err != nil {
		return fmt.Errorf("initial seed import failed: %w", err)
	}

	ticker := time.NewTicker(sr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := sr.Reload(ctx); err != nil {
					sr.logger.Error("failed to re-import seed file",
						logger.Error(err))
				}
			case <-sr.manualTrigger:
				sr.logger.Info("manual seed import triggered")
				if err := sr.Reload(ctx); err != nil {
					sr.logger.Error("failed to re-import seed file",
						logger.Error(err))
				}
			case <-sr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader.
func (sr *SeedReloader) Stop() {
	close(sr.stopCh)
}

// Reload loads the seed file and merges each video's entries into its
// record. A failing video does not abort the rest of the import.
func (sr *SeedReloader) Reload(ctx context.Context) error {
	file, err := sr.loader.Load()
	if err != nil {
		return err
	}

	totalAdded := 0
	for videoKey, entries := range file {
		incoming := sr.mapper.MapEntries(entries)
		if len(incoming) == 0 {
			continue
		}

		existing, err := sr.store.FetchBookmarks(ctx, videoKey)
		if err != nil {
			sr.logger.Warn("seed import skipped a video",
				logger.String("video", videoKey),
				logger.Error(err))
			continue
		}

		merged, added := seed.Merge(existing, incoming)
		if added == 0 {
			continue
		}

		if err := sr.store.SaveBookmarks(ctx, videoKey, merged); err != nil {
			sr.logger.Warn("seed import failed to write a record",
				logger.String("video", videoKey),
				logger.Error(err))
			continue
		}
		totalAdded += added
	}

	sr.mu.Lock()
	sr.lastImport = time.Now()
	sr.lastAdded = totalAdded
	sr.mu.Unlock()

	sr.logger.Info("seed import complete",
		logger.Int("videos", len(file)),
		logger.Int("bookmarks_added", totalAdded))
	return nil
}

// LastImport reports when the last import finished and how many
// bookmarks it added.
func (sr *SeedReloader) LastImport() (time.Time, int) {
	sr.mu.RLock()
	defer sr.mu.RUnlock()
	return sr.lastImport, sr.lastAdded
}
