package watcher

import (
	"context"
	"time"

	"github.com/danny0094/mcp-bridge-stack/models"
	log "github.com/sirupsen/logrus"
	"k8s.io/apimachinery/pkg/util/wait"
)

const DefaultInterval = 3 * time.Second

//go:generate counterfeiter -o fakes/loader.go --fake-name Loader . loader
type loader interface {
	Load() (*models.RegistrySnapshot, error)
}

//go:generate counterfeiter -o fakes/snapshot_repo.go --fake-name SnapshotRepo . snapshotRepo
type snapshotRepo interface {
	Get() (*models.RegistrySnapshot, bool)
}

// Watcher polls the registry source on a fixed interval. It only reloads
// while the current snapshot has autoReload set, or while nothing has been
// loaded yet.
type Watcher struct {
	Loader       loader
	SnapshotRepo snapshotRepo
	Interval     time.Duration
}

// Run blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	interval := w.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	log.WithField("interval", interval.String()).Info("registry watcher started")
	wait.UntilWithContext(ctx, w.tick, interval)
	log.Info("registry watcher stopped")
}

func (w *Watcher) tick(ctx context.Context) {
	snapshot, loaded := w.SnapshotRepo.Get()
	if loaded && !snapshot.AutoReload {
		return
	}
	// errors are logged by the loader; the next tick retries
	w.Loader.Load()
}
