package registry

import (
	"fmt"
	"sync"

	"github.com/danny0094/mcp-bridge-stack/models"
	log "github.com/sirupsen/logrus"
)

type ConfigLoadError struct {
	Source string
	Err    error
}

func (e *ConfigLoadError) Error() string {
	return fmt.Sprintf("load registry from %s: %s", e.Source, e.Err)
}

func (e *ConfigLoadError) Unwrap() error {
	return e.Err
}

type snapshotRepo interface {
	Get() (*models.RegistrySnapshot, bool)
	Put(snapshot *models.RegistrySnapshot)
}

type reloadMetrics interface {
	Update(snapshot *models.RegistrySnapshot)
	LoadFailed()
}

type Loader struct {
	Source       Source
	SnapshotRepo snapshotRepo
	Metrics      reloadMetrics

	mutex sync.Mutex
}

// Load reads the source and installs a new snapshot if the source version
// moved forward. On failure the current snapshot stays in place; the error is
// logged and returned alongside it.
func (l *Loader) Load() (*models.RegistrySnapshot, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	current, loaded := l.SnapshotRepo.Get()
	snapshot, err := l.load(current, loaded)
	if err != nil {
		loadErr := &ConfigLoadError{Source: l.Source.Name(), Err: err}
		log.WithFields(log.Fields{
			"source": l.Source.Name(),
			"routes": current.IDs(),
		}).WithError(loadErr).Error("registry load failed, keeping last known good table")
		if l.Metrics != nil {
			l.Metrics.LoadFailed()
		}
		return current, loadErr
	}
	return snapshot, nil
}

func (l *Loader) load(current *models.RegistrySnapshot, loaded bool) (*models.RegistrySnapshot, error) {
	version, err := l.Source.Version()
	if err != nil {
		return nil, fmt.Errorf("version: %w", err)
	}

	if loaded {
		if version.Equal(current.SourceVersion) {
			return current, nil
		}
		if version.Before(current.SourceVersion) {
			log.WithFields(log.Fields{
				"source":          l.Source.Name(),
				"current_version": current.SourceVersion,
				"source_version":  version,
			}).Warn("registry source version went backwards, ignoring")
			return current, nil
		}
	}

	data, err := l.Source.Read()
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	doc, err := ParseDocument(data)
	if err != nil {
		return nil, err
	}

	snapshot := models.NewRegistrySnapshot(doc.Servers, doc.AutoReload, version)
	l.SnapshotRepo.Put(snapshot)
	if l.Metrics != nil {
		l.Metrics.Update(snapshot)
	}

	log.WithFields(log.Fields{
		"source":     l.Source.Name(),
		"routes":     snapshot.IDs(),
		"autoReload": snapshot.AutoReload,
		"version":    version,
	}).Info("registry reloaded")

	return snapshot, nil
}
