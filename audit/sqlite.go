package audit

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

const (
	bufferSize    = 1000
	flushInterval = 100 * time.Millisecond
	flushBatch    = 100
	drainTimeout  = 2 * time.Second
)

const schema = `
CREATE TABLE IF NOT EXISTS routing_events (
	request_id   TEXT NOT NULL,
	timestamp    DATETIME NOT NULL,
	requested_id TEXT NOT NULL,
	chosen_id    TEXT NOT NULL,
	origin       TEXT NOT NULL,
	target_url   TEXT NOT NULL,
	status_code  INTEGER NOT NULL,
	error        TEXT NOT NULL,
	latency_ms   REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS routing_events_timestamp ON routing_events (timestamp);
`

// SQLiteWriter buffers routing events and batch-inserts them from a
// background goroutine. Events are dropped when the buffer is full.
type SQLiteWriter struct {
	db      *sql.DB
	buffer  chan *RoutingEvent
	done    chan struct{}
	flushed chan struct{}
}

func NewSQLiteWriter(ctx context.Context, path string) (*SQLiteWriter, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open audit db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping audit db: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply audit schema: %w", err)
	}

	w := &SQLiteWriter{
		db:      db,
		buffer:  make(chan *RoutingEvent, bufferSize),
		done:    make(chan struct{}),
		flushed: make(chan struct{}),
	}
	go w.flushLoop()
	return w, nil
}

func (w *SQLiteWriter) Write(event *RoutingEvent) {
	select {
	case w.buffer <- event:
	default:
		log.WithField("request_id", event.RequestID).Warn("audit buffer full, dropping event")
	}
}

// Close drains buffered events and closes the database.
func (w *SQLiteWriter) Close() {
	close(w.done)
	<-w.flushed
	if err := w.db.Close(); err != nil {
		log.WithError(err).Error("closing audit db")
	}
}

func (w *SQLiteWriter) flushLoop() {
	defer close(w.flushed)

	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	batch := make([]*RoutingEvent, 0, flushBatch)

	for {
		select {
		case event := <-w.buffer:
			batch = append(batch, event)
			if len(batch) >= flushBatch {
				w.flush(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				w.flush(batch)
				batch = batch[:0]
			}
		case <-w.done:
			deadline := time.After(drainTimeout)
		drainLoop:
			for {
				select {
				case event := <-w.buffer:
					batch = append(batch, event)
				case <-deadline:
					break drainLoop
				default:
					break drainLoop
				}
			}
			if len(batch) > 0 {
				w.flush(batch)
			}
			return
		}
	}
}

func (w *SQLiteWriter) flush(events []*RoutingEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		log.WithError(err).Error("audit begin tx failed")
		return
	}
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO routing_events (
			request_id, timestamp, requested_id, chosen_id, origin,
			target_url, status_code, error, latency_ms
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		log.WithError(err).Error("audit prepare failed")
		return
	}
	defer stmt.Close()

	for _, e := range events {
		if _, err := stmt.ExecContext(ctx,
			e.RequestID,
			e.Timestamp.UTC(),
			e.RequestedID,
			e.ChosenID,
			string(e.Origin),
			e.TargetURL,
			e.StatusCode,
			e.Error,
			e.LatencyMs,
		); err != nil {
			log.WithField("request_id", e.RequestID).WithError(err).Error("audit insert failed")
		}
	}

	if err := tx.Commit(); err != nil {
		log.WithField("batch_size", len(events)).WithError(err).Error("audit commit failed")
	}
}
