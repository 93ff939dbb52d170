package audit

import (
	"time"

	"github.com/danny0094/mcp-bridge-stack/models"
	log "github.com/sirupsen/logrus"
)

// EventWriter records routing events. Write must never block the caller.
//
//go:generate counterfeiter -o fakes/event_writer.go --fake-name EventWriter . EventWriter
type EventWriter interface {
	Write(event *RoutingEvent)
	Close()
}

// RoutingEvent describes how one inbound request was routed and what came back.
type RoutingEvent struct {
	RequestID   string
	Timestamp   time.Time
	RequestedID string
	ChosenID    string
	Origin      models.Origin
	TargetURL   string
	StatusCode  int
	Error       string
	LatencyMs   float64
}

// LogWriter is the EventWriter used when no audit database is configured.
type LogWriter struct{}

func NewLogWriter() *LogWriter {
	return &LogWriter{}
}

func (w *LogWriter) Write(event *RoutingEvent) {
	entry := log.WithFields(log.Fields{
		"request_id":   event.RequestID,
		"requested_id": event.RequestedID,
		"chosen_id":    event.ChosenID,
		"origin":       event.Origin,
		"target_url":   event.TargetURL,
		"status_code":  event.StatusCode,
		"latency_ms":   event.LatencyMs,
	})
	if event.Error != "" {
		entry.WithField("error", event.Error).Info("routing event")
		return
	}
	entry.Debug("routing event")
}

func (w *LogWriter) Close() {}
