package router

import (
	"context"
	"fmt"

	"github.com/danny0094/mcp-bridge-stack/models"
	log "github.com/sirupsen/logrus"
)

type Mode string

const (
	// ModeFirstRoute sends unaddressed requests to the first route in the table.
	ModeFirstRoute Mode = "first"
	// ModeDelegate asks the decision delegate and falls back to FallbackID.
	ModeDelegate Mode = "delegate"

	DefaultFallbackID = "dummy"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeFirstRoute, ModeDelegate:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown routing mode %q, expected %q or %q", s, ModeFirstRoute, ModeDelegate)
	}
}

type UnknownRouteError struct {
	ID    string
	Known []string
}

func (e *UnknownRouteError) Error() string {
	return fmt.Sprintf("unknown route: %s", e.ID)
}

type NoRouteError struct {
	Known []string
}

func (e *NoRouteError) Error() string {
	return "no route available"
}

type snapshotRepo interface {
	Get() (*models.RegistrySnapshot, bool)
}

//go:generate counterfeiter -o fakes/delegate.go --fake-name Delegate . delegate
type delegate interface {
	Suggest(ctx context.Context, payload []byte) (string, error)
}

type Router struct {
	SnapshotRepo snapshotRepo
	Delegate     delegate
	Mode         Mode
	FallbackID   string
}

// Route picks the backend for a request. An explicit id must exist in the
// table. Without one, the configured Mode decides. The snapshot is read once
// so the whole decision sees a single table.
func (r *Router) Route(ctx context.Context, logicalID string, explicit bool, payload []byte) (*models.RoutingDecision, error) {
	snapshot, _ := r.SnapshotRepo.Get()

	var (
		decision *models.RoutingDecision
		err      error
	)
	switch {
	case explicit:
		decision, err = r.routeExplicit(snapshot, logicalID)
	case r.Mode == ModeDelegate:
		decision, err = r.routeDelegated(ctx, snapshot, payload)
	default:
		decision, err = r.routeFirst(snapshot)
	}
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"route":  decision.ChosenID,
		"origin": decision.Origin,
		"url":    decision.URL,
	}).Info("routing decision")
	return decision, nil
}

func (r *Router) routeExplicit(snapshot *models.RegistrySnapshot, id string) (*models.RoutingDecision, error) {
	url, ok := snapshot.Lookup(id)
	if !ok {
		return nil, &UnknownRouteError{ID: id, Known: snapshot.IDs()}
	}
	return &models.RoutingDecision{ChosenID: id, Origin: models.OriginExplicit, URL: url}, nil
}

func (r *Router) routeFirst(snapshot *models.RegistrySnapshot) (*models.RoutingDecision, error) {
	id, url, ok := snapshot.First()
	if !ok {
		return nil, &NoRouteError{Known: snapshot.IDs()}
	}
	return &models.RoutingDecision{ChosenID: id, Origin: models.OriginDefault, URL: url}, nil
}

func (r *Router) routeDelegated(ctx context.Context, snapshot *models.RegistrySnapshot, payload []byte) (*models.RoutingDecision, error) {
	if r.Delegate == nil {
		return r.fallback(snapshot, log.Fields{"reason": "no decision delegate configured"})
	}

	suggested, err := r.Delegate.Suggest(ctx, payload)
	if err != nil {
		return r.fallback(snapshot, log.Fields{"reason": "decision delegate failed", "error": err.Error()})
	}

	url, ok := snapshot.Lookup(suggested)
	if !ok {
		return r.fallback(snapshot, log.Fields{"reason": "suggested route unknown", "suggested": suggested})
	}
	return &models.RoutingDecision{ChosenID: suggested, Origin: models.OriginDelegated, URL: url}, nil
}

func (r *Router) fallback(snapshot *models.RegistrySnapshot, fields log.Fields) (*models.RoutingDecision, error) {
	id := r.FallbackID
	if id == "" {
		id = DefaultFallbackID
	}
	fields["fallback"] = id
	log.WithFields(fields).Warn("falling back to default route")

	url, ok := snapshot.Lookup(id)
	if !ok {
		return nil, &NoRouteError{Known: snapshot.IDs()}
	}
	return &models.RoutingDecision{ChosenID: id, Origin: models.OriginFallback, URL: url}, nil
}
