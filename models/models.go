package models

// RegistryDocument is the on-disk registry format.
type RegistryDocument struct {
	AutoReload bool         `json:"autoReload"`
	Servers    []RouteEntry `json:"servers"`
}

type RouteEntry struct {
	ID  string `json:"id"`
	URL string `json:"url"`

	// Enabled is a pointer so that a missing field can default to true
	Enabled *bool `json:"enabled,omitempty"`
}

func (e RouteEntry) IsEnabled() bool {
	return e.Enabled == nil || *e.Enabled
}

type Origin string

const (
	OriginExplicit  Origin = "explicit"
	OriginDelegated Origin = "delegated"
	OriginDefault   Origin = "default"
	OriginFallback  Origin = "fallback"
)

// RoutingDecision is the outcome of resolving one request against one snapshot.
type RoutingDecision struct {
	ChosenID string
	Origin   Origin
	URL      string
}

func BoolPtr(b bool) *bool {
	return &b
}
