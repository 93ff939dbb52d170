package models

import "time"

// RegistrySnapshot is an immutable view of the routing table.
// Build one with NewRegistrySnapshot and never modify it afterwards.
type RegistrySnapshot struct {
	AutoReload    bool
	SourceVersion time.Time

	ids    []string
	routes map[string]string
}

// NewRegistrySnapshot materializes the enabled entries, keeping document order.
// Entries are expected to have unique ids.
func NewRegistrySnapshot(entries []RouteEntry, autoReload bool, version time.Time) *RegistrySnapshot {
	s := &RegistrySnapshot{
		AutoReload:    autoReload,
		SourceVersion: version,
		ids:           make([]string, 0, len(entries)),
		routes:        make(map[string]string, len(entries)),
	}
	for _, entry := range entries {
		if !entry.IsEnabled() {
			continue
		}
		if _, exists := s.routes[entry.ID]; !exists {
			s.ids = append(s.ids, entry.ID)
		}
		s.routes[entry.ID] = entry.URL
	}
	return s
}

func EmptySnapshot() *RegistrySnapshot {
	return NewRegistrySnapshot(nil, false, time.Time{})
}

func (s *RegistrySnapshot) Lookup(id string) (string, bool) {
	url, ok := s.routes[id]
	return url, ok
}

// IDs returns a copy of the route ids in document order.
func (s *RegistrySnapshot) IDs() []string {
	ids := make([]string, len(s.ids))
	copy(ids, s.ids)
	return ids
}

// First returns the first route in document order.
func (s *RegistrySnapshot) First() (string, string, bool) {
	if len(s.ids) == 0 {
		return "", "", false
	}
	id := s.ids[0]
	return id, s.routes[id], true
}

func (s *RegistrySnapshot) Len() int {
	return len(s.ids)
}
