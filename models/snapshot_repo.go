package models

import "sync/atomic"

// SnapshotRepo holds the current RegistrySnapshot. Put swaps the whole
// snapshot atomically; readers keep whatever pointer they got from Get.
type SnapshotRepo struct {
	snapshot atomic.Pointer[RegistrySnapshot]
}

var emptySnapshot = EmptySnapshot()

// Get returns the current snapshot. Before the first Put it returns an
// empty snapshot and false.
func (r *SnapshotRepo) Get() (*RegistrySnapshot, bool) {
	snapshot := r.snapshot.Load()
	if snapshot == nil {
		return emptySnapshot, false
	}
	return snapshot, true
}

func (r *SnapshotRepo) Put(snapshot *RegistrySnapshot) {
	r.snapshot.Store(snapshot)
}
