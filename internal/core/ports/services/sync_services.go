package services

import "context"

// SyncSvcFacade reconciles the local snapshot with the external backend and
// with the offline snapshot file. Engine mutations write through to the
// backend themselves; this facade covers bulk reconciliation.
type SyncSvcFacade interface {
	// Hydrate replaces the local snapshot with the backend's current state.
	Hydrate(ctx context.Context) error

	// SeedBackend pushes the local snapshot into an empty backend. Used in
	// disconnected mode, where the in-memory backend starts blank and must
	// mirror the restored snapshot before write-through can work.
	SeedBackend(ctx context.Context) error

	// SaveSnapshot persists the local snapshot for offline resilience.
	SaveSnapshot(path string) error

	// LoadSnapshot restores a previously persisted snapshot.
	LoadSnapshot(path string) error
}
