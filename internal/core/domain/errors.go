package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested slug, component, template,
	// category or use case does not exist in the current collection.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrRebuildInProgress indicates an index rebuild is already running.
	// At most one rebuild may be in flight per process.
	ErrRebuildInProgress = errors.New("rebuild in progress")

	// ErrSyncFailed indicates the corpus could not be synchronised from
	// upstream. The previously built collection remains queryable.
	ErrSyncFailed = errors.New("corpus sync failed")

	// ErrIndexUnavailable indicates the index has not been built yet.
	ErrIndexUnavailable = errors.New("index unavailable")
)
