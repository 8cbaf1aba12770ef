package service

import (
	"fmt"

	"github.com/MKhiriev/go-budget-keeper/internal/store"
)

// SyncError is a sync cycle that failed after the retry/fallback machinery
// was exhausted. It wraps the terminal transport error; unexpected
// non-transport failures are propagated without this wrapper.
type SyncError struct {
	Kind store.Kind
	Err  error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("sync %s: %v", e.Kind, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}
