// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	"github.com/MKhiriev/go-budget-keeper/models"
)

// Dataset is the cached state for one entity kind: the collection, the
// server-knowledge cursor it was produced with, and the wall-clock time of
// the last successful sync. The three values are only ever written together
// through Replace, so a reader never observes a cursor paired with a
// collection from a different sync's outcome.
//
// Dataset does no locking of its own; the owning repository serialises all
// access under its mutex.
type Dataset[E models.Entity] struct {
	items    []E
	cursor   int64
	lastSync time.Time
	present  bool
}

// Items returns the cached collection and whether the kind has ever been
// synced. The returned slice is the internal one; callers that hand it out
// must copy it first.
func (d *Dataset[E]) Items() ([]E, bool) {
	return d.items, d.present
}

// Cursor returns the server-knowledge cursor for the kind. ok is false when
// the kind has never completed a sync, which means the next fetch must be a
// full refresh.
func (d *Dataset[E]) Cursor() (int64, bool) {
	return d.cursor, d.present
}

// LastSync returns the completion time of the most recent successful sync,
// or ok=false when the kind has never been synced.
func (d *Dataset[E]) LastSync() (time.Time, bool) {
	return d.lastSync, d.present
}

// Replace commits the outcome of one complete sync: collection, cursor and
// timestamp in a single write. This is the only mutation path, which is what
// makes the three-way update atomic: a failed sync simply never calls it.
func (d *Dataset[E]) Replace(items []E, cursor int64, at time.Time) {
	d.items = items
	d.cursor = cursor
	d.lastSync = at
	d.present = true
}

// Clear drops the collection and its cursor so the next read triggers a full
// refresh. Used when a write-through update invalidates the cached kind.
func (d *Dataset[E]) Clear() {
	var zero Dataset[E]
	*d = zero
}

// EntityStore aggregates the cached datasets for every entity kind the
// repository serves. It is owned exclusively by the repository and must only
// be touched while holding the repository's lock.
type EntityStore struct {
	Accounts       Dataset[models.Account]
	Payees         Dataset[models.Payee]
	CategoryGroups Dataset[models.CategoryGroup]
	Transactions   Dataset[models.TransactionDetail]
	Scheduled      Dataset[models.ScheduledTransaction]
}

// LastSync reports the last successful sync time for the given kind.
func (s *EntityStore) LastSync(kind Kind) (time.Time, bool) {
	switch kind {
	case KindAccounts:
		return s.Accounts.LastSync()
	case KindPayees:
		return s.Payees.LastSync()
	case KindCategoryGroups:
		return s.CategoryGroups.LastSync()
	case KindTransactions:
		return s.Transactions.LastSync()
	case KindScheduledTransactions:
		return s.Scheduled.LastSync()
	}
	return time.Time{}, false
}

// Synced reports whether the given kind has ever completed a sync.
func (s *EntityStore) Synced(kind Kind) bool {
	_, ok := s.LastSync(kind)
	return ok
}

// Initialized reports whether any kind has been populated.
func (s *EntityStore) Initialized() bool {
	for _, kind := range Kinds() {
		if s.Synced(kind) {
			return true
		}
	}
	return false
}
