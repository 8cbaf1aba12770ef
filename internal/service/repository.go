// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the local-first repository in front of the remote
// budget API: an in-memory cache per entity kind, refreshed incrementally
// through the server-knowledge delta protocol, served instantly to readers
// and topped up by detached background syncs when stale.
package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-budget-keeper/internal/adapter"
	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/internal/store"
	"github.com/MKhiriev/go-budget-keeper/models"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxAge is the staleness threshold: cached collections older than
// this trigger a background refresh on read.
const DefaultMaxAge = 5 * time.Minute

// RepositoryConfig carries the per-budget settings of a [Repository].
type RepositoryConfig struct {
	// BudgetID is the budget all cached collections belong to.
	BudgetID string

	// MaxAge overrides [DefaultMaxAge] when positive.
	MaxAge time.Duration
}

// Repository is the public facade over the entity cache. One instance serves
// one budget/token pair for the lifetime of the process.
//
// Readers get cached data instantly after the first (blocking, lazy) sync of
// each kind; stale reads additionally schedule at most one detached
// background refresh per kind. A single mutex guards the whole store and is
// held across each sync cycle, network round trip included, so the
// collection/cursor/timestamp triple is only ever observed as the outcome of
// exactly one complete sync.
type Repository struct {
	api      adapter.BudgetAPI
	budgetID string
	exec     *SyncExecutor
	log      *logger.Logger
	maxAge   time.Duration
	now      func() time.Time

	mu       sync.Mutex
	store    store.EntityStore
	lastSync time.Time
	inflight map[store.Kind]bool
	wg       sync.WaitGroup

	// backgroundEnabled gates background refreshes; tests disable it to keep
	// reads deterministic.
	backgroundEnabled bool
}

// NewRepository builds a repository for one budget on top of the given API
// client.
func NewRepository(api adapter.BudgetAPI, cfg RepositoryConfig, log *logger.Logger) *Repository {
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = DefaultMaxAge
	}

	return &Repository{
		api:               api,
		budgetID:          cfg.BudgetID,
		exec:              NewSyncExecutor(log),
		log:               log,
		maxAge:            cfg.MaxAge,
		now:               time.Now,
		inflight:          make(map[store.Kind]bool),
		backgroundEnabled: true,
	}
}

// GetAccounts returns all cached accounts, syncing first if the kind has
// never been synced.
func (r *Repository) GetAccounts(ctx context.Context) ([]models.Account, error) {
	return getCollection(ctx, r, store.KindAccounts, &r.store.Accounts, r.syncAccountsLocked)
}

// GetPayees returns all cached payees.
func (r *Repository) GetPayees(ctx context.Context) ([]models.Payee, error) {
	return getCollection(ctx, r, store.KindPayees, &r.store.Payees, r.syncPayeesLocked)
}

// GetCategoryGroups returns all cached category groups with their nested
// categories.
func (r *Repository) GetCategoryGroups(ctx context.Context) ([]models.CategoryGroup, error) {
	return getCollection(ctx, r, store.KindCategoryGroups, &r.store.CategoryGroups, r.syncCategoryGroupsLocked)
}

// GetTransactions returns all cached transactions, unsorted; callers order
// them at read time.
func (r *Repository) GetTransactions(ctx context.Context) ([]models.TransactionDetail, error) {
	return getCollection(ctx, r, store.KindTransactions, &r.store.Transactions, r.syncTransactionsLocked)
}

// GetScheduledTransactions returns all cached scheduled transactions.
func (r *Repository) GetScheduledTransactions(ctx context.Context) ([]models.ScheduledTransaction, error) {
	return getCollection(ctx, r, store.KindScheduledTransactions, &r.store.Scheduled, r.syncScheduledLocked)
}

// SyncAccounts synchronously syncs accounts with the remote API.
func (r *Repository) SyncAccounts(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.syncAccountsLocked(ctx)
}

// SyncPayees synchronously syncs payees with the remote API.
func (r *Repository) SyncPayees(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.syncPayeesLocked(ctx)
}

// SyncCategoryGroups synchronously syncs category groups with the remote API.
func (r *Repository) SyncCategoryGroups(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.syncCategoryGroupsLocked(ctx)
}

// SyncTransactions synchronously syncs transactions with the remote API.
func (r *Repository) SyncTransactions(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.syncTransactionsLocked(ctx)
}

// SyncScheduledTransactions synchronously syncs scheduled transactions with
// the remote API.
func (r *Repository) SyncScheduledTransactions(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.syncScheduledLocked(ctx)
}

// SyncKind dispatches to the synchronous sync method for kind.
func (r *Repository) SyncKind(ctx context.Context, kind store.Kind) error {
	switch kind {
	case store.KindAccounts:
		return r.SyncAccounts(ctx)
	case store.KindPayees:
		return r.SyncPayees(ctx)
	case store.KindCategoryGroups:
		return r.SyncCategoryGroups(ctx)
	case store.KindTransactions:
		return r.SyncTransactions(ctx)
	case store.KindScheduledTransactions:
		return r.SyncScheduledTransactions(ctx)
	}
	return fmt.Errorf("unknown entity kind %q", kind)
}

// SyncAll syncs every entity kind, one goroutine per kind. Each goroutine
// still serialises on the repository lock; the group exists so one slow kind
// does not delay issuing the others and so the caller gets a combined error.
func (r *Repository) SyncAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, kind := range store.Kinds() {
		g.Go(func() error {
			return r.SyncKind(ctx, kind)
		})
	}
	return g.Wait()
}

// RefreshStale re-syncs every kind that has been synced before and has gone
// stale. Kinds nobody has ever read are left alone. Used by the periodic
// refresh worker.
func (r *Repository) RefreshStale(ctx context.Context) error {
	var errs []error
	for _, kind := range store.Kinds() {
		r.mu.Lock()
		due := r.store.Synced(kind) && r.needsSyncLocked(kind, r.maxAge)
		r.mu.Unlock()

		if !due {
			continue
		}
		if err := r.SyncKind(ctx, kind); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// IsInitialized reports whether any kind has ever been populated.
func (r *Repository) IsInitialized() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Initialized() || !r.lastSync.IsZero()
}

// LastSyncTime returns the completion time of the most recent successful sync
// of any kind, or nil if nothing has been synced yet.
func (r *Repository) LastSyncTime() *time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.lastSync.IsZero() {
		return nil
	}
	t := r.lastSync
	return &t
}

// LastSyncFor returns the last successful sync time for one kind.
func (r *Repository) LastSyncFor(kind store.Kind) (time.Time, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.LastSync(kind)
}

// Cursor returns the server-knowledge cursor stored for one kind.
func (r *Repository) Cursor(kind store.Kind) (int64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch kind {
	case store.KindAccounts:
		return r.store.Accounts.Cursor()
	case store.KindPayees:
		return r.store.Payees.Cursor()
	case store.KindCategoryGroups:
		return r.store.CategoryGroups.Cursor()
	case store.KindTransactions:
		return r.store.Transactions.Cursor()
	case store.KindScheduledTransactions:
		return r.store.Scheduled.Cursor()
	}
	return 0, false
}

// NeedsSync reports whether kind's cached collection is older than maxAge.
// A non-positive maxAge falls back to the repository default. A kind that
// has never been synced always needs one.
func (r *Repository) NeedsSync(kind store.Kind, maxAge time.Duration) bool {
	if maxAge <= 0 {
		maxAge = r.maxAge
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.needsSyncLocked(kind, maxAge)
}

// SetBackgroundSync toggles stale-read background refreshes. Tests disable
// them to keep reads deterministic.
func (r *Repository) SetBackgroundSync(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backgroundEnabled = enabled
}

// Close waits for any in-flight background syncs to finish. The repository
// has no other resources to release.
func (r *Repository) Close() {
	r.wg.Wait()
}

// getCollection implements the read path shared by every kind: lazy blocking
// first sync, instant cached reads, and a background refresh when stale. The
// returned slice is a copy; callers may sort and filter it freely.
func getCollection[E models.Entity](ctx context.Context, r *Repository, kind store.Kind, ds *store.Dataset[E], syncLocked func(context.Context) error) ([]E, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := ds.Items(); !ok {
		r.log.Info().Str("kind", string(kind)).Msg("no cached data, performing initial sync")
		if err := syncLocked(ctx); err != nil {
			return nil, err
		}
	} else if r.needsSyncLocked(kind, r.maxAge) {
		r.log.Info().Str("kind", string(kind)).Msg("cached data is stale, scheduling background sync")
		r.scheduleBackgroundSyncLocked(kind)
	}

	items, _ := ds.Items()
	return slices.Clone(items), nil
}

func (r *Repository) needsSyncLocked(kind store.Kind, maxAge time.Duration) bool {
	last, ok := r.store.LastSync(kind)
	if !ok {
		return true
	}
	return r.now().Sub(last) > maxAge
}

// scheduleBackgroundSyncLocked spawns a detached refresh for kind unless one
// is already in flight. Failures are logged and dropped: readers keep the
// stale collection until a later sync succeeds.
func (r *Repository) scheduleBackgroundSyncLocked(kind store.Kind) {
	if !r.backgroundEnabled || r.inflight[kind] {
		return
	}
	r.inflight[kind] = true
	r.wg.Add(1)

	go func() {
		defer r.wg.Done()
		defer func() {
			r.mu.Lock()
			delete(r.inflight, kind)
			r.mu.Unlock()
		}()

		// Deliberately detached from the read that scheduled it: the refresh
		// outlives the caller's request context.
		if err := r.SyncKind(context.Background(), kind); err != nil {
			r.log.Error().Str("kind", string(kind)).Err(err).
				Msg("background sync failed, keeping stale data")
			return
		}
		r.log.Info().Str("kind", string(kind)).Msg("background sync completed")
	}()
}

func (r *Repository) syncAccountsLocked(ctx context.Context) error {
	return r.finishSync(syncDataset(ctx, r.exec, store.KindAccounts, &r.store.Accounts,
		func(ctx context.Context, since *int64) ([]models.Account, int64, error) {
			return r.api.ListAccounts(ctx, r.budgetID, since)
		}))
}

func (r *Repository) syncPayeesLocked(ctx context.Context) error {
	return r.finishSync(syncDataset(ctx, r.exec, store.KindPayees, &r.store.Payees,
		func(ctx context.Context, since *int64) ([]models.Payee, int64, error) {
			return r.api.ListPayees(ctx, r.budgetID, since)
		}))
}

func (r *Repository) syncCategoryGroupsLocked(ctx context.Context) error {
	return r.finishSync(syncDataset(ctx, r.exec, store.KindCategoryGroups, &r.store.CategoryGroups,
		func(ctx context.Context, since *int64) ([]models.CategoryGroup, int64, error) {
			return r.api.ListCategoryGroups(ctx, r.budgetID, since)
		}))
}

func (r *Repository) syncTransactionsLocked(ctx context.Context) error {
	return r.finishSync(syncDataset(ctx, r.exec, store.KindTransactions, &r.store.Transactions,
		func(ctx context.Context, since *int64) ([]models.TransactionDetail, int64, error) {
			return r.api.ListTransactions(ctx, r.budgetID, since)
		}))
}

func (r *Repository) syncScheduledLocked(ctx context.Context) error {
	return r.finishSync(syncDataset(ctx, r.exec, store.KindScheduledTransactions, &r.store.Scheduled,
		func(ctx context.Context, since *int64) ([]models.ScheduledTransaction, int64, error) {
			return r.api.ListScheduledTransactions(ctx, r.budgetID, since)
		}))
}

func (r *Repository) finishSync(err error) error {
	if err == nil {
		r.lastSync = r.now()
	}
	return err
}
