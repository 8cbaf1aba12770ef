// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-budget-keeper/internal/adapter"
	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/internal/store"
	"github.com/MKhiriev/go-budget-keeper/models"
	"github.com/cenkalti/backoff/v5"
)

// rateLimitAttempts is the total number of fetch attempts for a rate-limited
// request, including the first one.
const rateLimitAttempts = 3

// FetchFunc fetches one entity kind from the remote API. A nil cursor means
// full refresh; non-nil means delta fetch of changes after that cursor. The
// returned cursor is the server knowledge the batch corresponds to.
type FetchFunc[E models.Entity] func(ctx context.Context, since *int64) ([]E, int64, error)

// SyncExecutor runs fetch-and-merge cycles against the remote API and owns
// the retry policy for them. The clock hooks exist so tests can observe
// sleeps instead of waiting them out.
type SyncExecutor struct {
	maxAttempts int
	newBackOff  func() backoff.BackOff
	sleep       func(time.Duration)
	now         func() time.Time
	log         *logger.Logger
}

// NewSyncExecutor builds an executor with the production retry policy:
// exponential backoff starting at one second, doubling per attempt, three
// attempts total.
func NewSyncExecutor(log *logger.Logger) *SyncExecutor {
	return &SyncExecutor{
		maxAttempts: rateLimitAttempts,
		newBackOff:  newRateLimitBackOff,
		sleep:       time.Sleep,
		now:         time.Now,
		log:         log,
	}
}

func newRateLimitBackOff() backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = time.Second
	bo.Multiplier = 2
	bo.RandomizationFactor = 0
	return bo
}

// syncDataset performs one complete sync cycle for one kind and commits the
// outcome into ds. On any unrecovered failure ds is left exactly as it was:
// the single Replace call at the end is the only mutation.
//
// Error handling follows the transport taxonomy:
//   - rate limit: retried in fetchWithRetry; exhaustion is terminal;
//   - cursor conflict on a delta fetch: expected and recoverable, retried
//     once as a full refresh;
//   - any other API fault on a delta fetch: one full-refresh fallback;
//   - non-transport errors: propagated immediately, unwrapped.
func syncDataset[E models.Entity](ctx context.Context, ex *SyncExecutor, kind store.Kind, ds *store.Dataset[E], fetch FetchFunc[E]) error {
	var since *int64
	if cursor, ok := ds.Cursor(); ok {
		since = &cursor
	}

	entities, newCursor, err := fetchWithRetry(ctx, ex, kind, fetch, since)
	if err != nil {
		switch {
		case since != nil && errors.Is(err, adapter.ErrCursorConflict):
			ex.log.Info().Str("kind", string(kind)).Err(err).
				Msg("server knowledge no longer valid, falling back to full refresh")
		case since != nil && isGenericAPIFault(err):
			ex.log.Warn().Str("kind", string(kind)).Err(err).
				Msg("delta fetch failed, falling back to full refresh")
		case isTransportError(err):
			return &SyncError{Kind: kind, Err: err}
		default:
			return err
		}

		since = nil
		entities, newCursor, err = fetchWithRetry(ctx, ex, kind, fetch, nil)
		if err != nil {
			if isTransportError(err) {
				return &SyncError{Kind: kind, Err: err}
			}
			return err
		}
	}

	next := entities
	if since != nil {
		if current, ok := ds.Items(); ok {
			next = Merge(current, entities)
		}
	}
	ds.Replace(next, newCursor, ex.now())
	return nil
}

// fetchWithRetry runs fetch, retrying only rate-limited failures with
// exponential backoff. Any other error is returned to syncDataset untouched
// so the conflict/fallback logic there stays in one place.
func fetchWithRetry[E models.Entity](ctx context.Context, ex *SyncExecutor, kind store.Kind, fetch FetchFunc[E], since *int64) ([]E, int64, error) {
	bo := ex.newBackOff()
	for attempt := 1; ; attempt++ {
		entities, cursor, err := fetch(ctx, since)
		if err == nil {
			return entities, cursor, nil
		}
		if !errors.Is(err, adapter.ErrRateLimited) || attempt >= ex.maxAttempts {
			return nil, 0, err
		}

		wait := bo.NextBackOff()
		ex.log.Warn().Str("kind", string(kind)).Int("attempt", attempt).Dur("wait", wait).
			Msg("rate limited, backing off")
		ex.sleep(wait)
	}
}

// isGenericAPIFault reports whether err is a non-2xx API response that is
// neither a rate limit nor a cursor conflict nor an auth failure: the
// "generic transport fault" class that earns one full-refresh fallback.
func isGenericAPIFault(err error) bool {
	var apiErr *adapter.APIError
	return errors.As(err, &apiErr)
}

// isTransportError reports whether err belongs to the remote transport error
// taxonomy at all. Anything outside it is a programming error or a malformed
// response and must propagate unwrapped.
func isTransportError(err error) bool {
	return isGenericAPIFault(err) ||
		errors.Is(err, adapter.ErrRateLimited) ||
		errors.Is(err, adapter.ErrCursorConflict) ||
		errors.Is(err, adapter.ErrUnauthorized)
}
