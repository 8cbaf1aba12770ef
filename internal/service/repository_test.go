// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-budget-keeper/internal/adapter"
	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/internal/mock"
	"github.com/MKhiriev/go-budget-keeper/internal/store"
	"github.com/MKhiriev/go-budget-keeper/models"
)

const testBudgetID = "budget-1"

// newTestRepository builds a repository over a mocked API with background
// syncs disabled and a controllable clock.
func newTestRepository(t *testing.T, ctrl *gomock.Controller) (*Repository, *mock.MockBudgetAPI, *time.Time) {
	t.Helper()

	api := mock.NewMockBudgetAPI(ctrl)
	repo := NewRepository(api, RepositoryConfig{BudgetID: testBudgetID}, logger.Nop())
	repo.SetBackgroundSync(false)

	clock := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return clock }
	repo.exec.now = repo.now
	repo.exec.sleep = func(time.Duration) {}

	return repo, api, &clock
}

func TestRepository_GetAccounts_LazyFirstSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo, api, _ := newTestRepository(t, ctrl)
	ctx := context.Background()

	api.EXPECT().ListAccounts(ctx, testBudgetID, nil).
		Return([]models.Account{{ID: "a1", Name: "Checking"}}, int64(100), nil)

	// first read blocks on a full refresh
	accounts, err := repo.GetAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "a1", accounts[0].ID)

	// second read is served from cache, no further API calls
	accounts, err = repo.GetAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)

	cursor, ok := repo.Cursor(store.KindAccounts)
	require.True(t, ok)
	assert.Equal(t, int64(100), cursor)
	assert.True(t, repo.IsInitialized())
}

func TestRepository_GetAccounts_FirstSyncFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo, api, _ := newTestRepository(t, ctrl)
	ctx := context.Background()

	api.EXPECT().ListAccounts(ctx, testBudgetID, nil).
		Return(nil, int64(0), adapter.ErrUnauthorized)

	_, err := repo.GetAccounts(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.False(t, repo.IsInitialized())
}

func TestRepository_SyncTwiceUsesDeltaCursor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo, api, _ := newTestRepository(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		api.EXPECT().ListPayees(ctx, testBudgetID, nil).
			Return([]models.Payee{{ID: "p1", Name: "Amazon"}}, int64(100), nil),
		api.EXPECT().ListPayees(ctx, testBudgetID, gomock.Cond(func(since *int64) bool {
			return since != nil && *since == 100
		})).
			Return([]models.Payee{{ID: "p2", Name: "Grocer"}}, int64(110), nil),
	)

	require.NoError(t, repo.SyncPayees(ctx))
	require.NoError(t, repo.SyncPayees(ctx))

	payees, err := repo.GetPayees(ctx)
	require.NoError(t, err)
	assert.Len(t, payees, 2)

	cursor, _ := repo.Cursor(store.KindPayees)
	assert.Equal(t, int64(110), cursor)
}

func TestRepository_NeedsSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo, api, clock := newTestRepository(t, ctrl)
	ctx := context.Background()

	assert.True(t, repo.NeedsSync(store.KindAccounts, 0))

	api.EXPECT().ListAccounts(ctx, testBudgetID, nil).
		Return([]models.Account{{ID: "a1"}}, int64(1), nil)
	require.NoError(t, repo.SyncAccounts(ctx))

	assert.False(t, repo.NeedsSync(store.KindAccounts, 0))

	*clock = clock.Add(DefaultMaxAge + time.Second)
	assert.True(t, repo.NeedsSync(store.KindAccounts, 0))
	assert.False(t, repo.NeedsSync(store.KindAccounts, time.Hour))
}

func TestRepository_StaleReadSchedulesBackgroundSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo, api, clock := newTestRepository(t, ctrl)
	repo.SetBackgroundSync(true)
	ctx := context.Background()

	gomock.InOrder(
		api.EXPECT().ListAccounts(gomock.Any(), testBudgetID, nil).
			Return([]models.Account{{ID: "a1"}}, int64(100), nil),
		api.EXPECT().ListAccounts(gomock.Any(), testBudgetID, gomock.Not(gomock.Nil())).
			Return([]models.Account{{ID: "a2"}}, int64(110), nil),
	)

	accounts, err := repo.GetAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)

	*clock = clock.Add(DefaultMaxAge + time.Second)

	// stale read returns the old collection and kicks off a refresh
	accounts, err = repo.GetAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a1", accounts[0].ID)

	repo.Close()

	accounts, err = repo.GetAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
}

func TestRepository_SyncAllCoversEveryKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo, api, _ := newTestRepository(t, ctrl)
	ctx := context.Background()

	api.EXPECT().ListAccounts(gomock.Any(), testBudgetID, nil).Return(nil, int64(1), nil)
	api.EXPECT().ListPayees(gomock.Any(), testBudgetID, nil).Return(nil, int64(1), nil)
	api.EXPECT().ListCategoryGroups(gomock.Any(), testBudgetID, nil).Return(nil, int64(1), nil)
	api.EXPECT().ListTransactions(gomock.Any(), testBudgetID, nil).Return(nil, int64(1), nil)
	api.EXPECT().ListScheduledTransactions(gomock.Any(), testBudgetID, nil).Return(nil, int64(1), nil)

	require.NoError(t, repo.SyncAll(ctx))

	for _, kind := range store.Kinds() {
		_, ok := repo.LastSyncFor(kind)
		assert.True(t, ok, "kind %s not synced", kind)
	}
	require.NotNil(t, repo.LastSyncTime())
}

func TestRepository_RefreshStaleSkipsUnsyncedKinds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo, api, clock := newTestRepository(t, ctrl)
	ctx := context.Background()

	// only accounts have ever been synced
	api.EXPECT().ListAccounts(gomock.Any(), testBudgetID, nil).
		Return([]models.Account{{ID: "a1"}}, int64(100), nil)
	require.NoError(t, repo.SyncAccounts(ctx))

	// fresh: nothing to do
	require.NoError(t, repo.RefreshStale(ctx))

	*clock = clock.Add(DefaultMaxAge + time.Second)

	api.EXPECT().ListAccounts(gomock.Any(), testBudgetID, gomock.Not(gomock.Nil())).
		Return(nil, int64(110), nil)
	require.NoError(t, repo.RefreshStale(ctx))
}

func TestRepository_UpdateMonthCategoryInvalidatesGroups(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo, api, _ := newTestRepository(t, ctrl)
	ctx := context.Background()
	month := models.NewDate(2026, time.August, 1)

	api.EXPECT().ListCategoryGroups(gomock.Any(), testBudgetID, nil).
		Return([]models.CategoryGroup{{ID: "g1", Name: "Everyday"}}, int64(100), nil)
	_, err := repo.GetCategoryGroups(ctx)
	require.NoError(t, err)

	api.EXPECT().UpdateMonthCategory(ctx, testBudgetID, month, "cat-1", models.Milliunits(200_000)).
		Return(models.Category{ID: "cat-1", Budgeted: 200_000}, nil)

	category, err := repo.UpdateMonthCategory(ctx, month, "cat-1", 200_000)
	require.NoError(t, err)
	assert.Equal(t, models.Milliunits(200_000), category.Budgeted)

	// the cached kind was dropped, so the next read full-refreshes
	_, ok := repo.Cursor(store.KindCategoryGroups)
	assert.False(t, ok)

	api.EXPECT().ListCategoryGroups(gomock.Any(), testBudgetID, nil).
		Return([]models.CategoryGroup{{ID: "g1", Name: "Everyday"}}, int64(120), nil)
	_, err = repo.GetCategoryGroups(ctx)
	require.NoError(t, err)
}

func TestRepository_UpdateTransactionInvalidatesTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo, api, _ := newTestRepository(t, ctrl)
	ctx := context.Background()

	api.EXPECT().ListTransactions(gomock.Any(), testBudgetID, nil).
		Return([]models.TransactionDetail{{ID: "t1"}}, int64(100), nil)
	_, err := repo.GetTransactions(ctx)
	require.NoError(t, err)

	memo := "updated"
	api.EXPECT().UpdateTransaction(ctx, testBudgetID, "t1", gomock.Any()).
		Return(models.TransactionDetail{ID: "t1", Memo: &memo}, nil)

	updated, err := repo.UpdateTransaction(ctx, "t1", models.SaveTransaction{Memo: &memo})
	require.NoError(t, err)
	require.NotNil(t, updated.Memo)

	_, ok := repo.Cursor(store.KindTransactions)
	assert.False(t, ok)
}

func TestRepository_GetReturnsCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo, api, _ := newTestRepository(t, ctrl)
	ctx := context.Background()

	api.EXPECT().ListAccounts(ctx, testBudgetID, nil).
		Return([]models.Account{{ID: "a1", Name: "Checking"}}, int64(1), nil)

	first, err := repo.GetAccounts(ctx)
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := repo.GetAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Checking", second[0].Name)
}

func TestRepository_SyncKindUnknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo, _, _ := newTestRepository(t, ctrl)
	assert.Error(t, repo.SyncKind(context.Background(), store.Kind("bogus")))
}
