package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Suvadipmandal/tally/internal/common"
	"github.com/Suvadipmandal/tally/internal/model"
	"github.com/Suvadipmandal/tally/internal/service"
	"github.com/Suvadipmandal/tally/internal/storage"
)

func TestExportAllEmptyLedger(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	exportedAt := time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return exportedAt }

	snap := repo.ExportAll(ctx)

	require.NotNil(t, snap.Transactions, "empty collections export as empty lists, not null")
	require.NotNil(t, snap.Budgets)
	require.NotNil(t, snap.Categories)
	assert.Empty(t, snap.Transactions)
	assert.Empty(t, snap.Budgets)
	assert.Equal(t, model.DefaultCategories(), *snap.Categories)
	assert.Equal(t, exportedAt, snap.ExportDate)
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	source := newTestRepository(t)
	seedAggregateFixture(t, source)
	require.NoError(t, source.SaveBudget(ctx, &model.Budget{
		Category: "Food", Amount: 10000, Period: model.PeriodMonthly,
		StartDate: model.NewDate(2024, time.January, 1),
	}))

	snap := source.ExportAll(ctx)

	target := newTestRepository(t)
	require.NoError(t, target.ImportAll(ctx, snap))

	assert.Equal(t, source.Transactions(ctx), target.Transactions(ctx))
	assert.Equal(t, source.Budgets(ctx), target.Budgets(ctx))
	assert.Equal(t, source.Categories(ctx), target.Categories(ctx))
}

func TestImportAllPartialSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	seedAggregateFixture(t, repo)
	require.NoError(t, repo.SaveBudget(ctx, &model.Budget{
		Category: "Food", Amount: 10000, Period: model.PeriodMonthly,
		StartDate: model.NewDate(2024, time.January, 1),
	}))

	// Only transactions present: budgets and categories stay untouched
	partial := model.Snapshot{
		Transactions: []model.Transaction{{
			ID: "t-new", Type: model.TypeExpense, Amount: 42,
			Category: "Other", Date: model.NewDate(2024, time.May, 1),
		}},
	}
	require.NoError(t, repo.ImportAll(ctx, partial))

	txns := repo.Transactions(ctx)
	require.Len(t, txns, 1, "imported collection replaces wholesale")
	assert.Equal(t, "t-new", txns[0].ID)
	assert.Len(t, repo.Budgets(ctx), 1)
	assert.Equal(t, model.DefaultCategories(), repo.Categories(ctx))
}

func TestImportAllEmptySliceClears(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	seedAggregateFixture(t, repo)

	// An empty (non-nil) list is a deliberate clear, unlike an absent key
	require.NoError(t, repo.ImportAll(ctx, model.Snapshot{Transactions: []model.Transaction{}}))
	assert.Empty(t, repo.Transactions(ctx))
}

func TestImportAllPartialFailure(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStore()
	base := NewRepository(mem)
	require.NoError(t, base.Init(ctx))

	oldBudget := &model.Budget{Category: "Food", Amount: 10000, Period: model.PeriodMonthly, StartDate: model.NewDate(2024, time.January, 1)}
	require.NoError(t, base.SaveBudget(ctx, oldBudget))

	repo := NewRepository(&failingStore{
		Store: mem,
		failWrites: map[service.Collection]bool{
			service.CollectionBudgets:    true,
			service.CollectionCategories: true,
		},
	})

	newCats := model.CategorySet{Expense: []string{"Rent"}, Income: []string{"Wages"}}
	snap := model.Snapshot{
		Transactions: []model.Transaction{{
			ID: "t-new", Type: model.TypeExpense, Amount: 42,
			Category: "Other", Date: model.NewDate(2024, time.May, 1),
		}},
		Budgets: []model.Budget{{
			ID: "b-new", Category: "Housing", Amount: 500, Period: model.PeriodMonthly,
			StartDate: model.NewDate(2024, time.May, 1),
		}},
		Categories: &newCats,
	}

	err := repo.ImportAll(ctx, snap)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrStorageFailure)
	assert.Contains(t, err.Error(), "import budgets")
	assert.Contains(t, err.Error(), "import categories")

	// The transaction write landed; the failed collections kept their values
	txns := base.Transactions(ctx)
	require.Len(t, txns, 1)
	assert.Equal(t, "t-new", txns[0].ID)

	budgets := base.Budgets(ctx)
	require.Len(t, budgets, 1)
	assert.Equal(t, oldBudget.ID, budgets[0].ID)
	assert.Equal(t, model.DefaultCategories(), base.Categories(ctx))
}

func TestResetAllReseedsDefaults(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	seedAggregateFixture(t, repo)
	require.NoError(t, repo.SaveCategories(ctx, model.CategorySet{Expense: []string{"Rent"}, Income: []string{"Wages"}}))

	require.NoError(t, repo.ResetAll(ctx))

	assert.Empty(t, repo.Transactions(ctx))
	assert.Empty(t, repo.Budgets(ctx))
	assert.Equal(t, model.DefaultCategories(), repo.Categories(ctx))
}
