package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Suvadipmandal/tally/internal/common"
	"github.com/Suvadipmandal/tally/internal/model"
	"github.com/Suvadipmandal/tally/internal/service"
)

// readBudgets loads the budget collection with the same degrade-to-empty
// behavior as readTransactions.
func (r *Repository) readBudgets(ctx context.Context) []model.Budget {
	data, err := r.store.Read(ctx, service.CollectionBudgets)
	if err != nil {
		slog.Warn("failed to read budgets, treating as empty", "error", err)
		return nil
	}
	if data == nil {
		return nil
	}
	var budgets []model.Budget
	if err := json.Unmarshal(data, &budgets); err != nil {
		slog.Warn("failed to decode budgets, treating as empty", "error", err)
		return nil
	}
	return budgets
}

// SaveBudget persists a budget with the same identity and timestamp rules as
// SaveTransaction. One budget per category is the intended usage but is not
// enforced; duplicates are stored and reported as-is.
func (r *Repository) SaveBudget(ctx context.Context, budget *model.Budget) error {
	if budget == nil {
		return fmt.Errorf("budget cannot be nil")
	}

	budgets := r.readBudgets(ctx)
	now := r.now()
	if budget.ID == "" {
		budget.ID = r.newID()
		budget.CreatedAt = now
	}
	budget.UpdatedAt = now

	replaced := false
	for i := range budgets {
		if budgets[i].ID == budget.ID {
			budgets[i] = *budget
			replaced = true
			break
		}
	}
	if !replaced {
		budgets = append(budgets, *budget)
	}

	if err := r.writeCollection(ctx, service.CollectionBudgets, budgets); err != nil {
		return err
	}

	slog.Debug("saved budget", "id", budget.ID, "category", budget.Category, "replaced", replaced)
	return nil
}

// DeleteBudget removes the budget with the given ID. Deleting an absent ID
// succeeds and changes nothing.
func (r *Repository) DeleteBudget(ctx context.Context, id string) error {
	budgets := r.readBudgets(ctx)
	filtered := make([]model.Budget, 0, len(budgets))
	for _, b := range budgets {
		if b.ID != id {
			filtered = append(filtered, b)
		}
	}
	return r.writeCollection(ctx, service.CollectionBudgets, filtered)
}

// Budgets returns every stored budget in insertion order.
func (r *Repository) Budgets(ctx context.Context) []model.Budget {
	return r.readBudgets(ctx)
}

// BudgetByID returns the budget with the given ID, or common.ErrNotFound.
func (r *Repository) BudgetByID(ctx context.Context, id string) (*model.Budget, error) {
	for _, b := range r.readBudgets(ctx) {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, common.ErrNotFound
}

// BudgetByCategory returns the first budget for a category, or
// common.ErrNotFound.
func (r *Repository) BudgetByCategory(ctx context.Context, category string) (*model.Budget, error) {
	for _, b := range r.readBudgets(ctx) {
		if b.Category == category {
			return &b, nil
		}
	}
	return nil, common.ErrNotFound
}
