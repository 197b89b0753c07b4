package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Suvadipmandal/tally/internal/model"
	"github.com/Suvadipmandal/tally/internal/service"
)

// ExportAll takes a snapshot of all three collections plus an export
// timestamp. It is a pure read; empty collections export as empty lists,
// not absent keys.
func (r *Repository) ExportAll(ctx context.Context) model.Snapshot {
	txns := r.readTransactions(ctx)
	if txns == nil {
		txns = []model.Transaction{}
	}
	budgets := r.readBudgets(ctx)
	if budgets == nil {
		budgets = []model.Budget{}
	}
	cats := r.Categories(ctx)

	return model.Snapshot{
		Transactions: txns,
		Budgets:      budgets,
		Categories:   &cats,
		ExportDate:   r.now(),
	}
}

// ImportAll replaces each collection present in the snapshot wholesale;
// collections absent from the snapshot are left untouched. The collection
// writes are independent — there is no rollback, so a partial failure
// leaves some collections updated and others not. The returned error joins
// every failed write; nil means every attempted write succeeded.
func (r *Repository) ImportAll(ctx context.Context, snap model.Snapshot) error {
	var errs []error

	if snap.Transactions != nil {
		if err := r.writeCollection(ctx, service.CollectionTransactions, snap.Transactions); err != nil {
			errs = append(errs, fmt.Errorf("import transactions: %w", err))
		}
	}
	if snap.Budgets != nil {
		if err := r.writeCollection(ctx, service.CollectionBudgets, snap.Budgets); err != nil {
			errs = append(errs, fmt.Errorf("import budgets: %w", err))
		}
	}
	if snap.Categories != nil {
		if err := r.writeCollection(ctx, service.CollectionCategories, *snap.Categories); err != nil {
			errs = append(errs, fmt.Errorf("import categories: %w", err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	slog.Info("imported snapshot",
		"transactions", len(snap.Transactions),
		"budgets", len(snap.Budgets),
		"categories", snap.Categories != nil)
	return nil
}

// ResetAll erases all three collections and reseeds the default category
// set.
func (r *Repository) ResetAll(ctx context.Context) error {
	for _, col := range service.Collections() {
		if err := r.store.Erase(ctx, col); err != nil {
			return fmt.Errorf("failed to erase %s: %w", col, err)
		}
	}
	return r.writeCollection(ctx, service.CollectionCategories, model.DefaultCategories())
}
