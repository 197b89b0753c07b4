package ledger

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/Suvadipmandal/tally/internal/model"
	"github.com/Suvadipmandal/tally/internal/service"
)

// Categories returns the stored category set. A store that was never seeded
// reports the defaults; a corrupt document also degrades to the defaults.
func (r *Repository) Categories(ctx context.Context) model.CategorySet {
	data, err := r.store.Read(ctx, service.CollectionCategories)
	if err != nil {
		slog.Warn("failed to read categories, using defaults", "error", err)
		return model.DefaultCategories()
	}
	if data == nil {
		return model.DefaultCategories()
	}
	var set model.CategorySet
	if err := json.Unmarshal(data, &set); err != nil {
		slog.Warn("failed to decode categories, using defaults", "error", err)
		return model.DefaultCategories()
	}
	return set
}

// CategoriesByType returns the ordered category list for a type. Unknown
// types yield an empty list.
func (r *Repository) CategoriesByType(ctx context.Context, txType model.TransactionType) []string {
	return r.Categories(ctx).ByType(txType)
}

// SaveCategories replaces the whole category mapping. There is no
// per-category endpoint; callers mutate the list and write it back.
func (r *Repository) SaveCategories(ctx context.Context, set model.CategorySet) error {
	return r.writeCollection(ctx, service.CollectionCategories, set)
}
