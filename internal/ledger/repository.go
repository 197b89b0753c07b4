// Package ledger implements the repository that owns the persisted
// collections and derives every reporting view from them.
//
// The repository is stateless across calls: every operation re-reads the
// affected collection from the store, so instances are interchangeable and
// calls compose freely. Mutations follow a whole-collection
// read-modify-write cycle, which is safe under the single-writer assumption
// this application makes; two concurrent writers could silently drop one
// writer's change, and that is an accepted limitation rather than something
// to lock around.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Suvadipmandal/tally/internal/common"
	"github.com/Suvadipmandal/tally/internal/model"
	"github.com/Suvadipmandal/tally/internal/service"
)

// Repository provides CRUD, identity assignment and aggregate queries over
// the three persisted collections.
type Repository struct {
	store service.Store
	now   func() time.Time
	newID func() string
}

// NewRepository creates a repository over the given store. Construct it once
// at startup and pass it to whatever drives it; there is no process-wide
// instance.
func NewRepository(store service.Store) *Repository {
	return &Repository{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// Init seeds the category set with the defaults if the collection has never
// been written. Seeding happens exactly once per store: a store seeded by an
// older version keeps its list even if the defaults change later.
func (r *Repository) Init(ctx context.Context) error {
	data, err := r.store.Read(ctx, service.CollectionCategories)
	if err != nil {
		return fmt.Errorf("failed to check category seed: %w", err)
	}
	if data != nil {
		return nil
	}
	return r.writeCollection(ctx, service.CollectionCategories, model.DefaultCategories())
}

// readTransactions loads the transaction collection. Absent, unreadable or
// corrupt documents degrade to an empty collection; reads never fail upward.
func (r *Repository) readTransactions(ctx context.Context) []model.Transaction {
	data, err := r.store.Read(ctx, service.CollectionTransactions)
	if err != nil {
		slog.Warn("failed to read transactions, treating as empty", "error", err)
		return nil
	}
	if data == nil {
		return nil
	}
	var txns []model.Transaction
	if err := json.Unmarshal(data, &txns); err != nil {
		slog.Warn("failed to decode transactions, treating as empty", "error", err)
		return nil
	}
	return txns
}

// writeCollection serializes a collection value and replaces the stored
// document. A failed write leaves the previous document intact.
func (r *Repository) writeCollection(ctx context.Context, col service.Collection, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", col, err)
	}
	if err := r.store.Write(ctx, col, data); err != nil {
		return fmt.Errorf("%w: %s: %v", common.ErrStorageFailure, col, err)
	}
	return nil
}

// SaveTransaction persists a transaction. A record without an ID gets a
// fresh one plus its CreatedAt; UpdatedAt is refreshed on every save. An
// existing record with the same ID is replaced in place, otherwise the
// record is appended.
//
// The assigned ID and timestamps remain set on the passed record even when
// the underlying write fails.
func (r *Repository) SaveTransaction(ctx context.Context, txn *model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("transaction cannot be nil")
	}

	txns := r.readTransactions(ctx)
	now := r.now()
	if txn.ID == "" {
		txn.ID = r.newID()
		txn.CreatedAt = now
	}
	txn.UpdatedAt = now

	replaced := false
	for i := range txns {
		if txns[i].ID == txn.ID {
			txns[i] = *txn
			replaced = true
			break
		}
	}
	if !replaced {
		txns = append(txns, *txn)
	}

	if err := r.writeCollection(ctx, service.CollectionTransactions, txns); err != nil {
		return err
	}

	slog.Debug("saved transaction", "id", txn.ID, "type", txn.Type, "replaced", replaced)
	return nil
}

// DeleteTransaction removes the transaction with the given ID. Deleting an
// absent ID succeeds and changes nothing.
func (r *Repository) DeleteTransaction(ctx context.Context, id string) error {
	txns := r.readTransactions(ctx)
	filtered := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		if t.ID != id {
			filtered = append(filtered, t)
		}
	}
	return r.writeCollection(ctx, service.CollectionTransactions, filtered)
}

// Transactions returns every stored transaction in insertion order.
func (r *Repository) Transactions(ctx context.Context) []model.Transaction {
	return r.readTransactions(ctx)
}

// TransactionByID returns the transaction with the given ID, or
// common.ErrNotFound.
func (r *Repository) TransactionByID(ctx context.Context, id string) (*model.Transaction, error) {
	for _, t := range r.readTransactions(ctx) {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, common.ErrNotFound
}

// TransactionsByDateRange returns transactions dated within [start, end],
// both bounds inclusive, in stored order.
func (r *Repository) TransactionsByDateRange(ctx context.Context, start, end model.Date) []model.Transaction {
	var out []model.Transaction
	for _, t := range r.readTransactions(ctx) {
		if t.Date.Within(start, end) {
			out = append(out, t)
		}
	}
	return out
}

// TransactionsByCategory returns transactions in the given category, in
// stored order.
func (r *Repository) TransactionsByCategory(ctx context.Context, category string) []model.Transaction {
	var out []model.Transaction
	for _, t := range r.readTransactions(ctx) {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// TransactionsByType returns transactions of the given type, in stored
// order.
func (r *Repository) TransactionsByType(ctx context.Context, txType model.TransactionType) []model.Transaction {
	var out []model.Transaction
	for _, t := range r.readTransactions(ctx) {
		if t.Type == txType {
			out = append(out, t)
		}
	}
	return out
}
