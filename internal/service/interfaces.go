// Package service defines the contracts between the ledger repository and
// its collaborators.
package service

import (
	"context"

	"github.com/Suvadipmandal/tally/internal/model"
)

// Collection names a persisted document in the store.
type Collection string

const (
	// CollectionTransactions holds the ordered transaction list.
	CollectionTransactions Collection = "transactions"
	// CollectionBudgets holds the ordered budget list.
	CollectionBudgets Collection = "budgets"
	// CollectionCategories holds the type-to-category-list mapping.
	CollectionCategories Collection = "categories"
)

// Collections lists every known collection, in persistence order.
func Collections() []Collection {
	return []Collection{CollectionTransactions, CollectionBudgets, CollectionCategories}
}

// Store is the persistence contract for whole-collection documents.
//
// Each collection is a single serialized value replaced atomically on write.
// Reads return (nil, nil) when the collection has never been written; a
// failed write leaves the previous value intact. There is no partial or
// streamed access: collections are expected to stay small (thousands of
// records), and concurrent writers are out of scope — two overlapping
// read-modify-write cycles can silently drop one writer's change.
type Store interface {
	// Read returns the last successfully written document for the
	// collection, or (nil, nil) if it was never written.
	Read(ctx context.Context, col Collection) ([]byte, error)

	// Write atomically replaces the collection's document.
	Write(ctx context.Context, col Collection, data []byte) error

	// Erase removes the collection's document. Erasing an absent
	// collection is a no-op.
	Erase(ctx context.Context, col Collection) error

	// Migrate brings the underlying medium to the expected schema.
	Migrate(ctx context.Context) error

	// Close releases the underlying medium.
	Close() error
}

// DateRange is an inclusive calendar-date interval used by range-filtered
// queries and aggregates.
type DateRange struct {
	Start model.Date
	End   model.Date
}

// Contains reports whether a date falls inside the range, bounds included.
func (r DateRange) Contains(d model.Date) bool {
	return d.Within(r.Start, r.End)
}
