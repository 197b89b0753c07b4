// Package model defines the persisted record types for the tally ledger.
package model

import "time"

// TransactionType indicates whether a transaction is income or an expense.
type TransactionType string

const (
	// TypeIncome marks money coming in.
	TypeIncome TransactionType = "income"
	// TypeExpense marks money going out.
	TypeExpense TransactionType = "expense"
)

// Valid reports whether the type is one of the two known values.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is a single recorded income or expense entry.
//
// ID, CreatedAt and UpdatedAt are assigned by the repository on save; the ID
// is immutable after the first save. Category is free-form and is not
// checked against the category set of the matching type.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      Money           `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        Date            `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
