package model

import "time"

// BudgetPeriod is a budget's recurrence basis.
type BudgetPeriod string

const (
	// PeriodMonthly evaluates against the current calendar month.
	PeriodMonthly BudgetPeriod = "monthly"
	// PeriodAnnual evaluates against one year from the budget's start date.
	PeriodAnnual BudgetPeriod = "annual"
)

// Valid reports whether the period is one of the two known values.
func (p BudgetPeriod) Valid() bool {
	return p == PeriodMonthly || p == PeriodAnnual
}

// Budget is a spending ceiling for a category over a period.
//
// StartDate only matters for annual budgets; monthly budgets always resolve
// to the current calendar month no matter when they were created. At most
// one budget per category is the intended usage, but this is not enforced.
type Budget struct {
	ID        string       `json:"id"`
	Category  string       `json:"category"`
	Amount    Money        `json:"amount"`
	Period    BudgetPeriod `json:"period"`
	StartDate Date         `json:"startDate"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}
