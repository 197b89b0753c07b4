package ledger

import (
	"context"
	"time"

	"github.com/Suvadipmandal/tally/internal/model"
	"github.com/Suvadipmandal/tally/internal/service"
)

// MonthlyPoint is one month of the yearly income/expense series.
type MonthlyPoint struct {
	Month    time.Month
	Income   model.Money
	Expenses model.Money
}

// BudgetStatus compares a budget's ceiling against actual spend inside its
// applicable window.
//
// Percentage is plain floating-point division of actual over budgeted, so a
// zero budget amount yields +Inf (or NaN when nothing was spent either).
// Callers rendering the value should treat non-finite percentages as "not
// applicable" rather than expecting a clamped number.
type BudgetStatus struct {
	Category   string
	Period     model.BudgetPeriod
	Budgeted   model.Money
	Actual     model.Money
	Remaining  model.Money
	Percentage float64
}

// sumByType adds up amounts of matching-type transactions, optionally
// restricted to an inclusive date range. An empty set sums to zero.
func (r *Repository) sumByType(ctx context.Context, txType model.TransactionType, rng *service.DateRange) model.Money {
	var total model.Money
	for _, t := range r.readTransactions(ctx) {
		if t.Type != txType {
			continue
		}
		if rng != nil && !rng.Contains(t.Date) {
			continue
		}
		total += t.Amount
	}
	return total
}

// TotalIncome sums income amounts, optionally restricted to a date range.
func (r *Repository) TotalIncome(ctx context.Context, rng *service.DateRange) model.Money {
	return r.sumByType(ctx, model.TypeIncome, rng)
}

// TotalExpenses sums expense amounts, optionally restricted to a date range.
func (r *Repository) TotalExpenses(ctx context.Context, rng *service.DateRange) model.Money {
	return r.sumByType(ctx, model.TypeExpense, rng)
}

// NetBalance is total income minus total expenses over the same range.
func (r *Repository) NetBalance(ctx context.Context, rng *service.DateRange) model.Money {
	return r.TotalIncome(ctx, rng) - r.TotalExpenses(ctx, rng)
}

// SpendingByCategory maps each category to its summed expense amount.
// Only categories appearing in at least one matching expense transaction are
// present; there is no zero-filling for the rest of the category set.
func (r *Repository) SpendingByCategory(ctx context.Context, rng *service.DateRange) map[string]model.Money {
	spending := make(map[string]model.Money)
	for _, t := range r.readTransactions(ctx) {
		if t.Type != model.TypeExpense {
			continue
		}
		if rng != nil && !rng.Contains(t.Date) {
			continue
		}
		spending[t.Category] += t.Amount
	}
	return spending
}

// MonthlySeries reports income and expense sums for each of the twelve
// calendar months of a year. Every month is present in the result even when
// nothing was recorded in it — unlike SpendingByCategory, which omits absent
// keys. Both behaviors are deliberate and distinct.
func (r *Repository) MonthlySeries(ctx context.Context, year int) []MonthlyPoint {
	series := make([]MonthlyPoint, 12)
	for i := range series {
		series[i].Month = time.Month(i + 1)
	}

	for _, t := range r.readTransactions(ctx) {
		if t.Date.Year() != year {
			continue
		}
		point := &series[int(t.Date.Month())-1]
		switch t.Type {
		case model.TypeIncome:
			point.Income += t.Amount
		case model.TypeExpense:
			point.Expenses += t.Amount
		}
	}

	return series
}

// BudgetVsActual evaluates every stored budget against expense spend in its
// applicable window. Monthly budgets always use the current calendar month,
// regardless of their own start date; annual budgets use one year from their
// start date, end exclusive.
func (r *Repository) BudgetVsActual(ctx context.Context) []BudgetStatus {
	budgets := r.readBudgets(ctx)
	if len(budgets) == 0 {
		return nil
	}
	txns := r.readTransactions(ctx)

	now := r.now()
	monthStart := model.NewDate(now.Year(), now.Month(), 1)
	monthEnd := model.DateOf(monthStart.AddDate(0, 1, -1))

	statuses := make([]BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		var actual model.Money
		for _, t := range txns {
			if t.Type != model.TypeExpense || t.Category != b.Category {
				continue
			}
			switch b.Period {
			case model.PeriodMonthly:
				if !t.Date.Within(monthStart, monthEnd) {
					continue
				}
			case model.PeriodAnnual:
				windowEnd := b.StartDate.AddDate(1, 0, 0)
				if t.Date.Before(b.StartDate.Time) || !t.Date.Before(windowEnd) {
					continue
				}
			default:
				continue
			}
			actual += t.Amount
		}

		statuses = append(statuses, BudgetStatus{
			Category:   b.Category,
			Period:     b.Period,
			Budgeted:   b.Amount,
			Actual:     actual,
			Remaining:  b.Amount - actual,
			Percentage: actual.Float64() / b.Amount.Float64() * 100,
		})
	}

	return statuses
}
