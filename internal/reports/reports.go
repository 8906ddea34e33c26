// Package reports computes the aggregates shown on the dashboard.
//
// All functions are pure, they operate on transaction slices that have
// already been read from the database and never query it themselves.
// Amounts are decimal throughout, there is no float arithmetic.
package reports

import (
	"sort"
	"time"

	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/shopspring/decimal"
)

// CategoryTotal is the total spent in one category, used for the
// expense pie chart.
type CategoryTotal struct {
	Category string          `json:"category" example:"Food"`
	Total    decimal.Decimal `json:"total" example:"110"`
}

// CategoryTotals sums expense transactions by category.
//
// Income transactions are ignored. Categories appear in the order they
// are first seen in the input, an empty input yields an empty slice so
// that clients can render a distinct "no data" state.
func CategoryTotals(transactions []models.Transaction) []CategoryTotal {
	totals := make([]CategoryTotal, 0)
	index := make(map[string]int)

	for _, t := range transactions {
		if t.Type != models.TransactionExpense {
			continue
		}

		i, ok := index[t.Category]
		if !ok {
			index[t.Category] = len(totals)
			totals = append(totals, CategoryTotal{Category: t.Category, Total: t.Amount})
			continue
		}

		totals[i].Total = totals[i].Total.Add(t.Amount)
	}

	return totals
}

// BalancePoint is one point of the running balance line chart.
type BalancePoint struct {
	Date    time.Time       `json:"date" example:"2024-01-01T00:00:00Z"`
	Balance decimal.Decimal `json:"balance" example:"800"`
}

// RunningBalance returns the cumulative signed balance after each
// transaction in chronological order.
//
// The input does not need to be sorted. Transactions on the same date
// keep their relative input order and each produce their own point.
func RunningBalance(transactions []models.Transaction) []BalancePoint {
	sorted := make([]models.Transaction, len(transactions))
	copy(sorted, transactions)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	points := make([]BalancePoint, 0, len(sorted))
	balance := decimal.Zero

	for _, t := range sorted {
		if t.Type == models.TransactionIncome {
			balance = balance.Add(t.Amount)
		} else {
			balance = balance.Sub(t.Amount)
		}

		points = append(points, BalancePoint{Date: t.Date, Balance: balance})
	}

	return points
}

// Summary holds the headline numbers at the top of the dashboard.
type Summary struct {
	Income   decimal.Decimal `json:"income" example:"1000"`
	Expenses decimal.Decimal `json:"expenses" example:"200"`
	Balance  decimal.Decimal `json:"balance" example:"800"`
}

// Summarize totals income and expenses over all transactions. The
// balance is income minus expenses and can be negative.
func Summarize(transactions []models.Transaction) Summary {
	income := decimal.Zero
	expenses := decimal.Zero

	for _, t := range transactions {
		if t.Type == models.TransactionIncome {
			income = income.Add(t.Amount)
		} else {
			expenses = expenses.Add(t.Amount)
		}
	}

	return Summary{
		Income:   income,
		Expenses: expenses,
		Balance:  income.Sub(expenses),
	}
}

// Usage is the state of one budget within its current period window.
type Usage struct {
	Spent      decimal.Decimal `json:"spent" example:"110"`
	Limit      decimal.Decimal `json:"limit" example:"100"`
	Percentage decimal.Decimal `json:"percentage" example:"110"` // Unclamped, see ClampPercentage for display
	OverBudget bool            `json:"overBudget" example:"true"`
}

// BudgetUsage sums the expenses matching the budget's category within
// the period window around now.
//
// Monthly budgets match transactions in the same calendar month as now,
// yearly budgets in the same calendar year. The percentage is not
// clamped: a budget at 150% reports 150. OverBudget is true only when
// the spent amount strictly exceeds the limit.
func BudgetUsage(budget models.Budget, transactions []models.Transaction, now time.Time) Usage {
	spent := decimal.Zero

	for _, t := range transactions {
		if t.Type != models.TransactionExpense || t.Category != budget.Category {
			continue
		}

		if !inPeriod(budget.Period, t.Date, now) {
			continue
		}

		spent = spent.Add(t.Amount)
	}

	// Limits of zero or less are rejected on save. Guard anyway so a
	// legacy row cannot produce a division by zero.
	percentage := decimal.Zero
	if budget.LimitAmount.IsPositive() {
		percentage = spent.Div(budget.LimitAmount).Mul(decimal.NewFromInt(100))
	}

	return Usage{
		Spent:      spent,
		Limit:      budget.LimitAmount,
		Percentage: percentage,
		OverBudget: spent.GreaterThan(budget.LimitAmount),
	}
}

// inPeriod reports whether the transaction date falls into the budget
// period containing now.
func inPeriod(period models.BudgetPeriod, date time.Time, now time.Time) bool {
	if period == models.BudgetYearly {
		return date.In(time.UTC).Year() == now.In(time.UTC).Year()
	}

	return types.MonthOf(now).Contains(date)
}

var hundred = decimal.NewFromInt(100)

// ClampPercentage limits a usage percentage to [0, 100] for
// progress-bar widths.
func ClampPercentage(p decimal.Decimal) decimal.Decimal {
	if p.IsNegative() {
		return decimal.Zero
	}

	if p.GreaterThan(hundred) {
		return hundred
	}

	return p
}
