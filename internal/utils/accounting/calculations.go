// Package accounting contains the pure aggregation functions that turn a
// list of transaction records into balances and per-category/per-day
// totals. No I/O, no state: repeated calls over the same snapshot always
// produce the same result, which is what makes re-running them on every
// live-subscription callback safe.
package accounting

import (
	"sort"
	"time"

	"github.com/lakemi26/tech-challenge/internal/core/domain"
	"github.com/shopspring/decimal"
)

const dayKeyFormat = "2006-01-02"

// DayKey buckets a date into its calendar day in the date's own location.
func DayKey(t time.Time) string {
	return t.Format(dayKeyFormat)
}

// Balance sums each record's signed contribution: deposits add their
// magnitude, withdrawals and transfers subtract theirs. The sign is always
// derived from the kind because the persisted sign convention has varied
// across record versions.
func Balance(txns []domain.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range txns {
		sum = sum.Add(t.SignedAmount())
	}
	return sum
}

// TotalsByClassification returns the income total (deposit magnitudes) and
// the expense total (withdrawal and transfer magnitudes pooled).
func TotalsByClassification(txns []domain.Transaction) (income, expenses decimal.Decimal) {
	income, expenses = decimal.Zero, decimal.Zero
	for _, t := range txns {
		if t.IsInflow() {
			income = income.Add(t.Magnitude())
		} else {
			expenses = expenses.Add(t.Magnitude())
		}
	}
	return income, expenses
}

// CountByClassification returns how many records are income and how many
// are outflow.
func CountByClassification(txns []domain.Transaction) (incomeCount, expenseCount int) {
	for _, t := range txns {
		if t.IsInflow() {
			incomeCount++
		} else {
			expenseCount++
		}
	}
	return incomeCount, expenseCount
}

// TotalsByCategory buckets outflow magnitudes by category. Income is never
// categorized here. The result keeps categories in order of first
// appearance so display order is stable without a separate sort.
func TotalsByCategory(txns []domain.Transaction) []domain.CategoryTotal {
	totals := make([]domain.CategoryTotal, 0)
	index := make(map[domain.Category]int)
	for _, t := range txns {
		if !t.IsOutflow() {
			continue
		}
		i, ok := index[t.Category]
		if !ok {
			i = len(totals)
			index[t.Category] = i
			totals = append(totals, domain.CategoryTotal{Category: t.Category, Amount: decimal.Zero})
		}
		totals[i].Amount = totals[i].Amount.Add(t.Magnitude())
	}
	return totals
}

// TotalsByDay buckets income and outflow magnitudes by calendar day,
// sorted by day ascending for time-series charting.
func TotalsByDay(txns []domain.Transaction) []domain.DayFlow {
	flows := make([]domain.DayFlow, 0)
	index := make(map[string]int)
	for _, t := range txns {
		key := DayKey(t.OccurredAt)
		i, ok := index[key]
		if !ok {
			i = len(flows)
			index[key] = i
			flows = append(flows, domain.DayFlow{Day: key, Income: decimal.Zero, Outflow: decimal.Zero})
		}
		if t.IsInflow() {
			flows[i].Income = flows[i].Income.Add(t.Magnitude())
		} else {
			flows[i].Outflow = flows[i].Outflow.Add(t.Magnitude())
		}
	}
	sort.Slice(flows, func(i, j int) bool { return flows[i].Day < flows[j].Day })
	return flows
}

// Summarize builds the month summary consumed by the balance cards.
func Summarize(period domain.Period, txns []domain.Transaction) domain.MonthlySummary {
	income, expenses := TotalsByClassification(txns)
	incomeCount, expenseCount := CountByClassification(txns)
	return domain.MonthlySummary{
		Period:       period,
		Income:       income,
		Expenses:     expenses,
		Balance:      Balance(txns),
		Count:        len(txns),
		IncomeCount:  incomeCount,
		ExpenseCount: expenseCount,
	}
}
