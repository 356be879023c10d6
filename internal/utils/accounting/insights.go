package accounting

import (
	"github.com/lakemi26/tech-challenge/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// sharePercent returns part as an integer percentage of total, 0 when the
// total is zero.
func sharePercent(part, total decimal.Decimal) int64 {
	if total.IsZero() {
		return 0
	}
	return part.Div(total).Mul(hundred).Round(0).IntPart()
}

// BuildInsights derives the month highlights from one month of records.
//
// An empty record list produces the distinguished no-data result
// (HasData=false, only Period set) rather than a populated result full of
// zeroes. Ties for the top category and top day keep whichever was seen
// first.
func BuildInsights(period domain.Period, txns []domain.Transaction) domain.Insights {
	if len(txns) == 0 {
		return domain.Insights{Period: period}
	}

	income, expenses := TotalsByClassification(txns)
	balance := Balance(txns)
	_, outflowCount := CountByClassification(txns)

	insights := domain.Insights{
		Period:       period,
		HasData:      true,
		Income:       income,
		Expenses:     expenses,
		Balance:      balance,
		Count:        len(txns),
		OutflowCount: outflowCount,
	}

	for _, ct := range TotalsByCategory(txns) {
		if insights.TopCategory == nil || ct.Amount.GreaterThan(insights.TopCategory.Amount) {
			insights.TopCategory = &domain.CategoryHighlight{Category: ct.Category, Amount: ct.Amount}
		}
	}
	if insights.TopCategory != nil {
		insights.TopCategory.Share = sharePercent(insights.TopCategory.Amount, expenses)
	}

	for _, df := range TotalsByDay(txns) {
		if df.Outflow.IsZero() {
			continue
		}
		if insights.TopDay == nil || df.Outflow.GreaterThan(insights.TopDay.Amount) {
			insights.TopDay = &domain.DayHighlight{Day: df.Day, Amount: df.Outflow}
		}
	}
	if insights.TopDay != nil {
		insights.TopDay.Share = sharePercent(insights.TopDay.Amount, expenses)
	}

	if income.IsPositive() {
		insights.SavingsRate = income.Sub(expenses).Div(income).Mul(hundred).Round(0).IntPart()
	}

	switch {
	case balance.IsPositive():
		insights.BalanceStatus = domain.BalancePositive
	case balance.IsNegative():
		insights.BalanceStatus = domain.BalanceInDebit
	default:
		insights.BalanceStatus = domain.BalanceEven
	}

	return insights
}
