package domain

import (
	"github.com/shopspring/decimal"
)

// MonthlySummary aggregates one month of records for the balance cards.
type MonthlySummary struct {
	Period       Period          `json:"period"`
	Income       decimal.Decimal `json:"income"`
	Expenses     decimal.Decimal `json:"expenses"`
	Balance      decimal.Decimal `json:"balance"`
	Count        int             `json:"count"`
	IncomeCount  int             `json:"incomeCount"`
	ExpenseCount int             `json:"expenseCount"`
}

// CategoryTotal is one slice of the outflow-by-category breakdown.
// Breakdown order follows first appearance in the record list, so totals
// are stable for display without imposing a business ordering.
type CategoryTotal struct {
	Category Category        `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// DayFlow holds the income and outflow totals of a single calendar day.
type DayFlow struct {
	Day     string          `json:"day"` // YYYY-MM-DD
	Income  decimal.Decimal `json:"income"`
	Outflow decimal.Decimal `json:"outflow"`
}

// BalanceStatus classifies the sign of a month's balance.
type BalanceStatus string

const (
	BalancePositive BalanceStatus = "positivo"
	BalanceInDebit  BalanceStatus = "em débito"
	BalanceEven     BalanceStatus = "zerado"
)

// CategoryHighlight is the category with the largest outflow total.
// Share is the category's amount as an integer percentage of total expenses.
type CategoryHighlight struct {
	Category Category        `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Share    int64           `json:"share"`
}

// DayHighlight is the calendar day with the largest outflow total.
type DayHighlight struct {
	Day    string          `json:"day"` // YYYY-MM-DD
	Amount decimal.Decimal `json:"amount"`
	Share  int64           `json:"share"`
}

// Insights holds the derived highlights for one month of records.
//
// HasData distinguishes the "no records yet" outcome from a populated one:
// when it is false only Period is meaningful, and consumers must render the
// empty state instead of zero-valued highlights.
type Insights struct {
	Period        Period             `json:"period"`
	HasData       bool               `json:"hasData"`
	Income        decimal.Decimal    `json:"income"`
	Expenses      decimal.Decimal    `json:"expenses"`
	Balance       decimal.Decimal    `json:"balance"`
	Count         int                `json:"count"`
	OutflowCount  int                `json:"outflowCount"`
	TopCategory   *CategoryHighlight `json:"topCategory,omitempty"`
	TopDay        *DayHighlight      `json:"topDay,omitempty"`
	SavingsRate   int64              `json:"savingsRate"` // integer percent, 0 when income is 0
	BalanceStatus BalanceStatus      `json:"balanceStatus"`
}
