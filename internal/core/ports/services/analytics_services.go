package services

import (
	"context"

	"github.com/lakemi26/tech-challenge/internal/core/domain"
)

// AnalyticsSvc derives aggregates and highlights for one owner and period.
// Every call recomputes from a fresh month snapshot; the service keeps no
// state between calls.
type AnalyticsSvc interface {
	// MonthlySummary returns the balance/income/expense figures for the period.
	MonthlySummary(ctx context.Context, ownerID string, period domain.Period) (*domain.MonthlySummary, error)

	// CategoryBreakdown returns the outflow totals per category.
	CategoryBreakdown(ctx context.Context, ownerID string, period domain.Period) ([]domain.CategoryTotal, error)

	// Cashflow returns the per-day income/outflow series for the period.
	Cashflow(ctx context.Context, ownerID string, period domain.Period) ([]domain.DayFlow, error)

	// Insights returns the month's highlights, or the distinguished
	// no-data result when the month has no records.
	Insights(ctx context.Context, ownerID string, period domain.Period) (*domain.Insights, error)
}
