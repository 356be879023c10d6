package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lakemi26/tech-challenge/internal/core/domain"
	portsrepo "github.com/lakemi26/tech-challenge/internal/core/ports/repositories"
	portssvc "github.com/lakemi26/tech-challenge/internal/core/ports/services"
	"github.com/lakemi26/tech-challenge/internal/utils/accounting"
)

// analyticsService implements the AnalyticsSvc interface
type analyticsService struct {
	BaseService
	reader portsrepo.TransactionReader
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(reader portsrepo.TransactionReader) portssvc.AnalyticsSvc {
	return &analyticsService{reader: reader}
}

// Ensure analyticsService implements the AnalyticsSvc interface
var _ portssvc.AnalyticsSvc = (*analyticsService)(nil)

func (s *analyticsService) monthTransactions(ctx context.Context, ownerID string, period domain.Period) ([]domain.Transaction, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return nil, err
	}
	txns, err := s.reader.ListTransactionsByMonth(ctx, ownerID, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to load month transactions",
			slog.String("owner_id", ownerID),
			slog.String("period", period.String()))
		return nil, fmt.Errorf("failed to load transactions for %s: %w", period, err)
	}
	return txns, nil
}

// MonthlySummary computes income, expenses and balance for the period.
func (s *analyticsService) MonthlySummary(ctx context.Context, ownerID string, period domain.Period) (*domain.MonthlySummary, error) {
	txns, err := s.monthTransactions(ctx, ownerID, period)
	if err != nil {
		return nil, err
	}
	summary := accounting.Summarize(period, txns)
	s.LogDebug(ctx, "Monthly summary computed",
		slog.String("period", period.String()),
		slog.Int("count", summary.Count))
	return &summary, nil
}

// CategoryBreakdown returns per-category outflow totals for the period,
// ordered by first occurrence.
func (s *analyticsService) CategoryBreakdown(ctx context.Context, ownerID string, period domain.Period) ([]domain.CategoryTotal, error) {
	txns, err := s.monthTransactions(ctx, ownerID, period)
	if err != nil {
		return nil, err
	}
	return accounting.TotalsByCategory(txns), nil
}

// Cashflow returns per-day income and outflow totals for the period,
// ordered by day.
func (s *analyticsService) Cashflow(ctx context.Context, ownerID string, period domain.Period) ([]domain.DayFlow, error) {
	txns, err := s.monthTransactions(ctx, ownerID, period)
	if err != nil {
		return nil, err
	}
	return accounting.TotalsByDay(txns), nil
}

// Insights derives the month's highlight figures.
func (s *analyticsService) Insights(ctx context.Context, ownerID string, period domain.Period) (*domain.Insights, error) {
	txns, err := s.monthTransactions(ctx, ownerID, period)
	if err != nil {
		return nil, err
	}
	in := accounting.BuildInsights(period, txns)
	return &in, nil
}
