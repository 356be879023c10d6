package services

import (
	"time"

	"github.com/lakemi26/tech-challenge/internal/core/domain"
)

// FilterState holds the current listing filter and exposes focused
// mutators. Each mutator returns the resulting filter snapshot so callers
// can re-query without a second read.
type FilterState struct {
	filter domain.TransactionFilter
}

// NewFilterState starts with the calendar month of now and every other
// dimension unset.
func NewFilterState(now time.Time) *FilterState {
	return &FilterState{filter: domain.NewTransactionFilter(domain.PeriodOf(now))}
}

// SetPeriod switches the month under view.
func (f *FilterState) SetPeriod(period domain.Period) domain.TransactionFilter {
	f.filter.Period = period
	return f.filter
}

// SetKind narrows by transaction kind; pass domain.FilterAll to clear.
func (f *FilterState) SetKind(kind domain.Kind) domain.TransactionFilter {
	if kind == "" {
		kind = domain.FilterAll
	}
	f.filter.Kind = kind
	return f.filter
}

// SetCategory narrows by category; pass domain.FilterAll to clear.
func (f *FilterState) SetCategory(category domain.Category) domain.TransactionFilter {
	if category == "" {
		category = domain.FilterAll
	}
	f.filter.Category = category
	return f.filter
}

// SetSearch narrows by free-text search.
func (f *FilterState) SetSearch(search string) domain.TransactionFilter {
	f.filter.Search = search
	return f.filter
}

// Reset clears kind, category and search but keeps the period under view.
func (f *FilterState) Reset() domain.TransactionFilter {
	f.filter = domain.NewTransactionFilter(f.filter.Period)
	return f.filter
}

// Snapshot returns the current filter.
func (f *FilterState) Snapshot() domain.TransactionFilter {
	return f.filter
}
