package domain

import (
	"strings"

	"github.com/lakemi26/tech-challenge/internal/utils/textnorm"
)

// FilterAll is the wildcard value for the kind and category filters.
const FilterAll = "all"

// TransactionFilter is the composed predicate applied to a transaction list:
// active period, optional kind, optional category and free-text search.
type TransactionFilter struct {
	Period   Period   `json:"period"`
	Kind     Kind     `json:"kind"`     // FilterAll or a concrete kind
	Category Category `json:"category"` // FilterAll or a concrete category
	Search   string   `json:"search"`
}

// NewTransactionFilter returns a filter for the given period with the kind,
// category and search filters cleared.
func NewTransactionFilter(period Period) TransactionFilter {
	return TransactionFilter{
		Period:   period,
		Kind:     FilterAll,
		Category: FilterAll,
	}
}

// Matches reports whether the transaction passes every active filter.
// The search term is compared case- and accent-insensitively against the
// concatenated description, category and kind labels.
func (f TransactionFilter) Matches(t Transaction) bool {
	if !f.Period.Contains(t.OccurredAt) {
		return false
	}
	if f.Kind != FilterAll && t.Kind != f.Kind {
		return false
	}
	if f.Category != FilterAll && t.Category != f.Category {
		return false
	}
	if f.Search != "" {
		hay := strings.Join([]string{t.Description, string(t.Category), string(t.Kind)}, " ")
		if !textnorm.ContainsFold(hay, f.Search) {
			return false
		}
	}
	return true
}

// Apply returns the transactions that pass the filter, preserving order.
func (f TransactionFilter) Apply(txns []Transaction) []Transaction {
	matched := make([]Transaction, 0, len(txns))
	for _, t := range txns {
		if f.Matches(t) {
			matched = append(matched, t)
		}
	}
	return matched
}
