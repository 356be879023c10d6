package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakemi26/tech-challenge/internal/core/domain"
)

func marchWithdrawal() domain.Transaction {
	return domain.Transaction{
		ID:          "txn-1",
		Kind:        domain.KindWithdrawal,
		Amount:      decimal.NewFromInt(50),
		Category:    domain.CategoryFood,
		Description: "Mercado da semana",
		OccurredAt:  time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC),
	}
}

func TestFilterMatches(t *testing.T) {
	march := domain.Period{Year: 2025, Month: time.March}

	tests := []struct {
		name   string
		filter domain.TransactionFilter
		txn    domain.Transaction
		want   bool
	}{
		{
			name:   "default filter matches period",
			filter: domain.NewTransactionFilter(march),
			txn:    marchWithdrawal(),
			want:   true,
		},
		{
			name:   "different month rejected",
			filter: domain.NewTransactionFilter(domain.Period{Year: 2025, Month: time.April}),
			txn:    marchWithdrawal(),
			want:   false,
		},
		{
			name: "kind filter matches",
			filter: func() domain.TransactionFilter {
				f := domain.NewTransactionFilter(march)
				f.Kind = domain.KindWithdrawal
				return f
			}(),
			txn:  marchWithdrawal(),
			want: true,
		},
		{
			name: "kind filter rejects",
			filter: func() domain.TransactionFilter {
				f := domain.NewTransactionFilter(march)
				f.Kind = domain.KindDeposit
				return f
			}(),
			txn:  marchWithdrawal(),
			want: false,
		},
		{
			name: "category filter rejects",
			filter: func() domain.TransactionFilter {
				f := domain.NewTransactionFilter(march)
				f.Category = domain.CategoryHousing
				return f
			}(),
			txn:  marchWithdrawal(),
			want: false,
		},
		{
			name: "search over description case insensitive",
			filter: func() domain.TransactionFilter {
				f := domain.NewTransactionFilter(march)
				f.Search = "MERCADO"
				return f
			}(),
			txn:  marchWithdrawal(),
			want: true,
		},
		{
			name: "search accent insensitive",
			filter: func() domain.TransactionFilter {
				f := domain.NewTransactionFilter(march)
				f.Search = "salário"
				return f
			}(),
			txn: func() domain.Transaction {
				txn := marchWithdrawal()
				txn.Kind = domain.KindDeposit
				txn.Category = domain.CategorySalary
				txn.Description = "Pagamento"
				return txn
			}(),
			want: true,
		},
		{
			name: "search matches the kind label",
			filter: func() domain.TransactionFilter {
				f := domain.NewTransactionFilter(march)
				f.Search = "saque"
				return f
			}(),
			txn:  marchWithdrawal(),
			want: true,
		},
		{
			name: "search with no hit rejects",
			filter: func() domain.TransactionFilter {
				f := domain.NewTransactionFilter(march)
				f.Search = "farmacia"
				return f
			}(),
			txn:  marchWithdrawal(),
			want: false,
		},
		{
			name: "all active filters must pass",
			filter: func() domain.TransactionFilter {
				f := domain.NewTransactionFilter(march)
				f.Kind = domain.KindWithdrawal
				f.Category = domain.CategoryFood
				f.Search = "mercado"
				return f
			}(),
			txn:  marchWithdrawal(),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(tt.txn))
		})
	}
}

func TestFilterApplyPreservesOrder(t *testing.T) {
	march := domain.Period{Year: 2025, Month: time.March}

	a := marchWithdrawal()
	a.ID = "a"
	b := marchWithdrawal()
	b.ID = "b"
	b.Kind = domain.KindDeposit
	b.Category = domain.CategorySalary
	c := marchWithdrawal()
	c.ID = "c"

	filter := domain.NewTransactionFilter(march)
	filter.Kind = domain.KindWithdrawal

	got := filter.Apply([]domain.Transaction{a, b, c})
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestNewTransactionFilterDefaults(t *testing.T) {
	filter := domain.NewTransactionFilter(domain.Period{Year: 2025, Month: time.March})
	assert.EqualValues(t, domain.FilterAll, filter.Kind)
	assert.EqualValues(t, domain.FilterAll, filter.Category)
	assert.Empty(t, filter.Search)
}
