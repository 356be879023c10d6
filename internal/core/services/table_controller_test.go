package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakemi26/tech-challenge/internal/apperrors"
	"github.com/lakemi26/tech-challenge/internal/core/domain"
	"github.com/lakemi26/tech-challenge/internal/core/services"
)

func historyPage(prefix string, size int) []domain.Transaction {
	page := make([]domain.Transaction, size)
	for i := range page {
		page[i] = domain.Transaction{
			ID:         fmt.Sprintf("%s-%d", prefix, i),
			OwnerID:    "owner-1",
			Kind:       domain.KindWithdrawal,
			Amount:     decimal.NewFromInt(10),
			Category:   domain.CategoryFood,
			OccurredAt: time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC),
		}
	}
	return page
}

// pagedRepo wires the mock with a 45-record history: two full pages of 20
// and a final page of 5.
func pagedRepo(ctx context.Context) (*MockTransactionRepository, []domain.Transaction, []domain.Transaction, []domain.Transaction) {
	p0 := historyPage("p0", 20)
	p1 := historyPage("p1", 20)
	p2 := historyPage("p2", 5)

	tokenA := "token-a"
	tokenB := "token-b"

	repo := new(MockTransactionRepository)
	repo.On("ListAllTransactionsPaged", ctx, "owner-1", 20, (*string)(nil)).Return(p0, tokenA, nil)
	repo.On("ListAllTransactionsPaged", ctx, "owner-1", 20, &tokenA).Return(p1, tokenB, nil)
	repo.On("ListAllTransactionsPaged", ctx, "owner-1", 20, &tokenB).Return(p2, nil, nil)
	return repo, p0, p1, p2
}

func TestTableController_LoadFirstPage(t *testing.T) {
	ctx := context.Background()
	repo, p0, _, _ := pagedRepo(ctx)
	controller := services.NewTableController(repo, "owner-1", 20)

	require.NoError(t, controller.Load(ctx))

	assert.Equal(t, p0, controller.Records())
	assert.Equal(t, 0, controller.PageIndex())
	assert.True(t, controller.HasNext())
	assert.False(t, controller.HasPrevious())
	assert.False(t, controller.Loading())
}

func TestTableController_WalkForwardAndBack(t *testing.T) {
	ctx := context.Background()
	repo, p0, p1, p2 := pagedRepo(ctx)
	controller := services.NewTableController(repo, "owner-1", 20)

	require.NoError(t, controller.Load(ctx))
	require.NoError(t, controller.GoNext(ctx))
	assert.Equal(t, p1, controller.Records())
	assert.Equal(t, 1, controller.PageIndex())

	require.NoError(t, controller.GoNext(ctx))
	assert.Equal(t, p2, controller.Records())
	assert.Equal(t, 2, controller.PageIndex())
	assert.False(t, controller.HasNext())

	// Past the last page GoNext is a no-op.
	require.NoError(t, controller.GoNext(ctx))
	assert.Equal(t, p2, controller.Records())
	assert.Equal(t, 2, controller.PageIndex())

	require.NoError(t, controller.GoPrevious(ctx))
	assert.Equal(t, p1, controller.Records())
	assert.Equal(t, 1, controller.PageIndex())
	assert.True(t, controller.HasNext())

	require.NoError(t, controller.GoPrevious(ctx))
	assert.Equal(t, p0, controller.Records())
	assert.Equal(t, 0, controller.PageIndex())
	assert.False(t, controller.HasPrevious())

	// Before the first page GoPrevious is a no-op.
	require.NoError(t, controller.GoPrevious(ctx))
	assert.Equal(t, 0, controller.PageIndex())
}

func TestTableController_FetchFailureKeepsPage(t *testing.T) {
	ctx := context.Background()
	p0 := historyPage("p0", 20)
	tokenA := "token-a"

	repo := new(MockTransactionRepository)
	repo.On("ListAllTransactionsPaged", ctx, "owner-1", 20, (*string)(nil)).Return(p0, tokenA, nil).Once()
	repo.On("ListAllTransactionsPaged", ctx, "owner-1", 20, &tokenA).Return(nil, nil, apperrors.ErrStore).Once()

	controller := services.NewTableController(repo, "owner-1", 20)
	require.NoError(t, controller.Load(ctx))

	err := controller.GoNext(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrStore))

	assert.Equal(t, p0, controller.Records())
	assert.Equal(t, 0, controller.PageIndex())
	assert.True(t, controller.HasNext())
	assert.False(t, controller.Loading())
}

func TestTableController_ApplySaved(t *testing.T) {
	ctx := context.Background()
	repo, p0, _, _ := pagedRepo(ctx)
	controller := services.NewTableController(repo, "owner-1", 20)
	require.NoError(t, controller.Load(ctx))

	// An edited record already on screen is replaced in place.
	edited := p0[3]
	edited.Description = "Conta de luz"
	controller.ApplySaved(edited)
	assert.Equal(t, "Conta de luz", controller.Records()[3].Description)
	assert.Len(t, controller.Records(), 20)

	// A brand-new record is prepended and the page keeps its size.
	fresh := domain.Transaction{ID: "fresh", OwnerID: "owner-1", Kind: domain.KindDeposit, Amount: decimal.NewFromInt(1), Category: domain.CategorySalary}
	controller.ApplySaved(fresh)
	assert.Equal(t, "fresh", controller.Records()[0].ID)
	assert.Len(t, controller.Records(), 20)
}

func TestTableController_ApplyDeleted(t *testing.T) {
	ctx := context.Background()
	repo, _, _, _ := pagedRepo(ctx)
	controller := services.NewTableController(repo, "owner-1", 20)
	require.NoError(t, controller.Load(ctx))

	controller.ApplyDeleted("p0-5")
	assert.Len(t, controller.Records(), 19)
	for _, txn := range controller.Records() {
		assert.NotEqual(t, "p0-5", txn.ID)
	}

	// Deleting a record not on screen changes nothing.
	controller.ApplyDeleted("elsewhere")
	assert.Len(t, controller.Records(), 19)
}

func TestTableController_VisibleAppliesFilter(t *testing.T) {
	ctx := context.Background()
	p0 := []domain.Transaction{
		{ID: "a", Kind: domain.KindDeposit, Category: domain.CategorySalary, Description: "Salário", OccurredAt: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "b", Kind: domain.KindWithdrawal, Category: domain.CategoryFood, Description: "Mercado", OccurredAt: time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC)},
		{ID: "c", Kind: domain.KindWithdrawal, Category: domain.CategoryFood, Description: "Padaria", OccurredAt: time.Date(2025, time.February, 20, 0, 0, 0, 0, time.UTC)},
	}
	repo := new(MockTransactionRepository)
	repo.On("ListAllTransactionsPaged", ctx, "owner-1", 20, (*string)(nil)).Return(p0, nil, nil).Once()

	controller := services.NewTableController(repo, "owner-1", 20)
	require.NoError(t, controller.Load(ctx))

	filter := domain.NewTransactionFilter(domain.Period{Year: 2025, Month: time.March})
	filter.Kind = domain.KindWithdrawal

	visible := controller.Visible(filter)
	require.Len(t, visible, 1)
	assert.Equal(t, "b", visible[0].ID)
}
