package accounting_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakemi26/tech-challenge/internal/core/domain"
	"github.com/lakemi26/tech-challenge/internal/utils/accounting"
)

func TestBuildInsights(t *testing.T) {
	period := domain.Period{Year: 2025, Month: time.March}
	txns := []domain.Transaction{
		txn(domain.KindDeposit, 3000, domain.CategorySalary, 1),
		txn(domain.KindWithdrawal, 800, domain.CategoryHousing, 5),
		txn(domain.KindTransfer, 200, domain.CategoryInvestment, 5),
	}

	in := accounting.BuildInsights(period, txns)

	assert.True(t, in.HasData)
	assert.Equal(t, 3, in.Count)
	assert.Equal(t, 2, in.OutflowCount)
	assert.True(t, in.Income.Equal(decimal.NewFromInt(3000)))
	assert.True(t, in.Expenses.Equal(decimal.NewFromInt(1000)))
	assert.True(t, in.Balance.Equal(decimal.NewFromInt(2000)))

	require.NotNil(t, in.TopCategory)
	assert.Equal(t, domain.CategoryHousing, in.TopCategory.Category)
	assert.True(t, in.TopCategory.Amount.Equal(decimal.NewFromInt(800)))
	assert.EqualValues(t, 80, in.TopCategory.Share)

	require.NotNil(t, in.TopDay)
	assert.Equal(t, "2025-03-05", in.TopDay.Day)
	assert.True(t, in.TopDay.Amount.Equal(decimal.NewFromInt(1000)))
	assert.EqualValues(t, 100, in.TopDay.Share)

	// round(2000/3000*100) = 67
	assert.EqualValues(t, 67, in.SavingsRate)
	assert.Equal(t, domain.BalancePositive, in.BalanceStatus)
}

func TestBuildInsightsEmptyMonth(t *testing.T) {
	period := domain.Period{Year: 2025, Month: time.March}
	in := accounting.BuildInsights(period, nil)

	assert.False(t, in.HasData)
	assert.Equal(t, period, in.Period)
	assert.Nil(t, in.TopCategory)
	assert.Nil(t, in.TopDay)
	assert.Zero(t, in.SavingsRate)
	assert.Empty(t, in.BalanceStatus)
}

func TestBuildInsightsTieKeepsFirstSeen(t *testing.T) {
	period := domain.Period{Year: 2025, Month: time.March}
	txns := []domain.Transaction{
		txn(domain.KindWithdrawal, 100, domain.CategoryFood, 3),
		txn(domain.KindWithdrawal, 100, domain.CategoryHousing, 7),
	}

	in := accounting.BuildInsights(period, txns)

	require.NotNil(t, in.TopCategory)
	assert.Equal(t, domain.CategoryFood, in.TopCategory.Category)
	require.NotNil(t, in.TopDay)
	assert.Equal(t, "2025-03-03", in.TopDay.Day)
}

func TestBuildInsightsNoIncome(t *testing.T) {
	period := domain.Period{Year: 2025, Month: time.March}
	txns := []domain.Transaction{
		txn(domain.KindWithdrawal, 250, domain.CategoryUtilities, 10),
	}

	in := accounting.BuildInsights(period, txns)

	assert.True(t, in.HasData)
	assert.Zero(t, in.SavingsRate)
	assert.Equal(t, domain.BalanceInDebit, in.BalanceStatus)
	require.NotNil(t, in.TopCategory)
	assert.EqualValues(t, 100, in.TopCategory.Share)
}

func TestBuildInsightsNoOutflow(t *testing.T) {
	period := domain.Period{Year: 2025, Month: time.March}
	txns := []domain.Transaction{
		txn(domain.KindDeposit, 3000, domain.CategorySalary, 1),
	}

	in := accounting.BuildInsights(period, txns)

	assert.True(t, in.HasData)
	assert.Nil(t, in.TopCategory)
	assert.Nil(t, in.TopDay)
	assert.EqualValues(t, 100, in.SavingsRate)
	assert.Equal(t, domain.BalancePositive, in.BalanceStatus)
}

func TestBuildInsightsOverspending(t *testing.T) {
	period := domain.Period{Year: 2025, Month: time.March}
	txns := []domain.Transaction{
		txn(domain.KindDeposit, 1000, domain.CategorySalary, 1),
		txn(domain.KindWithdrawal, 1500, domain.CategoryHousing, 5),
	}

	in := accounting.BuildInsights(period, txns)

	assert.Equal(t, domain.BalanceInDebit, in.BalanceStatus)
	assert.EqualValues(t, -50, in.SavingsRate)
}

func TestBuildInsightsEvenBalance(t *testing.T) {
	period := domain.Period{Year: 2025, Month: time.March}
	txns := []domain.Transaction{
		txn(domain.KindDeposit, 500, domain.CategorySalary, 1),
		txn(domain.KindWithdrawal, 500, domain.CategoryHousing, 5),
	}

	in := accounting.BuildInsights(period, txns)
	assert.Equal(t, domain.BalanceEven, in.BalanceStatus)
	assert.Zero(t, in.SavingsRate)
}
