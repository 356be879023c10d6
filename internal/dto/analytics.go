package dto

import (
	"fmt"
	"time"

	"github.com/lakemi26/tech-challenge/internal/core/domain"
	"github.com/lakemi26/tech-challenge/internal/utils"
	"github.com/shopspring/decimal"
)

// MonthlySummaryResponse mirrors the balance card figures.
type MonthlySummaryResponse struct {
	Period       string          `json:"period"`
	Income       decimal.Decimal `json:"income"`
	Expenses     decimal.Decimal `json:"expenses"`
	Balance      decimal.Decimal `json:"balance"`
	Count        int             `json:"count"`
	IncomeCount  int             `json:"incomeCount"`
	ExpenseCount int             `json:"expenseCount"`
}

// InsightsText is the rendered, human-facing version of a month's insights.
// The generator itself returns structured data; turning it into sentences
// is a presentation concern handled here.
type InsightsText struct {
	Summary        string `json:"summary"`
	Interpretation string `json:"interpretation"`
	TopCategory    string `json:"topCategory,omitempty"`
	TopDay         string `json:"topDay,omitempty"`
}

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

var categoryLabels = map[domain.Category]string{
	domain.CategorySalary:     "Salário",
	domain.CategoryHousing:    "Moradia",
	domain.CategoryFood:       "Alimentação",
	domain.CategoryHealth:     "Saúde",
	domain.CategoryInvestment: "Investimento",
	domain.CategoryUtilities:  "Utilidades",
}

// MonthLabel formats a period the way the UI shows it, e.g. "março de 2025".
func MonthLabel(p domain.Period) string {
	return fmt.Sprintf("%s de %d", monthNames[p.Month-1], p.Year)
}

// CategoryLabel returns the display name of a category.
func CategoryLabel(c domain.Category) string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// dayLabel shortens a YYYY-MM-DD key to dd/mm.
func dayLabel(dayKey string) string {
	d, err := time.Parse("2006-01-02", dayKey)
	if err != nil {
		return dayKey
	}
	return d.Format("02/01")
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}

// RenderInsights turns the structured insights into the sentences the UI
// shows. An empty month produces only the no-data summary line.
func RenderInsights(in domain.Insights, cf *utils.CurrencyFormatter) InsightsText {
	label := MonthLabel(in.Period)

	if !in.HasData {
		return InsightsText{
			Summary: fmt.Sprintf(
				"Ainda não há transações em %s. Assim que você registrar entradas e saídas, eu mostro um resumo do mês e os principais destaques.",
				label),
		}
	}

	text := InsightsText{
		Summary: fmt.Sprintf("Em %s, você registrou %d %s, sendo %d %s. O saldo do mês está %s: %s.",
			label,
			in.Count, plural(in.Count, "transação", "transações"),
			in.OutflowCount, plural(in.OutflowCount, "saída", "saídas"),
			in.BalanceStatus, cf.Format(in.Balance)),
	}

	if in.Income.IsPositive() {
		rate := in.SavingsRate
		if rate < 0 {
			rate = 0
		}
		text.Interpretation = fmt.Sprintf(
			"Até agora, suas entradas somam %s e suas saídas somam %s. Isso dá uma taxa estimada de sobra de %d%%.",
			cf.Format(in.Income), cf.Format(in.Expenses), rate)
	} else {
		text.Interpretation = fmt.Sprintf(
			"Até agora, suas saídas somam %s. Assim que houver entradas registradas, eu calculo também sua taxa de sobra do mês.",
			cf.Format(in.Expenses))
	}

	if in.TopCategory != nil {
		text.TopCategory = fmt.Sprintf("Maior categoria de gasto: %s, com %s (%d%% das saídas).",
			CategoryLabel(in.TopCategory.Category), cf.Format(in.TopCategory.Amount), in.TopCategory.Share)
	}
	if in.TopDay != nil {
		text.TopDay = fmt.Sprintf("Dia com maior gasto: %s, com %s (%d%% das saídas).",
			dayLabel(in.TopDay.Day), cf.Format(in.TopDay.Amount), in.TopDay.Share)
	}

	return text
}
