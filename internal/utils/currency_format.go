package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencyFormatter renders exact decimal amounts for display with
// locale-specific separators and two fraction digits.
// Formatting is a presentation concern only; the aggregation engine always
// returns exact values.
type CurrencyFormatter struct {
	printer *message.Printer
	symbol  string
}

// NewCurrencyFormatter builds a formatter for the given BCP 47 locale tag.
// An unparseable tag falls back to pt-BR, the application's default.
func NewCurrencyFormatter(localeTag string) *CurrencyFormatter {
	tag, err := language.Parse(localeTag)
	if err != nil {
		tag = language.BrazilianPortuguese
	}
	return &CurrencyFormatter{
		printer: message.NewPrinter(tag),
		symbol:  "R$",
	}
}

// Format renders an amount like "R$ 1.234,56" under the pt-BR locale.
func (f *CurrencyFormatter) Format(amount decimal.Decimal) string {
	val, _ := amount.Round(2).Float64()
	return f.printer.Sprintf("%s %v", f.symbol,
		number.Decimal(val, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
