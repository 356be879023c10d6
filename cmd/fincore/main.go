package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lakemi26/tech-challenge/internal/core/domain"
	portssvc "github.com/lakemi26/tech-challenge/internal/core/ports/services"
	"github.com/lakemi26/tech-challenge/internal/core/services"
	"github.com/lakemi26/tech-challenge/internal/dto"
	"github.com/lakemi26/tech-challenge/internal/platform/config"
	"github.com/lakemi26/tech-challenge/internal/platform/logging"
	"github.com/lakemi26/tech-challenge/internal/repositories/memory"
	"github.com/lakemi26/tech-challenge/internal/utils"
)

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	ctx := logging.WithLogger(context.Background(), logger)

	repo := memory.NewTransactionRepository()
	container := services.NewServiceContainer(cfg, repo)

	const ownerID = "demo-user"
	period := domain.PeriodOf(time.Now())
	seed(ctx, container, ownerID, period)

	summary, err := container.Analytics.MonthlySummary(ctx, ownerID, period)
	if err != nil {
		logger.Error("Failed to compute monthly summary", slog.String("error", err.Error()))
		os.Exit(1)
	}

	insights, err := container.Analytics.Insights(ctx, ownerID, period)
	if err != nil {
		logger.Error("Failed to compute insights", slog.String("error", err.Error()))
		os.Exit(1)
	}

	cf := utils.NewCurrencyFormatter(cfg.CurrencyTag)
	text := dto.RenderInsights(*insights, cf)

	fmt.Printf("Resumo de %s\n", dto.MonthLabel(period))
	fmt.Printf("  Entradas: %s\n", cf.Format(summary.Income))
	fmt.Printf("  Saídas:   %s\n", cf.Format(summary.Expenses))
	fmt.Printf("  Saldo:    %s\n\n", cf.Format(summary.Balance))
	fmt.Println(text.Summary)
	fmt.Println(text.Interpretation)
	if text.TopCategory != "" {
		fmt.Println(text.TopCategory)
	}
	if text.TopDay != "" {
		fmt.Println(text.TopDay)
	}

	fmt.Println("\nHistórico:")
	var token *string
	for page := 1; ; page++ {
		resp, err := container.Transaction.ListTransactions(ctx, ownerID, dto.ListTransactionsParams{NextToken: token})
		if err != nil {
			logger.Error("Failed to list transactions", slog.String("error", err.Error()))
			os.Exit(1)
		}
		for _, item := range resp.Items {
			fmt.Printf("  [p%d] %s  %-13s %-12s %s\n",
				page,
				item.OccurredAt.Format("2006-01-02"),
				item.Kind,
				item.Category,
				cf.Format(item.Amount))
		}
		if resp.NextToken == nil {
			break
		}
		token = resp.NextToken
	}
}

// seed loads a handful of example records into the current month.
func seed(ctx context.Context, container *portssvc.ServiceContainer, ownerID string, period domain.Period) {
	day := func(d int) *time.Time {
		t := period.Start(time.Local).AddDate(0, 0, d-1)
		return &t
	}
	requests := []dto.CreateTransactionRequest{
		{Kind: "deposito", Amount: decimal.NewFromInt(3000), Category: "salario", Description: "Salário mensal", OccurredAt: day(1)},
		{Kind: "saque", Amount: decimal.NewFromInt(800), Category: "moradia", Description: "Aluguel", OccurredAt: day(5)},
		{Kind: "saque", Amount: decimal.NewFromFloat(412.50), Category: "alimentacao", Description: "Mercado da semana", OccurredAt: day(8)},
		{Kind: "saque", Amount: decimal.NewFromFloat(150.90), Category: "saude", Description: "Farmácia", OccurredAt: day(12)},
		{Kind: "transferencia", Amount: decimal.NewFromInt(200), Category: "investimento", Description: "Aporte CDB", OccurredAt: day(15)},
		{Kind: "saque", Amount: decimal.NewFromFloat(230.45), Category: "utilidades", Description: "Conta de luz", OccurredAt: day(20)},
	}
	for _, req := range requests {
		if _, err := container.Transaction.CreateTransaction(ctx, ownerID, req); err != nil {
			slog.Warn("Failed to seed transaction", slog.String("error", err.Error()))
		}
	}
}
