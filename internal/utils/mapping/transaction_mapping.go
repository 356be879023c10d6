package mapping

import (
	"github.com/lakemi26/tech-challenge/internal/core/domain"
	"github.com/lakemi26/tech-challenge/internal/dto"
)

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          txn.ID,
		Kind:        string(txn.Kind),
		Amount:      txn.Amount,
		Category:    string(txn.Category),
		Description: txn.Description,
		OccurredAt:  txn.OccurredAt,
		RecordedAt:  txn.RecordedAt,
	}
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(txns []domain.Transaction) []dto.TransactionResponse {
	responses := make([]dto.TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}

// ToTransactionPatch converts an update request into a domain patch.
func ToTransactionPatch(req dto.UpdateTransactionRequest) domain.TransactionPatch {
	patch := domain.TransactionPatch{
		Amount:      req.Amount,
		Description: req.Description,
		OccurredAt:  req.OccurredAt,
	}
	if req.Kind != nil {
		kind := domain.Kind(*req.Kind)
		patch.Kind = &kind
	}
	if req.Category != nil {
		category := domain.Category(*req.Category)
		patch.Category = &category
	}
	return patch
}

// ToMonthlySummaryResponse converts the month summary aggregate.
func ToMonthlySummaryResponse(s domain.MonthlySummary) dto.MonthlySummaryResponse {
	return dto.MonthlySummaryResponse{
		Period:       s.Period.String(),
		Income:       s.Income,
		Expenses:     s.Expenses,
		Balance:      s.Balance,
		Count:        s.Count,
		IncomeCount:  s.IncomeCount,
		ExpenseCount: s.ExpenseCount,
	}
}
