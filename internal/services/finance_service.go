package services

import (
	"context"

	"ibrac/internal/domain"
	"ibrac/internal/repositories"
	"ibrac/internal/utils"

	"github.com/shopspring/decimal"
)

// FinanceService builds the financial summary of a period.
type FinanceService struct {
	EntryRepo      repositories.EntryRepository
	ExitRepo       repositories.ExitRepository
	ProcessingRepo repositories.ProcessingRepository
	RequestID      string
}

func (s FinanceService) Summary(ctx context.Context, p domain.Period) (domain.FinancialSummary, error) {
	if !p.Start.IsZero() && !p.End.IsZero() && p.End.Before(p.Start) {
		return domain.FinancialSummary{}, domain.ValidationError{Field: "end_date", Msg: "anterior à data inicial"}
	}
	purchases, err := s.EntryRepo.SumTotal(ctx, p)
	if err != nil {
		return domain.FinancialSummary{}, err
	}
	sales, err := s.ExitRepo.SumTotal(ctx, p)
	if err != nil {
		return domain.FinancialSummary{}, err
	}
	cost, err := s.ProcessingRepo.SumCost(ctx, p)
	if err != nil {
		return domain.FinancialSummary{}, err
	}
	batches, err := s.ProcessingRepo.ListReturned(ctx, p)
	if err != nil {
		return domain.FinancialSummary{}, err
	}

	result := decimal.Zero
	for _, b := range batches {
		pl, err := domain.ComputeProfitLoss(b.SentKg, b.ReturnedKg, b.ChargedLossPct, b.MaterialPriceKg)
		if err != nil {
			// a malformed legacy row should not hide the rest of the period
			utils.LogEvent(s.RequestID, "financeiro", "summary", "skip batch: "+err.Error())
			continue
		}
		result = result.Add(pl.Value)
	}
	return domain.Summarize(p, purchases, sales, cost, result), nil
}
