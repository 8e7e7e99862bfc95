package services

import (
	"context"
	"fmt"
	"strings"

	"ibrac/internal/domain"
	"ibrac/internal/domain/models"
	"ibrac/internal/repositories"
	"ibrac/internal/utils"

	"github.com/shopspring/decimal"
)

// ProcessingService handles batches sent to third-party processors.
type ProcessingService struct {
	Repo      repositories.ProcessingRepository
	StockRepo repositories.StockRepository
	RequestID string
}

// BatchResult is a batch with its cost allocation and, once returned, its
// profit/loss against the charged loss.
type BatchResult struct {
	Batch      models.ProcessingBatch `json:"lote"`
	Allocation domain.CostAllocation  `json:"custos"`
	ProfitLoss *domain.ProfitLoss     `json:"lucroPerda,omitempty"`
}

// Dispatch registers material leaving for a processor.
func (s ProcessingService) Dispatch(ctx context.Context, in models.ProcessingInput, userID int64) (models.ProcessingBatch, error) {
	if err := validateStruct(in); err != nil {
		return models.ProcessingBatch{}, err
	}
	material, err := parseMaterial(in.Material)
	if err != nil {
		return models.ProcessingBatch{}, err
	}
	day, err := parseDay("dataEnvio", in.SentAt)
	if err != nil {
		return models.ProcessingBatch{}, err
	}
	if err := requirePositive("pesoEnviadoKg", in.SentKg); err != nil {
		return models.ProcessingBatch{}, err
	}
	for _, f := range []struct {
		name string
		v    decimal.Decimal
	}{
		{"perdaCobradaPct", in.ChargedLossPct},
		{"custoKg", in.PriceKg},
		{"frete", in.Freight},
		{"precoMaterialKg", in.MaterialPriceKg},
	} {
		if err := requireNonNegative(f.name, f.v); err != nil {
			return models.ProcessingBatch{}, err
		}
	}
	if in.ChargedLossPct.GreaterThan(hundredPct) {
		return models.ProcessingBatch{}, domain.ValidationError{Field: "perdaCobradaPct", Msg: "deve estar entre 0 e 100"}
	}
	if err := ensureStock(ctx, s.StockRepo, material, in.SentKg); err != nil {
		return models.ProcessingBatch{}, err
	}

	b := models.ProcessingBatch{
		SentAt:          day,
		Processor:       utils.NormalizeSpace(in.Processor),
		Material:        material,
		SentKg:          in.SentKg,
		ChargedLossPct:  in.ChargedLossPct,
		PriceKg:         in.PriceKg,
		Freight:         in.Freight,
		MaterialPriceKg: in.MaterialPriceKg,
		Status:          models.BatchSent,
		Notes:           strings.TrimSpace(in.Notes),
		CreatedBy:       userID,
	}
	id, err := s.Repo.Create(ctx, b)
	if err != nil {
		return models.ProcessingBatch{}, err
	}
	b.ID = id
	utils.LogEvent(s.RequestID, "beneficiamento", "dispatch", fmt.Sprintf("id=%d processor=%q kg=%s", id, b.Processor, b.SentKg))
	return b, nil
}

// RegisterReturn records what came back and returns the resulting figures.
func (s ProcessingService) RegisterReturn(ctx context.Context, id int64, in models.ReturnInput) (BatchResult, error) {
	if err := validateStruct(in); err != nil {
		return BatchResult{}, err
	}
	day, err := parseDay("dataRetorno", in.ReturnedAt)
	if err != nil {
		return BatchResult{}, err
	}
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return BatchResult{}, err
	}
	if b.Returned() {
		return BatchResult{}, domain.ConflictError{Resource: "beneficiamento", Msg: "lote já retornado"}
	}
	if day.Before(b.SentAt) {
		return BatchResult{}, domain.ValidationError{Field: "dataRetorno", Msg: "anterior à data de envio"}
	}
	if in.ReturnedKg.IsNegative() || in.ReturnedKg.GreaterThan(b.SentKg) {
		return BatchResult{}, domain.ValidationError{Field: "pesoRetornadoKg", Msg: "deve estar entre zero e o peso enviado"}
	}
	if err := s.Repo.MarkReturned(ctx, id, day, in.ReturnedKg); err != nil {
		return BatchResult{}, err
	}

	b.ReturnedAt = &day
	b.ReturnedKg = in.ReturnedKg
	b.Status = models.BatchReturned
	utils.LogEvent(s.RequestID, "beneficiamento", "return", fmt.Sprintf("id=%d kg=%s", id, in.ReturnedKg))
	return Evaluate(b)
}

// Result loads one batch and evaluates it.
func (s ProcessingService) Result(ctx context.Context, id int64) (BatchResult, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return BatchResult{}, err
	}
	return Evaluate(b)
}

// Evaluate computes the cost allocation of b and, when b has returned, its
// profit/loss.
func Evaluate(b models.ProcessingBatch) (BatchResult, error) {
	alloc, err := domain.AllocateProcessingCost(b.SentKg, b.ReturnedKg, b.PriceKg, b.Freight)
	if err != nil {
		return BatchResult{}, err
	}
	out := BatchResult{Batch: b, Allocation: alloc}
	if b.Returned() {
		pl, err := domain.ComputeProfitLoss(b.SentKg, b.ReturnedKg, b.ChargedLossPct, b.MaterialPriceKg)
		if err != nil {
			return BatchResult{}, err
		}
		out.ProfitLoss = &pl
	}
	return out, nil
}
