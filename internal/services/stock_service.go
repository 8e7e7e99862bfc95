package services

import (
	"context"
	"fmt"

	"ibrac/internal/domain"
	"ibrac/internal/domain/models"
	"ibrac/internal/repositories"
	"ibrac/internal/utils"

	"github.com/shopspring/decimal"
)

// StockService reads yard balances.
type StockService struct {
	Repo      repositories.StockRepository
	RequestID string
}

// StockOverview is every material plus the yard total. Divergent lists materials
// whose stored balance disagrees with its own movements.
type StockOverview struct {
	Items     []models.StockLevel `json:"itens"`
	TotalKg   decimal.Decimal     `json:"totalKg"`
	Divergent []string            `json:"divergencias,omitempty"`
}

// Overview totals the estoque view, recomputing each balance from its movement
// columns. The recomputed balance is the one reported.
func (s StockService) Overview(ctx context.Context) (StockOverview, error) {
	items, err := s.Repo.All(ctx)
	if err != nil {
		return StockOverview{}, err
	}
	out := StockOverview{Items: items, TotalKg: decimal.Zero}
	for i, it := range items {
		bal := domain.StockBalance(it.InKg, it.OutKg, it.SentKg, it.ReturnedKg)
		if !bal.Equal(it.BalanceKg) {
			out.Divergent = append(out.Divergent, it.Material)
			utils.LogEvent(s.RequestID, "estoque", "overview",
				fmt.Sprintf("material=%s saldo_view=%s saldo_calc=%s", it.Material, it.BalanceKg, bal))
			out.Items[i].BalanceKg = bal
		}
		out.TotalKg = out.TotalKg.Add(bal)
	}
	return out, nil
}
