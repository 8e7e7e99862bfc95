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

// ExitService registers sales out of the yard.
type ExitService struct {
	Repo      repositories.ExitRepository
	StockRepo repositories.StockRepository
	RequestID string
}

// Register validates in, refuses to sell more than the current balance and inserts
// a single saidas row.
func (s ExitService) Register(ctx context.Context, in models.ExitInput, userID int64) (models.Exit, error) {
	if err := validateStruct(in); err != nil {
		return models.Exit{}, err
	}
	material, err := parseMaterial(in.Material)
	if err != nil {
		return models.Exit{}, err
	}
	day, err := parseDay("data", in.Date)
	if err != nil {
		return models.Exit{}, err
	}
	if err := requirePositive("pesoKg", in.WeightKg); err != nil {
		return models.Exit{}, err
	}
	if err := requireNonNegative("precoKg", in.PriceKg); err != nil {
		return models.Exit{}, err
	}
	if err := ensureStock(ctx, s.StockRepo, material, in.WeightKg); err != nil {
		return models.Exit{}, err
	}

	e := models.Exit{
		Date:          day,
		Customer:      utils.NormalizeSpace(in.Customer),
		Material:      material,
		WeightKg:      in.WeightKg,
		PriceKg:       in.PriceKg,
		Total:         domain.LineTotal(in.WeightKg, in.PriceKg),
		InvoiceNumber: strings.TrimSpace(in.InvoiceNumber),
		Notes:         strings.TrimSpace(in.Notes),
		CreatedBy:     userID,
	}
	id, err := s.Repo.Create(ctx, e)
	if err != nil {
		return models.Exit{}, err
	}
	e.ID = id
	utils.LogEvent(s.RequestID, "saidas", "register", fmt.Sprintf("id=%d material=%s kg=%s", id, material, e.WeightKg))
	return e, nil
}

// ensureStock fails with a ConflictError when weight exceeds the yard balance.
func ensureStock(ctx context.Context, repo repositories.StockRepository, material string, weight decimal.Decimal) error {
	bal, err := repo.Balance(ctx, material)
	if err != nil {
		return err
	}
	if weight.GreaterThan(bal) {
		return domain.ConflictError{
			Resource: "estoque",
			Msg:      fmt.Sprintf("saldo insuficiente de %s: disponível %s", material, utils.FormatKg(bal)),
		}
	}
	return nil
}
