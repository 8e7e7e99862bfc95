package services

import (
	"context"
	"fmt"
	"strings"

	"ibrac/internal/domain"
	"ibrac/internal/domain/models"
	"ibrac/internal/repositories"
	"ibrac/internal/utils"
)

// EntryService registers scrap intakes.
type EntryService struct {
	Repo      repositories.EntryRepository
	RequestID string
}

// Register validates in, prices it and inserts a single entradas row.
func (s EntryService) Register(ctx context.Context, in models.EntryInput, userID int64) (models.Entry, error) {
	if err := validateStruct(in); err != nil {
		return models.Entry{}, err
	}
	material, err := parseMaterial(in.Material)
	if err != nil {
		return models.Entry{}, err
	}
	day, err := parseDay("data", in.Date)
	if err != nil {
		return models.Entry{}, err
	}
	if err := requirePositive("pesoKg", in.WeightKg); err != nil {
		return models.Entry{}, err
	}
	if err := requireNonNegative("precoKg", in.PriceKg); err != nil {
		return models.Entry{}, err
	}

	e := models.Entry{
		Date:      day,
		Supplier:  utils.NormalizeSpace(in.Supplier),
		Material:  material,
		WeightKg:  in.WeightKg,
		PriceKg:   in.PriceKg,
		Total:     domain.LineTotal(in.WeightKg, in.PriceKg),
		Notes:     strings.TrimSpace(in.Notes),
		CreatedBy: userID,
	}
	id, err := s.Repo.Create(ctx, e)
	if err != nil {
		return models.Entry{}, err
	}
	e.ID = id
	utils.LogEvent(s.RequestID, "entradas", "register", fmt.Sprintf("id=%d material=%s kg=%s", id, material, e.WeightKg))
	return e, nil
}
