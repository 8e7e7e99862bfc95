package services

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"ibrac/internal/domain"
	"ibrac/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	validate   = newValidator()
	hundredPct = decimal.NewFromInt(100)
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// validateStruct runs the struct tags and reports the first failure as a
// domain.ValidationError.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return domain.ValidationError{Field: fe.Field(), Msg: "falhou na regra " + fe.Tag(), Err: err}
	}
	return domain.ValidationError{Msg: "payload inválido", Err: err}
}

func parseMaterial(s string) (string, error) {
	m, ok := domain.ParseMaterial(s)
	if !ok {
		return "", domain.ValidationError{Field: "material", Msg: "material desconhecido"}
	}
	return string(m), nil
}

func parseDay(field, s string) (time.Time, error) {
	t, err := utils.ParseDate(s)
	if err != nil {
		return time.Time{}, domain.ValidationError{Field: field, Msg: "data inválida (AAAA-MM-DD)", Err: err}
	}
	return t, nil
}

func requirePositive(field string, v decimal.Decimal) error {
	if !v.IsPositive() {
		return domain.ValidationError{Field: field, Msg: "deve ser maior que zero"}
	}
	return nil
}

func requireNonNegative(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return domain.ValidationError{Field: field, Msg: "não pode ser negativo"}
	}
	return nil
}
