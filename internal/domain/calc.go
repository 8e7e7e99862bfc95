package domain

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

const (
	ResultProfit  = "lucro"
	ResultLoss    = "perda"
	ResultNeutral = "neutro"
)

// ProfitLoss compares the loss a processor charged against the loss that actually
// happened on one beneficiamento batch.
type ProfitLoss struct {
	SentKg           decimal.Decimal `json:"pesoEnviadoKg"`
	ReturnedKg       decimal.Decimal `json:"pesoRetornadoKg"`
	ChargedLossPct   decimal.Decimal `json:"perdaCobradaPct"`
	ActualLossPct    decimal.Decimal `json:"perdaRealPct"`
	ExpectedReturnKg decimal.Decimal `json:"retornoEsperadoKg"`
	DifferenceKg     decimal.Decimal `json:"diferencaKg"`
	Value            decimal.Decimal `json:"valor"`
	Result           string          `json:"resultado"`
}

// ComputeProfitLoss values the gap between the weight the processor owed back
// (sent minus the charged loss) and the weight that came back. A positive Value is
// a gain for the company.
func ComputeProfitLoss(sentKg, returnedKg, chargedLossPct, materialPriceKg decimal.Decimal) (ProfitLoss, error) {
	if !sentKg.IsPositive() {
		return ProfitLoss{}, ValidationError{Field: "peso_enviado", Msg: "deve ser maior que zero"}
	}
	if returnedKg.IsNegative() || returnedKg.GreaterThan(sentKg) {
		return ProfitLoss{}, ValidationError{Field: "peso_retornado", Msg: "deve estar entre zero e o peso enviado"}
	}
	if chargedLossPct.IsNegative() || chargedLossPct.GreaterThan(hundred) {
		return ProfitLoss{}, ValidationError{Field: "perda_cobrada_pct", Msg: "deve estar entre 0 e 100"}
	}
	if materialPriceKg.IsNegative() {
		return ProfitLoss{}, ValidationError{Field: "preco_material_kg", Msg: "não pode ser negativo"}
	}

	actual := sentKg.Sub(returnedKg).Div(sentKg).Mul(hundred)
	expected := sentKg.Mul(hundred.Sub(chargedLossPct)).Div(hundred)
	diff := returnedKg.Sub(expected)
	value := diff.Mul(materialPriceKg).Round(2)

	result := ResultNeutral
	switch value.Sign() {
	case 1:
		result = ResultProfit
	case -1:
		result = ResultLoss
	}

	return ProfitLoss{
		SentKg:           sentKg,
		ReturnedKg:       returnedKg,
		ChargedLossPct:   chargedLossPct,
		ActualLossPct:    actual.Round(2),
		ExpectedReturnKg: expected.Round(3),
		DifferenceKg:     diff.Round(3),
		Value:            value,
		Result:           result,
	}, nil
}

// CostAllocation spreads what a processor billed over the weight that came back.
type CostAllocation struct {
	ProcessingCost    decimal.Decimal `json:"custoBeneficiamento"`
	Freight           decimal.Decimal `json:"frete"`
	TotalCost         decimal.Decimal `json:"custoTotal"`
	CostPerSentKg     decimal.Decimal `json:"custoPorKgEnviado"`
	CostPerReturnedKg decimal.Decimal `json:"custoPorKgRetornado"`
}

// AllocateProcessingCost charges priceKg on the sent weight, adds freight, and
// divides the total by both weights. CostPerReturnedKg stays zero until the batch
// comes back.
func AllocateProcessingCost(sentKg, returnedKg, priceKg, freight decimal.Decimal) (CostAllocation, error) {
	if !sentKg.IsPositive() {
		return CostAllocation{}, ValidationError{Field: "peso_enviado", Msg: "deve ser maior que zero"}
	}
	if priceKg.IsNegative() || freight.IsNegative() {
		return CostAllocation{}, ValidationError{Field: "custo", Msg: "valores não podem ser negativos"}
	}
	processing := sentKg.Mul(priceKg)
	total := processing.Add(freight)
	out := CostAllocation{
		ProcessingCost: processing.Round(2),
		Freight:        freight.Round(2),
		TotalCost:      total.Round(2),
		CostPerSentKg:  total.Div(sentKg).Round(4),
	}
	if returnedKg.IsPositive() {
		out.CostPerReturnedKg = total.Div(returnedKg).Round(4)
	}
	return out, nil
}

// LineTotal is weight times unit price, rounded to cents.
func LineTotal(weightKg, priceKg decimal.Decimal) decimal.Decimal {
	return weightKg.Mul(priceKg).Round(2)
}

// StockBalance is what is left of a material in the yard.
func StockBalance(inKg, outKg, sentKg, returnedKg decimal.Decimal) decimal.Decimal {
	return inKg.Sub(outKg).Sub(sentKg).Add(returnedKg)
}

// FinancialSummary aggregates one period.
type FinancialSummary struct {
	Period           Period          `json:"periodo"`
	Purchases        decimal.Decimal `json:"compras"`
	Sales            decimal.Decimal `json:"vendas"`
	ProcessingCost   decimal.Decimal `json:"custoBeneficiamento"`
	ProcessingResult decimal.Decimal `json:"resultadoBeneficiamento"`
	GrossMargin      decimal.Decimal `json:"margemBruta"`
	NetResult        decimal.Decimal `json:"resultadoLiquido"`
}

// Summarize derives the margins. Processing result is a weight gain valued at
// material price, so it only enters NetResult.
func Summarize(p Period, purchases, sales, processingCost, processingResult decimal.Decimal) FinancialSummary {
	gross := sales.Sub(purchases).Sub(processingCost)
	return FinancialSummary{
		Period:           p,
		Purchases:        purchases.Round(2),
		Sales:            sales.Round(2),
		ProcessingCost:   processingCost.Round(2),
		ProcessingResult: processingResult.Round(2),
		GrossMargin:      gross.Round(2),
		NetResult:        gross.Add(processingResult).Round(2),
	}
}
