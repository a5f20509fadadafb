package domain

import (
	"math"
	"strconv"
)

// Ratio é o resultado de uma divisão que pode não estar definida (denominador zero).
// Quando Valid é falso o valor deve ser ignorado pela camada de apresentação.
type Ratio struct {
	Value float64
	Valid bool
}

// NewRatio divide numerator por denominator. A razão é inválida quando o denominador é zero
// ou quando o resultado não é finito.
func NewRatio(numerator, denominator float64) Ratio {
	if denominator == 0 {
		return Ratio{}
	}

	value := numerator / denominator
	if !isFinite(value) {
		return Ratio{}
	}
	return Ratio{Value: value, Valid: true}
}

// MarshalJSON serializa razões inválidas ou não finitas como null
func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.Valid || !isFinite(r.Value) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(r.Value, 'f', -1, 64)), nil
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// SummaryMetrics são os totais exibidos nos cartões do dashboard
type SummaryMetrics struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalDeals   float64 `json:"total_deals"`
	InstallRate  Ratio   `json:"install_rate"`  // Percentual arredondado
	AvgDealSize  Ratio   `json:"avg_deal_size"` // Receita média por negócio
}

// SummaryLabels são os valores formatados para exibição
type SummaryLabels struct {
	TotalRevenue string `json:"total_revenue"`
	TotalDeals   string `json:"total_deals"`
	InstallRate  string `json:"install_rate"`
	AvgDealSize  string `json:"avg_deal_size"`
}
