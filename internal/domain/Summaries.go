package domain

// MonthSummary agrega receita e negócios fechados por mês
type MonthSummary struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Deals   float64 `json:"deals"`
}

// RepSummary agrega resultados por representante
type RepSummary struct {
	Rep      string  `json:"rep"`
	Revenue  float64 `json:"revenue"`
	Deals    float64 `json:"deals"`
	Installs float64 `json:"installs"`
}

// TeamSummary agrega resultados por time
type TeamSummary struct {
	Team     string  `json:"team"`
	Revenue  float64 `json:"revenue"`
	Deals    float64 `json:"deals"`
	Installs float64 `json:"installs"`
}

// LossSummary agrega as oportunidades perdidas por representante
type LossSummary struct {
	Rep         string  `json:"rep"`
	LostDeals   float64 `json:"lost_deals"`
	LostRevenue float64 `json:"lost_revenue"`

	LostRevenueLabel string `json:"lost_revenue_label"` // Receita perdida em USD, como na tabela do dashboard
}
