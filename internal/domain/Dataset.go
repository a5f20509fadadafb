package domain

import "time"

// Dataset é um snapshot imutável do CSV carregado
type Dataset struct {
	Version  string        `json:"version"`
	Source   string        `json:"source"`
	LoadedAt time.Time     `json:"loaded_at"`
	Records  []SalesRecord `json:"-"`
}

// DatasetInfo descreve o snapshot sem os registros
type DatasetInfo struct {
	Version      string    `json:"version"`
	Source       string    `json:"source"`
	LoadedAt     time.Time `json:"loaded_at"`
	TotalRecords int       `json:"total_records"`
}

// Info retorna os metadados do snapshot
func (d *Dataset) Info() DatasetInfo {
	return DatasetInfo{
		Version:      d.Version,
		Source:       d.Source,
		LoadedAt:     d.LoadedAt,
		TotalRecords: len(d.Records),
	}
}

// Dashboard reúne tudo que a página do dashboard precisa em uma única resposta
type Dashboard struct {
	Dataset           DatasetInfo     `json:"dataset"`
	Selection         FilterSelection `json:"selection"`
	Facets            Facets          `json:"facets"`
	FilteredRecords   int             `json:"filtered_records"`
	Summary           SummaryMetrics  `json:"summary"`
	SummaryLabels     SummaryLabels   `json:"summary_labels"`
	ByMonth           []MonthSummary  `json:"by_month"`
	ByRep             []RepSummary    `json:"by_rep"`
	ByTeam            []TeamSummary   `json:"by_team"`
	LostOpportunities []LossSummary   `json:"lost_opportunities"`
}
