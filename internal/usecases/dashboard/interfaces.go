package dashboard

import (
	"github.com/vfg2006/sales-funnel-api/internal/domain"
)

// FacetProvider expõe as opções dos filtros
type FacetProvider interface {
	// GetFacets retorna times e grupos de atribuição do dataset completo
	GetFacets() (*domain.Facets, error)
}

// SalesAggregator expõe as agregações sobre a visão filtrada
type SalesAggregator interface {
	GetRecords(selection domain.FilterSelection) ([]domain.SalesRecord, error)
	GetByMonth(selection domain.FilterSelection) ([]domain.MonthSummary, error)
	GetByRep(selection domain.FilterSelection) ([]domain.RepSummary, error)
	GetByTeam(selection domain.FilterSelection) ([]domain.TeamSummary, error)
	GetLostOpportunities(selection domain.FilterSelection) ([]domain.LossSummary, error)
	GetSummary(selection domain.FilterSelection) (*domain.SummaryMetrics, error)
}

// DashboardService é a interface completa consumida pela camada HTTP
type DashboardService interface {
	FacetProvider
	SalesAggregator

	// GetDashboard monta todos os resumos da página de uma só vez
	GetDashboard(selection domain.FilterSelection) (*domain.Dashboard, error)
}
