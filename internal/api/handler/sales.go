package handler

import (
	"net/http"

	"github.com/vfg2006/sales-funnel-api/internal/domain"
	"github.com/vfg2006/sales-funnel-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-funnel-api/pkg/log"
)

// GetFacets retorna as opções dos filtros de time e atribuição
func GetFacets(service dashboard.FacetProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		facets, err := service.GetFacets()
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"teams":              len(facets.Teams),
			"attribution_groups": len(facets.AttributionGroups),
		}).Debug("facets: opções de filtro recuperadas")

		writeJSON(w, r, http.StatusOK, facets)
	})
}

// GetDashboard retorna todos os resumos da página para a seleção atual
func GetDashboard(service dashboard.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		selection := selectionFromRequest(r)

		result, err := service.GetDashboard(selection)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		logger.WithFields(log.Fields{
			"dataset_version":  result.Dataset.Version,
			"filtered_records": result.FilteredRecords,
		}).Info("dashboard: resumos gerados com sucesso")

		writeJSON(w, r, http.StatusOK, result)
	})
}

func GetRecords(service dashboard.SalesAggregator) http.Handler {
	return summaryHandler(service.GetRecords)
}

func GetByMonth(service dashboard.SalesAggregator) http.Handler {
	return summaryHandler(service.GetByMonth)
}

func GetByRep(service dashboard.SalesAggregator) http.Handler {
	return summaryHandler(service.GetByRep)
}

func GetByTeam(service dashboard.SalesAggregator) http.Handler {
	return summaryHandler(service.GetByTeam)
}

func GetLostOpportunities(service dashboard.SalesAggregator) http.Handler {
	return summaryHandler(service.GetLostOpportunities)
}

func GetSummary(service dashboard.SalesAggregator) http.Handler {
	return summaryHandler(service.GetSummary)
}

// summaryHandler aplica os filtros da query e serializa o resultado da agregação
func summaryHandler[T any](get func(domain.FilterSelection) (T, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result, err := get(selectionFromRequest(r))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	})
}
