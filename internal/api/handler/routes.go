package handler

import (
	"net/http"

	"github.com/vfg2006/sales-funnel-api/infrastructure/repository"
	"github.com/vfg2006/sales-funnel-api/internal/api/handler/router"
	"github.com/vfg2006/sales-funnel-api/internal/usecases/dashboard"
)

func Healthcheck(datasetRepo repository.DatasetRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(datasetRepo),
		},
	}
}

func Facets(service dashboard.FacetProvider) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/facets",
			Method:  http.MethodGet,
			Handler: GetFacets(service),
		},
	}
}

func Sales(service dashboard.DashboardService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/records",
			Method:  http.MethodGet,
			Handler: GetRecords(service),
		},
		{
			Path:    "/v1/sales/by-month",
			Method:  http.MethodGet,
			Handler: GetByMonth(service),
		},
		{
			Path:    "/v1/sales/by-rep",
			Method:  http.MethodGet,
			Handler: GetByRep(service),
		},
		{
			Path:    "/v1/sales/by-team",
			Method:  http.MethodGet,
			Handler: GetByTeam(service),
		},
		{
			Path:    "/v1/sales/lost-opportunities",
			Method:  http.MethodGet,
			Handler: GetLostOpportunities(service),
		},
		{
			Path:    "/v1/sales/summary",
			Method:  http.MethodGet,
			Handler: GetSummary(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
