package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-funnel-api/infrastructure/repository"
	"github.com/vfg2006/sales-funnel-api/internal/api/handler"
	"github.com/vfg2006/sales-funnel-api/internal/config"
	"github.com/vfg2006/sales-funnel-api/internal/domain"
	"github.com/vfg2006/sales-funnel-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-funnel-api/pkg/log"
)

func testHandler() http.Handler {
	cfg := &config.Config{
		Server: config.Server{AllowedOrigins: []string{"http://localhost:3000"}},
	}

	datasetRepo := repository.NewDatasetRepository()
	datasetRepo.Replace(&domain.Dataset{
		Version:  "abc12345",
		LoadedAt: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
		Records: []domain.SalesRecord{
			{ReportMonth: "2024-01", Team: "Alpha", Rep: "Ana", AttributionGroup: "Paid", Closes: 1, ClosedRevenue: 100},
		},
	})

	return NewHandler(cfg, datasetRepo, dashboard.NewService(datasetRepo), handler.CronJobServices{})
}

func TestNewHandler_CadeiaDeMiddlewares(t *testing.T) {
	h := testHandler()

	t.Run("Propaga correlation id e aplica CORS", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/facets", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set(log.CorrelationIDHeader, "req-123")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "req-123", rec.Header().Get(log.CorrelationIDHeader))
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.JSONEq(t, `{"teams":["Alpha"],"attribution_groups":["Paid"]}`, rec.Body.String())
	})

	t.Run("Origem não permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/facets", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
		assert.NotEmpty(t, rec.Header().Get(log.CorrelationIDHeader))
	})

	t.Run("Cron sem serviço configurado", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/cron/dataset-reload/run", nil)
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"SRV_002"`)
	})
}
