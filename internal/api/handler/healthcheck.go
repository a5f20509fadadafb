package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-funnel-api/infrastructure/repository"
	"github.com/vfg2006/sales-funnel-api/internal/domain"
)

type healthcheckResponse struct {
	Status  string              `json:"status"`
	Time    time.Time           `json:"time"`
	Dataset *domain.DatasetInfo `json:"dataset"`
}

// HealthcheckHandler responde 200 mesmo sem dataset carregado; o campo dataset fica nulo
func HealthcheckHandler(datasetRepo repository.DatasetRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := healthcheckResponse{Status: "ok", Time: time.Now().UTC()}

		if dataset, err := datasetRepo.Current(); err == nil {
			info := dataset.Info()
			response.Dataset = &info
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
