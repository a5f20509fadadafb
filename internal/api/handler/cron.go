package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-funnel-api/internal/scheduler"
	"github.com/vfg2006/sales-funnel-api/pkg/apiErrors"
)

// CronJobTypeDatasetReload é a única cron job disponível
const CronJobTypeDatasetReload = "dataset-reload"

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	DatasetReloadService *scheduler.DatasetReloadService
}

// RunCronJob executa manualmente uma cron job específica.
// Com ?wait=true a recarga é síncrona e erros de busca/parse são devolvidos ao cliente.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeDatasetReload:
			if services.DatasetReloadService == nil {
				apiErrors.WriteError(w, apiErrors.ErrServiceUnavailable, "Serviço de recarga do dataset não disponível", nil)
				return
			}
			if r.URL.Query().Get("wait") == "true" {
				if err := services.DatasetReloadService.Reload(r.Context()); err != nil {
					writeServiceError(w, r, err)
					return
				}
				writeJSON(w, r, http.StatusOK, services.DatasetReloadService.GetStatus())
				return
			}
			services.DatasetReloadService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: dataset-reload", nil)
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.DatasetReloadService != nil {
			status[CronJobTypeDatasetReload] = services.DatasetReloadService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
