package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-funnel-api/infrastructure/repository"
	"github.com/vfg2006/sales-funnel-api/internal/domain"
	"github.com/vfg2006/sales-funnel-api/internal/scheduler"
	"github.com/vfg2006/sales-funnel-api/internal/usecases/loading"
	"github.com/vfg2006/sales-funnel-api/pkg/apiErrors"
	"github.com/vfg2006/sales-funnel-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Parâmetros de consulta aceitos pelos endpoints do dashboard
const (
	QueryTeam        = "team"
	QueryAttribution = "attribution"
)

// selectionFromRequest lê os filtros da query. Ausente ou "all" significa sem filtro.
func selectionFromRequest(r *http.Request) domain.FilterSelection {
	query := r.URL.Query()
	return domain.NewFilterSelection(query.Get(QueryTeam), query.Get(QueryAttribution))
}

// writeJSON só escreve o status depois que o payload inteiro foi codificado
func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Erro ao escrever resposta")
	}
}

// writeServiceError traduz os erros dos serviços para o envelope padrão da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var parseErr *loading.ParseError
	switch {
	case errors.Is(err, repository.ErrDatasetNotLoaded):
		logger.Warn("Dataset ainda não carregado")
		apiErrors.WriteError(w, apiErrors.ErrDatasetNotLoaded, "Dataset ainda não carregado", nil)
	case errors.Is(err, scheduler.ErrReloadInProgress):
		logger.Warn("Recarga do dataset já em andamento")
		apiErrors.WriteError(w, apiErrors.ErrReloadInProgress, "Recarga do dataset já em andamento", nil)
	case errors.Is(err, loading.ErrFetchFailed):
		logger.Error("Falha ao buscar o dataset na origem")
		apiErrors.WriteError(w, apiErrors.ErrDatasetFetch, "Falha ao buscar o dataset na origem", nil)
	case errors.As(err, &parseErr):
		logger.Error("CSV do dataset inválido")
		apiErrors.WriteError(w, apiErrors.ErrDatasetParse, parseErr.Error(), map[string]any{
			"row":     parseErr.Row,
			"field":   parseErr.Field,
			"value":   parseErr.Value,
			"missing": parseErr.Missing,
		})
	default:
		logger.Error("Erro ao processar requisição")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar requisição", nil)
	}
}
