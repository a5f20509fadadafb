// Package datasource busca o texto bruto do CSV do funil de vendas
package datasource

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/sales-funnel-api/internal/config"
)

//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks

// Source é o recurso externo de onde o dataset é carregado
type Source interface {
	// Fetch retorna o conteúdo completo do CSV
	Fetch(ctx context.Context) (string, error)
	// Name identifica a origem nos logs e nos metadados do dataset
	Name() string
}

const (
	KindHTTP = "http"
	KindFile = "file"
)

// New cria a origem configurada em DATASET_SOURCE
func New(cfg *config.Config) (Source, error) {
	switch cfg.Dataset.Source {
	case KindHTTP:
		return NewHTTPSource(cfg.Dataset.URL, time.Duration(cfg.Dataset.FetchTimeoutSeconds)*time.Second), nil
	case KindFile:
		return NewFileSource(cfg.Dataset.Path), nil
	default:
		return nil, fmt.Errorf("origem de dataset desconhecida: %q", cfg.Dataset.Source)
	}
}
