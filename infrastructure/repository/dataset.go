// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"errors"
	"sync"

	"github.com/vfg2006/sales-funnel-api/internal/domain"
)

//go:generate mockgen -source=dataset.go -destination=mocks/mock_dataset.go -package=mocks

// ErrDatasetNotLoaded indica que nenhum carregamento foi concluído ainda
var ErrDatasetNotLoaded = errors.New("dataset not loaded")

type DatasetRepository interface {
	Current() (*domain.Dataset, error)
	Replace(dataset *domain.Dataset)
}

// datasetRepository mantém o snapshot atual em memória. O snapshot nunca é alterado depois de Replace.
type datasetRepository struct {
	mu      sync.RWMutex
	current *domain.Dataset
}

func NewDatasetRepository() DatasetRepository {
	return &datasetRepository{}
}

func (r *datasetRepository) Current() (*domain.Dataset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.current == nil {
		return nil, ErrDatasetNotLoaded
	}
	return r.current, nil
}

func (r *datasetRepository) Replace(dataset *domain.Dataset) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.current = dataset
}
