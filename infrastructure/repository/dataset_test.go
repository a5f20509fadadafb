package repository

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-funnel-api/internal/domain"
)

func TestDatasetRepository(t *testing.T) {
	repo := NewDatasetRepository()

	_, err := repo.Current()
	assert.ErrorIs(t, err, ErrDatasetNotLoaded)

	first := &domain.Dataset{Version: "v1", Records: []domain.SalesRecord{{Rep: "Ana"}}}
	repo.Replace(first)

	current, err := repo.Current()
	require.NoError(t, err)
	assert.Same(t, first, current)

	second := &domain.Dataset{Version: "v2"}
	repo.Replace(second)

	current, err = repo.Current()
	require.NoError(t, err)
	assert.Equal(t, "v2", current.Version)
	// O snapshot anterior não é alterado pela troca
	assert.Len(t, first.Records, 1)
}

func TestDatasetRepository_AcessoConcorrente(t *testing.T) {
	repo := NewDatasetRepository()
	repo.Replace(&domain.Dataset{Version: "v0"})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			repo.Replace(&domain.Dataset{Version: "vx"})
		}()
		go func() {
			defer wg.Done()
			current, err := repo.Current()
			assert.NoError(t, err)
			assert.NotNil(t, current)
		}()
	}
	wg.Wait()
}
