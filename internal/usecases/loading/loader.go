package loading

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-funnel-api/infrastructure/datasource"
	"github.com/vfg2006/sales-funnel-api/infrastructure/repository"
	"github.com/vfg2006/sales-funnel-api/internal/domain"
	"github.com/vfg2006/sales-funnel-api/pkg/utils"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks

// DatasetLoader carrega o dataset da origem e substitui o snapshot atual
type DatasetLoader interface {
	Load(ctx context.Context) (*domain.Dataset, error)
}

type Loader struct {
	source     datasource.Source
	repository repository.DatasetRepository
	group      singleflight.Group
	now        func() time.Time
}

func NewLoader(source datasource.Source, repo repository.DatasetRepository) *Loader {
	return &Loader{
		source:     source,
		repository: repo,
		now:        time.Now,
	}
}

// Load busca e interpreta o CSV. Chamadas simultâneas compartilham o mesmo carregamento.
// Em caso de erro o snapshot anterior é mantido.
func (l *Loader) Load(ctx context.Context) (*domain.Dataset, error) {
	result, err, shared := l.group.Do("dataset", func() (any, error) {
		return l.load(ctx)
	})
	if shared {
		logrus.Debug("Carregamento do dataset compartilhado com chamada em andamento")
	}
	if err != nil {
		return nil, err
	}

	return result.(*domain.Dataset), nil
}

func (l *Loader) load(ctx context.Context) (*domain.Dataset, error) {
	sourceName := l.source.Name()
	startedAt := l.now()

	logrus.WithField("source", sourceName).Info("Iniciando carregamento do dataset")

	raw, err := l.source.Fetch(ctx)
	if err != nil {
		logrus.WithError(err).WithField("source", sourceName).Error("Erro ao buscar o dataset")
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	records, err := ParseDataset(raw)
	if err != nil {
		logrus.WithError(err).WithField("source", sourceName).Error("Erro ao interpretar o dataset")
		return nil, err
	}

	version, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar versão do dataset: %w", err)
	}

	dataset := &domain.Dataset{
		Version:  version,
		Source:   sourceName,
		LoadedAt: l.now(),
		Records:  records,
	}
	l.repository.Replace(dataset)

	logrus.WithFields(logrus.Fields{
		"source":      sourceName,
		"version":     version,
		"records":     len(records),
		"duration_ms": l.now().Sub(startedAt).Milliseconds(),
	}).Info("Dataset carregado com sucesso")

	return dataset, nil
}
