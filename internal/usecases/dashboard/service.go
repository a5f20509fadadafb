package dashboard

import (
	"github.com/vfg2006/sales-funnel-api/infrastructure/repository"
	"github.com/vfg2006/sales-funnel-api/internal/domain"
	"github.com/vfg2006/sales-funnel-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-funnel-api/internal/usecases/filtering"
)

// Service deriva facetas e resumos a partir do snapshot atual do dataset
type Service struct {
	datasetRepository repository.DatasetRepository
}

func NewService(datasetRepo repository.DatasetRepository) DashboardService {
	return &Service{
		datasetRepository: datasetRepo,
	}
}

func (s *Service) GetFacets() (*domain.Facets, error) {
	dataset, err := s.datasetRepository.Current()
	if err != nil {
		return nil, err
	}

	facets := filtering.Facets(dataset.Records)
	return &facets, nil
}

func (s *Service) GetRecords(selection domain.FilterSelection) ([]domain.SalesRecord, error) {
	return s.filtered(selection)
}

func (s *Service) GetByMonth(selection domain.FilterSelection) ([]domain.MonthSummary, error) {
	records, err := s.filtered(selection)
	if err != nil {
		return nil, err
	}
	return aggregating.ByMonth(records), nil
}

func (s *Service) GetByRep(selection domain.FilterSelection) ([]domain.RepSummary, error) {
	records, err := s.filtered(selection)
	if err != nil {
		return nil, err
	}
	return aggregating.ByRep(records), nil
}

func (s *Service) GetByTeam(selection domain.FilterSelection) ([]domain.TeamSummary, error) {
	records, err := s.filtered(selection)
	if err != nil {
		return nil, err
	}
	return aggregating.ByTeam(records), nil
}

func (s *Service) GetLostOpportunities(selection domain.FilterSelection) ([]domain.LossSummary, error) {
	records, err := s.filtered(selection)
	if err != nil {
		return nil, err
	}
	return aggregating.LostOpportunities(records), nil
}

func (s *Service) GetSummary(selection domain.FilterSelection) (*domain.SummaryMetrics, error) {
	records, err := s.filtered(selection)
	if err != nil {
		return nil, err
	}

	metrics := aggregating.Summarize(records)
	return &metrics, nil
}

// GetDashboard usa um único snapshot para todas as partes da resposta
func (s *Service) GetDashboard(selection domain.FilterSelection) (*domain.Dashboard, error) {
	dataset, err := s.datasetRepository.Current()
	if err != nil {
		return nil, err
	}

	records := filtering.ApplyFilter(dataset.Records, selection)
	summary := aggregating.Summarize(records)

	return &domain.Dashboard{
		Dataset:           dataset.Info(),
		Selection:         selection,
		Facets:            filtering.Facets(dataset.Records),
		FilteredRecords:   len(records),
		Summary:           summary,
		SummaryLabels:     aggregating.Labels(summary),
		ByMonth:           aggregating.ByMonth(records),
		ByRep:             aggregating.ByRep(records),
		ByTeam:            aggregating.ByTeam(records),
		LostOpportunities: aggregating.LostOpportunities(records),
	}, nil
}

func (s *Service) filtered(selection domain.FilterSelection) ([]domain.SalesRecord, error) {
	dataset, err := s.datasetRepository.Current()
	if err != nil {
		return nil, err
	}
	return filtering.ApplyFilter(dataset.Records, selection), nil
}
