// Package filtering deriva as facetas dos filtros e aplica a seleção do usuário sobre os registros
package filtering

import (
	"errors"

	"github.com/vfg2006/sales-funnel-api/internal/domain"
)

var ErrUnknownFacetField = errors.New("unknown facet field")

// DistinctValues retorna os valores distintos do campo na ordem em que aparecem
func DistinctValues(records []domain.SalesRecord, field domain.FacetField) ([]string, error) {
	value, err := facetValue(field)
	if err != nil {
		return nil, err
	}

	return distinct(records, value), nil
}

// Facets retorna as opções de todos os filtros
func Facets(records []domain.SalesRecord) domain.Facets {
	return domain.Facets{
		Teams:             distinct(records, teamOf),
		AttributionGroups: distinct(records, attributionGroupOf),
	}
}

func distinct(records []domain.SalesRecord, value func(domain.SalesRecord) string) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, record := range records {
		v := value(record)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}

	return values
}

// ApplyFilter retorna uma nova sequência com os registros que atendem a todos os filtros ativos.
// A entrada nunca é alterada.
func ApplyFilter(records []domain.SalesRecord, selection domain.FilterSelection) []domain.SalesRecord {
	filtered := make([]domain.SalesRecord, 0, len(records))
	for _, record := range records {
		if selection.Team != nil && record.Team != *selection.Team {
			continue
		}
		if selection.AttributionGroup != nil && record.AttributionGroup != *selection.AttributionGroup {
			continue
		}
		filtered = append(filtered, record)
	}

	return filtered
}

func facetValue(field domain.FacetField) (func(domain.SalesRecord) string, error) {
	switch field {
	case domain.FacetTeam:
		return teamOf, nil
	case domain.FacetAttributionGroup:
		return attributionGroupOf, nil
	default:
		return nil, ErrUnknownFacetField
	}
}

func teamOf(r domain.SalesRecord) string             { return r.Team }
func attributionGroupOf(r domain.SalesRecord) string { return r.AttributionGroup }
