package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-funnel-api/internal/domain"
)

func sampleRecords() []domain.SalesRecord {
	return []domain.SalesRecord{
		{Rep: "Ana", Team: "Alpha", AttributionGroup: "Paid", Closes: 1},
		{Rep: "Bruno", Team: "Beta", AttributionGroup: "Organic", Closes: 2},
		{Rep: "Carla", Team: "Alpha", AttributionGroup: "Organic", Closes: 3},
		{Rep: "Davi", Team: "Gamma", AttributionGroup: "Paid", Closes: 4},
		{Rep: "Ana", Team: "Alpha", AttributionGroup: "Paid", Closes: 5},
	}
}

func strPtr(s string) *string {
	return &s
}

func TestDistinctValues(t *testing.T) {
	records := sampleRecords()

	teams, err := DistinctValues(records, domain.FacetTeam)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, teams)

	groups, err := DistinctValues(records, domain.FacetAttributionGroup)
	require.NoError(t, err)
	assert.Equal(t, []string{"Paid", "Organic"}, groups)

	empty, err := DistinctValues(nil, domain.FacetTeam)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = DistinctValues(records, domain.FacetField("rep"))
	assert.ErrorIs(t, err, ErrUnknownFacetField)
}

func TestFacets(t *testing.T) {
	facets := Facets(sampleRecords())

	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, facets.Teams)
	assert.Equal(t, []string{"Paid", "Organic"}, facets.AttributionGroups)
}

func TestFacets_ConsistenteComDistinctValues(t *testing.T) {
	for _, records := range [][]domain.SalesRecord{nil, sampleRecords()} {
		facets := Facets(records)

		teams, err := DistinctValues(records, domain.FacetTeam)
		require.NoError(t, err)
		groups, err := DistinctValues(records, domain.FacetAttributionGroup)
		require.NoError(t, err)

		assert.Equal(t, teams, facets.Teams)
		assert.Equal(t, groups, facets.AttributionGroups)
		assert.NotNil(t, facets.Teams)
		assert.NotNil(t, facets.AttributionGroups)
	}
}

func TestApplyFilter(t *testing.T) {
	tests := []struct {
		name      string
		selection domain.FilterSelection
		wantReps  []string
	}{
		{
			name:      "Sem filtros - deve retornar todos os registros",
			selection: domain.FilterSelection{},
			wantReps:  []string{"Ana", "Bruno", "Carla", "Davi", "Ana"},
		},
		{
			name:      "Filtro de time",
			selection: domain.FilterSelection{Team: strPtr("Alpha")},
			wantReps:  []string{"Ana", "Carla", "Ana"},
		},
		{
			name:      "Filtro de atribuição",
			selection: domain.FilterSelection{AttributionGroup: strPtr("Organic")},
			wantReps:  []string{"Bruno", "Carla"},
		},
		{
			name:      "Filtros combinados - devem ser aplicados juntos",
			selection: domain.FilterSelection{Team: strPtr("Alpha"), AttributionGroup: strPtr("Organic")},
			wantReps:  []string{"Carla"},
		},
		{
			name:      "Nenhum registro corresponde - resultado vazio sem erro",
			selection: domain.FilterSelection{Team: strPtr("Beta"), AttributionGroup: strPtr("Paid")},
			wantReps:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ApplyFilter(sampleRecords(), tt.selection)

			reps := make([]string, 0, len(result))
			for _, r := range result {
				reps = append(reps, r.Rep)
			}
			assert.Equal(t, tt.wantReps, reps)
		})
	}
}

func TestApplyFilter_Identidade(t *testing.T) {
	records := sampleRecords()

	result := ApplyFilter(records, domain.NewFilterSelection(domain.AllValues, domain.AllValues))

	assert.Equal(t, records, result)
}

func TestApplyFilter_Idempotente(t *testing.T) {
	records := sampleRecords()
	selection := domain.NewFilterSelection("Alpha", "Paid")

	once := ApplyFilter(records, selection)
	twice := ApplyFilter(once, selection)

	assert.Equal(t, once, twice)
}

func TestApplyFilter_NaoAlteraEntrada(t *testing.T) {
	records := sampleRecords()
	original := sampleRecords()

	result := ApplyFilter(records, domain.FilterSelection{Team: strPtr("Alpha")})
	result[0].Rep = "Alterado"

	assert.Equal(t, original, records)
}
