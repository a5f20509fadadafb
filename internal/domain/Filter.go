package domain

// AllValues é o valor recebido da interface para "sem filtro"
const AllValues = "all"

// FacetField identifica um campo categórico usado nos filtros
type FacetField string

const (
	FacetTeam             FacetField = "team"
	FacetAttributionGroup FacetField = "attribution_group"
)

// FilterSelection representa os filtros escolhidos pelo usuário.
// Um campo nil significa que não há restrição naquele campo.
type FilterSelection struct {
	Team             *string `json:"team"`
	AttributionGroup *string `json:"attribution_group"`
}

// NewFilterSelection monta a seleção a partir dos valores brutos da requisição.
// Valor vazio ou "all" vira nil.
func NewFilterSelection(team, attributionGroup string) FilterSelection {
	return FilterSelection{
		Team:             selectionValue(team),
		AttributionGroup: selectionValue(attributionGroup),
	}
}

// IsEmpty retorna verdadeiro quando nenhum filtro está ativo
func (f FilterSelection) IsEmpty() bool {
	return f.Team == nil && f.AttributionGroup == nil
}

func selectionValue(value string) *string {
	if value == "" || value == AllValues {
		return nil
	}
	return &value
}

// Facets contém os valores distintos disponíveis para cada filtro
type Facets struct {
	Teams             []string `json:"teams"`
	AttributionGroups []string `json:"attribution_groups"`
}
