// Package aggregating agrupa os registros filtrados nos resumos usados pelos gráficos
package aggregating

import "github.com/vfg2006/sales-funnel-api/internal/domain"

// Sum liga um atributo numérico do registro ao campo acumulador do resumo
type Sum[S any] struct {
	Source func(domain.SalesRecord) float64
	Target func(*S) *float64
}

// Grouping descreve uma agregação: chave de agrupamento, acumulador zerado e somas
type Grouping[S any] struct {
	Key  func(domain.SalesRecord) string
	New  func(key string) S
	Sums []Sum[S]
}

// Fold percorre os registros uma vez, criando o acumulador na primeira ocorrência de cada chave.
// A saída segue a ordem em que as chaves apareceram.
func (g Grouping[S]) Fold(records []domain.SalesRecord) []S {
	positions := make(map[string]int)
	groups := make([]S, 0)

	for _, record := range records {
		key := g.Key(record)

		pos, ok := positions[key]
		if !ok {
			pos = len(groups)
			positions[key] = pos
			groups = append(groups, g.New(key))
		}

		acc := &groups[pos]
		for _, sum := range g.Sums {
			*sum.Target(acc) += sum.Source(record)
		}
	}

	return groups
}

func closedRevenue(r domain.SalesRecord) float64 { return r.ClosedRevenue }
func closes(r domain.SalesRecord) float64        { return r.Closes }
func installs(r domain.SalesRecord) float64      { return r.Installs }
func lost(r domain.SalesRecord) float64          { return r.Lost }
func lostRevenue(r domain.SalesRecord) float64   { return r.LostRevenue }
