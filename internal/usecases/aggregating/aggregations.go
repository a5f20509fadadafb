package aggregating

import (
	"sort"

	"github.com/vfg2006/sales-funnel-api/internal/domain"
)

// LostOpportunitiesLimit é o tamanho máximo do ranking de oportunidades perdidas
const LostOpportunitiesLimit = 10

var byMonth = Grouping[domain.MonthSummary]{
	Key: func(r domain.SalesRecord) string { return r.ReportMonth },
	New: func(key string) domain.MonthSummary { return domain.MonthSummary{Month: key} },
	Sums: []Sum[domain.MonthSummary]{
		{Source: closedRevenue, Target: func(s *domain.MonthSummary) *float64 { return &s.Revenue }},
		{Source: closes, Target: func(s *domain.MonthSummary) *float64 { return &s.Deals }},
	},
}

var byRep = Grouping[domain.RepSummary]{
	Key: func(r domain.SalesRecord) string { return r.Rep },
	New: func(key string) domain.RepSummary { return domain.RepSummary{Rep: key} },
	Sums: []Sum[domain.RepSummary]{
		{Source: closedRevenue, Target: func(s *domain.RepSummary) *float64 { return &s.Revenue }},
		{Source: closes, Target: func(s *domain.RepSummary) *float64 { return &s.Deals }},
		{Source: installs, Target: func(s *domain.RepSummary) *float64 { return &s.Installs }},
	},
}

var byTeam = Grouping[domain.TeamSummary]{
	Key: func(r domain.SalesRecord) string { return r.Team },
	New: func(key string) domain.TeamSummary { return domain.TeamSummary{Team: key} },
	Sums: []Sum[domain.TeamSummary]{
		{Source: closedRevenue, Target: func(s *domain.TeamSummary) *float64 { return &s.Revenue }},
		{Source: closes, Target: func(s *domain.TeamSummary) *float64 { return &s.Deals }},
		{Source: installs, Target: func(s *domain.TeamSummary) *float64 { return &s.Installs }},
	},
}

var lossesByRep = Grouping[domain.LossSummary]{
	Key: func(r domain.SalesRecord) string { return r.Rep },
	New: func(key string) domain.LossSummary { return domain.LossSummary{Rep: key} },
	Sums: []Sum[domain.LossSummary]{
		{Source: lost, Target: func(s *domain.LossSummary) *float64 { return &s.LostDeals }},
		{Source: lostRevenue, Target: func(s *domain.LossSummary) *float64 { return &s.LostRevenue }},
	},
}

// ByMonth soma receita e negócios fechados por mês de referência
func ByMonth(records []domain.SalesRecord) []domain.MonthSummary {
	return byMonth.Fold(records)
}

// ByRep soma receita, negócios e instalações por representante
func ByRep(records []domain.SalesRecord) []domain.RepSummary {
	return byRep.Fold(records)
}

// ByTeam soma receita, negócios e instalações por time
func ByTeam(records []domain.SalesRecord) []domain.TeamSummary {
	return byTeam.Fold(records)
}

// LostOpportunities retorna os representantes com maior receita perdida, em ordem decrescente.
// Empates mantêm a ordem de primeira aparição. Cada item traz a receita perdida formatada em USD.
func LostOpportunities(records []domain.SalesRecord) []domain.LossSummary {
	losses := lossesByRep.Fold(records)

	sort.SliceStable(losses, func(i, j int) bool {
		return losses[i].LostRevenue > losses[j].LostRevenue
	})

	if len(losses) > LostOpportunitiesLimit {
		losses = losses[:LostOpportunitiesLimit]
	}
	for i := range losses {
		losses[i].LostRevenueLabel = FormatCurrency(losses[i].LostRevenue)
	}
	return losses
}
