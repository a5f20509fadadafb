package aggregating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-funnel-api/internal/domain"
)

func TestSummarize(t *testing.T) {
	metrics := Summarize(funnelRecords())

	assert.Equal(t, 650.0, metrics.TotalRevenue)
	assert.Equal(t, 7.0, metrics.TotalDeals)
	// 4 instalações / 7 negócios = 57,14%
	assert.Equal(t, domain.Ratio{Value: 57, Valid: true}, metrics.InstallRate)
	assert.True(t, metrics.AvgDealSize.Valid)
	assert.InDelta(t, 92.857, metrics.AvgDealSize.Value, 0.001)
}

func TestSummarize_SemNegocios(t *testing.T) {
	tests := []struct {
		name    string
		records []domain.SalesRecord
		revenue float64
	}{
		{name: "Entrada vazia", records: nil, revenue: 0},
		{name: "Registros sem fechamentos", records: []domain.SalesRecord{{Rep: "Ana", Installs: 2, ClosedRevenue: 10}}, revenue: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := Summarize(tt.records)

			assert.Equal(t, tt.revenue, metrics.TotalRevenue)
			assert.Equal(t, 0.0, metrics.TotalDeals)
			assert.False(t, metrics.InstallRate.Valid)
			assert.False(t, metrics.AvgDealSize.Valid)
		})
	}
}

func TestLabels(t *testing.T) {
	labels := Labels(domain.SummaryMetrics{
		TotalRevenue: 1234567.4,
		TotalDeals:   42,
		InstallRate:  domain.Ratio{Value: 87, Valid: true},
		AvgDealSize:  domain.Ratio{Value: 2939.5, Valid: true},
	})

	assert.Equal(t, domain.SummaryLabels{
		TotalRevenue: "$1,234,567",
		TotalDeals:   "42",
		InstallRate:  "87%",
		AvgDealSize:  "$2,940",
	}, labels)
}

func TestLabels_MetricaDegenerada(t *testing.T) {
	labels := Labels(Summarize(nil))

	assert.Equal(t, "$0", labels.TotalRevenue)
	assert.Equal(t, "0", labels.TotalDeals)
	assert.Equal(t, DegenerateLabel, labels.InstallRate)
	assert.Equal(t, DegenerateLabel, labels.AvgDealSize)
}
