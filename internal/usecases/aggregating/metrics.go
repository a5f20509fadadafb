package aggregating

import (
	"math"
	"strconv"

	"github.com/vfg2006/sales-funnel-api/internal/domain"
	"github.com/vfg2006/sales-funnel-api/pkg/utils"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DegenerateLabel é exibido quando a métrica não está definida (nenhum negócio fechado)
const DegenerateLabel = "—"

var printer = message.NewPrinter(language.AmericanEnglish)

// Summarize calcula os totais dos cartões do dashboard.
// Taxa de instalação e ticket médio ficam inválidos quando não há negócios fechados.
func Summarize(records []domain.SalesRecord) domain.SummaryMetrics {
	var revenue, deals, installed float64
	for _, record := range records {
		revenue += record.ClosedRevenue
		deals += record.Closes
		installed += record.Installs
	}

	installRate := domain.NewRatio(installed, deals)
	if installRate.Valid {
		installRate.Value = utils.Percent(installRate.Value)
	}

	return domain.SummaryMetrics{
		TotalRevenue: revenue,
		TotalDeals:   deals,
		InstallRate:  installRate,
		AvgDealSize:  domain.NewRatio(revenue, deals),
	}
}

// Labels formata as métricas como nos cartões: dólar sem casas decimais e percentual inteiro
func Labels(metrics domain.SummaryMetrics) domain.SummaryLabels {
	labels := domain.SummaryLabels{
		TotalRevenue: FormatCurrency(metrics.TotalRevenue),
		TotalDeals:   strconv.FormatFloat(metrics.TotalDeals, 'f', -1, 64),
		InstallRate:  DegenerateLabel,
		AvgDealSize:  DegenerateLabel,
	}

	if metrics.InstallRate.Valid {
		labels.InstallRate = strconv.FormatFloat(metrics.InstallRate.Value, 'f', 0, 64) + "%"
	}
	if metrics.AvgDealSize.Valid {
		labels.AvgDealSize = FormatCurrency(metrics.AvgDealSize.Value)
	}

	return labels
}

// FormatCurrency formata em USD sem casas decimais, com separador de milhar (ex: $1,235)
func FormatCurrency(value float64) string {
	rounded := math.Round(value)
	if rounded == 0 {
		rounded = 0
	}
	if rounded < 0 {
		return "-" + printer.Sprintf("$%.0f", -rounded)
	}
	return printer.Sprintf("$%.0f", rounded)
}
