// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// Nomes das colunas do CSV do funil de vendas
const (
	ColumnReportMonth        = "report_month"
	ColumnTeam               = "team"
	ColumnRep                = "rep"
	ColumnAttributionGroup   = "attribution_group"
	ColumnSets               = "Sets"
	ColumnHolds              = "Holds"
	ColumnQOs                = "QOs"
	ColumnCloses             = "Closes"
	ColumnClosedRevenue      = "Closed_RENR"
	ColumnInstalls           = "Installs"
	ColumnInstalledRevenue   = "Installed_RENR"
	ColumnLost               = "Lost"
	ColumnLostRevenue        = "Lost_RENR"
	ColumnSetToHoldDays      = "set_hold_days"
	ColumnHoldToQODays       = "hold_qo_days"
	ColumnQOToCloseDays      = "qo_close_days"
	ColumnCloseToInstallDays = "close_install_days"
)

// StringColumns são as colunas mantidas como texto
var StringColumns = []string{
	ColumnReportMonth,
	ColumnTeam,
	ColumnRep,
	ColumnAttributionGroup,
}

// NumericColumns são as colunas convertidas para número
var NumericColumns = []string{
	ColumnSets,
	ColumnHolds,
	ColumnQOs,
	ColumnCloses,
	ColumnClosedRevenue,
	ColumnInstalls,
	ColumnInstalledRevenue,
	ColumnLost,
	ColumnLostRevenue,
	ColumnSetToHoldDays,
	ColumnHoldToQODays,
	ColumnQOToCloseDays,
	ColumnCloseToInstallDays,
}

// RequiredColumns retorna todas as colunas obrigatórias do cabeçalho, na ordem do arquivo
func RequiredColumns() []string {
	columns := make([]string, 0, len(StringColumns)+len(NumericColumns))
	columns = append(columns, StringColumns...)
	return append(columns, NumericColumns...)
}

// SalesRecord representa uma linha do funil de vendas
type SalesRecord struct {
	ReportMonth        string  `json:"report_month"`
	Team               string  `json:"team"`
	Rep                string  `json:"rep"`
	AttributionGroup   string  `json:"attribution_group"`
	Sets               float64 `json:"sets"`
	Holds              float64 `json:"holds"`
	QOs                float64 `json:"qos"`
	Closes             float64 `json:"closes"`
	ClosedRevenue      float64 `json:"closed_revenue"`
	Installs           float64 `json:"installs"`
	InstalledRevenue   float64 `json:"installed_revenue"`
	Lost               float64 `json:"lost"`
	LostRevenue        float64 `json:"lost_revenue"`
	SetToHoldDays      float64 `json:"set_hold_days"`
	HoldToQODays       float64 `json:"hold_qo_days"`
	QOToCloseDays      float64 `json:"qo_close_days"`
	CloseToInstallDays float64 `json:"close_install_days"`
}

// SetNumeric atribui o valor de uma coluna numérica. Retorna false se a coluna não for conhecida.
func (r *SalesRecord) SetNumeric(column string, value float64) bool {
	switch column {
	case ColumnSets:
		r.Sets = value
	case ColumnHolds:
		r.Holds = value
	case ColumnQOs:
		r.QOs = value
	case ColumnCloses:
		r.Closes = value
	case ColumnClosedRevenue:
		r.ClosedRevenue = value
	case ColumnInstalls:
		r.Installs = value
	case ColumnInstalledRevenue:
		r.InstalledRevenue = value
	case ColumnLost:
		r.Lost = value
	case ColumnLostRevenue:
		r.LostRevenue = value
	case ColumnSetToHoldDays:
		r.SetToHoldDays = value
	case ColumnHoldToQODays:
		r.HoldToQODays = value
	case ColumnQOToCloseDays:
		r.QOToCloseDays = value
	case ColumnCloseToInstallDays:
		r.CloseToInstallDays = value
	default:
		return false
	}
	return true
}
