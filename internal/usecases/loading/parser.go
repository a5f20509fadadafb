package loading

import (
	"encoding/csv"
	"io"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-funnel-api/internal/domain"
)

// ParseDataset lê o texto CSV completo e retorna os registros na ordem do arquivo
func ParseDataset(raw string) ([]domain.SalesRecord, error) {
	header, rows, err := ReadRows(raw)
	if err != nil {
		return nil, err
	}

	return DecodeRecords(header, rows)
}

// ReadRows separa o cabeçalho e as linhas do CSV, com cada linha indexada pelo nome da coluna.
// Linhas vazias são ignoradas.
func ReadRows(raw string) ([]string, []map[string]string, error) {
	reader := csv.NewReader(strings.NewReader(strings.TrimPrefix(raw, "\ufeff")))

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, &ParseError{Err: ErrEmptyDocument, Row: HeaderRow}
	}
	if err != nil {
		return nil, nil, &ParseError{Err: ErrMalformedRow, Row: HeaderRow, Cause: err}
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	rows := make([]map[string]string, 0)
	for {
		cells, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, &ParseError{Err: ErrMalformedRow, Row: len(rows), Cause: err}
		}

		row := make(map[string]string, len(header))
		for i, column := range header {
			row[column] = cells[i]
		}
		rows = append(rows, row)
	}

	return header, rows, nil
}

// DecodeRecords converte as linhas em SalesRecord, convertendo as colunas numéricas conhecidas
func DecodeRecords(header []string, rows []map[string]string) ([]domain.SalesRecord, error) {
	if missing := missingColumns(header); len(missing) > 0 {
		return nil, newHeaderError(missing)
	}

	records := make([]domain.SalesRecord, 0, len(rows))
	for i, row := range rows {
		record := domain.SalesRecord{
			ReportMonth:      row[domain.ColumnReportMonth],
			Team:             row[domain.ColumnTeam],
			Rep:              row[domain.ColumnRep],
			AttributionGroup: row[domain.ColumnAttributionGroup],
		}

		for _, column := range domain.NumericColumns {
			value, ok := row[column]
			if !ok {
				return nil, newNumberError(i, column, "")
			}

			number, err := parseNumber(value)
			if err != nil {
				return nil, newNumberError(i, column, value)
			}
			record.SetNumeric(column, number)
		}

		records = append(records, record)
	}

	return records, nil
}

func missingColumns(header []string) []string {
	present := make(map[string]struct{}, len(header))
	for _, column := range header {
		present[column] = struct{}{}
	}

	var missing []string
	for _, column := range domain.RequiredColumns() {
		if _, ok := present[column]; !ok {
			missing = append(missing, column)
		}
	}
	return missing
}

// Limites de ordem de grandeza representáveis em float64
const (
	maxMagnitude = 309
	minMagnitude = -324
)

// parseNumber aceita apenas números decimais finitos e não negativos.
// A ordem de grandeza é verificada antes da conversão para float64.
func parseNumber(value string) (float64, error) {
	number, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return 0, err
	}
	if number.IsNegative() {
		return 0, ErrInvalidNumber
	}
	if number.IsZero() {
		return 0, nil
	}

	magnitude := int64(len(number.Coefficient().String())) + int64(number.Exponent())
	if magnitude > maxMagnitude {
		return 0, ErrInvalidNumber
	}
	if magnitude < minMagnitude {
		return 0, nil
	}

	f := number.InexactFloat64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, ErrInvalidNumber
	}

	return f, nil
}
