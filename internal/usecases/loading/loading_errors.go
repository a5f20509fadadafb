package loading

import (
	"errors"
	"fmt"
	"strings"
)

// Erros base do carregamento do dataset
var (
	ErrInvalidHeader = errors.New("invalid header")
	ErrInvalidNumber = errors.New("invalid numeric value")
	ErrMalformedRow  = errors.New("malformed row")
	ErrEmptyDocument = errors.New("empty document")

	// ErrFetchFailed indica falha ao obter o CSV da origem
	ErrFetchFailed = errors.New("dataset fetch failed")
)

// HeaderRow é o índice usado quando o erro está no cabeçalho e não em uma linha de dados
const HeaderRow = -1

// ParseError descreve uma falha de leitura do CSV. Qualquer ParseError invalida o carregamento inteiro.
type ParseError struct {
	Err     error    // Erro base
	Row     int      // Índice da linha de dados (0 = primeira linha após o cabeçalho), HeaderRow para o cabeçalho
	Field   string   // Coluna envolvida (quando aplicável)
	Value   string   // Valor recebido (quando aplicável)
	Missing []string // Colunas obrigatórias ausentes no cabeçalho
	Cause   error    // Erro de origem do leitor CSV (linha, coluna e motivo)
}

// Error implementa a interface error
func (e *ParseError) Error() string {
	switch {
	case len(e.Missing) > 0:
		return fmt.Sprintf("%s: missing columns %s", e.Err.Error(), strings.Join(e.Missing, ", "))
	case e.Field != "":
		return fmt.Sprintf("%s: row %d, column %s, value %q", e.Err.Error(), e.Row, e.Field, e.Value)
	case e.Cause != nil && e.Row != HeaderRow:
		return fmt.Sprintf("%s: row %d: %s", e.Err.Error(), e.Row, e.Cause.Error())
	case e.Cause != nil:
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Cause.Error())
	case e.Row != HeaderRow:
		return fmt.Sprintf("%s: row %d", e.Err.Error(), e.Row)
	default:
		return e.Err.Error()
	}
}

// Unwrap expõe o erro base e, quando houver, o erro de origem do leitor CSV
func (e *ParseError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func newHeaderError(missing []string) *ParseError {
	return &ParseError{Err: ErrInvalidHeader, Row: HeaderRow, Missing: missing}
}

func newNumberError(row int, field, value string) *ParseError {
	return &ParseError{Err: ErrInvalidNumber, Row: row, Field: field, Value: value}
}
