package datasource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// HTTPSource busca o CSV via GET em uma URL
type HTTPSource struct {
	httpClient *http.Client
	url        string
}

// NewHTTPSource cria uma origem HTTP com o timeout informado
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &HTTPSource{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		url: url,
	}
}

func (s *HTTPSource) Name() string {
	return s.url
}

func (s *HTTPSource) Fetch(ctx context.Context) (string, error) {
	// Criar a requisição HTTP.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return "", errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Accept", "text/csv")

	// Executar a requisição.
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	// Verificar o código de status da resposta.
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "erro ao ler a resposta")
	}

	return string(body), nil
}
