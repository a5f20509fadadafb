package datasource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-funnel-api/internal/config"
)

const sampleCSV = "report_month,team,rep\n2024-01,Alpha,Ana\n"

func TestHTTPSource_Fetch(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		expectErr bool
	}{
		{
			name:   "Resposta 200 - deve retornar o corpo",
			status: http.StatusOK,
			body:   sampleCSV,
		},
		{
			name:      "Resposta 404 - deve retornar erro com o status",
			status:    http.StatusNotFound,
			body:      "not found",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			source := NewHTTPSource(server.URL+"/peek-funnel.csv", time.Second)
			body, err := source.Fetch(context.Background())

			if tt.expectErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "404")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.body, body)
			assert.Equal(t, server.URL+"/peek-funnel.csv", source.Name())
		})
	}
}

func TestHTTPSource_Fetch_ContextCancelado(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHTTPSource(server.URL, time.Second).Fetch(ctx)
	assert.Error(t, err)
}

func TestFileSource_Fetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "funnel.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o600))

	source := NewFileSource(path)
	body, err := source.Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, sampleCSV, body)
	assert.Equal(t, "file://"+path, source.Name())

	_, err = NewFileSource(filepath.Join(t.TempDir(), "missing.csv")).Fetch(context.Background())
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	httpCfg := &config.Config{Dataset: config.Dataset{Source: KindHTTP, URL: "http://localhost/peek-funnel.csv"}}
	source, err := New(httpCfg)
	require.NoError(t, err)
	assert.IsType(t, &HTTPSource{}, source)

	fileCfg := &config.Config{Dataset: config.Dataset{Source: KindFile, Path: "data/peek-funnel.csv"}}
	source, err = New(fileCfg)
	require.NoError(t, err)
	assert.IsType(t, &FileSource{}, source)

	_, err = New(&config.Config{Dataset: config.Dataset{Source: "ftp"}})
	assert.Error(t, err)
}
