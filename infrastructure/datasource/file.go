package datasource

import (
	"context"
	"os"

	"github.com/pkg/errors"
)

// FileSource lê o CSV de um arquivo local
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string {
	return "file://" + s.path
}

func (s *FileSource) Fetch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	content, err := os.ReadFile(s.path)
	if err != nil {
		return "", errors.Wrapf(err, "erro ao ler o arquivo %s", s.path)
	}

	return string(content), nil
}
