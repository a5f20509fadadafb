package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercent(t *testing.T) {
	assert.Equal(t, 0.0, Percent(0))
	assert.Equal(t, 87.0, Percent(0.874))
	assert.Equal(t, 88.0, Percent(0.875))
	assert.Equal(t, 100.0, Percent(1))
	assert.Equal(t, 150.0, Percent(1.5))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	assert.NoError(t, err)
	assert.Len(t, id, 8)
}
