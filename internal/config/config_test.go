package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("INPUT_FILE", "")
	t.Setenv("OUTPUT_FILE", "")

	cfg := New()

	assert.Equal(t, "input.txt", cfg.InputPath)
	assert.Equal(t, "report.txt", cfg.OutputPath)
}

func TestNew_EnvOverrides(t *testing.T) {
	t.Setenv("INPUT_FILE", "/data/products.txt")
	t.Setenv("OUTPUT_FILE", "/data/out/report.txt")

	cfg := New()

	assert.Equal(t, "/data/products.txt", cfg.InputPath)
	assert.Equal(t, "/data/out/report.txt", cfg.OutputPath)
}
