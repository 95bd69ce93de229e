package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPassesValidate(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoadAppliesDefaultsForOmittedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yml")
	require.NoError(t, os.WriteFile(path, []byte("budget: 42\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 42, s.Budget)
	assert.Equal(t, Default().Layers, s.Layers)
}

func TestValidateRejectsLowLayers(t *testing.T) {
	s := Default()
	s.Layers = 1
	if err := s.Validate(); err == nil {
		t.Error("Validate with Layers=1: want error")
	}
}

func TestValidateRejectsMalformedGrid(t *testing.T) {
	s := Default()
	s.Grid = []float64{1.0}
	if err := s.Validate(); err == nil {
		t.Error("Validate with a 1-element grid: want error")
	}
}

func TestWriteDefaultThenLoadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.yml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault error: %v", err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	want := Default()
	if s.Budget != want.Budget || s.Layers != want.Layers || s.Groups != want.Groups ||
		s.Workers != want.Workers || s.Penalty != want.Penalty {
		t.Errorf("round-tripped settings = %+v, want %+v", s, want)
	}
}
