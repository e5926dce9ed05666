package Cavity2D

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ghodss/yaml"
	"github.com/stretchr/testify/assert"
)

func TestWriteVTK(t *testing.T) {
	var (
		dir = t.TempDir()
	)
	c, _ := NewCavityFlow(11, 9, 10, 5, 0.001, 1, 0.1, 1)
	for n := 0; n < 3; n++ {
		c.Step()
	}
	fileName := filepath.Join(dir, "flow.vtk")
	assert.NoError(t, c.WriteVTK(fileName, 3))

	data, err := os.ReadFile(fileName)
	assert.NoError(t, err)
	text := string(data)
	assert.True(t, strings.HasPrefix(text, "# vtk DataFile Version 2.0\n"))
	assert.Contains(t, text, "DATASET STRUCTURED_POINTS")
	assert.Contains(t, text, "DIMENSIONS 11 9 1")
	assert.Contains(t, text, "POINT_DATA 99")
	for _, name := range []string{"SCALARS u float", "SCALARS v float", "SCALARS p float"} {
		assert.Contains(t, text, name)
	}
	assert.Equal(t, 3, strings.Count(text, "LOOKUP_TABLE default"))
}

func TestWriteDataFile(t *testing.T) {
	var (
		dir = t.TempDir()
	)
	c, _ := NewCavityFlow(5, 4, 10, 5, 0.001, 1, 0.1, 1)
	fileName := filepath.Join(dir, "p.dat")
	assert.NoError(t, c.WriteDataFile(fileName, c.P))
	data, err := os.ReadFile(fileName)
	assert.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	// 4 grid rows of 5 nodes each, blank-line separated
	assert.Equal(t, 4*5+3, len(lines))
	assert.Equal(t, 3, len(strings.Fields(lines[0])))
}

func TestGenerateDataset(t *testing.T) {
	var (
		dir = t.TempDir()
	)
	cfg := DatasetConfig{
		NumSystems:   2,
		Seed:         1337,
		OutDir:       dir,
		Nx:           11,
		Ny:           11,
		Nt:           20,
		Nit:          10,
		Dt:           0.001,
		Rho:          1,
		SnapshotStep: 5,
		LidMin:       0.5,
		LidMax:       1.5,
		NuMin:        0.05,
		NuMax:        0.2,
	}
	assert.NoError(t, GenerateDataset(cfg))

	for n := 0; n < 2; n++ {
		sysDir := filepath.Join(dir, fmt.Sprintf("system_%03d", n))
		data, err := os.ReadFile(filepath.Join(sysDir, "manifest.yaml"))
		assert.NoError(t, err)
		var manifest SystemManifest
		assert.NoError(t, yaml.Unmarshal(data, &manifest))
		assert.Equal(t, n, manifest.System)
		assert.Equal(t, 11, manifest.Nx)
		assert.Equal(t, 4, len(manifest.Files)) // steps 5, 10, 15, 20
		assert.True(t, manifest.LidSpeed >= 0.5 && manifest.LidSpeed <= 1.5)
		assert.True(t, manifest.Nu >= 0.05 && manifest.Nu <= 0.2)
		for _, name := range manifest.Files {
			_, err = os.Stat(filepath.Join(sysDir, name))
			assert.NoError(t, err)
		}
	}

	// The draws are seeded, so regenerating yields identical manifests
	dir2 := t.TempDir()
	cfg.OutDir = dir2
	assert.NoError(t, GenerateDataset(cfg))
	m1, _ := os.ReadFile(filepath.Join(dir, "system_000", "manifest.yaml"))
	m2, _ := os.ReadFile(filepath.Join(dir2, "system_000", "manifest.yaml"))
	assert.Equal(t, m1, m2)

	assert.Error(t, GenerateDataset(DatasetConfig{NumSystems: 0}))
}
