package Cavity2D

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSavePlots(t *testing.T) {
	var (
		dir = t.TempDir()
	)
	c, _ := NewCavityFlow(21, 21, 50, 20, 0.001, 1, 0.1, 1)
	for n := 0; n < 50; n++ {
		c.Step()
	}
	assert.NoError(t, c.SavePlots(dir))
	for _, name := range []string{"pressure.png", "velocity.png"} {
		fi, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err)
		assert.Greater(t, fi.Size(), int64(0))
	}
}
