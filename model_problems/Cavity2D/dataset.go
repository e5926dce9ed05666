package Cavity2D

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
)

/*
Dataset generation for the neural-surrogate training collaborators.
Each "system" is one independently-run simulation with its own lid
speed and viscosity; its snapshot series plus a YAML manifest describe
everything a loader needs to reassemble the (u, v, p) sequences.
*/

type DatasetConfig struct {
	NumSystems   int     `yaml:"NumSystems"`
	Seed         int64   `yaml:"Seed"`
	OutDir       string  `yaml:"OutDir"`
	Nx           int     `yaml:"Nx"`
	Ny           int     `yaml:"Ny"`
	Nt           int     `yaml:"Nt"`
	Nit          int     `yaml:"Nit"`
	Dt           float64 `yaml:"Dt"`
	Rho          float64 `yaml:"Rho"`
	SnapshotStep int     `yaml:"SnapshotStep"` // record every Nth step
	LidMin       float64 `yaml:"LidMin"`
	LidMax       float64 `yaml:"LidMax"`
	NuMin        float64 `yaml:"NuMin"`
	NuMax        float64 `yaml:"NuMax"`
}

// SystemManifest is the YAML sidecar written next to each system's
// snapshot series.
type SystemManifest struct {
	System   int      `yaml:"System"`
	Nx       int      `yaml:"Nx"`
	Ny       int      `yaml:"Ny"`
	Nt       int      `yaml:"Nt"`
	Nit      int      `yaml:"Nit"`
	Dt       float64  `yaml:"Dt"`
	Rho      float64  `yaml:"Rho"`
	Nu       float64  `yaml:"Nu"`
	LidSpeed float64  `yaml:"LidSpeed"`
	Files    []string `yaml:"Files"`
}

// SnapshotRecorder persists (u, v, p) every Every steps into Dir.
type SnapshotRecorder struct {
	Dir   string
	Every int
	Files []string
}

func (r *SnapshotRecorder) Record(c *CavityFlow, step int) (err error) {
	if r.Every <= 0 || step%r.Every != 0 {
		return
	}
	name := fmt.Sprintf("flow_%06d.vtk", step)
	if err = c.WriteVTK(filepath.Join(r.Dir, name), step); err != nil {
		return
	}
	r.Files = append(r.Files, name)
	return
}

// GenerateDataset runs cfg.NumSystems simulations with lid speed and
// viscosity drawn uniformly from the configured ranges (seeded, so a
// dataset is reproducible) and writes each system's snapshots and
// manifest under OutDir/system_NNN/.
func GenerateDataset(cfg DatasetConfig) (err error) {
	var (
		rng = rand.New(rand.NewSource(cfg.Seed))
	)
	if cfg.NumSystems <= 0 {
		return fmt.Errorf("dataset must contain at least one system, got %d", cfg.NumSystems)
	}
	for n := 0; n < cfg.NumSystems; n++ {
		var (
			c        *CavityFlow
			lidSpeed = cfg.LidMin + (cfg.LidMax-cfg.LidMin)*rng.Float64()
			nu       = cfg.NuMin + (cfg.NuMax-cfg.NuMin)*rng.Float64()
			sysDir   = filepath.Join(cfg.OutDir, fmt.Sprintf("system_%03d", n))
		)
		if err = os.MkdirAll(sysDir, 0755); err != nil {
			return
		}
		if c, err = NewCavityFlow(cfg.Nx, cfg.Ny, cfg.Nt, cfg.Nit,
			cfg.Dt, cfg.Rho, nu, lidSpeed); err != nil {
			return
		}
		rec := &SnapshotRecorder{Dir: sysDir, Every: cfg.SnapshotStep}
		fmt.Printf("system %3d: lid = %8.4f, nu = %8.4f\n", n, lidSpeed, nu)
		for tstep := 1; tstep <= c.Nt; tstep++ {
			c.Step()
			if err = rec.Record(c, tstep); err != nil {
				return
			}
		}
		manifest := SystemManifest{
			System:   n,
			Nx:       c.Nx,
			Ny:       c.Ny,
			Nt:       c.Nt,
			Nit:      c.Nit,
			Dt:       c.Dt,
			Rho:      c.Rho,
			Nu:       c.Nu,
			LidSpeed: c.LidSpeed,
			Files:    rec.Files,
		}
		var data []byte
		if data, err = yaml.Marshal(&manifest); err != nil {
			return
		}
		if err = os.WriteFile(filepath.Join(sysDir, "manifest.yaml"), data, 0644); err != nil {
			return
		}
	}
	return
}
