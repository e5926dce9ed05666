/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mhw32/cavityflow/model_problems/Cavity2D"
)

// GenCmd represents the gen command
var GenCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate cavity flow datasets for surrogate model training",
	Long: `Generate many independently-run cavity flow simulations with
randomized lid speed and viscosity, persisting (u, v, p) snapshot
series plus a manifest per system. The draws are seeded, so a dataset
is reproducible.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("gen called")
		cfg := Cavity2D.DatasetConfig{}
		cfg.NumSystems, _ = cmd.Flags().GetInt("numSystems")
		cfg.Seed, _ = cmd.Flags().GetInt64("seed")
		cfg.OutDir, _ = cmd.Flags().GetString("outDir")
		cfg.Nx, _ = cmd.Flags().GetInt("nx")
		cfg.Ny, _ = cmd.Flags().GetInt("ny")
		cfg.Nt, _ = cmd.Flags().GetInt("nt")
		cfg.Nit, _ = cmd.Flags().GetInt("nit")
		cfg.Dt, _ = cmd.Flags().GetFloat64("dt")
		cfg.Rho, _ = cmd.Flags().GetFloat64("rho")
		cfg.SnapshotStep, _ = cmd.Flags().GetInt("snapshotStep")
		cfg.LidMin, _ = cmd.Flags().GetFloat64("lidMin")
		cfg.LidMax, _ = cmd.Flags().GetFloat64("lidMax")
		cfg.NuMin, _ = cmd.Flags().GetFloat64("nuMin")
		cfg.NuMax, _ = cmd.Flags().GetFloat64("nuMax")
		if err := Cavity2D.GenerateDataset(cfg); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(GenCmd)
	GenCmd.Flags().IntP("numSystems", "n", 100, "number of independent systems to simulate")
	GenCmd.Flags().Int64("seed", 1337, "RNG seed for parameter draws")
	GenCmd.Flags().StringP("outDir", "o", "data", "output directory for the dataset")
	GenCmd.Flags().Int("nx", 41, "grid size along x")
	GenCmd.Flags().Int("ny", 41, "grid size along y")
	GenCmd.Flags().Int("nt", 700, "number of timesteps per system")
	GenCmd.Flags().Int("nit", 50, "pressure Poisson sweeps per timestep")
	GenCmd.Flags().Float64("dt", 0.001, "stepsize over time")
	GenCmd.Flags().Float64("rho", 1., "fluid density")
	GenCmd.Flags().Int("snapshotStep", 10, "record a snapshot every N steps")
	GenCmd.Flags().Float64("lidMin", 0.5, "minimum lid velocity")
	GenCmd.Flags().Float64("lidMax", 1.5, "maximum lid velocity")
	GenCmd.Flags().Float64("nuMin", 0.05, "minimum kinematic viscosity")
	GenCmd.Flags().Float64("nuMax", 0.2, "maximum kinematic viscosity")
}
