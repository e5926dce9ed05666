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
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/mhw32/cavityflow/InputParameters"
	"github.com/mhw32/cavityflow/model_problems/Cavity2D"
)

type ModelCavity struct {
	ICFile    string
	OutDir    string
	Graph     bool
	PlotSteps int
	Delay     time.Duration
}

// CavityCmd represents the cavity command
var CavityCmd = &cobra.Command{
	Use:   "cavity",
	Short: "Run a single lid-driven cavity flow simulation",
	Long: `Run a single lid-driven cavity flow simulation and write the
pressure and velocity plot files. Parameters come from an optional YAML
input file (-I) with individual flags overriding it.

Example input file:
########################################
Title: "Reference Cavity"
Nx: 41
Ny: 41
Nt: 700
Nit: 50
Dt: 0.001
Rho: 1.
Nu: 0.1
LidSpeed: 1.
########################################
`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("cavity called")
		mc := &ModelCavity{}
		if mc.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		mc.OutDir, _ = cmd.Flags().GetString("outDir")
		mc.Graph, _ = cmd.Flags().GetBool("graph")
		ps, _ := cmd.Flags().GetInt("plotSteps")
		mc.PlotSteps = ps
		dr, _ := cmd.Flags().GetInt("delay")
		mc.Delay = time.Duration(dr) * time.Millisecond
		if prof, _ := cmd.Flags().GetBool("cpuprofile"); prof {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		ip := processInput(cmd, mc)
		RunCavity(mc, ip)
	},
}

func processInput(cmd *cobra.Command, mc *ModelCavity) (ip *InputParameters.CavityParameters) {
	var (
		err error
	)
	ip = InputParameters.NewCavityParameters()
	if len(mc.ICFile) != 0 {
		var data []byte
		if data, err = os.ReadFile(mc.ICFile); err != nil {
			panic(err)
		}
		if err = ip.Parse(data); err != nil {
			panic(err)
		}
	}
	// Explicitly set flags take precedence over the input file
	if cmd.Flags().Changed("nx") {
		ip.Nx, _ = cmd.Flags().GetInt("nx")
	}
	if cmd.Flags().Changed("ny") {
		ip.Ny, _ = cmd.Flags().GetInt("ny")
	}
	if cmd.Flags().Changed("nt") {
		ip.Nt, _ = cmd.Flags().GetInt("nt")
	}
	if cmd.Flags().Changed("nit") {
		ip.Nit, _ = cmd.Flags().GetInt("nit")
	}
	if cmd.Flags().Changed("dt") {
		ip.Dt, _ = cmd.Flags().GetFloat64("dt")
	}
	if cmd.Flags().Changed("rho") {
		ip.Rho, _ = cmd.Flags().GetFloat64("rho")
	}
	if cmd.Flags().Changed("nu") {
		ip.Nu, _ = cmd.Flags().GetFloat64("nu")
	}
	if cmd.Flags().Changed("lid") {
		ip.LidSpeed, _ = cmd.Flags().GetFloat64("lid")
	}
	if cmd.Flags().Changed("nParallel") {
		ip.NParallel, _ = cmd.Flags().GetInt("nParallel")
	}
	if cmd.Flags().Changed("monitor") {
		ip.Monitor, _ = cmd.Flags().GetBool("monitor")
	}
	if mc.PlotSteps > 0 {
		ip.PlotSteps = mc.PlotSteps
	}
	if err = ip.Validate(); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	ip.Print()
	return
}

func init() {
	rootCmd.AddCommand(CavityCmd)
	CavityCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file with simulation parameters")
	CavityCmd.Flags().StringP("outDir", "o", ".", "directory for plot and data files")
	CavityCmd.Flags().Int("nx", 41, "grid size along x")
	CavityCmd.Flags().Int("ny", 41, "grid size along y")
	CavityCmd.Flags().Int("nt", 700, "number of timesteps")
	CavityCmd.Flags().Int("nit", 50, "pressure Poisson sweeps per timestep")
	CavityCmd.Flags().Float64("dt", 0.001, "stepsize over time")
	CavityCmd.Flags().Float64("rho", 1., "fluid density")
	CavityCmd.Flags().Float64("nu", 0.1, "kinematic viscosity")
	CavityCmd.Flags().Float64("lid", 1., "lid velocity")
	CavityCmd.Flags().Int("nParallel", 0, "parallel sweep chunks, 0/1 = serial")
	CavityCmd.Flags().Bool("monitor", false, "log the Poisson residual diagnostic")
	CavityCmd.Flags().BoolP("graph", "g", false, "display centerline profiles while computing solution")
	CavityCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	CavityCmd.Flags().IntP("plotSteps", "s", 10, "number of steps before plotting each frame")
}

func RunCavity(mc *ModelCavity, ip *InputParameters.CavityParameters) {
	c, err := Cavity2D.NewCavityFlow(ip.Nx, ip.Ny, ip.Nt, ip.Nit,
		ip.Dt, ip.Rho, ip.Nu, ip.LidSpeed)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	c.NParallel = ip.NParallel
	c.PlotSteps = ip.PlotSteps
	if ip.Monitor {
		c.Monitor = Cavity2D.NewResidualMonitor(c.Nx, c.Ny, c.Dx, c.Dy)
	}
	c.Run(mc.Graph, mc.Delay)
	if err = c.SavePlots(mc.OutDir); err != nil {
		fmt.Printf("error writing plots: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("wrote pressure.png and velocity.png to %s\n", mc.OutDir)
}
