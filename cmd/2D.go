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
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/fluxinit/InputParameters"
	"github.com/notargets/fluxinit/model_problems/Diffusion2D"
	"github.com/notargets/fluxinit/types"
)

type Model2D struct {
	ICFile     string
	UseExample bool
	XRes, YRes int // Negative means use the input file resolution
	PlotFile   string
	Quiet      bool
}

// TwoDCmd represents the 2D command
var TwoDCmd = &cobra.Command{
	Use:   "2D",
	Short: "Two dimensional initial flux field, read from a YAML input file",
	Long:  `Two dimensional initial flux field, read from a YAML input file`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
			ip  *InputParameters.InputParameters2D
		)
		fmt.Println("2D called")
		m2d := &Model2D{}
		if m2d.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		m2d.UseExample, _ = cmd.Flags().GetBool("example")
		m2d.PlotFile, _ = cmd.Flags().GetString("plotFile")
		m2d.Quiet, _ = cmd.Flags().GetBool("quiet")
		m2d.XRes = viper.GetInt("xRes")
		m2d.YRes = viper.GetInt("yRes")
		if ip, err = processInput(m2d); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			if len(m2d.ICFile) == 0 {
				fmt.Printf("Example File:%s\n", InputParameters.ExampleFile)
			}
			os.Exit(1)
		}
		ip.Print()
		if err = Run2D(os.Stdout, m2d, ip); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func processInput(m2d *Model2D) (ip *InputParameters.InputParameters2D, err error) {
	var (
		data []byte
	)
	switch {
	case m2d.UseExample:
		data = []byte(InputParameters.ExampleFile)
	case len(m2d.ICFile) == 0:
		err = fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile) in YAML format, or use --example")
		return
	default:
		if data, err = os.ReadFile(m2d.ICFile); err != nil {
			return
		}
	}
	ip = &InputParameters.InputParameters2D{}
	if err = ip.Parse(data); err != nil {
		err = fmt.Errorf("unable to parse input file %q: %w", m2d.ICFile, err)
		return nil, err
	}
	if m2d.XRes >= 0 {
		ip.XRes = m2d.XRes
	}
	if m2d.YRes >= 0 {
		ip.YRes = m2d.YRes
	}
	return
}

func init() {
	rootCmd.AddCommand(TwoDCmd)
	TwoDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- A, B region thresholds\n\t- Lx, Ly domain extent\n\t- Materials per region")
	TwoDCmd.Flags().BoolP("example", "e", false, "use the built in example geometry instead of an input file")
	TwoDCmd.Flags().Int("xRes", -1, "number of grid cells in x, overrides the input file")
	TwoDCmd.Flags().Int("yRes", -1, "number of grid cells in y, overrides the input file")
	TwoDCmd.Flags().StringP("plotFile", "p", "", "write a heat map of phi to this file (.png, .svg, .pdf)")
	TwoDCmd.Flags().BoolP("quiet", "q", false, "do not print the field values")
	for _, name := range []string{"xRes", "yRes"} {
		if err := viper.BindPFlag(name, TwoDCmd.Flags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func Run2D(w io.Writer, m2d *Model2D, ip *InputParameters.InputParameters2D) (err error) {
	g, err := ip.Geometry()
	if err != nil {
		return
	}
	ps, err := Diffusion2D.BuildPhiState(g, ip.XRes, ip.YRes)
	if err != nil {
		return
	}
	counts := ps.RegionCounts()
	fmt.Fprintf(w, "Cells: core = %d, core2 = %d, reflector = %d\n",
		counts[types.Core], counts[types.Core2], counts[types.Reflector])
	if !m2d.Quiet {
		fmt.Fprintln(w, ps)
	}
	if len(m2d.PlotFile) != 0 {
		if err = ps.PlotHeatMap(m2d.PlotFile, Diffusion2D.NewPlotMeta(ip.Title)); err != nil {
			return
		}
		fmt.Fprintf(w, "Heat map written to %s\n", m2d.PlotFile)
	}
	return
}
