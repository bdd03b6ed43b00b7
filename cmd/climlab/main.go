package main

import (
	"fmt"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/san-kum/climlab/internal/config"
)

var (
	dataDir    string
	configFile string
	preset     string
	seed       int64
	noSave     bool
	verbose    bool

	// heat
	xstop, tstop, dx, dt, c2 float64
	lowerType, upperType     string
	lowerValue, upperValue   float64
	initialType              string
	initialValue             float64
	showColumns              int

	// cooling
	tInit, tEnv, kCool, coolStop, coolDt, target, cream float64

	// atmosphere
	layers                 int
	epsilon, albedo, solar float64

	// forest
	forestMode                     string
	isize, jsize, nstep, runs      int
	pspread, pbare, pstart, pfatal float64

	// deriv
	derivStop  float64
	derivSteps int
)

var logger log.Logger

// main wires every subcommand and flag, then runs the root command.
// It exits with status 1 if the command returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:           "climlab",
		Short:         "numerical methods and climate toy models",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newLogger(verbose)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".climlab", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	heatCmd := &cobra.Command{
		Use:   "heat",
		Short: "solve the 1-D heat equation (FTCS)",
		Args:  cobra.NoArgs,
		RunE:  runHeat,
	}
	d := config.DefaultConfig()
	heatCmd.Flags().Float64Var(&xstop, "xstop", d.Heat.XStop, "domain length")
	heatCmd.Flags().Float64Var(&tstop, "tstop", d.Heat.TStop, "end time")
	heatCmd.Flags().Float64Var(&dx, "dx", d.Heat.Dx, "space step")
	heatCmd.Flags().Float64Var(&dt, "dt", d.Heat.Dt, "time step")
	heatCmd.Flags().Float64Var(&c2, "c2", d.Heat.C2, "diffusivity squared")
	heatCmd.Flags().StringVar(&lowerType, "lower", d.Heat.Lower.Type, "lower boundary (neumann|dirichlet|seasonal)")
	heatCmd.Flags().StringVar(&upperType, "upper", d.Heat.Upper.Type, "upper boundary (neumann|dirichlet|seasonal)")
	heatCmd.Flags().Float64Var(&lowerValue, "lower-value", 0, "lower dirichlet value")
	heatCmd.Flags().Float64Var(&upperValue, "upper-value", 0, "upper dirichlet value")
	heatCmd.Flags().StringVar(&initialType, "initial", d.Heat.Initial.Type, "initial profile (parabola|uniform)")
	heatCmd.Flags().Float64Var(&initialValue, "initial-value", 0, "uniform initial value")
	heatCmd.Flags().IntVar(&showColumns, "columns", 6, "time columns to print")
	addRunFlags(heatCmd)

	coolingCmd := &cobra.Command{
		Use:   "cooling",
		Short: "newton's law of cooling (coffee problem)",
		Args:  cobra.NoArgs,
		RunE:  runCooling,
	}
	coolingCmd.Flags().Float64Var(&tInit, "t-init", d.Cooling.TInit, "initial temperature (C)")
	coolingCmd.Flags().Float64Var(&tEnv, "t-env", d.Cooling.TEnv, "room temperature (C)")
	coolingCmd.Flags().Float64Var(&kCool, "k", d.Cooling.K, "heat transfer coefficient (1/s)")
	coolingCmd.Flags().Float64Var(&coolStop, "tstop", d.Cooling.TStop, "end time (s)")
	coolingCmd.Flags().Float64Var(&coolDt, "dt", d.Cooling.Dt, "euler time step (s)")
	coolingCmd.Flags().Float64Var(&target, "target", d.Cooling.Target, "drinkable temperature (C)")
	coolingCmd.Flags().Float64Var(&cream, "cream", d.Cooling.Cream, "temperature drop from cream (C)")
	addRunFlags(coolingCmd)

	atmoCmd := &cobra.Command{
		Use:   "atmosphere",
		Short: "n-layer radiative balance",
		Args:  cobra.NoArgs,
		RunE:  runAtmosphere,
	}
	atmoCmd.Flags().IntVar(&layers, "layers", d.Atmosphere.Layers, "number of layers")
	atmoCmd.Flags().Float64Var(&epsilon, "epsilon", d.Atmosphere.Epsilon, "layer emissivity")
	atmoCmd.Flags().Float64Var(&albedo, "albedo", d.Atmosphere.Albedo, "surface albedo")
	atmoCmd.Flags().Float64Var(&solar, "s0", d.Atmosphere.S0, "solar constant (W/m2)")
	addRunFlags(atmoCmd)

	forcingCmd := &cobra.Command{
		Use:   "forcing",
		Short: "compare solar-driven warming with observations",
		Args:  cobra.NoArgs,
		RunE:  runForcing,
	}

	forestCmd := &cobra.Command{
		Use:   "forest",
		Short: "forest fire / disease cellular automaton",
		Args:  cobra.NoArgs,
		RunE:  runForest,
	}
	forestCmd.Flags().StringVar(&forestMode, "mode", d.Forest.Mode, "fire or disease")
	forestCmd.Flags().IntVar(&isize, "isize", d.Forest.ISize, "rows")
	forestCmd.Flags().IntVar(&jsize, "jsize", d.Forest.JSize, "columns")
	forestCmd.Flags().IntVar(&nstep, "nstep", d.Forest.NStep, "frames")
	forestCmd.Flags().Float64Var(&pspread, "pspread", d.Forest.PSpread, "spread probability")
	forestCmd.Flags().Float64Var(&pbare, "pbare", d.Forest.PBare, "initially bare/immune probability")
	forestCmd.Flags().Float64Var(&pstart, "pstart", d.Forest.PStart, "initial ignition probability (0: centre)")
	forestCmd.Flags().Float64Var(&pfatal, "pfatal", d.Forest.PFatal, "fatality probability (disease)")
	forestCmd.Flags().IntVar(&runs, "runs", d.Forest.Runs, "ensemble size")
	addRunFlags(forestCmd)

	derivCmd := &cobra.Command{
		Use:   "deriv",
		Short: "finite difference error convergence for sin(x)",
		Args:  cobra.NoArgs,
		RunE:  runDeriv,
	}
	derivCmd.Flags().Float64Var(&derivStop, "stop", 2.5*3.141592653589793, "sample range [0, stop)")
	derivCmd.Flags().IntVar(&derivSteps, "steps", 12, "number of halvings of dx")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(heatCmd, coolingCmd, atmoCmd, forcingCmd, forestCmd, derivCmd,
		listCmd, showCmd, exportCSVCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		if logger == nil {
			logger = newLogger(false)
		}
		level.Error(logger).Log("err", err)
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")
}

func newLogger(debug bool) log.Logger {
	l := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	l = log.With(l, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	if debug {
		return level.NewFilter(l, level.AllowDebug())
	}
	return level.NewFilter(l, level.AllowInfo())
}
