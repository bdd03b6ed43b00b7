package main

import (
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/san-kum/climlab/internal/config"
	"github.com/san-kum/climlab/internal/storage"
)

// resolveConfig layers defaults, then the preset, then the config file, then
// any flag the user set explicitly.
func resolveConfig(cmd *cobra.Command, model string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(model, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
		}
		merged := *p
		cfg = &merged
		level.Debug(logger).Log("msg", "preset applied", "model", model, "preset", preset)
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		level.Debug(logger).Log("msg", "config loaded", "path", configFile)
	}

	cfg.Model = model
	applyFlags(cmd, cfg)
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed

	if changed("seed") {
		cfg.Seed = seed
	}

	h := &cfg.Heat
	setFloat(changed("xstop"), &h.XStop, xstop)
	setFloat(changed("tstop") && cmd.Name() == "heat", &h.TStop, tstop)
	setFloat(changed("dx"), &h.Dx, dx)
	setFloat(changed("dt") && cmd.Name() == "heat", &h.Dt, dt)
	setFloat(changed("c2"), &h.C2, c2)
	if changed("lower") {
		h.Lower.Type = lowerType
	}
	if changed("upper") {
		h.Upper.Type = upperType
	}
	setFloat(changed("lower-value"), &h.Lower.Value, lowerValue)
	setFloat(changed("upper-value"), &h.Upper.Value, upperValue)
	if changed("initial") {
		h.Initial.Type = initialType
	}
	setFloat(changed("initial-value"), &h.Initial.Value, initialValue)

	c := &cfg.Cooling
	setFloat(changed("t-init"), &c.TInit, tInit)
	setFloat(changed("t-env"), &c.TEnv, tEnv)
	setFloat(changed("k"), &c.K, kCool)
	setFloat(changed("tstop") && cmd.Name() == "cooling", &c.TStop, coolStop)
	setFloat(changed("dt") && cmd.Name() == "cooling", &c.Dt, coolDt)
	setFloat(changed("target"), &c.Target, target)
	setFloat(changed("cream"), &c.Cream, cream)

	a := &cfg.Atmosphere
	if changed("layers") {
		a.Layers = layers
	}
	setFloat(changed("epsilon"), &a.Epsilon, epsilon)
	setFloat(changed("albedo"), &a.Albedo, albedo)
	setFloat(changed("s0"), &a.S0, solar)

	f := &cfg.Forest
	if changed("mode") {
		f.Mode = forestMode
	}
	setInt(changed("isize"), &f.ISize, isize)
	setInt(changed("jsize"), &f.JSize, jsize)
	setInt(changed("nstep"), &f.NStep, nstep)
	setInt(changed("runs"), &f.Runs, runs)
	setFloat(changed("pspread"), &f.PSpread, pspread)
	setFloat(changed("pbare"), &f.PBare, pbare)
	setFloat(changed("pstart"), &f.PStart, pstart)
	setFloat(changed("pfatal"), &f.PFatal, pfatal)
}

func setFloat(ok bool, dst *float64, v float64) {
	if ok {
		*dst = v
	}
}

func setInt(ok bool, dst *int, v int) {
	if ok {
		*dst = v
	}
}

// saveRun stores a finished run unless --no-save was given.
func saveRun(meta storage.RunMetadata, table *storage.Table) error {
	if noSave {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(meta, table)
	if err != nil {
		return err
	}
	level.Info(logger).Log("msg", "run saved", "id", runID, "dir", dataDir)
	fmt.Printf("run id: %s\n", runID)
	return nil
}
