package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/phyten/gearscan/internal/config"
	engineopts "github.com/phyten/gearscan/internal/engine/opts"
)

type resolvedSettings struct {
	Engine       config.EngineSettings
	UI           config.UISettings
	ConfigPath   string
	ConfigSource string
}

// resolveSettings layers defaults < config file < environment < flags.
func resolveSettings(cmd *cobra.Command, env runEnv, f *cliFlags, args []string) (resolvedSettings, error) {
	var r resolvedSettings
	getenv := env.getenv
	if getenv == nil {
		getenv = func(string) string { return "" }
	}

	explicit := getenv(config.ConfigEnv)
	if cmd.Flags().Changed("config") {
		explicit = f.configPath
	}
	path, source, err := config.Find(env.cwd, explicit, getenv("XDG_CONFIG_HOME"), getenv("HOME"))
	if err != nil {
		return r, fmt.Errorf("config: %w", err)
	}
	fileCfg, err := config.Load(path)
	if err != nil {
		return r, fmt.Errorf("config: %w", err)
	}
	envCfg, err := config.FromEnv(getenv)
	if err != nil {
		return r, err
	}
	flagCfg := flagLayer(cmd.Flags(), f, args)

	base := config.EngineSettingsFromOptions(engineopts.Defaults())
	r.Engine, err = config.NormalizeEngine(config.MergeEngine(base, fileCfg.Engine, envCfg.Engine, flagCfg.Engine))
	if err != nil {
		return r, err
	}
	r.UI = config.NormalizeUI(config.MergeUI(config.DefaultUISettings(), fileCfg.UI, envCfg.UI, flagCfg.UI))
	r.ConfigPath = path
	r.ConfigSource = source
	return r, nil
}

// flagLayer turns explicitly set flags into a config layer. Flags left at
// their defaults do not override file or environment values.
func flagLayer(fs *pflag.FlagSet, f *cliFlags, args []string) config.Config {
	var cfg config.Config
	changed := fs.Changed
	if changed("query") {
		cfg.Engine.Query = &f.query
	}
	if changed("gear") {
		cfg.Engine.Gear = &f.gear
	}
	if changed("arity") {
		cfg.Engine.Arity = &f.arity
	}
	if changed("jobs") {
		cfg.Engine.Jobs = &f.jobs
	}
	if changed("max-file-bytes") {
		cfg.Engine.MaxFileBytes = &f.maxFileBytes
	}
	if changed("with-parts") {
		cfg.Engine.WithParts = &f.withParts
	}
	if changed("output") {
		cfg.Engine.Output = &f.output
	}
	if changed("color") {
		cfg.Engine.Color = &f.color
	}
	if changed("verbose") {
		cfg.Engine.Verbose = &f.verbose
	}
	if changed("fields") {
		cfg.UI.Fields = &f.fields
	}
	if changed("sort") {
		cfg.UI.Sort = &f.sort
	}
	if changed("progress") {
		cfg.UI.Progress = &f.progress
	}
	if changed("no-progress") && f.noProgress {
		off := false
		cfg.UI.Progress = &off
	}
	if len(args) > 0 {
		paths := make([]string, 0, len(args))
		for _, a := range args {
			if a = strings.TrimSpace(a); a != "" {
				paths = append(paths, a)
			}
		}
		cfg.Engine.Paths = &paths
	}
	return cfg
}
