package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phyten/gearscan/internal/config"
	"github.com/phyten/gearscan/internal/engine"
	engineopts "github.com/phyten/gearscan/internal/engine/opts"
	"github.com/phyten/gearscan/internal/output"
	"github.com/phyten/gearscan/internal/termcolor"
	"github.com/phyten/gearscan/internal/util"
)

// version is overridden with -ldflags "-X main.version=...".
var version = "dev"

type cliFlags struct {
	query        string
	gear         string
	arity        int
	jobs         int
	maxFileBytes int
	withParts    bool
	output       string
	color        string
	verbose      bool
	fields       string
	sort         string
	progress     bool
	noProgress   bool
	maxFileWidth int
	configPath   string
}

func newRootCmd(env runEnv) *cobra.Command {
	f := &cliFlags{}
	cmd := &cobra.Command{
		Use:   "gearscan [flags] [file ...]",
		Short: "Sum part numbers and gear ratios in engine schematics",
		Long: `gearscan reads engine schematics (grids of digits, '.' and symbols) and reports
the sum of every part number adjacent to a symbol and the sum of gear ratios.

Files are analysed in parallel. With no file arguments, or with "-", the
schematic is read from standard input.

Settings come from defaults, then a .gearscan.{yaml,yml,toml,json} file,
then GEARSCAN_* environment variables, then flags.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, env, f, args)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.query, "query", "both", "parts|gears|both")
	pf.StringVar(&f.gear, "gear", "*", "symbol that marks a gear")
	pf.IntVar(&f.arity, "arity", 2, "number of adjacent parts that makes a gear (1-8)")
	pf.IntVarP(&f.jobs, "jobs", "j", 0, "max parallel workers (default: number of CPUs)")
	pf.IntVar(&f.maxFileBytes, "max-file-bytes", 0, "skip files larger than N bytes (0=unlimited)")
	pf.BoolVar(&f.withParts, "with-parts", false, "list adjacent, isolated parts and gears per file")
	pf.StringVarP(&f.output, "output", "o", "table", "table|tsv|json|ndjson|csv|markdown")
	pf.StringVar(&f.color, "color", "auto", "auto|always|never")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging on stderr")
	pf.StringVar(&f.fields, "fields", "", "comma separated columns: file,lines,parts,symbols,gears,part_sum,gear_ratio")
	pf.StringVar(&f.sort, "sort", "", "sort keys, e.g. -part_sum,file")
	pf.BoolVar(&f.progress, "progress", false, "force progress even when piped")
	pf.BoolVar(&f.noProgress, "no-progress", false, "disable progress")
	pf.IntVar(&f.maxFileWidth, "max-file-width", 0, "truncate the table file column to N cells (0=unlimited)")
	pf.StringVarP(&f.configPath, "config", "c", "", "config file (default: search, or $"+config.ConfigEnv+")")

	cmd.AddCommand(newConfigCmd(env, f), newVersionCmd())
	return cmd
}

func runScan(cmd *cobra.Command, env runEnv, f *cliFlags, args []string) error {
	r, err := resolveSettings(cmd, env, f, args)
	if err != nil {
		return err
	}
	spec, err := output.ParseSortSpec(r.UI.Sort)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	log := newLogger(stderr, r.Engine.Verbose)
	defer func() { _ = log.Sync() }()
	if r.ConfigPath != "" {
		log.Debug("loaded config", zap.String("path", r.ConfigPath), zap.String("source", r.ConfigSource))
	}

	opts := engineopts.Defaults()
	r.Engine.ApplyToOptions(&opts)
	opts.Stdin = cmd.InOrStdin()
	opts.Logger = log
	opts.ProgressOut = stderr
	opts.Progress = util.ShouldShowProgress(r.UI.Progress, env.interactive)
	if err := engineopts.NormalizeAndValidate(&opts); err != nil {
		return err
	}

	res, err := engine.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}
	output.ApplySort(res.Items, spec)

	sel, err := output.ResolveFields(r.UI.Fields, res.HasParts, res.HasGears)
	if err != nil {
		return err
	}
	envMap := termcolor.EnvMap(env.environ)
	mode, err := termcolor.ParseMode(r.Engine.Color)
	if err != nil {
		return err
	}
	color := termcolor.Enabled(mode, envMap, env.stdoutTTY)

	if err := render(cmd.OutOrStdout(), res, sel, r.Engine.Output, output.TableStyle{
		Color:        color,
		Profile:      termcolor.DetectProfile(envMap),
		Scheme:       termcolor.DetectScheme(envMap),
		MaxFileWidth: f.maxFileWidth,
	}); err != nil {
		return err
	}
	if err := output.WriteErrors(stderr, res.Errors, color); err != nil {
		return err
	}
	if res.Total == 0 && res.ErrorCount > 0 {
		return errors.New("no input could be analysed")
	}
	return nil
}

func render(w io.Writer, res *engine.Result, sel output.FieldSelection, format string, style output.TableStyle) error {
	switch format {
	case "json":
		return output.WriteJSON(w, res)
	case "ndjson":
		return output.WriteNDJSON(w, res.Items)
	case "tsv":
		return output.WriteTSV(w, res.Items, sel)
	case "csv":
		return output.WriteCSV(w, res.Items, sel)
	case "markdown":
		return output.WriteMarkdownTable(w, res, sel)
	case "table":
		if err := output.WriteTable(w, res, sel, style); err != nil {
			return err
		}
		if !res.HasList {
			return nil
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		return output.WriteParts(w, res, style.Color)
	default:
		return fmt.Errorf("invalid --output: %s", format)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the gearscan version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "gearscan %s\n", version)
			return err
		},
	}
}
