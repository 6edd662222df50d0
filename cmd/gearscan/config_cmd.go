package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/phyten/gearscan/internal/config"
)

type configDoc struct {
	Source string                `yaml:"source"`
	Path   string                `yaml:"path,omitempty"`
	Engine config.EngineSettings `yaml:"engine"`
	UI     config.UISettings     `yaml:"ui"`
}

func newConfigCmd(env runEnv, f *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config [file ...]",
		Short: "Print the resolved settings as YAML",
		Long: `Print the settings a scan would use after merging defaults, the config file,
GEARSCAN_* environment variables and flags, and where the config file was found.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := resolveSettings(cmd, env, f, args)
			if err != nil {
				return err
			}
			doc := configDoc{Source: r.ConfigSource, Path: r.ConfigPath, Engine: r.Engine, UI: r.UI}
			if doc.Source == "" {
				doc.Source = "defaults"
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(doc); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
