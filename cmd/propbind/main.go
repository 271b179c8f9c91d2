// Package main provides the propbind CLI.
//
// propbind binds a flat property file (YAML, TOML or JSON) into a sample
// mail endpoint configuration and reports what was bound:
//   - bind:    load a file, bind it, print the resulting configuration
//   - paths:   list every bindable property path of the configuration
//   - version: print the CLI version
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "PROPBIND"

func newRootCmd() *cobra.Command {
	settings := viper.New()

	var configFile string

	root := &cobra.Command{
		Use:   "propbind",
		Short: "Bind dotted property keys into a Go object graph",
		Long: `propbind binds flat, dotted property keys such as "tls.trust-store" into
a mail endpoint configuration, resolving {{placeholders}} and #bean:, #type:,
#class:, #autowired and #property: references on the way.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadSettings(settings, cmd, configFile)
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "CLI settings file (yaml, toml or json)")
	root.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-encoding", "console", "Log encoding (console or json)")

	root.AddCommand(newBindCmd(settings))
	root.AddCommand(newPathsCmd(settings))
	root.AddCommand(newVersionCmd())

	return root
}

// loadSettings layers flags over PROPBIND_* environment variables over the
// optional settings file.
func loadSettings(settings *viper.Viper, cmd *cobra.Command, configFile string) error {
	settings.SetEnvPrefix(envPrefix)
	settings.SetEnvKeyReplacer(envKeyReplacer)
	settings.AutomaticEnv()

	if configFile != "" {
		settings.SetConfigFile(configFile)

		if err := settings.ReadInConfig(); err != nil {
			return err
		}
	}

	return settings.BindPFlags(cmd.Flags())
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
