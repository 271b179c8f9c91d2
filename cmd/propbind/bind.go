package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"propbind/binding"
	"propbind/examples/mail"
	"propbind/properties"
	"propbind/registry"
)

var (
	failedColor   = color.New(color.FgRed)
	unboundColor  = color.New(color.FgYellow)
	excludedColor = color.New(color.Faint)
)

func newBindCmd(settings *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bind",
		Short: "Bind a property file into a mail endpoint configuration",
		Long: `Bind loads a property file, binds its keys into a fresh mail endpoint
configuration and prints the result. Keys that did not match a member, and
the key that stopped the bind on failure, are reported on stderr.

Example:
  propbind bind --file endpoint.yaml --prefix mail. --properties secrets.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBind(cmd, settings)
		},
	}

	cmd.Flags().StringP("file", "f", "", "Property file to bind (yaml, toml or json)")
	cmd.Flags().StringP("prefix", "p", "", "Only bind keys starting with this prefix")
	cmd.Flags().Bool("ignore-case", false, "Match property names regardless of case, dashes and underscores")
	cmd.Flags().Bool("mandatory", false, "Fail on the first key that matches no member")
	cmd.Flags().String("properties", "", "Property file backing {{placeholders}} and #property: references")
	cmd.Flags().String("env-prefix", envPrefix+"_", "Environment prefix consulted for placeholders after --properties")
	cmd.Flags().StringP("output", "o", "yaml", "Output format (yaml or json)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runBind(cmd *cobra.Command, settings *viper.Viper) error {
	log, err := newLogger(settings)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	props, err := properties.LoadFile(settings.GetString("file"))
	if err != nil {
		return err
	}

	source, err := placeholderSource(settings)
	if err != nil {
		return err
	}

	cfg := mail.NewConfiguration()

	res, err := binding.New().
		WithRuntime(binding.NewRuntime(newRegistry(), source)).
		WithTarget(cfg).
		WithProperties(props).
		WithOptionPrefix(settings.GetString("prefix")).
		WithIgnoreCase(settings.GetBool("ignore-case")).
		WithMandatory(settings.GetBool("mandatory")).
		WithLogger(log).
		Apply()
	if err != nil {
		report(cmd.ErrOrStderr(), res)

		return err
	}

	if err := writeSnapshot(cmd.OutOrStdout(), settings.GetString("output"), mail.Snap(cfg)); err != nil {
		return err
	}

	report(cmd.ErrOrStderr(), res)

	return nil
}

// placeholderSource chains the --properties file before the environment.
func placeholderSource(settings *viper.Viper) (properties.Source, error) {
	var chain properties.Chain

	if file := settings.GetString("properties"); file != "" {
		v := viper.New()
		v.SetConfigFile(file)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read placeholder properties %s: %w", file, err)
		}

		chain = append(chain, properties.Viper{V: v})
	}

	chain = append(chain, properties.Env{Prefix: settings.GetString("env-prefix")})

	return chain, nil
}

// newRegistry exposes the sample beans and types to reference directives.
func newRegistry() *registry.Simple {
	reg := registry.New()

	reg.Bind("defaultTLS", &mail.TLSConfig{
		Enabled:   true,
		Protocols: []string{"TLSv1.2", "TLSv1.3"},
	})
	registry.Register[mail.FetchOptions](reg)
	registry.Register[mail.Configuration](reg)

	return reg
}

func writeSnapshot(w io.Writer, format string, snap mail.Snapshot) error {
	switch format {
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(snap); err != nil {
			return err
		}

		return enc.Close()
	case "json":
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(w, string(data))

		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func report(w io.Writer, res *binding.Result) {
	fmt.Fprintf(w, "%d bound, %d unbound, %d excluded\n", len(res.Bound), len(res.Unbound), len(res.Excluded))

	for _, d := range res.Diagnostics.Errors {
		failedColor.Fprintf(w, "  failed   %s: [%s] %s\n", d.Key, d.Code, d.Message)
	}

	for _, key := range res.Unbound {
		for _, d := range res.Diagnostics.ForKey(key) {
			unboundColor.Fprintf(w, "  unbound  %s: %s\n", key, d.Message)
		}
	}

	for _, key := range res.Excluded {
		excludedColor.Fprintf(w, "  excluded %s\n", key)
	}
}
