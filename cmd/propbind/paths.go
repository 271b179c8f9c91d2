package main

import (
	"fmt"
	"reflect"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"propbind/examples/mail"
	"propbind/internal/describe"
)

var styleColor = map[describe.Style]*color.Color{
	describe.StyleSetter: color.New(color.FgGreen),
	describe.StyleFluent: color.New(color.FgCyan),
	describe.StyleWith:   color.New(color.FgBlue),
	describe.StyleField:  color.New(color.FgWhite),
}

func newPathsCmd(settings *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "List the bindable property paths of the mail endpoint configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries := describe.Walk(reflect.TypeFor[*mail.Configuration](), settings.GetInt("depth"))

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PATH\tTYPE\tSTYLE")

			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Path, e.Type, styleColor[e.Style].Sprint(e.Style))
			}

			return tw.Flush()
		},
	}

	cmd.Flags().Int("depth", 3, "Maximum number of segments per path")

	return cmd
}
