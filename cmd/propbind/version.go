package main

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	version    = "0.1.0"
	gitCommit  = ""
	versionTag = color.New(color.FgGreen, color.Bold)
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()

			fmt.Fprintf(w, "propbind %s\n", versionTag.Sprint("v"+version))

			if gitCommit != "" {
				fmt.Fprintf(w, "Commit: %s\n", gitCommit)
			}

			fmt.Fprintf(w, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(w, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
