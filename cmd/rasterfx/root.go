package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/rasterfx"
)

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "rasterfx",
		Short:         "Raster image transforms: kernels, color spaces, filter pipelines",
		Version:       rasterfx.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if !verbose {
				rasterfx.SetLogger(nil)
				return
			}
			rasterfx.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log filter diagnostics to stderr")

	root.AddCommand(newKernelCmd(), newColorCmd(), newDemoCmd())
	return root
}
