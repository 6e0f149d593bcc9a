package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/rasterfx"
)

type kernelFlags struct {
	Sigma  float64 `validate:"gt=0"`
	Size   int     `validate:"gt=0,lte=99,odd"`
	Cached bool
}

func newKernelCmd() *cobra.Command {
	var f kernelFlags

	cmd := &cobra.Command{
		Use:   "kernel",
		Short: "Print a normalized Gaussian kernel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validate.Struct(f); err != nil {
				return err
			}

			gen := rasterfx.GaussianKernel
			if f.Cached {
				gen = rasterfx.CachedGaussianKernel
			}
			k, err := gen(f.Sigma, f.Size)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, row := range k.Rows() {
				for i, w := range row {
					if i > 0 {
						fmt.Fprint(out, " ")
					}
					fmt.Fprintf(out, "%.6f", w)
				}
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "sum %.9f\n", k.Sum())
			if f.Cached {
				n, hits, misses := rasterfx.KernelCacheStats()
				fmt.Fprintf(out, "cache entries %d, hits %d, misses %d\n", n, hits, misses)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&f.Sigma, "sigma", 1, "standard deviation")
	cmd.Flags().IntVar(&f.Size, "size", 3, "kernel width and height (odd)")
	cmd.Flags().BoolVar(&f.Cached, "cached", false, "use the shared kernel cache")
	return cmd
}
