package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/rasterfx"
)

type demoFlags struct {
	Width      int     `validate:"gt=0,lte=8192"`
	Height     int     `validate:"gt=0,lte=8192"`
	Tint       string  `validate:"required,color"`
	Brightness int     `validate:"gte=-255,lte=255"`
	Sigma      float64 `validate:"gt=0"`
	Size       int     `validate:"gt=0,lte=99,odd"`
	Border     string  `validate:"oneof=legacy symmetric"`
	Extend     bool
	Threshold  int    `validate:"gte=-1,lte=255"`
	Workers    int    `validate:"gte=0,lte=256"`
	Lang       string `validate:"bcp47_language_tag"`
	Buckets    int    `validate:"gt=0,lte=256"`
}

func newDemoCmd() *cobra.Command {
	var f demoFlags

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a filter pipeline over a synthetic gradient and report its histogram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validate.Struct(f); err != nil {
				return err
			}
			return runDemo(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.IntVar(&f.Width, "width", 256, "image width")
	fl.IntVar(&f.Height, "height", 128, "image height")
	fl.StringVar(&f.Tint, "tint", "steelblue", "color name or #rrggbb tinting the gradient")
	fl.IntVar(&f.Brightness, "brightness", 0, "channel offset applied before blurring")
	fl.Float64Var(&f.Sigma, "sigma", 1.4, "Gaussian standard deviation")
	fl.IntVar(&f.Size, "size", 5, "Gaussian kernel size (odd)")
	fl.StringVar(&f.Border, "border", "legacy", "border policy: legacy or symmetric")
	fl.BoolVar(&f.Extend, "extend", true, "extend edges before convolving")
	fl.IntVar(&f.Threshold, "threshold", -1, "binarize at this level after stretching (-1 disables)")
	fl.IntVar(&f.Workers, "workers", 0, "row workers (0 runs sequentially)")
	fl.StringVar(&f.Lang, "lang", "en", "language for number formatting")
	fl.IntVar(&f.Buckets, "buckets", 16, "histogram report buckets")
	return cmd
}

func runDemo(cmd *cobra.Command, f demoFlags) error {
	src, err := gradient(f.Width, f.Height, f.Tint)
	if err != nil {
		return err
	}

	k, err := rasterfx.CachedGaussianKernel(f.Sigma, f.Size)
	if err != nil {
		return err
	}
	border := rasterfx.BorderLegacy
	if f.Border == "symmetric" {
		border = rasterfx.BorderSymmetric
	}

	p := rasterfx.NewPipeline().
		Then(rasterfx.BrightnessOp{Delta: f.Brightness}).
		Then(rasterfx.ConvolveOp{Kernel: k, ExtendEdges: f.Extend, Border: border}).
		Then(rasterfx.StretchOp{})
	if f.Threshold >= 0 {
		p.Mutate(rasterfx.ThresholdOp{Level: f.Threshold})
	}
	if f.Workers > 0 {
		pool := rasterfx.NewWorkerPool(f.Workers)
		defer pool.Close()
		p.WithPool(pool)
	}

	out, err := p.Run(cmd.Context(), src)
	if err != nil {
		return err
	}

	tag, err := language.Parse(f.Lang)
	if err != nil {
		return err
	}
	report(cmd.OutOrStdout(), message.NewPrinter(tag), out, rasterfx.Histogram(out), f.Buckets)
	return nil
}

// gradient synthesizes a diagonal ramp from black to the tint color.
func gradient(w, h int, tint string) (*rasterfx.Buffer, error) {
	c, err := rasterfx.ParseColor(tint)
	if err != nil {
		return nil, err
	}

	b, err := rasterfx.NewBuffer(w, h)
	if err != nil {
		return nil, err
	}
	span := max(w+h-2, 1)
	pix := b.Pix()
	for y := range h {
		for x := range w {
			i := (y*w + x) * 3
			pix[i] = uint8(int(c.R) * (x + y) / span)
			pix[i+1] = uint8(int(c.G) * (x + y) / span)
			pix[i+2] = uint8(int(c.B) * (x + y) / span)
		}
	}
	return b, nil
}

// report prints the image size, luma range and a bucketed histogram.
func report(w io.Writer, p *message.Printer, b *rasterfx.Buffer, h rasterfx.Levels, buckets int) {
	total := h.Total()
	lo, hi, _ := h.Bounds()

	sum := 0
	for v, n := range h {
		sum += v * n
	}

	p.Fprintf(w, "size: %d x %d\n", b.Width(), b.Height())
	p.Fprintf(w, "pixels: %d\n", total)
	p.Fprintf(w, "luma: min %d, max %d, mean %.2f\n", lo, hi, float64(sum)/float64(total))

	counts := make([]int, buckets)
	peak := 0
	for v, n := range h {
		i := v * buckets / len(h)
		counts[i] += n
		peak = max(peak, counts[i])
	}

	const barWidth = 40
	for i, n := range counts {
		from := i * len(h) / buckets
		to := (i+1)*len(h)/buckets - 1
		bar := 0
		if peak > 0 {
			bar = n * barWidth / peak
		}
		p.Fprintf(w, "%3d-%3d %12d %s\n", from, to, n, strings.Repeat("#", bar))
	}
}
