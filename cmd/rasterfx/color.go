package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gogpu/rasterfx"
)

type rgbArgs struct {
	R int `validate:"gte=0,lte=255"`
	G int `validate:"gte=0,lte=255"`
	B int `validate:"gte=0,lte=255"`
}

func parseRGB(args []string) (rasterfx.RGB, error) {
	var a rgbArgs
	for i, dst := range []*int{&a.R, &a.G, &a.B} {
		v, err := strconv.Atoi(args[i])
		if err != nil {
			return rasterfx.RGB{}, fmt.Errorf("channel %d: %w", i, err)
		}
		*dst = v
	}
	if err := validate.Struct(a); err != nil {
		return rasterfx.RGB{}, err
	}
	return rasterfx.RGB{R: uint8(a.R), G: uint8(a.G), B: uint8(a.B)}, nil
}

func parseFloats(args []string) ([3]float64, error) {
	var v [3]float64
	for i := range v {
		f, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return v, fmt.Errorf("component %d: %w", i, err)
		}
		v[i] = f
	}
	return v, nil
}

func newColorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color",
		Short: "Convert colors between RGB, YCbCr and HSV",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "ycbcr R G B",
			Short: "Convert RGB to YCbCr",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := parseRGB(args)
				if err != nil {
					return err
				}
				y, cb, cr := rasterfx.RGBToYCbCr(c.R, c.G, c.B)
				fmt.Fprintf(cmd.OutOrStdout(), "Y=%.3f Cb=%.3f Cr=%.3f\n", y, cb, cr)
				return nil
			},
		},
		&cobra.Command{
			Use:   "hsv R G B",
			Short: "Convert RGB to HSV (S and V in percent)",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := parseRGB(args)
				if err != nil {
					return err
				}
				h, s, v := rasterfx.RGBToHSV(c.R, c.G, c.B)
				fmt.Fprintf(cmd.OutOrStdout(), "H=%.2f S=%.2f V=%.2f\n", h, s*100, v*100)
				return nil
			},
		},
		&cobra.Command{
			Use:   "from-ycbcr Y Cb Cr",
			Short: "Convert YCbCr to RGB",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := parseFloats(args)
				if err != nil {
					return err
				}
				r, g, b := rasterfx.YCbCrToRGB(v[0], v[1], v[2])
				fmt.Fprintf(cmd.OutOrStdout(), "R=%d G=%d B=%d\n", r, g, b)
				return nil
			},
		},
		&cobra.Command{
			Use:   "from-hsv H S V",
			Short: "Convert HSV (S and V in percent) to RGB",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := parseFloats(args)
				if err != nil {
					return err
				}
				r, g, b := rasterfx.HSVToRGB(v[0], v[1], v[2])
				fmt.Fprintf(cmd.OutOrStdout(), "R=%d G=%d B=%d\n", r, g, b)
				return nil
			},
		},
	)
	return cmd
}
