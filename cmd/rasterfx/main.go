// Command rasterfx exercises the rasterfx image transforms from the shell.
//
// Usage:
//
//	rasterfx kernel --sigma 1.4 --size 5
//	rasterfx color ycbcr 255 128 0
//	rasterfx color from-hsv 120 100 50
//	rasterfx demo --tint steelblue --sigma 2 --size 7 --threshold 128
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
