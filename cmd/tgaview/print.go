// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"image"
	ic "image/color"

	"github.com/golang/glog"
	"github.com/gookit/color"
	"github.com/nfnt/resize"

	"github.com/bep/tga"
)

type printer interface {
	Printf(format string, args ...interface{})
}

type fmtPrinter struct{}

func (fmtPrinter) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

func printRaster(r *tga.Raster, mode string, maxWidth uint, blanks bool) {
	var img image.Image = r.Image()

	if mode == "auto" && printGraphics(img, maxWidth) {
		return
	}

	// Character cells are roughly twice as high as wide and each pixel takes two cells.
	if maxWidth > 0 {
		img = resize.Thumbnail(maxWidth/2, maxWidth/2, img, resize.Lanczos3)
	}

	switch mode {
	case "auto", "24bit":
		printCells(img, blanks, func(c ic.NRGBA) printer {
			fmt.Printf("\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
			return fmtPrinter{}
		})
	case "256color":
		printCells(img, blanks, func(c ic.NRGBA) printer {
			return color.RGB(c.R, c.G, c.B, true)
		})
	case "nocolor":
		printCells(img, blanks, func(ic.NRGBA) printer {
			return fmtPrinter{}
		})
	default:
		glog.Errorf("unknown print mode %q", mode)
	}
}

func printCells(img image.Image, blanks bool, cell func(ic.NRGBA) printer) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := ic.NRGBAModel.Convert(img.At(x, y)).(ic.NRGBA)
			if c.A == 0 {
				fmt.Printf("\x1b[0m  ")
				continue
			}
			p := cell(c)
			if blanks {
				p.Printf("  ")
			} else {
				p.Printf("%s", shade(c))
			}
			fmt.Printf("\x1b[0m")
		}
		fmt.Printf("\n")
	}
}

func shade(c ic.NRGBA) string {
	switch a := (int(c.R) + int(c.G) + int(c.B)) / 3; {
	case a < 32:
		return ".."
	case a < 64:
		return "--"
	case a < 128:
		return "=="
	default:
		return "##"
	}
}
