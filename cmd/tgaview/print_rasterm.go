// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

//go:build !windows

package main

import (
	"fmt"
	"image"
	"os"

	"github.com/BourgeoisBear/rasterm"
	"github.com/andybons/gogif"
	"github.com/golang/glog"
	"github.com/nfnt/resize"
)

// printGraphics draws img using the Kitty, iTerm or Sixel protocol.
// It returns false if the terminal supports none of them.
func printGraphics(img image.Image, maxWidth uint) bool {
	if maxWidth > 0 {
		// Graphics protocols work in pixels, allow a larger image than character cells do.
		img = resize.Thumbnail(maxWidth*8, maxWidth*8, img, resize.Lanczos3)
	}

	var err error
	switch {
	case rasterm.IsTermKitty():
		err = rasterm.Settings{}.KittyWriteImage(os.Stdout, img)
	case rasterm.IsTermItermWez():
		err = rasterm.Settings{}.ItermWriteImage(os.Stdout, img)
	default:
		capable, cerr := rasterm.IsSixelCapable()
		if !capable || cerr != nil {
			return false
		}
		paletted := image.NewPaletted(img.Bounds(), nil)
		quantizer := gogif.MedianCutQuantizer{NumColor: 64}
		quantizer.Quantize(paletted, img.Bounds(), img, image.Point{})
		err = rasterm.Settings{}.SixelWriteImage(os.Stdout, paletted)
	}
	if err != nil {
		glog.Warningf("terminal graphics: %v", err)
		return false
	}
	fmt.Printf("\n")
	return true
}
