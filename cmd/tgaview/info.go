// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/pkg/errors"

	"github.com/bep/tga"
)

func printFailure(d decoded) {
	color.Red.Printf("%s: ", d.filename)
	fmt.Printf("%v\n", d.err)
	var typeErr *tga.UnsupportedImageTypeError
	if errors.As(d.err, &typeErr) {
		fmt.Printf("  unsupported combination: %s, %d bits per pixel\n", typeErr.ImageType, typeErr.PixelDepth)
	}
}

func printInfo(d decoded) {
	h := d.result.Header
	spec := h.ImageSpec

	color.Cyan.Printf("%s", d.filename)
	fmt.Printf(" (%s)\n", d.elapsed)

	format := "TGA 1.0"
	if d.result.IsNewFormat() {
		format = "TGA 2.0"
	}
	fmt.Printf("  format:       %s\n", format)
	fmt.Printf("  image type:   %s\n", h.ImageType)
	fmt.Printf("  dimensions:   %dx%d at (%d,%d)\n", spec.Width, spec.Height, spec.XOrigin, spec.YOrigin)
	fmt.Printf("  pixel depth:  %d (%d attribute bits)\n", spec.PixelDepth, spec.Descriptor.AttributeBits())
	fmt.Printf("  origin:       %s\n", origin(spec.Descriptor))
	fmt.Printf("  interleaving: %s\n", spec.Descriptor.Interleaving())
	if h.ColorMapType == tga.ColorMapped {
		cm := h.ColorMapSpec
		fmt.Printf("  color map:    %d entries of %d bits, first index %d\n", cm.Length, cm.EntryBitSize, cm.FirstEntryIndex)
	}
	if len(d.result.ImageID) > 0 {
		fmt.Printf("  image ID:     %q\n", d.result.ImageID)
	}

	if ext := d.result.Extension; ext != nil {
		if ext.AuthorName != "" {
			fmt.Printf("  author:       %s\n", ext.AuthorName)
		}
		if len(ext.AuthorComments) > 0 {
			fmt.Printf("  comments:     %s\n", strings.Join(ext.AuthorComments, " / "))
		}
		if !ext.Timestamp.IsZero() {
			fmt.Printf("  created:      %s\n", ext.Timestamp.Format("2006-01-02 15:04:05"))
		}
		if ext.SoftwareID != "" {
			fmt.Printf("  software:     %s %d.%02d%c\n", ext.SoftwareID, ext.SoftwareVersion/100, ext.SoftwareVersion%100, printableLetter(ext.SoftwareVersionLetter))
		}
		if g := ext.Gamma(); g != 0 {
			fmt.Printf("  gamma:        %.2f\n", g)
		}
		if r := ext.PixelAspectRatio(); r != 0 {
			fmt.Printf("  pixel aspect: %.3f\n", r)
		}
	}
	for _, tag := range d.result.DeveloperDirectory {
		fmt.Printf("  developer tag %d: %d bytes at offset %d\n", tag.Tag, tag.Size, tag.Offset)
	}
}

func origin(d tga.ImageDescriptor) string {
	vertical, horizontal := "bottom", "left"
	if d.OriginTop() {
		vertical = "top"
	}
	if d.RightToLeft() {
		horizontal = "right"
	}
	return vertical + "-" + horizontal
}

func printableLetter(c byte) rune {
	if c == 0 {
		return ' '
	}
	return rune(c)
}
