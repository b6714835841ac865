// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tga

// This file contains the glue to the standard library's image package.

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
)

func init() {
	// TGA has no magic bytes, so match on the color map type and image type
	// of each supported combination. The ID length can be anything.
	for _, magic := range []string{
		"?\x00\x02", // uncompressed true-color
		"?\x00\x03", // uncompressed black and white
		"?\x00\x0a", // RLE true-color
		"?\x00\x0b", // RLE black and white
		"?\x01\x01", // uncompressed color-mapped
		"?\x01\x09", // RLE color-mapped
	} {
		image.RegisterFormat("tga", magic, decodeImage, decodeImageConfig)
	}
}

// toReadSeeker returns r if it can seek, else it reads all of r into memory.
func toReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("tga: could not buffer input: %w", err)
	}
	return bytes.NewReader(b), nil
}

func decodeImage(r io.Reader) (image.Image, error) {
	rs, err := toReadSeeker(r)
	if err != nil {
		return nil, err
	}
	res, err := Decode(Options{R: rs, SkipExtension: true})
	if err != nil {
		return nil, err
	}
	return res.Raster.Image(), nil
}

func decodeImageConfig(r io.Reader) (image.Config, error) {
	rs, err := toReadSeeker(r)
	if err != nil {
		return image.Config{}, err
	}
	res, err := Decode(Options{R: rs, HeaderOnly: true, SkipExtension: true})
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      int(res.Header.ImageSpec.Width),
		Height:     int(res.Header.ImageSpec.Height),
	}, nil
}
