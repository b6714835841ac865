// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tga

import (
	"encoding/binary"
	"fmt"
)

// pixelFormat is how one stored pixel is laid out in the file.
type pixelFormat int

const (
	formatMapped8 pixelFormat = iota + 1
	formatMapped16
	formatGray8
	formatRGB555
	formatARGB1555
	formatBGR24
	formatBGRA32
)

func (f pixelFormat) bytesPerPixel() int {
	switch f {
	case formatMapped8, formatGray8:
		return 1
	case formatMapped16, formatRGB555, formatARGB1555:
		return 2
	case formatBGR24:
		return 3
	case formatBGRA32:
		return 4
	}
	panic("unreachable")
}

func (f pixelFormat) isMapped() bool {
	return f == formatMapped8 || f == formatMapped16
}

type imageKind int

const (
	kindColorMapped imageKind = iota + 1
	kindTrueColor
	kindBlackAndWhite
)

func (t ImageType) kind() imageKind {
	switch t {
	case UncompressedColorMapped, RLEColorMapped:
		return kindColorMapped
	case UncompressedTrueColor, RLETrueColor:
		return kindTrueColor
	case UncompressedBlackAndWhite, RLEBlackAndWhite:
		return kindBlackAndWhite
	}
	return 0
}

type formatKey struct {
	kind  imageKind
	depth uint8
}

// pixelFormatFor resolves the stored pixel layout for an image type and pixel depth.
// Every supported combination has its own case; anything else is an *UnsupportedImageTypeError.
func pixelFormatFor(t ImageType, depth uint8) (pixelFormat, error) {
	switch (formatKey{t.kind(), depth}) {
	case formatKey{kindColorMapped, 8}:
		return formatMapped8, nil
	case formatKey{kindColorMapped, 16}:
		return formatMapped16, nil
	case formatKey{kindTrueColor, 15}:
		return formatRGB555, nil
	case formatKey{kindTrueColor, 16}:
		return formatARGB1555, nil
	case formatKey{kindTrueColor, 24}:
		return formatBGR24, nil
	case formatKey{kindTrueColor, 32}:
		return formatBGRA32, nil
	case formatKey{kindBlackAndWhite, 8}:
		return formatGray8, nil
	default:
		return 0, &UnsupportedImageTypeError{ImageType: t, PixelDepth: depth}
	}
}

// expand5 scales a 5 bit channel to 8 bits by replicating the top bits,
// so 0 maps to 0 and 31 maps to 255.
func expand5(v uint16) uint8 {
	v &= 0x1f
	return uint8(v<<3 | v>>2)
}

// unpack converts one stored true-color or greyscale sample in src to RGBA8 in dst.
// Mapped formats are resolved by the caller.
func (f pixelFormat) unpack(dst, src []byte) {
	switch f {
	case formatGray8:
		dst[0], dst[1], dst[2], dst[3] = src[0], src[0], src[0], 0xff
	case formatRGB555, formatARGB1555:
		v := binary.LittleEndian.Uint16(src)
		dst[0] = expand5(v >> 10)
		dst[1] = expand5(v >> 5)
		dst[2] = expand5(v)
		if f == formatRGB555 || v&0x8000 != 0 {
			dst[3] = 0xff
		} else {
			dst[3] = 0
		}
	case formatBGR24:
		dst[0], dst[1], dst[2], dst[3] = src[2], src[1], src[0], 0xff
	case formatBGRA32:
		dst[0], dst[1], dst[2], dst[3] = src[2], src[1], src[0], src[3]
	}
}

// pixelConverter turns stored pixels into RGBA8.
type pixelConverter struct {
	format pixelFormat
	cmap   *colorMap
}

func newPixelConverter(h FileHeader, cmap *colorMap) (*pixelConverter, error) {
	format, err := pixelFormatFor(h.ImageType, h.ImageSpec.PixelDepth)
	if err != nil {
		return nil, err
	}
	if format.isMapped() && cmap == nil {
		return nil, fmt.Errorf("%w: %s image without a color map", ErrMissingColorMap, h.ImageType)
	}
	return &pixelConverter{format: format, cmap: cmap}, nil
}

func (c *pixelConverter) bytesPerPixel() int {
	return c.format.bytesPerPixel()
}

// convert writes the RGBA8 value of the stored pixel src into dst.
func (c *pixelConverter) convert(dst, src []byte) error {
	var index int
	switch c.format {
	case formatMapped8:
		index = int(src[0])
	case formatMapped16:
		index = int(binary.LittleEndian.Uint16(src))
	default:
		c.format.unpack(dst, src)
		return nil
	}
	entry, err := c.cmap.lookup(index)
	if err != nil {
		return err
	}
	copy(dst, entry)
	return nil
}

// convertRow converts a run of stored pixels.
func (c *pixelConverter) convertRow(dst, src []byte) error {
	bpp := c.bytesPerPixel()
	for i, j := 0, 0; j < len(src); i, j = i+4, j+bpp {
		if err := c.convert(dst[i:i+4], src[j:j+bpp]); err != nil {
			return err
		}
	}
	return nil
}
