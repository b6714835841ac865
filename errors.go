// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tga

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedHeader is returned when the source ends inside the 18 byte file header.
	ErrTruncatedHeader = errors.New("tga: truncated header")
	// ErrInvalidHeader is returned when the header fields contradict each other.
	ErrInvalidHeader = errors.New("tga: invalid header")
	// ErrUnexpectedEndOfData is returned when fewer bytes remain than a read requested.
	ErrUnexpectedEndOfData = errors.New("tga: unexpected end of data")
	// ErrSeekOutOfRange is returned when a seek target lies outside the source.
	ErrSeekOutOfRange = errors.New("tga: seek out of range")
	// ErrUnsupportedColorMapEntrySize is returned for color map entries that are not 15, 16, 24 or 32 bits.
	ErrUnsupportedColorMapEntrySize = errors.New("tga: unsupported color map entry size")
	// ErrColorMapIndexOutOfRange is returned when a pixel references a color map entry that does not exist.
	ErrColorMapIndexOutOfRange = errors.New("tga: color map index out of range")
	// ErrMissingColorMap is returned when a color-mapped image has no color map.
	ErrMissingColorMap = errors.New("tga: missing color map")
	// ErrUnsupportedImageType is returned for unsupported image type and pixel depth combinations.
	// The concrete error is an *UnsupportedImageTypeError.
	ErrUnsupportedImageType = errors.New("tga: unsupported image type")
	// ErrRLEOverrun is returned when an RLE packet produces more pixels than the image holds.
	ErrRLEOverrun = errors.New("tga: RLE packet overruns image")
	// ErrTruncatedPixelData is returned when the source ends before all pixels are decoded.
	ErrTruncatedPixelData = errors.New("tga: truncated pixel data")
	// ErrReservedInterleavingMode is returned for image descriptors with interleaving bits set to 11.
	ErrReservedInterleavingMode = errors.New("tga: reserved interleaving mode")
)

var formatErrors = []error{
	ErrTruncatedHeader,
	ErrInvalidHeader,
	ErrUnexpectedEndOfData,
	ErrSeekOutOfRange,
	ErrUnsupportedColorMapEntrySize,
	ErrColorMapIndexOutOfRange,
	ErrMissingColorMap,
	ErrUnsupportedImageType,
	ErrRLEOverrun,
	ErrTruncatedPixelData,
	ErrReservedInterleavingMode,
}

// UnsupportedImageTypeError names an image type and pixel depth pair
// this package cannot decode.
type UnsupportedImageTypeError struct {
	ImageType  ImageType
	PixelDepth uint8
}

func (e *UnsupportedImageTypeError) Error() string {
	return fmt.Sprintf("%s: %s with pixel depth %d", ErrUnsupportedImageType, e.ImageType, e.PixelDepth)
}

// Is makes errors.Is(err, ErrUnsupportedImageType) work.
func (e *UnsupportedImageTypeError) Is(target error) bool {
	return target == ErrUnsupportedImageType
}

// IsInvalidFormat reports whether err is caused by malformed or unsupported TGA data,
// as opposed to e.g. an I/O error from the underlying reader.
func IsInvalidFormat(err error) bool {
	if err == nil {
		return false
	}
	for _, e := range formatErrors {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
