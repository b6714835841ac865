// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

// Package tga decodes Truevision TGA (TARGA) images into RGBA8 rasters.
package tga

import (
	"errors"
	"fmt"
	"image"
	"io"
	"time"
)

// Internal error to signal a panic that was not an error.
var errUnknownPanic = errors.New("tga: unknown panic")

// DefaultLimitPixels is the default value of Options.LimitPixels.
const DefaultLimitPixels = 1 << 28

// Options contains the options for the Decode function.
type Options struct {
	// The Reader (typically a *os.File) to read the TGA file from.
	R io.ReadSeeker

	// If set, only the header, image ID, color map and metadata are read.
	// DecodeResult.Raster will be nil.
	HeaderOnly bool

	// If set, the TGA 2.0 extension area and developer directory are not read.
	SkipExtension bool

	// Warnf will be called for each warning.
	Warnf func(string, ...any)

	// Timeout is the maximum time the decoder will spend on reading the image.
	// Mostly useful for testing.
	// If set to 0, the decoder will not time out.
	Timeout time.Duration

	// LimitPixels is the maximum number of pixels (width*height) to decode.
	// Default value is DefaultLimitPixels.
	LimitPixels uint64
}

// Raster is a decoded image.
// Pix holds non-premultiplied RGBA8 samples in row-major order starting at the top-left corner.
type Raster struct {
	Width  int
	Height int
	Pix    []uint8
}

// Image returns r as an *image.NRGBA sharing the pixel buffer.
func (r *Raster) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    r.Pix,
		Stride: r.Width * 4,
		Rect:   image.Rect(0, 0, r.Width, r.Height),
	}
}

// DecodeResult contains the result of a Decode operation.
type DecodeResult struct {
	Header FileHeader

	// ImageID is the free-form image ID field, empty if not present.
	ImageID []byte

	// Footer is nil for legacy (TGA 1.0) files.
	Footer *Footer

	// Extension is the TGA 2.0 extension area, nil if not present or not readable.
	Extension *ExtensionArea

	// DeveloperDirectory lists the developer tags of a TGA 2.0 file.
	DeveloperDirectory []DeveloperTag

	// Raster is nil if Options.HeaderOnly is set.
	Raster *Raster
}

// IsNewFormat reports whether the file has a TGA 2.0 footer.
func (r DecodeResult) IsNewFormat() bool {
	return r.Footer != nil
}

// Decode reads a TGA image from opts.R.
func Decode(opts Options) (result DecodeResult, err error) {
	errFromRecover := func(r any) (err2 error) {
		if r == nil {
			return nil
		}
		if errp, ok := r.(error); ok {
			err2 = errp
		} else {
			err2 = fmt.Errorf("%w: %v", errUnknownPanic, r)
		}
		return
	}

	defer func() {
		err2 := errFromRecover(recover())
		if err == nil {
			err = err2
		}
		if err != nil {
			result = DecodeResult{}
		}
	}()

	if opts.R == nil {
		return result, fmt.Errorf("no reader provided")
	}
	if opts.Warnf == nil {
		opts.Warnf = func(string, ...any) {}
	}
	if opts.LimitPixels == 0 {
		opts.LimitPixels = DefaultLimitPixels
	}

	dec := &decoder{
		streamReader: newStreamReader(opts.R),
		opts:         opts,
	}

	if opts.Timeout <= 0 {
		err = dec.decode()
		return dec.result, err
	}

	type decodeResultErr struct {
		result DecodeResult
		err    error
	}

	decode := func() chan decodeResultErr {
		resc := make(chan decodeResultErr, 1)
		go func() {
			defer func() {
				if err2 := errFromRecover(recover()); err2 != nil {
					resc <- decodeResultErr{err: err2}
				}
			}()
			err := dec.decode()
			resc <- decodeResultErr{result: dec.result, err: err}
		}()
		return resc
	}

	select {
	case <-time.After(opts.Timeout):
		err = fmt.Errorf("timed out after %s", opts.Timeout)
	case res := <-decode():
		result, err = res.result, res.err
	}

	return
}

// decoder holds the state of one Decode call.
type decoder struct {
	*streamReader
	opts   Options
	result DecodeResult
}

func (d *decoder) decode() error {
	footer, err := detectFooter(d.streamReader)
	if err != nil {
		return err
	}
	d.result.Footer = footer
	if footer != nil && !d.opts.SkipExtension {
		d.readExtension(footer)
	}

	if err := d.rewind(); err != nil {
		return err
	}

	h, err := parseHeader(d.streamReader)
	if err != nil {
		return err
	}
	if err := h.validate(); err != nil {
		return err
	}
	d.result.Header = h

	d.result.ImageID, err = readImageID(d.streamReader, h)
	if err != nil {
		return fmt.Errorf("reading image ID: %w", err)
	}

	if h.ImageType == NoImageData {
		return &UnsupportedImageTypeError{ImageType: h.ImageType, PixelDepth: h.ImageSpec.PixelDepth}
	}

	var cmap *colorMap
	if h.ImageType.IsColorMapped() {
		cmap, err = loadColorMap(d.streamReader, h)
		if err != nil {
			return fmt.Errorf("reading color map: %w", err)
		}
	} else if h.ColorMapType == ColorMapped {
		d.opts.Warnf("tga: skipping color map of %d entries in %s image", h.ColorMapSpec.Length, h.ImageType)
		if err := skipColorMap(d.streamReader, h); err != nil {
			return fmt.Errorf("skipping color map: %w", err)
		}
	}

	conv, err := newPixelConverter(h, cmap)
	if err != nil {
		return err
	}
	d.checkAttributeBits(h)

	width, height := int(h.ImageSpec.Width), int(h.ImageSpec.Height)
	numPixels := uint64(width) * uint64(height)
	if numPixels > d.opts.LimitPixels {
		return fmt.Errorf("%w: %dx%d exceeds the limit of %d pixels", ErrInvalidHeader, width, height, d.opts.LimitPixels)
	}

	desc := h.ImageSpec.Descriptor
	if _, err := interleaveFactor(desc.Interleaving()); err != nil {
		return err
	}

	if d.opts.HeaderOnly {
		return nil
	}

	if err := d.checkPixelDataSize(h.ImageType.IsRLE(), numPixels, conv.bytesPerPixel()); err != nil {
		return err
	}

	pix := make([]byte, numPixels*4)
	if h.ImageType.IsRLE() {
		err = decodeRLE(d.r, pix, int(numPixels), conv)
	} else {
		err = d.decodeUncompressed(pix, width, height, conv)
	}
	if err != nil {
		return err
	}

	pix, err = normalize(pix, width, height, desc)
	if err != nil {
		return err
	}

	d.result.Raster = &Raster{
		Width:  width,
		Height: height,
		Pix:    pix,
	}

	return nil
}

// decodeUncompressed reads exactly width*height stored pixels, one row at a time.
func (d *decoder) decodeUncompressed(dst []byte, width, height int, conv *pixelConverter) error {
	rowSize := width * conv.bytesPerPixel()
	row := make([]byte, rowSize)
	stride := width * 4
	for y := 0; y < height; y++ {
		if err := d.readFull(row); err != nil {
			if errors.Is(err, ErrUnexpectedEndOfData) {
				return fmt.Errorf("%w: row %d of %d: %w", ErrTruncatedPixelData, y, height, err)
			}
			return err
		}
		if err := conv.convertRow(dst[y*stride:(y+1)*stride], row); err != nil {
			return err
		}
	}
	return nil
}

// checkPixelDataSize fails if the rest of the source is too short to hold
// numPixels stored pixels, so a short file never gets its raster allocated.
// An RLE packet covers at most 128 pixels and takes at least 1+bpp bytes.
func (d *decoder) checkPixelDataSize(rle bool, numPixels uint64, bpp int) error {
	size, err := d.sourceSize()
	if err != nil {
		return err
	}
	var remaining uint64
	if n := size - d.pos(); n > 0 {
		remaining = uint64(n)
	}
	need := numPixels * uint64(bpp)
	if rle {
		need = (numPixels + maxPacketCount - 1) / maxPacketCount * uint64(1+bpp)
	}
	if remaining < need {
		return fmt.Errorf("%w: at least %d bytes of pixel data needed, %d remain: %w", ErrTruncatedPixelData, need, remaining, ErrUnexpectedEndOfData)
	}
	return nil
}

func (d *decoder) readExtension(footer *Footer) {
	if off := footer.ExtensionAreaOffset; off != 0 {
		ext, err := readExtensionArea(d.streamReader, off, d.opts.Warnf)
		if err != nil {
			d.opts.Warnf("tga: ignoring extension area at offset %d: %s", off, err)
		} else {
			d.result.Extension = ext
		}
	}
	if off := footer.DeveloperDirectoryOffset; off != 0 {
		tags, err := readDeveloperDirectory(d.streamReader, off)
		if err != nil {
			d.opts.Warnf("tga: ignoring developer directory at offset %d: %s", off, err)
		} else {
			d.result.DeveloperDirectory = tags
		}
	}
}

func (d *decoder) checkAttributeBits(h FileHeader) {
	bits := h.ImageSpec.Descriptor.AttributeBits()
	var want int
	switch {
	case h.ImageType.IsColorMapped():
		return
	case h.ImageSpec.PixelDepth == 16:
		want = 1
	case h.ImageSpec.PixelDepth == 32:
		want = 8
	}
	if bits != want {
		d.opts.Warnf("tga: %d attribute bits in %d bit %s image, expected %d", bits, h.ImageSpec.PixelDepth, h.ImageType, want)
	}
}
