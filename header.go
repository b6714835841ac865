// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tga

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	headerSize = 18
	footerSize = 26
)

// footerSignature identifies a TGA 2.0 ("new format") file.
const footerSignature = "TRUEVISION-XFILE"

// ColorMapType tells whether the file contains a color map.
//
//go:generate stringer -type=ColorMapType
type ColorMapType uint8

const (
	// NoColorMap means there is no color map in the file.
	NoColorMap ColorMapType = iota
	// ColorMapped means a color map follows the image ID.
	ColorMapped
)

// ImageType is the TGA image type field.
//
//go:generate stringer -type=ImageType
type ImageType uint8

const (
	NoImageData               ImageType = 0
	UncompressedColorMapped   ImageType = 1
	UncompressedTrueColor     ImageType = 2
	UncompressedBlackAndWhite ImageType = 3
	RLEColorMapped            ImageType = 9
	RLETrueColor              ImageType = 10
	RLEBlackAndWhite          ImageType = 11
)

// IsRLE reports whether the pixel data is run-length encoded.
func (t ImageType) IsRLE() bool {
	return t == RLEColorMapped || t == RLETrueColor || t == RLEBlackAndWhite
}

// IsColorMapped reports whether pixels are color map indices.
func (t ImageType) IsColorMapped() bool {
	return t == UncompressedColorMapped || t == RLEColorMapped
}

// Interleaving is the scanline interleaving mode from the image descriptor.
//
//go:generate stringer -type=Interleaving
type Interleaving uint8

const (
	InterleaveNone Interleaving = iota
	InterleaveTwoWay
	InterleaveFourWay
	InterleaveReserved
)

// ImageDescriptor is the last header byte.
//
//	bits 3-0: attribute bits per pixel
//	bit 4:    right-to-left pixel order
//	bit 5:    top-left origin
//	bits 7-6: interleaving
type ImageDescriptor uint8

// AttributeBits returns the number of attribute (alpha) bits per pixel.
func (d ImageDescriptor) AttributeBits() int {
	return int(d & 0x0f)
}

// RightToLeft reports whether pixels within a row are stored right to left.
func (d ImageDescriptor) RightToLeft() bool {
	return (d&0x10)>>4 == 1
}

// OriginTop reports whether the first row in the file is the top row of the image.
func (d ImageDescriptor) OriginTop() bool {
	return (d&0x20)>>5 == 1
}

// Interleaving returns the scanline interleaving mode.
func (d ImageDescriptor) Interleaving() Interleaving {
	return Interleaving((d & 0xc0) >> 6)
}

// ColorMapSpec describes the color map.
type ColorMapSpec struct {
	FirstEntryIndex uint16
	Length          uint16
	EntryBitSize    uint8
}

// entryByteSize returns the stored size of one entry. 15 bit entries are padded to 16 bits.
func (s ColorMapSpec) entryByteSize() int {
	return (int(s.EntryBitSize) + 7) / 8
}

// ImageSpec describes the image dimensions and pixel format.
type ImageSpec struct {
	XOrigin    uint16
	YOrigin    uint16
	Width      uint16
	Height     uint16
	PixelDepth uint8
	Descriptor ImageDescriptor
}

// FileHeader is the fixed 18 byte TGA header.
type FileHeader struct {
	IDLength     uint8
	ColorMapType ColorMapType
	ImageType    ImageType
	ColorMapSpec ColorMapSpec
	ImageSpec    ImageSpec
}

// Footer is the trailing 26 byte structure of TGA 2.0 files.
type Footer struct {
	ExtensionAreaOffset      uint32
	DeveloperDirectoryOffset uint32
	Signature                string
}

// parseHeader reads the header fields in file order.
func parseHeader(r *streamReader) (FileHeader, error) {
	var h FileHeader
	b, err := r.readBytesVolatile(headerSize)
	if err != nil {
		if errors.Is(err, ErrUnexpectedEndOfData) {
			return h, fmt.Errorf("%w: %w", ErrTruncatedHeader, err)
		}
		return h, err
	}

	u16 := func(i int) uint16 {
		return binary.LittleEndian.Uint16(b[i : i+2])
	}

	h.IDLength = b[0]
	h.ColorMapType = ColorMapType(b[1])
	h.ImageType = ImageType(b[2])
	h.ColorMapSpec = ColorMapSpec{
		FirstEntryIndex: u16(3),
		Length:          u16(5),
		EntryBitSize:    b[7],
	}
	h.ImageSpec = ImageSpec{
		XOrigin:    u16(8),
		YOrigin:    u16(10),
		Width:      u16(12),
		Height:     u16(14),
		PixelDepth: b[16],
		Descriptor: ImageDescriptor(b[17]),
	}

	return h, nil
}

// validate checks the header invariants that do not depend on the pixel format.
func (h FileHeader) validate() error {
	if h.ColorMapType > ColorMapped {
		return fmt.Errorf("%w: color map type %d", ErrInvalidHeader, h.ColorMapType)
	}
	if h.ColorMapType == ColorMapped && h.ColorMapSpec.Length == 0 {
		return fmt.Errorf("%w: color map with zero entries", ErrInvalidHeader)
	}
	if h.ImageType == NoImageData {
		return nil
	}
	if h.ImageSpec.Width == 0 || h.ImageSpec.Height == 0 {
		return fmt.Errorf("%w: image dimensions %dx%d", ErrInvalidHeader, h.ImageSpec.Width, h.ImageSpec.Height)
	}
	return nil
}

// detectFooter looks for a TGA 2.0 footer at the end of the source.
// A source that is too short or has no signature is a legacy file, which is not an error.
// The stream position is restored.
func detectFooter(r *streamReader) (*Footer, error) {
	var footer *Footer
	err := r.preservePos(func() error {
		if err := r.seekFromEnd(footerSize); err != nil {
			if errors.Is(err, ErrSeekOutOfRange) {
				return nil
			}
			return err
		}
		b, err := r.readBytesVolatile(footerSize)
		if err != nil {
			return err
		}
		sig := string(b[8:24])
		if sig != footerSignature {
			return nil
		}
		footer = &Footer{
			ExtensionAreaOffset:      binary.LittleEndian.Uint32(b[0:4]),
			DeveloperDirectoryOffset: binary.LittleEndian.Uint32(b[4:8]),
			Signature:                sig,
		}
		return nil
	})
	return footer, err
}

// readImageID reads the idLength bytes following the header.
func readImageID(r *streamReader, h FileHeader) ([]byte, error) {
	if h.IDLength == 0 {
		return []byte{}, nil
	}
	return r.readBytes(int(h.IDLength))
}
