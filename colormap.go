// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tga

import (
	"fmt"
)

// colorMap holds the palette converted to RGBA8.
type colorMap struct {
	first   int
	entries []byte // 4 bytes per entry
}

func (m *colorMap) len() int {
	return len(m.entries) / 4
}

// lookup returns the RGBA8 entry for an index as stored in the pixel data.
func (m *colorMap) lookup(stored int) ([]byte, error) {
	i := stored - m.first
	if i < 0 || i >= m.len() {
		return nil, fmt.Errorf("%w: index %d with first entry %d and %d entries", ErrColorMapIndexOutOfRange, stored, m.first, m.len())
	}
	return m.entries[i*4 : i*4+4], nil
}

// entryFormat returns the sample format of a color map entry.
func entryFormat(bits uint8) (pixelFormat, error) {
	switch bits {
	case 15:
		return formatRGB555, nil
	case 16:
		return formatARGB1555, nil
	case 24:
		return formatBGR24, nil
	case 32:
		return formatBGRA32, nil
	default:
		return 0, fmt.Errorf("%w: %d bits", ErrUnsupportedColorMapEntrySize, bits)
	}
}

// loadColorMap reads the color map following the image ID.
// It returns nil if the header declares no color map.
func loadColorMap(r *streamReader, h FileHeader) (*colorMap, error) {
	if h.ColorMapType != ColorMapped {
		return nil, nil
	}
	spec := h.ColorMapSpec
	format, err := entryFormat(spec.EntryBitSize)
	if err != nil {
		return nil, err
	}

	size := format.bytesPerPixel()
	b, err := r.readBytes(int(spec.Length) * size)
	if err != nil {
		return nil, err
	}

	m := &colorMap{
		first:   int(spec.FirstEntryIndex),
		entries: make([]byte, int(spec.Length)*4),
	}
	for i := 0; i < int(spec.Length); i++ {
		format.unpack(m.entries[i*4:i*4+4], b[i*size:i*size+size])
	}

	return m, nil
}

// skipColorMap moves past a color map the image type does not use.
func skipColorMap(r *streamReader, h FileHeader) error {
	if h.ColorMapType != ColorMapped {
		return nil
	}
	return r.skip(int64(h.ColorMapSpec.Length) * int64(h.ColorMapSpec.entryByteSize()))
}
