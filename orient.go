// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tga

import (
	"fmt"
)

// interleaveFactor returns the number of interleaved passes for the mode.
func interleaveFactor(mode Interleaving) (int, error) {
	switch mode {
	case InterleaveNone:
		return 1, nil
	case InterleaveTwoWay:
		return 2, nil
	case InterleaveFourWay:
		return 4, nil
	default:
		return 0, fmt.Errorf("%w: descriptor bits 7-6 are %02b", ErrReservedInterleavingMode, uint8(mode))
	}
}

// rowOrder returns, for each output row, the index of the row in file order it is taken from.
//
// Rows are first de-interleaved with factor k: physical rows 0, k, 2k, ... form the first
// block of logical rows, rows 1, k+1, 2k+1, ... the next and so on.
// The logical rows are then flipped vertically unless the origin is at the top.
func rowOrder(height int, d ImageDescriptor) ([]int, error) {
	k, err := interleaveFactor(d.Interleaving())
	if err != nil {
		return nil, err
	}

	logical := make([]int, 0, height)
	for start := 0; start < k; start++ {
		for p := start; p < height; p += k {
			logical = append(logical, p)
		}
	}

	if d.OriginTop() {
		return logical, nil
	}

	order := make([]int, height)
	for i, p := range logical {
		order[height-1-i] = p
	}
	return order, nil
}

// isIdentity reports whether the descriptor leaves the file layout as is.
func isIdentity(d ImageDescriptor) bool {
	return d.OriginTop() && !d.RightToLeft() && d.Interleaving() == InterleaveNone
}

// normalize reorders RGBA8 pixels stored in file order into a top-left origin,
// left-to-right, non-interleaved raster.
func normalize(pix []byte, width, height int, d ImageDescriptor) ([]byte, error) {
	order, err := rowOrder(height, d)
	if err != nil {
		return nil, err
	}
	if isIdentity(d) {
		return pix, nil
	}

	stride := width * 4
	out := make([]byte, len(pix))
	for y, src := range order {
		row := out[y*stride : (y+1)*stride]
		copy(row, pix[src*stride:(src+1)*stride])
		if d.RightToLeft() {
			mirrorRow(row)
		}
	}
	return out, nil
}

func mirrorRow(row []byte) {
	for i, j := 0, len(row)-4; i < j; i, j = i+4, j-4 {
		var tmp [4]byte
		copy(tmp[:], row[i:i+4])
		copy(row[i:i+4], row[j:j+4])
		copy(row[j:j+4], tmp[:])
	}
}
