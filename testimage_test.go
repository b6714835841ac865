// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tga_test

import (
	"bytes"
	"encoding/binary"
	"runtime"

	"github.com/bep/tga"
)

// testImage is a minimal TGA writer used to build test files in memory.
type testImage struct {
	id           []byte
	colorMapType uint8
	imageType    tga.ImageType
	cmFirst      uint16
	cmLength     uint16
	cmBits       uint8
	xOrigin      uint16
	yOrigin      uint16
	width        uint16
	height       uint16
	depth        uint8
	descriptor   uint8
	colorMap     []byte
	data         []byte // pixel data as stored in the file
}

func (t testImage) bytes() []byte {
	le := binary.LittleEndian
	b := []byte{byte(len(t.id)), t.colorMapType, byte(t.imageType)}
	b = le.AppendUint16(b, t.cmFirst)
	b = le.AppendUint16(b, t.cmLength)
	b = append(b, t.cmBits)
	b = le.AppendUint16(b, t.xOrigin)
	b = le.AppendUint16(b, t.yOrigin)
	b = le.AppendUint16(b, t.width)
	b = le.AppendUint16(b, t.height)
	b = append(b, t.depth, t.descriptor)
	b = append(b, t.id...)
	b = append(b, t.colorMap...)
	b = append(b, t.data...)
	return b
}

// appendFooter appends the optional extension area and developer directory
// followed by a 26 byte footer with the given signature.
func appendFooter(file, ext, devDir []byte, signature string) []byte {
	var extOffset, devOffset uint32
	if ext != nil {
		extOffset = uint32(len(file))
		file = append(file, ext...)
	}
	if devDir != nil {
		devOffset = uint32(len(file))
		file = append(file, devDir...)
	}
	file = binary.LittleEndian.AppendUint32(file, extOffset)
	file = binary.LittleEndian.AppendUint32(file, devOffset)
	file = append(file, signature...)
	file = append(file, '.', 0)
	return file
}

func newExtensionArea() []byte {
	b := make([]byte, 495)
	le := binary.LittleEndian
	le.PutUint16(b[0:], 495)
	copy(b[2:], "Bj\xf8rn Erik") // Latin-1
	copy(b[43:], "first line")
	copy(b[43+2*81:], "third line")
	for i, v := range []uint16{10, 18, 2026, 13, 14, 15} {
		le.PutUint16(b[367+i*2:], v)
	}
	copy(b[379:], "job")
	for i, v := range []uint16{1, 2, 3} {
		le.PutUint16(b[420+i*2:], v)
	}
	copy(b[426:], "tgatest")
	le.PutUint16(b[467:], 410)
	b[469] = 'b'
	le.PutUint32(b[470:], 0xff00ff00)
	le.PutUint16(b[474:], 1)
	le.PutUint16(b[476:], 1)
	le.PutUint16(b[478:], 22)
	le.PutUint16(b[480:], 10)
	b[494] = byte(tga.AttributesAlpha)
	return b
}

// packRLE is a reference RLE packer. Runs of two or more equal pixels
// become run-length packets, everything else raw packets.
func packRLE(pix []byte, bpp int) []byte {
	n := len(pix) / bpp
	at := func(i int) []byte {
		return pix[i*bpp : (i+1)*bpp]
	}
	var out []byte
	for i := 0; i < n; {
		j := i + 1
		for j < n && j-i < 128 && bytes.Equal(at(j), at(i)) {
			j++
		}
		if j-i > 1 {
			out = append(out, byte(0x80|(j-i-1)))
			out = append(out, at(i)...)
			i = j
			continue
		}
		for j < n && j-i < 128 && !(j+1 < n && bytes.Equal(at(j), at(j+1))) {
			j++
		}
		out = append(out, byte(j-i-1))
		out = append(out, pix[i*bpp:j*bpp]...)
		i = j
	}
	return out
}

func decodeBytes(b []byte) (tga.DecodeResult, error) {
	return tga.Decode(tga.Options{R: bytes.NewReader(b)})
}

func join(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

func le16(v uint16) []byte {
	return binary.LittleEndian.AppendUint16(nil, v)
}

func le32(v uint32) []byte {
	return binary.LittleEndian.AppendUint32(nil, v)
}

// grey returns the RGBA8 values of greyscale samples.
func grey(v ...byte) []byte {
	out := make([]byte, 0, len(v)*4)
	for _, g := range v {
		out = append(out, g, g, g, 255)
	}
	return out
}

func seq(n int, start byte) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = start + byte(i)
	}
	return out
}

func distinctPixels(n, bpp int) []byte {
	out := make([]byte, n*bpp)
	for i := 0; i < n; i++ {
		for j := 0; j < bpp; j++ {
			out[i*bpp+j] = byte(i >> (8 * j))
		}
	}
	return out
}

// mixedPixels returns runs of varying length, including ones longer than 128 pixels.
func mixedPixels(n, bpp int) []byte {
	out := make([]byte, 0, n*bpp)
	runs := []int{1, 3, 1, 1, 200, 2, 1, 128, 5, 1, 129, 7}
	for i, v := 0, 0; len(out) < n*bpp; i, v = i+1, v+37 {
		for k := 0; k < runs[i%len(runs)] && len(out) < n*bpp; k++ {
			for j := 0; j < bpp; j++ {
				out = append(out, byte(v+j*11))
			}
		}
	}
	return out
}

// allocatedBytes returns the number of heap bytes allocated while running f.
func allocatedBytes(f func()) uint64 {
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	f()
	runtime.ReadMemStats(&after)
	return after.TotalAlloc - before.TotalAlloc
}
