// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tga

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestRowOrder(t *testing.T) {
	c := qt.New(t)

	for _, test := range []struct {
		name   string
		height int
		desc   ImageDescriptor
		want   []int
	}{
		{"Bottom-left", 3, 0x00, []int{2, 1, 0}},
		{"Top-left", 3, 0x20, []int{0, 1, 2}},
		{"Two-way", 5, 0x60, []int{0, 2, 4, 1, 3}},
		{"Two-way bottom-left", 5, 0x40, []int{3, 1, 4, 2, 0}},
		{"Four-way", 9, 0xa0, []int{0, 4, 8, 1, 5, 2, 6, 3, 7}},
		{"Four-way short", 2, 0xa0, []int{0, 1}},
		{"Single row", 1, 0x00, []int{0}},
	} {
		c.Run(test.name, func(c *qt.C) {
			order, err := rowOrder(test.height, test.desc)
			c.Assert(err, qt.IsNil)
			c.Assert(order, qt.DeepEquals, test.want)
		})
	}

	_, err := rowOrder(2, 0xc0)
	c.Assert(err, qt.ErrorIs, ErrReservedInterleavingMode)
}

func TestImageDescriptor(t *testing.T) {
	c := qt.New(t)

	d := ImageDescriptor(0x28)
	c.Assert(d.AttributeBits(), qt.Equals, 8)
	c.Assert(d.OriginTop(), qt.IsTrue)
	c.Assert(d.RightToLeft(), qt.IsFalse)
	c.Assert(d.Interleaving(), qt.Equals, InterleaveNone)

	// Bit 0 alone must not be taken for the origin bit.
	d = ImageDescriptor(0x01)
	c.Assert(d.OriginTop(), qt.IsFalse)

	d = ImageDescriptor(0xd1)
	c.Assert(d.AttributeBits(), qt.Equals, 1)
	c.Assert(d.RightToLeft(), qt.IsTrue)
	c.Assert(d.OriginTop(), qt.IsFalse)
	c.Assert(d.Interleaving(), qt.Equals, InterleaveReserved)
}

func TestNormalize(t *testing.T) {
	c := qt.New(t)

	// 2x2, one byte per channel is enough to track the pixels.
	pix := []byte{
		1, 1, 1, 1, 2, 2, 2, 2,
		3, 3, 3, 3, 4, 4, 4, 4,
	}

	out, err := normalize(pix, 2, 2, 0x20)
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.DeepEquals, pix)

	out, err = normalize(pix, 2, 2, 0x00)
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.DeepEquals, []byte{
		3, 3, 3, 3, 4, 4, 4, 4,
		1, 1, 1, 1, 2, 2, 2, 2,
	})

	out, err = normalize(pix, 2, 2, 0x10)
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.DeepEquals, []byte{
		4, 4, 4, 4, 3, 3, 3, 3,
		2, 2, 2, 2, 1, 1, 1, 1,
	})

	_, err = normalize(pix, 2, 2, 0xc0)
	c.Assert(err, qt.ErrorIs, ErrReservedInterleavingMode)
}
