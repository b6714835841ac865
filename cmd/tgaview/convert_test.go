// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"image"
	ic "image/color"
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
	"golang.org/x/image/bmp"

	"github.com/bep/tga"
)

func TestOutputName(t *testing.T) {
	c := qt.New(t)

	c.Assert(outputName("out", "/a/b/sample.tga", "png"), qt.Equals, filepath.Join("out", "sample.png"))
	c.Assert(outputName("out", "noext", "BMP"), qt.Equals, filepath.Join("out", "noext.bmp"))
}

func TestOutputNames(t *testing.T) {
	c := qt.New(t)

	got := outputNames("out", []string{"a/x.tga", "b/x.tga", "y.tga", "c/x.TGA", "x-2.tga"}, "png")
	c.Assert(got, qt.DeepEquals, []string{
		filepath.Join("out", "x.png"),
		filepath.Join("out", "x-2.png"),
		filepath.Join("out", "y.png"),
		filepath.Join("out", "x-3.png"),
		filepath.Join("out", "x-2-2.png"),
	})
}

func TestWriteImage(t *testing.T) {
	c := qt.New(t)

	raster := &tga.Raster{
		Width:  2,
		Height: 1,
		Pix:    []uint8{255, 0, 0, 255, 0, 0, 255, 255},
	}

	c.Run("PNG", func(c *qt.C) {
		dir := c.TempDir()
		c.Assert(writeImage(filepath.Join(dir, "x.png"), "png", raster), qt.IsNil)
		f, err := os.Open(filepath.Join(dir, "x.png"))
		c.Assert(err, qt.IsNil)
		defer f.Close()
		img, format, err := image.Decode(f)
		c.Assert(err, qt.IsNil)
		c.Assert(format, qt.Equals, "png")
		c.Assert(img.Bounds(), qt.Equals, image.Rect(0, 0, 2, 1))
		r, g, b, _ := img.At(1, 0).RGBA()
		c.Assert([]uint32{r >> 8, g >> 8, b >> 8}, qt.DeepEquals, []uint32{0, 0, 255})
	})

	c.Run("BMP", func(c *qt.C) {
		dir := c.TempDir()
		c.Assert(writeImage(filepath.Join(dir, "x.bmp"), "bmp", raster), qt.IsNil)
		f, err := os.Open(filepath.Join(dir, "x.bmp"))
		c.Assert(err, qt.IsNil)
		defer f.Close()
		cfg, err := bmp.DecodeConfig(f)
		c.Assert(err, qt.IsNil)
		c.Assert(cfg.Width, qt.Equals, 2)
		c.Assert(cfg.Height, qt.Equals, 1)
	})

	c.Run("Unsupported format", func(c *qt.C) {
		c.Assert(writeImage(filepath.Join(c.TempDir(), "x.gif"), "gif", raster), qt.ErrorMatches, `unsupported output format "gif"`)
	})
}

func TestShade(t *testing.T) {
	c := qt.New(t)

	c.Assert(shade(ic.NRGBA{A: 255}), qt.Equals, "..")
	c.Assert(shade(ic.NRGBA{R: 50, G: 50, B: 50, A: 255}), qt.Equals, "--")
	c.Assert(shade(ic.NRGBA{R: 100, G: 100, B: 100, A: 255}), qt.Equals, "==")
	c.Assert(shade(ic.NRGBA{R: 255, G: 255, B: 255, A: 255}), qt.Equals, "##")
}

// writeTestFiles writes a valid 2x1 greyscale TGA to each of the given paths,
// creating parent directories as needed.
func writeTestFiles(c *qt.C, paths ...string) {
	for i, path := range paths {
		c.Assert(os.MkdirAll(filepath.Dir(path), 0o755), qt.IsNil)
		c.Assert(os.WriteFile(path, []byte{
			0, 0, 3, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2, 0, 1, 0, 8, 0x20,
			byte(10 + i), 20,
		}, 0o644), qt.IsNil)
	}
}

func TestRun(t *testing.T) {
	c := qt.New(t)

	c.Run("Decode", func(c *qt.C) {
		dir := c.TempDir()
		good := filepath.Join(dir, "good.tga")
		bad := filepath.Join(dir, "bad.tga")
		writeTestFiles(c, good)
		c.Assert(os.WriteFile(bad, []byte{0, 0, 3}, 0o644), qt.IsNil)

		results, err := run(context.Background(), []string{good, bad, filepath.Join(dir, "missing.tga")}, "", "png")
		c.Assert(err, qt.IsNil)
		c.Assert(results, qt.HasLen, 3)

		c.Assert(results[0].err, qt.IsNil)
		c.Assert(results[0].result.Raster.Pix, qt.DeepEquals, []uint8{10, 10, 10, 255, 20, 20, 20, 255})

		c.Assert(results[1].err, qt.ErrorIs, tga.ErrTruncatedHeader)
		c.Assert(tga.IsInvalidFormat(results[1].err), qt.IsTrue)

		c.Assert(results[2].err, qt.ErrorIs, os.ErrNotExist)
	})

	c.Run("Same base name", func(c *qt.C) {
		dir := c.TempDir()
		out := filepath.Join(dir, "out")
		c.Assert(os.Mkdir(out, 0o755), qt.IsNil)
		a, b := filepath.Join(dir, "a", "x.tga"), filepath.Join(dir, "b", "x.tga")
		writeTestFiles(c, a, b)

		results, err := run(context.Background(), []string{a, b}, out, "png")
		c.Assert(err, qt.IsNil)
		for _, r := range results {
			c.Assert(r.err, qt.IsNil)
		}

		for i, name := range []string{"x.png", "x-2.png"} {
			f, err := os.Open(filepath.Join(out, name))
			c.Assert(err, qt.IsNil)
			img, _, err := image.Decode(f)
			f.Close()
			c.Assert(err, qt.IsNil)
			r, _, _, _ := img.At(0, 0).RGBA()
			c.Assert(r>>8, qt.Equals, uint32(10+i))
		}
	})

	c.Run("Write failure", func(c *qt.C) {
		dir := c.TempDir()
		files := []string{filepath.Join(dir, "one.tga"), filepath.Join(dir, "two.tga"), filepath.Join(dir, "three.tga")}
		writeTestFiles(c, files...)

		// The output directory does not exist, so every write fails.
		results, err := run(context.Background(), files, filepath.Join(dir, "missing"), "png")
		c.Assert(err, qt.IsNil)
		c.Assert(results, qt.HasLen, 3)
		for i, r := range results {
			c.Assert(r.filename, qt.Equals, files[i])
			c.Assert(r.err, qt.ErrorIs, os.ErrNotExist)
			c.Assert(r.err, qt.ErrorMatches, `writing ".*": .*`)
		}
	})

	c.Run("Unsupported output format", func(c *qt.C) {
		_, err := run(context.Background(), nil, c.TempDir(), "gif")
		c.Assert(err, qt.ErrorMatches, `unsupported output format "gif"`)
	})
}
