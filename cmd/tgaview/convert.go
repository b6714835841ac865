// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"

	"github.com/bep/tga"
)

type encodeFunc func(io.Writer, image.Image) error

func encoderFor(format string) (encodeFunc, error) {
	switch strings.ToLower(format) {
	case "png":
		return png.Encode, nil
	case "bmp":
		return bmp.Encode, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

// outputName returns the path in dir for filename with its extension replaced by format.
func outputName(dir, filename, format string) string {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+"."+strings.ToLower(format))
}

// outputNames returns one distinct output path per filename.
// Inputs with the same base name, e.g. a/x.tga and b/x.tga, get a numeric
// suffix in argument order: x.png, x-2.png.
func outputNames(dir string, filenames []string, format string) []string {
	names := make([]string, len(filenames))
	seen := make(map[string]bool)
	for i, filename := range filenames {
		name := outputName(dir, filename, format)
		ext := filepath.Ext(name)
		stem := strings.TrimSuffix(name, ext)
		for n := 2; seen[name]; n++ {
			name = fmt.Sprintf("%s-%d%s", stem, n, ext)
		}
		seen[name] = true
		names[i] = name
	}
	return names
}

func writeImage(name, format string, r *tga.Raster) (err error) {
	encode, err := encoderFor(format)
	if err != nil {
		return err
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := encode(f, r.Image()); err != nil {
		return errors.Wrapf(err, "encoding %s", name)
	}
	return nil
}
