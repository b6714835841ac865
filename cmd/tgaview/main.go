// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

// Command tgaview decodes TGA files, prints their header and metadata,
// and optionally renders them on the terminal or converts them to PNG or BMP.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/bep/tga"
)

var (
	printImage = flag.Bool("print", false, "whether to render the decoded image on the terminal")
	printMode  = flag.String("print_mode", "auto", "terminal rendering: auto (graphics protocol if supported, else 24bit), 24bit, 256color or nocolor")
	blanks     = flag.Bool("blanks", true, "whether to use colored blanks instead of ascii art for character based rendering")
	maxWidth   = flag.Uint("max_width", 80, "maximum width in pixels when rendering on the terminal; 0 means no scaling")
	outDir     = flag.String("out_dir", "", "if set, decoded images are written to this directory")
	outFormat  = flag.String("format", "png", "output format for -out_dir: png or bmp")
	headerOnly = flag.Bool("header_only", false, "only read header and metadata")
	parallel   = flag.Int("j", runtime.NumCPU(), "number of files to decode concurrently")
	timeout    = flag.Duration("timeout", 0, "per file decode timeout; 0 means none")
)

// decoded is the outcome of decoding one file.
type decoded struct {
	filename string
	result   tga.DecodeResult
	elapsed  time.Duration
	err      error
}

func decodeFile(filename string) (tga.DecodeResult, error) {
	f, err := os.Open(filename)
	if err != nil {
		return tga.DecodeResult{}, err
	}
	defer f.Close()

	res, err := tga.Decode(tga.Options{
		R:          f,
		HeaderOnly: *headerOnly,
		Timeout:    *timeout,
		Warnf: func(format string, args ...any) {
			glog.Warningf("%s: "+format, append([]any{filename}, args...)...)
		},
	})
	if err != nil {
		return res, errors.Wrapf(err, "decoding %q", filename)
	}
	return res, nil
}

// run decodes filenames concurrently. If outDir is set, each decoded image is
// written there in format. Failures are recorded per file and do not stop the others.
func run(ctx context.Context, filenames []string, outDir, format string) ([]decoded, error) {
	results := make([]decoded, len(filenames))

	var outNames []string
	if outDir != "" {
		if _, err := encoderFor(format); err != nil {
			return nil, err
		}
		outNames = outputNames(outDir, filenames, format)
	}

	var g errgroup.Group
	if *parallel > 0 {
		g.SetLimit(*parallel)
	}

	for i, filename := range filenames {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = decoded{filename: filename, err: err}
				return nil
			}
			start := time.Now()
			res, err := decodeFile(filename)
			results[i] = decoded{filename: filename, result: res, elapsed: time.Since(start), err: err}
			if err != nil {
				return nil
			}
			glog.V(1).Infof("decoded %s in %s", filename, results[i].elapsed)

			if outNames != nil && res.Raster != nil {
				if err := writeImage(outNames[i], format, res.Raster); err != nil {
					results[i].err = errors.Wrapf(err, "writing %q", filename)
					return nil
				}
				glog.V(1).Infof("wrote %s", outNames[i])
			}
			return nil
		})
	}

	return results, g.Wait()
}

func main() {
	flagutil.Parse()
	flag.Set("logtostderr", "true")
	defer glog.Flush()

	filenames := flag.Args()
	if len(filenames) == 0 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] file.tga...\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0o755); err != nil {
			glog.Errorf("creating output directory: %v", err)
			glog.Flush()
			os.Exit(1)
		}
	}

	results, err := run(context.Background(), filenames, *outDir, *outFormat)

	failed := 0
	for _, d := range results {
		if d.err != nil {
			failed++
			printFailure(d)
			continue
		}
		printInfo(d)
		if *printImage && d.result.Raster != nil {
			printRaster(d.result.Raster, *printMode, *maxWidth, *blanks)
		}
	}

	if err != nil {
		glog.Errorf("%v", err)
		failed++
	}
	if failed > 0 {
		glog.Flush()
		os.Exit(1)
	}
}
