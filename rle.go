// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tga

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

const (
	rlePacketFlag  = 0x80
	rleCountMask   = 0x7f
	maxPacketCount = 128
)

type rleReader interface {
	io.Reader
	io.ByteReader
}

// decodeRLE reads RLE packets from r until numPixels pixels are written to dst as RGBA8.
//
// Each packet starts with a control byte. If the high bit is set, one stored pixel
// follows and is repeated (control&0x7f)+1 times; otherwise that many stored pixels follow.
func decodeRLE(r io.Reader, dst []byte, numPixels int, conv *pixelConverter) error {
	var br rleReader
	if rr, ok := r.(rleReader); ok {
		br = rr
	} else {
		br = bufio.NewReader(r)
	}

	bpp := conv.bytesPerPixel()
	raw := make([]byte, maxPacketCount*bpp)

	truncated := func(err error, produced int) error {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: %d of %d pixels decoded", ErrTruncatedPixelData, produced, numPixels)
		}
		return err
	}

	for produced := 0; produced < numPixels; {
		control, err := br.ReadByte()
		if err != nil {
			return truncated(err, produced)
		}
		count := int(control&rleCountMask) + 1
		if produced+count > numPixels {
			return fmt.Errorf("%w: packet of %d pixels at pixel %d of %d", ErrRLEOverrun, count, produced, numPixels)
		}

		out := dst[produced*4 : (produced+count)*4]

		if control&rlePacketFlag != 0 {
			if _, err := io.ReadFull(br, raw[:bpp]); err != nil {
				return truncated(err, produced)
			}
			if err := conv.convert(out[:4], raw[:bpp]); err != nil {
				return err
			}
			for i := 4; i < len(out); i += 4 {
				copy(out[i:i+4], out[:4])
			}
		} else {
			if _, err := io.ReadFull(br, raw[:count*bpp]); err != nil {
				return truncated(err, produced)
			}
			if err := conv.convertRow(out, raw[:count*bpp]); err != nil {
				return err
			}
		}

		produced += count
	}

	return nil
}
