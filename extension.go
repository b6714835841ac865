// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tga

import (
	"encoding/binary"
	"fmt"
	"time"

	"golang.org/x/text/encoding/charmap"
)

// extensionAreaSize is the size of a TGA 2.0 extension area.
const extensionAreaSize = 495

// AttributesType describes the meaning of the alpha channel.
type AttributesType uint8

const (
	AttributesNone AttributesType = iota
	AttributesUndefinedIgnore
	AttributesUndefinedRetain
	AttributesAlpha
	AttributesPremultipliedAlpha
)

// ExtensionArea holds the TGA 2.0 extension area.
// It is metadata only and does not affect pixel decoding.
type ExtensionArea struct {
	Size           uint16
	AuthorName     string
	AuthorComments []string

	// Timestamp is the zero time if not set in the file.
	Timestamp time.Time

	JobName string
	// JobTime is the elapsed time spent on the job.
	JobTime time.Duration

	SoftwareID string
	// SoftwareVersion is the version number times 100 followed by an optional letter, e.g. 410 and 'b' for 4.10b.
	SoftwareVersion       uint16
	SoftwareVersionLetter byte

	// KeyColor is stored as A:R:G:B.
	KeyColor uint32

	PixelAspectNumerator   uint16
	PixelAspectDenominator uint16
	GammaNumerator         uint16
	GammaDenominator       uint16

	ColorCorrectionOffset uint32
	PostageStampOffset    uint32
	ScanLineOffset        uint32
	AttributesType        AttributesType
}

// Gamma returns the gamma value, or 0 if not set.
func (e *ExtensionArea) Gamma() float64 {
	if e.GammaDenominator == 0 {
		return 0
	}
	return float64(e.GammaNumerator) / float64(e.GammaDenominator)
}

// PixelAspectRatio returns the pixel aspect ratio, or 0 if not set.
func (e *ExtensionArea) PixelAspectRatio() float64 {
	if e.PixelAspectDenominator == 0 {
		return 0
	}
	return float64(e.PixelAspectNumerator) / float64(e.PixelAspectDenominator)
}

// DeveloperTag is an entry in the developer directory.
type DeveloperTag struct {
	Tag    uint16
	Offset uint32
	Size   uint32
}

// decodeText converts a NUL padded Latin-1 field to a UTF-8 string.
func decodeText(b []byte) string {
	for i, c := range b {
		if c == 0 {
			b = b[:i]
			break
		}
	}
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return printableString(string(b))
	}
	return printableString(string(s))
}

// readExtensionArea reads the extension area at offset. The stream position is restored.
func readExtensionArea(r *streamReader, offset uint32, warnf func(string, ...any)) (*ExtensionArea, error) {
	var ext *ExtensionArea
	err := r.preservePos(func() error {
		if err := r.seekFromStart(int64(offset)); err != nil {
			return err
		}
		b, err := r.readBytesVolatile(extensionAreaSize)
		if err != nil {
			return err
		}
		ext, err = parseExtensionArea(b, warnf)
		return err
	})
	return ext, err
}

func parseExtensionArea(b []byte, warnf func(string, ...any)) (*ExtensionArea, error) {
	le := binary.LittleEndian
	size := le.Uint16(b[0:2])
	if size < extensionAreaSize {
		return nil, fmt.Errorf("extension area size %d, want %d", size, extensionAreaSize)
	}

	ext := &ExtensionArea{
		Size:       size,
		AuthorName: decodeText(b[2:43]),
	}

	for i := 0; i < 4; i++ {
		line := decodeText(b[43+i*81 : 43+(i+1)*81])
		if line != "" {
			ext.AuthorComments = append(ext.AuthorComments, line)
		}
	}

	u16 := func(i int) int {
		return int(le.Uint16(b[i : i+2]))
	}

	month, day, year := u16(367), u16(369), u16(371)
	hour, minute, second := u16(373), u16(375), u16(377)
	if month != 0 || day != 0 || year != 0 {
		if t, ok := extensionTimestamp(year, month, day, hour, minute, second); ok {
			ext.Timestamp = t
		} else {
			warnf("tga: ignoring invalid extension area timestamp %04d-%02d-%02d %02d:%02d:%02d", year, month, day, hour, minute, second)
		}
	}

	ext.JobName = decodeText(b[379:420])
	ext.JobTime = time.Duration(u16(420))*time.Hour +
		time.Duration(u16(422))*time.Minute +
		time.Duration(u16(424))*time.Second

	ext.SoftwareID = decodeText(b[426:467])
	ext.SoftwareVersion = le.Uint16(b[467:469])
	if c := b[469]; c != ' ' && c != 0 {
		ext.SoftwareVersionLetter = c
	}

	ext.KeyColor = le.Uint32(b[470:474])
	ext.PixelAspectNumerator = le.Uint16(b[474:476])
	ext.PixelAspectDenominator = le.Uint16(b[476:478])
	ext.GammaNumerator = le.Uint16(b[478:480])
	ext.GammaDenominator = le.Uint16(b[480:482])
	ext.ColorCorrectionOffset = le.Uint32(b[482:486])
	ext.PostageStampOffset = le.Uint32(b[486:490])
	ext.ScanLineOffset = le.Uint32(b[490:494])
	ext.AttributesType = AttributesType(b[494])

	return ext, nil
}

// extensionTimestamp builds a time from the stored fields.
// It returns false if any field is out of range, including days past the end of the month.
func extensionTimestamp(year, month, day, hour, minute, second int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
	if t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// readDeveloperDirectory reads the developer directory at offset. The stream position is restored.
func readDeveloperDirectory(r *streamReader, offset uint32) ([]DeveloperTag, error) {
	var tags []DeveloperTag
	err := r.preservePos(func() error {
		if err := r.seekFromStart(int64(offset)); err != nil {
			return err
		}
		n, err := r.read2()
		if err != nil {
			return err
		}
		const entrySize = 10
		b, err := r.readBytes(int(n) * entrySize)
		if err != nil {
			return err
		}
		tags = make([]DeveloperTag, n)
		for i := range tags {
			e := b[i*entrySize:]
			tags[i] = DeveloperTag{
				Tag:    binary.LittleEndian.Uint16(e[0:2]),
				Offset: binary.LittleEndian.Uint32(e[2:6]),
				Size:   binary.LittleEndian.Uint32(e[6:10]),
			}
		}
		return nil
	})
	return tags, err
}
