// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tga

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

func newStreamReader(r io.ReadSeeker) *streamReader {
	return &streamReader{
		r:    r,
		size: -1,
	}
}

// streamReader is a wrapper around a ReadSeeker that provides methods to read
// little-endian binary data.
// Note that this is not thread safe.
type streamReader struct {
	r io.ReadSeeker

	buf []byte

	// size of the underlying source, -1 until first needed.
	size int64
}

func (e *streamReader) allocateBuf(length int) {
	if length > cap(e.buf) {
		e.buf = make([]byte, length)
	}
}

func (e *streamReader) pos() int64 {
	n, _ := e.r.Seek(0, io.SeekCurrent)
	return n
}

// sourceSize returns the total length of the source, restoring the current position.
func (e *streamReader) sourceSize() (int64, error) {
	if e.size >= 0 {
		return e.size, nil
	}
	cur, err := e.r.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	end, err := e.r.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := e.r.Seek(cur, io.SeekStart); err != nil {
		return 0, err
	}
	e.size = end
	return end, nil
}

func (e *streamReader) read1() (uint8, error) {
	if err := e.readNIntoBuf(1); err != nil {
		return 0, err
	}
	return e.buf[0], nil
}

func (e *streamReader) read2() (uint16, error) {
	const n = 2
	if err := e.readNIntoBuf(n); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(e.buf[:n]), nil
}

func (e *streamReader) read4() (uint32, error) {
	const n = 4
	if err := e.readNIntoBuf(n); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(e.buf[:n]), nil
}

// readBytes reads exactly n bytes into a newly allocated slice.
func (e *streamReader) readBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrUnexpectedEndOfData, n)
	}
	b := make([]byte, n)
	if err := e.readFull(b); err != nil {
		return nil, err
	}
	return b, nil
}

// readBytesVolatile reads a slice of bytes from the stream
// which is not guaranteed to be valid after the next read.
func (e *streamReader) readBytesVolatile(n int) ([]byte, error) {
	if err := e.readNIntoBuf(n); err != nil {
		return nil, err
	}
	return e.buf[:n], nil
}

func (e *streamReader) readNIntoBuf(n int) error {
	e.allocateBuf(n)
	return e.readFull(e.buf[:n])
}

// readFull fills b from the stream. Running out of data is reported as
// ErrUnexpectedEndOfData, other I/O errors are returned as is.
func (e *streamReader) readFull(b []byte) error {
	n, err := io.ReadFull(e.r, b)
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: wanted %d bytes, got %d", ErrUnexpectedEndOfData, len(b), n)
	}
	return err
}

func (e *streamReader) seekFromStart(offset int64) error {
	size, err := e.sourceSize()
	if err != nil {
		return err
	}
	if offset < 0 || offset > size {
		return fmt.Errorf("%w: offset %d in source of %d bytes", ErrSeekOutOfRange, offset, size)
	}
	_, err = e.r.Seek(offset, io.SeekStart)
	return err
}

// seekFromEnd positions the cursor offset bytes before the end of the source.
func (e *streamReader) seekFromEnd(offset int64) error {
	size, err := e.sourceSize()
	if err != nil {
		return err
	}
	if offset < 0 || offset > size {
		return fmt.Errorf("%w: %d bytes from the end of a %d byte source", ErrSeekOutOfRange, offset, size)
	}
	_, err = e.r.Seek(size-offset, io.SeekStart)
	return err
}

func (e *streamReader) rewind() error {
	_, err := e.r.Seek(0, io.SeekStart)
	return err
}

func (e *streamReader) skip(n int64) error {
	return e.seekFromStart(e.pos() + n)
}

func (e *streamReader) preservePos(f func() error) error {
	pos := e.pos()
	err := f()
	if _, err2 := e.r.Seek(pos, io.SeekStart); err == nil {
		err = err2
	}
	return err
}
