package bdmv

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Reader is a positioned big-endian reader over a single backing store.
// Seeks and skips are never validated eagerly; going past the end of the
// data surfaces as an ErrIO on the next read.
type Reader struct {
	src io.ReaderAt
	pos int64
}

// Open opens path for reading. Callers must Close the returned file once
// the decode pass is finished.
func Open(path string) (*Reader, *os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: open %s: %w", ErrIO, path, err)
	}
	return &Reader{src: f}, f, nil
}

// NewSliceReader wraps an in-memory buffer. Used by tests in place of a
// real file.
func NewSliceReader(data []byte) *Reader {
	return &Reader{src: bytes.NewReader(data)}
}

// ReadBytes reads exactly n bytes at the current position. A short read is
// terminal for the decode attempt.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	read, err := r.src.ReadAt(buf, r.pos)
	if err != nil {
		return nil, fmt.Errorf("%w: read %d bytes at offset %d: %w", ErrIO, n, r.pos, err)
	}
	r.pos += int64(read)
	return buf, nil
}

func (r *Reader) ReadByte() (byte, error) {
	buf, err := r.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (r *Reader) ReadUint16() (uint16, error) {
	buf, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return uint16(buf[0])<<8 | uint16(buf[1]), nil
}

func (r *Reader) ReadUint32() (uint32, error) {
	buf, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3]), nil
}

// Skip advances the position relative to the current offset.
func (r *Reader) Skip(n int64) {
	r.pos += n
}

// Seek moves to an absolute offset.
func (r *Reader) Seek(pos int64) {
	r.pos = pos
}

func (r *Reader) Position() int64 {
	return r.pos
}
