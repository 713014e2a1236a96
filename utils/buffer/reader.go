package buffer

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// ReadUint8 reads a byte from r into c.
func ReadUint8(r Reader, c *uint8) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint8: c is nil")
	}

	var bb = [1]byte{}

	var nint int
	if nint, err = io.ReadFull(r, bb[:]); err != nil {
		return int64(nint), err
	}

	*c = bb[0]

	return int64(nint), nil
}

// ReadUint8Slice reads a slice of bytes from r into c.
func ReadUint8Slice(r Reader, c []uint8) (n int64, err error) {

	// c is empty, return
	if len(c) == 0 {
		return
	}

	var slice []byte

	// Avoid EOF
	size := r.Size()
	if len(c) < size {
		size = len(c)
	}

	// Peeks the buffered bytes
	if slice, err = r.Peek(size); err != nil {
		return
	}

	buffered := len(slice)

	if buffered == 0 {
		return n, io.ErrUnexpectedEOF
	}

	// If the slice to fill is equal or smaller than the amount peeked
	if N := len(c); N <= buffered {

		copy(c, slice[:N])

		nint, err := r.Discard(N) // Discards what was read

		return int64(nint), err
	}

	// Decodes the maximum
	copy(c[:buffered], slice)

	// Discards what was peeked
	var inc int
	if inc, err = r.Discard(len(slice)); err != nil {
		return n + int64(inc), err
	}

	n += int64(inc)

	// Recurses on the remaining slice to fill
	var inc64 int64
	if inc64, err = ReadUint8Slice(r, c[buffered:]); err != nil {
		return n + inc64, err
	}

	return n + inc64, nil
}

// ReadUint64 reads a uint64 from r into c.
func ReadUint64(r Reader, c *uint64) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb = [8]byte{}

	var nint int
	if nint, err = io.ReadFull(r, bb[:]); err != nil {
		return int64(nint), err
	}

	*c = binary.LittleEndian.Uint64(bb[:])

	return int64(nint), nil
}

// ReadFloat64 reads a float64 from r into c.
func ReadFloat64(r Reader, c *float64) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadFloat64: c is nil")
	}

	var bits uint64
	if n, err = ReadUint64(r, &bits); err != nil {
		return
	}

	*c = math.Float64frombits(bits)

	return n, nil
}

// ReadFloat64Slice reads a slice of float64 from r into c.
func ReadFloat64Slice(r Reader, c []float64) (n int64, err error) {

	// c is empty, return
	if len(c) == 0 {
		return
	}

	var slice []byte

	// Avoid EOF
	size := r.Size()
	if len(c)<<3 < size {
		size = len(c) << 3
	}

	// Peeks the buffered bytes
	if slice, err = r.Peek(size); err != nil {
		return
	}

	buffered := len(slice) >> 3

	if buffered == 0 {
		return n, io.ErrUnexpectedEOF
	}

	// If the slice to fill is equal or smaller than the amount peeked
	if N := len(c); N <= buffered {

		for i, j := 0, 0; i < N; i, j = i+1, j+8 {
			c[i] = math.Float64frombits(binary.LittleEndian.Uint64(slice[j:]))
		}

		nint, err := r.Discard(N << 3) // Discards what was read

		return int64(nint), err
	}

	// Decodes the maximum
	for i, j := 0, 0; i < buffered; i, j = i+1, j+8 {
		c[i] = math.Float64frombits(binary.LittleEndian.Uint64(slice[j:]))
	}

	// Discards what was peeked
	var inc int
	if inc, err = r.Discard(len(slice)); err != nil {
		return n + int64(inc), err
	}

	n += int64(inc)

	// Recurses on the remaining slice to fill
	var inc64 int64
	if inc64, err = ReadFloat64Slice(r, c[buffered:]); err != nil {
		return n + inc64, err
	}

	return n + inc64, nil
}
