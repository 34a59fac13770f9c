// Package matrix implements a compact two-dimensional byte buffer.
//
// A Matrix stores rows*cols bytes in one contiguous allocation instead of a
// slice of slices. That gives cheap sub-range views, a single comparison for
// equality/ordering, and a single pass for secure wiping — the properties the
// Lamport key/signature layers above this package depend on, since every key,
// public key, and signature in this scheme is naturally shaped as a row per
// digest-bit with a digest-sized byte row.
package matrix

import (
	"bytes"
	"crypto/subtle"
	"io"

	"github.com/lux-crypto/lamport/lamerr"
)

// Matrix is a rows*cols byte buffer addressed in row-major order.
type Matrix struct {
	data []byte
	rows int
	cols int
}

// New allocates a zero-filled Matrix of shape [rows, cols].
// Both dimensions must be positive.
func New(rows, cols int) *Matrix {
	if rows <= 0 || cols <= 0 {
		panic("matrix: rows and cols must be positive")
	}
	return &Matrix{data: make([]byte, rows*cols), rows: rows, cols: cols}
}

// Fill allocates a Matrix of shape [rows, cols] with every byte set to v.
func Fill(rows, cols int, v byte) *Matrix {
	m := New(rows, cols)
	for i := range m.data {
		m.data[i] = v
	}
	return m
}

// FillFunc allocates a Matrix of shape [rows, cols], setting flat index i to f(i).
func FillFunc(rows, cols int, f func(i int) byte) *Matrix {
	m := New(rows, cols)
	for i := range m.data {
		m.data[i] = f(i)
	}
	return m
}

// Random allocates a Matrix of shape [rows, cols] filled with bytes drawn from rng.
// rng must be a cryptographically secure source; the caller is responsible for that.
func Random(rows, cols int, rng io.Reader) (*Matrix, error) {
	m := New(rows, cols)
	if _, err := io.ReadFull(rng, m.data); err != nil {
		return nil, err
	}
	return m, nil
}

// FromBytes wraps an existing flat buffer as a Matrix of shape [rows, cols].
// The buffer's length must equal rows*cols exactly; it is used directly, not copied.
func FromBytes(rows, cols int, data []byte) (*Matrix, error) {
	if rows <= 0 || cols <= 0 || len(data) != rows*cols {
		return nil, lamerr.General("matrix: data length does not match shape")
	}
	return &Matrix{data: data, rows: rows, cols: cols}, nil
}

// Shape returns the (rows, cols) of m.
func (m *Matrix) Shape() (int, int) { return m.rows, m.cols }

// SameShape reports whether m and other have identical row and column counts.
func (m *Matrix) SameShape(other *Matrix) bool {
	return m.rows == other.rows && m.cols == other.cols
}

// Len returns the total number of bytes in the buffer (rows*cols).
func (m *Matrix) Len() int { return len(m.data) }

// Bytes returns the flat underlying buffer. Callers must not retain it past
// the Matrix's lifetime if the Matrix is later zeroed.
func (m *Matrix) Bytes() []byte { return m.data }

func (m *Matrix) begin(row int) int { return row * m.cols }

// Row returns the full byte row at index i, shape-checked against m.cols.
func (m *Matrix) Row(i int) []byte {
	b := m.begin(i)
	return m.data[b : b+m.cols]
}

// RowRange returns the half-open [lo, hi) sub-range of row i.
func (m *Matrix) RowRange(i, lo, hi int) []byte {
	b := m.begin(i)
	return m.data[b+lo : b+hi]
}

// RowFrom returns row i starting at column lo through the end of the row.
func (m *Matrix) RowFrom(i, lo int) []byte {
	b := m.begin(i)
	return m.data[b+lo : b+m.cols]
}

// RowTo returns row i from the start through column hi, exclusive.
func (m *Matrix) RowTo(i, hi int) []byte {
	b := m.begin(i)
	return m.data[b : b+hi]
}

// SetRow copies src into row i. len(src) must equal m.cols.
func (m *Matrix) SetRow(i int, src []byte) {
	copy(m.Row(i), src)
}

// Equal reports whether m and other have the same shape and identical bytes.
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil {
		return false
	}
	return m.SameShape(other) && bytes.Equal(m.data, other.data)
}

// Compare orders m relative to other: lexicographically over the buffer,
// then by shape (rows, then cols) to break ties between same-length buffers
// of different shape.
func (m *Matrix) Compare(other *Matrix) int {
	if c := bytes.Compare(m.data, other.data); c != 0 {
		return c
	}
	if m.rows != other.rows {
		if m.rows < other.rows {
			return -1
		}
		return 1
	}
	if m.cols != other.cols {
		if m.cols < other.cols {
			return -1
		}
		return 1
	}
	return 0
}

// Iso reinterprets the shape of m without touching the buffer, provided the
// product rows*cols is unchanged. The core of this scheme never relies on
// Iso; it exists because the underlying buffer model makes it nearly free.
func (m *Matrix) Iso(rows, cols int) error {
	if rows <= 0 || cols <= 0 || rows*cols != len(m.data) {
		return lamerr.General("matrix: iso shape product mismatch")
	}
	m.rows, m.cols = rows, cols
	return nil
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	cp := make([]byte, len(m.data))
	copy(cp, m.data)
	return &Matrix{data: cp, rows: m.rows, cols: m.cols}
}

// Zero wipes the buffer in place. It never reallocates, so no copy of the
// secret bytes survives in a moved/reallocated backing array.
func (m *Matrix) Zero() {
	for i := range m.data {
		m.data[i] = 0
	}
}

// SelectRow performs a constant-time, branch-free select between zeroRow and
// oneRow into dst based on bit (which must be 0 or 1). Every byte of both
// zeroRow and oneRow is read regardless of bit's value, and the memory
// access pattern does not depend on bit: this is the primitive the signing
// inner loop (spec §4.C) and signature-share signing use to avoid leaking
// the selected bit through branching or a table lookup keyed on it.
func SelectRow(dst, zeroRow, oneRow []byte, bit byte) {
	mask := byte(0) - (bit & 1)
	for i := range dst {
		dst[i] = (zeroRow[i] &^ mask) | (oneRow[i] & mask)
	}
}

// ConstantTimeEqual reports whether a and b are byte-identical using a
// constant-time comparison, for use when comparing digest outputs derived
// from secret material during verification.
func ConstantTimeEqual(a, b []byte) bool {
	return len(a) == len(b) && subtle.ConstantTimeCompare(a, b) == 1
}
