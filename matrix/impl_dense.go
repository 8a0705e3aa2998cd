// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & lifecycle.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Own the lifecycle: NewDense allocates zeroed storage, Release drops it.
//
// Lifecycle:
//   - A Dense is valid between NewDense and Release.
//   - Release is idempotent and nil-safe; a released Dense reports 0×0 and every
//     kernel rejects it with ErrReleased before touching storage.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Release: O(1).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxFromRows = "FromRows" // ctor tag for NewDenseFromRows
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtValue    = "%g"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Output shape: "Dense.<method>(row,col): <cause>"; the sentinel survives via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); both are 0 after Release.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j);
//     nil after Release.
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
type Dense struct {
	r, c           int       // row and column counts (>0 while live)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation and optional numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate one zero-filled buffer; apply options.
//
// Behavior highlights:
//   - Nothing is allocated when validation fails, so there is no partially
//     constructed matrix to roll back.
//
// Inputs:
//   - rows, cols: positive dimensions.
//   - opts: numeric policy (see WithValidateNaNInf).
//
// Errors:
//   - ErrInvalidDimensions (kind ErrIncorrectMatrix).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	// Validate shape before allocation.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// newDenseUnchecked allocates a zero r×c Dense for kernels whose shapes were
// already derived from validated operands.
func newDenseUnchecked(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// NewDenseFromRows builds a Dense from a rectangular [][]float64 literal.
// Values are copied; the input slices are not retained.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or the first row is empty.
//   - ErrRaggedRows when row lengths differ (wrapped with the offending row index).
//   - ErrNaNInf when WithValidateNaNInf is set and a non-finite value is present.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense(len(rows), len(rows[0]), opts...)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		if len(rows[i]) != m.c {
			return nil, denseErrorf(ctxFromRows, i, len(rows[i]), ErrRaggedRows)
		}
		for j = 0; j < m.c; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, err // already wrapped by Set
			}
		}
	}

	return m, nil
}

// Rows returns the row count; 0 for a nil or released matrix.
func (m *Dense) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the column count; 0 for a nil or released matrix.
func (m *Dense) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// IsReleased reports whether m is nil or its storage has been dropped.
func (m *Dense) IsReleased() bool { return m == nil || m.data == nil }

// Release drops the storage and resets the dimensions to 0.
// MAIN DESCRIPTION:
//   - Destroy counterpart of NewDense; ends the matrix lifetime explicitly.
//
// Behavior highlights:
//   - Safe on a nil receiver, on a matrix whose storage is already nil, and
//     when called repeatedly. Dimensions are 0 after every call.
//   - The buffer becomes collectable as soon as no other reference holds it;
//     kernels never share buffers between handles, so none does.
//
// Complexity: O(1).
func (m *Dense) Release() {
	if m == nil {
		return
	}
	m.data = nil
	m.r, m.c = 0, 0
}

// indexOf computes the row-major offset after liveness and bounds checks.
// Returns a bare sentinel; At/Set attach method context.
func (m *Dense) indexOf(row, col int) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if m.data == nil {
		return 0, ErrReleased
	}
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col).
// Errors: ErrNilMatrix, ErrReleased, ErrOutOfRange (wrapped as "Dense.At(i,j): ...").
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (liveness + bounds).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrOutOfRange; ErrNaNInf under WithValidateNaNInf.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Cloning a released matrix yields another released matrix.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Clone() Matrix {
	if m.IsReleased() {
		return &Dense{}
	}
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// ToRows exports the values as a freshly allocated [][]float64.
// Returns nil for a nil or released matrix.
func (m *Dense) ToRows() [][]float64 {
	if m.IsReleased() {
		return nil
	}
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String renders one bracketed line per row, values formatted with %g.
// Intended for diagnostics; a released matrix renders as "".
func (m *Dense) String() string {
	if m.IsReleased() {
		return ""
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, _fmtValue, m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
