// SPDX-License-Identifier: MIT
// Package matrix provides universal elementwise and product kernels on any
// Matrix implementation: equality, addition, subtraction, scalar scaling,
// matrix multiplication and transpose. All functions perform fail-fast
// validation and return classified sentinel errors.
//
// Purpose:
//   - Canonical kernels used directly and by the cofactor/inverse machinery.
//   - Operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Every kernel allocates a fresh *Dense result; operands are never mutated.
//   - *Dense operands take a flat-slice fast path; other implementations use a
//     fixed i→j At/Set fallback with bit-identical results.
//   - IEEE-754 semantics are preserved: NaN/Inf propagate, no special-casing.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial accumulator value for dot products and expansions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opDeterminant = "Determinant"
	opCofactors   = "Cofactors"
	opAdjugate    = "Adjugate"
	opInverse     = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the cause via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// atErrorf attaches fallback-path coordinates to an accessor failure.
func atErrorf(tag string, i, j int, err error) error {
	return matrixErrorf(tag, fmt.Errorf("At(%d,%d): %w", i, j, err))
}

// Equal reports whether a and b have the same shape and every pair of
// elements satisfies |a[i,j] - b[i,j]| < Epsilon.
//
// Behavior highlights:
//   - false when either operand is invalid (nil, released, bad shape) or shapes differ.
//   - Strict `<`: a difference of exactly Epsilon is NOT equal.
//   - NaN never compares equal, so a matrix holding NaN is not equal to itself.
//   - +0 equals -0; +Inf does not equal +Inf (Inf-Inf is NaN).
//   - Stops at the first mismatching element (i→j order).
//
// Complexity: Time O(r*c), Space O(1).
func Equal(a, b Matrix) bool {
	if IsInvalid(a) || IsInvalid(b) {
		return false
	}
	rows, cols := a.Rows(), a.Cols()
	if rows != b.Rows() || cols != b.Cols() {
		return false
	}

	// Fast path: compare flat buffers.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !(math.Abs(da.data[idx]-db.data[idx]) < Epsilon) {
					return false
				}
			}

			return true
		}
	}

	// Fallback: any accessor failure makes the operands unequal.
	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return false
			}
			if bv, err = b.At(i, j); err != nil {
				return false
			}
			if !(math.Abs(av-bv) < Epsilon) {
				return false
			}
		}
	}

	return true
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Multiplying by ±1 is exact, so the result is bit-identical to a+b / a-b.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Errors:
//   - ErrIncorrectMatrix kinds (operand invalid), ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res := newDenseUnchecked(rows, cols)

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, atErrorf(opTag, i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, atErrorf(opTag, i, j, err)
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B into a fresh Dense.
//
// Errors:
//   - ErrNilMatrix / ErrReleased / ErrInvalidDimensions (operand invalid),
//     ErrDimensionMismatch (shape mismatch).
//
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B into a fresh Dense.
//
// Errors:
//   - ErrNilMatrix / ErrReleased / ErrInvalidDimensions (operand invalid),
//     ErrDimensionMismatch (shape mismatch).
//
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns a new matrix whose elements are m[i,j] * alpha.
//
// Behavior highlights:
//   - alpha may be any float64; NaN/Inf propagate (0*Inf yields NaN).
//
// Errors:
//   - ErrIncorrectMatrix kinds when m is invalid.
//
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateMatrix(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res := newDenseUnchecked(rows, cols)

	if dm, ok := m.(*Dense); ok {
		for idx := range res.data {
			res.data[idx] = dm.data[idx] * alpha
		}

		return res, nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, atErrorf(opScale, i, j, err)
			}
			res.data[i*cols+j] = v * alpha
		}
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides;
//     otherwise use i→j→k through At.
//
// Behavior highlights:
//   - Every C[i,j] starts at ZeroSum and accumulates A[i,k]*B[k,j] for
//     k = 0..n-1 in that order on both paths, so rounding is reproducible
//     bit for bit.
//   - No zero-skipping: 0*Inf must still contribute NaN.
//   - Products are rounded via float64(...) before accumulation, which
//     forbids FMA fusion on architectures that would otherwise apply it.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Errors:
//   - ErrIncorrectMatrix kinds (operand invalid), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res := newDenseUnchecked(aRows, bCols)

	var i, j, k int
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k; db.data layout: k*bCols + j.
			var rowOffsetA, rowOffsetB, rowOffsetR int
			var av float64
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += float64(av * db.data[rowOffsetB+j])
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	var av, bv, current float64
	var err error
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, atErrorf(opMul, i, k, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, atErrorf(opMul, k, j, err)
				}
				current += float64(av * bv)
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new (c × r) matrix with out[i,j] = m[j,i].
// The original matrix is never mutated.
//
// Errors:
//   - ErrIncorrectMatrix kinds when m is invalid.
//
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateMatrix(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res := newDenseUnchecked(cols, rows) // dims flipped

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, atErrorf(opTranspose, i, j, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// asDense returns m itself when it is a *Dense, otherwise a Dense copy read
// through At in i→j order. The boolean reports whether a copy was made, so
// the caller knows it owns (and may Release) the result.
// m must already be validated.
func asDense(m Matrix, opTag string) (*Dense, bool, error) {
	if d, ok := m.(*Dense); ok {
		return d, false, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out := newDenseUnchecked(rows, cols)
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, false, atErrorf(opTag, i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, true, nil
}
