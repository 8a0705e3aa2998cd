// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every failure returned
// by the package is classified under exactly one of two kinds:
//
//   - ErrIncorrectMatrix: a structural precondition was violated (nil or released
//     matrix, non-positive dimensions, bad index).
//   - ErrCalculation: the input is structurally valid but numerically unsuitable
//     (shape mismatch, non-square input, singular matrix, rejected NaN/Inf).
//
// Specific sentinels wrap their kind, so callers may match either the precise
// cause or the whole class with errors.Is. Status/StatusOf in status.go fold
// any returned error into the three-way OK / IncorrectMatrix / CalculationError
// result.

package matrix

import (
	"errors"
	"fmt"
)

// ERROR PRIORITY (enforced in every kernel and covered by tests):
// nil/released/shape (IncorrectMatrix) -> dimension compatibility -> squareness
// -> singularity (CalculationError).

var (
	// ErrIncorrectMatrix is the kind of every structural precondition failure.
	ErrIncorrectMatrix = errors.New("matrix: incorrect matrix")

	// ErrCalculation is the kind of every numeric/compatibility failure on
	// structurally valid input.
	ErrCalculation = errors.New("matrix: calculation error")
)

var (
	// ErrNilMatrix indicates that a nil Matrix (interface or *Dense) was used.
	ErrNilMatrix = fmt.Errorf("%w: nil matrix", ErrIncorrectMatrix)

	// ErrReleased indicates a *Dense whose storage was dropped by Release.
	ErrReleased = fmt.Errorf("%w: storage released", ErrIncorrectMatrix)

	// ErrInvalidDimensions indicates that dimensions are non-positive.
	// NewDense returns it before allocating anything.
	ErrInvalidDimensions = fmt.Errorf("%w: dimensions must be > 0", ErrIncorrectMatrix)

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return it instead of panicking.
	ErrOutOfRange = fmt.Errorf("%w: index out of range", ErrIncorrectMatrix)

	// ErrRaggedRows is returned by NewDenseFromRows when rows differ in length.
	ErrRaggedRows = fmt.Errorf("%w: rows have different lengths", ErrIncorrectMatrix)
)

var (
	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Add/Sub on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrCalculation)

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrCalculation)

	// ErrSingular is returned by Inverse when |det| < Epsilon.
	ErrSingular = fmt.Errorf("%w: singular matrix", ErrCalculation)

	// ErrNaNInf signals a NaN or ±Inf value rejected by the numeric policy
	// (see WithValidateNaNInf).
	ErrNaNInf = fmt.Errorf("%w: NaN or Inf encountered", ErrCalculation)
)
