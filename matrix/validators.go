// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for precondition checks.
//  - Keep kernels minimal by delegating nil/liveness/shape checks here.
//  - Return sentinel errors wrapped only with the validator tag so kernels can
//    add their operation tag uniformly.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on the success path.
//
// Note:
//  - Each composite validator follows a fixed sequence:
//    structural checks on every operand first (ErrIncorrectMatrix kind),
//    then compatibility checks (ErrCalculation kind).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// structuralError returns the bare sentinel describing why m is unusable, or nil.
// Order: nil interface → typed-nil/released *Dense → non-positive dimensions.
func structuralError(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if d, ok := m.(*Dense); ok {
		if d == nil {
			return ErrNilMatrix
		}
		if d.data == nil {
			return ErrReleased
		}
	}
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return ErrInvalidDimensions
	}

	return nil
}

// IsInvalid reports whether m fails the structural precondition shared by
// every kernel: nil, released, or non-positive dimensions.
// Pure predicate; no side effects. Complexity: O(1).
func IsInvalid(m Matrix) bool { return structuralError(m) != nil }

// ValidateMatrix ensures m is structurally usable.
//
// Errors: ErrNilMatrix, ErrReleased, ErrInvalidDimensions (all ErrIncorrectMatrix).
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateMatrix(m Matrix) error {
	if err := structuralError(m); err != nil {
		return validatorErrorf("ValidateMatrix", err)
	}

	return nil
}

// ValidateSquareMatrix – Composite: ValidateMatrix → Rows == Cols.
//
// Errors: ErrIncorrectMatrix kinds, then ErrNonSquare.
// Complexity: O(1).
func ValidateSquareMatrix(m Matrix) error {
	if err := ValidateMatrix(m); err != nil {
		return validatorErrorf("ValidateSquareMatrix", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquareMatrix", ErrNonSquare)
	}

	return nil
}

// ValidateBinarySameShape – Composite: Valid(a) → Valid(b) → SameShape.
//
// Errors: ErrIncorrectMatrix kinds, then ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateMatrix(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateMatrix(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateBinarySameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateBinarySameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible – Composite: Valid(a) → Valid(b) → a.Cols == b.Rows.
//
// Errors: ErrIncorrectMatrix kinds, then ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateMatrix(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateMatrix(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}
