// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Status is the three-way outcome of a matrix operation.
// It mirrors the error kinds in errors.go for callers that prefer a switch
// over errors.Is chains.
type Status uint8

const (
	// StatusOK means the operation returned a nil error.
	StatusOK Status = iota
	// StatusIncorrectMatrix means a structural precondition failed.
	StatusIncorrectMatrix
	// StatusCalculationError means the input was numerically unsuitable.
	StatusCalculationError
)

const (
	_statusOK          = "OK"
	_statusIncorrect   = "IncorrectMatrix"
	_statusCalculation = "CalculationError"
	_statusUnknown     = "Status(?)"
)

// String returns the canonical status name.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return _statusOK
	case StatusIncorrectMatrix:
		return _statusIncorrect
	case StatusCalculationError:
		return _statusCalculation
	default:
		return _statusUnknown
	}
}

// StatusOf classifies err into a Status.
//
// Behavior highlights:
//   - nil → StatusOK.
//   - anything wrapping ErrCalculation → StatusCalculationError.
//   - everything else → StatusIncorrectMatrix. Errors not produced by this
//     package come from foreign Matrix implementations failing At/Set, which
//     is a structural failure of that operand.
//
// Complexity: O(depth of the wrap chain).
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}
	if errors.Is(err, ErrCalculation) {
		return StatusCalculationError
	}

	return StatusIncorrectMatrix
}
