// SPDX-License-Identifier: MIT
// Package matrix - determinant, cofactor (algebraic complement) matrix,
// adjugate and inverse via recursive Laplace expansion.
//
// Purpose:
//   - Provide the textbook adjugate pipeline with exact, reproducible
//     evaluation order: minor → determinant → cofactors → adjugate → inverse.
//
// Numeric policy:
//   - Determinant expands along row 0 recursively; it is exponential in n and
//     targets small matrices. No pivoting, no LU: results on singular and
//     signed-zero inputs are exactly those of the expansion.
//   - Products that feed a sum are wrapped in float64(...) so the compiler may
//     not fuse them into FMA; results are bit-identical across architectures.
//   - NaN/Inf propagate through the sums and products; nothing is special-cased.
//
// Ownership:
//   - Every minor and every intermediate (cofactor, adjugate, non-Dense input
//     copy) is released before the kernel returns, on every exit path.

package matrix

import "math"

const (
	signEven     = 1.0  // sign of a cofactor at an even (row+col) position
	signOdd      = -1.0 // sign of a cofactor at an odd (row+col) position
	unitCofactor = 1.0  // fixed cofactor of a 1×1 matrix
	unitNumer    = 1.0  // numerator of the inverse-determinant scale factor
)

// cofactorSign returns +1 for even k and -1 for odd k.
func cofactorSign(k int) float64 {
	if k%2 == 0 {
		return signEven
	}

	return signOdd
}

// minor returns the (r-1)×(c-1) matrix obtained by deleting row skipRow and
// column skipCol of d, keeping the relative order of the remaining cells.
//
// No validation: callers guarantee d is live with r,c ≥ 2 and in-range indices.
// Complexity: Time O(r*c), Space O((r-1)*(c-1)).
func minor(d *Dense, skipRow, skipCol int) *Dense {
	out := newDenseUnchecked(d.r-1, d.c-1)
	var i, j, base, dst int
	for i = 0; i < d.r; i++ {
		if i == skipRow {
			continue
		}
		base = i * d.c
		for j = 0; j < d.c; j++ {
			if j == skipCol {
				continue
			}
			out.data[dst] = d.data[base+j]
			dst++
		}
	}

	return out
}

// determinant evaluates det(d) for a live square d.
//
//	1×1: a00
//	2×2: a00*a11 - a01*a10
//	n≥3: Σ_i sign(i) * a0i * det(minor(0,i)), i = 0..n-1, accumulated from 0.
func determinant(d *Dense) float64 {
	switch d.r {
	case 1:
		return d.data[0]
	case 2:
		return float64(d.data[0]*d.data[3]) - float64(d.data[1]*d.data[2])
	}

	det := ZeroSum
	var sub *Dense
	for i := 0; i < d.c; i++ {
		sub = minor(d, 0, i)
		det += float64(cofactorSign(i) * d.data[i] * determinant(sub))
		sub.Release()
	}

	return det
}

// cofactors builds the algebraic-complement matrix of a live square d.
// A 1×1 input yields [[1]] whatever its value.
func cofactors(d *Dense) *Dense {
	n := d.r
	res := newDenseUnchecked(n, n)
	if n == 1 {
		res.data[0] = unitCofactor
		return res
	}

	var i, j int
	var sub *Dense
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			// Each minor is expanded independently; no memoisation across cells.
			sub = minor(d, i, j)
			res.data[i*n+j] = cofactorSign(i+j) * determinant(sub)
			sub.Release()
		}
	}

	return res
}

// squareDense validates m as a square matrix and returns a *Dense view of it.
// owned reports whether the *Dense is a private copy the caller must Release.
func squareDense(m Matrix, opTag string) (d *Dense, owned bool, err error) {
	if err = ValidateSquareMatrix(m); err != nil {
		return nil, false, matrixErrorf(opTag, err)
	}

	return asDense(m, opTag)
}

// Determinant returns det(m) by recursive Laplace expansion along row 0.
// MAIN DESCRIPTION:
//   - Exact textbook expansion; the documented algorithm of this package.
//
// Implementation:
//   - Stage 1: ValidateSquareMatrix (structural errors first, then ErrNonSquare).
//   - Stage 2: base cases 1×1 and 2×2; otherwise expand along the first row,
//     recursing on each minor and releasing it immediately.
//
// Behavior highlights:
//   - NaN/Inf inputs propagate per IEEE-754; no early exit.
//   - Triangular input yields the product of the diagonal (exact for small integers).
//
// Errors:
//   - ErrIncorrectMatrix kinds, ErrNonSquare.
//
// Complexity:
//   - Time O(n!), Space O(n^2) along the recursion path. Intended for small n.
func Determinant(m Matrix) (float64, error) {
	d, owned, err := squareDense(m, opDeterminant)
	if err != nil {
		return 0, err
	}
	if owned {
		defer d.Release()
	}

	return determinant(d), nil
}

// Cofactors returns the matrix of algebraic complements:
// C[i,j] = (-1)^(i+j) * det(minor(i,j)).
//
// Behavior highlights:
//   - 1×1 input always yields [[1]] (fixed convention).
//   - n^2 independent determinant expansions; cost grows very fast with n.
//
// Errors:
//   - ErrIncorrectMatrix kinds, ErrNonSquare.
//
// Complexity: Time O(n^2 · (n-1)!), Space O(n^2).
func Cofactors(m Matrix) (*Dense, error) {
	d, owned, err := squareDense(m, opCofactors)
	if err != nil {
		return nil, err
	}
	if owned {
		defer d.Release()
	}

	return cofactors(d), nil
}

// Adjugate returns adj(m) = Cofactors(m)ᵀ.
// Errors: ErrIncorrectMatrix kinds, ErrNonSquare.
func Adjugate(m Matrix) (*Dense, error) {
	cof, err := Cofactors(m)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	defer cof.Release()

	adj, err := Transpose(cof)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return adj, nil
}

// Inverse returns m⁻¹ = adj(m) / det(m).
// MAIN DESCRIPTION:
//   - Adjugate method: determinant, cofactors, transpose, scale by 1/det.
//
// Implementation:
//   - Stage 1: ValidateSquareMatrix.
//   - Stage 2: det := determinant(m); |det| < Epsilon ⇒ ErrSingular.
//   - Stage 3: cofactors → transpose → Scale(adj, 1/det). The cofactor and
//     adjugate intermediates are released via defer on every exit path.
//
// Behavior highlights:
//   - Near-zero determinants are rejected, not only exact zero.
//   - A NaN determinant is not "near zero" (NaN < Epsilon is false): the call
//     succeeds and the inverse is non-finite. This is propagation, not an error.
//   - The input is never mutated.
//
// Errors:
//   - ErrIncorrectMatrix kinds, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Dominated by Cofactors: Time O(n^2 · (n-1)!), Space O(n^2).
func Inverse(m Matrix) (*Dense, error) {
	d, owned, err := squareDense(m, opInverse)
	if err != nil {
		return nil, err
	}
	if owned {
		defer d.Release()
	}

	det := determinant(d)
	if math.Abs(det) < Epsilon {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	cof := cofactors(d)
	defer cof.Release()

	adj, err := Transpose(cof)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	defer adj.Release()

	inv, err := Scale(adj, unitNumer/det)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}
