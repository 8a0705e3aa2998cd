// Package matrix offers a small dense linear-algebra kernel over float64.
//
// The matrix package provides:
//
//   - Dense: a row-major matrix with an explicit lifecycle (NewDense / Release).
//   - Elementwise and product kernels: Equal, Add, Sub, Scale, Mul, Transpose.
//   - The adjugate pipeline: Determinant (recursive Laplace expansion),
//     Cofactors, Adjugate and Inverse.
//
// Every kernel validates its operands first and returns an error classified
// as ErrIncorrectMatrix (structural misuse) or ErrCalculation (numerically
// unsuitable input); StatusOf folds either into a three-way Status.
//
// Determinant and Cofactors are exponential in n. They are exact textbook
// algorithms meant for small matrices, not a replacement for LU-based solvers.
//
// See the examples in this package for usage patterns.
package matrix
