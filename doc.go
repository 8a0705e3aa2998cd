// Package densela is a teaching-grade dense linear-algebra kernel for small
// real matrices.
//
// Under the hood, everything is organized under one subpackage:
//
//	matrix/ - Dense storage, elementwise/product kernels, determinant,
//	          cofactors, adjugate and inverse
//
// Quick example:
//
//	A = | 2  5  7 |     det(A) = -1
//	    | 6  3  4 |
//	    | 5 -2 -3 |     A⁻¹ = |   1  -1   1 |
//	                          | -38  41 -34 |
//	                          |  27 -29  24 |
//
//	go get github.com/katalvlaran/densela/matrix
package densela
