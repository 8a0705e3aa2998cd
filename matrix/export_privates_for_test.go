// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private kernels.
//
// Purpose:
//   - Expose UNEXPORTED helpers to matrix_test ONLY. The file name ends in
//     _test.go, so none of this is part of the production API.
//
// Provided Surface:
//   - Minor_TestOnly: minor extraction on a live *Dense.
//   - ValidateNaNInfOf_TestOnly: effective numeric policy of a Dense.
//   - GatherValidateNaNInf_TestOnly: effective policy after option resolution.

// Minor_TestOnly forwards to the private minor helper.
func Minor_TestOnly(d *Dense, skipRow, skipCol int) *Dense {
	return minor(d, skipRow, skipCol)
}

// ValidateNaNInfOf_TestOnly reports whether Set on d rejects NaN/Inf.
func ValidateNaNInfOf_TestOnly(d *Dense) bool { return d.validateNaNInf }

// GatherValidateNaNInf_TestOnly resolves opts and reports the NaN/Inf policy.
func GatherValidateNaNInf_TestOnly(opts ...Option) bool {
	return gatherOptions(opts...).validateNaNInf
}
