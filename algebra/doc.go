// SPDX-License-Identifier: MIT

// Package algebra describes a geometric algebra G(P,N,Z) by its signature.
//
// An Algebra carries no values. It answers structural questions used when
// printing or iterating multivector components:
//
//   - P, N, Z: generators squaring to +1, -1 and 0
//   - DimSpace: P+N+Z
//   - NumComponents: 2^DimSpace
//   - NumComponentsGrade: binomial(DimSpace, k) for k = 0..DimSpace
//   - BasisName: the canonical name of component i
//
// Only Euclidean algebras of dimension 2 to 4 are supported (N = Z = 0).
// The predefined EA2, EA3 and EA4 match the component layout of ga2d and
// ga3d; EA4 keeps the e41, e42, e43 / e423, e431, e412, e321 ordering.
//
//	alg := algebra.EA3
//	for i, name := range alg.BasisNames() {
//		fmt.Printf("%s=%g ", name, comps[i])
//	}
package algebra
