// SPDX-License-Identifier: MIT

package algebra

import "fmt"

const (
	minDim = 2
	maxDim = 4
)

// basisNames per dimension; the index is the component position.
var basisNames = map[int][]string{
	2: {"1", "e1", "e2", "e12"},
	3: {"1", "e1", "e2", "e3", "e23", "e31", "e12", "e123"},
	4: {
		"1", "e1", "e2", "e3", "e4",
		"e41", "e42", "e43", "e23", "e31", "e12",
		"e423", "e431", "e412", "e321",
		"e1234",
	},
}

// Algebra is the signature of G(P,N,Z). The zero value is invalid; use New or
// one of the predefined algebras.
type Algebra struct {
	p, n, z int
}

// Predefined Euclidean algebras.
var (
	EA2 = Algebra{p: 2}
	EA3 = Algebra{p: 3}
	EA4 = Algebra{p: 4}
)

// New returns the algebra with p generators squaring to +1, n to -1 and z to 0.
// Supported signatures: 2 ≤ p ≤ 4, n = z = 0.
//
// Errors:
//   - ErrSignature for any other signature.
func New(p, n, z int) (Algebra, error) {
	dim := p + n + z
	if dim < minDim || dim > maxDim || p < minDim || p > maxDim || n != 0 || z != 0 {
		return Algebra{}, algebraErrorf(opNew, fmt.Errorf("G(%d,%d,%d): %w", p, n, z, ErrSignature))
	}

	return Algebra{p: p, n: n, z: z}, nil
}

func (a Algebra) P() int { return a.p }
func (a Algebra) N() int { return a.n }
func (a Algebra) Z() int { return a.z }

// DimSpace returns the dimension of the generating vector space.
func (a Algebra) DimSpace() int { return a.p + a.n + a.z }

// NumComponents returns 2^DimSpace, the number of basis blades.
func (a Algebra) NumComponents() int { return 1 << a.DimSpace() }

// NumComponentsGrade returns the number of basis blades of each grade
// 0..DimSpace, i.e. the binomial coefficients of DimSpace.
func (a Algebra) NumComponentsGrade() []int {
	d := a.DimSpace()
	out := make([]int, d+1)
	out[0] = 1
	for k := 1; k <= d; k++ {
		out[k] = out[k-1] * (d - k + 1) / k
	}

	return out
}

// BasisName returns the name of component i ("1" for the scalar).
func (a Algebra) BasisName(i int) (string, error) {
	names := basisNames[a.DimSpace()]
	if i < 0 || i >= len(names) {
		return "", algebraErrorf(opBasisName, fmt.Errorf("index %d: %w", i, ErrBasisIndex))
	}

	return names[i], nil
}

// BasisNames returns a copy of all component names in storage order.
func (a Algebra) BasisNames() []string {
	return append([]string(nil), basisNames[a.DimSpace()]...)
}

// String returns "G(P,N,Z)".
func (a Algebra) String() string { return fmt.Sprintf("G(%d,%d,%d)", a.p, a.n, a.z) }
