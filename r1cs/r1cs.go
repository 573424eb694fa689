// Package r1cs holds the sparse rank-1 constraint matrices produced by the
// zkey conversion, together with a hand-written binary codec. The codec
// enumerates fields in one fixed order, mirrored exactly between encode and
// decode, because the matrices type has no derivable serialization of its
// own.
package r1cs

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Term is a single non-zero entry of a sparse constraint matrix: a scalar
// coefficient applied to the variable at the given column.
type Term struct {
	Coeff  fr.Element
	Column uint64
}

// LinearCombination is one sparse matrix row, ordered by insertion as the
// circuit compiler emitted it.
type LinearCombination []Term

// Matrices is the R1CS constraint-matrix triple plus its scalar metadata.
//
// NumInstanceVariables counts the public inputs plus the constant-one wire,
// which is always instance variable 0. The C matrix stays empty on the zkey
// conversion path; the compiler's export format never materializes it.
type Matrices struct {
	A []LinearCombination
	B []LinearCombination
	C []LinearCombination

	ANumNonZero uint64
	BNumNonZero uint64
	CNumNonZero uint64

	NumInstanceVariables uint64
	NumWitnessVariables  uint64
	NumConstraints       uint64
}

// NbTerms returns the total number of non-zero entries across all three
// matrices, counted from the rows themselves.
func (m *Matrices) NbTerms() int {
	n := 0
	for _, mat := range [][]LinearCombination{m.A, m.B, m.C} {
		for _, row := range mat {
			n += len(row)
		}
	}
	return n
}

// Check validates the matrices structurally. Coefficients are canonical
// field elements by construction and column indices carry no validity
// predicate, so there is nothing to reject here; in particular the stored
// non-zero counters are deliberately not cross-checked against the actual
// row contents, mirroring the decode contract.
func (m *Matrices) Check() error {
	return nil
}
