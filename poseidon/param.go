// Package poseidon implements the Poseidon permutation over the BN254
// scalar field, both as a native reference and as a constraint circuit:
// one row of advice state per round, per-round constants in fixed
// columns, and the S-box plus MDS mix folded into a single gate.
package poseidon

import (
	"math/big"

	"github.com/consensys/gnark/constraint"

	"github.com/LKY-stephen/circuit-experiments/field"
)

const (
	// Width is the permutation state size t.
	Width = 3
	// Rate is the number of lanes absorbed per sponge chunk.
	Rate = 2

	fullRounds    = 8
	partialRounds = 56
)

// Params holds the pinned permutation parameters encoded into a concrete
// field. A Params value is immutable after construction and safe to share
// across circuits and goroutines.
type Params struct {
	f field.Field

	arc [][]constraint.Element // [round][lane]
	mds [][]constraint.Element // [Width][Width]

	spongeCapacity constraint.Element
	merkleCapacity constraint.Element
}

// NewParams decodes the pinned parameter tables into f.
func NewParams(f field.Field) *Params {
	p := &Params{f: f}
	p.arc = make([][]constraint.Element, len(arcHex))
	for r := range arcHex {
		p.arc[r] = make([]constraint.Element, Width)
		for i := 0; i < Width; i++ {
			p.arc[r][i] = decodeHex(f, arcHex[r][i])
		}
	}
	p.mds = make([][]constraint.Element, Width)
	for i := 0; i < Width; i++ {
		p.mds[i] = make([]constraint.Element, Width)
		for j := 0; j < Width; j++ {
			p.mds[i][j] = decodeHex(f, mdsHex[i][j])
		}
	}
	p.spongeCapacity = decodeHex(f, spongeCapacityHex)
	p.merkleCapacity = decodeHex(f, merkleCapacityHex)
	return p
}

// Rounds returns the total round count.
func (p *Params) Rounds() int { return fullRounds + partialRounds }

// IsFullRound reports whether round r applies the S-box to every lane.
// Full rounds sit at both ends of the schedule with the partial rounds
// in the middle.
func (p *Params) IsFullRound(r int) bool {
	return r < fullRounds/2 || r >= fullRounds/2+partialRounds
}

// Arc returns the round constant for lane i of round r.
func (p *Params) Arc(r, i int) constraint.Element { return p.arc[r][i] }

// Mds returns the matrix entry at row i, column j.
func (p *Params) Mds(i, j int) constraint.Element { return p.mds[i][j] }

// SpongeCapacity is the initial capacity-lane value of the variable
// length hash.
func (p *Params) SpongeCapacity() constraint.Element { return p.spongeCapacity }

// MerkleCapacity is the capacity-lane value of the two-to-one node hash.
// It differs from the sponge value so the two uses can never collide.
func (p *Params) MerkleCapacity() constraint.Element { return p.merkleCapacity }

func decodeHex(f field.Field, s string) constraint.Element {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic("poseidon: malformed parameter literal " + s)
	}
	return f.FromInterface(v)
}
