package poseidon

import "github.com/consensys/gnark/constraint"

// Round applies round r to state and returns the next state. This is the
// single definition of the round function: the circuit gates and the
// witness assigner both follow it, so an assigned trace satisfies the
// gates by construction.
func (p *Params) Round(state []constraint.Element, r int) []constraint.Element {
	f := p.f
	mid := make([]constraint.Element, Width)
	for i := 0; i < Width; i++ {
		mid[i] = f.Add(state[i], p.arc[r][i])
	}
	if p.IsFullRound(r) {
		for i := 0; i < Width; i++ {
			mid[i] = pow5(f, mid[i])
		}
	} else {
		mid[0] = pow5(f, mid[0])
	}
	next := make([]constraint.Element, Width)
	for i := 0; i < Width; i++ {
		var acc constraint.Element
		for j := 0; j < Width; j++ {
			acc = f.Add(acc, f.Mul(p.mds[i][j], mid[j]))
		}
		next[i] = acc
	}
	return next
}

// Permute runs the full round schedule. The input slice is not modified.
func (p *Params) Permute(state []constraint.Element) []constraint.Element {
	if len(state) != Width {
		panic("poseidon: permutation state must have width 3")
	}
	cur := append([]constraint.Element(nil), state...)
	for r := 0; r < p.Rounds(); r++ {
		cur = p.Round(cur, r)
	}
	return cur
}

// Hash absorbs inputs into a rate-2 sponge and squeezes one element.
// The message is padded with a single one followed by zeros up to a
// chunk boundary, so messages of different lengths never collide.
func (p *Params) Hash(inputs []constraint.Element) constraint.Element {
	f := p.f
	state := []constraint.Element{{}, {}, p.spongeCapacity}
	for _, chunk := range p.padChunks(inputs) {
		for i := 0; i < Rate; i++ {
			state[i] = f.Add(state[i], chunk[i])
		}
		state = p.Permute(state)
	}
	return state[0]
}

// Node hashes two children into their parent with the two-to-one domain:
// a single permutation of (left, right, capacity).
func (p *Params) Node(left, right constraint.Element) constraint.Element {
	return p.Permute([]constraint.Element{left, right, p.merkleCapacity})[0]
}

// padChunks appends the padding marker and splits into rate-sized chunks.
func (p *Params) padChunks(inputs []constraint.Element) [][]constraint.Element {
	padded := append(append([]constraint.Element(nil), inputs...), p.f.One())
	for len(padded)%Rate != 0 {
		padded = append(padded, constraint.Element{})
	}
	chunks := make([][]constraint.Element, 0, len(padded)/Rate)
	for i := 0; i < len(padded); i += Rate {
		chunks = append(chunks, padded[i:i+Rate])
	}
	return chunks
}

func pow5(f constraint.Field, x constraint.Element) constraint.Element {
	x2 := f.Mul(x, x)
	return f.Mul(f.Mul(x2, x2), x)
}
