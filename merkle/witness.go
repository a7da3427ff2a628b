package merkle

import (
	"fmt"

	"github.com/consensys/gnark/constraint"

	"github.com/LKY-stephen/circuit-experiments/builder"
)

// Assign fills a witness for one path and returns it with the
// public-input vector holding root. The claimed root is passed through
// unchanged: assigning a root that does not match the path yields a
// witness the checker rejects, it is never silently corrected.
func (c *Circuit) Assign(leaf constraint.Element, siblings []constraint.Element, bits []int, root constraint.Element) (*builder.Witness, []constraint.Element, error) {
	if len(siblings) != c.depth || len(bits) != c.depth {
		return nil, nil, fmt.Errorf("%w: got %d siblings and %d bits, circuit depth %d",
			ErrPathLength, len(siblings), len(bits), c.depth)
	}
	for i, b := range bits {
		if b != 0 && b != 1 {
			return nil, nil, fmt.Errorf("%w: level %d has %d", ErrInvalidDirectionBit, i, b)
		}
	}

	f := c.cs.Field()
	w := c.cs.NewWitness()

	if c.depth == 0 {
		if err := w.SetAdvice(c.chip.State[0], 0, leaf); err != nil {
			return nil, nil, err
		}
		return w, []constraint.Element{root}, nil
	}

	region := c.params.Rounds() + 2
	cur := leaf
	for i := 0; i < c.depth; i++ {
		base := i * region
		bitVal := constraint.Element{}
		left, right := cur, siblings[i]
		if bits[i] == 1 {
			bitVal = f.One()
			left, right = right, left
		}
		for lane, v := range []constraint.Element{cur, siblings[i], bitVal} {
			if err := w.SetAdvice(c.chip.State[lane], base, v); err != nil {
				return nil, nil, err
			}
		}
		out, err := c.chip.Assign(w, base+1, []constraint.Element{left, right, c.params.MerkleCapacity()})
		if err != nil {
			return nil, nil, err
		}
		cur = out[0]
	}
	return w, []constraint.Element{root}, nil
}

// ComputeRoot folds a path outside the circuit, with the same node hash
// the gates enforce.
func (c *Circuit) ComputeRoot(leaf constraint.Element, siblings []constraint.Element, bits []int) (constraint.Element, error) {
	if len(siblings) != c.depth || len(bits) != c.depth {
		return constraint.Element{}, fmt.Errorf("%w: got %d siblings and %d bits, circuit depth %d",
			ErrPathLength, len(siblings), len(bits), c.depth)
	}
	cur := leaf
	for i := range siblings {
		switch bits[i] {
		case 0:
			cur = c.params.Node(cur, siblings[i])
		case 1:
			cur = c.params.Node(siblings[i], cur)
		default:
			return constraint.Element{}, fmt.Errorf("%w: level %d has %d", ErrInvalidDirectionBit, i, bits[i])
		}
	}
	return cur, nil
}
