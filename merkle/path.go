package merkle

import (
	"math/rand"

	"github.com/consensys/gnark/constraint"

	"github.com/LKY-stephen/circuit-experiments/field"
	"github.com/LKY-stephen/circuit-experiments/poseidon"
)

// Path is one leaf-to-root opening.
type Path struct {
	Leaf     constraint.Element
	Siblings []constraint.Element
	Bits     []int
	Root     constraint.Element
}

// RandomPath samples a leaf, siblings and directions from rng and folds
// them to the matching root. Used by tests and benchmarks.
func RandomPath(f field.Field, params *poseidon.Params, depth int, rng *rand.Rand) Path {
	p := Path{
		Leaf:     f.FromInterface(rng.Uint64()),
		Siblings: make([]constraint.Element, depth),
		Bits:     make([]int, depth),
	}
	cur := p.Leaf
	for i := 0; i < depth; i++ {
		p.Siblings[i] = f.FromInterface(rng.Uint64())
		p.Bits[i] = rng.Intn(2)
		if p.Bits[i] == 0 {
			cur = params.Node(cur, p.Siblings[i])
		} else {
			cur = params.Node(p.Siblings[i], cur)
		}
	}
	p.Root = cur
	return p
}
