// Package merkle proves membership of a leaf in a Merkle tree built
// from the Poseidon two-to-one hash. The path is private advice, the
// root is the single public input.
package merkle

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark/logger"

	"github.com/LKY-stephen/circuit-experiments/builder"
	"github.com/LKY-stephen/circuit-experiments/expr"
	"github.com/LKY-stephen/circuit-experiments/field"
	"github.com/LKY-stephen/circuit-experiments/poseidon"
	"github.com/LKY-stephen/circuit-experiments/utils"
)

var (
	// ErrPathTooLong is returned when the requested depth exceeds the
	// configured maximum.
	ErrPathTooLong = errors.New("merkle: path longer than maximum depth")
	// ErrInvalidDirectionBit is returned for direction values other
	// than 0 and 1.
	ErrInvalidDirectionBit = errors.New("merkle: direction bit must be 0 or 1")
	// ErrPathLength is returned when siblings or direction bits do not
	// match the circuit depth.
	ErrPathLength = errors.New("merkle: path length does not match circuit depth")
)

// Circuit verifies one Merkle path of a fixed depth.
//
// Each tree level occupies a region: a swap row followed by a full
// permutation. The swap row holds (current, sibling, bit); the swap
// gate forces the bit boolean and the next row, the permutation input,
// to the ordered pair (left, right) with the node capacity in the third
// lane. From the second level on, a chain gate ties the swap row's
// current value to the previous permutation's output one row above.
// The last output's first lane is pinned to the root instance slot.
//
// Depth zero degenerates to a single row whose first lane is the leaf,
// pinned directly to the root.
type Circuit struct {
	cs     *builder.ConstraintSystem
	chip   *poseidon.Chip
	params *poseidon.Params

	depth    int
	rows     int
	rootSlot int
}

// NewCircuit builds the membership circuit for paths of exactly depth
// levels, rejecting depths above maxDepth.
func NewCircuit(f field.Field, params *poseidon.Params, depth, maxDepth int) (*Circuit, error) {
	if depth < 0 {
		return nil, fmt.Errorf("merkle: negative depth %d", depth)
	}
	if depth > maxDepth {
		return nil, fmt.Errorf("%w: depth %d, maximum %d", ErrPathTooLong, depth, maxDepth)
	}

	region := params.Rounds() + 2 // swap row + permutation rows
	rows := depth * region
	if depth == 0 {
		rows = 1
	}

	cs := builder.NewConstraintSystem(f, utils.NextPowerOfTwo(rows))
	chip := poseidon.Configure(cs, params)
	c := &Circuit{cs: cs, chip: chip, params: params, depth: depth, rows: rows}

	one := f.One()
	cur := expr.NewQuery(chip.State[0].ID, 0, one)
	sib := expr.NewQuery(chip.State[1].ID, 0, one)
	bit := expr.NewQuery(chip.State[2].ID, 0, one)
	left := expr.NewQuery(chip.State[0].ID, 1, one)
	right := expr.NewQuery(chip.State[1].ID, 1, one)
	capLane := expr.NewQuery(chip.State[2].ID, 1, one)

	// bit(bit-1) = 0, then blend: bit=0 keeps (cur, sib), bit=1 swaps
	sSwap := cs.AddSelector("cond-swap")
	cs.AddGate("cond-swap", sSwap,
		expr.Mul(f, bit, expr.Sub(f, bit, expr.NewConstant(one))),
		expr.Sub(f, left, expr.Add(f, cur, expr.Mul(f, bit, expr.Sub(f, sib, cur)))),
		expr.Sub(f, right, expr.Add(f, sib, expr.Mul(f, bit, expr.Sub(f, cur, sib)))),
		expr.Sub(f, capLane, expr.NewConstant(params.MerkleCapacity())),
	)

	sChain := cs.AddSelector("chain")
	cs.AddGate("chain", sChain,
		expr.Sub(f, cur, expr.NewQuery(chip.State[0].ID, -1, one)),
	)

	for i := 0; i < depth; i++ {
		base := i * region
		if err := cs.EnableSelector(sSwap, base); err != nil {
			return nil, fmt.Errorf("merkle: level %d: %w", i, err)
		}
		if i > 0 {
			if err := cs.EnableSelector(sChain, base); err != nil {
				return nil, fmt.Errorf("merkle: level %d: %w", i, err)
			}
		}
		if _, err := chip.Layout(cs, base+1); err != nil {
			return nil, fmt.Errorf("merkle: level %d: %w", i, err)
		}
	}

	c.rootSlot = cs.AddInstanceSlot("root")
	if err := cs.ConstrainInstance(chip.State[0], rows-1, c.rootSlot); err != nil {
		return nil, err
	}

	log := logger.Logger()
	log.Debug().Int("depth", depth).Int("rows", rows).
		Int("height", cs.Height()).Msg("built merkle membership circuit")
	return c, nil
}

// System exposes the underlying constraint table.
func (c *Circuit) System() *builder.ConstraintSystem { return c.cs }

// Depth is the number of tree levels the circuit verifies.
func (c *Circuit) Depth() int { return c.depth }

// Rows is the number of used rows; the table height is the next power
// of two.
func (c *Circuit) Rows() int { return c.rows }

// RootSlot is the public-input slot holding the root.
func (c *Circuit) RootSlot() int { return c.rootSlot }
