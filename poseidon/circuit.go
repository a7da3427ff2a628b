package poseidon

import (
	"fmt"

	"github.com/consensys/gnark/constraint"

	"github.com/LKY-stephen/circuit-experiments/builder"
	"github.com/LKY-stephen/circuit-experiments/expr"
)

// Chip is the in-circuit permutation: three advice columns carry the
// state with one row per round, three fixed columns carry the round
// constants, and two selector-gated identities relate each row to the
// next. Round r of a permutation starting at row s is enforced at row
// s+r and writes row s+r+1, so the output state sits at row s+Rounds().
//
// A single Chip serves any number of permutations in one table: layout
// regions just must not overlap.
type Chip struct {
	params *Params

	// State holds the advice columns, one per lane. Callers wire their
	// own gates against these columns to feed and read permutations.
	State []builder.Column

	arc      []builder.Column
	sFull    builder.Selector
	sPartial builder.Selector
}

// Configure allocates the chip's columns and registers the round gates
// on cs. Call once per constraint system.
func Configure(cs *builder.ConstraintSystem, params *Params) *Chip {
	c := &Chip{params: params}
	for i := 0; i < Width; i++ {
		c.State = append(c.State, cs.AddColumn(builder.Advice, fmt.Sprintf("state_%d", i)))
	}
	for i := 0; i < Width; i++ {
		c.arc = append(c.arc, cs.AddColumn(builder.Fixed, fmt.Sprintf("arc_%d", i)))
	}
	c.sFull = cs.AddSelector("full-round")
	c.sPartial = cs.AddSelector("partial-round")

	cs.AddGate("poseidon-full", c.sFull, c.roundPolys(cs.Field(), true)...)
	cs.AddGate("poseidon-partial", c.sPartial, c.roundPolys(cs.Field(), false)...)
	return c
}

// roundPolys builds, per output lane i, the identity
//
//	next_i - sum_j mds[i][j] * sbox_j(state_j + arc_j) = 0
//
// where sbox_j is x^5 on every lane in a full round and on lane 0 only
// in a partial round. The MDS coefficients are folded into the gate, so
// only the state needs a row per round.
func (c *Chip) roundPolys(f constraint.Field, full bool) []expr.Expression {
	one := f.One()
	mid := make([]expr.Expression, Width)
	for j := 0; j < Width; j++ {
		keyed := expr.Add(f,
			expr.NewQuery(c.State[j].ID, 0, one),
			expr.NewQuery(c.arc[j].ID, 0, one),
		)
		if full || j == 0 {
			mid[j] = pow5Expr(f, keyed)
		} else {
			mid[j] = keyed
		}
	}
	polys := make([]expr.Expression, Width)
	for i := 0; i < Width; i++ {
		mixed := expr.NewConstant(constraint.Element{})
		for j := 0; j < Width; j++ {
			mixed = expr.Add(f, mixed, expr.Scale(f, mid[j], c.params.mds[i][j]))
		}
		polys[i] = expr.Sub(f, expr.NewQuery(c.State[i].ID, 1, one), mixed)
	}
	return polys
}

// Layout enables the round selectors and assigns the round constants for
// one permutation whose input state sits at startRow. It returns the row
// holding the output state, startRow+Rounds().
func (c *Chip) Layout(cs *builder.ConstraintSystem, startRow int) (int, error) {
	for r := 0; r < c.params.Rounds(); r++ {
		row := startRow + r
		sel := c.sPartial
		if c.params.IsFullRound(r) {
			sel = c.sFull
		}
		if err := cs.EnableSelector(sel, row); err != nil {
			return 0, fmt.Errorf("poseidon: round %d: %w", r, err)
		}
		for i := 0; i < Width; i++ {
			if err := cs.AssignFixed(c.arc[i], row, c.params.arc[r][i]); err != nil {
				return 0, fmt.Errorf("poseidon: round %d: %w", r, err)
			}
		}
	}
	return startRow + c.params.Rounds(), nil
}

// Assign writes the permutation trace into w: the input state at
// startRow and each round's output on the following row, using the same
// round function the gates encode. It returns the output state.
func (c *Chip) Assign(w *builder.Witness, startRow int, state []constraint.Element) ([]constraint.Element, error) {
	cur := append([]constraint.Element(nil), state...)
	if err := c.writeState(w, startRow, cur); err != nil {
		return nil, err
	}
	for r := 0; r < c.params.Rounds(); r++ {
		cur = c.params.Round(cur, r)
		if err := c.writeState(w, startRow+r+1, cur); err != nil {
			return nil, err
		}
	}
	return cur, nil
}

func (c *Chip) writeState(w *builder.Witness, row int, state []constraint.Element) error {
	for i := 0; i < Width; i++ {
		if err := w.SetAdvice(c.State[i], row, state[i]); err != nil {
			return fmt.Errorf("poseidon: row %d: %w", row, err)
		}
	}
	return nil
}

func pow5Expr(f constraint.Field, x expr.Expression) expr.Expression {
	x2 := expr.Mul(f, x, x)
	return expr.Mul(f, expr.Mul(f, x2, x2), x)
}
