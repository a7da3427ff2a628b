// Package checker re-evaluates every active gate of a constraint system
// against an assigned witness and the public-input vector.
package checker

import (
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/LKY-stephen/circuit-experiments/builder"
	"github.com/LKY-stephen/circuit-experiments/expr"
	"github.com/consensys/gnark/constraint"
	"golang.org/x/sync/errgroup"
)

// ConstraintUnsatisfied reports one violated identity: the row it was
// evaluated on, the gate name and the index of the identity inside the gate.
type ConstraintUnsatisfied struct {
	Row  int
	Gate string
	Poly int
}

func (e *ConstraintUnsatisfied) Error() string {
	return fmt.Sprintf("checker: gate %q identity %d not satisfied on row %d", e.Gate, e.Poly, e.Row)
}

// Violations evaluates every gate on every row where its selector is active,
// plus the instance-equality constraints, and returns all violated rows
// sorted by (row, gate). Rows are checked in parallel; the result does not
// depend on evaluation order.
func Violations(cs *builder.ConstraintSystem, w *builder.Witness, public []constraint.Element) ([]ConstraintUnsatisfied, error) {
	if w.System() != cs {
		return nil, fmt.Errorf("checker: witness belongs to a different constraint system")
	}
	if len(public) != cs.NumInstanceSlots() {
		return nil, fmt.Errorf("checker: got %d public inputs, want %d", len(public), cs.NumInstanceSlots())
	}

	f := cs.Field()
	columns := cs.Columns()
	gates := cs.Gates()
	height := cs.Height()

	var mu sync.Mutex
	var out []ConstraintUnsatisfied

	checkRow := func(row int) {
		at := func(q expr.Query) constraint.Element {
			if columns[q.Column].Kind == builder.Fixed {
				return cs.FixedCell(q.Column, row+q.Rotation)
			}
			return w.Advice(q.Column, row+q.Rotation)
		}
		var local []ConstraintUnsatisfied
		for _, g := range gates {
			if !cs.SelectorEnabled(g.Selector, row) {
				continue
			}
			for i, p := range g.Polys {
				v := p.Evaluate(f, at)
				if !v.IsZero() {
					local = append(local, ConstraintUnsatisfied{Row: row, Gate: g.Name, Poly: i})
				}
			}
		}
		if len(local) > 0 {
			mu.Lock()
			out = append(out, local...)
			mu.Unlock()
		}
	}

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	chunk := (height + runtime.NumCPU() - 1) / runtime.NumCPU()
	for start := 0; start < height; start += chunk {
		start := start
		end := start + chunk
		if end > height {
			end = height
		}
		g.Go(func() error {
			for row := start; row < end; row++ {
				checkRow(row)
			}
			return nil
		})
	}
	_ = g.Wait()

	for _, ic := range cs.InstanceConstraints() {
		got := w.Advice(ic.Column.ID, ic.Row)
		want := public[ic.Slot]
		if f.ToBigInt(got).Cmp(f.ToBigInt(want)) != 0 {
			out = append(out, ConstraintUnsatisfied{Row: ic.Row, Gate: "instance-equality", Poly: ic.Slot})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		if out[i].Gate != out[j].Gate {
			return out[i].Gate < out[j].Gate
		}
		return out[i].Poly < out[j].Poly
	})
	return out, nil
}

// Check returns the first violation, or nil when the witness satisfies every
// active gate and instance constraint.
func Check(cs *builder.ConstraintSystem, w *builder.Witness, public []constraint.Element) error {
	vs, err := Violations(cs, w, public)
	if err != nil {
		return err
	}
	if len(vs) > 0 {
		return &vs[0]
	}
	return nil
}

// IsSatisfied is the boolean entry point used by tests and the external
// proving pipeline.
func IsSatisfied(cs *builder.ConstraintSystem, w *builder.Witness, public []constraint.Element) bool {
	return Check(cs, w, public) == nil
}
