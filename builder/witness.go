package builder

import (
	"fmt"

	"github.com/consensys/gnark/constraint"
)

// Witness holds the advice cells for one proving instance. Each Witness owns
// its row storage, so independent assignments against the same
// ConstraintSystem never share mutable state.
type Witness struct {
	cs     *ConstraintSystem
	advice [][]constraint.Element
	filled [][]bool
}

// NewWitness allocates an empty advice table matching the system's shape.
func (cs *ConstraintSystem) NewWitness() *Witness {
	advice := make([][]constraint.Element, len(cs.columns))
	filled := make([][]bool, len(cs.columns))
	for _, col := range cs.columns {
		if col.Kind == Advice {
			advice[col.ID] = make([]constraint.Element, cs.height)
			filled[col.ID] = make([]bool, cs.height)
		}
	}
	return &Witness{cs: cs, advice: advice, filled: filled}
}

// SetAdvice writes one advice cell. Every cell may be written exactly once
// per assignment.
func (w *Witness) SetAdvice(col Column, row int, v constraint.Element) error {
	if col.Kind != Advice {
		return fmt.Errorf("%w: column %q is %s, want advice", ErrColumnKind, col.Name, col.Kind)
	}
	if row < 0 || row >= w.cs.height {
		return fmt.Errorf("%w: advice column %q row %d, height %d", ErrLayoutOverflow, col.Name, row, w.cs.height)
	}
	if w.filled[col.ID][row] {
		return fmt.Errorf("%w: advice column %q row %d", ErrCellOverwrite, col.Name, row)
	}
	w.advice[col.ID][row] = v
	w.filled[col.ID][row] = true
	return nil
}

// Advice reads one advice cell; unassigned cells read as zero. The row is
// wrapped like expression rotations.
func (w *Witness) Advice(columnID, row int) constraint.Element {
	return w.advice[columnID][w.cs.WrapRow(row)]
}

// System returns the constraint system this witness was allocated for.
func (w *Witness) System() *ConstraintSystem { return w.cs }
