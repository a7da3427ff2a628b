// Package builder manages the constraint-system table: columns, selectors,
// gates and fixed cells.
//
// The table has a fixed height chosen at construction time. Circuit
// definition (column allocation, gate registration, selector activation,
// fixed assignments) is append-only and never depends on witness values, so
// building the same circuit twice yields an identical shape. Witness values
// live in a separate Witness table, one per proving instance.
package builder

import (
	"errors"
	"fmt"

	"github.com/LKY-stephen/circuit-experiments/expr"
	"github.com/LKY-stephen/circuit-experiments/field"
	"github.com/consensys/gnark/constraint"
)

var (
	// ErrLayoutOverflow reports a row index beyond the configured height.
	ErrLayoutOverflow = errors.New("builder: row allocation exceeds circuit height")
	// ErrColumnKind reports an assignment to a column of the wrong kind.
	ErrColumnKind = errors.New("builder: wrong column kind")
	// ErrCellOverwrite reports a second write to the same cell.
	ErrCellOverwrite = errors.New("builder: cell assigned twice")
	// ErrUnknownSlot reports a reference to a public-input slot that was
	// never declared.
	ErrUnknownSlot = errors.New("builder: unknown instance slot")
)

type ColumnKind uint8

const (
	// Fixed cells are constants baked in at circuit-definition time.
	Fixed ColumnKind = iota
	// Advice cells are witness values, set once per proving instance.
	Advice
	// Instance cells are public inputs supplied by the verifier.
	Instance
)

func (k ColumnKind) String() string {
	switch k {
	case Fixed:
		return "fixed"
	case Advice:
		return "advice"
	case Instance:
		return "instance"
	default:
		return "unknown"
	}
}

// Column is a handle to one allocated column.
type Column struct {
	ID   int
	Kind ColumnKind
	Name string
}

// Selector is a handle to a boolean fixed-column flag that activates gates on
// specific rows.
type Selector struct {
	ID   int
	Name string
}

// Gate is a named set of polynomial identities enforced on every row where
// its selector is enabled.
type Gate struct {
	Name     string
	Selector Selector
	Polys    []expr.Expression
}

// InstanceConstraint pins an advice cell to a public-input slot.
type InstanceConstraint struct {
	Column Column
	Row    int
	Slot   int
}

type ConstraintSystem struct {
	field  field.Field
	height int

	columns []Column
	// per column id; nil for non-fixed columns
	fixed    [][]constraint.Element
	fixedSet [][]bool

	// per selector id, per row
	selectorRows [][]bool

	gates       []Gate
	slots       []string
	instanceEqs []InstanceConstraint
}

// NewConstraintSystem creates an empty table with the given number of rows.
func NewConstraintSystem(f field.Field, height int) *ConstraintSystem {
	if height <= 0 {
		panic("builder: height must be positive")
	}
	return &ConstraintSystem{
		field:  f,
		height: height,
	}
}

func (cs *ConstraintSystem) Field() field.Field { return cs.field }

func (cs *ConstraintSystem) Height() int { return cs.height }

// AddColumn allocates a column of the given kind.
func (cs *ConstraintSystem) AddColumn(kind ColumnKind, name string) Column {
	col := Column{ID: len(cs.columns), Kind: kind, Name: name}
	cs.columns = append(cs.columns, col)
	if kind == Fixed {
		cs.fixed = append(cs.fixed, make([]constraint.Element, cs.height))
		cs.fixedSet = append(cs.fixedSet, make([]bool, cs.height))
	} else {
		cs.fixed = append(cs.fixed, nil)
		cs.fixedSet = append(cs.fixedSet, nil)
	}
	return col
}

// AddSelector allocates a selector, disabled on every row.
func (cs *ConstraintSystem) AddSelector(name string) Selector {
	s := Selector{ID: len(cs.selectorRows), Name: name}
	cs.selectorRows = append(cs.selectorRows, make([]bool, cs.height))
	return s
}

// AddGate registers the polynomial identities enforced wherever sel is
// enabled. Queries must reference fixed or advice columns of this system;
// a malformed gate is a programming error and panics.
func (cs *ConstraintSystem) AddGate(name string, sel Selector, polys ...expr.Expression) {
	if sel.ID < 0 || sel.ID >= len(cs.selectorRows) {
		panic(fmt.Sprintf("builder: gate %q uses unknown selector", name))
	}
	for _, p := range polys {
		for _, q := range p.Queries() {
			if q.Column < 0 || q.Column >= len(cs.columns) {
				panic(fmt.Sprintf("builder: gate %q queries unknown column %d", name, q.Column))
			}
			if cs.columns[q.Column].Kind == Instance {
				panic(fmt.Sprintf("builder: gate %q queries instance column %q; use ConstrainInstance", name, cs.columns[q.Column].Name))
			}
		}
	}
	cs.gates = append(cs.gates, Gate{Name: name, Selector: sel, Polys: polys})
}

// EnableSelector turns sel on for one row.
func (cs *ConstraintSystem) EnableSelector(sel Selector, row int) error {
	if row < 0 || row >= cs.height {
		return fmt.Errorf("%w: selector %q row %d, height %d", ErrLayoutOverflow, sel.Name, row, cs.height)
	}
	cs.selectorRows[sel.ID][row] = true
	return nil
}

// AssignFixed sets a fixed cell. Every fixed cell may be written once.
func (cs *ConstraintSystem) AssignFixed(col Column, row int, v constraint.Element) error {
	if col.Kind != Fixed {
		return fmt.Errorf("%w: column %q is %s, want fixed", ErrColumnKind, col.Name, col.Kind)
	}
	if row < 0 || row >= cs.height {
		return fmt.Errorf("%w: fixed column %q row %d, height %d", ErrLayoutOverflow, col.Name, row, cs.height)
	}
	if cs.fixedSet[col.ID][row] {
		return fmt.Errorf("%w: fixed column %q row %d", ErrCellOverwrite, col.Name, row)
	}
	cs.fixed[col.ID][row] = v
	cs.fixedSet[col.ID][row] = true
	return nil
}

// AddInstanceSlot declares one public input and returns its position in the
// public-input vector.
func (cs *ConstraintSystem) AddInstanceSlot(name string) int {
	cs.slots = append(cs.slots, name)
	return len(cs.slots) - 1
}

// ConstrainInstance pins an advice cell to equal a public-input slot.
func (cs *ConstraintSystem) ConstrainInstance(col Column, row, slot int) error {
	if col.Kind != Advice {
		return fmt.Errorf("%w: column %q is %s, want advice", ErrColumnKind, col.Name, col.Kind)
	}
	if row < 0 || row >= cs.height {
		return fmt.Errorf("%w: instance constraint on row %d, height %d", ErrLayoutOverflow, row, cs.height)
	}
	if slot < 0 || slot >= len(cs.slots) {
		return fmt.Errorf("%w: slot %d", ErrUnknownSlot, slot)
	}
	cs.instanceEqs = append(cs.instanceEqs, InstanceConstraint{Column: col, Row: row, Slot: slot})
	return nil
}

// Columns returns the allocated columns in allocation order.
func (cs *ConstraintSystem) Columns() []Column { return cs.columns }

// Gates returns the registered gates in registration order.
func (cs *ConstraintSystem) Gates() []Gate { return cs.gates }

// NumInstanceSlots returns the length of the public-input vector.
func (cs *ConstraintSystem) NumInstanceSlots() int { return len(cs.slots) }

// InstanceConstraints returns the advice/public equality constraints.
func (cs *ConstraintSystem) InstanceConstraints() []InstanceConstraint { return cs.instanceEqs }

// SelectorEnabled reports whether sel is on at the given row.
func (cs *ConstraintSystem) SelectorEnabled(sel Selector, row int) bool {
	return cs.selectorRows[sel.ID][row]
}

// FixedCell reads a fixed cell; the rotation convention wraps around the
// table, matching expression evaluation.
func (cs *ConstraintSystem) FixedCell(columnID, row int) constraint.Element {
	return cs.fixed[columnID][cs.WrapRow(row)]
}

// WrapRow reduces a (possibly rotated) row index into the table.
func (cs *ConstraintSystem) WrapRow(row int) int {
	row %= cs.height
	if row < 0 {
		row += cs.height
	}
	return row
}

// Fingerprint digests the full shape: columns, selector activations, gates
// and instance constraints. Two circuits built from the same definition have
// equal fingerprints.
func (cs *ConstraintSystem) Fingerprint() uint64 {
	h := uint64(17)
	mix := func(x uint64) {
		h = h*1099511628211 + x
	}
	mix(uint64(cs.height))
	for _, c := range cs.columns {
		mix(uint64(c.Kind))
		mix(hashString(c.Name))
	}
	for id := range cs.selectorRows {
		for row, on := range cs.selectorRows[id] {
			if on {
				mix(uint64(id)<<32 | uint64(row))
			}
		}
	}
	for id, col := range cs.fixed {
		if col == nil {
			continue
		}
		for row, v := range col {
			if cs.fixedSet[id][row] {
				mix(uint64(row))
				mix(v[0] ^ v[1] ^ v[2] ^ v[3] ^ v[4] ^ v[5])
			}
		}
	}
	for _, g := range cs.gates {
		mix(hashString(g.Name))
		mix(uint64(g.Selector.ID))
		for _, p := range g.Polys {
			mix(p.HashCode())
		}
	}
	for _, ic := range cs.instanceEqs {
		mix(uint64(ic.Column.ID))
		mix(uint64(ic.Row))
		mix(uint64(ic.Slot))
	}
	return h
}

func hashString(s string) uint64 {
	h := uint64(14695981039346656037)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= 1099511628211
	}
	return h
}
