package builder

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/stretchr/testify/require"

	"github.com/LKY-stephen/circuit-experiments/expr"
	"github.com/LKY-stephen/circuit-experiments/field"
)

func testField() field.Field {
	return field.GetFieldFromOrder(ecc.BN254.ScalarField())
}

func TestColumnAllocation(t *testing.T) {
	cs := NewConstraintSystem(testField(), 8)
	a := cs.AddColumn(Advice, "a")
	q := cs.AddColumn(Fixed, "q")
	i := cs.AddColumn(Instance, "pi")

	require.Equal(t, []int{0, 1, 2}, []int{a.ID, q.ID, i.ID})
	require.Equal(t, Advice, a.Kind)
	require.Len(t, cs.Columns(), 3)
}

func TestSelectorRange(t *testing.T) {
	cs := NewConstraintSystem(testField(), 4)
	s := cs.AddSelector("s")

	require.NoError(t, cs.EnableSelector(s, 3))
	require.True(t, cs.SelectorEnabled(s, 3))
	require.False(t, cs.SelectorEnabled(s, 2))
	require.ErrorIs(t, cs.EnableSelector(s, 4), ErrLayoutOverflow)
	require.ErrorIs(t, cs.EnableSelector(s, -1), ErrLayoutOverflow)
}

func TestFixedAssignment(t *testing.T) {
	f := testField()
	cs := NewConstraintSystem(f, 4)
	q := cs.AddColumn(Fixed, "q")
	a := cs.AddColumn(Advice, "a")

	require.NoError(t, cs.AssignFixed(q, 1, f.FromInterface(7)))
	require.Equal(t, f.FromInterface(7), cs.FixedCell(q.ID, 1))
	require.ErrorIs(t, cs.AssignFixed(q, 1, f.One()), ErrCellOverwrite)
	require.ErrorIs(t, cs.AssignFixed(q, 4, f.One()), ErrLayoutOverflow)
	require.ErrorIs(t, cs.AssignFixed(a, 0, f.One()), ErrColumnKind)
}

func TestAdviceWriteOnce(t *testing.T) {
	f := testField()
	cs := NewConstraintSystem(f, 4)
	a := cs.AddColumn(Advice, "a")
	q := cs.AddColumn(Fixed, "q")

	w := cs.NewWitness()
	require.NoError(t, w.SetAdvice(a, 2, f.FromInterface(9)))
	require.Equal(t, f.FromInterface(9), w.Advice(a.ID, 2))
	require.ErrorIs(t, w.SetAdvice(a, 2, f.One()), ErrCellOverwrite)
	require.ErrorIs(t, w.SetAdvice(a, 4, f.One()), ErrLayoutOverflow)
	require.ErrorIs(t, w.SetAdvice(q, 0, f.One()), ErrColumnKind)
}

func TestUnassignedAdviceReadsZero(t *testing.T) {
	cs := NewConstraintSystem(testField(), 4)
	a := cs.AddColumn(Advice, "a")
	w := cs.NewWitness()
	v := w.Advice(a.ID, 3)
	require.True(t, v.IsZero())
}

func TestWitnessesAreIndependent(t *testing.T) {
	f := testField()
	cs := NewConstraintSystem(f, 4)
	a := cs.AddColumn(Advice, "a")

	w1 := cs.NewWitness()
	w2 := cs.NewWitness()
	require.NoError(t, w1.SetAdvice(a, 0, f.FromInterface(1)))
	v := w2.Advice(a.ID, 0)
	require.True(t, v.IsZero())
	require.NoError(t, w2.SetAdvice(a, 0, f.FromInterface(2)))
	require.Equal(t, f.FromInterface(1), w1.Advice(a.ID, 0))
}

func TestRotationWrapsAroundTable(t *testing.T) {
	f := testField()
	cs := NewConstraintSystem(f, 4)
	a := cs.AddColumn(Advice, "a")
	w := cs.NewWitness()
	require.NoError(t, w.SetAdvice(a, 0, f.FromInterface(5)))
	require.NoError(t, w.SetAdvice(a, 3, f.FromInterface(6)))

	require.Equal(t, f.FromInterface(5), w.Advice(a.ID, 4), "+1 past the last row wraps to 0")
	require.Equal(t, f.FromInterface(6), w.Advice(a.ID, -1), "-1 before row 0 wraps to the last row")
}

func TestAddGatePanicsOnBadReferences(t *testing.T) {
	f := testField()
	cs := NewConstraintSystem(f, 4)
	a := cs.AddColumn(Advice, "a")
	pi := cs.AddColumn(Instance, "pi")
	s := cs.AddSelector("s")

	require.Panics(t, func() {
		cs.AddGate("bad-selector", Selector{ID: 9, Name: "ghost"}, expr.NewQuery(a.ID, 0, f.One()))
	})
	require.Panics(t, func() {
		cs.AddGate("bad-column", s, expr.NewQuery(17, 0, f.One()))
	})
	require.Panics(t, func() {
		cs.AddGate("instance-query", s, expr.NewQuery(pi.ID, 0, f.One()))
	}, "gates read fixed and advice cells only")
}

func TestConstrainInstanceValidation(t *testing.T) {
	f := testField()
	cs := NewConstraintSystem(f, 4)
	a := cs.AddColumn(Advice, "a")
	q := cs.AddColumn(Fixed, "q")
	slot := cs.AddInstanceSlot("out")

	require.NoError(t, cs.ConstrainInstance(a, 0, slot))
	require.ErrorIs(t, cs.ConstrainInstance(q, 0, slot), ErrColumnKind)
	require.ErrorIs(t, cs.ConstrainInstance(a, 9, slot), ErrLayoutOverflow)
	require.ErrorIs(t, cs.ConstrainInstance(a, 0, slot+1), ErrUnknownSlot)
	require.Equal(t, 1, cs.NumInstanceSlots())
}

func TestFingerprintSeesShapeChanges(t *testing.T) {
	f := testField()
	build := func(extraRow bool) *ConstraintSystem {
		cs := NewConstraintSystem(f, 8)
		a := cs.AddColumn(Advice, "a")
		s := cs.AddSelector("s")
		cs.AddGate("g", s, expr.NewQuery(a.ID, 0, f.One()))
		_ = cs.EnableSelector(s, 1)
		if extraRow {
			_ = cs.EnableSelector(s, 2)
		}
		return cs
	}
	require.Equal(t, build(false).Fingerprint(), build(false).Fingerprint())
	require.NotEqual(t, build(false).Fingerprint(), build(true).Fingerprint())
}
