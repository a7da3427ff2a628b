package poseidon

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/constraint"
	"github.com/stretchr/testify/require"

	"github.com/LKY-stephen/circuit-experiments/builder"
	"github.com/LKY-stephen/circuit-experiments/checker"
	"github.com/LKY-stephen/circuit-experiments/field"
)

func testField(t *testing.T) field.Field {
	t.Helper()
	return field.GetFieldFromOrder(ecc.BN254.ScalarField())
}

func elems(f field.Field, vs ...interface{}) []constraint.Element {
	out := make([]constraint.Element, len(vs))
	for i, v := range vs {
		out[i] = f.FromInterface(v)
	}
	return out
}

func hexElem(t *testing.T, f field.Field, s string) constraint.Element {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 0)
	require.True(t, ok, "bad literal %s", s)
	return f.FromInterface(v)
}

func TestPermuteVector(t *testing.T) {
	f := testField(t)
	p := NewParams(f)

	got := p.Permute(elems(f, 1, 2, 3))
	want := []constraint.Element{
		hexElem(t, f, "0x1fb336a30ae2da32313a8e005480e9807c42fa6ca4655de672468e1223b55f08"),
		hexElem(t, f, "0x161d320aea0f5e028ab0341950e8178083fb86b7b5f779090aa9ca848463282c"),
		hexElem(t, f, "0x2984b173ffd0e158bc6a4088a9c7f44e47332a9caeda5eba1bbc00d14185edf2"),
	}
	require.Equal(t, want, got)
}

func TestPermuteEmptySpongeState(t *testing.T) {
	f := testField(t)
	p := NewParams(f)

	got := p.Permute([]constraint.Element{{}, {}, p.SpongeCapacity()})
	want := []constraint.Element{
		hexElem(t, f, "0x1c613085ad214ee9ca775cdeb8b48393aff6a5f06eadb8ac0fa820e5b0e097fb"),
		hexElem(t, f, "0x2434457cb8faa9e7e5a60565c9ddb9aec13d88167469b5009814a9d495fb1de5"),
		hexElem(t, f, "0x296044f41e2202d3d9068a4a100d0135f4f256f615a9bf7867781c2615311948"),
	}
	require.Equal(t, want, got)
}

func TestHashVectors(t *testing.T) {
	f := testField(t)
	p := NewParams(f)

	require.Equal(t,
		hexElem(t, f, "0x1cd9f97a128b80feb0f276f96eb0cfec9b12d626e140057f76d07ddadec3d35c"),
		p.Hash(elems(f, 7)))
	require.Equal(t,
		hexElem(t, f, "0x3c1ecfe49afb014592c989a5b6a2d637a095e7cfbd41278d95d62ce9543fed2"),
		p.Hash(elems(f, 1, 2, 3, 4, 5)))
}

func TestNodeVectors(t *testing.T) {
	f := testField(t)
	p := NewParams(f)

	left := p.Node(f.FromInterface(1), f.FromInterface(2))
	right := p.Node(f.FromInterface(2), f.FromInterface(1))
	require.Equal(t, hexElem(t, f, "0x16508635967dc93480aa405b900ffeb85f9bf8ad6fc58661f1aaf462070644d4"), left)
	require.Equal(t, hexElem(t, f, "0x26f4d40d29377bdd4837e13165b3f967b0a56a24f78a7d8f9bcbccfc5af32680"), right)
	require.NotEqual(t, left, right, "node hash must depend on child order")
}

func TestHashDomainSeparation(t *testing.T) {
	f := testField(t)
	p := NewParams(f)

	// sponge of (l, r) and the two-to-one node differ on purpose
	l, r := f.FromInterface(1), f.FromInterface(2)
	require.NotEqual(t, p.Node(l, r), p.Hash([]constraint.Element{l, r}))
}

func TestHashPaddingDistinguishesLengths(t *testing.T) {
	f := testField(t)
	p := NewParams(f)

	require.NotEqual(t, p.Hash(elems(f, 1)), p.Hash(elems(f, 1, 0)))
	require.NotEqual(t, p.Hash(nil), p.Hash(elems(f, 0)))
}

func TestRoundSchedule(t *testing.T) {
	f := testField(t)
	p := NewParams(f)

	require.Equal(t, 64, p.Rounds())
	nbFull := 0
	for r := 0; r < p.Rounds(); r++ {
		if p.IsFullRound(r) {
			nbFull++
		}
	}
	require.Equal(t, 8, nbFull)
	require.True(t, p.IsFullRound(0))
	require.True(t, p.IsFullRound(3))
	require.False(t, p.IsFullRound(4))
	require.False(t, p.IsFullRound(59))
	require.True(t, p.IsFullRound(60))
	require.True(t, p.IsFullRound(63))
}

// permutation circuit: lay out one permutation, assign a known input,
// check all gates hold and the trace ends at the reference output.
func permutationSystem(t *testing.T, f field.Field, p *Params) (*builder.ConstraintSystem, *Chip, int) {
	t.Helper()
	cs := builder.NewConstraintSystem(f, 128)
	chip := Configure(cs, p)
	endRow, err := chip.Layout(cs, 0)
	require.NoError(t, err)
	require.Equal(t, p.Rounds(), endRow)
	return cs, chip, endRow
}

func TestPermutationCircuitSatisfied(t *testing.T) {
	f := testField(t)
	p := NewParams(f)
	cs, chip, endRow := permutationSystem(t, f, p)

	w := cs.NewWitness()
	out, err := chip.Assign(w, 0, elems(f, 1, 2, 3))
	require.NoError(t, err)
	require.True(t, checker.IsSatisfied(cs, w, nil))

	require.Equal(t, p.Permute(elems(f, 1, 2, 3)), out)
	for i := 0; i < Width; i++ {
		require.Equal(t, out[i], w.Advice(chip.State[i].ID, endRow))
	}
}

func TestPermutationCircuitRejectsTamperedTrace(t *testing.T) {
	f := testField(t)
	p := NewParams(f)
	cs, chip, _ := permutationSystem(t, f, p)

	w := cs.NewWitness()
	_, err := chip.Assign(w, 0, elems(f, 1, 2, 3))
	require.NoError(t, err)

	// fresh witness with one mid-trace cell flipped
	tampered := cs.NewWitness()
	for _, col := range chip.State {
		for row := 0; row <= p.Rounds(); row++ {
			v := w.Advice(col.ID, row)
			if col.ID == chip.State[1].ID && row == 17 {
				v = f.Add(v, f.One())
			}
			require.NoError(t, tampered.SetAdvice(col, row, v))
		}
	}
	violations, err := checker.Violations(cs, tampered, nil)
	require.NoError(t, err)
	require.NotEmpty(t, violations)
	// the bad cell breaks the round writing row 17 and the one reading it
	require.Equal(t, 16, violations[0].Row)
}

func TestHashCircuitSatisfied(t *testing.T) {
	f := testField(t)
	p := NewParams(f)

	for _, n := range []int{0, 1, 2, 3, 5} {
		h, err := NewHashCircuit(f, p, n)
		require.NoError(t, err)

		msg := make([]constraint.Element, n)
		for i := range msg {
			msg[i] = f.FromInterface(i + 11)
		}
		w, public, err := h.Assign(msg)
		require.NoError(t, err)
		require.Equal(t, []constraint.Element{p.Hash(msg)}, public)
		require.NoError(t, checker.Check(h.System(), w, public))
	}
}

func TestHashCircuitRejectsWrongDigest(t *testing.T) {
	f := testField(t)
	p := NewParams(f)

	h, err := NewHashCircuit(f, p, 2)
	require.NoError(t, err)
	w, public, err := h.Assign(elems(f, 4, 9))
	require.NoError(t, err)

	public[0] = f.Add(public[0], f.One())
	err = checker.Check(h.System(), w, public)
	require.Error(t, err)
	var cu *checker.ConstraintUnsatisfied
	require.ErrorAs(t, err, &cu)
	require.Equal(t, "instance-equality", cu.Gate)
}

func TestHashCircuitInputLength(t *testing.T) {
	f := testField(t)
	p := NewParams(f)

	h, err := NewHashCircuit(f, p, 3)
	require.NoError(t, err)
	_, _, err = h.Assign(elems(f, 1, 2))
	require.ErrorIs(t, err, ErrInputLength)
}

func TestHashCircuitDeterministicShape(t *testing.T) {
	f := testField(t)
	p := NewParams(f)

	a, err := NewHashCircuit(f, p, 4)
	require.NoError(t, err)
	b, err := NewHashCircuit(f, p, 4)
	require.NoError(t, err)
	require.Equal(t, a.System().Fingerprint(), b.System().Fingerprint())
}

func TestLayoutOverflow(t *testing.T) {
	f := testField(t)
	p := NewParams(f)

	cs := builder.NewConstraintSystem(f, 32)
	chip := Configure(cs, p)
	_, err := chip.Layout(cs, 0)
	require.ErrorIs(t, err, builder.ErrLayoutOverflow)
}
