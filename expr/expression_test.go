package expr

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/constraint"
	"github.com/stretchr/testify/require"

	"github.com/LKY-stephen/circuit-experiments/field"
)

func testField() field.Field {
	return field.GetFieldFromOrder(ecc.BN254.ScalarField())
}

func TestAddMergesSameCell(t *testing.T) {
	f := testField()
	a := NewQuery(0, 0, f.FromInterface(2))
	b := NewQuery(0, 0, f.FromInterface(3))

	sum := Add(f, a, b)
	require.Len(t, sum, 1)
	require.Equal(t, f.FromInterface(5), sum[0].Coeff)
}

func TestSubCancelsToEmpty(t *testing.T) {
	f := testField()
	a := NewQuery(1, -1, f.FromInterface(7))

	diff := Sub(f, a, a.Clone())
	require.Empty(t, diff, "x - x must normalize to the zero expression")
	v := diff.Evaluate(f, nil)
	require.True(t, v.IsZero())
}

func TestScaleByZeroIsZero(t *testing.T) {
	f := testField()
	e := Add(f, NewQuery(0, 0, f.One()), NewConstant(f.FromInterface(9)))
	require.Empty(t, Scale(f, e, constraint.Element{}))
}

func TestMulDegreeAndCrossTerms(t *testing.T) {
	f := testField()
	one := f.One()
	// (a + b)^2 = a^2 + 2ab + b^2
	a := NewQuery(0, 0, one)
	b := NewQuery(1, 0, one)
	sq := Mul(f, Add(f, a, b), Add(f, a, b))

	require.Equal(t, 2, sq.Degree())
	require.Len(t, sq, 3)
	for _, term := range sq {
		if len(term.Queries) == 2 && term.Queries[0] != term.Queries[1] {
			require.Equal(t, f.FromInterface(2), term.Coeff)
		}
	}
}

func TestMulByConstantKeepsDegree(t *testing.T) {
	f := testField()
	e := NewQuery(2, 1, f.FromInterface(3))
	out := Mul(f, e, NewConstant(f.FromInterface(4)))
	require.Equal(t, 1, out.Degree())
	require.Equal(t, f.FromInterface(12), out[0].Coeff)
}

func TestEvaluate(t *testing.T) {
	f := testField()
	one := f.One()
	// 2*c0 + c0*c1 - 5
	e := Sub(f,
		Add(f,
			Scale(f, NewQuery(0, 0, one), f.FromInterface(2)),
			Mul(f, NewQuery(0, 0, one), NewQuery(1, 0, one)),
		),
		NewConstant(f.FromInterface(5)),
	)
	at := func(q Query) constraint.Element {
		if q.Column == 0 {
			return f.FromInterface(3)
		}
		return f.FromInterface(4)
	}
	// 6 + 12 - 5 = 13
	require.Equal(t, f.FromInterface(13), e.Evaluate(f, at))
}

func TestQueriesDistinctAndRotationsMatter(t *testing.T) {
	f := testField()
	one := f.One()
	e := Add(f,
		Add(f, NewQuery(0, 0, one), NewQuery(0, 1, one)),
		Mul(f, NewQuery(0, 0, one), NewQuery(1, -1, one)),
	)
	qs := e.Queries()
	require.ElementsMatch(t, []Query{{0, 0}, {0, 1}, {1, -1}}, qs)
}

func TestNormalFormIsOrderIndependent(t *testing.T) {
	f := testField()
	one := f.One()
	a := NewQuery(0, 0, one)
	b := NewQuery(1, 0, one)
	c := NewConstant(f.FromInterface(3))

	x := Add(f, Add(f, a, b), c)
	y := Add(f, c, Add(f, b, a))
	require.True(t, x.Equal(y))
	require.Equal(t, x.HashCode(), y.HashCode())
}

func TestMulCommutes(t *testing.T) {
	f := testField()
	one := f.One()
	a := Add(f, NewQuery(0, 0, one), NewConstant(f.FromInterface(2)))
	b := Add(f, NewQuery(1, 2, one), NewQuery(0, 0, f.FromInterface(3)))
	require.True(t, Mul(f, a, b).Equal(Mul(f, b, a)))
}

func TestConstantDegreeZero(t *testing.T) {
	f := testField()
	c := NewConstant(f.FromInterface(11))
	require.Equal(t, 0, c.Degree())
	require.Empty(t, c.Queries())
	require.Equal(t, f.FromInterface(11), c.Evaluate(f, nil))
}
