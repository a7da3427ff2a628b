package bn254

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestBasics(t *testing.T) {
	var f Field
	one := f.One()
	require.True(t, f.IsOne(one))
	require.False(t, f.IsOne(f.FromInterface(2)))
	zero := f.FromInterface(0)
	require.True(t, zero.IsZero())

	v, ok := f.Uint64(f.FromInterface(42))
	require.True(t, ok)
	require.Equal(t, uint64(42), v)
}

func TestFromInterfaceReduces(t *testing.T) {
	var f Field
	overflow := new(big.Int).Add(f.Field(), big.NewInt(3))
	require.Equal(t, f.FromInterface(3), f.FromInterface(overflow))
}

func TestInverseOfZero(t *testing.T) {
	var f Field
	_, ok := f.Inverse(f.FromInterface(0))
	require.False(t, ok, "zero has no inverse")
}

func TestToBigIntRoundTrip(t *testing.T) {
	var f Field
	x := f.FromInterface("21888242871839275222246405745257275088548364400416034343698204186575808495616")
	require.Equal(t, f.FromInterface(f.ToBigInt(x)), x)
}

func TestFieldProperties(t *testing.T) {
	var f Field
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("addition commutes", prop.ForAll(
		func(a, b uint64) bool {
			x, y := f.FromInterface(a), f.FromInterface(b)
			return f.Add(x, y) == f.Add(y, x)
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.Property("multiplication distributes over addition", prop.ForAll(
		func(a, b, c uint64) bool {
			x, y, z := f.FromInterface(a), f.FromInterface(b), f.FromInterface(c)
			return f.Mul(x, f.Add(y, z)) == f.Add(f.Mul(x, y), f.Mul(x, z))
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64(),
	))

	properties.Property("a * a^-1 = 1", prop.ForAll(
		func(a uint64) bool {
			x := f.FromInterface(a)
			if x.IsZero() {
				return true
			}
			inv, ok := f.Inverse(x)
			return ok && f.IsOne(f.Mul(x, inv))
		},
		gen.UInt64(),
	))

	properties.Property("a - a = 0 and -(-a) = a", prop.ForAll(
		func(a uint64) bool {
			x := f.FromInterface(a)
			diff := f.Sub(x, x)
			return diff.IsZero() && f.Neg(f.Neg(x)) == x
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}
