package field

import (
	"fmt"
	"math/big"

	"github.com/LKY-stephen/circuit-experiments/field/bn254"
	"github.com/consensys/gnark/constraint"
)

// Field is the arithmetic engine every other package operates through.
// It extends the gnark coefficient engine with the field order.
type Field interface {
	constraint.Field
	Field() *big.Int
	FieldBitLen() int
}

func GetFieldFromOrder(x *big.Int) Field {
	if x.Cmp(bn254.ScalarField) == 0 {
		return &bn254.Field{}
	}
	panic(fmt.Sprintf("unknown field %v", x))
}
