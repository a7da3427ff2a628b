package expr

// similar to gnark frontend/internal/expr/term, but variables are table cells
// addressed by column and row rotation, and terms may have arbitrary degree

import "github.com/consensys/gnark/constraint"

// Query addresses one cell relative to the row a gate is evaluated on.
type Query struct {
	// Column is the column id assigned by the constraint system.
	Column int
	// Rotation is the row offset: 0 is the current row, 1 the next, -1 the
	// previous.
	Rotation int
}

// Term is Coeff times the product of the queried cells. Queries are kept
// sorted; repeated queries express powers. An empty query list is a constant.
type Term struct {
	Queries []Query
	Coeff   constraint.Element
}

func NewTerm(queries []Query, coeff constraint.Element) Term {
	q := make([]Query, len(queries))
	copy(q, queries)
	sortQueries(q)
	return Term{Queries: q, Coeff: coeff}
}

func (t *Term) SetCoeff(c constraint.Element) {
	t.Coeff = c
}

func (t Term) Degree() int {
	return len(t.Queries)
}

func (t Term) HashCode() uint64 {
	x := t.Coeff[0] ^ t.Coeff[1] ^ t.Coeff[2] ^ t.Coeff[3] ^ t.Coeff[4] ^ t.Coeff[5]
	for _, q := range t.Queries {
		x ^= uint64(int64(q.Column))*998244353 + uint64(int64(q.Rotation))*1000000007
		x *= 1099511628211
	}
	return x
}

func sortQueries(qs []Query) {
	// insertion sort, query lists are tiny
	for i := 1; i < len(qs); i++ {
		for j := i; j > 0 && compareQuery(qs[j], qs[j-1]) < 0; j-- {
			qs[j], qs[j-1] = qs[j-1], qs[j]
		}
	}
}

func compareQuery(a, b Query) int {
	if a.Column != b.Column {
		if a.Column < b.Column {
			return -1
		}
		return 1
	}
	if a.Rotation != b.Rotation {
		if a.Rotation < b.Rotation {
			return -1
		}
		return 1
	}
	return 0
}

// compareQueries orders two sorted query lists lexicographically, shorter
// lists first on equal prefixes.
func compareQueries(a, b []Query) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := compareQuery(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

func sameQueries(a, b []Query) bool {
	return compareQueries(a, b) == 0
}
