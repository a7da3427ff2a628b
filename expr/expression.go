// Package expr implements the polynomial identities enforced by gates,
// based on gnark `frontend/internal/expr` expressions.
//
// An Expression is a sum of terms over table cells; each term is a
// coefficient times a product of cell queries. Gates hold expressions that
// must evaluate to zero on every row where their selector is active.
package expr

import (
	"sort"
	"strconv"
	"strings"

	"github.com/consensys/gnark/constraint"
)

type Expression []Term

// NewConstant returns c
func NewConstant(c constraint.Element) Expression {
	return Expression{NewTerm(nil, c)}
}

// NewQuery returns c * cell(column, rotation)
func NewQuery(column, rotation int, c constraint.Element) Expression {
	return Expression{NewTerm([]Query{{Column: column, Rotation: rotation}}, c)}
}

func (e Expression) Clone() Expression {
	res := make(Expression, len(e))
	copy(res, e)
	return res
}

// Len return the length of the Expression (implements Sort interface)
func (e Expression) Len() int {
	return len(e)
}

// Swap swaps terms in the Expression (implements Sort interface)
func (e Expression) Swap(i, j int) {
	e[i], e[j] = e[j], e[i]
}

// Less orders terms by their query lists (implements Sort interface)
func (e Expression) Less(i, j int) bool {
	return compareQueries(e[i].Queries, e[j].Queries) < 0
}

// Equal returns true if both NORMALIZED expressions are the same
func (e Expression) Equal(o Expression) bool {
	if len(e) != len(o) {
		return false
	}
	for i := range e {
		if e[i].Coeff != o[i].Coeff || !sameQueries(e[i].Queries, o[i].Queries) {
			return false
		}
	}
	return true
}

// HashCode returns a fast-to-compute but NOT collision resistant hash code
// identifier for the expression
//
// requires normalized
func (e Expression) HashCode() uint64 {
	h := uint64(17)
	for _, t := range e {
		h = h*23 + t.HashCode()
	}
	return h
}

// Degree returns the degree of the polynomial
func (e Expression) Degree() int {
	res := 0
	for _, t := range e {
		if t.Degree() > res {
			res = t.Degree()
		}
	}
	return res
}

// Queries returns the distinct cells the expression reads.
func (e Expression) Queries() []Query {
	var res []Query
	seen := make(map[Query]bool)
	for _, t := range e {
		for _, q := range t.Queries {
			if !seen[q] {
				seen[q] = true
				res = append(res, q)
			}
		}
	}
	sortQueries(res)
	return res
}

// Add returns a+b in normalized form.
func Add(f constraint.Field, a, b Expression) Expression {
	res := make(Expression, 0, len(a)+len(b))
	res = append(res, a...)
	res = append(res, b...)
	return normalize(f, res)
}

// Sub returns a-b in normalized form.
func Sub(f constraint.Field, a, b Expression) Expression {
	return Add(f, a, Neg(f, b))
}

// Neg returns -a.
func Neg(f constraint.Field, a Expression) Expression {
	res := a.Clone()
	for i := range res {
		res[i].Coeff = f.Neg(res[i].Coeff)
	}
	return res
}

// Scale returns c*a in normalized form.
func Scale(f constraint.Field, a Expression, c constraint.Element) Expression {
	res := a.Clone()
	for i := range res {
		res[i].Coeff = f.Mul(res[i].Coeff, c)
	}
	return normalize(f, res)
}

// Mul returns a*b in normalized form.
func Mul(f constraint.Field, a, b Expression) Expression {
	res := make(Expression, 0, len(a)*len(b))
	for _, ta := range a {
		for _, tb := range b {
			qs := make([]Query, 0, len(ta.Queries)+len(tb.Queries))
			qs = append(qs, ta.Queries...)
			qs = append(qs, tb.Queries...)
			res = append(res, NewTerm(qs, f.Mul(ta.Coeff, tb.Coeff)))
		}
	}
	return normalize(f, res)
}

// normalize sorts terms, merges terms with identical query lists and drops
// zero coefficients. A zero polynomial normalizes to the empty expression.
func normalize(f constraint.Field, e Expression) Expression {
	sort.Sort(e)
	res := make(Expression, 0, len(e))
	for _, t := range e {
		if n := len(res); n > 0 && sameQueries(res[n-1].Queries, t.Queries) {
			res[n-1].Coeff = f.Add(res[n-1].Coeff, t.Coeff)
			continue
		}
		res = append(res, t)
	}
	out := res[:0]
	for _, t := range res {
		if !t.Coeff.IsZero() {
			out = append(out, t)
		}
	}
	return out
}

// CellValue resolves a query to the value of the addressed cell on the row
// an expression is being evaluated at.
type CellValue func(q Query) constraint.Element

// Evaluate computes the expression over the given cell values.
func (e Expression) Evaluate(f constraint.Field, at CellValue) constraint.Element {
	res := constraint.Element{}
	for _, t := range e {
		v := t.Coeff
		for _, q := range t.Queries {
			v = f.Mul(v, at(q))
		}
		res = f.Add(res, v)
	}
	return res
}

// String renders the expression for diagnostics, e.g. "2*c1[0]*c1[0] + c2[1]".
func (e Expression) String(f constraint.Field) string {
	if len(e) == 0 {
		return "0"
	}
	parts := make([]string, len(e))
	for i, t := range e {
		var b strings.Builder
		b.WriteString(f.String(t.Coeff))
		for _, q := range t.Queries {
			b.WriteString("*c")
			b.WriteString(strconv.Itoa(q.Column))
			b.WriteString("[")
			b.WriteString(strconv.Itoa(q.Rotation))
			b.WriteString("]")
		}
		parts[i] = b.String()
	}
	return strings.Join(parts, " + ")
}
