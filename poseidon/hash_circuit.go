package poseidon

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/logger"

	"github.com/LKY-stephen/circuit-experiments/builder"
	"github.com/LKY-stephen/circuit-experiments/expr"
	"github.com/LKY-stephen/circuit-experiments/field"
	"github.com/LKY-stephen/circuit-experiments/utils"
)

// ErrInputLength is returned when a hash circuit built for n inputs is
// assigned a message of a different length.
var ErrInputLength = errors.New("poseidon: message length does not match circuit")

// HashCircuit proves knowledge of a fixed-length message whose sponge
// hash equals a public digest.
//
// Layout: row 0 carries the initial state, pinned to (0, 0, capacity)
// by the init gate. Each padded chunk then takes an absorb row holding
// the chunk in the first Rate state cells, followed by a full
// permutation region. The absorb gate adds the chunk into the previous
// state and writes the sum on the next row, which doubles as the
// permutation's input row. The final output row's first lane is
// constrained to the digest instance slot.
type HashCircuit struct {
	cs     *builder.ConstraintSystem
	chip   *Chip
	params *Params

	nbInputs int
	nbChunks int
	rows     int

	digestSlot int
}

// NewHashCircuit builds the sponge circuit for messages of exactly
// nbInputs field elements.
func NewHashCircuit(f field.Field, params *Params, nbInputs int) (*HashCircuit, error) {
	if nbInputs < 0 {
		return nil, fmt.Errorf("poseidon: negative message length %d", nbInputs)
	}
	nbChunks := (nbInputs + 1 + Rate - 1) / Rate
	rows := 1 + nbChunks*(params.Rounds()+2)

	cs := builder.NewConstraintSystem(f, utils.NextPowerOfTwo(rows))
	chip := Configure(cs, params)
	h := &HashCircuit{
		cs:       cs,
		chip:     chip,
		params:   params,
		nbInputs: nbInputs,
		nbChunks: nbChunks,
		rows:     rows,
	}

	one := f.One()
	sInit := cs.AddSelector("sponge-init")
	initPolys := []expr.Expression{
		expr.NewQuery(chip.State[0].ID, 0, one),
		expr.NewQuery(chip.State[1].ID, 0, one),
		expr.Sub(f,
			expr.NewQuery(chip.State[2].ID, 0, one),
			expr.NewConstant(params.spongeCapacity),
		),
	}
	cs.AddGate("sponge-init", sInit, initPolys...)

	// next_i = prev_i + chunk_i on the rate lanes, capacity carried over
	sAbsorb := cs.AddSelector("sponge-absorb")
	var absorbPolys []expr.Expression
	for i := 0; i < Width; i++ {
		sum := expr.NewQuery(chip.State[i].ID, -1, one)
		if i < Rate {
			sum = expr.Add(f, sum, expr.NewQuery(chip.State[i].ID, 0, one))
		}
		absorbPolys = append(absorbPolys, expr.Sub(f, expr.NewQuery(chip.State[i].ID, 1, one), sum))
	}
	cs.AddGate("sponge-absorb", sAbsorb, absorbPolys...)

	if err := cs.EnableSelector(sInit, 0); err != nil {
		return nil, err
	}
	for k := 0; k < nbChunks; k++ {
		absorbRow := 1 + k*(params.Rounds()+2)
		if err := cs.EnableSelector(sAbsorb, absorbRow); err != nil {
			return nil, err
		}
		if _, err := chip.Layout(cs, absorbRow+1); err != nil {
			return nil, err
		}
	}

	h.digestSlot = cs.AddInstanceSlot("digest")
	if err := cs.ConstrainInstance(chip.State[0], rows-1, h.digestSlot); err != nil {
		return nil, err
	}

	log := logger.Logger()
	log.Debug().Int("inputs", nbInputs).Int("chunks", nbChunks).
		Int("rows", rows).Int("height", cs.Height()).Msg("built poseidon hash circuit")
	return h, nil
}

// System exposes the underlying constraint table.
func (h *HashCircuit) System() *builder.ConstraintSystem { return h.cs }

// Rows is the number of used rows; the table height is the next power
// of two.
func (h *HashCircuit) Rows() int { return h.rows }

// DigestSlot is the public-input slot holding the digest.
func (h *HashCircuit) DigestSlot() int { return h.digestSlot }

// Assign fills a witness with the sponge trace for msg and returns it
// together with the public-input vector, which holds the digest. The
// digest always equals Hash(msg).
func (h *HashCircuit) Assign(msg []constraint.Element) (*builder.Witness, []constraint.Element, error) {
	if len(msg) != h.nbInputs {
		return nil, nil, fmt.Errorf("%w: got %d elements, circuit takes %d", ErrInputLength, len(msg), h.nbInputs)
	}
	f := h.cs.Field()
	w := h.cs.NewWitness()

	state := []constraint.Element{{}, {}, h.params.spongeCapacity}
	if err := h.chip.writeState(w, 0, state); err != nil {
		return nil, nil, err
	}
	for k, chunk := range h.params.padChunks(msg) {
		absorbRow := 1 + k*(h.params.Rounds()+2)
		for i := 0; i < Rate; i++ {
			if err := w.SetAdvice(h.chip.State[i], absorbRow, chunk[i]); err != nil {
				return nil, nil, err
			}
		}
		next := make([]constraint.Element, Width)
		for i := 0; i < Width; i++ {
			next[i] = state[i]
			if i < Rate {
				next[i] = f.Add(state[i], chunk[i])
			}
		}
		var err error
		state, err = h.chip.Assign(w, absorbRow+1, next)
		if err != nil {
			return nil, nil, err
		}
	}
	return w, []constraint.Element{state[0]}, nil
}
