package orient

import (
	"context"
	"fmt"

	"github.com/katalvlaran/foliar/triangulation"
)

// Enumerator draws cycle-free edge orientations one at a time. It owns its
// backend; once Next reports ok=false it stays exhausted.
type Enumerator struct {
	tri     *triangulation.Triangulation
	backend Backend
	opts    Options

	numVars int
	drawn   int
	done    bool
	err     error
}

// NewEnumerator encodes tri and loads the clauses into a fresh backend.
func NewEnumerator(tri *triangulation.Triangulation, opts ...Option) (*Enumerator, error) {
	if tri == nil {
		return nil, ErrNilTriangulation
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	b, err := NewBackend(o.Backend, tri.NumEdges())
	if err != nil {
		return nil, err
	}

	return newEnumerator(tri, b, o), nil
}

// NewEnumeratorWithBackend is NewEnumerator over a caller-supplied backend.
// The backend must be fresh; the Backend option is ignored.
func NewEnumeratorWithBackend(tri *triangulation.Triangulation, b Backend, opts ...Option) (*Enumerator, error) {
	if tri == nil {
		return nil, ErrNilTriangulation
	}
	if b == nil {
		return nil, fmt.Errorf("%w: nil backend", ErrOptionViolation)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return newEnumerator(tri, b, o), nil
}

func newEnumerator(tri *triangulation.Triangulation, b Backend, o Options) *Enumerator {
	e := &Enumerator{tri: tri, backend: b, opts: o, numVars: tri.NumEdges()}
	for _, c := range Clauses(tri) {
		if lits, ok := normalize(c); ok {
			b.AddClause(lits)
		}
	}
	if o.SymmetryBreak {
		b.AddClause([]int{1})
	}

	return e
}

// Next returns the next orientation as ±1 per edge class. ok is false once
// the backend reports unsatisfiable or the limit is reached. A backend error
// is sticky.
func (e *Enumerator) Next() (signs []int, ok bool, err error) {
	if e.err != nil {
		return nil, false, e.err
	}
	if e.done {
		return nil, false, nil
	}
	if e.opts.Limit > 0 && e.drawn >= e.opts.Limit {
		e.done = true
		return nil, false, nil
	}

	sat, err := e.backend.Solve()
	if err != nil {
		e.err = err
		return nil, false, err
	}
	if !sat {
		e.done = true
		return nil, false, nil
	}

	signs = make([]int, e.numVars)
	block := make([]int, e.numVars)
	for v := 1; v <= e.numVars; v++ {
		if e.backend.Value(v) {
			signs[v-1] = 1
			block[v-1] = -v
		} else {
			signs[v-1] = -1
			block[v-1] = v
		}
	}
	e.backend.AddClause(block)
	e.drawn++

	return signs, true, nil
}

// All drains the enumerator. It returns ErrExhausted if the enumerator was
// already drained before the call. ctx is checked between draws.
func (e *Enumerator) All(ctx context.Context) ([][]int, error) {
	if e.done {
		return nil, ErrExhausted
	}
	var out [][]int
	for {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		signs, ok, err := e.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, signs)
	}
}

// Drawn returns how many orientations Next has produced.
func (e *Enumerator) Drawn() int { return e.drawn }

// Collect builds an enumerator for tri and drains it.
func Collect(ctx context.Context, tri *triangulation.Triangulation, opts ...Option) ([][]int, error) {
	e, err := NewEnumerator(tri, opts...)
	if err != nil {
		return nil, err
	}

	return e.All(ctx)
}
