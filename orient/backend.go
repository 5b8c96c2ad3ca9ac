package orient

import (
	"fmt"

	"github.com/crillab/gophersat/solver"
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// Backend is an incremental SAT solver over DIMACS-style integer literals.
// Clauses may be added between calls to Solve; Value reads the last model.
type Backend interface {
	// AddClause adds a disjunction of non-zero literals.
	AddClause(lits []int)

	// Solve reports whether the clauses added so far are satisfiable.
	Solve() (bool, error)

	// Value returns the assignment of variable v (1-based) in the last model.
	Value(v int) bool
}

// NewBackend returns a fresh backend by name for variables 1..numVars.
func NewBackend(name string, numVars int) (Backend, error) {
	switch name {
	case Gophersat, "":
		return &gophersatBackend{numVars: numVars}, nil
	case Gini:
		return &giniBackend{g: gini.NewV(numVars)}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// Backends lists the registered backend names.
func Backends() []string { return []string{Gophersat, Gini} }

// gophersatBackend buffers clauses until the first Solve, then parses them
// into a solver and appends later clauses incrementally. A trivially true
// constraint over every variable declares variables that no clause mentions.
type gophersatBackend struct {
	numVars int
	pending []solver.PBConstr
	s       *solver.Solver
	model   []bool
}

func (b *gophersatBackend) AddClause(lits []int) {
	if b.s == nil {
		b.pending = append(b.pending, solver.PropClause(append([]int(nil), lits...)...))
		return
	}
	ls := make([]solver.Lit, len(lits))
	for i, l := range lits {
		ls[i] = toLit(l)
	}
	b.s.AppendClause(solver.NewClause(ls))
}

// toLit converts a DIMACS literal to a gophersat Lit.
func toLit(l int) solver.Lit {
	if l < 0 {
		return solver.Var(-l - 1).Lit().Negation()
	}

	return solver.Var(l - 1).Lit()
}

func (b *gophersatBackend) Solve() (bool, error) {
	if b.s == nil {
		if len(b.pending) == 0 && b.numVars == 0 {
			return false, fmt.Errorf("%w: gophersat: empty problem", ErrBackend)
		}
		all := make([]int, b.numVars)
		for v := range all {
			all[v] = v + 1
		}
		constrs := append(b.pending, solver.AtLeast(all, 0))
		b.s = solver.New(solver.ParsePBConstrs(constrs))
		b.pending = nil
	}
	switch b.s.Solve() {
	case solver.Sat:
		b.model = b.s.Model()
		return true, nil
	case solver.Unsat:
		b.model = nil
		return false, nil
	}

	return false, fmt.Errorf("%w: gophersat returned an indeterminate status", ErrBackend)
}

func (b *gophersatBackend) Value(v int) bool {
	if v < 1 || v > len(b.model) {
		return false
	}

	return b.model[v-1]
}

type giniBackend struct {
	g *gini.Gini
}

func (b *giniBackend) AddClause(lits []int) {
	for _, l := range lits {
		b.g.Add(z.Dimacs2Lit(l))
	}
	b.g.Add(z.LitNull)
}

func (b *giniBackend) Solve() (bool, error) {
	switch b.g.Solve() {
	case 1:
		return true, nil
	case -1:
		return false, nil
	}

	return false, fmt.Errorf("%w: gini returned an indeterminate status", ErrBackend)
}

// Value reports false for a variable no clause has mentioned yet.
func (b *giniBackend) Value(v int) bool {
	if v < 1 || z.Var(v) > b.g.MaxVar() {
		return false
	}

	return b.g.Value(z.Dimacs2Lit(v))
}
