package orient_test

import (
	"context"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/foliar/isosig"
	"github.com/katalvlaran/foliar/orient"
	"github.com/katalvlaran/foliar/triangulation"
)

func decode(t *testing.T, sig string) *triangulation.Triangulation {
	t.Helper()
	tr, err := isosig.Decode(sig)
	require.NoError(t, err)

	return tr
}

func key(signs []int) string {
	b := make([]byte, len(signs))
	for i, s := range signs {
		if s > 0 {
			b[i] = '+'
		} else {
			b[i] = '-'
		}
	}

	return string(b)
}

func keys(all [][]int) []string {
	out := make([]string, len(all))
	for i, s := range all {
		out[i] = key(s)
	}
	sort.Strings(out)

	return out
}

func TestClauses(t *testing.T) {
	tr := decode(t, "cPcbbbiht")
	cls := orient.Clauses(tr)
	require.Len(t, cls, 4*tr.Size())
	for _, c := range cls {
		require.Len(t, c, 3)
		for _, l := range c {
			assert.NotZero(t, l)
			if l < 0 {
				l = -l
			}
			assert.LessOrEqual(t, l, tr.NumEdges())
		}
	}
}

func TestCollect_Counts(t *testing.T) {
	tests := []struct {
		sig  string
		want int
	}{
		{"jLvMLQQbfefgihhiixiptvvvgof", 0},
		{"jLvLQAQbffghghiiieuaiikktuu", 10},
		{"jLLvQPQcdfhghigiihshhgfifme", 8},
		{"jLLvMQQcdfigihghihsafroggnw", 12},
		{"oLLvLMLPQQcacgikmkimjlnnnmnkjaaagnnnwkwkw", 11},
		{"cPcbbbiht", 2},
		{"cPcbbbdxm", 0},
		{"dLQacccjsnk", 0},
		{"dLQbccchhsj", 0},
	}
	ctx := context.Background()
	for _, tc := range tests {
		t.Run(tc.sig, func(t *testing.T) {
			tr := decode(t, tc.sig)
			all, err := orient.Collect(ctx, tr)
			require.NoError(t, err)
			assert.Len(t, all, tc.want)
			for _, s := range all {
				assert.Equal(t, 1, s[0], "edge class 0 is fixed positive")
				assert.True(t, orient.CycleFree(tr, s))
			}

			free, err := orient.Collect(ctx, tr, orient.WithoutSymmetryBreak())
			require.NoError(t, err)
			assert.Len(t, free, 2*tc.want)
		})
	}
}

func TestCollect_Fig8(t *testing.T) {
	tr := decode(t, "cPcbbbiht")
	all, err := orient.Collect(context.Background(), tr)
	require.NoError(t, err)
	assert.Equal(t, []string{"++", "+-"}, keys(all))
}

func TestBackends_SameSet(t *testing.T) {
	ctx := context.Background()
	for _, sig := range []string{"jLvLQAQbffghghiiieuaiikktuu", "jLLvQPQcdfhghigiihshhgfifme", "dLQbcccdero"} {
		tr := decode(t, sig)
		a, err := orient.Collect(ctx, tr, orient.WithBackend(orient.Gophersat))
		require.NoError(t, err)
		b, err := orient.Collect(ctx, tr, orient.WithBackend(orient.Gini))
		require.NoError(t, err)
		if diff := cmp.Diff(keys(a), keys(b)); diff != "" {
			t.Errorf("%s: backends disagree (-gophersat +gini):\n%s", sig, diff)
		}
	}
}

func TestEnumerator_NoDuplicatesAndNegation(t *testing.T) {
	tr := decode(t, "jLLvQPQcdfhghigiihshhgfifme")
	all, err := orient.Collect(context.Background(), tr, orient.WithoutSymmetryBreak())
	require.NoError(t, err)
	set := make(map[string]bool, len(all))
	for _, s := range all {
		k := key(s)
		require.False(t, set[k], "duplicate orientation %s", k)
		set[k] = true
	}
	for _, s := range all {
		neg := make([]int, len(s))
		for i, x := range s {
			neg[i] = -x
		}
		assert.True(t, set[key(neg)])
	}
}

func TestEnumerator_LimitAndExhaustion(t *testing.T) {
	tr := decode(t, "jLvLQAQbffghghiiieuaiikktuu")
	e, err := orient.NewEnumerator(tr, orient.WithLimit(3))
	require.NoError(t, err)
	all, err := e.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, 3, e.Drawn())

	_, ok, err := e.Next()
	require.NoError(t, err)
	assert.False(t, ok)
	_, err = e.All(context.Background())
	assert.ErrorIs(t, err, orient.ErrExhausted)
}

func TestEnumerator_Idempotent(t *testing.T) {
	tr := decode(t, "jLLvMQQcdfigihghihsafroggnw")
	ctx := context.Background()
	a, err := orient.Collect(ctx, tr)
	require.NoError(t, err)
	b, err := orient.Collect(ctx, tr)
	require.NoError(t, err)
	assert.Equal(t, keys(a), keys(b))
}

func TestEnumerator_Options(t *testing.T) {
	tr := decode(t, "cPcbbbiht")
	_, err := orient.NewEnumerator(nil)
	assert.ErrorIs(t, err, orient.ErrNilTriangulation)
	_, err = orient.NewEnumerator(tr, orient.WithLimit(-1))
	assert.ErrorIs(t, err, orient.ErrOptionViolation)
	_, err = orient.NewEnumerator(tr, orient.WithBackend("minisat"))
	assert.ErrorIs(t, err, orient.ErrUnknownBackend)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = orient.Collect(ctx, tr)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCycleFree(t *testing.T) {
	tr := decode(t, "cPcbbbiht")
	assert.True(t, orient.CycleFree(tr, []int{1, 1}))
	assert.True(t, orient.CycleFree(tr, []int{-1, 1}))
	assert.False(t, orient.CycleFree(tr, []int{1}))
	assert.False(t, orient.CycleFree(tr, []int{1, 0}))
	assert.False(t, orient.CycleFree(nil, []int{1, 1}))
}

// countingBackend wraps a real backend and records the traffic it sees.
type countingBackend struct {
	orient.Backend
	clauses [][]int
	solves  int
}

func (b *countingBackend) AddClause(lits []int) {
	b.clauses = append(b.clauses, append([]int(nil), lits...))
	b.Backend.AddClause(lits)
}

func (b *countingBackend) Solve() (bool, error) {
	b.solves++
	return b.Backend.Solve()
}

func TestNewEnumeratorWithBackend(t *testing.T) {
	tr := decode(t, "jLLvQPQcdfhghigiihshhgfifme")
	inner, err := orient.NewBackend(orient.Gini, tr.NumEdges())
	require.NoError(t, err)
	b := &countingBackend{Backend: inner}

	en, err := orient.NewEnumeratorWithBackend(tr, b, orient.WithBackend("ignored"))
	require.NoError(t, err)
	loaded := len(b.clauses)
	assert.Equal(t, []int{1}, b.clauses[loaded-1])

	all, err := en.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 8)
	assert.Equal(t, 9, b.solves)
	assert.Len(t, b.clauses, loaded+8)
	for _, c := range b.clauses[loaded:] {
		assert.Len(t, c, tr.NumEdges())
	}

	want, err := orient.Collect(context.Background(), tr)
	require.NoError(t, err)
	if diff := cmp.Diff(keys(want), keys(all)); diff != "" {
		t.Errorf("custom backend disagrees (-want +got):\n%s", diff)
	}

	_, err = orient.NewEnumeratorWithBackend(tr, nil)
	assert.ErrorIs(t, err, orient.ErrOptionViolation)
	_, err = orient.NewEnumeratorWithBackend(nil, b)
	assert.ErrorIs(t, err, orient.ErrNilTriangulation)
	_, err = orient.NewEnumeratorWithBackend(tr, b, orient.WithLimit(-1))
	assert.ErrorIs(t, err, orient.ErrOptionViolation)
}
