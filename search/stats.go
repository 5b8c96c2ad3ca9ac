package search

import (
	"context"

	"github.com/pkg/errors"

	"github.com/katalvlaran/foliar/orient"
	"github.com/katalvlaran/foliar/taut"
	"github.com/katalvlaran/foliar/triangulation"
)

// Statistics summarizes the cycle-free orientations of a triangulation.
// Applicable is false, and the rest is empty, unless the triangulation has
// one vertex with a sphere link.
type Statistics struct {
	Applicable   bool         `yaml:"applicable"`
	Orientations int          `yaml:"orientations"`
	Sutures      map[int]int  `yaml:"sutures"`
	SuperLong    map[int]int  `yaml:"super_long"`
	Foliation    map[bool]int `yaml:"foliation"`
}

// Stats enumerates every orientation of tri and counts how many have each
// number of sutures, each number of super-long edge classes, and how many
// give a foliation.
func Stats(ctx context.Context, tri *triangulation.Triangulation, opts ...orient.Option) (Statistics, error) {
	if tri == nil {
		return Statistics{}, errors.New("search: nil triangulation")
	}
	if !oneVertexSphere(tri) {
		return Statistics{}, nil
	}
	all, err := orient.Collect(ctx, tri, opts...)
	if err != nil {
		return Statistics{}, errors.Wrap(err, "enumerating orientations")
	}

	st := Statistics{
		Applicable:   true,
		Orientations: len(all),
		Sutures:      make(map[int]int),
		SuperLong:    make(map[int]int),
		Foliation:    make(map[bool]int),
	}
	for _, signs := range all {
		o, err := taut.NewClosed(tri, signs)
		if err != nil {
			return Statistics{}, errors.Wrap(err, "analyzing orientation")
		}
		n, err := o.NumSutures()
		if err != nil {
			return Statistics{}, errors.Wrap(err, "counting sutures")
		}
		ok, err := o.GivesFoliation()
		if err != nil {
			return Statistics{}, errors.Wrap(err, "checking tautness")
		}
		st.Sutures[n]++
		st.SuperLong[len(o.SuperLongEdges())]++
		st.Foliation[ok]++
	}

	return st, nil
}
