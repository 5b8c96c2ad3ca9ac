// Package search drives the analyzer over whole triangulations: it collects
// orientation statistics, looks for the first taut foliation among several
// triangulations of a manifold, lists every taut orientation with its Euler
// or slope label, and runs batches on a bounded worker pool.
//
// Unlike the library packages, search logs (through a logrus.FieldLogger)
// and counts (through prometheus counters).
package search

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/foliar/dual"
	"github.com/katalvlaran/foliar/isosig"
	"github.com/katalvlaran/foliar/orient"
	"github.com/katalvlaran/foliar/peripheral"
	"github.com/katalvlaran/foliar/taut"
	"github.com/katalvlaran/foliar/triangulation"
)

// ErrUnsupported is returned for a triangulation that is neither closed nor
// one-cusped.
var ErrUnsupported = errors.New("search: triangulation is neither closed nor one-cusped")

// Options configures a Runner.
type Options struct {
	// Backend names the SAT backend passed to orient.
	Backend string
	// Workers bounds the number of triangulations analyzed at once by Batch.
	Workers int
	// MaxOrientations, if > 0, caps the orientations drawn per triangulation.
	MaxOrientations int
	// MaxTriangulations, if > 0, caps the signatures FirstFoliation looks at.
	MaxTriangulations int
}

// Option configures a Runner via functional arguments.
type Option func(*Options)

// DefaultOptions returns the default backend, four workers and no caps.
func DefaultOptions() Options {
	return Options{Backend: orient.DefaultBackend, Workers: 4}
}

// WithBackend selects the SAT backend.
func WithBackend(name string) Option { return func(o *Options) { o.Backend = name } }

// WithWorkers sets the Batch worker count.
func WithWorkers(n int) Option { return func(o *Options) { o.Workers = n } }

// WithMaxOrientations caps the orientations drawn per triangulation.
func WithMaxOrientations(n int) Option { return func(o *Options) { o.MaxOrientations = n } }

// WithMaxTriangulations caps the triangulations FirstFoliation examines.
func WithMaxTriangulations(n int) Option { return func(o *Options) { o.MaxTriangulations = n } }

// Runner runs searches. It is safe for concurrent use.
type Runner struct {
	log     logrus.FieldLogger
	metrics *Metrics
	opts    Options
}

// NewRunner validates opts and returns a Runner. A nil log discards output
// and a nil metrics records nothing.
func NewRunner(log logrus.FieldLogger, metrics *Metrics, opts ...Option) (*Runner, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch {
	case o.Workers < 1:
		return nil, errors.Errorf("search: workers must be >= 1, got %d", o.Workers)
	case o.MaxOrientations < 0:
		return nil, errors.Errorf("search: max orientations must be >= 0, got %d", o.MaxOrientations)
	case o.MaxTriangulations < 0:
		return nil, errors.Errorf("search: max triangulations must be >= 0, got %d", o.MaxTriangulations)
	}
	if _, err := orient.NewBackend(o.Backend, 1); err != nil {
		return nil, errors.Wrapf(err, "search: backend %q", o.Backend)
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	return &Runner{log: log, metrics: metrics, opts: o}, nil
}

// Options returns the effective options.
func (r *Runner) Options() Options { return r.opts }

// TautOrientation is one taut orientation with its label: the Euler class
// verdict for a closed triangulation, the degeneracy slope for a cusped one.
type TautOrientation struct {
	Signs         []int             `yaml:"signs"`
	Kind          string            `yaml:"kind"`
	Sutures       int               `yaml:"sutures"`
	EulerVanishes *bool             `yaml:"euler_vanishes,omitempty"`
	Slope         *peripheral.Slope `yaml:"slope,omitempty"`
}

// each draws orientations of tri, up to MaxOrientations, and calls fn on
// each until fn returns stop. It returns the number drawn.
func (r *Runner) each(ctx context.Context, tri *triangulation.Triangulation, fn func(signs []int) (stop bool, err error)) (int, error) {
	en, err := orient.NewEnumerator(tri, orient.WithBackend(r.opts.Backend), orient.WithLimit(r.opts.MaxOrientations))
	if err != nil {
		return 0, errors.Wrap(err, "creating enumerator")
	}
	for {
		if err = ctx.Err(); err != nil {
			return en.Drawn(), err
		}
		signs, ok, err := en.Next()
		if err != nil {
			return en.Drawn(), errors.Wrap(err, "enumerating orientations")
		}
		if !ok {
			return en.Drawn(), nil
		}
		r.metrics.orientation()
		stop, err := fn(signs)
		if err != nil || stop {
			return en.Drawn(), err
		}
	}
}

// TautOrientations returns every taut orientation of tri, closed or
// one-cusped, in enumeration order.
func (r *Runner) TautOrientations(ctx context.Context, tri *triangulation.Triangulation) ([]TautOrientation, error) {
	out, _, err := r.tautOrientations(ctx, tri)
	return out, err
}

func (r *Runner) tautOrientations(ctx context.Context, tri *triangulation.Triangulation) ([]TautOrientation, int, error) {
	analyze, err := r.analyzer(tri)
	if err != nil {
		return nil, 0, err
	}
	var out []TautOrientation
	drawn, err := r.each(ctx, tri, func(signs []int) (bool, error) {
		o, err := analyze(signs)
		if err != nil {
			return false, err
		}
		item, ok, err := label(o)
		if err != nil || !ok {
			return false, err
		}
		r.metrics.tautOrientation()
		out = append(out, item)
		return false, nil
	})
	if err != nil {
		return nil, drawn, err
	}

	return out, drawn, nil
}

// analyzer picks the analysis variant for tri.
func (r *Runner) analyzer(tri *triangulation.Triangulation) (func([]int) (*taut.EdgeOrientation, error), error) {
	closed, err := tri.IsClosed()
	if err != nil {
		return nil, errors.Wrap(err, "reading vertex links")
	}
	if closed {
		return func(signs []int) (*taut.EdgeOrientation, error) {
			return taut.NewClosed(tri, signs)
		}, nil
	}

	cusped, err := tri.IsOneCusped()
	if err != nil {
		return nil, errors.Wrap(err, "reading vertex links")
	}
	if !cusped {
		return nil, ErrUnsupported
	}
	f, err := Framing(tri)
	if err != nil {
		return nil, err
	}

	return func(signs []int) (*taut.EdgeOrientation, error) {
		return taut.NewIdeal(tri, signs, f)
	}, nil
}

// Framing computes the peripheral framing of a one-cusped triangulation.
func Framing(tri *triangulation.Triangulation) (*peripheral.Framing, error) {
	link, err := tri.Link(0)
	if err != nil {
		return nil, errors.Wrap(err, "building cusp link")
	}
	c, err := dual.New(link)
	if err != nil {
		return nil, errors.Wrap(err, "building dual cellulation")
	}
	f, err := peripheral.Find(c)
	if err != nil {
		return nil, errors.Wrap(err, "finding peripheral framing")
	}

	return f, nil
}

// label returns the labelled orientation and true if o is taut.
func label(o *taut.EdgeOrientation) (TautOrientation, bool, error) {
	ok, err := o.GivesFoliation()
	if err != nil || !ok {
		return TautOrientation{}, false, err
	}
	n, err := o.NumSutures()
	if err != nil {
		return TautOrientation{}, false, err
	}
	item := TautOrientation{Signs: o.Signs(), Kind: o.Kind().String(), Sutures: n}
	switch o.Kind() {
	case taut.Closed:
		v, err := o.EulerClassVanishes()
		if err != nil {
			return TautOrientation{}, false, err
		}
		item.EulerVanishes = &v
	case taut.Ideal:
		s, err := o.DegeneracySlope()
		if err != nil {
			return TautOrientation{}, false, err
		}
		item.Slope = &s
	}

	return item, true, nil
}

// Found is the result of FirstFoliation.
type Found struct {
	Isosig      string
	Index       int
	Orientation *taut.EdgeOrientation
}

// FirstFoliation scans sigs, triangulations of one closed manifold, in order
// and returns the first taut orientation found. Only one-vertex
// triangulations with a sphere link are considered, and at most
// MaxTriangulations signatures are read. Undecodable signatures are logged
// and skipped. ok is false when no signature yields a foliation.
func (r *Runner) FirstFoliation(ctx context.Context, sigs []string) (found Found, ok bool, err error) {
	if n := r.opts.MaxTriangulations; n > 0 && len(sigs) > n {
		sigs = sigs[:n]
	}
	for i, sig := range sigs {
		if err = ctx.Err(); err != nil {
			return Found{}, false, err
		}
		log := r.log.WithFields(logrus.Fields{"isosig": sig, "index": i})
		tri, err := isosig.Decode(sig)
		if err != nil {
			log.WithError(err).Warn("skipping undecodable signature")
			r.metrics.outcome(OutcomeError)
			continue
		}
		log = log.WithField("tets", tri.Size())
		if !oneVertexSphere(tri) {
			log.Debug("skipping: not a one-vertex triangulation with a sphere link")
			r.metrics.outcome(OutcomeSkipped)
			continue
		}

		var hit *taut.EdgeOrientation
		drawn, err := r.each(ctx, tri, func(signs []int) (bool, error) {
			o, err := taut.NewClosed(tri, signs)
			if err != nil {
				return false, err
			}
			ok, err := o.GivesFoliation()
			if err != nil || !ok {
				return false, err
			}
			hit = o
			return true, nil
		})
		if err != nil {
			if ctx.Err() != nil {
				return Found{}, false, ctx.Err()
			}
			log.WithError(err).Warn("analysis failed")
			r.metrics.outcome(OutcomeError)
			continue
		}
		log = log.WithField("orientations", drawn)
		if hit != nil {
			r.metrics.tautOrientation()
			r.metrics.outcome(OutcomeTaut)
			log.WithField("taut", true).Info("found taut foliation")
			return Found{Isosig: sig, Index: i, Orientation: hit}, true, nil
		}
		r.metrics.outcome(OutcomeNone)
		log.WithField("taut", false).Debug("no taut orientation")
	}

	return Found{}, false, nil
}

func oneVertexSphere(tri *triangulation.Triangulation) bool {
	if tri.NumVertices() != 1 {
		return false
	}
	g, err := tri.VertexLinkGenus(0)

	return err == nil && g == 0
}
