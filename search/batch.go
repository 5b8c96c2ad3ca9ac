package search

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/foliar/isosig"
)

// Report is the outcome of analyzing one signature in a batch.
type Report struct {
	Isosig       string            `yaml:"isosig"`
	Tets         int               `yaml:"tets"`
	Orientations int               `yaml:"orientations"`
	Taut         []TautOrientation `yaml:"taut"`
	Error        string            `yaml:"error,omitempty"`

	Err error `yaml:"-"`
}

// Batch analyzes every signature on at most Workers goroutines and returns
// one report per signature, in input order. The failure of one signature is
// recorded in its report and does not stop the others. Cancelling ctx stops
// dispatching; signatures not yet started report the context error, and
// Batch returns it.
func (r *Runner) Batch(ctx context.Context, sigs []string) ([]Report, error) {
	reports := make([]Report, len(sigs))
	var g errgroup.Group
	g.SetLimit(r.opts.Workers)

	dispatched := 0
	for i, sig := range sigs {
		if ctx.Err() != nil {
			break
		}
		i, sig := i, sig
		g.Go(func() error {
			reports[i] = r.analyze(ctx, sig)
			return nil
		})
		dispatched++
	}
	_ = g.Wait()

	err := ctx.Err()
	for i := dispatched; i < len(sigs); i++ {
		reports[i] = Report{Isosig: sigs[i], Err: err, Error: err.Error()}
	}

	return reports, err
}

func (r *Runner) analyze(ctx context.Context, sig string) Report {
	rep := Report{Isosig: sig}
	log := r.log.WithField("isosig", sig)
	fail := func(err error) Report {
		rep.Err, rep.Error = err, err.Error()
		r.metrics.outcome(OutcomeError)
		log.WithError(err).Warn("analysis failed")
		return rep
	}

	tri, err := isosig.Decode(sig)
	if err != nil {
		return fail(err)
	}
	rep.Tets = tri.Size()
	found, drawn, err := r.tautOrientations(ctx, tri)
	rep.Orientations = drawn
	if err != nil {
		return fail(err)
	}
	rep.Taut = found

	outcome := OutcomeNone
	if len(found) > 0 {
		outcome = OutcomeTaut
	}
	r.metrics.outcome(outcome)
	log.WithFields(logrus.Fields{
		"tets":         rep.Tets,
		"orientations": drawn,
		"taut":         len(found),
	}).Info("analyzed")

	return rep
}
