package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/foliar/config"
	"github.com/katalvlaran/foliar/search"
)

type options struct {
	configPath        string
	backend           string
	workers           int
	maxOrientations   int
	maxTriangulations int
	debug             bool
	metrics           bool

	cfg      config.Config
	logger   *logrus.Logger
	registry *prometheus.Registry
	runner   *search.Runner
}

func newRootCmd() *cobra.Command {
	o := &options{}

	cmd := &cobra.Command{
		Use:          "foliar",
		Short:        "Search triangulations for taut foliations",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.complete(cmd.Flags(), cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !o.cfg.Metrics.Enabled {
				return nil
			}
			return printMetrics(cmd.ErrOrStderr(), o.registry)
		},
	}
	o.bindFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newEnumerateCmd(o),
		newAnalyzeCmd(o),
		newStatsCmd(o),
		newSearchCmd(o),
		newBatchCmd(o),
	)

	return cmd
}

func (o *options) bindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.configPath, "config", "", "path to a YAML config file")
	fs.StringVar(&o.backend, "backend", "", "SAT backend: gophersat or gini")
	fs.IntVar(&o.workers, "workers", 0, "triangulations analyzed in parallel by batch")
	fs.IntVar(&o.maxOrientations, "max-orientations", 0, "cap on orientations drawn per triangulation (0: no cap)")
	fs.IntVar(&o.maxTriangulations, "max-triangulations", 0, "cap on signatures examined by search (0: no cap)")
	fs.BoolVar(&o.debug, "debug", false, "use debug log level")
	fs.BoolVar(&o.metrics, "metrics", false, "print counters to stderr at exit")
}

// complete loads the config file, applies the flags that were set, and
// builds the logger, the metrics registry and the runner.
func (o *options) complete(fs *pflag.FlagSet, logOut io.Writer) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if fs.Changed("backend") {
		cfg.Solver.Backend = o.backend
	}
	if fs.Changed("workers") {
		cfg.Search.Workers = o.workers
	}
	if fs.Changed("max-orientations") {
		cfg.Search.MaxOrientations = o.maxOrientations
	}
	if fs.Changed("max-triangulations") {
		cfg.Search.MaxTriangulations = o.maxTriangulations
	}
	if o.debug {
		cfg.Log.Level = logrus.DebugLevel.String()
	}
	if fs.Changed("metrics") {
		cfg.Metrics.Enabled = o.metrics
	}
	if err = cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	o.cfg = cfg

	o.logger = logrus.New()
	o.logger.SetOutput(logOut)
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	o.logger.SetLevel(level)
	o.logger.Debugf("log level %s", o.logger.Level)

	o.registry = prometheus.NewRegistry()
	m, err := search.NewMetrics(o.registry)
	if err != nil {
		return err
	}
	o.runner, err = search.NewRunner(o.logger, m,
		search.WithBackend(cfg.Solver.Backend),
		search.WithWorkers(cfg.Search.Workers),
		search.WithMaxOrientations(cfg.Search.MaxOrientations),
		search.WithMaxTriangulations(cfg.Search.MaxTriangulations),
	)

	return err
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "encoding output")
	}

	return enc.Close()
}

// printMetrics writes every gathered counter as "name{labels} value".
func printMetrics(w io.Writer, reg *prometheus.Registry) error {
	if reg == nil {
		return nil
	}
	families, err := reg.Gather()
	if err != nil {
		return errors.Wrap(err, "gathering metrics")
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			fmt.Fprintf(w, "%s%s %g\n", mf.GetName(), labels(m.GetLabel()), m.GetCounter().GetValue())
		}
	}

	return nil
}

func labels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", p.GetName(), p.GetValue()))
	}
	sort.Strings(parts)

	return "{" + strings.Join(parts, ",") + "}"
}
