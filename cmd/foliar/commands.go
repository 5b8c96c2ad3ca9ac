package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/foliar/isosig"
	"github.com/katalvlaran/foliar/orient"
	"github.com/katalvlaran/foliar/search"
	"github.com/katalvlaran/foliar/triangulation"
)

func decodeArg(sig string) (*triangulation.Triangulation, error) {
	tri, err := isosig.Decode(sig)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %q", sig)
	}

	return tri, nil
}

func newEnumerateCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "enumerate ISOSIG",
		Short: "List the cycle-free edge orientations of a triangulation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tri, err := decodeArg(args[0])
			if err != nil {
				return err
			}
			all, err := orient.Collect(cmd.Context(), tri,
				orient.WithBackend(o.cfg.Solver.Backend),
				orient.WithLimit(o.cfg.Search.MaxOrientations),
			)
			if err != nil {
				return errors.Wrap(err, "enumerating orientations")
			}
			if all == nil {
				all = [][]int{}
			}
			return writeYAML(cmd.OutOrStdout(), map[string]interface{}{
				"isosig":       args[0],
				"orientations": all,
			})
		},
	}
}

func newAnalyzeCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze ISOSIG",
		Short: "List the taut orientations of a closed or one-cusped triangulation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tri, err := decodeArg(args[0])
			if err != nil {
				return err
			}
			found, err := o.runner.TautOrientations(cmd.Context(), tri)
			if err != nil {
				return errors.Wrapf(err, "analyzing %q", args[0])
			}
			if found == nil {
				found = []search.TautOrientation{}
			}
			return writeYAML(cmd.OutOrStdout(), map[string]interface{}{
				"isosig": args[0],
				"taut":   found,
			})
		},
	}
}

func newStatsCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats ISOSIG",
		Short: "Summarize the orientations of a one-vertex closed triangulation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tri, err := decodeArg(args[0])
			if err != nil {
				return err
			}
			st, err := search.Stats(cmd.Context(), tri, orient.WithBackend(o.cfg.Solver.Backend))
			if err != nil {
				return err
			}
			return writeYAML(cmd.OutOrStdout(), st)
		},
	}
}

func newSearchCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "search ISOSIG...",
		Short: "Find the first taut foliation among triangulations of one manifold",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, ok, err := o.runner.FirstFoliation(cmd.Context(), args)
			if err != nil {
				return err
			}
			out := map[string]interface{}{"found": ok}
			if ok {
				out["isosig"] = found.Isosig
				out["index"] = found.Index
				out["signs"] = found.Orientation.Signs()
			}
			return writeYAML(cmd.OutOrStdout(), out)
		},
	}
}

func newBatchCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "batch ISOSIG...",
		Short: "Analyze many triangulations in parallel",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := o.runner.Batch(cmd.Context(), args)
			if werr := writeYAML(cmd.OutOrStdout(), reports); werr != nil {
				return werr
			}
			return err
		},
	}
}
