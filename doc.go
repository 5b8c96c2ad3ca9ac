// Package foliar searches triangulated 3-manifolds for taut foliations.
//
// A taut foliation is detected combinatorially. Orient every edge class of a
// triangulation so that no tetrahedron has a directed cycle; each such
// orientation gives a branched surface, and the orientation is taut when
// the suture structure passes the checks of package taut.
//
// The module is organized in layers:
//
//	core/          string-ID graphs with multi-edges and loops
//	bfs/, dfs/     traversal, connected components, topological order
//	spanning/      Kruskal spanning forests over core graphs
//	matrix/        exact integer matrices, Smith invariant factors
//	triangulation/ gluings, edge and face classes, vertex links, chains
//	isosig/        isomorphism signature decoding
//	orient/        SAT enumeration of cycle-free edge orientations
//	dual/          dual cellulation of a cusp torus, homology
//	peripheral/    meridian/longitude framing and slopes
//	taut/          the edge orientation analyzer, closed and ideal
//	search/        runner, statistics, batch analysis, metrics
//	config/        YAML configuration
//	cmd/foliar     command line interface
//
// A typical session:
//
//	tri, _ := isosig.Decode("jLLvQPQcdfhghigiihshhgfifme")
//	all, _ := orient.Collect(ctx, tri)
//	for _, signs := range all {
//		o, _ := taut.NewClosed(tri, signs)
//		ok, _ := o.GivesFoliation()
//		...
//	}
package foliar
