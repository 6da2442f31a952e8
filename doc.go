// Package upgma implements UPGMA (Unweighted Pair Group Method with
// Arithmetic mean) hierarchical clustering over a pairwise distance matrix.
//
// UPGMA repeatedly merges the closest pair of active clusters and replaces
// them with a single cluster whose distance to every other cluster is the
// size-weighted mean of its children's distances. On an ultrametric input
// (one consistent with a molecular clock) the resulting rooted binary tree
// reproduces the input distances exactly.
//
// Basic usage:
//
//	result, err := upgma.Cluster(distMatrix, names, upgma.DefaultConfig())
//	// result.Newick() is the full tree, e.g. "((a:1,b:1):1,c:2);"
//	// result.Labels[id] is the Newick text of the subtree rooted at id
//	// result.Linkage is the merge history in scipy linkage layout
//
// Cluster ids 0..n-1 are the input samples in order; ids n..2n-2 are the
// merge results in creation order, so the root is always 2n-2.
//
// For flat row-major matrices or gonum symmetric matrices:
//
//	result, err := upgma.ClusterPrecomputed(flat, n, names, cfg)
//	result, err := upgma.ClusterSymmetric(symDense, names, cfg)
//
// Input is validated before any work is done: the matrix must be square,
// symmetric within Config.Tolerance, have a zero diagonal and finite,
// non-negative entries, and there must be at least two distinctly named
// samples. Non-ultrametric input is clustered as given; the first offending
// triplet is reported in Result.Violation and logged, but never repaired.
package upgma
