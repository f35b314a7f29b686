// Package tree implements the spanning-tree/bipartition subsystem behind
// ReCom: draw a spanning tree over a merged pair of districts, then cut one
// edge so each side's population is within epsilon of its target.
//
// The spanning-tree draw reuses a union-find-with-path-compression-and-
// union-by-rank core, generalized from "sort all edges by a fixed weight"
// to "sort all edges by a randomized, region-surcharge-biased weight" (a
// random-weighted Kruskal, which degrades to a plain random spanning tree
// when no region surcharge is configured). BFS-shaped traversal (subtree
// population accumulation, balanced-cut search) follows the same
// iterative-queue and post-order style.
package tree
