// Package gerrychain is a Markov-chain districting-plan sampler: build a
// frozen dual graph of geographic units, assign it to districts, and walk
// the space of valid redistricting plans with ReCom or single-node-flip
// proposals under configurable population, contiguity, and compactness
// constraints.
//
// The pieces:
//
//	graph/       — frozen, integer-keyed adjacency graph and attribute store
//	jsongraph/   — the on-disk/wire JSON graph format
//	assignment/  — node-to-district assignment and flips
//	tree/        — spanning-tree and balanced-bipartition primitives behind ReCom
//	partition/   — a graph + assignment + lazily-cached updater values
//	updaters/    — Tally, CutEdges, and the other standard partition updaters
//	election/    — per-party vote tallying and seat-share estimation
//	geo/         — GeographicPartition constructor with the geographic updaters pre-registered
//	constraints/ — contiguity and population-bound validators
//	accept/      — acceptance functions (Metropolis-Hastings, jumpcycle beta)
//	proposals/   — RandomFlip and ReCom step proposals
//	chain/       — the MarkovChain driver and replay
//	optimize/    — ShortBursts, SimulatedAnnealing, TiltedRun, and Gingleator
package gerrychain
