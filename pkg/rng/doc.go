// Package rng provides the seeded random source consumed by pkg/wfc.
//
// # Determinism
//
// A Source constructed from an arbitrary hashable seed via FromSeed always
// derives the same underlying stream for the same seed value, on the same
// platform. This is what makes a full collapse run reproducible for a fixed
// seed, tile order, weights, constraint order, and board dimensions.
//
// # Weighted choice
//
// WeightedChoose selects an index under the discrete distribution
// proportional to the given weights. A choice point where every
// candidate weight is zero fails rather than degrading to a uniform
// distribution.
package rng
