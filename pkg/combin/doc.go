// Package combin provides the lazy combinatorial generators behind the
// search: index permutations and Cartesian products.
//
// All generators are deterministic and yield a fresh slice on every step, so
// callers may keep or modify what they receive.
package combin
