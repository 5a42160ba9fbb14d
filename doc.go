// Package aoc2018 collects small, pure puzzle solvers for a device's
// frequency calibration and its box inventory.
//
// 🚀 What is inside?
//
//	Three independent leaf packages, each a pure function over in-memory data:
//		• frequency — sum signed deltas; calibrate by finding the first repeated total
//		• checksum  — letter-frequency profiles and the twos×threes checksum
//		• nearmatch — the pair of IDs differing in exactly one position
//
// ✨ Guarantees
//
//   - No shared state: every call is deterministic and side-effect free
//   - Sentinel errors: branch with errors.Is, never on strings
//   - No panics: contract violations and non-convergence are returned as errors
//
// Supporting packages:
//
//	lines/           — line-oriented input reader used by the solvers' callers
//	internal/config/ — optional TOML/YAML defaults for the CLI
//	cmd/aoc2018/     — command-line front end
//
//	go install github.com/katalvlaran/aoc2018/cmd/aoc2018@latest
package aoc2018
