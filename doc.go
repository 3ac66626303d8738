// Package advent is a set of daily puzzle solvers built around one reusable
// core: composable piecewise-offset range maps.
//
// What is in here?
//
//	almanac/      RangeMap: normalize, Transform, Reduce (composition) and the
//	              seed-to-location queries, per seed and per seed range
//	gridgraph/    byte grids with 4-, 8- and row-only adjacency, BFS components
//	puzzle/       Answer, Solver and the day Registry; puzzle/all wires every day
//	cmd/advent/   the CLI: "advent solve <day> [file|-]", "advent list"
//	internal/     config (envconfig + .env), logging (logrus), mathx, textutil
//
// One package per day:
//
//	calibration (1)  cubegame (2)   schematic (3)  scratchcard (4)
//	almanac (5)      boatrace (6)   camelcards (7) wasteland (8)
//	oasis (9)        pipemaze (10)  galaxy (11)
//
// Why the almanac?
//
//	A chain of stage maps is reduced once into a single map from the first
//	domain to the last. The lowest location over billions of seeds is then
//	found by intersecting the composed bands with the seed ranges, never by
//	enumerating seeds.
//
// Quick ASCII example, seed-to-soil then soil-to-fertilizer:
//
//	seed   0 ─────── 50 ──────────── 98 ── 100
//	         +0          +2              -48
//	soil   0 ── 15 ─────────────── 54
//	         +39     -15
//	composed: (0,15,+39) (15,50,-15) (50,52,-13) (52,98,+2) (98,100,-63)
//
//	go install github.com/katalvlaran/advent/cmd/advent@latest
package advent
