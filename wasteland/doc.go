// Package wasteland follows left/right instructions through a network of
// named nodes.
//
// What:
//
//   - Part 1 walks from AAA to ZZZ.
//   - In part 2 a ghost starts on every node ending in 'A' at once and all
//     must stand on nodes ending in 'Z'.
//
// Why:
//
//   - Each ghost's path is a cycle, so the answer is the LCM of the
//     single-ghost step counts instead of a joint simulation.
//
// Errors:
//
//   - ErrParse: malformed instructions or node lines.
//   - ErrUnknownNode: a link or start node that is not defined.
//   - ErrNoExit: a walk that repeats a state before reaching its goal.
package wasteland
