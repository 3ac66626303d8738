// Package schematic reads engine schematics.
//
// Numbers touching a symbol, diagonals included, are part numbers; a '*'
// touching exactly two part numbers is a gear whose ratio is their product.
// Numbers are the horizontal digit runs of the grid.
//
// Complexity: O(W×H).
package schematic
