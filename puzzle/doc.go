// Package puzzle defines the common shape of a daily solver and a registry
// that maps day numbers to solvers.
//
// What:
//
//   - Answer carries the two integer results of one day.
//   - Solver turns the raw input text of a day into an Answer.
//   - Registry keeps solvers by day; package puzzle/all fills one with every day.
//
// Errors:
//
//   - ErrUnknownDay: Lookup of a day without a solver.
//   - ErrDuplicateDay: Register of a day twice.
//   - ErrInvalidDay: day outside 1..25.
package puzzle
