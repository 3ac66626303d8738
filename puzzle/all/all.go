// Package all registers every implemented day.
package all

import (
	"github.com/katalvlaran/advent/almanac"
	"github.com/katalvlaran/advent/boatrace"
	"github.com/katalvlaran/advent/calibration"
	"github.com/katalvlaran/advent/camelcards"
	"github.com/katalvlaran/advent/cubegame"
	"github.com/katalvlaran/advent/galaxy"
	"github.com/katalvlaran/advent/oasis"
	"github.com/katalvlaran/advent/pipemaze"
	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/schematic"
	"github.com/katalvlaran/advent/scratchcard"
	"github.com/katalvlaran/advent/wasteland"
)

var days = []puzzle.Entry{
	{Day: 1, Title: "Trebuchet?!", Solve: calibration.Solve},
	{Day: 2, Title: "Cube Conundrum", Solve: cubegame.Solve},
	{Day: 3, Title: "Gear Ratios", Solve: schematic.Solve},
	{Day: 4, Title: "Scratchcards", Solve: scratchcard.Solve},
	{Day: 5, Title: "If You Give A Seed A Fertilizer", Solve: almanac.Solve},
	{Day: 6, Title: "Wait For It", Solve: boatrace.Solve},
	{Day: 7, Title: "Camel Cards", Solve: camelcards.Solve},
	{Day: 8, Title: "Haunted Wasteland", Solve: wasteland.Solve},
	{Day: 9, Title: "Mirage Maintenance", Solve: oasis.Solve},
	{Day: 10, Title: "Pipe Maze", Solve: pipemaze.Solve},
	{Day: 11, Title: "Cosmic Expansion", Solve: galaxy.Solve},
}

// Registry returns a registry holding every day.
// It panics if the table above registers a day twice.
func Registry() *puzzle.Registry {
	r := puzzle.NewRegistry()
	for _, d := range days {
		if err := r.Register(d.Day, d.Title, d.Solve); err != nil {
			panic(err)
		}
	}
	return r
}
