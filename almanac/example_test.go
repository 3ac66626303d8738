package almanac_test

import (
	"fmt"

	"github.com/katalvlaran/advent/almanac"
)

// ExampleRangeMap_Reduce composes the first two stages of the sample almanac.
func ExampleRangeMap_Reduce() {
	seedSoil, _ := almanac.ParseRangeMap("seed-to-soil map:\n50 98 2\n52 50 48\n")
	soilFert, _ := almanac.ParseRangeMap("soil-to-fertilizer map:\n0 15 37\n37 52 2\n39 0 15\n")

	composed, _ := seedSoil.Reduce(soilFert)
	fmt.Println(composed)
	fmt.Println(composed.Transform(79), soilFert.Transform(seedSoil.Transform(79)))

	// Output:
	// seed-to-fertilizer (0,15,+39) (15,50,-15) (50,52,-13) (52,98,+2) (98,100,-63)
	// 81 81
}

// ExampleAlmanac_MinLocationByRange answers both queries for a two-stage almanac.
func ExampleAlmanac_MinLocationByRange() {
	a, err := almanac.Parse(`seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-location map:
0 15 37
37 52 2
39 0 15
`)
	if err != nil {
		fmt.Println(err)
		return
	}
	loc, _ := a.MinLocationByRange()
	fmt.Println(a.MinLocationPerSeed(), loc)

	// Output:
	// 52 57
}
