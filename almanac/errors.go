package almanac

import "errors"

var (
	// ErrParse indicates the almanac or stage text is malformed.
	ErrParse = errors.New("almanac: parse error")
	// ErrDomainMismatch indicates a stage whose source does not match the previous destination.
	ErrDomainMismatch = errors.New("almanac: stage domains do not chain")
	// ErrOverlap indicates two entries of one stage share source values.
	ErrOverlap = errors.New("almanac: overlapping source spans")
	// ErrOutOfDomain indicates an entry whose Source or Dest leaves [MinValue, MaxValue).
	ErrOutOfDomain = errors.New("almanac: span outside value domain")
	// ErrEmptyChain indicates ReduceChain was called with no stages.
	ErrEmptyChain = errors.New("almanac: empty stage chain")
	// ErrNilMap indicates a nil *RangeMap operand.
	ErrNilMap = errors.New("almanac: nil range map")
	// ErrOddSeeds indicates the seed list has an odd length and cannot form ranges.
	ErrOddSeeds = errors.New("almanac: odd number of seed values")
	// ErrNoSeeds indicates no seed value is available for a query.
	ErrNoSeeds = errors.New("almanac: no seeds")
	// ErrScanLimit indicates the brute-force scan hit its probe limit.
	ErrScanLimit = errors.New("almanac: scan limit exceeded")
)
