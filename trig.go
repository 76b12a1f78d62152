package watchface

import "math"

// TrigMaxRatio is the fixed-point value of 1.0 returned by SinLookup and
// CosLookup.
const TrigMaxRatio = 0xffff

// quarterSine holds sin over the first quadrant, inclusive of both ends.
var quarterSine = buildQuarterSine()

func buildQuarterSine() []int32 {
	table := make([]int32, FullCircle/4+1)
	for i := range table {
		rad := float64(i) * 2 * math.Pi / FullCircle
		table[i] = int32(math.Round(math.Sin(rad) * TrigMaxRatio))
	}
	return table
}

// SinLookup returns sin(angle) scaled by TrigMaxRatio. Angles outside
// [0, FullCircle) wrap.
func SinLookup(angle int32) int32 {
	a := angle & (FullCircle - 1)
	switch {
	case a < FullCircle/4:
		return quarterSine[a]
	case a < FullCircle/2:
		return quarterSine[FullCircle/2-a]
	case a < 3*FullCircle/4:
		return -quarterSine[a-FullCircle/2]
	default:
		return -quarterSine[FullCircle-a]
	}
}

// CosLookup returns cos(angle) scaled by TrigMaxRatio.
func CosLookup(angle int32) int32 {
	return SinLookup(angle + FullCircle/4)
}
