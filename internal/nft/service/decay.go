package service

import (
	"math"
	"math/big"

	"lukechampine.com/uint128"
)

// blocksPerDay is the expected Dingocoin block cadence (one block per
// minute).
const blocksPerDay = 1440

// ActivityDecay is the per-block multiplier of the scaled activity
// counters. It halves nothing outright; a score loses 90% of its weight
// over one day of blocks.
var ActivityDecay = math.Pow(0.1, 1.0/blocksPerDay)

// DecayFactor returns the multiplier that ages an activity score
// recorded at height from to height to.
func DecayFactor(from, to uint64) float64 {
	if to <= from {
		return 1
	}
	return math.Pow(ActivityDecay, float64(to-from))
}

// coinsFloat converts a koinu amount to whole coins for the scaled
// volume counters. Fractional coins are floored away before the float
// conversion; precision loss above 2^53 coins is acceptable there.
func coinsFloat(v uint128.Uint128) float64 {
	f, _ := new(big.Float).SetInt(v.Div64(100_000_000).Big()).Float64()
	return f
}
