package gridcells

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0 or no seed.
const defaultRNGSeed int64 = 996

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// drawReward returns an integer reward in [lo, hi] as float64.
func drawReward(r *rand.Rand, lo, hi int) float64 {
	return float64(lo + r.Intn(hi-lo+1))
}
