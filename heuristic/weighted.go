package heuristic

import "math/rand"

// sampleScores draws up to k candidate indices without replacement, each
// draw proportional to its score: a uniform target in [0, remaining) is
// matched against the cumulative score scan of the still-available
// candidates, and the chosen candidate's score leaves the remaining mass.
//
// Availability is an explicit index list with swap-remove, so the draw
// sequence depends only on the rng state and the inputs, never on map or
// set iteration order. When every remaining score is zero the scan
// degenerates to the first available candidate, which keeps the draw
// total and terminating.
func sampleScores(rng *rand.Rand, candidates []int, scores []float64, total float64, k int) []int {
	avail := make([]int, len(candidates))
	copy(avail, candidates)

	out := make([]int, 0, k)
	remaining := total

	for len(out) < k && len(avail) > 0 {
		target := rng.Float64() * remaining

		pick := -1
		acc := 0.0
		for pos, idx := range avail {
			acc += scores[idx]
			if acc >= target {
				pick = pos
				break
			}
		}
		if pick < 0 {
			// Floating-point drift left the target above the scanned sum.
			pick = len(avail) - 1
		}

		idx := avail[pick]
		out = append(out, idx)
		remaining -= scores[idx]

		avail[pick] = avail[len(avail)-1]
		avail = avail[:len(avail)-1]
	}

	return out
}
