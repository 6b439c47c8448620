package portfolio

// redistributionRounds caps the clip-and-redistribute loop. Redistribution
// can push a previously compliant weight over the cap, so one pass is not
// enough; in practice it settles in a handful of rounds.
const redistributionRounds = 50

// ApplyConcentrationCap clips any weight above maxWeight and spreads the
// excess proportionally over the uncapped names, repeating until the
// vector complies or the round cap is hit, then renormalizes to sum 1.
// Already-compliant input passes through unchanged.
func ApplyConcentrationCap(weights []float64, maxWeight float64) []float64 {
	adjusted := make([]float64, len(weights))
	copy(adjusted, weights)

	for round := 0; round < redistributionRounds; round++ {
		var excess, uncappedSum float64
		over := false
		for _, w := range adjusted {
			if w > maxWeight {
				over = true
				excess += w - maxWeight
			} else {
				uncappedSum += w
			}
		}
		if !over {
			break
		}

		for i, w := range adjusted {
			if w > maxWeight {
				adjusted[i] = maxWeight
			} else if uncappedSum > 0 {
				adjusted[i] = w + excess*(w/uncappedSum)
			}
		}
	}

	var total float64
	for _, w := range adjusted {
		total += w
	}
	if total > 0 {
		for i := range adjusted {
			adjusted[i] /= total
		}
	}
	return adjusted
}
