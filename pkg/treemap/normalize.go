package treemap

import "math"

// Normalize returns the first maxDisplay items in their original order.
//
// Items with non-positive weight are kept; the partitioner tolerates them.
// maxDisplay <= 0 disables the cap. The result shares the caller's backing
// array so tiles can point back at the caller's items.
func Normalize(items []Item, maxDisplay int) []Item {
	if maxDisplay <= 0 || len(items) <= maxDisplay {
		return items
	}
	return items[:maxDisplay:maxDisplay]
}

// weightOf clamps negative, NaN and infinite weights to zero.
func weightOf(it Item) float64 {
	if it.Weight > 0 && !math.IsInf(it.Weight, 1) {
		return it.Weight
	}
	return 0
}

// shares returns the effective weight of each item and their sum. When every
// weight is zero the items split the space equally. Weights whose sum
// overflows are rescaled by the largest weight first.
func shares(items []Item) ([]float64, float64) {
	weights := make([]float64, len(items))
	var total, peak float64
	for i, it := range items {
		weights[i] = weightOf(it)
		total += weights[i]
		peak = max(peak, weights[i])
	}
	if math.IsInf(total, 1) {
		total = 0
		for i := range weights {
			weights[i] /= peak
			total += weights[i]
		}
	}
	if total > 0 {
		return weights, total
	}
	for i := range weights {
		weights[i] = 1
	}
	return weights, float64(len(weights))
}
