package core

import (
	"strconv"

	"gonum.org/v1/gonum/floats"
)

// ValueOfShares computes the value an agent derives from fractional holdings:
// the dot product of the agent's per-item values and its shares, over the
// shares' items in ascending lexicographic order. Items absent from the
// value dataset contribute 0.
func ValueOfShares(values map[Item]float64, shares FractionMap) float64 {
	items := shares.Items()
	if len(items) == 0 {
		return 0
	}
	v := make([]float64, len(items))
	s := make([]float64, len(items))
	for i, it := range items {
		v[i] = values[it]
		s[i] = shares[it]
	}
	return floats.Dot(v, s)
}

// formatValue renders a value with the shortest decimal representation that
// round-trips, so whole values print without a trailing ".0".
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
