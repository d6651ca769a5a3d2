package fixture

// dedupKeepOrder drops repeated values, keeping the first occurrence
// of each. Heavy truncation saturates several symmetric sample points
// to the same boundary probability, so duplicates are expected.
func dedupKeepOrder(values []float64) []float64 {
	seen := make(map[float64]struct{}, len(values))
	res := make([]float64, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		res = append(res, v)
	}
	return res
}
