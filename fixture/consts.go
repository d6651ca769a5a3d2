package fixture

const (
	// half-width of the symmetric percentile sample around the
	// truncated mean, in truncated standard deviations
	SymmetricSpan = 5
)

var (
	// FullRangePercentiles is the explicit probe list used by the
	// default full-range scenario.
	FullRangePercentiles = []float64{0, 0.0001, 0.001, 0.01, 0.025, 0.05, 0.1, 0.25,
		0.5, 0.75, 0.900, 0.950, 0.975, 0.990, 0.999, 0.9999, 1}
)
