package fixture

import (
	"math"

	"github.com/uyouii/truncnorm-fixtures/model"
)

// DefaultScenarios returns the parameter sets the generator runs. The
// first one probes a fixed percentile grid; the rest use the derived
// default set.
func DefaultScenarios() []model.Scenario {
	return []model.Scenario{
		{
			Name:        "full range",
			Params:      model.DistributionParameters{Mean: 1.9, Sd: 1.3, Lower: -1.1, Upper: 3.4},
			Percentiles: FullRangePercentiles,
		},
		{
			Name:   "one-sided lower tail",
			Params: model.DistributionParameters{Mean: 12, Sd: 2.4, Lower: math.Inf(-1), Upper: 7.1},
		},
		{
			Name:   "one-sided upper tail",
			Params: model.DistributionParameters{Mean: -9.6, Sd: 17, Lower: -15, Upper: math.Inf(1)},
		},
		{
			Name:   "no truncation",
			Params: model.DistributionParameters{Mean: 3, Sd: 1.1, Lower: math.Inf(-1), Upper: math.Inf(1)},
		},
		{
			Name:   "lower tail only",
			Params: model.DistributionParameters{Mean: 0, Sd: 1, Lower: math.Inf(-1), Upper: -5},
		},
		{
			Name:   "upper tail only",
			Params: model.DistributionParameters{Mean: 0, Sd: 1, Lower: 5, Upper: math.Inf(1)},
		},
		{
			Name:   "narrow truncated range",
			Params: model.DistributionParameters{Mean: 7.1, Sd: 9.9, Lower: 7.0999999, Upper: 7.1000001},
		},
	}
}
