package model

import (
	"fmt"
	"math"

	"github.com/uyouii/truncnorm-fixtures/common"
)

// DistributionParameters describe a truncated normal in user-facing
// terms: the mean and standard deviation of the parent normal plus the
// absolute truncation limits.
type DistributionParameters struct {
	Mean  float64
	Sd    float64
	Lower float64 // may be -Inf
	Upper float64 // may be +Inf
}

// Validate reports obviously broken parameters. The numeric layer does
// not call it; bad parameters flow through as NaN so the generated
// output is visibly wrong instead of silently missing.
func (p *DistributionParameters) Validate() error {
	if math.IsNaN(p.Sd) || p.Sd <= 0 {
		return common.ErrorInvalidParameters
	}
	if !(p.Lower < p.Upper) {
		return common.ErrorInvalidParameters
	}
	return nil
}

// StandardizedBounds are the truncation limits in standard deviations
// from the mean, the parameterization the distribution primitive needs.
type StandardizedBounds struct {
	A float64
	B float64
}

type Scenario struct {
	Name   string
	Params DistributionParameters
	// Percentiles probes the distribution at these probabilities.
	// Empty means derive the default symmetric set.
	Percentiles []float64
}

func (s *Scenario) DebugString() string {
	res := fmt.Sprintf("name: %v, params: %+v, percentileCnt: %v", s.Name, s.Params, len(s.Percentiles))
	return res
}

// TestVector holds the reference values for one scenario. Quantiles and
// Densities are positionally aligned with Percentiles. Not mutated
// after construction.
type TestVector struct {
	Params      DistributionParameters
	Percentiles []float64
	Quantiles   []float64
	Densities   []float64
	Mean        float64
	Variance    float64
}
