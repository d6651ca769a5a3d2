package fixture

import (
	"github.com/uyouii/truncnorm-fixtures/model"
	"github.com/uyouii/truncnorm-fixtures/truncnorm"
)

// NormalizeBounds converts absolute truncation limits into limits in
// standard deviations from the mean. IEEE arithmetic carries infinite
// limits through with their sign; sd is divided unchecked.
func NormalizeBounds(params model.DistributionParameters) model.StandardizedBounds {
	return model.StandardizedBounds{
		A: (params.Lower - params.Mean) / params.Sd,
		B: (params.Upper - params.Mean) / params.Sd,
	}
}

// Build computes the reference values for one parameter set. An
// explicit percentile list is used verbatim; otherwise the default
// symmetric set is derived from the truncated distribution itself.
func Build(params model.DistributionParameters, percentiles []float64) *model.TestVector {
	bounds := NormalizeBounds(params)
	dist := truncnorm.New(params.Mean, params.Sd, bounds.A, bounds.B)

	if len(percentiles) == 0 {
		percentiles = defaultPercentiles(dist)
	}

	quantiles := make([]float64, len(percentiles))
	for i, p := range percentiles {
		quantiles[i] = dist.Quantile(p)
	}

	densities := make([]float64, len(quantiles))
	for i, q := range quantiles {
		densities[i] = dist.Prob(q)
	}

	return &model.TestVector{
		Params:      params,
		Percentiles: percentiles,
		Quantiles:   quantiles,
		Densities:   densities,
		Mean:        dist.Mean(),
		Variance:    dist.Variance(),
	}
}

// defaultPercentiles samples the cumulative function at the truncated
// mean plus -5..5 truncated standard deviations and pins probability 0
// and 1 on the ends, so the extremes of support are always exercised
// even when the symmetric points miss them. Using the truncated
// moments rather than the parent's keeps the coverage centered however
// asymmetric the truncation is.
func defaultPercentiles(dist *truncnorm.TruncatedNormal) []float64 {
	mean := dist.Mean()
	std := dist.StdDev()

	candidates := make([]float64, 0, 2*SymmetricSpan+3)
	candidates = append(candidates, 0)
	for k := -SymmetricSpan; k <= SymmetricSpan; k++ {
		candidates = append(candidates, dist.CDF(mean+float64(k)*std))
	}
	candidates = append(candidates, 1)

	return dedupKeepOrder(candidates)
}
