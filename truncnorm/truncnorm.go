package truncnorm

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

var std = distuv.UnitNormal

// TruncatedNormal is a normal distribution with location mu and scale
// sigma restricted to [mu+sigma*a, mu+sigma*b] and renormalized over
// that interval. a and b are the truncation limits in standard
// deviations from mu; either may be infinite.
//
// When the whole support lies in the upper tail (a >= 0), the mass and
// the cumulative function are evaluated through survival functions to
// keep precision where plain CDF differences would cancel.
type TruncatedNormal struct {
	mu    float64
	sigma float64
	a, b  float64

	phiA, phiB float64
	cdfA       float64
	sfA, sfB   float64
	mass       float64
	upperTail  bool
}

func New(mean, sd, a, b float64) *TruncatedNormal {
	t := &TruncatedNormal{
		mu:        mean,
		sigma:     sd,
		a:         a,
		b:         b,
		phiA:      std.Prob(a),
		phiB:      std.Prob(b),
		cdfA:      std.CDF(a),
		sfA:       std.Survival(a),
		sfB:       std.Survival(b),
		upperTail: a >= 0,
	}
	if t.upperTail {
		t.mass = t.sfA - t.sfB
	} else {
		t.mass = std.CDF(b) - t.cdfA
	}
	return t
}

// Lower returns the truncation range's lower limit on the original scale.
func (t *TruncatedNormal) Lower() float64 {
	return t.mu + t.sigma*t.a
}

// Upper returns the truncation range's upper limit on the original scale.
func (t *TruncatedNormal) Upper() float64 {
	return t.mu + t.sigma*t.b
}

// CDF returns the probability mass at or below x.
func (t *TruncatedNormal) CDF(x float64) float64 {
	z := (x - t.mu) / t.sigma
	if z <= t.a {
		return 0
	}
	if z >= t.b {
		return 1
	}
	var p float64
	if t.upperTail {
		p = (t.sfA - std.Survival(z)) / t.mass
	} else {
		p = (std.CDF(z) - t.cdfA) / t.mass
	}
	return math.Max(0, math.Min(1, p))
}

// Quantile inverts CDF. Probability 0 and 1 map to the truncation
// limits themselves, infinite or not.
func (t *TruncatedNormal) Quantile(p float64) float64 {
	if p < 0 || p > 1 {
		return math.NaN()
	}
	if p == 0 {
		return t.Lower()
	}
	if p == 1 {
		return t.Upper()
	}
	var z float64
	if t.upperTail {
		z = -std.Quantile(t.sfA - p*t.mass)
	} else {
		z = std.Quantile(t.cdfA + p*t.mass)
	}
	z = math.Max(t.a, math.Min(t.b, z))
	return t.mu + t.sigma*z
}

// Prob returns the probability density at x, zero outside the
// truncation range. An infinite x yields zero without a special case
// since the parent density vanishes there.
func (t *TruncatedNormal) Prob(x float64) float64 {
	z := (x - t.mu) / t.sigma
	if z < t.a || z > t.b {
		return 0
	}
	return std.Prob(z) / (t.mass * t.sigma)
}

func (t *TruncatedNormal) Mean() float64 {
	return t.mu + t.sigma*t.zMean()
}

func (t *TruncatedNormal) Variance() float64 {
	m := t.zMean()
	v := 1 + (boundTerm(t.a, t.phiA)-boundTerm(t.b, t.phiB))/t.mass - m*m
	return t.sigma * t.sigma * v
}

func (t *TruncatedNormal) StdDev() float64 {
	return math.Sqrt(t.Variance())
}

// zMean is the mean of the standardized truncated variable.
func (t *TruncatedNormal) zMean() float64 {
	return (t.phiA - t.phiB) / t.mass
}

// boundTerm is k*phi(k), with the limit value 0 at an infinite bound
// where the product would be Inf*0 = NaN.
func boundTerm(k, phi float64) float64 {
	if math.IsInf(k, 0) {
		return 0
	}
	return k * phi
}
