package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/uyouii/truncnorm-fixtures/model"
)

const (
	significantDigits = 15

	textNegInf = "-inf"
	textPosInf = "inf"
	javaNegInf = "Double.NEGATIVE_INFINITY"
	javaPosInf = "Double.POSITIVE_INFINITY"
)

// value renders x to 15 significant digits. Infinite values take the
// given tokens, chosen by the sign of the value itself rather than by
// substitution on the rendered text.
func value(x float64, negInf, posInf string) string {
	if math.IsInf(x, -1) {
		return negInf
	}
	if math.IsInf(x, 1) {
		return posInf
	}
	return strconv.FormatFloat(x, 'g', significantDigits, 64)
}

func values(xs []float64, negInf, posInf string) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = value(x, negInf, posInf)
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

// HumanBlock renders a labelled summary of one test vector for reading
// alongside the generated code.
func HumanBlock(vec *model.TestVector) string {
	p := vec.Params
	var b strings.Builder
	fmt.Fprintf(&b, "for mean = %s, std = %s, lower = %s, upper = %s:\n",
		value(p.Mean, textNegInf, textPosInf), value(p.Sd, textNegInf, textPosInf),
		value(p.Lower, textNegInf, textPosInf), value(p.Upper, textNegInf, textPosInf))
	fmt.Fprintf(&b, "percentiles:     %s\n", values(vec.Percentiles, textNegInf, textPosInf))
	fmt.Fprintf(&b, "quantile values: %s\n", values(vec.Quantiles, textNegInf, textPosInf))
	fmt.Fprintf(&b, "density values:  %s\n", values(vec.Densities, textNegInf, textPosInf))
	fmt.Fprintf(&b, "mean = %s\n", value(vec.Mean, textNegInf, textPosInf))
	fmt.Fprintf(&b, "variance = %s\n", value(vec.Variance, textNegInf, textPosInf))
	return b.String()
}

// JavaFragment renders the test vector as the constructor call and
// array literals inserted into the Java test source: the distribution
// under test, the percentile/quantile/density arrays, then the
// expected mean and variance.
func JavaFragment(vec *model.TestVector) string {
	p := vec.Params
	var b strings.Builder
	fmt.Fprintf(&b, "new TruncatedNormalDistribution(%s, %s, %s, %s),\n",
		value(p.Mean, javaNegInf, javaPosInf), value(p.Sd, javaNegInf, javaPosInf),
		value(p.Lower, javaNegInf, javaPosInf), value(p.Upper, javaNegInf, javaPosInf))
	fmt.Fprintf(&b, "new double[] %s,\n", values(vec.Percentiles, javaNegInf, javaPosInf))
	fmt.Fprintf(&b, "new double[] %s,\n", values(vec.Quantiles, javaNegInf, javaPosInf))
	fmt.Fprintf(&b, "new double[] %s,\n", values(vec.Densities, javaNegInf, javaPosInf))
	fmt.Fprintf(&b, "%s,\n", value(vec.Mean, javaNegInf, javaPosInf))
	fmt.Fprintf(&b, "%s\n", value(vec.Variance, javaNegInf, javaPosInf))
	return b.String()
}
