package interp

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/lagrango/lagrango/poly"
	"github.com/lagrango/lagrango/utils"
)

// PrecisionStats is a struct storing statistics about the pointwise
// absolute error |p(xs[i]) - ys[i]| of a polynomial over a set of
// points, both as raw deltas and as log2 precisions.
type PrecisionStats struct {
	MinDelta    float64
	MaxDelta    float64
	MeanDelta   float64
	MedianDelta float64
	StdDelta    float64

	MinPrec    float64
	MaxPrec    float64
	MeanPrec   float64
	MedianPrec float64
}

// GetPrecisionStats generates a PrecisionStats struct from the
// polynomial p and the reference points (xs[i], ys[i]). Extra values at
// the end of the longer slice are ignored. Exact points produce
// infinite log2 precisions.
func GetPrecisionStats(p poly.Poly, xs, ys []float64) (prec PrecisionStats) {

	n := utils.Min(len(xs), len(ys))

	if n == 0 {
		return
	}

	deltas := make([]float64, n)
	for i := range deltas {
		deltas[i] = math.Abs(p.Evaluate(xs[i]) - ys[i])
	}

	prec.MinDelta, _ = stats.Min(deltas)
	prec.MaxDelta, _ = stats.Max(deltas)
	prec.MeanDelta, _ = stats.Mean(deltas)
	prec.MedianDelta, _ = stats.Median(deltas)
	prec.StdDelta, _ = stats.StandardDeviation(deltas)

	prec.MinPrec = math.Log2(1 / prec.MaxDelta)
	prec.MaxPrec = math.Log2(1 / prec.MinDelta)
	prec.MeanPrec = math.Log2(1 / prec.MeanDelta)
	prec.MedianPrec = math.Log2(1 / prec.MedianDelta)

	return
}

func (prec PrecisionStats) String() string {
	return fmt.Sprintf(`
┌─────────┬───────────┬───────┐
│         │ Delta     │ Log2  │
├─────────┼───────────┼───────┤
│MIN Prec │ %9.2e │ %5.2f │
│MAX Prec │ %9.2e │ %5.2f │
│AVG Prec │ %9.2e │ %5.2f │
│MED Prec │ %9.2e │ %5.2f │
└─────────┴───────────┴───────┘
Err STD : %9.2e
`,
		prec.MaxDelta, prec.MinPrec,
		prec.MinDelta, prec.MaxPrec,
		prec.MeanDelta, prec.MeanPrec,
		prec.MedianDelta, prec.MedianPrec,
		prec.StdDelta)
}
