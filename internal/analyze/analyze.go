// Package analyze computes statistical summaries and trend analysis over the
// series of a chart. All functions are pure; no I/O.
package analyze

import (
	"fmt"
	"math"
	"sort"

	"github.com/derickschaefer/chartspec/internal/model"
	"github.com/derickschaefer/chartspec/pkg/chart"
	"github.com/derickschaefer/chartspec/pkg/datatype"
	"github.com/derickschaefer/chartspec/pkg/series"
)

// ─── Summary ──────────────────────────────────────────────────────────────────

// SummarizeChart returns one summary per series, in chart order.
func SummarizeChart(c *chart.Chart) []model.SeriesSummary {
	list := c.SeriesList()
	out := make([]model.SeriesSummary, len(list))
	for i, s := range list {
		out[i] = Summarize(i, s)
	}
	return out
}

// Summarize computes descriptive statistics over the plotted magnitudes of a
// series. Points without a numeric magnitude are counted as missing and
// excluded from the numbers.
func Summarize(index int, s series.Series) model.SeriesSummary {
	data := s.SeriesData()
	sum := model.SeriesSummary{
		Index:  index,
		Type:   s.Type(),
		ID:     s.SeriesID(),
		Name:   s.SeriesName(),
		Points: len(data),
	}

	vals := magnitudes(data)
	sum.Missing = sum.Points - len(vals)
	if len(vals) == 0 {
		nan := math.NaN()
		sum.Min, sum.Max, sum.Mean, sum.Std = nan, nan, nan, nan
		sum.Median, sum.First, sum.Last = nan, nan, nan
		return sum
	}

	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	sum.Min = sorted[0]
	sum.Max = sorted[len(sorted)-1]
	sum.Mean = sumF(vals) / float64(len(vals))
	sum.Std = stddevF(vals, sum.Mean)
	sum.Median = percentile(sorted, 50)
	sum.First = vals[0]
	sum.Last = vals[len(vals)-1]
	return sum
}

func magnitudes(data datatype.DataFrame) []float64 {
	var vals []float64
	for _, p := range data {
		if v, ok := datatype.Measure(p); ok && !math.IsNaN(v) {
			vals = append(vals, v)
		}
	}
	return vals
}

// ─── Trend ────────────────────────────────────────────────────────────────────

// TrendMethod selects the regression algorithm.
type TrendMethod string

const (
	TrendLinear   TrendMethod = "linear"
	TrendTheilSen TrendMethod = "theil-sen"
)

// TrendResult holds the output of a trend analysis.
type TrendResult struct {
	Index     int         `json:"index"`
	Method    TrendMethod `json:"method"`
	Slope     float64     `json:"slope"` // units per x step
	Intercept float64     `json:"intercept"`
	R2        float64     `json:"r2"`
	Direction string      `json:"direction"` // "up", "down", "flat"
}

// Trend fits a straight line through a series. X is the first element of an
// [x, y] tuple when numeric, otherwise the point's position. Points without
// a magnitude are skipped.
func Trend(index int, s series.Series, method TrendMethod) (TrendResult, error) {
	tr := TrendResult{Index: index, Method: method}

	var pts []point
	for i, p := range s.SeriesData() {
		y, ok := datatype.Measure(p)
		if !ok || math.IsNaN(y) {
			continue
		}
		x := float64(i)
		if a, isArr := p.(datatype.Array); isArr && len(a) >= 2 {
			if v, ok := datatype.Float64(a[0]); ok {
				x = v
			}
		}
		pts = append(pts, point{x, y})
	}
	if len(pts) < 2 {
		return tr, fmt.Errorf("trend: need at least 2 numeric points, got %d", len(pts))
	}

	switch method {
	case TrendTheilSen:
		tr.Slope = theilSenSlope(pts)
		xMean := meanPts(pts, func(p point) float64 { return p.x })
		yMean := meanPts(pts, func(p point) float64 { return p.y })
		tr.Intercept = yMean - tr.Slope*xMean
	default:
		tr.Slope, tr.Intercept = olsRegress(pts)
	}

	tr.R2 = r2(pts, tr.Slope, tr.Intercept)

	switch {
	case tr.Slope > 1e-9:
		tr.Direction = "up"
	case tr.Slope < -1e-9:
		tr.Direction = "down"
	default:
		tr.Direction = "flat"
	}
	return tr, nil
}

// ─── Math helpers ─────────────────────────────────────────────────────────────

func sumF(vals []float64) float64 {
	var s float64
	for _, v := range vals {
		s += v
	}
	return s
}

func stddevF(vals []float64, m float64) float64 {
	if len(vals) < 2 {
		return 0
	}
	var sq float64
	for _, v := range vals {
		d := v - m
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(vals)-1))
}

func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	idx := p / 100 * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}
	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

type point struct{ x, y float64 }

func olsRegress(pts []point) (slope, intercept float64) {
	n := float64(len(pts))
	var xSum, ySum, xySum, x2Sum float64
	for _, p := range pts {
		xSum += p.x
		ySum += p.y
		xySum += p.x * p.y
		x2Sum += p.x * p.x
	}
	denom := n*x2Sum - xSum*xSum
	if denom == 0 {
		return 0, ySum / n
	}
	slope = (n*xySum - xSum*ySum) / denom
	intercept = (ySum - slope*xSum) / n
	return
}

func theilSenSlope(pts []point) float64 {
	var slopes []float64
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			dx := pts[j].x - pts[i].x
			if dx == 0 {
				continue
			}
			slopes = append(slopes, (pts[j].y-pts[i].y)/dx)
		}
	}
	if len(slopes) == 0 {
		return 0
	}
	sort.Float64s(slopes)
	return percentile(slopes, 50)
}

func r2(pts []point, slope, intercept float64) float64 {
	yMean := meanPts(pts, func(p point) float64 { return p.y })

	var ssTot, ssRes float64
	for _, p := range pts {
		pred := slope*p.x + intercept
		ssTot += (p.y - yMean) * (p.y - yMean)
		ssRes += (p.y - pred) * (p.y - pred)
	}
	if ssTot == 0 {
		return 1
	}
	return 1 - ssRes/ssTot
}

func meanPts(pts []point, f func(point) float64) float64 {
	var s float64
	for _, p := range pts {
		s += f(p)
	}
	return s / float64(len(pts))
}
