// Package transform reshapes observation streams before they are charted.
//
// A step is written as name[:arg[:arg]] on the command line, for example
// "pct:12", "roll:3:mean" or "resample:quarter:sum". Steps are pure: each
// returns a new slice and never modifies its input.
package transform

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/derickschaefer/chartspec/internal/model"
	"github.com/derickschaefer/chartspec/internal/util"
)

// Step maps one observation stream to another.
type Step func([]model.Observation) ([]model.Observation, error)

// Names lists the step names Parse accepts.
var Names = []string{"pct", "diff", "roll", "resample", "since", "until", "dropna"}

// Parse turns one step expression into a Step.
func Parse(expr string) (Step, error) {
	parts := strings.Split(strings.TrimSpace(expr), ":")
	name, args := parts[0], parts[1:]

	switch name {
	case "pct":
		n, err := intArg(name, args, 0, 1)
		if err != nil {
			return nil, err
		}
		return func(obs []model.Observation) ([]model.Observation, error) { return PctChange(obs, n) }, nil
	case "diff":
		n, err := intArg(name, args, 0, 1)
		if err != nil {
			return nil, err
		}
		return func(obs []model.Observation) ([]model.Observation, error) { return Diff(obs, n) }, nil
	case "roll":
		n, err := intArg(name, args, 0, 0)
		if err != nil {
			return nil, err
		}
		stat := Mean
		if len(args) > 1 {
			stat = Stat(args[1])
		}
		if _, err := stat.reduce(nil); err != nil {
			return nil, fmt.Errorf("roll: %w", err)
		}
		return func(obs []model.Observation) ([]model.Observation, error) { return Roll(obs, n, stat) }, nil
	case "resample":
		if len(args) == 0 {
			return nil, fmt.Errorf("resample: period required (month, quarter or year)")
		}
		period := Period(args[0])
		if _, err := period.start(time.Time{}); err != nil {
			return nil, err
		}
		stat := Mean
		if len(args) > 1 {
			stat = Stat(args[1])
		}
		if _, err := stat.reduce(nil); err != nil {
			return nil, fmt.Errorf("resample: %w", err)
		}
		return func(obs []model.Observation) ([]model.Observation, error) { return Resample(obs, period, stat) }, nil
	case "since", "until":
		if len(args) != 1 {
			return nil, fmt.Errorf("%s: expected one date argument", name)
		}
		d, err := util.ParseDate(args[0])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		keep := func(o model.Observation) bool { return !o.Date.Before(d) }
		if name == "until" {
			keep = func(o model.Observation) bool { return !o.Date.After(d) }
		}
		return func(obs []model.Observation) ([]model.Observation, error) { return Filter(obs, keep), nil }, nil
	case "dropna":
		return func(obs []model.Observation) ([]model.Observation, error) {
			return Filter(obs, func(o model.Observation) bool { return !o.IsMissing() }), nil
		}, nil
	}
	return nil, fmt.Errorf("unknown step %q (expected one of %s)", name, strings.Join(Names, ", "))
}

// Chain parses every expression and returns a Step applying them in order.
func Chain(exprs []string) (Step, error) {
	steps := make([]Step, 0, len(exprs))
	for _, e := range exprs {
		s, err := Parse(e)
		if err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}
	return func(obs []model.Observation) ([]model.Observation, error) {
		var err error
		for i, s := range steps {
			if obs, err = s(obs); err != nil {
				return nil, fmt.Errorf("step %d (%s): %w", i+1, exprs[i], err)
			}
		}
		return obs, nil
	}, nil
}

// intArg reads args[i] as a positive integer, or returns def when absent and
// def is non-zero.
func intArg(name string, args []string, i, def int) (int, error) {
	if len(args) <= i {
		if def == 0 {
			return 0, fmt.Errorf("%s: argument %d required", name, i+1)
		}
		return def, nil
	}
	n, err := strconv.Atoi(args[i])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s: %q is not a positive integer", name, args[i])
	}
	return n, nil
}

// ─── Operators ────────────────────────────────────────────────────────────────

// PctChange replaces each value by its percent change over lag steps. The
// first lag observations have no base and are dropped; a zero or missing
// base yields a missing value.
func PctChange(obs []model.Observation, lag int) ([]model.Observation, error) {
	return lagged(obs, lag, func(cur, prev float64) float64 {
		if prev == 0 {
			return math.NaN()
		}
		return (cur - prev) / math.Abs(prev) * 100
	})
}

// Diff applies first differences order times.
func Diff(obs []model.Observation, order int) ([]model.Observation, error) {
	var err error
	for i := 0; i < order; i++ {
		if obs, err = lagged(obs, 1, func(cur, prev float64) float64 { return cur - prev }); err != nil {
			return nil, err
		}
	}
	return obs, nil
}

func lagged(obs []model.Observation, lag int, f func(cur, prev float64) float64) ([]model.Observation, error) {
	if len(obs) <= lag {
		return nil, fmt.Errorf("need more than %d observations, got %d", lag, len(obs))
	}
	out := make([]model.Observation, 0, len(obs)-lag)
	for i := lag; i < len(obs); i++ {
		v := math.NaN()
		if cur, prev := obs[i].Value, obs[i-lag].Value; !math.IsNaN(cur) && !math.IsNaN(prev) {
			v = f(cur, prev)
		}
		out = append(out, observation(obs[i].Date, v))
	}
	return out, nil
}

// Roll replaces each value by stat over a trailing window of size
// observations, the current one included. Missing values are skipped; a
// window with none left is missing.
func Roll(obs []model.Observation, size int, stat Stat) ([]model.Observation, error) {
	if size < 1 {
		return nil, fmt.Errorf("window must be >= 1, got %d", size)
	}
	out := make([]model.Observation, len(obs))
	for i, o := range obs {
		lo := i - size + 1
		if lo < 0 {
			lo = 0
		}
		v, err := stat.reduce(values(obs[lo : i+1]))
		if err != nil {
			return nil, err
		}
		out[i] = observation(o.Date, v)
	}
	return out, nil
}

// Period is a resampling bucket.
type Period string

const (
	Month   Period = "month"
	Quarter Period = "quarter"
	Year    Period = "year"
)

// start returns the first day of the bucket holding t.
func (p Period) start(t time.Time) (time.Time, error) {
	switch p {
	case Month:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	case Quarter:
		return time.Date(t.Year(), (t.Month()-1)/3*3+1, 1, 0, 0, 0, 0, time.UTC), nil
	case Year:
		return time.Date(t.Year(), 1, 1, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("unknown period %q (expected month, quarter or year)", p)
}

// Resample groups observations into periods dated by their first day and
// reduces each group with stat. Output is in date order.
func Resample(obs []model.Observation, period Period, stat Stat) ([]model.Observation, error) {
	if len(obs) == 0 {
		return nil, fmt.Errorf("empty input")
	}
	groups := make(map[time.Time][]model.Observation)
	for _, o := range obs {
		key, err := period.start(o.Date)
		if err != nil {
			return nil, err
		}
		groups[key] = append(groups[key], o)
	}

	keys := make([]time.Time, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	out := make([]model.Observation, len(keys))
	for i, k := range keys {
		v, err := stat.reduce(values(groups[k]))
		if err != nil {
			return nil, err
		}
		out[i] = observation(k, v)
	}
	return out, nil
}

// Filter keeps the observations for which keep returns true.
func Filter(obs []model.Observation, keep func(model.Observation) bool) []model.Observation {
	out := make([]model.Observation, 0, len(obs))
	for _, o := range obs {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}

// ─── Statistics ───────────────────────────────────────────────────────────────

// Stat reduces a window or group to one value.
type Stat string

const (
	Mean Stat = "mean"
	Sum  Stat = "sum"
	Min  Stat = "min"
	Max  Stat = "max"
	Last Stat = "last"
)

// reduce applies s to vals. An empty vals gives NaN, which is also how
// Parse checks a name without data.
func (s Stat) reduce(vals []float64) (float64, error) {
	switch s {
	case Mean, Sum, Min, Max, Last:
	default:
		return 0, fmt.Errorf("unknown statistic %q (expected mean, sum, min, max or last)", s)
	}
	if len(vals) == 0 {
		return math.NaN(), nil
	}

	acc := vals[0]
	for _, v := range vals[1:] {
		switch s {
		case Mean, Sum:
			acc += v
		case Min:
			acc = math.Min(acc, v)
		case Max:
			acc = math.Max(acc, v)
		case Last:
			acc = v
		}
	}
	if s == Mean {
		acc /= float64(len(vals))
	}
	return acc, nil
}

// values returns the non-missing values of obs.
func values(obs []model.Observation) []float64 {
	out := make([]float64, 0, len(obs))
	for _, o := range obs {
		if !o.IsMissing() {
			out = append(out, o.Value)
		}
	}
	return out
}

func observation(date time.Time, v float64) model.Observation {
	raw := "."
	if !math.IsNaN(v) {
		raw = util.FormatValue(v)
	}
	return model.Observation{Date: date, Value: v, ValueRaw: raw}
}
