package chart

import (
	"errors"
	"fmt"

	"github.com/derickschaefer/chartspec/pkg/component"
	"github.com/derickschaefer/chartspec/pkg/series"
)

var (
	// ErrSeriesIndex is returned for a series position outside the chart.
	ErrSeriesIndex = errors.New("series index out of range")
	// ErrSeriesNotFound is returned when no series carries the requested id.
	ErrSeriesNotFound = errors.New("series not found")
)

// WithMutable runs fn with exclusive edit access to the chart. The Controller
// and any series controllers obtained from it stop working when fn returns;
// using them afterwards panics. Calls from other goroutines wait until fn is
// done. fn's error is returned unchanged.
//
// fn must not call WithMutable on the same chart.
func (c *Chart) WithMutable(fn func(*Controller) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	live := true
	ctl := &Controller{c: c, valid: func() bool { return live }}
	defer func() { live = false }()
	return fn(ctl)
}

// Controller edits a chart inside WithMutable.
type Controller struct {
	c     *Chart
	valid func() bool
}

func (ctl *Controller) check() {
	if !ctl.valid() {
		panic("chart: controller used after WithMutable returned")
	}
}

func (ctl *Controller) ResetXAxis() *Controller {
	ctl.check()
	ctl.c.ResetXAxis()
	return ctl
}

// XAxis appends x axes.
func (ctl *Controller) XAxis(a ...component.Axis) *Controller {
	ctl.check()
	ctl.c.XAxis(a...)
	return ctl
}

func (ctl *Controller) ResetYAxis() *Controller {
	ctl.check()
	ctl.c.ResetYAxis()
	return ctl
}

// YAxis appends y axes.
func (ctl *Controller) YAxis(a ...component.Axis) *Controller {
	ctl.check()
	ctl.c.YAxis(a...)
	return ctl
}

func (ctl *Controller) ResetSeries() *Controller {
	ctl.check()
	ctl.c.ResetSeries()
	return ctl
}

// Series appends copies of s.
func (ctl *Controller) Series(s ...series.Series) *Controller {
	ctl.check()
	ctl.c.Series(s...)
	return ctl
}

// SeriesCount returns the number of series.
func (ctl *Controller) SeriesCount() int {
	ctl.check()
	return ctl.c.SeriesCount()
}

// SeriesAt returns a controller for the series at position i.
func (ctl *Controller) SeriesAt(i int) (*series.Controller, error) {
	ctl.check()
	if n := len(ctl.c.o.Series); i < 0 || i >= n {
		return nil, fmt.Errorf("%w: %d (have %d)", ErrSeriesIndex, i, n)
	}
	return series.NewController(ctl.c.o.Series[i], ctl.valid), nil
}

// SeriesWithID returns a controller for the first series with the given id.
func (ctl *Controller) SeriesWithID(id string) (*series.Controller, error) {
	ctl.check()
	i := ctl.c.indexOf(id)
	if id == "" || i < 0 {
		return nil, fmt.Errorf("%w: id %q", ErrSeriesNotFound, id)
	}
	return series.NewController(ctl.c.o.Series[i], ctl.valid), nil
}
