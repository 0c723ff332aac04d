// Package model defines the data types shared by chartspec's commands,
// store, and renderers, and the result envelope every reporting command
// returns.
package model

import (
	"encoding/json"
	"math"
	"time"

	"github.com/derickschaefer/chartspec/pkg/chart"
)

// ─── Input Types ──────────────────────────────────────────────────────────────

// Observation is a single dated value read from a JSONL stream.
// Value is NaN when the raw value is null, "." or empty (missing data).
type Observation struct {
	Date     time.Time `json:"date"`
	Value    float64   `json:"value"`
	ValueRaw string    `json:"value_raw"`
}

// IsMissing returns true if the observation value is NaN (missing data).
func (o Observation) IsMissing() bool {
	return math.IsNaN(o.Value)
}

// Point is one scatter sample.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ─── Stored Charts ────────────────────────────────────────────────────────────

// ChartRecord is a chart document saved in the store.
type ChartRecord struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Series    int             `json:"series"`
	Document  json.RawMessage `json:"document"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Chart decodes the stored document.
func (r ChartRecord) Chart() (*chart.Chart, error) {
	return chart.Parse(r.Document)
}

// ─── Reports ──────────────────────────────────────────────────────────────────

// SeriesSummary holds descriptive statistics for one series of a chart.
// Statistics cover points with a numeric magnitude; the rest count as missing.
type SeriesSummary struct {
	Index   int     `json:"index"`
	Type    string  `json:"type"`
	ID      string  `json:"id,omitempty"`
	Name    string  `json:"name,omitempty"`
	Points  int     `json:"points"`
	Missing int     `json:"missing"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Mean    float64 `json:"mean"`
	Std     float64 `json:"std"`
	Median  float64 `json:"median"`
	First   float64 `json:"first"`
	Last    float64 `json:"last"`
}

// Validation is the outcome of decoding one input document.
type Validation struct {
	File   string `json:"file"`
	OK     bool   `json:"ok"`
	Series int    `json:"series"`
	Error  string `json:"error,omitempty"`
}

// ─── Result Envelope ─────────────────────────────────────────────────────────

// ResultStats carries timing metadata for a command result.
type ResultStats struct {
	DurationMs int64 `json:"duration_ms"`
	Items      int   `json:"items"`
}

// Result is the uniform envelope returned by reporting commands.
// The Data field holds the typed payload; Kind identifies what is in it.
// Renderers switch on Kind to format output appropriately.
type Result struct {
	Kind        string      `json:"kind"`
	GeneratedAt time.Time   `json:"generated_at"`
	Command     string      `json:"command"`
	Data        interface{} `json:"data"`
	Warnings    []string    `json:"warnings,omitempty"`
	Stats       ResultStats `json:"stats"`
}

// Kind constants for Result.Kind.
const (
	KindSummary    = "series_summary"
	KindRecords    = "chart_records"
	KindValidation = "validation"
)
