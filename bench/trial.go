package bench

import (
	"math"

	json "github.com/goccy/go-json"
)

// Trial is the aggregated outcome of one trial: the mean per-call latency
// over Samples timed calls, in microseconds.
type Trial struct {
	Index      int
	Samples    int
	MeanMicros float64
}

// Undefined reports whether the trial has no meaningful mean. A trial that
// timed zero calls carries NaN in MeanMicros.
func (t Trial) Undefined() bool {
	return t.Samples == 0 || math.IsNaN(t.MeanMicros)
}

// MarshalJSON encodes an undefined mean as null, since JSON has no NaN.
func (t Trial) MarshalJSON() ([]byte, error) {
	mean := &t.MeanMicros
	if t.Undefined() {
		mean = nil
	}
	return json.Marshal(struct {
		Index      int      `json:"index"`
		Samples    int      `json:"samples"`
		MeanMicros *float64 `json:"mean_micros"`
	}{
		Index:      t.Index,
		Samples:    t.Samples,
		MeanMicros: mean,
	})
}
