package bench

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Result couples a source's name with the trials measured for it.
type Result struct {
	Name   string  `json:"name"`
	Trials []Trial `json:"trials"`
}

// MeanMicros is the mean of the defined per-trial means, NaN when the result
// holds no defined trial at all.
func (r Result) MeanMicros() float64 {
	sum, n := 0.0, 0
	for _, t := range r.Trials {
		if t.Undefined() {
			continue
		}
		sum += t.MeanMicros
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// RelativeLabel renders how a candidate mean compares against a baseline
// mean, e.g. "1.25x faster" or "1.25x slower". A tie counts as not-faster and
// reads "1.00x slower"; any undefined mean reads "undefined".
func RelativeLabel(baseline, candidate float64) string {
	if math.IsNaN(baseline) || math.IsNaN(candidate) {
		return "undefined"
	}
	// Equality is handled before dividing so that two zero means still read
	// as a tie.
	if candidate == baseline {
		return "1.00x slower"
	}
	if candidate < baseline {
		return fmt.Sprintf("%.2fx faster", baseline/candidate)
	}
	return fmt.Sprintf("%.2fx slower", candidate/baseline)
}

// WriteComparison renders a fixed-width table with one row per trial, both
// means in microseconds side by side and the candidate labeled relative to
// the baseline, followed by a mean-of-means row and a one-line verdict.
//
// Both results must hold the same number of trials.
func WriteComparison(w io.Writer, baseline, candidate Result) error {
	if len(baseline.Trials) != len(candidate.Trials) {
		return fmt.Errorf("can't compare %d %s trials against %d %s trials",
			len(baseline.Trials), baseline.Name, len(candidate.Trials), candidate.Name)
	}

	rule := strings.Repeat("-", 58)

	fmt.Fprintf(w, "%-8s %15s %15s   %s\n", "trial", baseline.Name, candidate.Name, "relative")
	fmt.Fprintln(w, rule)

	for i, b := range baseline.Trials {
		c := candidate.Trials[i]
		fmt.Fprintf(w, "%-8d %15s %15s   %s\n",
			b.Index, formatMean(b.MeanMicros), formatMean(c.MeanMicros),
			RelativeLabel(b.MeanMicros, c.MeanMicros))
	}

	bm, cm := baseline.MeanMicros(), candidate.MeanMicros()
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-8s %15s %15s   %s\n", "mean", formatMean(bm), formatMean(cm), RelativeLabel(bm, cm))

	if math.IsNaN(bm) || math.IsNaN(cm) {
		fmt.Fprintf(w, "\nrelative performance is undefined\n")
		return nil
	}
	fmt.Fprintf(w, "\n%s is %s than %s on average\n", candidate.Name, RelativeLabel(bm, cm), baseline.Name)
	return nil
}

// formatMean renders a mean in microseconds, "undefined" when there is none.
func formatMean(mean float64) string {
	if math.IsNaN(mean) {
		return "undefined"
	}
	return fmt.Sprintf("%.2f", mean)
}
