package domain

import (
	"fmt"
	"strings"
	"time"
)

// SeriesLength is the number of points in every progress series.
const SeriesLength = 12

const (
	minMetric      = 0
	maxMetric      = 100
	minRandomValue = 1
)

// Rand is the random source used for generation. *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// MonthNames returns the English month names in calendar order.
func MonthNames() []string {
	names := make([]string, SeriesLength)
	for i := range names {
		names[i] = time.Month(i + 1).String()
	}
	return names
}

// GenerateSeries draws one point per calendar month with both metrics
// uniform in [1,100].
func GenerateSeries(rng Rand) []ProgressPoint {
	series := make([]ProgressPoint, SeriesLength)
	for i := range series {
		series[i] = ProgressPoint{
			Month:     time.Month(i + 1).String(),
			Primary:   randomMetric(rng),
			Secondary: randomMetric(rng),
		}
	}
	return series
}

func randomMetric(rng Rand) int {
	return rng.IntN(maxMetric) + minRandomValue
}

// CompletionPercentage is the mean of every primary and secondary value,
// rounded half up. An empty series yields 0.
func CompletionPercentage(series []ProgressPoint) int {
	values := len(series) * 2
	if values == 0 {
		return 0
	}

	sum := 0
	for _, p := range series {
		sum += p.Primary + p.Secondary
	}
	if sum <= 0 {
		return 0
	}

	// floor(sum/values + 1/2) without floating point
	return (2*sum + values) / (2 * values)
}

// NormalizeSeries validates an externally supplied series and returns a
// canonical copy. Blank month labels are filled in and label case is fixed;
// a wrong length, an out-of-order month or a metric outside [0,100] is
// rejected with ErrInvalidSeries.
func NormalizeSeries(series []ProgressPoint) ([]ProgressPoint, error) {
	if len(series) != SeriesLength {
		return nil, fmt.Errorf("%w: expected %d points, got %d", ErrInvalidSeries, SeriesLength, len(series))
	}

	out := make([]ProgressPoint, SeriesLength)
	for i, p := range series {
		want := time.Month(i + 1).String()
		label := strings.TrimSpace(p.Month)
		if label != "" && !strings.EqualFold(label, want) {
			return nil, fmt.Errorf("%w: point %d is %q, expected %s", ErrInvalidSeries, i, p.Month, want)
		}
		if !metricInRange(p.Primary) || !metricInRange(p.Secondary) {
			return nil, fmt.Errorf("%w: %s metrics must be within [%d,%d]", ErrInvalidSeries, want, minMetric, maxMetric)
		}
		out[i] = ProgressPoint{Month: want, Primary: p.Primary, Secondary: p.Secondary}
	}
	return out, nil
}

func metricInRange(v int) bool {
	return v >= minMetric && v <= maxMetric
}
