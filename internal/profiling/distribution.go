package profiling

import (
	"github.com/montanaflynn/stats"
)

// NumericSummary holds the descriptive statistics of a numeric column
type NumericSummary struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Median float64
	Max    float64
}

// Summarize computes descriptive statistics for data
func Summarize(data []float64) (NumericSummary, error) {
	summary := NumericSummary{Count: len(data)}

	mean, err := stats.Mean(data)
	if err != nil {
		return summary, err
	}

	stdDev, err := stats.StandardDeviation(data)
	if err != nil {
		return summary, err
	}

	min, err := stats.Min(data)
	if err != nil {
		return summary, err
	}

	max, err := stats.Max(data)
	if err != nil {
		return summary, err
	}

	median, err := stats.Median(data)
	if err != nil {
		return summary, err
	}

	summary.Mean = mean
	summary.StdDev = stdDev
	summary.Min = min
	summary.Median = median
	summary.Max = max
	return summary, nil
}
