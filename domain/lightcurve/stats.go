package lightcurve

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// BandStats summarizes one band's observations
type BandStats struct {
	Band      string
	Points    int
	FirstTime float64
	LastTime  float64
	// MeanFlux is weighted by 1/e_flux² unless some error is zero.
	MeanFlux float64
	// MeanFluxErr is the standard error of MeanFlux; NaN when unweighted.
	MeanFluxErr float64
	Weighted    bool
	PeakFlux    float64
	PeakTime    float64
}

// ComputeBandStats summarizes a series. An empty series yields NaN statistics.
func ComputeBandStats(s Series) BandStats {
	bs := BandStats{Band: s.Band, Points: s.Len()}
	if s.Len() == 0 {
		nan := math.NaN()
		bs.FirstTime, bs.LastTime, bs.MeanFlux, bs.MeanFluxErr = nan, nan, nan, nan
		bs.PeakFlux, bs.PeakTime = nan, nan
		return bs
	}

	bs.FirstTime = floats.Min(s.Time)
	bs.LastTime = floats.Max(s.Time)
	peak := floats.MaxIdx(s.Flux)
	bs.PeakFlux = s.Flux[peak]
	bs.PeakTime = s.Time[peak]

	weights := make([]float64, len(s.FluxErr))
	for i, e := range s.FluxErr {
		if e == 0 {
			weights = nil
			break
		}
		weights[i] = 1 / (e * e)
	}

	bs.MeanFlux = stat.Mean(s.Flux, weights)
	if weights != nil {
		bs.Weighted = true
		bs.MeanFluxErr = 1 / math.Sqrt(floats.Sum(weights))
	} else {
		bs.MeanFluxErr = math.NaN()
	}
	return bs
}

// ComputeAllBandStats summarizes every series in order
func ComputeAllBandStats(series []Series) []BandStats {
	out := make([]BandStats, len(series))
	for i, s := range series {
		out[i] = ComputeBandStats(s)
	}
	return out
}
