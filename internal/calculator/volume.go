package calculator

import "StockAdvisor/internal/model"

// volumeSpikeRatio marks the latest volume as a spike relative to the average.
const volumeSpikeRatio = 1.5

// AnalyzeVolume compares the most recent volume with the series average.
// Returns nil for an empty series.
func AnalyzeVolume(volume []int64) *model.VolumeProfile {
	if len(volume) == 0 {
		return nil
	}
	var sum float64
	for _, v := range volume {
		sum += float64(v)
	}
	avg := sum / float64(len(volume))
	recent := volume[len(volume)-1]

	ratio := 0.0
	if avg > 0 {
		ratio = float64(recent) / avg
	}
	return &model.VolumeProfile{
		Average: avg,
		Recent:  recent,
		Ratio:   ratio,
		Spike:   ratio > volumeSpikeRatio,
	}
}
