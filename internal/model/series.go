package model

import (
	"math"
	"time"
)

// MinHistory is the shortest price series a recommendation is computed for.
const MinHistory = 50

// PriceSeries is an ordered list of closing prices, oldest first.
type PriceSeries []float64

// Last returns the most recent price. The series must not be empty.
func (p PriceSeries) Last() float64 {
	return p[len(p)-1]
}

// VolumeSeries is an optional per-observation volume, aligned with a PriceSeries.
type VolumeSeries []int64

// Bar represents a single daily observation.
type Bar struct {
	Day    time.Time `json:"day"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// Series holds the daily history of one symbol, oldest first.
type Series struct {
	Symbol string
	Bars   []Bar
}

// Closes extracts the closing prices.
func (s *Series) Closes() PriceSeries {
	closes := make(PriceSeries, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// Volumes extracts the volumes, or nil when no bar carries volume.
func (s *Series) Volumes() VolumeSeries {
	hasVolume := false
	vols := make(VolumeSeries, len(s.Bars))
	for i, b := range s.Bars {
		vols[i] = b.Volume
		if b.Volume != 0 {
			hasVolume = true
		}
	}
	if !hasVolume {
		return nil
	}
	return vols
}

// Validate rejects empty, non-finite or non-positive prices and volume series
// that are misaligned with the prices or contain negative values.
// A nil volume series is accepted.
func Validate(prices PriceSeries, volume VolumeSeries) error {
	if len(prices) == 0 {
		return &InvalidInputError{Field: "prices", Index: -1, Reason: "series is empty"}
	}
	for i, p := range prices {
		switch {
		case math.IsNaN(p) || math.IsInf(p, 0):
			return &InvalidInputError{Field: "prices", Index: i, Reason: "price is not finite"}
		case p <= 0:
			return &InvalidInputError{Field: "prices", Index: i, Reason: "price must be positive"}
		}
	}
	if volume == nil {
		return nil
	}
	if len(volume) != len(prices) {
		return &InvalidInputError{Field: "volume", Index: -1, Reason: "volume length does not match prices"}
	}
	for i, v := range volume {
		if v < 0 {
			return &InvalidInputError{Field: "volume", Index: i, Reason: "volume must not be negative"}
		}
	}
	return nil
}
