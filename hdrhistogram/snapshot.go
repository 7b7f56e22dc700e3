// Copyright 2015 HDR Histogram Contributors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hdrhistogram

import (
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

// snapshotPercentiles is the fixed percentile ladder every Snapshot
// reports, matching the ladder most dashboards already expect.
var snapshotPercentiles = []float64{50, 75, 90, 95, 99, 99.9, 99.99, 100}

// HistogramSnapshot is a point-in-time, allocation-light view of a
// Histogram suitable for logging or for a debug/introspection endpoint. It
// is a plain value, safe to retain after the Histogram that produced it
// has moved on.
type HistogramSnapshot struct {
	Count       uint64             `json:"count"`
	Max         uint64             `json:"max"`
	MinNonZero  uint64             `json:"minNonZero"`
	Mean        float64            `json:"mean"`
	Percentiles map[string]uint64  `json:"percentiles"`
}

// Snapshot captures the histogram's current count, max, min-non-zero,
// mean, and a fixed ladder of percentiles.
func (h *Histogram[T]) Snapshot() HistogramSnapshot {
	s := HistogramSnapshot{
		Count:       h.Count(),
		Max:         h.Max(),
		MinNonZero:  h.MinNonZero(),
		Mean:        h.Mean(),
		Percentiles: make(map[string]uint64, len(snapshotPercentiles)),
	}
	for _, p := range snapshotPercentiles {
		s.Percentiles[formatPercentileKey(p)] = h.ValueAtPercentile(p)
	}
	return s
}

// MarshalJSON renders the snapshot via json-iterator, which this package
// uses instead of encoding/json for every JSON surface it exposes.
func (s HistogramSnapshot) MarshalJSON() ([]byte, error) {
	type alias HistogramSnapshot
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(alias(s))
}

func formatPercentileKey(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
