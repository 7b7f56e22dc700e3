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

// Record adds one observation of value to the histogram.
//
// It returns ErrValueOutOfRange if value's counts-array index falls
// outside the histogram's fixed counts array, or ErrCountOverflow if the
// target slot is already at T's maximum count. In either case the
// histogram is left unchanged.
//
// Values are uint64, so the negative-value precondition from the source
// taxonomy (ErrInvalidValue) can never trigger through this signature; it
// remains part of the error taxonomy (see errors.go) for callers that
// accept signed input at their own boundary.
func (h *Histogram[T]) Record(value uint64) error {
	return h.RecordValues(value, 1)
}

// RecordValues is Record, but increments the target slot by count instead
// of by one. It is the building block Record and RecordCorrectedValue are
// both thin wrappers over.
func (h *Histogram[T]) RecordValues(value uint64, count uint64) error {
	index := h.countsArrayIndex(value)
	if index < 0 || index >= h.countsLen {
		return ErrValueOutOfRange
	}

	normalized, err := normalizeIndex(index, h.normalizingIndexOffset, h.countsLen)
	if err != nil {
		return err
	}

	updated, err := addCount(h.counts[normalized], count)
	if err != nil {
		return err
	}
	h.counts[normalized] = updated

	h.updateMinMax(value)
	h.totalCount += count
	return nil
}

// RecordCorrectedValue records value and then back-fills the linear
// sequence of values value-expectedInterval, value-2*expectedInterval, ...
// (each recorded once) down to but not including zero or a remainder below
// expectedInterval. This corrects for coordinated omission: when a stall
// delays the next measurement, the stall itself should show up as a run of
// large latencies rather than a single very-large one immediately followed
// by silence.
//
// If expectedInterval is 0, this is equivalent to Record.
func (h *Histogram[T]) RecordCorrectedValue(value, expectedInterval uint64) error {
	if err := h.Record(value); err != nil {
		return err
	}
	if expectedInterval == 0 || value <= expectedInterval {
		return nil
	}
	for missingValue := value - expectedInterval; missingValue >= expectedInterval; missingValue -= expectedInterval {
		if err := h.Record(missingValue); err != nil {
			return err
		}
	}
	return nil
}

// updateMinMax applies the recording path's min/max update rule: max_value
// tracks the largest recorded value with its unit-magnitude bits set, and
// min_non_zero_value tracks the smallest recorded value above the unit mask
// with its unit-magnitude bits cleared.
func (h *Histogram[T]) updateMinMax(value uint64) {
	if candidate := value | h.unitMagnitudeMask; candidate > h.maxValue {
		h.maxValue = candidate
	}
	if value > h.unitMagnitudeMask && value < h.minNonZeroValue {
		h.minNonZeroValue = value &^ h.unitMagnitudeMask
	}
}
