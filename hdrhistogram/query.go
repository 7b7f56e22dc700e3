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

// Count returns the number of values recorded so far.
func (h *Histogram[T]) Count() uint64 { return h.totalCount }

// Max returns the largest value recorded so far with its bits below
// lowestDiscernibleValue's magnitude set, or 0 if nothing has been recorded.
func (h *Histogram[T]) Max() uint64 { return h.maxValue }

// MinNonZero returns the smallest value recorded so far that is above
// lowestDiscernibleValue's unit mask, with its bits below that magnitude
// cleared, or math.MaxUint64 if no such value has been recorded.
func (h *Histogram[T]) MinNonZero() uint64 { return h.minNonZeroValue }

// CountAtValue returns the count recorded at value's equivalence class.
// Values above the histogram's expressible range are clamped to the last
// slot rather than treated as an error, matching the read-side leniency
// the iteration and percentile queries also rely on.
func (h *Histogram[T]) CountAtValue(value uint64) T {
	index := h.countsArrayIndex(value)
	if index >= h.countsLen {
		index = h.countsLen - 1
	}
	if index < 0 {
		index = 0
	}
	count, err := h.countAtIndex(index)
	if err != nil {
		var zero T
		return zero
	}
	return count
}

// ValueAtPercentile returns the value v such that percentile percent of
// recorded observations are less than or equal to v. percentile is clamped
// to [0, 100]. If the histogram is empty, it returns 0 for every
// percentile.
//
// For percentile == 0 the result is the lowest-equivalent form of the
// smallest recorded value's slot; for any percentile > 0 it is the
// highest-equivalent form of the slot the target count falls in, which
// matches the "at least percentile% of samples are <= this value" contract
// even when many distinct values alias into one slot.
func (h *Histogram[T]) ValueAtPercentile(percentile float64) uint64 {
	if h.totalCount == 0 {
		return 0
	}

	p := percentile
	if p > 100 {
		p = 100
	}
	if p < 0 {
		p = 0
	}

	target := uint64((p/100)*float64(h.totalCount) + 0.5)
	if target < 1 {
		target = 1
	}

	var sum uint64
	for i := 0; i < h.countsLen; i++ {
		count, err := h.countAtIndex(i)
		if err != nil {
			return 0
		}
		sum += toUint64(count)
		if sum >= target {
			v := h.valueFromIndex(i)
			if p == 0 {
				return h.lowestEquivalent(v)
			}
			return h.highestEquivalent(v)
		}
	}
	return 0
}

// Mean returns the arithmetic mean of all recorded values, using the
// midpoint rule (each slot contributes count * highestEquivalent(value) to
// the running total, the same accounting iteration already performs). It
// returns 0 for an empty histogram.
func (h *Histogram[T]) Mean() float64 {
	if h.totalCount == 0 {
		return 0
	}
	var totalValue uint64
	for i := 0; i < h.countsLen; i++ {
		count, err := h.countAtIndex(i)
		if err != nil || count == 0 {
			continue
		}
		totalValue += toUint64(count) * h.highestEquivalent(h.valueFromIndex(i))
	}
	return float64(totalValue) / float64(h.totalCount)
}

// LowestEquivalent returns the smallest value that maps to the same
// counts-array slot as value.
func (h *Histogram[T]) LowestEquivalent(value uint64) uint64 { return h.lowestEquivalent(value) }

// HighestEquivalent returns the largest value that maps to the same
// counts-array slot as value.
func (h *Histogram[T]) HighestEquivalent(value uint64) uint64 { return h.highestEquivalent(value) }

// NextNonEquivalent returns the smallest value strictly greater than value
// that maps to a different counts-array slot.
func (h *Histogram[T]) NextNonEquivalent(value uint64) uint64 { return h.nextNonEquivalent(value) }

// SizeOfEquivalentRange returns the number of distinct values that map to
// the same counts-array slot as value.
func (h *Histogram[T]) SizeOfEquivalentRange(value uint64) uint64 {
	return h.sizeOfEquivalentRange(value)
}
