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

import "math"

// Histogram is a fixed-memory record of integer values, bucketed so that
// the relative error at any magnitude above lowestDiscernibleValue is
// bounded by the histogram's significantValueDigits. See the package doc
// comment for the shape of the guarantee and the concurrency contract.
//
// T is the element type of the counts array: a wider T tolerates more
// repeated observations of the same equivalence class before Record
// returns ErrCountOverflow, at the cost of more memory per slot.
type Histogram[T Count] struct {
	params

	counts                 []T
	totalCount              uint64
	maxValue                uint64
	minNonZeroValue         uint64
	normalizingIndexOffset  int32
}

// New builds a Histogram able to distinguish values from
// lowestDiscernibleValue up to at least highestTrackableValue, preserving
// significantValueDigits decimal digits of relative precision at every
// magnitude in between.
//
// Preconditions: lowestDiscernibleValue >= 1, highestTrackableValue >=
// 2*lowestDiscernibleValue, 0 <= significantValueDigits <= 5. Violating any
// of them is a programming error and New reports it as
// ErrInvalidConstruction rather than panicking, so that callers building a
// histogram from untrusted configuration can surface a clean error; use
// MustNew when the parameters are compile-time constants.
func New[T Count](lowestDiscernibleValue, highestTrackableValue uint64, significantValueDigits int) (*Histogram[T], error) {
	p, err := newParams(lowestDiscernibleValue, highestTrackableValue, significantValueDigits)
	if err != nil {
		return nil, err
	}
	h := &Histogram[T]{
		params:          p,
		counts:          make([]T, p.countsLen),
		minNonZeroValue: math.MaxUint64,
	}
	return h, nil
}

// MustNew is like New but panics instead of returning an error.
func MustNew[T Count](lowestDiscernibleValue, highestTrackableValue uint64, significantValueDigits int) *Histogram[T] {
	h, err := New[T](lowestDiscernibleValue, highestTrackableValue, significantValueDigits)
	if err != nil {
		panic(err)
	}
	return h
}

// Reset zeroes every recorded count and restores Max, MinNonZero, and
// Count to their empty-histogram values. It does not reset
// normalizingIndexOffset: a value-range shift (not yet exposed by this
// package, see the design notes) and a reset are independent concerns.
func (h *Histogram[T]) Reset() {
	clear(h.counts)
	h.totalCount = 0
	h.maxValue = 0
	h.minNonZeroValue = math.MaxUint64
}

// LowestDiscernibleValue returns the value supplied to New.
func (h *Histogram[T]) LowestDiscernibleValue() uint64 { return h.lowestDiscernibleValue }

// HighestTrackableValue returns the value supplied to New.
func (h *Histogram[T]) HighestTrackableValue() uint64 { return h.highestTrackableValue }

// SignificantValueDigits returns the value supplied to New.
func (h *Histogram[T]) SignificantValueDigits() int { return h.significantValueDigits }

// CountsLen returns the size of the underlying fixed counts array, the
// unit of work for Query and Iterate operations.
func (h *Histogram[T]) CountsLen() int { return h.countsLen }

// countAtIndex reads the count at a physical slot, routing through
// normalizeIndex per the current offset.
func (h *Histogram[T]) countAtIndex(index int) (T, error) {
	normalized, err := normalizeIndex(index, h.normalizingIndexOffset, h.countsLen)
	if err != nil {
		var zero T
		return zero, err
	}
	return h.counts[normalized], nil
}
