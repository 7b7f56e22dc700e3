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

// percentileStrategy reports steps at percentile levels that get finer
// the closer they get to 100%: each half of the remaining distance to 100
// is split into ticksPerHalfDistance steps. This puts the same resolution
// budget on the long tail as it does on the bulk of the distribution.
type percentileStrategy[T Count] struct {
	baseStrategy[T]
	ticksPerHalfDistance       uint32
	percentileLevelToIterateTo float64
	reachedLastRecordedValue   bool
}

func (s *percentileStrategy[T]) reachedIterationLevel(c *cursor[T]) bool {
	if toUint64(c.countAtThisValue) == 0 {
		return false
	}
	currentPercentile := 100 * float64(c.totalCountToCurrentIndex) / float64(c.arrayTotalCount)
	return currentPercentile >= s.percentileLevelToIterateTo
}

func (s *percentileStrategy[T]) percentileIteratedTo(c *cursor[T]) float64 {
	return s.percentileLevelToIterateTo
}

func (s *percentileStrategy[T]) incrementIterationLevel(c *cursor[T]) {
	if s.percentileLevelToIterateTo >= 100 {
		return
	}
	distanceToHundred := 100 / (100 - s.percentileLevelToIterateTo)
	halvings := math.Floor(math.Log2(distanceToHundred)) + 1
	ticksPerDistance := float64(s.ticksPerHalfDistance) * math.Pow(2, halvings)
	s.percentileLevelToIterateTo += 100 / ticksPerDistance
	if s.percentileLevelToIterateTo > 100 {
		s.percentileLevelToIterateTo = 100
	}
}

// allowFurtherIteration lets the default exhaustion check fail exactly
// once more after every observation has been accounted for, forcing the
// target level to 100 so the final emitted step reports a clean 100th
// percentile rather than whatever fractional level the ticks arithmetic
// last landed on.
func (s *percentileStrategy[T]) allowFurtherIteration(c *cursor[T]) bool {
	if s.baseStrategy.allowFurtherIteration(c) {
		return true
	}
	if s.reachedLastRecordedValue {
		return false
	}
	s.reachedLastRecordedValue = true
	s.percentileLevelToIterateTo = 100
	return true
}

// Percentiles returns an iterator over percentile levels, with
// ticksPerHalfDistance steps covering each halving of the distance
// remaining to the 100th percentile. The last step always reports exactly
// percentile level 100.
func (h *Histogram[T]) Percentiles(ticksPerHalfDistance uint32) *Iterator[T] {
	return newIterator[T](h, &percentileStrategy[T]{ticksPerHalfDistance: ticksPerHalfDistance})
}
