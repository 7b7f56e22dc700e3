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

// linearStrategy reports one step per fixed-width bucket of
// valueUnitsPerBucket, the same shape as logStrategy but with an additive
// rather than multiplicative step.
type linearStrategy[T Count] struct {
	baseStrategy[T]
	currentStepHigh     uint64
	valueUnitsPerBucket uint64
}

func newLinearStrategy[T Count](valueUnitsPerBucket uint64) *linearStrategy[T] {
	return &linearStrategy[T]{
		currentStepHigh:     valueUnitsPerBucket,
		valueUnitsPerBucket: valueUnitsPerBucket,
	}
}

func (s *linearStrategy[T]) reachedIterationLevel(c *cursor[T]) bool {
	if c.currentIndex == c.h.countsLen-1 {
		return true
	}
	return c.currentValueAtIndex >= c.h.lowestEquivalent(s.currentStepHigh)
}

func (s *linearStrategy[T]) valueIteratedTo(c *cursor[T]) uint64 {
	return s.currentStepHigh
}

func (s *linearStrategy[T]) incrementIterationLevel(c *cursor[T]) {
	s.currentStepHigh += s.valueUnitsPerBucket
}

// allowFurtherIteration extends the default exhaustion check by one more
// step whenever the next bucket boundary still sits below the next
// counts-array slot's starting value, mirroring logStrategy's override.
func (s *linearStrategy[T]) allowFurtherIteration(c *cursor[T]) bool {
	if s.baseStrategy.allowFurtherIteration(c) {
		return true
	}
	return s.currentStepHigh+1 < c.nextValueAtIndex
}

// LinearValues returns an iterator whose steps fall at
// valueUnitsPerBucket, 2*valueUnitsPerBucket, 3*valueUnitsPerBucket, and
// so on, through the end of the recorded value range.
func (h *Histogram[T]) LinearValues(valueUnitsPerBucket uint64) *Iterator[T] {
	return newIterator[T](h, newLinearStrategy[T](valueUnitsPerBucket))
}
