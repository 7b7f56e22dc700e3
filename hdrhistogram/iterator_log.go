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

// logStrategy reports one step per reporting level, where levels start at
// valueUnitsInFirstBucket and grow by a factor of logBase. Unlike
// recordedStrategy, it reports a level even when no observation landed in
// it, so the step sequence reflects the value axis rather than the set of
// recorded values.
type logStrategy[T Count] struct {
	baseStrategy[T]
	reportLevel float64
	logBase     float64
}

func newLogStrategy[T Count](valueUnitsInFirstBucket, logBase uint64) *logStrategy[T] {
	return &logStrategy[T]{
		reportLevel: float64(valueUnitsInFirstBucket),
		logBase:     float64(logBase),
	}
}

func (s *logStrategy[T]) reachedIterationLevel(c *cursor[T]) bool {
	if c.currentIndex == c.h.countsLen-1 {
		return true
	}
	return c.currentValueAtIndex >= c.h.lowestEquivalent(uint64(s.reportLevel)-1)
}

// valueIteratedTo reports the highest value of the current step, one below
// the reporting level.
func (s *logStrategy[T]) valueIteratedTo(c *cursor[T]) uint64 {
	return uint64(s.reportLevel) - 1
}

func (s *logStrategy[T]) incrementIterationLevel(c *cursor[T]) {
	s.reportLevel *= s.logBase
}

// allowFurtherIteration extends the default exhaustion check by one more
// step whenever the current reporting level's lowest-equivalent form still
// sits below the next counts-array slot's starting value; without this,
// a reporting level that lands inside the last recorded slot would never
// get a chance to emit.
func (s *logStrategy[T]) allowFurtherIteration(c *cursor[T]) bool {
	if s.baseStrategy.allowFurtherIteration(c) {
		return true
	}
	return c.h.lowestEquivalent(uint64(s.reportLevel)) < c.nextValueAtIndex
}

// LogarithmicValues returns an iterator whose steps end just below
// valueUnitsInFirstBucket, valueUnitsInFirstBucket*logBase,
// valueUnitsInFirstBucket*logBase^2, and so on (for 1 and 2: 0, 1, 3, 7,
// ...), through the end of the recorded value range.
func (h *Histogram[T]) LogarithmicValues(valueUnitsInFirstBucket, logBase uint64) *Iterator[T] {
	return newIterator[T](h, newLogStrategy[T](valueUnitsInFirstBucket, logBase))
}
