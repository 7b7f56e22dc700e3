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

// IterationValue is one emitted step of a Histogram iterator. It is a
// plain value object: iteration never mutates the histogram it walks, and
// a Histogram must not be recorded into while an Iterator built from it is
// still in use.
type IterationValue[T Count] struct {
	// ValueIteratedTo is the value this step reports, the upper bound of
	// the slot (or reporting bucket) the step just finished scanning.
	ValueIteratedTo uint64
	// ValueIteratedFrom is ValueIteratedTo from the previous step (0 for
	// the first step).
	ValueIteratedFrom uint64
	// CountAtValueIteratedTo is the raw count stored at the current
	// counts-array slot.
	CountAtValueIteratedTo T
	// CountAddedInThisIterationStep is how many observations fell
	// between ValueIteratedFrom and ValueIteratedTo.
	CountAddedInThisIterationStep uint64
	// TotalCountToThisValue is the running total of observations with
	// value <= ValueIteratedTo.
	TotalCountToThisValue uint64
	// TotalValueToThisValue is the running sum of (count * highest
	// equivalent value) for every slot visited so far, the accumulator
	// Mean is built from.
	TotalValueToThisValue uint64
	// Percentile is the actual percentile of recorded observations at or
	// below ValueIteratedTo.
	Percentile float64
	// PercentileLevelIteratedTo is the percentile the strategy was
	// targeting at this step; for most strategies this equals
	// Percentile, but the percentile-ticks strategy reports its target
	// level here even when no observation landed exactly on it.
	PercentileLevelIteratedTo float64
}

// cursor is the mutable walk state shared by every iteration strategy. A
// strategy reads it (and the histogram's index math through its h field)
// but never modifies it; only Iterator.Next and incrementSubBucket advance
// it.
type cursor[T Count] struct {
	h               *Histogram[T]
	arrayTotalCount uint64

	currentIndex         int
	currentValueAtIndex  uint64
	nextValueAtIndex     uint64
	prevValueIteratedTo  uint64
	totalCountToPrevIndex    uint64
	totalCountToCurrentIndex uint64
	totalValueToCurrentIndex uint64
	countAtThisValue     T
	freshSubBucket       bool
}

func (c *cursor[T]) incrementSubBucket() {
	c.freshSubBucket = true
	c.currentIndex++
	c.currentValueAtIndex = c.h.valueFromIndex(c.currentIndex)
	c.nextValueAtIndex = c.h.valueFromIndex(c.currentIndex + 1)
}

// strategy is the policy a cursor is parameterized by. Each method is a
// pure predicate or extractor except incrementIterationLevel, and the
// percentile strategy's allowFurtherIteration, which update the strategy's
// own internal state (never the cursor's); see the design notes on why this
// package splits strategy methods into a read-only half and a one-method mutating half instead of
// the swap-in-a-placeholder trick a borrow-checked language needs.
type strategy[T Count] interface {
	allowFurtherIteration(c *cursor[T]) bool
	reachedIterationLevel(c *cursor[T]) bool
	incrementIterationLevel(c *cursor[T])
	valueIteratedTo(c *cursor[T]) uint64
	percentileIteratedTo(c *cursor[T]) float64
}

// baseStrategy supplies the three default behaviors every concrete
// strategy either uses as-is or overrides.
type baseStrategy[T Count] struct{}

func (baseStrategy[T]) allowFurtherIteration(c *cursor[T]) bool {
	return c.totalCountToCurrentIndex < c.arrayTotalCount
}

func (baseStrategy[T]) valueIteratedTo(c *cursor[T]) uint64 {
	return c.h.highestEquivalent(c.currentValueAtIndex)
}

func (baseStrategy[T]) percentileIteratedTo(c *cursor[T]) float64 {
	return 100 * float64(c.totalCountToCurrentIndex) / float64(c.arrayTotalCount)
}

// Iterator walks a Histogram's counts array under a strategy's reporting
// discipline, in the style of bufio.Scanner: call Next until it returns
// false, reading Value after each true.
type Iterator[T Count] struct {
	cursor[T]
	strategy strategy[T]
	value    IterationValue[T]
}

func newIterator[T Count](h *Histogram[T], s strategy[T]) *Iterator[T] {
	it := &Iterator[T]{
		cursor: cursor[T]{
			h:               h,
			arrayTotalCount: h.totalCount,
			freshSubBucket:  true,
		},
		strategy: s,
	}
	it.nextValueAtIndex = h.valueFromIndex(1)
	return it
}

// Next advances the iterator to its next reporting step, returning false
// once the strategy's allowFurtherIteration predicate or the end of the
// counts array is reached.
func (it *Iterator[T]) Next() bool {
	c := &it.cursor
	if !it.strategy.allowFurtherIteration(c) {
		return false
	}

	for c.currentIndex < c.h.countsLen {
		count, err := c.h.countAtIndex(c.currentIndex)
		if err != nil {
			var zero T
			count = zero
		}
		c.countAtThisValue = count

		if c.freshSubBucket {
			countU64 := toUint64(count)
			c.totalCountToCurrentIndex += countU64
			c.totalValueToCurrentIndex += countU64 * c.h.highestEquivalent(c.currentValueAtIndex)
			c.freshSubBucket = false
		}

		if it.strategy.reachedIterationLevel(c) {
			valueIteratedTo := it.strategy.valueIteratedTo(c)
			percentileIteratedTo := it.strategy.percentileIteratedTo(c)

			it.value = IterationValue[T]{
				ValueIteratedTo:               valueIteratedTo,
				ValueIteratedFrom:              c.prevValueIteratedTo,
				CountAtValueIteratedTo:         c.countAtThisValue,
				CountAddedInThisIterationStep:  c.totalCountToCurrentIndex - c.totalCountToPrevIndex,
				TotalCountToThisValue:          c.totalCountToCurrentIndex,
				TotalValueToThisValue:          c.totalValueToCurrentIndex,
				Percentile:                     100 * float64(c.totalCountToCurrentIndex) / float64(c.arrayTotalCount),
				PercentileLevelIteratedTo:      percentileIteratedTo,
			}

			c.prevValueIteratedTo = valueIteratedTo
			c.totalCountToPrevIndex = c.totalCountToCurrentIndex
			it.strategy.incrementIterationLevel(c)
			return true
		}

		c.incrementSubBucket()
	}
	return false
}

// Value returns the step produced by the most recent call to Next that
// returned true.
func (it *Iterator[T]) Value() IterationValue[T] { return it.value }
