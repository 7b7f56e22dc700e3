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

// recordedStrategy reports one step per counts-array slot that holds a
// nonzero count, in ascending value order.
type recordedStrategy[T Count] struct {
	baseStrategy[T]
	visitedIndex int
}

func (s *recordedStrategy[T]) incrementIterationLevel(c *cursor[T]) {
	s.visitedIndex = c.currentIndex
}

func (s *recordedStrategy[T]) reachedIterationLevel(c *cursor[T]) bool {
	return toUint64(c.countAtThisValue) != 0 && s.visitedIndex != c.currentIndex
}

// RecordedValues returns an iterator over every counts-array slot with a
// nonzero count, one step per distinct recorded value (or equivalence
// class of values).
func (h *Histogram[T]) RecordedValues() *Iterator[T] {
	return newIterator[T](h, &recordedStrategy[T]{visitedIndex: -1})
}
