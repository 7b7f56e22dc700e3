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

// allStrategy reports one step per counts-array slot, recorded or not,
// in ascending value order.
type allStrategy[T Count] struct {
	baseStrategy[T]
	visitedIndex int
}

func (s *allStrategy[T]) incrementIterationLevel(c *cursor[T]) {
	s.visitedIndex = c.currentIndex
}

func (s *allStrategy[T]) reachedIterationLevel(c *cursor[T]) bool {
	return s.visitedIndex != c.currentIndex
}

// allowFurtherIteration ignores the default total-count exhaustion check:
// this strategy walks every slot up to the end of the counts array
// regardless of how many of them are empty.
func (s *allStrategy[T]) allowFurtherIteration(c *cursor[T]) bool {
	return c.currentIndex < c.h.countsLen-1
}

// AllValues returns an iterator over every counts-array slot, reporting
// zero-count slots along with recorded ones.
func (h *Histogram[T]) AllValues() *Iterator[T] {
	return newIterator[T](h, &allStrategy[T]{visitedIndex: -1})
}
