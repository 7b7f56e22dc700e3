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

// Package hdrhistogram records integer values over a wide dynamic range
// while preserving a configurable relative precision at every magnitude,
// and answers percentile and value queries against that record in
// constant or linear time.
//
// A Histogram is a fixed-size array of counts. Construction picks the
// array's size from three parameters (the lowest value worth
// distinguishing, the highest value worth tracking, and the number of
// significant decimal digits of precision to preserve) and the array
// never grows afterward. Recording a value is an O(1) index-and-increment;
// querying a percentile or walking the recorded distribution is O(n) in
// the size of that fixed array, never in the number of samples recorded.
//
// Histogram is not safe for concurrent use: a single writer may record
// while no iterator or encoder is reading, and vice versa. Callers that
// need concurrent access must provide their own synchronization; see the
// package-level Non-goals discussion in the project's design notes.
package hdrhistogram
