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

import "github.com/cespare/xxhash/v2"

// Fingerprint returns a content hash of the histogram's recorded state: two
// histograms with identical counts, range, and precision produce the same
// fingerprint regardless of the order values were recorded in. It hashes
// the bytes EncodeBytes returns (header and counts payload), so each call
// costs a full encode into a fresh buffer.
func (h *Histogram[T]) Fingerprint() (uint64, error) {
	payload, err := h.EncodeBytes()
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(payload), nil
}
