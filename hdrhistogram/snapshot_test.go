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

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotReportsCountMaxAndPercentiles(t *testing.T) {
	h := MustNew[uint64](1, 3600000000, 3)
	for v := uint64(1); v <= 100; v++ {
		require.NoError(t, h.Record(v))
	}

	s := h.Snapshot()
	assert.Equal(t, uint64(100), s.Count)
	assert.Equal(t, h.Max(), s.Max)
	assert.Equal(t, h.ValueAtPercentile(99), s.Percentiles["99"])
	assert.Equal(t, h.ValueAtPercentile(99.9), s.Percentiles["99.9"])
}

func TestSnapshotMarshalsToJSON(t *testing.T) {
	h := MustNew[uint64](1, 3600000000, 3)
	require.NoError(t, h.Record(42))

	data, err := json.Marshal(h.Snapshot())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"count":1`)
}
