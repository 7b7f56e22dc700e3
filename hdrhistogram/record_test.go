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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordTracksCountMaxAndMin(t *testing.T) {
	h := MustNew[uint64](1, 3600000000, 3)

	require.NoError(t, h.Record(100))
	require.NoError(t, h.Record(5))
	require.NoError(t, h.Record(3000))

	assert.Equal(t, uint64(3), h.Count())
	assert.Equal(t, uint64(3000), h.Max())
	assert.Equal(t, uint64(5), h.MinNonZero())
}

func TestRecordValuesIncrementsBySpecifiedCount(t *testing.T) {
	h := MustNew[uint64](1, 3600000000, 3)

	require.NoError(t, h.RecordValues(100, 7))
	assert.Equal(t, uint64(7), h.Count())
	assert.Equal(t, uint64(7), h.CountAtValue(100))
}

func TestRecordOutOfRangeValue(t *testing.T) {
	h := MustNew[uint64](1, 3600000000, 3)
	// 1<<32 is the first value past the last slot of this layout's counts
	// array; highestTrackableValue itself is a lower bound on the range.
	err := h.Record(1 << 32)
	assert.ErrorIs(t, err, ErrValueOutOfRange)
	assert.Equal(t, uint64(0), h.Count())
}

func TestRecordCountOverflow(t *testing.T) {
	h := MustNew[uint8](1, 3600000000, 3)
	require.NoError(t, h.RecordValues(100, 255))

	err := h.Record(100)
	assert.ErrorIs(t, err, ErrCountOverflow)
	assert.Equal(t, uint64(255), h.Count())
}

func TestRecordCorrectedValueBackfillsCoordinatedOmission(t *testing.T) {
	h := MustNew[uint64](1, 3600000000, 3)

	require.NoError(t, h.RecordCorrectedValue(1000, 100))

	// The direct observation plus nine back-filled steps at 100, 200, ...,
	// 900 account for ten recorded values.
	assert.Equal(t, uint64(10), h.Count())
	assert.Equal(t, uint64(1), h.CountAtValue(1000))
	assert.Equal(t, uint64(1), h.CountAtValue(500))
}

func TestRecordCorrectedValueWithZeroIntervalIsPlainRecord(t *testing.T) {
	h := MustNew[uint64](1, 3600000000, 3)
	require.NoError(t, h.RecordCorrectedValue(1000, 0))
	assert.Equal(t, uint64(1), h.Count())
}
