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
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	h := MustNew[uint64](1, 3600000000, 3)
	require.NoError(t, h.Record(100))
	require.NoError(t, h.RecordValues(5000, 42))
	require.NoError(t, h.Record(3600000000))

	encoded, err := h.EncodeBytes()
	require.NoError(t, err)

	decoded, err := DecodeBytes[uint64](encoded)
	require.NoError(t, err)

	assert.Equal(t, h.Count(), decoded.Count())
	assert.Equal(t, h.Max(), decoded.Max())
	assert.Equal(t, h.CountAtValue(100), decoded.CountAtValue(100))
	assert.Equal(t, h.CountAtValue(5000), decoded.CountAtValue(5000))
	assert.Equal(t, h.LowestDiscernibleValue(), decoded.LowestDiscernibleValue())
	assert.Equal(t, h.HighestTrackableValue(), decoded.HighestTrackableValue())
	assert.Equal(t, h.SignificantValueDigits(), decoded.SignificantValueDigits())

	// The double-unit conversion ratio field is unused by this package, but
	// a conforming V2 writer still puts a bit-for-bit 0.0 there rather than
	// leaving it undefined, since other HDR histogram consumers read it.
	ratioBits := binary.BigEndian.Uint64(encoded[32:40])
	assert.Equal(t, math.Float64bits(0.0), ratioBits)
}

func TestEncodeEmptyHistogram(t *testing.T) {
	h := MustNew[uint64](1, 3600000000, 3)
	encoded, err := h.EncodeBytes()
	require.NoError(t, err)

	decoded, err := DecodeBytes[uint64](encoded)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), decoded.Count())
}

func TestDecodeRejectsBadCookie(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(make([]byte, v2HeaderSize))
	_, err := Decode[uint64](&buf)
	assert.ErrorIs(t, err, ErrBadCookie)
}

func TestDecodeRejectsTruncatedHeader(t *testing.T) {
	buf := bytes.NewBuffer([]byte{1, 2, 3})
	_, err := Decode[uint64](buf)
	assert.ErrorIs(t, err, ErrTruncatedInput)
}

func TestDecodeRejectsTruncatedPayload(t *testing.T) {
	h := MustNew[uint64](1, 3600000000, 3)
	require.NoError(t, h.Record(100))
	encoded, err := h.EncodeBytes()
	require.NoError(t, err)

	truncated := encoded[:len(encoded)-1]
	_, err = Decode[uint64](bytes.NewReader(truncated))
	assert.ErrorIs(t, err, ErrTruncatedInput)
}
