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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 16383, 16384, 1 << 35, 1<<64 - 1}
	for _, v := range values {
		var buf bytes.Buffer
		require.NoError(t, writeVarint(&buf, v))
		got, err := readVarint(&buf)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestVarintSmallValuesFitOneByte(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeVarint(&buf, 42))
	assert.Equal(t, 1, buf.Len())
}

func TestVarintMaxValueFitsNineBytes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeVarint(&buf, 1<<64-1))
	assert.Equal(t, 9, buf.Len())
}

func TestReadVarintTruncatedStream(t *testing.T) {
	buf := bytes.NewBuffer([]byte{0x80})
	_, err := readVarint(buf)
	assert.ErrorIs(t, err, ErrMalformedVarint)
}

func TestReadVarintEmptyStream(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	_, err := readVarint(buf)
	assert.ErrorIs(t, err, ErrMalformedVarint)
}
