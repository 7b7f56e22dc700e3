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

func TestMaxCount(t *testing.T) {
	assert.Equal(t, uint8(255), maxCount[uint8]())
	assert.Equal(t, uint16(65535), maxCount[uint16]())
	assert.Equal(t, uint64(18446744073709551615), maxCount[uint64]())
}

func TestAddCount(t *testing.T) {
	got, err := addCount[uint8](250, 5)
	require.NoError(t, err)
	assert.Equal(t, uint8(255), got)

	_, err = addCount[uint8](250, 6)
	assert.ErrorIs(t, err, ErrCountOverflow)

	got, err = addCount[uint64](0, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), got)
}

func TestToUint64(t *testing.T) {
	assert.Equal(t, uint64(7), toUint64[uint32](7))
}
