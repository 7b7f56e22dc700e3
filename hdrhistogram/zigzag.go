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

// zigzagEncode maps a signed value to an unsigned one so that small
// magnitudes (positive or negative) both produce small varints: 0, -1, 1,
// -2, 2, ... becomes 0, 1, 2, 3, 4, ...
func zigzagEncode(n int64) uint64 {
	return uint64(n<<1) ^ uint64(n>>63)
}

// zigzagDecode is the inverse of zigzagEncode.
func zigzagDecode(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}
