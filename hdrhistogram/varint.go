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

import "io"

// writeVarint writes value in EB128-64b9B form: 7 payload bits per byte
// with a continuation bit set on every byte but the last, capped at 9
// bytes total. The 9th byte, if reached, carries its full 8 bits with no
// continuation bit, since 8*7+8 bits is exactly enough for a uint64.
func writeVarint(w io.ByteWriter, value uint64) error {
	for i := 0; i < 8; i++ {
		if value>>7 == 0 {
			return w.WriteByte(byte(value))
		}
		if err := w.WriteByte(byte(value&0x7F) | 0x80); err != nil {
			return err
		}
		value >>= 7
	}
	return w.WriteByte(byte(value))
}

// readVarint reads a value written by writeVarint, returning
// ErrMalformedVarint if the stream ends before a terminating byte.
func readVarint(r io.ByteReader) (uint64, error) {
	var value uint64
	for i := 0; i < 9; i++ {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF {
				return 0, ErrMalformedVarint
			}
			return 0, err
		}
		if i == 8 {
			value |= uint64(b) << 56
			return value, nil
		}
		value |= uint64(b&0x7F) << (7 * uint(i))
		if b&0x80 == 0 {
			return value, nil
		}
	}
	return 0, ErrMalformedVarint
}
