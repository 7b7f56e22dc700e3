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
	"io"
	"math"
)

// v2Cookie identifies the wire format this package reads and writes. It is
// carried in every encoded header and checked on decode; a histogram
// encoded by a different cookie version is rejected rather than
// misinterpreted.
const v2Cookie = 0x1c849308

const v2HeaderSize = 40

// Encode writes h to w in the V2 wire format: a 40-byte big-endian header
// (cookie, payload length, normalizing offset, significant digits, lowest
// discernible value, highest trackable value, double-unit conversion
// ratio) followed by a varint/zigzag run-length-encoded counts array
// covering every slot up to the one holding Max.
func (h *Histogram[T]) Encode(w io.Writer) error {
	payload, err := h.encodeCounts()
	if err != nil {
		return err
	}

	var header [v2HeaderSize]byte
	binary.BigEndian.PutUint32(header[0:4], uint32(v2Cookie))
	binary.BigEndian.PutUint32(header[4:8], uint32(len(payload)))
	binary.BigEndian.PutUint32(header[8:12], uint32(h.normalizingIndexOffset))
	binary.BigEndian.PutUint32(header[12:16], uint32(h.significantValueDigits))
	binary.BigEndian.PutUint64(header[16:24], h.lowestDiscernibleValue)
	binary.BigEndian.PutUint64(header[24:32], h.highestTrackableValue)
	// This package never converts to double, so the ratio field is unused;
	// 0.0 is what a conforming V2 writer puts there.
	binary.BigEndian.PutUint64(header[32:40], math.Float64bits(0.0))

	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	_, err = w.Write(payload)
	return err
}

// EncodeBytes is Encode into a freshly allocated byte slice.
func (h *Histogram[T]) EncodeBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := h.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// encodeCounts run-length-encodes the counts array: a nonzero slot is
// written as the zigzag of its count, a run of consecutive zero slots is
// written as the zigzag of the run's negated length. Only the slots up to
// and including the one Max falls in are written; every slot beyond that
// is implicitly zero.
func (h *Histogram[T]) encodeCounts() ([]byte, error) {
	var buf bytes.Buffer

	relevantLength := h.countsArrayIndex(h.maxValue) + 1
	if relevantLength > h.countsLen {
		relevantLength = h.countsLen
	}
	if relevantLength < 0 {
		relevantLength = 0
	}

	for i := 0; i < relevantLength; {
		count, err := h.countAtIndex(i)
		if err != nil {
			return nil, err
		}
		if count != 0 {
			if err := writeVarint(&buf, zigzagEncode(int64(toUint64(count)))); err != nil {
				return nil, err
			}
			i++
			continue
		}

		run := 0
		for i < relevantLength {
			c, err := h.countAtIndex(i)
			if err != nil {
				return nil, err
			}
			if c != 0 {
				break
			}
			run++
			i++
		}
		if err := writeVarint(&buf, zigzagEncode(-int64(run))); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// Decode reads a histogram written by Encode. It returns ErrBadCookie if
// the header's cookie does not match this package's V2 cookie, and
// ErrTruncatedInput if the stream ends before the header or payload is
// fully read.
func Decode[T Count](r io.Reader) (*Histogram[T], error) {
	var header [v2HeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return nil, ErrTruncatedInput
		}
		return nil, err
	}

	cookie := binary.BigEndian.Uint32(header[0:4])
	if cookie != v2Cookie {
		return nil, ErrBadCookie
	}
	payloadLen := binary.BigEndian.Uint32(header[4:8])
	normalizingOffset := int32(binary.BigEndian.Uint32(header[8:12]))
	significantDigits := int(binary.BigEndian.Uint32(header[12:16]))
	lowestDiscernibleValue := binary.BigEndian.Uint64(header[16:24])
	highestTrackableValue := binary.BigEndian.Uint64(header[24:32])

	h, err := New[T](lowestDiscernibleValue, highestTrackableValue, significantDigits)
	if err != nil {
		return nil, err
	}
	h.normalizingIndexOffset = normalizingOffset

	payload := make([]byte, payloadLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return nil, ErrTruncatedInput
		}
		return nil, err
	}

	if err := h.decodeCounts(payload); err != nil {
		return nil, err
	}
	return h, nil
}

// DecodeBytes is Decode reading from an in-memory buffer.
func DecodeBytes[T Count](data []byte) (*Histogram[T], error) {
	return Decode[T](bytes.NewReader(data))
}

// decodeCounts is the inverse of encodeCounts: it walks the varint/zigzag
// run-length stream, filling counts and rebuilding Count, Max, and
// MinNonZero from scratch rather than trusting stored summary fields.
func (h *Histogram[T]) decodeCounts(payload []byte) error {
	r := bytes.NewReader(payload)
	index := 0
	var totalCount uint64

	for r.Len() > 0 {
		raw, err := readVarint(r)
		if err != nil {
			return err
		}
		signed := zigzagDecode(raw)

		if signed < 0 {
			index += int(-signed)
			continue
		}
		if index >= h.countsLen {
			return ErrTruncatedInput
		}

		h.counts[index] = T(signed)
		totalCount += uint64(signed)
		if signed > 0 {
			h.updateMinMax(h.valueFromIndex(index))
		}
		index++
	}

	h.totalCount = totalCount
	return nil
}
