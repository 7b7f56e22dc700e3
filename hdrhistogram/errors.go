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

import "errors"

var (
	// ErrInvalidConstruction is returned by New when the construction
	// parameters violate a precondition (lowestDiscernibleValue < 1,
	// highestTrackableValue < 2*lowestDiscernibleValue, or
	// significantValueDigits outside [0, 5]).
	ErrInvalidConstruction = errors.New("hdrhistogram: invalid construction parameters")

	// ErrInvalidValue is returned by the recording methods when asked to
	// record a negative value. Values are represented as uint64 in this
	// package, so this error is unreachable through the exported API; it
	// is kept so the error taxonomy matches callers that accept signed
	// input at their own boundary and convert before calling Record.
	ErrInvalidValue = errors.New("hdrhistogram: invalid (negative) value")

	// ErrValueOutOfRange is returned when a value's counts-array index,
	// before or after normalization, falls outside the histogram's
	// counts array. The histogram is left unchanged.
	ErrValueOutOfRange = errors.New("hdrhistogram: value out of range")

	// ErrCountOverflow is returned when incrementing a counts-array slot
	// would overflow the count element type T. The histogram is left
	// unchanged.
	ErrCountOverflow = errors.New("hdrhistogram: count overflow")

	// ErrTruncatedInput is returned by Decode when the input stream ends
	// before the header or the payload length the header declares has been
	// read, or when the payload describes a slot past the end of the counts
	// array.
	ErrTruncatedInput = errors.New("hdrhistogram: truncated input")

	// ErrMalformedVarint is returned by Decode when the payload ends in the
	// middle of a varint. A varint is never longer than 9 bytes: the 9th
	// byte is read whole, without a continuation bit.
	ErrMalformedVarint = errors.New("hdrhistogram: malformed varint")

	// ErrBadCookie is returned by Decode when the header's cookie field
	// does not match the V2 cookie this package writes.
	ErrBadCookie = errors.New("hdrhistogram: unrecognized or mismatched cookie")
)
