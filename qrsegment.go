/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrencode

import (
	"fmt"
	"strings"
)

// ErrUnsupportedInput is returned when the message contains characters this
// encoder cannot place in a single segment (non-ASCII text; Kanji mode is out
// of scope).
var ErrUnsupportedInput = fmt.Errorf("qrencode: unsupported input")

// segment is the single data segment an input message is packed into. Mixed-
// mode segmentation and structured append are out of scope, so a message
// always produces exactly one segment.
type segment struct {
	mode     Mode
	numChars int
	data     bitBuffer
}

// detectMode classifies text as Numeric, Alphanumeric, or Byte following the
// priority order in which each subsumes the last: all-digit text is Numeric,
// text drawn from the 45-symbol alphanumeric alphabet is Alphanumeric,
// anything else that's still plain ASCII is Byte. Non-ASCII text (including
// Kanji) is unsupported.
func detectMode(text string) (Mode, error) {
	allDigits := true
	allAlphanumeric := true
	allASCII := true

	for _, r := range text {
		if r < '0' || r > '9' {
			allDigits = false
		}
		if strings.IndexRune(alphanumericCharset, r) < 0 {
			allAlphanumeric = false
		}
		if r > 127 {
			allASCII = false
		}
	}

	switch {
	case allDigits:
		return Numeric, nil
	case allAlphanumeric:
		return Alphanumeric, nil
	case allASCII:
		return Byte, nil
	default:
		return Mode{}, ErrUnsupportedInput
	}
}

// dataBitLength returns the bit length of a segment body (excluding the mode
// and length indicators) of n characters in the given mode.
func dataBitLength(mode Mode, n int) int {
	switch mode {
	case Numeric:
		extra := 0
		switch n % 3 {
		case 1:
			extra = 4
		case 2:
			extra = 7
		}
		return (n/3)*10 + extra
	case Alphanumeric:
		return (n/2)*11 + 6*(n%2)
	case Byte:
		return n * 8
	default:
		panic("qrencode: unknown mode")
	}
}

// encodeSegmentBody packs text's characters into a bitBuffer in the given
// mode, per the QR standard's three encodings. The caller has already
// validated text against mode via detectMode.
func encodeSegmentBody(mode Mode, text string) bitBuffer {
	bb := make(bitBuffer, 0, dataBitLength(mode, len([]rune(text))))

	switch mode {
	case Numeric:
		for i := 0; i < len(text); i += 3 {
			end := i + 3
			if end > len(text) {
				end = len(text)
			}
			chunk := text[i:end]
			value := 0
			for _, c := range chunk {
				value = value*10 + int(c-'0')
			}
			width := 10
			switch len(chunk) {
			case 1:
				width = 4
			case 2:
				width = 7
			}
			bb.appendBits(value, width)
		}
	case Alphanumeric:
		for i := 0; i < len(text); i += 2 {
			if i+1 < len(text) {
				v0 := strings.IndexByte(alphanumericCharset, text[i])
				v1 := strings.IndexByte(alphanumericCharset, text[i+1])
				bb.appendBits(45*v0+v1, 11)
			} else {
				v0 := strings.IndexByte(alphanumericCharset, text[i])
				bb.appendBits(v0, 6)
			}
		}
	case Byte:
		bb.appendBytes([]byte(text))
	default:
		panic("qrencode: unknown mode")
	}

	return bb
}

// makeSegment validates text against its detected mode and builds the
// corresponding segment.
func makeSegment(text string) (*segment, error) {
	mode, err := detectMode(text)
	if err != nil {
		return nil, err
	}

	return &segment{
		mode:     mode,
		numChars: len(text), // text is ASCII-only for every supported mode, so byte length is character count.
		data:     encodeSegmentBody(mode, text),
	}, nil
}
