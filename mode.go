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

// Mode represents the encoding mode of a segment: numeric, alphanumeric, or
// byte. Kanji and ECI are out of scope.
type Mode struct {
	bits    int8
	numBits [3]int8 // character-count-indicator width for version bands 1-9, 10-26, 27-40.
}

// Mode values for a segment, with their 4-bit mode indicator and the three
// character-count-indicator widths defined by the QR standard.
var (
	Numeric      = Mode{0b0001, [3]int8{10, 12, 14}}
	Alphanumeric = Mode{0b0010, [3]int8{9, 11, 13}}
	Byte         = Mode{0b0100, [3]int8{8, 16, 16}}
)

// lengthBits returns the width, in bits, of the character-count indicator for
// this mode at the given version.
func (m Mode) lengthBits(version Version) int {
	switch {
	case version <= 9:
		return int(m.numBits[0])
	case version <= 26:
		return int(m.numBits[1])
	default:
		return int(m.numBits[2])
	}
}
