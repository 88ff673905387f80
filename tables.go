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

// alphanumericCharset is the 45-symbol alphanumeric-mode alphabet, in the
// canonical index order used by the 11-bit pair encoding.
const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

var (
	// eccCodeWordsPerBlock[ec][version] is the number of Reed-Solomon parity
	// bytes attached to each block, for versions 1..40 (index 0 unused).
	eccCodeWordsPerBlock = [4][41]int{
		// 0,  1,  2,  3,  4,  5,  6,  7,  8,  9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40
		{-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},  // Low
		{-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28}, // Medium
		{-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // Quartile
		{-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // High
	}

	// numErrorCorrectionBlocks[ec][version] is the number of RS blocks the
	// data codewords are split across, for versions 1..40 (index 0 unused).
	numErrorCorrectionBlocks = [4][41]int{
		{-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},              // Low
		{-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},     // Medium
		{-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},  // Quartile
		{-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81}, // High
	}

	// numRawDataModules[version] is the number of bits available for data and
	// EC codewords, i.e. the symbol's total module count minus every fixed
	// pattern and reserved region (including remainder bits, so it need not
	// be a multiple of 8). Populated in init below.
	numRawDataModules [41]int

	// numDataCodewords[ec][version] is the number of 8-bit data codewords
	// (message bytes, not counting EC parity) available at that version and
	// EC level, with any trailing remainder bits discarded. Populated in
	// init below.
	numDataCodewords [4][41]int
)

func init() {
	for v := 1; v <= 40; v++ {
		result := (16*v+128)*v + 64
		if v >= 2 {
			numAlign := v/7 + 2
			result -= (25*numAlign-10)*numAlign - 55
			if v >= 7 {
				result -= 36
			}
		}
		if result < 208 || result > 29648 {
			panic("qrencode: numRawDataModules miscalculated")
		}
		numRawDataModules[v] = result
	}

	for e := 0; e < 4; e++ {
		for v := 1; v <= 40; v++ {
			numDataCodewords[e][v] = numRawDataModules[v]/8 - eccCodeWordsPerBlock[e][v]*numErrorCorrectionBlocks[e][v]
		}
	}
}

// alignmentPatternCenters returns the ascending list of row/column centers
// used for alignment patterns at the given version (empty for version 1).
// Each value is used on both axes; the three combinations that collide with a
// finder pattern are skipped by the caller.
func alignmentPatternCenters(v Version) []int {
	if v == 1 {
		return nil
	}

	numAlign := int(v)/7 + 2
	var step int
	if v == 32 { // special case called out by the QR standard
		step = 26
	} else {
		step = (int(v)*4+numAlign*2+1)/(numAlign*2-2)*2
	}

	result := make([]int, numAlign)
	result[0] = 6
	pos := int(v)*4 + 17 - 7
	for i := len(result) - 1; i >= 1; i-- {
		result[i] = pos
		pos -= step
	}

	return result
}

// alignmentCenters returns every (row, col) alignment-pattern center for the
// given version, skipping the three corners that would collide with a finder
// pattern.
func alignmentCenters(v Version) [][2]int {
	centers := alignmentPatternCenters(v)
	n := len(centers)

	var result [][2]int
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == 0 && j == 0 || i == 0 && j == n-1 || i == n-1 && j == 0 {
				continue // collides with a finder pattern
			}
			result = append(result, [2]int{centers[i], centers[j]})
		}
	}
	return result
}
