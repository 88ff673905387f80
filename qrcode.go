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

import "fmt"

// ErrInputTooLong is returned when a message does not fit any version in the
// requested range at the requested error correction level.
var ErrInputTooLong = fmt.Errorf("qrencode: input too long for version range")

// ErrInvalidMask is returned when WithMask is given a value outside 0..7.
var ErrInvalidMask = fmt.Errorf("qrencode: invalid mask")

// Symbol is a finished QR Code: the version and error correction level it
// was built at, the mask that was applied (chosen automatically unless
// WithMask pinned one), and the resulting module matrix.
type Symbol struct {
	version Version
	ec      ECLevel
	mask    int
	matrix  Matrix
}

// Version returns the symbol's version, 1..40.
func (s *Symbol) Version() Version { return s.version }

// ECLevel returns the symbol's error correction level.
func (s *Symbol) ECLevel() ECLevel { return s.ec }

// Mask returns the index, 0..7, of the mask pattern applied to the symbol.
func (s *Symbol) Mask() int { return s.mask }

// Matrix returns the symbol's modules, matrix[row][col], true for dark.
func (s *Symbol) Matrix() Matrix { return s.matrix }

// MakeQR builds a QR Code symbol encoding message. By default it picks the
// smallest version that fits at Medium error correction, with the mask
// chosen to minimize the standard penalty score; see the With* options to
// override any of that.
func MakeQR(message string, opts ...Option) (*Symbol, error) {
	o := encodeOptions{
		ec:         Medium,
		mask:       -1,
		minVersion: MinVersion,
		maxVersion: MaxVersion,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if !o.minVersion.valid() || !o.maxVersion.valid() || o.minVersion > o.maxVersion {
		return nil, ErrInvalidVersion
	}
	if o.mask != -1 && (o.mask < 0 || o.mask > 7) {
		return nil, ErrInvalidMask
	}

	seg, err := makeSegment(message)
	if err != nil {
		return nil, err
	}

	version, err := chooseVersion(seg, o.ec, o.minVersion, o.maxVersion)
	if err != nil {
		return nil, err
	}

	ec := o.ec
	if o.boostECL {
		ec = boostECLevel(seg, version, ec)
	}

	data := buildBitStream(seg, version, ec)
	codewords := addECCAndInterleave(data, version, ec)

	m := makeBlank(version)
	placeData(m, version, codewords)

	mask := o.mask
	if mask == -1 {
		mask, m = chooseMask(m, version, ec)
	} else {
		m = applyMask(m, version, mask)
		drawFormatInfo(m, version, ec, mask)
	}

	return &Symbol{version: version, ec: ec, mask: mask, matrix: m}, nil
}

// chooseVersion returns the smallest version in [min, max] whose data
// codeword capacity at ec fits the segment's mode indicator, length
// indicator, and body.
func chooseVersion(seg *segment, ec ECLevel, min, max Version) (Version, error) {
	for v := min; v <= max; v++ {
		used := 4 + seg.mode.lengthBits(v) + len(seg.data)
		if used <= numDataCodewords[ec][v]*8 {
			return v, nil
		}
	}
	return 0, ErrInputTooLong
}

// boostECLevel raises ec as far as Low -> Medium -> Quartile -> High as
// long as the segment still fits in version at the higher level.
func boostECLevel(seg *segment, version Version, ec ECLevel) ECLevel {
	used := 4 + seg.mode.lengthBits(version) + len(seg.data)
	for _, candidate := range []ECLevel{Low, Medium, Quartile, High} {
		if candidate <= ec {
			continue
		}
		if used > numDataCodewords[candidate][version]*8 {
			break
		}
		ec = candidate
	}
	return ec
}

// buildBitStream assembles the final data codeword bytes for version/ec:
// mode indicator, length indicator, segment body, a terminator of up to 4
// zero bits, bit padding out to a byte boundary, and alternating pad bytes
// up to the version's data codeword capacity.
func buildBitStream(seg *segment, version Version, ec ECLevel) []byte {
	var bb bitBuffer
	bb.appendBits(int(seg.mode.bits), 4)
	bb.appendBits(seg.numChars, seg.mode.lengthBits(version))
	bb = append(bb, seg.data...)

	capacityBits := numDataCodewords[ec][version] * 8
	if terminator := capacityBits - len(bb); terminator > 0 {
		if terminator > 4 {
			terminator = 4
		}
		bb.appendBits(0, terminator)
	}
	if pad := bb.freeBits(); pad > 0 {
		bb.appendBits(0, pad)
	}

	padBytes := [2]int{0xEC, 0x11}
	for i := 0; bb.lenBytes() < numDataCodewords[ec][version]; i++ {
		bb.appendBits(padBytes[i%2], 8)
	}

	return bb.toBytes()
}

// addECCAndInterleave splits data into the version/ec's Reed-Solomon
// blocks, computes each block's EC codewords, and interleaves first the
// data codewords and then the EC codewords across all blocks, round-robin.
func addECCAndInterleave(data []byte, v Version, ec ECLevel) []byte {
	numBlocks := numErrorCorrectionBlocks[ec][v]
	blockECCLen := eccCodeWordsPerBlock[ec][v]
	rawCodewords := numRawDataModules[v] / 8
	numShortBlocks := numBlocks - rawCodewords%numBlocks
	shortBlockLen := rawCodewords / numBlocks

	dataBlocks := make([][]byte, numBlocks)
	eccBlocks := make([][]byte, numBlocks)

	k := 0
	for i := 0; i < numBlocks; i++ {
		blockLen := shortBlockLen - blockECCLen
		if i >= numShortBlocks {
			blockLen++
		}
		dat := data[k : k+blockLen]
		k += blockLen

		encoded, err := rsEncode(dat, blockECCLen)
		if err != nil {
			panic(err) // block sizes are bounded by the version tables, always <255
		}
		dataBlocks[i] = dat
		eccBlocks[i] = encoded[len(dat):]
	}

	result := make([]byte, 0, rawCodewords)
	result = appendInterleaved(result, dataBlocks)
	result = appendInterleaved(result, eccBlocks)
	return result
}

// appendInterleaved appends byte i of every block, in block order, for each
// i in turn, skipping blocks once they run out of bytes.
func appendInterleaved(dst []byte, blocks [][]byte) []byte {
	for i := 0; ; i++ {
		any := false
		for _, b := range blocks {
			if i < len(b) {
				dst = append(dst, b[i])
				any = true
			}
		}
		if !any {
			return dst
		}
	}
}
