package qrencode

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectMode(t *testing.T) {
	cases := []struct {
		text string
		want Mode
	}{
		{"", Numeric},
		{"0", Numeric},
		{"79068", Numeric},
		{"A", Alphanumeric},
		{"XYZ", Alphanumeric},
		{"+123 ABC$", Alphanumeric},
		{"a", Byte},
		{"XYZ!", Byte},
		{"hello world", Byte},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("TestDetectMode %q", tc.text), func(t *testing.T) {
			mode, err := detectMode(tc.text)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, mode)
		})
	}
}

func TestDetectModeRejectsNonASCII(t *testing.T) {
	_, err := detectMode("café")
	assert.ErrorIs(t, err, ErrUnsupportedInput)
}

func TestDataBitLength(t *testing.T) {
	assert.Equal(t, 27, dataBitLength(Numeric, 8))
	assert.Equal(t, 28, dataBitLength(Alphanumeric, 5))
	assert.Equal(t, 32, dataBitLength(Byte, 4))
}

func TestEncodeSegmentBodyNumeric(t *testing.T) {
	cases := []struct {
		text  string
		bytes []byte
	}{
		{"", []byte{}},
		{"9", []byte{0x1, 0x0, 0x0, 0x1}},
		{"81", []byte{0x1, 0x0, 0x1, 0x0, 0x0, 0x0, 0x1}},
		{"673", []byte{0x1, 0x0, 0x1, 0x0, 0x1, 0x0, 0x0, 0x0, 0x0, 0x1}},
		{"3141592653", []byte{0x0, 0x1, 0x0, 0x0, 0x1, 0x1, 0x1, 0x0, 0x1, 0x0, 0x0, 0x0, 0x1, 0x0, 0x0, 0x1, 0x1, 0x1,
			0x1, 0x1, 0x0, 0x1, 0x0, 0x0, 0x0, 0x0, 0x1, 0x0, 0x0, 0x1, 0x0, 0x0, 0x1, 0x1}},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("TestEncodeSegmentBodyNumeric %q", tc.text), func(t *testing.T) {
			bb := encodeSegmentBody(Numeric, tc.text)
			assert.Equal(t, tc.bytes, []byte(bb))
		})
	}
}

func TestEncodeSegmentBodyAlphanumeric(t *testing.T) {
	cases := []struct {
		text  string
		bytes []byte
	}{
		{"", []byte{}},
		{"A", []byte{0x0, 0x0, 0x1, 0x0, 0x1, 0x0}},
		{"%:", []byte{0x1, 0x1, 0x0, 0x1, 0x1, 0x0, 0x1, 0x1, 0x0, 0x1, 0x0}},
		{"Q R", []byte{0x1, 0x0, 0x0, 0x1, 0x0, 0x1, 0x1, 0x0, 0x1, 0x1, 0x0, 0x0, 0x1, 0x1, 0x0, 0x1, 0x1}},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("TestEncodeSegmentBodyAlphanumeric %q", tc.text), func(t *testing.T) {
			bb := encodeSegmentBody(Alphanumeric, tc.text)
			assert.Equal(t, tc.bytes, []byte(bb))
		})
	}
}

func TestMakeSegment(t *testing.T) {
	seg, err := makeSegment("HELLO WORLD")
	assert.NoError(t, err)
	assert.Equal(t, Alphanumeric, seg.mode)
	assert.Equal(t, 11, seg.numChars)
	assert.Equal(t, dataBitLength(Alphanumeric, 11), len(seg.data))
}
