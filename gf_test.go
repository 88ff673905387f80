package qrencode

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGFMul(t *testing.T) {
	cases := [][3]byte{
		{0x00, 0x00, 0x00},
		{0x01, 0x01, 0x01},
		{0x02, 0x02, 0x04},
		{0x00, 0x6E, 0x00},
		{0xB2, 0xDD, 0xE6},
		{0x41, 0x11, 0x25},
		{0xB0, 0x1F, 0x11},
		{0x05, 0x75, 0xBC},
		{0x52, 0xB5, 0xAE},
		{0xA8, 0x20, 0xA4},
		{0x0E, 0x44, 0x9F},
		{0xD4, 0x13, 0xA0},
		{0x31, 0x10, 0x37},
		{0x6C, 0x58, 0xCB},
		{0xB6, 0x75, 0x3E},
		{0xFF, 0xFF, 0xE2},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("TestGFMul %v", tc), func(t *testing.T) {
			assert.Equal(t, tc[2], gfMul(tc[0], tc[1]))
		})
	}
}

func TestGFDiv(t *testing.T) {
	for x := 1; x < 256; x++ {
		for y := 1; y < 256; y++ {
			q, err := gfDiv(byte(x), byte(y))
			assert.NoError(t, err)
			assert.Equal(t, byte(x), gfMul(q, byte(y)))
		}
	}

	_, err := gfDiv(5, 0)
	assert.ErrorIs(t, err, ErrDivByZero)
}

func TestGFAddSub(t *testing.T) {
	assert.Equal(t, byte(0), gfAdd(0x53, 0x53))
	assert.Equal(t, byte(0x53), gfSub(0x53, 0))
}
