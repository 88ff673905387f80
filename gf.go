package qrencode

import "errors"

// ErrDivByZero is returned by gfDiv when the divisor is zero.
var ErrDivByZero = errors.New("qrencode: division by zero in GF(256)")

// GF(256) arithmetic with primitive polynomial x^8+x^4+x^3+x^2+1 (0x11D) and
// generator alpha=2, as used by the Reed-Solomon codec and the BCH helpers.
const gfPrimitive = 0x11D

var gfExp [512]byte
var gfLog [256]byte

func init() {
	x := 1
	for i := 0; i < 255; i++ {
		gfExp[i] = byte(x)
		gfLog[x] = byte(i)
		x <<= 1
		if x >= 256 {
			x ^= gfPrimitive
		}
	}
	for i := 255; i < 512; i++ {
		gfExp[i] = gfExp[i-255]
	}
}

// gfAdd returns x+y in GF(256), which is the same operation as gfSub.
func gfAdd(x, y byte) byte {
	return x ^ y
}

// gfSub returns x-y in GF(256), which is the same operation as gfAdd.
func gfSub(x, y byte) byte {
	return x ^ y
}

// gfMul returns x*y in GF(256).
func gfMul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return gfExp[(int(gfLog[x])+int(gfLog[y]))%255]
}

// gfDiv returns x/y in GF(256). It returns ErrDivByZero when y is zero.
func gfDiv(x, y byte) (byte, error) {
	if y == 0 {
		return 0, ErrDivByZero
	}
	if x == 0 {
		return 0, nil
	}
	return gfExp[(int(gfLog[x])+255-int(gfLog[y]))%255], nil
}

// gfPolyMul returns the convolution of a and b in GF(256). The result has
// length len(a)+len(b)-1.
func gfPolyMul(a, b []byte) []byte {
	result := make([]byte, len(a)+len(b)-1)
	for i := range a {
		for j := range b {
			result[i+j] ^= gfMul(a[i], b[j])
		}
	}
	return result
}
