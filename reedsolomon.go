package qrencode

import "fmt"

// ErrMessageTooLong is an internal assertion: the RS codec only supports
// message+parity lengths up to 255 bytes, the limit of a single GF(256)
// codeword block.
var ErrMessageTooLong = fmt.Errorf("qrencode: message plus parity exceeds 255 bytes")

// rsGeneratorPoly builds the Reed-Solomon generator polynomial for n parity
// bytes: the product (x-alpha^0)(x-alpha^1)...(x-alpha^(n-1)), accumulated by
// repeated GF(256) polynomial multiplication. The result has length n+1 with
// a leading coefficient of 1.
func rsGeneratorPoly(n int) []byte {
	gen := []byte{1}
	for i := 0; i < n; i++ {
		gen = gfPolyMul(gen, []byte{1, gfExp[i]})
	}
	return gen
}

// rsEncode performs systematic Reed-Solomon encoding of message, appending n
// parity bytes computed via polynomial division by the degree-n generator.
// The returned slice is the message followed by its parity bytes.
func rsEncode(message []byte, n int) ([]byte, error) {
	if len(message)+n > 255 {
		return nil, ErrMessageTooLong
	}

	gen := rsGeneratorPoly(n)

	buf := make([]byte, len(message)+n)
	copy(buf, message)

	for i := 0; i < len(message); i++ {
		coef := buf[i]
		if coef != 0 {
			for j := 1; j < len(gen); j++ {
				buf[i+j] ^= gfMul(gen[j], coef)
			}
		}
	}

	copy(buf, message)
	return buf, nil
}
