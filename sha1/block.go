//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"encoding/binary"
	"math/bits"
)

// Round constants, one for each 20-round phase.
const (
	_K0 = 0x5A827999
	_K1 = 0x6ED9EBA1
	_K2 = 0x8F1BBCDC
	_K3 = 0xCA62C1D6
)

// Rounds is the number of compression rounds for one block.
const Rounds = 80

// compress processes one 64-byte block and adds the result into the
// hash state h. The block argument is the index of the block within
// the message; it is only passed to the tracer.
func compress(h *[5]uint32, p []byte, block uint64, trace Tracer) {
	var w [Rounds]uint32

	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(p[i*4:])
	}
	for i := 16; i < Rounds; i++ {
		w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}

	a, b, c, d, e := h[0], h[1], h[2], h[3], h[4]

	// Each of the four 20-iteration rounds differs only in the
	// computation of f and the choice of K.
	for i := 0; i < Rounds; i++ {
		var f, k uint32
		switch {
		case i < 20:
			f = b&c | (^b)&d
			k = _K0
		case i < 40:
			f = b ^ c ^ d
			k = _K1
		case i < 60:
			f = b&c | b&d | c&d
			k = _K2
		default:
			f = b ^ c ^ d
			k = _K3
		}
		t := bits.RotateLeft32(a, 5) + f + e + k + w[i]
		a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d

		if trace != nil {
			trace(Round{
				Block: block,
				T:     i,
				W:     w[i],
				A:     a,
				B:     b,
				C:     c,
				D:     d,
				E:     e,
			})
		}
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += e
}
