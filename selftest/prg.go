//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package selftest

import (
	"encoding/binary"

	"golang.org/x/crypto/chacha20"
)

// PRG is a deterministic pseudorandom byte stream expanded from a
// 32-byte seed with the ChaCha20 keystream.
type PRG struct {
	c *chacha20.Cipher
}

// NewPRG creates a new PRG from the seed.
func NewPRG(seed [32]byte) *PRG {
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		panic(err)
	}
	return &PRG{
		c: c,
	}
}

// Read fills p with keystream bytes. It never fails.
func (prg *PRG) Read(p []byte) (int, error) {
	clear(p)
	prg.c.XORKeyStream(p, p)
	return len(p), nil
}

// Intn returns a pseudorandom number in [0,n). It panics if n <= 0.
func (prg *PRG) Intn(n int) int {
	if n <= 0 {
		panic("selftest: invalid argument to Intn")
	}
	var buf [8]byte
	prg.Read(buf[:])
	return int(binary.BigEndian.Uint64(buf[:]) % uint64(n))
}
