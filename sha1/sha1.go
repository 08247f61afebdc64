//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package sha1 implements the SHA-1 hash algorithm as defined in RFC
// 3174.
//
// The Engine absorbs message bytes incrementally into a fixed 64-byte
// block buffer and produces the digest exactly once with Finalize.
// After Finalize the engine is spent and all further operations fail
// with ErrFinalized.
//
// SHA-1 is cryptographically broken and should not be used for secure
// applications.
package sha1

import (
	"encoding/binary"
	"errors"
)

// The size of a SHA-1 checksum in bytes.
const Size = 20

// The blocksize of SHA-1 in bytes.
const BlockSize = 64

const (
	init0 = 0x67452301
	init1 = 0xEFCDAB89
	init2 = 0x98BADCFE
	init3 = 0x10325476
	init4 = 0xC3D2E1F0

	// Offset of the 64-bit length field in the final block.
	lenOffset = BlockSize - 8
)

// ErrFinalized is returned when an engine is used after Finalize.
var ErrFinalized = errors.New("sha1: engine already finalized")

// Engine holds the state of one SHA-1 computation. The zero value is
// not usable; create engines with NewEngine.
type Engine struct {
	h         [5]uint32
	x         [BlockSize]byte
	nx        int
	blocks    uint64
	finalized bool
	tracer    Tracer
}

// NewEngine creates a new engine initialized with the SHA-1 initial
// hash value.
func NewEngine() *Engine {
	e := new(Engine)
	e.reset()
	return e
}

func (e *Engine) reset() {
	e.h[0] = init0
	e.h[1] = init1
	e.h[2] = init2
	e.h[3] = init3
	e.h[4] = init4
	clear(e.x[:])
	e.nx = 0
	e.blocks = 0
	e.finalized = false
}

// SetTracer sets the function that is called after each compression
// round. A nil tracer disables tracing.
func (e *Engine) SetTracer(tracer Tracer) {
	e.tracer = tracer
}

// Finalized tests if the engine has been finalized.
func (e *Engine) Finalized() bool {
	return e.finalized
}

// Len returns the number of message bytes absorbed so far.
func (e *Engine) Len() uint64 {
	return e.blocks*BlockSize + uint64(e.nx)
}

// Absorb adds the data to the message being hashed. Absorbing an
// empty slice is a no-op. Calling Absorb several times is equivalent
// to a single call with the concatenation of the arguments.
func (e *Engine) Absorb(data []byte) error {
	if e.finalized {
		return ErrFinalized
	}
	e.absorb(data)
	return nil
}

// Write implements io.Writer for the engine.
func (e *Engine) Write(p []byte) (int, error) {
	if err := e.Absorb(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (e *Engine) absorb(p []byte) {
	if e.nx > 0 {
		n := copy(e.x[e.nx:], p)
		e.nx += n
		p = p[n:]
		if e.nx < BlockSize {
			return
		}
		e.compress(e.x[:])
		clear(e.x[:])
		e.nx = 0
	}
	for len(p) >= BlockSize {
		e.compress(p[:BlockSize])
		p = p[BlockSize:]
	}
	if len(p) > 0 {
		e.nx = copy(e.x[:], p)
	}
}

func (e *Engine) compress(block []byte) {
	compress(&e.h, block, e.blocks, e.tracer)
	e.blocks++
}

// Finalize pads the message, processes the final block(s), and
// returns the SHA-1 digest. The engine can't be used after this call.
func (e *Engine) Finalize() (digest [Size]byte, err error) {
	if e.finalized {
		return digest, ErrFinalized
	}
	length := e.blocks*BlockSize*8 + uint64(e.nx)*8

	// Padding. Add a 1 bit and 0 bits until 56 bytes mod 64.
	var tmp [BlockSize + 8]byte
	tmp[0] = 0x80

	var t int
	if e.nx < lenOffset {
		t = lenOffset - e.nx
	} else {
		t = BlockSize + lenOffset - e.nx
	}
	binary.BigEndian.PutUint64(tmp[t:], length)
	e.absorb(tmp[:t+8])

	if e.nx != 0 {
		panic("sha1: e.nx != 0 after padding")
	}

	for i, v := range e.h {
		binary.BigEndian.PutUint32(digest[i*4:], v)
	}
	e.finalized = true

	return digest, nil
}

// Sum returns the SHA-1 checksum of the data.
func Sum(data []byte) [Size]byte {
	var e Engine
	e.reset()
	e.absorb(data)
	digest, _ := e.Finalize()
	return digest
}
