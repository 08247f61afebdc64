//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"hash"
)

// digest adapts Engine to hash.Hash. Sum finalizes a copy of the
// engine so the caller can keep writing and summing.
type digest struct {
	e Engine
}

// New returns a new hash.Hash computing the SHA-1 checksum.
func New() hash.Hash {
	d := new(digest)
	d.Reset()
	return d
}

func (d *digest) Reset() {
	d.e.reset()
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (int, error) {
	return d.e.Write(p)
}

func (d *digest) Sum(in []byte) []byte {
	e0 := d.e
	e0.tracer = nil
	hash, err := e0.Finalize()
	if err != nil {
		panic(err)
	}
	return append(in, hash[:]...)
}
