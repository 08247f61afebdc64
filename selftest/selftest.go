//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package selftest checks the SHA-1 engine against the standard
// library reference with boundary and pseudorandom messages.
package selftest

import (
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"math/bits"
	"strings"

	"github.com/markkurossi/sha1/env"
	sha "github.com/markkurossi/sha1/sha1"
)

// Boundaries lists message lengths around the padding block
// boundaries.
var Boundaries = []int{
	0, 1, 55, 56, 57, 63, 64, 65, 119, 120, 121, 127, 128, 129,
}

// MaxLength bounds the length of the pseudorandom messages.
const MaxLength = 4096

// MinAvalanche is the minimum number of output bits that must change
// when one input bit is flipped.
const MinAvalanche = 20

// Check holds the results of one self-test check.
type Check struct {
	Name     string
	Passed   int
	Failed   int
	Failures []string
}

func (c *Check) record(ok bool, format string, a ...interface{}) {
	if ok {
		c.Passed++
		return
	}
	c.Failed++
	c.Failures = append(c.Failures, fmt.Sprintf(format, a...))
}

// Result holds the self-test results.
type Result struct {
	Seed   [32]byte
	Bytes  uint64
	Checks []*Check
}

// Err returns an error describing the failed checks, or nil if all
// checks passed.
func (r *Result) Err() error {
	var failed []string
	for _, c := range r.Checks {
		if c.Failed > 0 {
			failed = append(failed, fmt.Sprintf("%s: %d failed", c.Name, c.Failed))
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return fmt.Errorf("selftest: seed %x: %s", r.Seed, strings.Join(failed, ", "))
}

// Run runs the self-test with a fresh seed from the configuration's
// random source. The rounds argument specifies the number of
// pseudorandom messages in addition to the boundary messages.
func Run(config *env.Config, rounds int) (*Result, error) {
	var seed [32]byte
	if _, err := io.ReadFull(config.GetRandom(), seed[:]); err != nil {
		return nil, err
	}
	config.Debugf("selftest: seed %x\n", seed)

	result := RunSeed(seed, rounds)
	for _, c := range result.Checks {
		for _, f := range c.Failures {
			config.Debugf("selftest: %s: %s\n", c.Name, f)
		}
	}
	return result, nil
}

// RunSeed runs the self-test with the seed.
func RunSeed(seed [32]byte, rounds int) *Result {
	prg := NewPRG(seed)

	reference := &Check{Name: "Reference"}
	chunked := &Check{Name: "Chunked"}
	avalanche := &Check{Name: "Avalanche"}
	lifecycle := &Check{Name: "Lifecycle"}

	result := &Result{
		Seed:   seed,
		Checks: []*Check{reference, chunked, avalanche, lifecycle},
	}

	lengths := append([]int(nil), Boundaries...)
	for i := 0; i < rounds; i++ {
		lengths = append(lengths, prg.Intn(MaxLength+1))
	}

	for _, l := range lengths {
		msg := make([]byte, l)
		prg.Read(msg)
		result.Bytes += uint64(l)

		digest := sha.Sum(msg)
		want := sha1.Sum(msg)
		reference.record(digest == want, "len %d: have %x, want %x",
			l, digest, want)

		have, err := sumChunked(prg, msg)
		chunked.record(err == nil && have == digest,
			"len %d: have %x, want %x (err=%v)", l, have, digest, err)

		if l > 0 {
			bit := prg.Intn(l * 8)
			flipped := append([]byte(nil), msg...)
			flipped[bit/8] ^= 1 << (bit % 8)
			n := hammingDistance(digest, sha.Sum(flipped))
			avalanche.record(n >= MinAvalanche,
				"len %d bit %d: %d output bits changed", l, bit, n)
		}
	}

	err := checkLifecycle()
	lifecycle.record(err == nil, "%v", err)

	return result
}

func sumChunked(prg *PRG, msg []byte) ([sha.Size]byte, error) {
	e := sha.NewEngine()
	for len(msg) > 0 {
		n := prg.Intn(len(msg) + 1)
		if err := e.Absorb(msg[:n]); err != nil {
			return [sha.Size]byte{}, err
		}
		msg = msg[n:]
	}
	return e.Finalize()
}

func checkLifecycle() error {
	e := sha.NewEngine()
	if _, err := e.Finalize(); err != nil {
		return err
	}
	if err := e.Absorb([]byte{0}); !errors.Is(err, sha.ErrFinalized) {
		return fmt.Errorf("Absorb after Finalize: %v", err)
	}
	if _, err := e.Finalize(); !errors.Is(err, sha.ErrFinalized) {
		return fmt.Errorf("Finalize after Finalize: %v", err)
	}
	return nil
}

func hammingDistance(a, b [sha.Size]byte) int {
	var n int
	for i := range a {
		n += bits.OnesCount8(a[i] ^ b[i])
	}
	return n
}
