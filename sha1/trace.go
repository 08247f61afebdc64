//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"fmt"
)

// Tracer receives the working state after each compression round.
type Tracer func(r Round)

// Round describes the working variables after one compression round.
type Round struct {
	Block uint64
	T     int
	W     uint32
	A     uint32
	B     uint32
	C     uint32
	D     uint32
	E     uint32
}

// Phase returns the 20-round phase [0...3] of the round.
func (r Round) Phase() int {
	return r.T / 20
}

// Func returns the name of the round's non-linear function.
func (r Round) Func() string {
	switch r.Phase() {
	case 0:
		return "Ch"
	case 2:
		return "Maj"
	default:
		return "Parity"
	}
}

func (r Round) String() string {
	return fmt.Sprintf("%d/%02d: W=%08x a=%08x b=%08x c=%08x d=%08x e=%08x",
		r.Block, r.T, r.W, r.A, r.B, r.C, r.D, r.E)
}

// Recorder collects trace rounds.
type Recorder struct {
	Rounds []Round
}

// Trace implements Tracer and appends the round to the recorder.
func (rec *Recorder) Trace(r Round) {
	rec.Rounds = append(rec.Rounds, r)
}
