//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package sha1_test

import (
	"fmt"
	"log"

	"github.com/markkurossi/sha1/sha1"
)

func ExampleEngine() {
	e := sha1.NewEngine()
	if err := e.Absorb([]byte("ab")); err != nil {
		log.Fatal(err)
	}
	if err := e.Absorb([]byte("c")); err != nil {
		log.Fatal(err)
	}
	digest, err := e.Finalize()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%x\n", digest)
	// Output: a9993e364706816aba3e25717850c26c9cd0d89d
}

func ExampleSum() {
	fmt.Printf("%x\n", sha1.Sum(nil))
	// Output: da39a3ee5e6b4b0d3255bfef95601890afd80709
}
