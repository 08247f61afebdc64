//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package env

import (
	"bytes"
	"crypto/rand"
	"testing"
)

func TestGetRandom(t *testing.T) {
	var config Config
	if config.GetRandom() != rand.Reader {
		t.Fatalf("default random source is not crypto/rand")
	}
	src := bytes.NewReader([]byte{1, 2, 3})
	config.Rand = src
	if config.GetRandom() != src {
		t.Fatalf("configured random source not used")
	}
}

func TestDebugf(t *testing.T) {
	var out bytes.Buffer
	config := &Config{
		Output: &out,
	}
	config.Debugf("hidden %d\n", 1)
	if out.Len() != 0 {
		t.Fatalf("output without Verbose: %q", out.String())
	}
	config.Verbose = true
	config.Debugf("shown %d\n", 2)
	if out.String() != "shown 2\n" {
		t.Fatalf("Debugf: have %q", out.String())
	}
}
