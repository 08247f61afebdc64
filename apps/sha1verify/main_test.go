//
// main_test.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/markkurossi/sha1/env"
	"github.com/markkurossi/sha1/report"
)

func TestVerifyMode(t *testing.T) {
	tests := []struct {
		input string
		code  int
	}{
		{"a9993e364706816aba3e25717850c26c9cd0d89d abc\n", exitOK},
		{"a9993e364706816aba3e25717850c26c9cd0d89d abc\n" +
			"84983e441c3bd26ebaae4aa1f95129e5e54670f1 " +
			"abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq\n", exitOK},
		{"a9993e364706816aba3e25717850c26c9cd0d89d abd\n", exitMismatch},
		{"a9993e364706816aba3e25717850c26c9cd0d89d\n", exitMalformed},
		{"a9993e364706816aba3e25717850c26c9cd0d8 abc\n", exitMalformed},
		{"not-hex abc\n", exitMalformed},
		{"", exitMalformed},
	}
	for _, test := range tests {
		code := verifyMode(&env.Config{}, report.NewTiming(),
			strings.NewReader(test.input))
		if code != test.code {
			t.Errorf("%q: have exit code %d, want %d", test.input, code,
				test.code)
		}
	}
}

func TestSumMode(t *testing.T) {
	code := sumMode(&env.Config{}, report.NewTiming(),
		bytes.NewReader([]byte("abc")), true)
	if code != exitOK {
		t.Fatalf("sumMode: exit code %d", code)
	}
}

func TestSelfTestMode(t *testing.T) {
	config := &env.Config{
		Rand: bytes.NewReader(make([]byte, 32)),
	}
	if code := selfTestMode(config, report.NewTiming(), 10); code != exitOK {
		t.Fatalf("selfTestMode: exit code %d", code)
	}
}
