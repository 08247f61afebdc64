//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package hexcodec

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/markkurossi/sha1/sha1"
)

var encDecTests = []struct {
	enc string
	dec []byte
}{
	{"", []byte{}},
	{"0001020304050607", []byte{0, 1, 2, 3, 4, 5, 6, 7}},
	{"08090a0b0c0d0e0f", []byte{8, 9, 10, 11, 12, 13, 14, 15}},
	{"f0f1f2f3f4f5f6f7", []byte{0xf0, 0xf1, 0xf2, 0xf3, 0xf4, 0xf5, 0xf6, 0xf7}},
	{"f8f9fafbfcfdfeff", []byte{0xf8, 0xf9, 0xfa, 0xfb, 0xfc, 0xfd, 0xfe, 0xff}},
	{"67", []byte{'g'}},
	{"e3a1", []byte{0xe3, 0xa1}},
}

func TestEncode(t *testing.T) {
	for i, test := range encDecTests {
		s := EncodeToString(test.dec)
		if s != test.enc {
			t.Errorf("#%d: have %s, want %s", i, s, test.enc)
		}
	}
}

func TestDecode(t *testing.T) {
	for i, test := range encDecTests {
		dec, err := DecodeString(test.enc)
		if err != nil {
			t.Errorf("#%d: unexpected error: %v", i, err)
			continue
		}
		if !bytes.Equal(dec, test.dec) {
			t.Errorf("#%d: have %x, want %x", i, dec, test.dec)
		}
	}
	dec, err := DecodeString("F8F9FAFBFCFDFEFF")
	if err != nil {
		t.Fatalf("upper case: %v", err)
	}
	if !bytes.Equal(dec, encDecTests[4].dec) {
		t.Fatalf("upper case: have %x, want %x", dec, encDecTests[4].dec)
	}
}

func TestDigestRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		var d [sha1.Size]byte
		rnd.Read(d[:])

		s := EncodeToString(d[:])
		if len(s) != 40 {
			t.Fatalf("encoded length %d", len(s))
		}
		dec, err := DecodeDigest(s)
		if err != nil {
			t.Fatalf("DecodeDigest(%s): %v", s, err)
		}
		if dec != d {
			t.Fatalf("round trip: have %x, want %x", dec, d)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		in     string
		offset int
		char   byte
	}{
		{"0", 1, 0},
		{"abc", 3, 0},
		{"zz", 0, 'z'},
		{"0g", 1, 'g'},
		{"00 1", 2, ' '},
		{"ffx0", 2, 'x'},
		{"0x01", 1, 'x'},
	}
	for _, test := range tests {
		dec, err := DecodeString(test.in)
		if err == nil {
			t.Errorf("%q: expected error", test.in)
			continue
		}
		if dec != nil {
			t.Errorf("%q: partial result %x", test.in, dec)
		}
		var derr *DecodeError
		if !errors.As(err, &derr) {
			t.Errorf("%q: unexpected error type %T", test.in, err)
			continue
		}
		if derr.Offset != test.offset || derr.Char != test.char {
			t.Errorf("%q: have offset=%d char=%q, want offset=%d char=%q",
				test.in, derr.Offset, derr.Char, test.offset, test.char)
		}
	}
}

func TestDecodeDigestLength(t *testing.T) {
	_, err := DecodeDigest("a9993e36")
	var derr *DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("short digest: have %v, want DecodeError", err)
	}
}
