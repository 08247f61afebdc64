//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package hexcodec implements the hexadecimal digest encoding:
// lowercase, two characters per byte, most significant nibble first,
// no separators or prefix. Decoding is strict and never returns
// partial results.
package hexcodec

import (
	"fmt"

	"github.com/markkurossi/sha1/sha1"
)

const hextable = "0123456789abcdef"

// DecodeError describes an invalid hex input.
type DecodeError struct {
	// Offset is the index of the invalid character, or the input
	// length for length errors.
	Offset int
	// Char is the invalid character. It is 0 for length errors.
	Char   byte
	Reason string
}

func (err *DecodeError) Error() string {
	if err.Char != 0 {
		return fmt.Sprintf("hexcodec: %s %q at offset %d",
			err.Reason, err.Char, err.Offset)
	}
	return fmt.Sprintf("hexcodec: %s (length %d)", err.Reason, err.Offset)
}

// EncodedLen returns the length of an encoding of n source bytes.
func EncodedLen(n int) int {
	return n * 2
}

// Encode encodes src into EncodedLen(len(src)) bytes of dst and
// returns the number of bytes written.
func Encode(dst, src []byte) int {
	j := 0
	for _, v := range src {
		dst[j] = hextable[v>>4]
		dst[j+1] = hextable[v&0x0f]
		j += 2
	}
	return len(src) * 2
}

// EncodeToString returns the hexadecimal encoding of src.
func EncodeToString(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	Encode(dst, src)
	return string(dst)
}

// DecodeString returns the bytes represented by the hexadecimal
// string s. Both upper and lower case digits are accepted.
func DecodeString(s string) ([]byte, error) {
	if len(s)%2 == 1 {
		return nil, &DecodeError{
			Offset: len(s),
			Reason: "odd length hex string",
		}
	}
	result := make([]byte, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		hi, ok := fromHexChar(s[i])
		if !ok {
			return nil, invalidByte(s, i)
		}
		lo, ok := fromHexChar(s[i+1])
		if !ok {
			return nil, invalidByte(s, i+1)
		}
		result[i/2] = hi<<4 | lo
	}
	return result, nil
}

// DecodeDigest decodes a hex encoded SHA-1 digest.
func DecodeDigest(s string) (digest [sha1.Size]byte, err error) {
	data, err := DecodeString(s)
	if err != nil {
		return digest, err
	}
	if len(data) != sha1.Size {
		return digest, &DecodeError{
			Offset: len(s),
			Reason: fmt.Sprintf("digest must be %d hex characters",
				EncodedLen(sha1.Size)),
		}
	}
	copy(digest[:], data)
	return digest, nil
}

func invalidByte(s string, i int) error {
	return &DecodeError{
		Offset: i,
		Char:   s[i],
		Reason: "invalid hex character",
	}
}

func fromHexChar(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
