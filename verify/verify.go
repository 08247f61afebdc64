//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package verify checks messages against expected SHA-1 digests. The
// input format is a line holding the expected hex digest and the
// message, separated by whitespace.
package verify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/markkurossi/sha1/hexcodec"
	"github.com/markkurossi/sha1/sha1"
)

// MismatchError is returned when the computed digest differs from the
// expected digest.
type MismatchError struct {
	Expected [sha1.Size]byte
	Computed [sha1.Size]byte
}

func (err *MismatchError) Error() string {
	return fmt.Sprintf("verify: digest mismatch: expected %s, computed %s",
		hexcodec.EncodeToString(err.Expected[:]),
		hexcodec.EncodeToString(err.Computed[:]))
}

// MalformedInputError is returned when the input line can't be
// parsed. Err holds the underlying decode error, if any.
type MalformedInputError struct {
	Reason string
	Err    error
}

func (err *MalformedInputError) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("verify: malformed input: %s: %s",
			err.Reason, err.Err)
	}
	return fmt.Sprintf("verify: malformed input: %s", err.Reason)
}

func (err *MalformedInputError) Unwrap() error {
	return err.Err
}

// IsMismatch tests if the error is a digest mismatch.
func IsMismatch(err error) bool {
	var e *MismatchError
	return errors.As(err, &e)
}

// IsMalformed tests if the error reports malformed input.
func IsMalformed(err error) bool {
	var e *MalformedInputError
	return errors.As(err, &e)
}

// Request holds a parsed verification request.
type Request struct {
	Expected [sha1.Size]byte
	Message  []byte
}

// ParseLine parses the verification request line.
func ParseLine(line string) (*Request, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return nil, &MalformedInputError{
			Reason: fmt.Sprintf("expected 2 fields, got %d", len(fields)),
		}
	}
	expected, err := hexcodec.DecodeDigest(fields[0])
	if err != nil {
		return nil, &MalformedInputError{
			Reason: "invalid expected digest",
			Err:    err,
		}
	}
	return &Request{
		Expected: expected,
		Message:  []byte(fields[1]),
	}, nil
}

// Verify computes the digest of message and compares it against the
// expected digest.
func Verify(expected [sha1.Size]byte, message []byte) error {
	e := sha1.NewEngine()
	if err := e.Absorb(message); err != nil {
		return err
	}
	computed, err := e.Finalize()
	if err != nil {
		return err
	}
	if computed != expected {
		return &MismatchError{
			Expected: expected,
			Computed: computed,
		}
	}
	return nil
}

// Check parses the request line and verifies it. It returns the
// computed digest on success.
func Check(line string) ([sha1.Size]byte, error) {
	req, err := ParseLine(line)
	if err != nil {
		return [sha1.Size]byte{}, err
	}
	if err := Verify(req.Expected, req.Message); err != nil {
		return [sha1.Size]byte{}, err
	}
	return req.Expected, nil
}
