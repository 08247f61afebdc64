//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package env implements global environment for the SHA-1 tools.
package env

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
)

// Config defines the global configuration for the self-test and the
// commands. Config must not be modified after being passed to any
// module.
type Config struct {
	// Rand is the entropy source for self-test seeds. If nil,
	// crypto/rand.Reader is used.
	Rand io.Reader

	// Verbose enables debug output to Output.
	Verbose bool

	// Output receives debug output. If nil, os.Stderr is used.
	Output io.Writer
}

// GetRandom returns the source of entropy for self-test seeds.
func (config *Config) GetRandom() io.Reader {
	if config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}

// Debugf prints debugging message if Verbose is enabled.
func (config *Config) Debugf(format string, a ...interface{}) {
	if !config.Verbose {
		return
	}
	o := config.Output
	if o == nil {
		o = os.Stderr
	}
	fmt.Fprintf(o, format, a...)
}
