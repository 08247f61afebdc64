//
// main.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/pprof"

	"github.com/markkurossi/sha1/env"
	"github.com/markkurossi/sha1/hexcodec"
	"github.com/markkurossi/sha1/report"
	"github.com/markkurossi/sha1/selftest"
	"github.com/markkurossi/sha1/sha1"
	"github.com/markkurossi/sha1/verify"
)

// Exit codes.
const (
	exitOK        = 0
	exitMismatch  = 1
	exitMalformed = 2
	exitFailure   = 3
)

func main() {
	input := flag.String("i", "", "read input from `file` instead of stdin")
	sum := flag.Bool("sum", false, "print the SHA-1 digest of the input")
	trace := flag.Bool("trace", false, "print compression rounds (with -sum)")
	selfTest := flag.Int("selftest", 0, "run self-test with `N` random messages")
	fVerbose := flag.Bool("v", false, "verbose output")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to `file`")
	flag.Parse()

	log.SetFlags(0)

	if len(*cpuprofile) > 0 {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	config := &env.Config{
		Verbose: *fVerbose,
	}
	timing := report.NewTiming()

	var code int
	if *selfTest > 0 {
		code = selfTestMode(config, timing, *selfTest)
	} else {
		in := io.Reader(os.Stdin)
		if len(*input) > 0 {
			f, err := os.Open(*input)
			if err != nil {
				log.Fatal(err)
			}
			defer f.Close()
			in = f
		}
		if *sum {
			code = sumMode(config, timing, in, *trace)
		} else {
			code = verifyMode(config, timing, in)
		}
	}
	if config.Verbose {
		timing.Print(os.Stderr, bytesHashed)
	}
	pprof.StopCPUProfile()
	os.Exit(code)
}

var bytesHashed uint64

func sumMode(config *env.Config, timing *report.Timing, in io.Reader,
	trace bool) int {

	e := sha1.NewEngine()
	var rec sha1.Recorder
	if trace {
		e.SetTracer(rec.Trace)
	}
	n, err := io.Copy(e, in)
	if err != nil {
		log.Print(err)
		return exitFailure
	}
	bytesHashed += uint64(n)
	timing.Sample("Absorb", []string{report.ByteSize(n).String()})

	digest, err := e.Finalize()
	if err != nil {
		log.Print(err)
		return exitFailure
	}
	timing.Sample("Finalize", nil)
	config.Debugf("%d blocks compressed\n", (uint64(n)+8)/sha1.BlockSize+1)

	if trace {
		report.PrintTrace(os.Stdout, rec.Rounds)
	}
	fmt.Println(hexcodec.EncodeToString(digest[:]))
	return exitOK
}

func verifyMode(config *env.Config, timing *report.Timing,
	in io.Reader) int {

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var lines int
	for scanner.Scan() {
		lines++
		line := scanner.Text()
		digest, err := verify.Check(line)
		if err != nil {
			log.Printf("line %d: %s", lines, err)
			switch {
			case verify.IsMismatch(err):
				return exitMismatch
			case verify.IsMalformed(err):
				return exitMalformed
			default:
				return exitFailure
			}
		}
		bytesHashed += uint64(len(line))
		config.Debugf("line %d: %s OK\n", lines,
			hexcodec.EncodeToString(digest[:]))
		fmt.Println(true)
	}
	if err := scanner.Err(); err != nil {
		log.Print(err)
		return exitFailure
	}
	if lines == 0 {
		log.Print("no input")
		return exitMalformed
	}
	timing.Sample("Verify", []string{fmt.Sprintf("%d lines", lines)})
	return exitOK
}

func selfTestMode(config *env.Config, timing *report.Timing, rounds int) int {
	result, err := selftest.Run(config, rounds)
	if err != nil {
		log.Print(err)
		return exitFailure
	}
	bytesHashed += result.Bytes
	timing.Sample("Self-test", []string{report.ByteSize(result.Bytes).String()})

	report.PrintSelfTest(os.Stdout, result)
	if err := result.Err(); err != nil {
		log.Print(err)
		return exitMismatch
	}
	return exitOK
}
