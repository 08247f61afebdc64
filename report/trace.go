//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package report

import (
	"fmt"
	"io"

	"github.com/markkurossi/sha1/selftest"
	"github.com/markkurossi/sha1/sha1"
	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/text/superscript"
)

// PhaseLabel returns the label of the round's non-linear function
// with the phase number as superscript, for example "f¹ Ch".
func PhaseLabel(r sha1.Round) string {
	return fmt.Sprintf("f%s %s", superscript.Itoa(r.Phase()+1), r.Func())
}

// PrintTrace prints the compression rounds as a table.
func PrintTrace(o io.Writer, rounds []sha1.Round) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Blk").SetAlign(tabulate.MR)
	tab.Header("t").SetAlign(tabulate.MR)
	tab.Header("f").SetAlign(tabulate.ML)
	tab.Header("W").SetAlign(tabulate.MR)
	tab.Header("a").SetAlign(tabulate.MR)
	tab.Header("b").SetAlign(tabulate.MR)
	tab.Header("c").SetAlign(tabulate.MR)
	tab.Header("d").SetAlign(tabulate.MR)
	tab.Header("e").SetAlign(tabulate.MR)

	for _, r := range rounds {
		row := tab.Row()
		row.Column(fmt.Sprintf("%d", r.Block))
		row.Column(fmt.Sprintf("%d", r.T))
		row.Column(PhaseLabel(r))
		row.Column(fmt.Sprintf("%08x", r.W))
		row.Column(fmt.Sprintf("%08x", r.A))
		row.Column(fmt.Sprintf("%08x", r.B))
		row.Column(fmt.Sprintf("%08x", r.C))
		row.Column(fmt.Sprintf("%08x", r.D))
		row.Column(fmt.Sprintf("%08x", r.E))
	}

	tab.Print(o)
}

// PrintSelfTest prints the self-test result summary.
func PrintSelfTest(o io.Writer, result *selftest.Result) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Check").SetAlign(tabulate.ML)
	tab.Header("Passed").SetAlign(tabulate.MR)
	tab.Header("Failed").SetAlign(tabulate.MR)

	var passed, failed int
	for _, c := range result.Checks {
		row := tab.Row()
		row.Column(c.Name)
		row.Column(fmt.Sprintf("%d", c.Passed))
		col := row.Column(fmt.Sprintf("%d", c.Failed))
		if c.Failed > 0 {
			col.SetFormat(tabulate.FmtBold)
		}
		passed += c.Passed
		failed += c.Failed
	}
	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(fmt.Sprintf("%d", passed)).SetFormat(tabulate.FmtBold)
	row.Column(fmt.Sprintf("%d", failed)).SetFormat(tabulate.FmtBold)

	tab.Print(o)

	fmt.Fprintf(o, "Seed: %x\n", result.Seed)
	fmt.Fprintf(o, "Data: %s\n", ByteSize(result.Bytes))
}
