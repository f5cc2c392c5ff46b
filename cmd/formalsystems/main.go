// Command formalsystems drives a user-defined formal system: it loads
// a YAML definition of axiom schemas and rules, classifies it into step or
// bucket mode, runs the appropriate search driver, and optionally reports
// whether a target string is an axiom or how it was derived.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/alexprengere/FormalSystems/pkg/formalsystems"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("formalsystems", flag.ContinueOnError)
	derive := fs.String("d", "", "derive the named theorem")
	schemasOnly := fs.Bool("s", false, "iterate axiom schemas only, print theorems")
	axiomCheck := fs.String("a", "", "check whether target matches any axiom schema")
	bound := fs.Int("i", 10, "bound: step count, max_turns, or max_iter")
	quiet := fs.Bool("q", false, "suppress per-production trace")
	fs.SetOutput(stdout)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stdout, "usage: formalsystems [flags] <definition.yaml>")
		return 2
	}
	path := fs.Arg(0)

	logger := newLogger()

	def, err := LoadDefinition(path)
	if err != nil {
		fmt.Fprintln(stdout, err)
		return 1
	}

	sys, err := formalsystems.Compile(def, logger)
	if err != nil {
		fmt.Fprintln(stdout, err)
		return 1
	}

	mode, full := formalsystems.Classify(sys.Schemas, sys.Rules)
	printer := NewPrinter(stdout, mode == formalsystems.ModeBucket)
	printer.Quiet = *quiet

	if *schemasOnly {
		return runSchemasOnly(sys, *bound, printer)
	}

	if *axiomCheck != "" {
		printer.AxiomCheck(*axiomCheck, sys.Schemas)
		return 0
	}

	var result *formalsystems.RunResult
	switch mode {
	case formalsystems.ModeStep:
		printer.Banner("step mode, %d steps", *bound)
		result = formalsystems.RunStep(sys.Schemas, sys.Rules, *bound, printer, logger)
	case formalsystems.ModeBucket:
		printer.Banner("bucket mode, full=%v, max_turns=%d", full, *bound)
		result = formalsystems.RunBucket(sys.Schemas, sys.Rules, full, 0, *bound, printer, logger)
	}

	if *derive != "" {
		lines, found := formalsystems.Derive(*derive, result.Registry)
		printer.Derivation(*derive, lines, found)
	}

	return 0
}

// runSchemasOnly enumerates every axiom schema up to bound ground theorems
// total (the -i bound doubling as max_iter here) and prints each.
func runSchemasOnly(sys *formalsystems.System, bound int, printer *Printer) int {
	printer.Banner("schema enumeration, max_iter=%d", bound)
	rr := formalsystems.NewRoundRobin(sys.Schemas)
	var produced []*formalsystems.Theorem
	for i := 0; i < bound; i++ {
		th, ok := rr.Next()
		if !ok {
			break
		}
		produced = append(produced, th)
	}
	printer.Turn(0, produced)
	return 0
}
