// Command mython runs the Mython interpreter over a single source file (or
// stdin), styled after the teacher's cmd/barn/main.go: flag-driven options,
// log.Printf for the startup banner, log.Fatalf on unrecoverable errors.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"mython/eval"
	"mython/parser"
	"mython/trace"
	"mython/types"
)

func main() {
	traceEnabled := flag.Bool("trace", false, "Enable method-call tracing")
	traceFilter := flag.String("trace-filter", "", "Trace filter pattern (glob, e.g. 'Animal.*', comma-separated)")
	flag.Parse()

	if *traceEnabled {
		var filters []string
		if *traceFilter != "" {
			for _, f := range strings.Split(*traceFilter, ",") {
				filters = append(filters, strings.TrimSpace(f))
			}
		}
		trace.Init(true, filters, os.Stderr)
		log.Printf("Tracing enabled (filters: %v)", filters)
	} else {
		trace.Init(false, nil, nil)
	}

	source, err := readSource(flag.Args())
	if err != nil {
		log.Fatalf("Failed to read source: %v", err)
	}

	p := parser.NewParser(source)
	program, err := p.Parse()
	if err != nil {
		reportAndExit(err)
	}

	ctx := types.NewContext(os.Stdout)
	scope := types.NewScope()
	if _, err := eval.Execute(program, scope, ctx); err != nil {
		reportAndExit(err)
	}
}

// readSource reads program text from the path named by args[0], or from
// stdin if no path is given.
func readSource(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(args[0])
	return string(data), err
}

// reportAndExit distinguishes which stage failed by Go type switch, so the
// exit message names lexing, parsing or evaluation rather than printing a
// bare error string.
func reportAndExit(err error) {
	switch e := err.(type) {
	case *parser.LexError:
		log.Fatalf("lex error: %s", e.Error())
	case *parser.ParseError:
		log.Fatalf("parse error: %s", e.Error())
	case *types.RuntimeError:
		fmt.Fprintln(os.Stderr, "runtime error: "+e.Traceback())
		os.Exit(1)
	default:
		log.Fatalf("error: %v", err)
	}
}
