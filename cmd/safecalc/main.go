package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/eigerco/safemath/internal/calc"
	"github.com/eigerco/safemath/pkg/log"
	"github.com/eigerco/safemath/pkg/safemath"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// main evaluates one checked operation.
// go run ./cmd/safecalc -type int8 -op add 120 10
func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("safecalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	typeName := fs.String("type", "int64", "Operand type: "+strings.Join(calc.Types(), ", "))
	opName := fs.String("op", "add", "Operation: add, sub, mul, div")
	logLevel := fs.String("log-level", "warn", "Log level")
	logJSON := fs.Bool("log-json", false, "Log as JSON instead of console format")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: safecalc [flags] <a> <b>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	level, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "invalid log level: %v\n", err)
		return exitUsage
	}
	opts := log.Options{LogLevel: level, Out: stderr}
	if *logJSON {
		opts.Type = log.JSONLogger
	}
	log.Init(opts)

	if fs.NArg() != 2 {
		fs.Usage()
		return exitUsage
	}

	op, err := safemath.ParseOp(*opName)
	if err != nil {
		log.CLI.Error().Err(err).Msg("invalid operation")
		return exitUsage
	}

	res, err := calc.Evaluate(*typeName, op, fs.Arg(0), fs.Arg(1))
	if err != nil {
		log.CLI.Error().Err(err).Msg("invalid input")
		return exitUsage
	}
	if res.Err != nil {
		log.CLI.Warn().Err(res.Err).Stringer("kind", res.Kind).Msg("checked operation failed")
		fmt.Fprintln(stdout, res.Kind)
		return exitFailure
	}

	fmt.Fprintln(stdout, res.Value)
	return exitOK
}
