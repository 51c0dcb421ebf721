// Diagnostic tool for listing the records of an HDF4 file
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/robert-malhotra/go-hdf4/hdf4"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	tag       int
	keepNulls bool
	raw       bool
	invalid   bool
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options

	flagSet := pflag.NewFlagSet("diagnose", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.IntVar(&opts.tag, "tag", -1, "only print records with this tag id")
	flagSet.BoolVar(&opts.keepNulls, "keep-nulls", false, "also print DFTAG_NULL records")
	flagSet.BoolVar(&opts.raw, "raw", false, "hex dump the payload of unknown records")
	flagSet.BoolVar(&opts.invalid, "invalid", false, "report out-of-range payloads as Invalid")
	flagSet.Usage = func() {
		fmt.Fprintln(stderr, "Usage: diagnose [flags] <file.hdf>")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if flagSet.NArg() != 1 {
		flagSet.Usage()
		return exitUsage
	}
	if opts.tag < -1 || opts.tag > 0xFFFF {
		fmt.Fprintf(stderr, "ERROR: tag id %d is not in 0..65535\n", opts.tag)
		return exitUsage
	}

	filename := flagSet.Arg(0)

	var parseOpts []hdf4.Option
	if opts.invalid {
		parseOpts = append(parseOpts, hdf4.WithInvalidRanges())
	}

	f, err := hdf4.Open(filename, parseOpts...)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: Failed to open file: %v\n", err)
		return exitError
	}

	fmt.Fprintf(stdout, "=== Analyzing %s ===\n\n", filename)
	if v, ok := f.Version(); ok {
		fmt.Fprintf(stdout, "Library version: %d.%d.%d\n", v.Major, v.Minor, v.Release)
	}
	fmt.Fprintf(stdout, "Records: %d\n\n", f.Len())

	if !opts.keepNulls {
		f.RemoveNulls()
	}

	_ = f.Walk(func(_ int, d hdf4.Descriptor) error {
		if opts.tag >= 0 && d.Tag.ID() != hdf4.ID(opts.tag) {
			return nil
		}
		printDescriptor(stdout, d, opts.raw)
		return nil
	})

	return exitOK
}

func printDescriptor(w io.Writer, d hdf4.Descriptor, raw bool) {
	fmt.Fprintf(w, "ref %-5d %-14s %s\n", d.Ref, d.Tag.ID(), d.Tag)

	u, ok := d.Tag.(hdf4.Unknown)
	if !raw || !ok || len(u.Data) == 0 {
		return
	}
	fmt.Fprint(w, hex.Dump(u.Data))
}
