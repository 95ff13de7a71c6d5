package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Borislavv/char-counter/internal/bench"
	"github.com/Borislavv/char-counter/internal/read"
	"github.com/Borislavv/char-counter/internal/report"
	"github.com/pkg/errors"
)

const (
	defaultMaxThreads = 8
	defaultReruns     = 100
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// rankFlag is an optional uint flag: set tells whether it was given at all.
type rankFlag struct {
	set bool
	v   uint
}

func (f *rankFlag) String() string {
	if f == nil || !f.set {
		return ""
	}
	return strconv.FormatUint(uint64(f.v), 10)
}

func (f *rankFlag) Set(s string) error {
	v, err := strconv.ParseUint(s, 0, strconv.IntSize)
	if err != nil {
		return err
	}
	f.v, f.set = uint(v), true
	return nil
}

func run(args []string, stdout, stderr io.Writer) int {
	name := filepath.Base(os.Args[0])
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		maxThreads uint
		reruns     uint
		rank       rankFlag
	)
	fs.UintVar(&maxThreads, "m", defaultMaxThreads, "maximum number of threads to benchmark")
	fs.UintVar(&maxThreads, "max", defaultMaxThreads, "maximum number of threads to benchmark")
	fs.UintVar(&reruns, "r", defaultReruns, "the number of reruns to run each test")
	fs.UintVar(&reruns, "reruns", defaultReruns, "the number of reruns to run each test")
	fs.Var(&rank, "s", "display the `rank` most frequent characters")
	fs.Var(&rank, "stats", "display the `rank` most frequent characters")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "usage: %s [flags] <FILE>\n", name)
		fs.PrintDefaults()
	}

	pos, err := parseArgs(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if len(pos) != 1 {
		fs.Usage()
		return 2
	}

	if maxThreads == 0 {
		_, _ = fmt.Fprintln(stdout, "Max thread argument is equal to zero, setting to 1.")
		maxThreads = 1
	}
	if reruns == 0 {
		_, _ = fmt.Fprintln(stdout, "Reruns argument is equal to zero, setting to 1.")
		reruns = 1
	}

	lines, err := read.Lines(pos[0])
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "ERR:", err)
		return 2
	}

	counts := bench.Sweep(lines, int(maxThreads), int(reruns), func(res bench.Result) {
		_, _ = fmt.Fprintf(stdout, "Average time with %d threads: %v\n", res.Threads, res.Mean)
	})

	if rank.set {
		if rank.v == 0 {
			_, _ = fmt.Fprintln(stdout, "Stats argument is used, but rank set to 0. Setting to 1.")
		}
		if err := report.Print(stdout, counts, int(rank.v)); err != nil {
			_, _ = fmt.Fprintln(stderr, "ERR:", err)
			return 2
		}
	}
	return 0
}

// parseArgs lets flags appear before and after positional arguments.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var pos []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			return pos, nil
		}
		pos = append(pos, args[0])
		args = args[1:]
	}
}
