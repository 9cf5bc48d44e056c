// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"

	"github.com/ezrec/cva5data/data"
	"github.com/ezrec/cva5data/internal"
	"github.com/ezrec/cva5data/version"
)

// RootEnv overrides the package root of the bundle.
const RootEnv = "CVA5DATA_ROOT"

// Exit codes.
const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Getenv, os.Stdout))
}

// run executes the command with args (without the program name), reading
// the environment through getenv and writing results to stdout.
func run(args []string, getenv func(string) string, stdout io.Writer) int {
	var file string
	var list string
	var limit int
	var info bool
	var table bool
	var check string
	var compare bool
	var verbose bool

	flags := flag.NewFlagSet("cva5data", flag.ContinueOnError)
	flags.SetOutput(os.Stderr)
	flags.StringVar(&file, "f", "", "Data file to resolve")
	flags.StringVar(&list, "l", "", "List data files matching comma separated patterns ('*' for all)")
	flags.IntVar(&limit, "n", -1, "Maximum number of files to list")
	flags.BoolVar(&info, "info", false, "Print location and versions as YAML")
	flags.BoolVar(&table, "table", false, "Print versions as a table")
	flags.StringVar(&check, "check", "", "Version constraint to check, e.g. 'data_version >= (0, 0, 500)'")
	flags.BoolVar(&compare, "compare", true, "Parse versions for structured comparison")
	flags.BoolVar(&verbose, "v", false, "Verbose mode")

	if err := flags.Parse(args); err != nil {
		return exitUsage
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:   level,
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	})))

	if flags.NArg() != 0 {
		slog.Error("unknown arguments", "args", flags.Args())
		return exitUsage
	}

	if compare {
		version.SetComparator(version.PEP440{})
	} else {
		version.SetComparator(version.Unavailable{})
	}

	loc := data.Default()
	if root := getenv(RootEnv); root != "" {
		var err error
		loc, err = data.New(root)
		if err != nil {
			slog.Error("bad package root", "env", RootEnv, "root", root, "error", err)
			return exitFail
		}
	}
	slog.Debug("bundle", "root", loc.Root, "data", loc.DataRoot)

	if len(file) != 0 {
		fn, err := loc.File(file)
		if err != nil {
			slog.Error("resolve", "file", file, "error", err)
			return exitFail
		}
		writeLine(stdout, fn)
	}

	if len(list) != 0 {
		var patterns []string
		for _, pattern := range strings.Split(list, ",") {
			if pattern = strings.TrimSpace(pattern); pattern != "" {
				patterns = append(patterns, pattern)
			}
		}
		for _, name := range internal.IterSeqCollect(loc.Files(patterns...), limit) {
			writeLine(stdout, name)
		}
	}

	if info {
		if err := writeInfo(stdout, loc); err != nil {
			slog.Error("info", "error", err)
			return exitFail
		}
	}

	if table {
		writeTable(stdout, version.Records())
	}

	if len(check) != 0 {
		ok, err := version.Satisfies(check)
		if err != nil {
			slog.Error("check", "error", err)
			return exitFail
		}
		slog.Debug("check", "constraint", check, "ok", ok)
		if !ok {
			return exitFail
		}
	}

	return exitOK
}
