package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/coregx/horspool"
)

// errNoMatch signals exit status 1; it is never printed.
var errNoMatch = errors.New("no input matched")

type options struct {
	withoutMatch bool
	quiet        bool
	jobs         int
	colorMode    string
	verbose      bool
}

func newRootCmd(stdin io.Reader) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "bmh [flags] PATTERN [FILE...]",
		Short: "Report which inputs contain a literal byte pattern",
		Long: `bmh searches each input for PATTERN using Boyer-Moore-Horspool and
prints the names of the inputs that contain it.

PATTERN is matched byte for byte: no regular expressions, no case folding.
With no FILE, or when FILE is "-", standard input is read.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, opts, stdin, args[0], args[1:])
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.withoutMatch, "files-without-match", "L", false, "Print inputs that do not contain PATTERN")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Print nothing; report through the exit status only")
	flags.IntVarP(&opts.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "Number of inputs searched in parallel")
	flags.StringVar(&opts.colorMode, "color", "auto", "Colorize output: auto, always or never")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	return cmd
}

func runSearch(cmd *cobra.Command, opts *options, stdin io.Reader, pattern string, inputs []string) error {
	if err := applyColorMode(opts.colorMode); err != nil {
		return err
	}
	if opts.jobs < 1 {
		return fmt.Errorf("--jobs must be at least 1, got %d", opts.jobs)
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	p, err := horspool.CompileString(pattern)
	if err != nil {
		return err
	}
	logger.Debug("compiled pattern", "len", p.Len(), "heap_bytes", p.HeapBytes())

	if len(inputs) == 0 {
		inputs = []string{stdinName}
	}

	results, err := search(cmd.Context(), logger, p, inputs, stdin, opts.jobs)
	if err != nil {
		return err
	}

	matched := false
	name := color.New(color.FgMagenta).SprintFunc()
	out := cmd.OutOrStdout()
	for _, r := range results {
		matched = matched || r.matched
		if opts.quiet || r.matched == opts.withoutMatch {
			continue
		}
		fmt.Fprintln(out, name(r.name))
	}

	if !matched {
		return errNoMatch
	}
	return nil
}

func applyColorMode(mode string) error {
	switch mode {
	case "auto":
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid --color %q: want auto, always or never", mode)
	}
	return nil
}
