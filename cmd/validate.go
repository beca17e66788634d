// Package cmd implements CLI commands.
package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"firestige.xyz/rcg/internal/batch"
	"firestige.xyz/rcg/pkg/rcg"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file...]",
	Short: "Check that a game log decodes cleanly",
	Long: `Decode a game log and report every record that fails to decode.

The command exits non-zero when any record fails, which makes it usable as a
pipeline gate. Combine with --strict to also reject dropped players. Several
files are checked in parallel.

Examples:
  rcg validate game.rcg
  rcg validate --strict --show-strategy safe game.rcg
  rcg validate -j 8 logs/*.rcg`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidateCommand(cmd, args)
	},
}

var (
	validateMaxErrors int
	validateJobs      int
	validateDecoder   decoderFlags
)

// errInvalid is returned when the log had decode errors.
var errInvalid = errors.New("log has decode errors")

func init() {
	validateCmd.Flags().IntVar(&validateMaxErrors, "max-errors", 20,
		"number of errors to print, 0 for all")
	validateCmd.Flags().IntVarP(&validateJobs, "jobs", "j", 0, "files decoded in parallel (default: one per CPU)")
	validateDecoder.register(validateCmd)
}

func runValidateCommand(cmd *cobra.Command, args []string) error {
	cfg := globalConfig
	if err := validateDecoder.apply(cmd, cfg); err != nil {
		return err
	}
	if len(args) > 1 {
		newOpts := func() ([]rcg.Option, error) { return parserOptions(cfg) }
		return runValidateFiles(cmd.Context(), args, cmd.OutOrStdout(), newOpts, validateMaxErrors, validateJobs)
	}

	popts, err := parserOptions(cfg)
	if err != nil {
		return err
	}
	in, err := openInput(inputArg(args))
	if err != nil {
		return err
	}
	defer in.Close()

	return runValidate(in, cmd.OutOrStdout(), popts, validateMaxErrors)
}

// runValidate decodes in to completion, printing decode errors to out.
func runValidate(in io.Reader, out io.Writer, popts []rcg.Option, maxErrors int) error {
	var h rcg.BaseHandler
	p := rcg.NewParser(in, popts...)
	failures := 0
	for {
		err := p.Parse(&h)
		if err == nil {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		var recErr *rcg.RecordError
		if !errors.As(err, &recErr) {
			return fmt.Errorf("decode aborted: %w", err)
		}
		failures++
		if maxErrors == 0 || failures <= maxErrors {
			fmt.Fprintf(out, "  %v\n", recErr)
		}
	}

	s := p.Stats().Snapshot()
	if failures > 0 {
		fmt.Fprintf(out, "INVALID: %s log, %d record(s), %d decode error(s)\n", p.Version(), s.Records(), failures)
		return errInvalid
	}
	fmt.Fprintf(out, "VALID: %s log, %d record(s), %d show(s)\n", p.Version(), s.Records(), s.Shows)
	return nil
}

// runValidateFiles validates every path on a worker pool and prints one
// report per file in input order. newOpts is called once per file.
func runValidateFiles(ctx context.Context, paths []string, out io.Writer,
	newOpts func() ([]rcg.Option, error), maxErrors, jobs int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	results := batch.New(jobs).Run(ctx, paths, func(_ context.Context, path string) (interface{}, error) {
		popts, err := newOpts()
		if err != nil {
			return nil, err
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		var report bytes.Buffer
		err = runValidate(f, &report, popts, maxErrors)
		return report.String(), err
	})

	for _, r := range results {
		fmt.Fprintf(out, "%s:\n", r.Job.Path)
		if report, ok := r.Value.(string); ok {
			fmt.Fprint(out, report)
		}
		if r.Err != nil && !errors.Is(r.Err, errInvalid) {
			fmt.Fprintf(out, "  ERROR: %v\n", r.Err)
		}
	}
	failed := batch.Failed(results)
	fmt.Fprintf(out, "%d of %d file(s) valid\n", len(results)-failed, len(results))
	if failed > 0 {
		return errInvalid
	}
	return nil
}
