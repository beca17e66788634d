// Package cmd implements CLI commands.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"firestige.xyz/rcg/internal/batch"
	"firestige.xyz/rcg/pkg/rcg"
)

var statsCmd = &cobra.Command{
	Use:   "stats [file...]",
	Short: "Summarize a game log",
	Long: `Decode a game log and print a summary.

Shows: generation, time span, final score, play mode changes, record counts
and decode problems. Several files are summarized in parallel.

Examples:
  rcg stats game.rcg
  rcg stats -f json logs/*.rcg`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatsCommand(cmd, args)
	},
}

var (
	statsFormat  string
	statsJobs    int
	statsDecoder decoderFlags
)

func init() {
	statsCmd.Flags().StringVarP(&statsFormat, "format", "f", "text", "output format: text, json or yaml")
	statsCmd.Flags().IntVarP(&statsJobs, "jobs", "j", 0, "files decoded in parallel (default: one per CPU)")
	statsDecoder.register(statsCmd)
}

// Summary describes one decoded log.
type Summary struct {
	Version   string            `json:"version" yaml:"version"`
	FirstTime int               `json:"first_time" yaml:"first_time"`
	LastTime  int               `json:"last_time" yaml:"last_time"`
	Left      string            `json:"left" yaml:"left"`
	Right     string            `json:"right" yaml:"right"`
	Score     [2]int            `json:"score" yaml:"score,flow"`
	PlayModes int               `json:"playmode_changes" yaml:"playmode_changes"`
	LastMode  string            `json:"last_playmode" yaml:"last_playmode"`
	Stats     rcg.StatsSnapshot `json:"stats" yaml:"stats"`
}

func runStatsCommand(cmd *cobra.Command, args []string) error {
	cfg := globalConfig
	if err := statsDecoder.apply(cmd, cfg); err != nil {
		return err
	}
	if len(args) > 1 {
		newOpts := func() ([]rcg.Option, error) { return parserOptions(cfg) }
		return runStatsFiles(cmd.Context(), args, cmd.OutOrStdout(), newOpts, statsFormat, statsJobs)
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

	sum, err := summarize(in, popts)
	if err != nil {
		return err
	}
	return printSummary(cmd.OutOrStdout(), sum, statsFormat)
}

// FileSummary is a Summary tagged with its input file.
type FileSummary struct {
	Path    string `json:"path" yaml:"path"`
	Summary `yaml:",inline"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// runStatsFiles summarizes every path on a worker pool.
func runStatsFiles(ctx context.Context, paths []string, out io.Writer,
	newOpts func() ([]rcg.Option, error), format string, jobs int) error {
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
		return summarize(f, popts)
	})

	files := make([]FileSummary, len(results))
	for i, r := range results {
		files[i].Path = r.Job.Path
		if r.Err != nil {
			files[i].Error = r.Err.Error()
			continue
		}
		files[i].Summary = *r.Value.(*Summary)
	}

	switch format {
	case "json":
		b, err := json.MarshalIndent(files, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format result: %w", err)
		}
		fmt.Fprintln(out, string(b))
	case "yaml":
		b, err := yaml.Marshal(files)
		if err != nil {
			return fmt.Errorf("failed to format result: %w", err)
		}
		out.Write(b)
	default:
		for i := range files {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "== %s ==\n", files[i].Path)
			if files[i].Error != "" {
				fmt.Fprintf(out, "error: %s\n", files[i].Error)
				continue
			}
			if err := printSummary(out, &files[i].Summary, format); err != nil {
				return err
			}
		}
	}
	if n := batch.Failed(results); n > 0 {
		return fmt.Errorf("%d of %d file(s) failed", n, len(results))
	}
	return nil
}

func summarize(in io.Reader, popts []rcg.Option) (*Summary, error) {
	c := &rcg.Collector{}
	p := rcg.NewParser(in, popts...)
	if err := p.Run(c); err != nil {
		return nil, fmt.Errorf("decode failed: %w", err)
	}

	sum := &Summary{Version: p.Version().String(), Stats: p.Stats().Snapshot()}
	if n := len(c.Shows); n > 0 {
		sum.FirstTime = c.Shows[0].Time
		sum.LastTime = c.Shows[n-1].Time
	}
	if n := len(c.Teams); n > 0 {
		t := c.Teams[n-1]
		sum.Left, sum.Right = t.Left.Name, t.Right.Name
		sum.Score = [2]int{t.Left.Score, t.Right.Score}
	}
	sum.PlayModes = len(c.PlayModes)
	if n := len(c.PlayModes); n > 0 {
		sum.LastMode = c.PlayModes[n-1].Mode.String()
	}
	return sum, nil
}

func printSummary(out io.Writer, sum *Summary, format string) error {
	switch format {
	case "json":
		b, err := json.MarshalIndent(sum, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format result: %w", err)
		}
		fmt.Fprintln(out, string(b))
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(sum); err != nil {
			return fmt.Errorf("failed to format result: %w", err)
		}
		return enc.Close()
	case "text":
		s := sum.Stats
		fmt.Fprintf(out, "version:         %s\n", sum.Version)
		fmt.Fprintf(out, "time:            %d - %d\n", sum.FirstTime, sum.LastTime)
		fmt.Fprintf(out, "match:           %s %d - %d %s\n", orDash(sum.Left), sum.Score[0], sum.Score[1], orDash(sum.Right))
		fmt.Fprintf(out, "playmodes:       %d (last %s)\n", sum.PlayModes, orDash(sum.LastMode))
		fmt.Fprintf(out, "records:         %d (shows %d, msgs %d, draws %d, teams %d, params %d)\n",
			s.Records(), s.Shows, s.Msgs, s.Draws, s.Teams, s.Params)
		fmt.Fprintf(out, "decode errors:   %d\n", s.DecodeErrors)
		fmt.Fprintf(out, "dropped players: %d\n", s.DroppedPlayers)
		fmt.Fprintf(out, "unknown names:   %d\n", s.UnknownNames)
		fmt.Fprintf(out, "bytes:           %d\n", s.Bytes)
	default:
		return fmt.Errorf("unknown format %q (must be text/json/yaml)", format)
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
