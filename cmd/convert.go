package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"firestige.xyz/rcg/internal/sink"
	"firestige.xyz/rcg/pkg/log"
	"firestige.xyz/rcg/pkg/rcg"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input> [output]",
	Short: "Re-encode a game log in another generation",
	Long: `Decode a game log and write it again in the generation given by --to.

Play mode and team records are written only when they change. Parameter
records cannot be represented in v1 and are skipped with a warning.

Examples:
  rcg convert old.rcg new.rcg --to v5
  rcg convert game.rcg --to v3 > game.v3.rcg`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvertCommand(cmd, args)
	},
}

var (
	convertTo      string
	convertDecoder decoderFlags
)

func init() {
	convertCmd.Flags().StringVar(&convertTo, "to", "v5", "target generation (v1..v5)")
	convertDecoder.register(convertCmd)
}

func runConvertCommand(cmd *cobra.Command, args []string) error {
	cfg := globalConfig
	if err := convertDecoder.apply(cmd, cfg); err != nil {
		return err
	}
	target, err := rcg.ParseLogVersion(convertTo)
	if err != nil {
		return err
	}
	popts, err := parserOptions(cfg)
	if err != nil {
		return err
	}

	in, err := openInput(args[0])
	if err != nil {
		return err
	}
	defer in.Close()

	var out io.Writer = cmd.OutOrStdout()
	if len(args) == 2 && args[1] != "-" {
		f, err := os.Create(args[1])
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", args[1], err)
		}
		defer f.Close()
		out = f
	} else if isTerminal(out) {
		return fmt.Errorf("refusing to write a game log to a terminal")
	}

	stats, err := runConvert(in, out, target, popts)
	if err != nil {
		return err
	}
	log.GetLogger().WithFields(map[string]interface{}{
		"to":      target,
		"records": stats.Records(),
	}).Info("convert finished")
	return nil
}

// runConvert decodes in and re-encodes it to out in generation target.
func runConvert(in io.Reader, out io.Writer, target rcg.LogVersion, popts []rcg.Option) (rcg.StatsSnapshot, error) {
	s, err := sink.New(sink.RCGName, sink.Target{Writer: out}, map[string]interface{}{"version": target.String()})
	if err != nil {
		return rcg.StatsSnapshot{}, err
	}
	if target == rcg.V1 {
		s = &paramSkipper{Sink: s, log: log.GetLogger()}
	}

	p := rcg.NewParser(in, popts...)
	runErr := p.Run(s)
	closeErr := s.Close()
	stats := p.Stats().Snapshot()
	if runErr != nil {
		return stats, fmt.Errorf("convert failed: %w", runErr)
	}
	return stats, closeErr
}

// paramSkipper drops parameter records, which v1 cannot carry.
type paramSkipper struct {
	sink.Sink
	log     log.Logger
	skipped int
}

func (s *paramSkipper) skip(tag string) error {
	if s.skipped == 0 {
		s.log.WithField("record", tag).Warn("parameter records are not representable in v1, skipping")
	}
	s.skipped++
	return nil
}

func (s *paramSkipper) HandleServerParam(*rcg.ServerParam) error { return s.skip("server_param") }
func (s *paramSkipper) HandlePlayerParam(*rcg.PlayerParam) error { return s.skip("player_param") }
func (s *paramSkipper) HandlePlayerType(*rcg.PlayerType) error   { return s.skip("player_type") }
