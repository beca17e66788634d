package cmd

import (
	"github.com/spf13/cobra"

	"firestige.xyz/rcg/internal/config"
)

// decoderFlags are per-command overrides of the decoder config section.
type decoderFlags struct {
	strategy string
	strict   bool
	version  string
	charset  string
}

func (f *decoderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.strategy, "show-strategy", "", "show line decoder: fast or safe")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "fail show records with malformed or out of range players")
	cmd.Flags().StringVar(&f.version, "log-version", "", "skip header probing and decode as this generation (v1..v5)")
	cmd.Flags().StringVar(&f.charset, "charset", "", "charset of team messages, e.g. iso-8859-1 or shift_jis")
}

// apply copies the flags that were set onto cfg and validates the result.
func (f *decoderFlags) apply(cmd *cobra.Command, cfg *config.GlobalConfig) error {
	flags := cmd.Flags()
	if flags.Changed("show-strategy") {
		cfg.Decoder.ShowStrategy = f.strategy
	}
	if flags.Changed("strict") {
		cfg.Decoder.Strict = f.strict
	}
	if flags.Changed("log-version") {
		cfg.Decoder.Version = f.version
	}
	if flags.Changed("charset") {
		cfg.Decoder.MessageCharset = f.charset
	}
	return cfg.ValidateAndApplyDefaults()
}
