package sink

import (
	"firestige.xyz/rcg/pkg/rcg"
)

const RCGName = "rcg"

func init() {
	mustRegister(Definition{
		Name:        RCGName,
		Description: "re-encoded game log in any generation",
		Binary:      true,
		New:         newRCGSink,
	})
}

type rcgOptions struct {
	Version string `mapstructure:"version"` // target generation, default v5
}

// RCGSink re-encodes records as a game log.
type RCGSink struct {
	*rcg.Writer
}

func newRCGSink(t Target, raw map[string]interface{}) (Sink, error) {
	opts := rcgOptions{Version: "v5"}
	if err := decodeOptions(raw, &opts); err != nil {
		return nil, err
	}
	v, err := rcg.ParseLogVersion(opts.Version)
	if err != nil {
		return nil, err
	}
	w, err := rcg.NewWriter(t.Writer, v)
	if err != nil {
		return nil, err
	}
	return &RCGSink{Writer: w}, nil
}

func (s *RCGSink) Close() error { return s.Flush() }
