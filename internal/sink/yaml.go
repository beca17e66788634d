package sink

import (
	"gopkg.in/yaml.v3"
)

const YAMLName = "yaml"

func init() {
	mustRegister(Definition{
		Name:        YAMLName,
		Description: "one YAML document per record",
		New:         newYAMLSink,
	})
}

type yamlOptions struct {
	Kinds  []string `mapstructure:"kinds"`
	Indent int      `mapstructure:"indent"`
}

// YAMLSink writes a YAML document stream.
type YAMLSink struct {
	recordHandler
	enc    *yaml.Encoder
	closed bool
}

func newYAMLSink(t Target, raw map[string]interface{}) (Sink, error) {
	opts := yamlOptions{Indent: 2}
	if err := decodeOptions(raw, &opts); err != nil {
		return nil, err
	}
	s := &YAMLSink{enc: yaml.NewEncoder(t.Writer)}
	s.enc.SetIndent(opts.Indent)
	h, err := newRecordHandler(opts.Kinds, func(r *Record) error { return s.enc.Encode(r) })
	if err != nil {
		return nil, err
	}
	s.recordHandler = h
	return s, nil
}

func (s *YAMLSink) HandleEOF() error { return s.Close() }

// Close terminates the document stream. It is safe to call more than once.
func (s *YAMLSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.enc.Close()
}
