package sink

import (
	"bufio"
	"encoding/json"
)

const JSONLName = "jsonl"

func init() {
	mustRegister(Definition{
		Name:        JSONLName,
		Description: "one JSON object per line",
		New:         newJSONLSink,
	})
}

type jsonlOptions struct {
	Kinds []string `mapstructure:"kinds"`
}

// JSONLSink writes newline-delimited JSON.
type JSONLSink struct {
	recordHandler
	w   *bufio.Writer
	enc *json.Encoder
}

func newJSONLSink(t Target, raw map[string]interface{}) (Sink, error) {
	var opts jsonlOptions
	if err := decodeOptions(raw, &opts); err != nil {
		return nil, err
	}
	s := &JSONLSink{w: bufio.NewWriter(t.Writer)}
	s.enc = json.NewEncoder(s.w)
	s.enc.SetEscapeHTML(false)
	h, err := newRecordHandler(opts.Kinds, func(r *Record) error { return s.enc.Encode(r) })
	if err != nil {
		return nil, err
	}
	s.recordHandler = h
	return s, nil
}

func (s *JSONLSink) HandleEOF() error { return s.w.Flush() }

func (s *JSONLSink) Close() error { return s.w.Flush() }
