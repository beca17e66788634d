package sink

import (
	"bufio"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const TextName = "text"

func init() {
	mustRegister(Definition{
		Name:        TextName,
		Description: "one human-readable line per record",
		New:         newTextSink,
	})
}

type textOptions struct {
	Kinds   []string `mapstructure:"kinds"`
	Players bool     `mapstructure:"players"` // one extra line per player
	Params  bool     `mapstructure:"params"`  // print every parameter value
}

// TextSink prints records for a terminal.
type TextSink struct {
	recordHandler
	w    *bufio.Writer
	opts textOptions
}

func newTextSink(t Target, raw map[string]interface{}) (Sink, error) {
	var opts textOptions
	if err := decodeOptions(raw, &opts); err != nil {
		return nil, err
	}
	s := &TextSink{w: bufio.NewWriter(t.Writer), opts: opts}
	h, err := newRecordHandler(opts.Kinds, s.write)
	if err != nil {
		return nil, err
	}
	s.recordHandler = h
	return s, nil
}

func (s *TextSink) write(r *Record) error {
	_, err := s.w.WriteString(formatText(r, s.opts))
	return err
}

func (s *TextSink) HandleEOF() error { return s.w.Flush() }

func (s *TextSink) Close() error { return s.w.Flush() }

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func formatText(r *Record, opts textOptions) string {
	var sb strings.Builder
	switch d := r.Data.(type) {
	case ShowView:
		fmt.Fprintf(&sb, "show %d ball=(%s,%s) vel=(%s,%s) players=%d\n", r.Time,
			num(d.Ball.X), num(d.Ball.Y), num(d.Ball.VX), num(d.Ball.VY), len(d.Players))
		if opts.Players {
			for _, p := range d.Players {
				fmt.Fprintf(&sb, "  %s%-2d type=%d pos=(%s,%s) body=%s neck=%s state=%s",
					p.Side, p.Unum, p.Type, num(p.X), num(p.Y), num(p.Body), num(p.Neck), p.State)
				if p.Stamina != nil {
					fmt.Fprintf(&sb, " stamina=%s", num(*p.Stamina))
				}
				if p.Focus != "" {
					fmt.Fprintf(&sb, " focus=%s", p.Focus)
				}
				sb.WriteByte('\n')
			}
		}
	case MsgView:
		fmt.Fprintf(&sb, "msg %d board=%d %q\n", r.Time, d.Board, d.Text)
	case TeamView:
		fmt.Fprintf(&sb, "team %d %s %d - %d %s", r.Time, orNull(d.Left.Name), d.Left.Score, d.Right.Score, orNull(d.Right.Name))
		if d.Left.PenaltyScore+d.Left.PenaltyMiss+d.Right.PenaltyScore+d.Right.PenaltyMiss > 0 {
			fmt.Fprintf(&sb, " (pen %d/%d - %d/%d)",
				d.Left.PenaltyScore, d.Left.PenaltyMiss, d.Right.PenaltyScore, d.Right.PenaltyMiss)
		}
		sb.WriteByte('\n')
	case DrawView:
		fmt.Fprintf(&sb, "draw %d %s", r.Time, d.Shape)
		if d.Color != "" {
			fmt.Fprintf(&sb, " %s", d.Color)
		}
		for _, a := range d.Args {
			fmt.Fprintf(&sb, " %s", num(a))
		}
		sb.WriteByte('\n')
	case map[string]string:
		fmt.Fprintf(&sb, "%s %d values\n", r.Kind, len(d))
		if opts.Params {
			keys := make([]string, 0, len(d))
			for k := range d {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(&sb, "  %s=%s\n", k, d[k])
			}
		}
	default:
		if r.Kind == KindPlayMode {
			fmt.Fprintf(&sb, "%s %d %v\n", r.Kind, r.Time, r.Data)
		} else {
			fmt.Fprintf(&sb, "%s %v\n", r.Kind, r.Data)
		}
	}
	return sb.String()
}

func orNull(name string) string {
	if name == "" {
		return "null"
	}
	return name
}
