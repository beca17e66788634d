package rcg

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Writer re-encodes records into one target generation. It implements
// Handler, so it can sit directly behind a Parser of any generation.
//
// Binary output matches the Parser's layouts byte for byte. In v1 and v2
// play mode and team only travel inside the showinfo, so the Writer keeps
// them as state for the next show. Text output and v3 write them only when
// they change, the way the simulator records them.
type Writer struct {
	w       *bufio.Writer
	version LogVersion

	headerDone bool
	playMode   PlayMode
	pmWritten  bool
	team       TeamRecord
	teamDone   bool
}

// NewWriter creates a Writer emitting generation v to w.
func NewWriter(w io.Writer, v LogVersion) (*Writer, error) {
	if !v.IsBinary() && !v.IsText() {
		return nil, fmt.Errorf("rcg: cannot write log version %s", v)
	}
	return &Writer{w: bufio.NewWriterSize(w, 64*1024), version: v}, nil
}

// LogVersion returns VersionUnknown: a Writer never constrains the input
// generation.
func (w *Writer) LogVersion() LogVersion { return VersionUnknown }

// Version is the output generation.
func (w *Writer) Version() LogVersion { return w.version }

// Flush writes buffered output.
func (w *Writer) Flush() error { return w.w.Flush() }

func (w *Writer) header() error {
	if w.headerDone {
		return nil
	}
	w.headerDone = true
	var err error
	switch w.version {
	case V2, V3:
		_, err = w.w.Write([]byte{'U', 'L', 'G', byte(w.version)})
	case V4, V5:
		_, err = fmt.Fprintf(w.w, "ULG%d\n", int(w.version))
	}
	return err
}

// record writes a mode tag followed by payload for the tagged generations.
func (w *Writer) record(mode int16, payload []byte) error {
	if err := w.header(); err != nil {
		return err
	}
	ww := newWireWriter(2 + len(payload))
	ww.int16(mode)
	ww.raw(payload)
	_, err := w.w.Write(ww.bytes())
	return err
}

// dispInfo writes one fixed v1 record.
func (w *Writer) dispInfo(mode int16, body func(*wireWriter)) error {
	ww := newWireWriter(dispInfoSize)
	ww.int16(mode)
	body(ww)
	ww.padTo(dispInfoSize)
	_, err := w.w.Write(ww.bytes())
	return err
}

func (w *Writer) line(format string, args ...interface{}) error {
	if err := w.header(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w.w, format, args...)
	return err
}

// ─── Handler ───────────────────────────────────────────────────────────────

func (w *Writer) HandleLogVersion(LogVersion) error { return w.header() }

func (w *Writer) HandleShow(rec *ShowRecord) error {
	switch w.version {
	case V1, V2:
		embedded := *rec
		embedded.PlayMode = w.playMode
		embedded.Team = w.team
		if w.version == V1 {
			return w.dispInfo(modeShow, func(ww *wireWriter) { encodeShowInfo(ww, &embedded) })
		}
		ww := newWireWriter(showInfoSize)
		encodeShowInfo(ww, &embedded)
		return w.record(modeShow, ww.bytes())
	case V3:
		ww := newWireWriter(showInfoV3Size)
		encodeShowInfoV3(ww, rec)
		return w.record(modeShow, ww.bytes())
	}
	return w.line("%s\n", formatShow(rec, w.version))
}

func (w *Writer) HandleMsg(m *MsgRecord) error {
	switch w.version {
	case V1:
		return w.dispInfo(modeMsg, func(ww *wireWriter) { encodeMsgInfoV1(ww, m) })
	case V2, V3:
		ww := newWireWriter(4 + len(m.Text) + 1)
		ww.int16(int16(m.Board))
		ww.int16(int16(len(m.Text) + 1))
		ww.raw([]byte(m.Text))
		ww.pad(1)
		return w.record(modeMsg, ww.bytes())
	}
	return w.line("(msg %d %d \"%s\")\n", m.Time, m.Board, m.Text)
}

func (w *Writer) HandlePlayMode(time int, pm PlayMode) error {
	if w.pmWritten && w.playMode == pm {
		return nil
	}
	w.playMode, w.pmWritten = pm, true
	switch w.version {
	case V1, V2:
		return nil
	case V3:
		return w.record(modePlayMode, []byte{byte(pm)})
	}
	return w.line("(playmode %d %s)\n", time, pm)
}

func (w *Writer) HandleTeam(t *TeamRecord) error {
	if w.teamDone && sameTeams(&w.team, t) {
		return nil
	}
	w.team, w.teamDone = *t, true
	switch w.version {
	case V1, V2:
		return nil
	case V3:
		ww := newWireWriter(2 * teamWireSize)
		encodeTeamPair(ww, t)
		return w.record(modeTeam, ww.bytes())
	}
	return w.line("(team %d %s)\n", t.Time, formatTeamBody(t))
}

func sameTeams(a, b *TeamRecord) bool {
	return a.Left == b.Left && a.Right == b.Right
}

func (w *Writer) HandleDrawClear(time int) error {
	return w.draw(time, &drawObject{mode: drawClear})
}

func (w *Writer) HandleDrawPoint(time int, p *PointRecord) error {
	return w.draw(time, &drawObject{mode: drawPoint, point: *p})
}

func (w *Writer) HandleDrawCircle(time int, c *CircleRecord) error {
	return w.draw(time, &drawObject{mode: drawCircle, circle: *c})
}

func (w *Writer) HandleDrawLine(time int, l *LineRecord) error {
	return w.draw(time, &drawObject{mode: drawLine, line: *l})
}

func (w *Writer) draw(time int, d *drawObject) error {
	switch w.version {
	case V1:
		return w.dispInfo(modeDraw, func(ww *wireWriter) { encodeDrawInfo(ww, d) })
	case V2, V3:
		ww := newWireWriter(drawInfoSize)
		encodeDrawInfo(ww, d)
		return w.record(modeDraw, ww.bytes())
	}
	return w.line("(draw %d %s)\n", time, formatDraw(d))
}

func (w *Writer) HandleServerParam(p *ServerParam) error {
	return writeParams(w, modeServerParam, serverParamTable, serverParamLayout, p)
}

func (w *Writer) HandlePlayerParam(p *PlayerParam) error {
	return writeParams(w, modePlayerParam, playerParamTable, playerParamLayout, p)
}

func (w *Writer) HandlePlayerType(p *PlayerType) error {
	return writeParams(w, modePlayerType, playerTypeTable, playerTypeLayout, p)
}

func writeParams[T any](w *Writer, mode int16, table *paramTable[T], layout *cLayout[T], src *T) error {
	switch w.version {
	case V1:
		return fmt.Errorf("%w: %s in %s", ErrUnsupported, table.tag, w.version)
	case V2, V3:
		ww := newWireWriter(layout.size)
		layout.encode(ww, src)
		return w.record(mode, ww.bytes())
	}
	return w.line("%s\n", formatParams(table, src))
}

// HandleEOF flushes the output.
func (w *Writer) HandleEOF() error {
	if err := w.header(); err != nil {
		return err
	}
	return w.w.Flush()
}

// ─── Text formatting ───────────────────────────────────────────────────────

func formatTeamBody(t *TeamRecord) string {
	var sb strings.Builder
	sb.WriteString(printTeamName(t.Left.Name))
	sb.WriteByte(' ')
	sb.WriteString(printTeamName(t.Right.Name))
	if t.Left.Name == "" && t.Right.Name == "" && t.Left.Score == 0 && t.Right.Score == 0 && !t.HasPenalty() {
		return sb.String()
	}
	fmt.Fprintf(&sb, " %d %d", t.Left.Score, t.Right.Score)
	if t.HasPenalty() {
		fmt.Fprintf(&sb, " %d %d %d %d",
			t.Left.PenaltyScore, t.Left.PenaltyMiss, t.Right.PenaltyScore, t.Right.PenaltyMiss)
	}
	return sb.String()
}

func formatDraw(d *drawObject) string {
	switch d.mode {
	case drawPoint:
		return fmt.Sprintf("(point %s %s %s)",
			formatFloat(d.point.X), formatFloat(d.point.Y), strconv.Quote(d.point.Color))
	case drawCircle:
		return fmt.Sprintf("(circle %s %s %s %s)",
			formatFloat(d.circle.X), formatFloat(d.circle.Y), formatFloat(d.circle.R), strconv.Quote(d.circle.Color))
	case drawLine:
		return fmt.Sprintf("(line %s %s %s %s %s)",
			formatFloat(d.line.X1), formatFloat(d.line.Y1),
			formatFloat(d.line.X2), formatFloat(d.line.Y2), strconv.Quote(d.line.Color))
	}
	return "(clear)"
}

func formatParams[T any](table *paramTable[T], src *T) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(table.tag)
	for _, f := range table.fields {
		sb.WriteString(" (")
		sb.WriteString(f.name)
		sb.WriteByte(' ')
		sb.WriteString(f.format(src))
		sb.WriteByte(')')
	}
	sb.WriteByte(')')
	return sb.String()
}

// formatShow renders a show line. Play mode and team travel on their own
// lines, so the embedded groups are not repeated here.
func formatShow(rec *ShowRecord, v LogVersion) string {
	var sb strings.Builder
	sb.Grow(2048)
	fmt.Fprintf(&sb, "(show %d ((b) %s %s %s %s)", rec.Time,
		formatFloat(rec.Ball.X), formatFloat(rec.Ball.Y),
		formatFloat(rec.Ball.VX), formatFloat(rec.Ball.VY))

	for i := range rec.Players {
		p := &rec.Players[i]
		if !p.Populated() {
			continue
		}
		fmt.Fprintf(&sb, " ((%s %d) %d 0x%x %s %s %s %s %s %s",
			p.Side, p.Unum, p.Type, uint32(p.State),
			formatFloat(p.X), formatFloat(p.Y), formatFloat(p.VX), formatFloat(p.VY),
			formatFloat(p.Body), formatFloat(p.Neck))
		if p.HasPointTo {
			fmt.Fprintf(&sb, " %s %s", formatFloat(p.PointX), formatFloat(p.PointY))
		}
		if p.HasView {
			q := 'l'
			if p.HighQuality {
				q = 'h'
			}
			fmt.Fprintf(&sb, " (v %c %s)", q, formatFloat(p.ViewWidth))
		}
		if p.HasStamina {
			fmt.Fprintf(&sb, " (s %s %s %s", formatFloat(p.Stamina), formatFloat(p.Effort), formatFloat(p.Recovery))
			if v >= V5 && p.HasCapacity {
				sb.WriteByte(' ')
				sb.WriteString(formatFloat(p.Capacity))
			}
			sb.WriteByte(')')
		}
		if p.FocusSide != Neutral {
			fmt.Fprintf(&sb, " (f %s %d)", p.FocusSide, p.FocusUnum)
		}
		if p.HasCounters {
			c := &p.Counters
			fmt.Fprintf(&sb, " (c %d %d %d %d %d %d %d %d %d %d %d)",
				c.Kick, c.Dash, c.Turn, c.Catch, c.Move, c.TurnNeck,
				c.ChangeView, c.Say, c.Tackle, c.PointTo, c.AttentionTo)
		}
		sb.WriteByte(')')
	}
	sb.WriteByte(')')
	return sb.String()
}
