package rcg

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// nullTeam is how the text generations print an unnamed team.
const nullTeam = "null"

// lineTag returns the record tag of a text line: the word after the
// opening parenthesis.
func lineTag(line []byte) string {
	i := 0
	for i < len(line) && isSpace(line[i]) {
		i++
	}
	if i >= len(line) || line[i] != '(' {
		return ""
	}
	i++
	j := i
	for j < len(line) && !isSpace(line[j]) && line[j] != '(' && line[j] != ')' {
		j++
	}
	return string(line[i:j])
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// unquote strips one level of double quotes. Unquoted input is returned as is.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		if u, err := strconv.Unquote(s); err == nil {
			return u
		}
		return s[1 : len(s)-1]
	}
	return s
}

func teamName(s string) string {
	if s == nullTeam {
		return ""
	}
	return s
}

func printTeamName(s string) string {
	if s == "" {
		return nullTeam
	}
	return s
}

// ─── Token scanner ─────────────────────────────────────────────────────────

// sexpScanner walks one text line token by token.
type sexpScanner struct {
	b   []byte
	pos int
}

func newScanner(b []byte) *sexpScanner { return &sexpScanner{b: b} }

func (s *sexpScanner) skipSpace() {
	for s.pos < len(s.b) && isSpace(s.b[s.pos]) {
		s.pos++
	}
}

func (s *sexpScanner) peek() byte {
	s.skipSpace()
	if s.pos >= len(s.b) {
		return 0
	}
	return s.b[s.pos]
}

func (s *sexpScanner) expect(c byte) error {
	if s.peek() != c {
		return fmt.Errorf("%w: expected %q at column %d", ErrMalformedRecord, c, s.pos+1)
	}
	s.pos++
	return nil
}

// open consumes "(" followed by the given word.
func (s *sexpScanner) open(word string) error {
	if err := s.expect('('); err != nil {
		return err
	}
	if got := s.word(); got != word {
		return fmt.Errorf("%w: expected %q, got %q", ErrMalformedRecord, word, got)
	}
	return nil
}

// word reads an atom: a quoted string keeps its quotes, anything else runs
// to the next space or parenthesis.
func (s *sexpScanner) word() string {
	s.skipSpace()
	start := s.pos
	if s.pos < len(s.b) && s.b[s.pos] == '"' {
		s.pos++
		for s.pos < len(s.b) {
			c := s.b[s.pos]
			s.pos++
			if c == '\\' && s.pos < len(s.b) {
				s.pos++
				continue
			}
			if c == '"' {
				break
			}
		}
		return string(s.b[start:s.pos])
	}
	for s.pos < len(s.b) && !isSpace(s.b[s.pos]) && s.b[s.pos] != '(' && s.b[s.pos] != ')' {
		s.pos++
	}
	return string(s.b[start:s.pos])
}

func (s *sexpScanner) int() (int, error) {
	w := s.word()
	v, err := strconv.Atoi(w)
	if err != nil {
		return 0, fmt.Errorf("%w: bad integer %q", ErrMalformedRecord, w)
	}
	return v, nil
}

func (s *sexpScanner) float() (float64, error) {
	w := s.word()
	v, err := strconv.ParseFloat(w, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad number %q", ErrMalformedRecord, w)
	}
	return v, nil
}

func (s *sexpScanner) floats(dst ...*float64) error {
	for _, d := range dst {
		v, err := s.float()
		if err != nil {
			return err
		}
		*d = v
	}
	return nil
}

// group returns the raw bytes of the balanced group starting at the cursor,
// parentheses included. Quoted sections may hold unbalanced parentheses.
func (s *sexpScanner) group() ([]byte, error) {
	if s.peek() != '(' {
		return nil, fmt.Errorf("%w: expected group at column %d", ErrMalformedRecord, s.pos+1)
	}
	start := s.pos
	depth := 0
	quoted := false
	for s.pos < len(s.b) {
		c := s.b[s.pos]
		s.pos++
		switch {
		case quoted && c == '\\':
			s.pos++
		case c == '"':
			quoted = !quoted
		case quoted:
		case c == '(':
			depth++
		case c == ')':
			depth--
			if depth == 0 {
				return s.b[start:s.pos], nil
			}
		}
	}
	return nil, fmt.Errorf("%w: unbalanced group", ErrMalformedRecord)
}

// ─── Play mode, team ───────────────────────────────────────────────────────

func decodePlayModeLine(line []byte) (int, PlayMode, error) {
	s := newScanner(line)
	if err := s.open("playmode"); err != nil {
		return 0, 0, err
	}
	time, err := s.int()
	if err != nil {
		return 0, 0, err
	}
	name := s.word()
	pm, ok := PlayModeByName(name)
	if !ok {
		return 0, 0, fmt.Errorf("%w: unknown play mode %q", ErrMalformedRecord, name)
	}
	if err := s.expect(')'); err != nil {
		return 0, 0, err
	}
	return time, pm, nil
}

// decodeTeamLine reads "(team <t> <l> <r> [<sl> <sr> [<psl> <pml> <psr> <pmr>]])".
func decodeTeamLine(line []byte) (TeamRecord, error) {
	var t TeamRecord
	s := newScanner(line)
	if err := s.open("team"); err != nil {
		return t, err
	}
	var err error
	if t.Time, err = s.int(); err != nil {
		return t, err
	}
	if err := decodeTeamBody(s, &t); err != nil {
		return t, err
	}
	return t, s.expect(')')
}

// decodeTeamBody reads names and the optional score tail shared by "(team)"
// lines and "(tm)" show groups.
func decodeTeamBody(s *sexpScanner, t *TeamRecord) error {
	t.Left.Name = teamName(s.word())
	t.Right.Name = teamName(s.word())

	counts := []*int{
		&t.Left.Score, &t.Right.Score,
		&t.Left.PenaltyScore, &t.Left.PenaltyMiss,
		&t.Right.PenaltyScore, &t.Right.PenaltyMiss,
	}
	for i, c := range counts {
		if s.peek() == ')' {
			if i == 0 || i == 2 {
				return nil
			}
			return fmt.Errorf("%w: incomplete team scores", ErrMalformedRecord)
		}
		v, err := s.int()
		if err != nil {
			return err
		}
		*c = v
	}
	return nil
}

// ─── Message, draw ─────────────────────────────────────────────────────────

// decodeMsgLine reads "(msg <t> <board> "<text>")". The body runs to the last
// quote of the line so embedded quotes survive.
func decodeMsgLine(line []byte) (MsgRecord, error) {
	var m MsgRecord
	s := newScanner(line)
	if err := s.open("msg"); err != nil {
		return m, err
	}
	var err error
	if m.Time, err = s.int(); err != nil {
		return m, err
	}
	if m.Board, err = s.int(); err != nil {
		return m, err
	}

	rest := line[s.pos:]
	first := bytes.IndexByte(rest, '"')
	last := bytes.LastIndexByte(rest, '"')
	if first < 0 || last <= first {
		return m, fmt.Errorf("%w: unterminated message", ErrMalformedRecord)
	}
	if !bytes.HasSuffix(bytes.TrimRight(rest[last+1:], " \t"), []byte(")")) {
		return m, fmt.Errorf("%w: unterminated message", ErrMalformedRecord)
	}
	m.Text = string(rest[first+1 : last])
	return m, nil
}

func decodeDrawLine(line []byte) (int, drawObject, error) {
	var d drawObject
	s := newScanner(line)
	if err := s.open("draw"); err != nil {
		return 0, d, err
	}
	time, err := s.int()
	if err != nil {
		return 0, d, err
	}
	if err := s.expect('('); err != nil {
		return 0, d, err
	}

	switch kind := s.word(); kind {
	case "clear":
		d.mode = drawClear
	case "point":
		d.mode = drawPoint
		err = s.floats(&d.point.X, &d.point.Y)
		d.point.Color = unquote(s.word())
	case "circle":
		d.mode = drawCircle
		err = s.floats(&d.circle.X, &d.circle.Y, &d.circle.R)
		d.circle.Color = unquote(s.word())
	case "line":
		d.mode = drawLine
		err = s.floats(&d.line.X1, &d.line.Y1, &d.line.X2, &d.line.Y2)
		d.line.Color = unquote(s.word())
	default:
		return 0, d, fmt.Errorf("%w: unknown draw kind %q", ErrMalformedRecord, kind)
	}
	if err != nil {
		return 0, d, err
	}
	if err := s.expect(')'); err != nil {
		return 0, d, err
	}
	return time, d, s.expect(')')
}

// ─── Parameter records ─────────────────────────────────────────────────────

// decodeParamLine reads "(<tag> (<name> <value>)*)" into dst. Names missing
// from the table are reported through unknown and skipped.
func decodeParamLine[T any](line []byte, table *paramTable[T], dst *T, unknown func(tag, name, value string)) error {
	s := newScanner(line)
	if err := s.open(table.tag); err != nil {
		return err
	}
	for s.peek() == '(' {
		g, err := s.group()
		if err != nil {
			return err
		}
		name, value := splitParam(g)
		if name == "" {
			return fmt.Errorf("%w: empty parameter group", ErrMalformedRecord)
		}
		f, ok := table.lookup(name)
		if !ok {
			if unknown != nil {
				unknown(table.tag, name, value)
			}
			continue
		}
		if err := f.set(dst, value); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrMalformedRecord, name, err)
		}
	}
	return s.expect(')')
}

// splitParam splits "(name value)" into its parts.
func splitParam(g []byte) (string, string) {
	inner := strings.TrimSpace(string(g[1 : len(g)-1]))
	i := strings.IndexFunc(inner, func(r rune) bool { return r == ' ' || r == '\t' })
	if i < 0 {
		return inner, ""
	}
	return inner[:i], strings.TrimSpace(inner[i+1:])
}
