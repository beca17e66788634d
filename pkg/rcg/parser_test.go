package rcg

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"firestige.xyz/rcg/pkg/log"
)

func newTestParser(r io.Reader, opts ...Option) *Parser {
	return NewParser(r, append([]Option{WithLogger(log.Discard())}, opts...)...)
}

func parseText(t *testing.T, text string, opts ...Option) (*Collector, *Parser) {
	t.Helper()
	c := &Collector{}
	p := newTestParser(strings.NewReader(text), opts...)
	require.NoError(t, p.Run(c))
	return c, p
}

// ─── Header ────────────────────────────────────────────────────────────────

func TestParseHeaderDetect(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  LogVersion
	}{
		{"binary v2", "ULG\x02", V2},
		{"binary v3", "ULG\x03", V3},
		{"text v4", "ULG4\n", V4},
		{"text v5", "ULG5\n", V5},
		{"legacy", "\x00\x01\x00\x00", V1},
		{"unknown header version", "ULG\x09", V1},
		{"empty stream", "", V1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Collector{}
			p := newTestParser(strings.NewReader(tt.input))
			require.NoError(t, p.Parse(c))
			assert.Equal(t, tt.want, p.Version())
			assert.Equal(t, []LogVersion{tt.want}, c.Versions)
		})
	}
}

func TestParseHeaderLeavesLegacyBytes(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, V1)
	require.NoError(t, err)
	require.NoError(t, w.HandleShow(&ShowRecord{Time: 7}))
	require.NoError(t, w.Flush())

	c, _ := parseText(t, buf.String())
	require.Len(t, c.Shows, 1)
	assert.Equal(t, 7, c.Shows[0].Time)
}

func TestParseHeaderVersionPriority(t *testing.T) {
	line := "(show 3 ((b) 1 2 0 0))\n"

	t.Run("handler negotiated", func(t *testing.T) {
		c := &Collector{BaseHandler: BaseHandler{Version: V4}}
		p := newTestParser(strings.NewReader(line), WithHandlerVersion(true))
		require.NoError(t, p.Run(c))
		assert.Equal(t, V4, p.Version())
		require.Len(t, c.Shows, 1)
	})

	t.Run("handler ignored by default", func(t *testing.T) {
		c := &Collector{BaseHandler: BaseHandler{Version: V4}}
		p := newTestParser(strings.NewReader("ULG5\n" + line))
		require.NoError(t, p.Run(c))
		assert.Equal(t, V5, p.Version())
		require.Len(t, c.Shows, 1)
	})

	t.Run("option wins over handler", func(t *testing.T) {
		c := &Collector{BaseHandler: BaseHandler{Version: V2}}
		p := newTestParser(strings.NewReader(line), WithVersion(V5))
		require.NoError(t, p.Run(c))
		assert.Equal(t, V5, p.Version())
		require.Len(t, c.Shows, 1)
	})
}

func TestReusedHandlerFollowsEachHeader(t *testing.T) {
	c := &Collector{}
	first := newTestParser(strings.NewReader("ULG5\n(show 1 ((b) 0 0 0 0))\n"))
	require.NoError(t, first.Run(c))
	require.Equal(t, V5, c.LogVersion())

	var buf bytes.Buffer
	w, err := NewWriter(&buf, V3)
	require.NoError(t, err)
	require.NoError(t, w.HandleShow(&ShowRecord{Time: 9}))
	require.NoError(t, w.HandleEOF())

	second := newTestParser(bytes.NewReader(buf.Bytes()))
	require.NoError(t, second.Run(c))
	assert.Equal(t, V3, second.Version())
	assert.Equal(t, []LogVersion{V5, V3}, c.Versions)
	require.Len(t, c.Shows, 2)
	assert.Equal(t, 9, c.Shows[1].Time)
}

func TestFirstParseOnlyReadsHeader(t *testing.T) {
	c := &Collector{}
	p := newTestParser(strings.NewReader("ULG5\n(show 1 ((b) 0 0 0 0))\n"))

	require.NoError(t, p.Parse(c))
	assert.Empty(t, c.Shows)
	require.NoError(t, p.Parse(c))
	assert.Len(t, c.Shows, 1)
}

// ─── Text records ──────────────────────────────────────────────────────────

func TestTextShowMinimal(t *testing.T) {
	c, _ := parseText(t, "ULG5\n(show 12 ((b) 0.0 0.0 0.0 0.0))\n")

	require.Len(t, c.Shows, 1)
	s := c.Shows[0]
	assert.Equal(t, 12, s.Time)
	assert.Equal(t, BallState{HasVelocity: true}, s.Ball)
	assert.Zero(t, s.PopulatedPlayers())
	assert.False(t, s.HasPlayMode)
}

func TestTextTeam(t *testing.T) {
	c, _ := parseText(t, "ULG5\n(team 5 teamA teamB 1 2)\n")

	require.Len(t, c.Teams, 1)
	tm := c.Teams[0]
	assert.Equal(t, 5, tm.Time)
	assert.Equal(t, TeamInfo{Name: "teamA", Score: 1}, tm.Left)
	assert.Equal(t, TeamInfo{Name: "teamB", Score: 2}, tm.Right)
	assert.False(t, tm.HasPenalty())
}

func TestTextTeamVariants(t *testing.T) {
	c, _ := parseText(t, "ULG5\n"+
		"(team 0 null null)\n"+
		"(team 6000 teamA teamB 2 2 3 1 4 0)\n")

	require.Len(t, c.Teams, 2)
	assert.Equal(t, TeamRecord{}, c.Teams[0])
	assert.Equal(t, TeamInfo{Name: "teamA", Score: 2, PenaltyScore: 3, PenaltyMiss: 1}, c.Teams[1].Left)
	assert.Equal(t, TeamInfo{Name: "teamB", Score: 2, PenaltyScore: 4}, c.Teams[1].Right)
}

func TestTextServerParamUnknownName(t *testing.T) {
	c, p := parseText(t, "ULG5\n(server_param (goal_width 14.0) (totally_unknown_param 1))\n")

	require.Len(t, c.ServerParams, 1)
	assert.Equal(t, 14.0, c.ServerParams[0].GoalWidth)
	assert.Equal(t, uint64(1), p.Stats().UnknownNames.Load())
	assert.Zero(t, p.Stats().DecodeErrors.Load())
}

func TestTextParams(t *testing.T) {
	c, _ := parseText(t, "ULG5\n"+
		"(player_param (player_types 18) (subs_max 3) (pt_max 1) (allow_mult_default_type 0))\n"+
		"(player_type (id 4) (player_speed_max 1.05) (kickable_margin 0.7))\n")

	require.Len(t, c.PlayerParams, 1)
	assert.Equal(t, 18, c.PlayerParams[0].PlayerTypes)
	assert.Equal(t, 3, c.PlayerParams[0].SubsMax)
	assert.False(t, c.PlayerParams[0].AllowMultDefaultType)

	require.Len(t, c.PlayerTypes, 1)
	assert.Equal(t, 4, c.PlayerTypes[0].ID)
	assert.Equal(t, 1.05, c.PlayerTypes[0].PlayerSpeedMax)
	assert.Equal(t, 0.7, c.PlayerTypes[0].KickableMargin)
}

func TestTextMsgKeepsEmbeddedQuotes(t *testing.T) {
	c, _ := parseText(t, "ULG5\n"+
		"(show 10 ((b) 0 0 0 0))\n"+
		`(msg 10 1 "(team_graphic_l (0 0 "8 8 1 1" "a c None"))")`+"\n")

	require.Len(t, c.Msgs, 1)
	assert.Equal(t, MsgRecord{Time: 10, Board: 1, Text: `(team_graphic_l (0 0 "8 8 1 1" "a c None"))`}, c.Msgs[0])
}

func TestTextMsgCharset(t *testing.T) {
	c, _ := parseText(t, "ULG5\n(msg 3 1 \"caf\xe9\")\n",
		WithMessageDecoder(charmap.ISO8859_1.NewDecoder()))

	require.Len(t, c.Msgs, 1)
	assert.Equal(t, "café", c.Msgs[0].Text)
}

func TestTextDraw(t *testing.T) {
	c, _ := parseText(t, "ULG4\n"+
		"(draw 7 (clear))\n"+
		"(draw 7 (point 1 2 \"blue\"))\n"+
		"(draw 7 (circle 1.5 -2 3 \"red\"))\n"+
		"(draw 8 (line 0 0 10 -10 \"#00ff00\"))\n")

	assert.Equal(t, []int{7}, c.Clears)
	assert.Equal(t, []PointRecord{{X: 1, Y: 2, Color: "blue"}}, c.Points)
	assert.Equal(t, []CircleRecord{{X: 1.5, Y: -2, R: 3, Color: "red"}}, c.Circles)
	assert.Equal(t, []LineRecord{{X2: 10, Y2: -10, Color: "#00ff00"}}, c.Lines)
}

func TestTextPlayMode(t *testing.T) {
	c, _ := parseText(t, "ULG5\n(playmode 0 before_kick_off)\n(playmode 1 play_on)\n")

	assert.Equal(t, []PlayModeChange{
		{Time: 0, Mode: PlayModeBeforeKickOff},
		{Time: 1, Mode: PlayModePlayOn},
	}, c.PlayModes)
}

func TestTextBlankLinesSkipped(t *testing.T) {
	c, p := parseText(t, "ULG5\n\n   \r\n(show 1 ((b) 0 0 0 0))\r\n\n")

	assert.Len(t, c.Shows, 1)
	assert.Equal(t, uint64(3), p.Stats().SkippedLines.Load())
	assert.Equal(t, 1, c.EOFs)
}

func TestTextLastLineWithoutNewline(t *testing.T) {
	c, _ := parseText(t, "ULG5\n(show 1 ((b) 0 0 0 0))")
	assert.Len(t, c.Shows, 1)
}

func TestTextRecordErrorsDoNotStopDecoding(t *testing.T) {
	c := &Collector{}
	p := newTestParser(strings.NewReader("ULG5\n" +
		"(show 1 ((b) 0 0 0 0))\n" +
		"(bogus 1 2)\n" +
		"(playmode 2 no_such_mode)\n" +
		"(show 2 ((b) 0 0 0 0))\n"))

	require.NoError(t, p.Parse(c))
	require.NoError(t, p.Parse(c))

	err := p.Parse(c)
	require.ErrorIs(t, err, ErrUnknownRecord)
	var recErr *RecordError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, 3, recErr.Line)
	assert.Equal(t, "(bogus 1 2)", recErr.Text)

	assert.ErrorIs(t, p.Parse(c), ErrMalformedRecord)
	require.NoError(t, p.Parse(c))
	assert.Len(t, c.Shows, 2)
	assert.Equal(t, uint64(2), p.Stats().DecodeErrors.Load())
}

// ─── End of stream ─────────────────────────────────────────────────────────

func TestEOFReportedOnce(t *testing.T) {
	c := &Collector{}
	p := newTestParser(strings.NewReader("ULG5\n(show 1 ((b) 0 0 0 0))\n"))

	require.NoError(t, p.Parse(c))
	require.NoError(t, p.Parse(c))
	assert.Equal(t, io.EOF, p.Parse(c))
	assert.True(t, p.Exhausted())
	assert.Equal(t, io.EOF, p.Parse(c))
	assert.Equal(t, io.EOF, p.Parse(c))
	assert.Equal(t, 1, c.EOFs)
}

func TestBinaryTruncatedThenEOF(t *testing.T) {
	input := append([]byte("ULG\x02\x00\x01"), make([]byte, 10)...)
	c := &Collector{}
	p := newTestParser(bytes.NewReader(input))

	require.NoError(t, p.Parse(c))
	err := p.Parse(c)
	require.ErrorIs(t, err, ErrTruncated)
	var recErr *RecordError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, int64(4), recErr.Offset)

	assert.Equal(t, io.EOF, p.Parse(c))
	assert.Equal(t, io.EOF, p.Parse(c))
	assert.Empty(t, c.Shows)
	assert.Equal(t, 1, c.EOFs)
}

func TestBinaryTruncatedModeTag(t *testing.T) {
	c := &Collector{}
	p := newTestParser(bytes.NewReader([]byte("ULG\x03\x00")))

	require.NoError(t, p.Parse(c))
	assert.ErrorIs(t, p.Parse(c), ErrTruncated)
	assert.Equal(t, io.EOF, p.Parse(c))
}

func TestBinaryUnknownMode(t *testing.T) {
	c := &Collector{}
	p := newTestParser(bytes.NewReader([]byte("ULG\x02\x00\x63")))

	require.NoError(t, p.Parse(c))
	assert.ErrorIs(t, p.Parse(c), ErrUnknownMode)
	assert.Equal(t, io.EOF, p.Parse(c))
}

func TestBinaryBlankRecordsSkipped(t *testing.T) {
	c := &Collector{}
	p := newTestParser(bytes.NewReader([]byte("ULG\x02\x00\x04\x00\x00")))
	require.NoError(t, p.Run(c))
	assert.Equal(t, 1, c.EOFs)
	assert.Zero(t, c.Shows)
}

// ─── Handler errors ────────────────────────────────────────────────────────

type failingHandler struct {
	BaseHandler
	err error
}

func (f *failingHandler) HandleShow(*ShowRecord) error { return f.err }

func TestHandlerErrorStopsRun(t *testing.T) {
	boom := errors.New("boom")
	p := newTestParser(strings.NewReader("ULG5\n(show 1 ((b) 0 0 0 0))\n(show 2 ((b) 0 0 0 0))\n"))

	err := p.Run(&failingHandler{err: boom})
	require.ErrorIs(t, err, boom)
	var herr *HandlerError
	assert.ErrorAs(t, err, &herr)
	assert.False(t, p.Exhausted())
}

func TestParseShowStrategy(t *testing.T) {
	s, err := ParseShowStrategy("safe")
	require.NoError(t, err)
	assert.Equal(t, ShowSafe, s)

	s, err = ParseShowStrategy("")
	require.NoError(t, err)
	assert.Equal(t, ShowFast, s)

	_, err = ParseShowStrategy("turbo")
	assert.Error(t, err)
}
