package rcg

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleShow(time int) *ShowRecord {
	rec := &ShowRecord{Time: time, Ball: BallState{X: 1.5, Y: -2.25, VX: 0.5, VY: -0.25, HasVelocity: true}}
	rec.Players[0] = PlayerState{
		Side: Left, Unum: 1, Type: 0, State: FlagStand | FlagGoalie,
		X: -49, Y: 0.5, VX: 0.25, VY: 0, HasVelocity: true,
		Body: 90, Neck: -45,
		HasView: true, HighQuality: true, ViewWidth: 90,
		HasStamina: true, Stamina: 8000, Effort: 1, Recovery: 1,
		HasCounters: true, Counters: Counters{Kick: 3, Dash: 120, Turn: 4},
	}
	rec.Players[MaxPlayer+8] = PlayerState{
		Side: Right, Unum: 9, Type: 4, State: FlagStand | FlagKick,
		X: 10.25, Y: -3.5, VX: -0.5, VY: 0.125, HasVelocity: true,
		Body: -180, Neck: 30,
		HasView: true, ViewWidth: 60,
		HasStamina: true, Stamina: 6500.5, Effort: 0.875, Recovery: 0.75,
		HasCounters: true, Counters: Counters{Kick: 1, Say: 2, Move: 1},
	}
	return rec
}

func sampleTeam(time int) *TeamRecord {
	return &TeamRecord{Time: time, Left: TeamInfo{Name: "alpha", Score: 2}, Right: TeamInfo{Name: "beta", Score: 1}}
}

// writeSample feeds one of every record kind the generation carries.
func writeSample(t *testing.T, v LogVersion) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := NewWriter(&buf, v)
	require.NoError(t, err)

	require.NoError(t, w.HandleLogVersion(v))
	if v != V1 {
		sp := DefaultServerParam()
		require.NoError(t, w.HandleServerParam(&sp))
		require.NoError(t, w.HandlePlayerParam(&PlayerParam{PlayerTypes: 18, SubsMax: 3, PtMax: 1}))
		require.NoError(t, w.HandlePlayerType(&PlayerType{ID: 1, PlayerSpeedMax: 1.05, KickableMargin: 0.75}))
	}
	require.NoError(t, w.HandlePlayMode(0, PlayModeKickOffLeft))
	require.NoError(t, w.HandleTeam(sampleTeam(0)))
	require.NoError(t, w.HandleShow(sampleShow(1)))
	require.NoError(t, w.HandleMsg(&MsgRecord{Time: 1, Board: 1, Text: `(say "hi")`}))
	require.NoError(t, w.HandleDrawClear(1))
	require.NoError(t, w.HandleDrawCircle(1, &CircleRecord{X: 1, Y: 2, R: 0.5, Color: "red"}))
	require.NoError(t, w.HandleDrawLine(1, &LineRecord{X1: -1, Y1: 1, X2: 2.5, Y2: -2.5, Color: "blue"}))
	require.NoError(t, w.HandlePlayMode(2, PlayModePlayOn))
	require.NoError(t, w.HandleShow(sampleShow(2)))
	require.NoError(t, w.HandleEOF())
	return buf.Bytes()
}

func TestWriterReencodeIsByteExact(t *testing.T) {
	for _, v := range []LogVersion{V1, V2, V3, V4, V5} {
		t.Run(v.String(), func(t *testing.T) {
			src := writeSample(t, v)

			var out bytes.Buffer
			w, err := NewWriter(&out, v)
			require.NoError(t, err)
			p := newTestParser(bytes.NewReader(src))
			require.NoError(t, p.Run(w))

			assert.Equal(t, v, p.Version())
			assert.Equal(t, src, out.Bytes())
			assert.Zero(t, p.Stats().DecodeErrors.Load())
		})
	}
}

func TestWriterRoundTripContent(t *testing.T) {
	for _, v := range []LogVersion{V1, V2, V3, V4, V5} {
		t.Run(v.String(), func(t *testing.T) {
			c, _ := parseText(t, string(writeSample(t, v)))

			require.Len(t, c.Shows, 2)
			s := c.Shows[0]
			assert.Equal(t, 1, s.Time)
			assert.Equal(t, 2, s.PopulatedPlayers())
			assert.Equal(t, 1.5, s.Ball.X)
			assert.Equal(t, -2.25, s.Ball.Y)

			r9 := s.Players[MaxPlayer+8]
			assert.Equal(t, Right, r9.Side)
			assert.Equal(t, 9, r9.Unum)
			assert.Equal(t, 10.25, r9.X)
			assert.Equal(t, -3.5, r9.Y)
			assert.InDelta(t, -180, r9.Body, 1e-3)

			require.NotEmpty(t, c.Msgs)
			assert.Equal(t, `(say "hi")`, c.Msgs[0].Text)
			assert.Equal(t, 1, c.Msgs[0].Time)

			assert.Equal(t, []int{1}, c.Clears)
			assert.Equal(t, []CircleRecord{{X: 1, Y: 2, R: 0.5, Color: "red"}}, c.Circles)
			assert.Equal(t, []LineRecord{{X1: -1, Y1: 1, X2: 2.5, Y2: -2.5, Color: "blue"}}, c.Lines)

			require.NotEmpty(t, c.Teams)
			assert.Equal(t, sampleTeam(0).Left, c.Teams[0].Left)
			assert.Equal(t, PlayModePlayOn, c.PlayModes[len(c.PlayModes)-1].Mode)

			if v == V1 {
				assert.Empty(t, c.ServerParams)
				return
			}
			require.Len(t, c.ServerParams, 1)
			assert.InDelta(t, 14.02, c.ServerParams[0].GoalWidth, 1e-4)
			require.Len(t, c.PlayerTypes, 1)
			assert.Equal(t, 1, c.PlayerTypes[0].ID)
			assert.Equal(t, 0.75, c.PlayerTypes[0].KickableMargin)
			require.Len(t, c.PlayerParams, 1)
			assert.Equal(t, 18, c.PlayerParams[0].PlayerTypes)
		})
	}
}

func TestWriterV3Kinematics(t *testing.T) {
	c, _ := parseText(t, string(writeSample(t, V3)))
	require.Len(t, c.Shows, 2)

	l1 := c.Shows[0].Players[0]
	assert.Equal(t, 0.25, l1.VX)
	assert.InDelta(t, 90, l1.Body, 1e-3)
	assert.InDelta(t, -45, l1.Neck, 1e-3)
	assert.InDelta(t, 90, l1.ViewWidth, 1e-3)
	assert.True(t, l1.HighQuality)
	assert.Equal(t, 8000.0, l1.Stamina)
	assert.Equal(t, 3, l1.Counters.Kick)
	assert.Equal(t, 120, l1.Counters.Dash)
	assert.Equal(t, FlagStand|FlagGoalie, l1.State)
}

func TestWriterTextLines(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, V5)
	require.NoError(t, err)

	require.NoError(t, w.HandlePlayMode(0, PlayModeBeforeKickOff))
	require.NoError(t, w.HandlePlayMode(0, PlayModeBeforeKickOff))
	require.NoError(t, w.HandleTeam(&TeamRecord{}))
	require.NoError(t, w.HandleDrawPoint(3, &PointRecord{X: 1, Y: -1, Color: "red"}))
	require.NoError(t, w.HandleEOF())

	assert.Equal(t, "ULG5\n"+
		"(playmode 0 before_kick_off)\n"+
		"(team 0 null null)\n"+
		"(draw 3 (point 1 -1 \"red\"))\n", buf.String())
}

func TestWriterShowLine(t *testing.T) {
	rec := &ShowRecord{Time: 4, Ball: BallState{X: 0.5, HasVelocity: true}}
	rec.Players[1] = PlayerState{
		Side: Left, Unum: 2, State: FlagStand, X: -10, Y: 5,
		HasPointTo: true, PointX: 3, PointY: 4,
		HasStamina: true, Stamina: 8000, Effort: 1, Recovery: 1, HasCapacity: true, Capacity: 100,
		FocusSide: Right, FocusUnum: 7,
	}

	assert.Equal(t, `(show 4 ((b) 0.5 0 0 0) ((l 2) 0 0x1 -10 5 0 0 0 0 3 4 (s 8000 1 1 100) (f r 7)))`,
		formatShow(rec, V5))
	assert.Equal(t, `(show 4 ((b) 0.5 0 0 0) ((l 2) 0 0x1 -10 5 0 0 0 0 3 4 (s 8000 1 1) (f r 7)))`,
		formatShow(rec, V4))
}

func TestWriterUnsupported(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, V1)
	require.NoError(t, err)
	assert.ErrorIs(t, w.HandleServerParam(&ServerParam{}), ErrUnsupported)

	_, err = NewWriter(&buf, VersionUnknown)
	assert.Error(t, err)
}
