package rcg

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wireFixture assembles big-endian wire images field by field, independent
// of the package encoders.
type wireFixture struct{ b []byte }

func (f *wireFixture) u8(v uint8)   { f.b = append(f.b, v) }
func (f *wireFixture) i16(v int16)  { f.b = binary.BigEndian.AppendUint16(f.b, uint16(v)) }
func (f *wireFixture) i32(v int32)  { f.b = binary.BigEndian.AppendUint32(f.b, uint32(v)) }
func (f *wireFixture) zero(n int)   { f.b = append(f.b, make([]byte, n)...) }
func (f *wireFixture) raw(b []byte) { f.b = append(f.b, b...) }

func (f *wireFixture) str(s string, n int) {
	field := make([]byte, n)
	copy(field, s)
	f.b = append(f.b, field...)
}

// showInfoFixture builds one v1/v2 showinfo_t: left 1 and right 9 on the
// pitch, everything else empty.
func showInfoFixture(time int16, pm PlayMode, ballHead []byte) []byte {
	var f wireFixture
	f.u8(uint8(pm))
	f.zero(1)
	f.str("alpha", teamNameLen)
	f.i16(2)
	f.str("beta", teamNameLen)
	f.i16(1)

	f.raw(ballHead)
	f.i16(168) // 10.5
	f.i16(-84) // -5.25

	for i := 0; i < 2*MaxPlayer; i++ {
		switch i {
		case 0:
			f.i16(1) // stand
			f.i16(int16(Left))
			f.i16(1)
			f.i16(45)
			f.i16(-784) // -49
			f.i16(8)    // 0.5
		case MaxPlayer + 8:
			f.i16(1)
			f.i16(int16(Right))
			f.i16(9)
			f.i16(-90)
			f.i16(164) // 10.25
			f.i16(-56) // -3.5
		default:
			f.zero(posWireSize)
		}
	}
	f.i16(time)
	return f.b
}

var defaultBallHead = []byte{0, 1, 0, 0, 0, 0, 0, 0}

// reencode parses src into a Collector and a Writer of the same generation.
func reencode(t *testing.T, src []byte, v LogVersion) (*Collector, []byte) {
	t.Helper()
	c := &Collector{}
	var out bytes.Buffer
	w, err := NewWriter(&out, v)
	require.NoError(t, err)

	p := newTestParser(bytes.NewReader(src))
	require.NoError(t, p.Run(NewMultiHandler(c, w)))
	require.Equal(t, v, p.Version())
	require.Zero(t, p.Stats().DecodeErrors.Load())
	return c, out.Bytes()
}

func assertFixtureShow(t *testing.T, s ShowRecord, time int) {
	t.Helper()
	assert.Equal(t, time, s.Time)
	assert.Equal(t, 10.5, s.Ball.X)
	assert.Equal(t, -5.25, s.Ball.Y)
	assert.Equal(t, 2, s.PopulatedPlayers())

	l1 := s.Players[0]
	assert.Equal(t, Left, l1.Side)
	assert.Equal(t, 1, l1.Unum)
	assert.Equal(t, -49.0, l1.X)
	assert.Equal(t, 0.5, l1.Y)
	assert.Equal(t, 45.0, l1.Body)
	assert.Equal(t, FlagStand, l1.State)

	r9 := s.Players[MaxPlayer+8]
	assert.Equal(t, Right, r9.Side)
	assert.Equal(t, 9, r9.Unum)
	assert.Equal(t, 10.25, r9.X)
	assert.Equal(t, -3.5, r9.Y)
	assert.Equal(t, -90.0, r9.Body)
}

func TestFixtureV1DispInfo(t *testing.T) {
	var f wireFixture
	for _, time := range []int16{1, 2} {
		f.i16(modeShow)
		show := showInfoFixture(time, PlayModePlayOn, defaultBallHead)
		f.raw(show)
		f.zero(dispInfoBodySize - len(show))
	}
	f.i16(modeMsg)
	f.i16(1)
	f.str(`(say "go")`, msgBodyLen)
	require.Len(t, f.b, 3*dispInfoSize)

	c, out := reencode(t, f.b, V1)

	require.Len(t, c.Shows, 2)
	assertFixtureShow(t, c.Shows[0], 1)
	assertFixtureShow(t, c.Shows[1], 2)
	require.NotEmpty(t, c.Teams)
	assert.Equal(t, TeamInfo{Name: "alpha", Score: 2}, c.Teams[0].Left)
	assert.Equal(t, TeamInfo{Name: "beta", Score: 1}, c.Teams[0].Right)
	assert.Equal(t, PlayModePlayOn, c.PlayModes[0].Mode)
	require.Len(t, c.Msgs, 1)
	assert.Equal(t, MsgRecord{Time: 2, Board: 1, Text: `(say "go")`}, c.Msgs[0])

	assert.Equal(t, f.b, out)
}

func TestFixtureV2ShowOnly(t *testing.T) {
	var f wireFixture
	f.raw([]byte("ULG\x02"))
	f.i16(modeShow)
	f.raw(showInfoFixture(1, PlayModeKickOffLeft, defaultBallHead))
	f.i16(modeMsg)
	f.i16(1)
	f.i16(6)
	f.raw([]byte("hello\x00"))
	f.i16(modeShow)
	f.raw(showInfoFixture(2, PlayModePlayOn, []byte{0, 1, 0, 0, 0, 0, 0, 42}))
	require.Len(t, f.b, 4+2*(2+showInfoSize)+2+4+6)

	c, out := reencode(t, f.b, V2)

	require.Len(t, c.Shows, 2)
	assertFixtureShow(t, c.Shows[0], 1)
	assertFixtureShow(t, c.Shows[1], 2)
	assert.Equal(t, PlayModePlayOn, c.PlayModes[len(c.PlayModes)-1].Mode)
	assert.Equal(t, "alpha", c.Teams[0].Left.Name)
	require.Len(t, c.Msgs, 1)
	assert.Equal(t, "hello", c.Msgs[0].Text)

	// embedded play mode and team stay inside the showinfo
	assert.Equal(t, f.b, out)
	assert.Len(t, out, len(f.b))
}

func TestFixtureV2KeepsBallPrefix(t *testing.T) {
	head := []byte{0, 0, 0, 3, 0, 0, 0, 7}
	var rec ShowRecord
	decodeShowInfo(showInfoFixture(4, PlayModePlayOn, head), &rec)
	assert.Equal(t, head, rec.Ball.wireHead)

	w := newWireWriter(showInfoSize)
	encodeShowInfo(w, &rec)
	assert.Equal(t, showInfoFixture(4, PlayModePlayOn, head), w.bytes())

	decodeShowInfo(showInfoFixture(4, PlayModePlayOn, defaultBallHead), &rec)
	assert.Nil(t, rec.Ball.wireHead)
}

// serverParamFixture is a server_params_t image with a handful of members
// set at their C offsets.
func serverParamFixture() []byte {
	b := make([]byte, 392)
	binary.BigEndian.PutUint32(b[0:], 918815)   // goal_width 14.02
	binary.BigEndian.PutUint16(b[84:], 1)       // team_actuator_noise
	binary.BigEndian.PutUint32(b[88:], 65536)   // player_rand_factor_l
	binary.BigEndian.PutUint16(b[220:], 2)      // goalie_max_moves
	binary.BigEndian.PutUint32(b[224:], 65536)  // corner_kick_margin
	binary.BigEndian.PutUint16(b[254:], 300)    // half_time
	binary.BigEndian.PutUint16(b[280:], 1)      // kickoff_offside
	binary.BigEndian.PutUint32(b[284:], 599654) // offside_kick_margin 9.15
	binary.BigEndian.PutUint16(b[390:], 5)      // point_to_duration
	return b
}

func playerParamFixture() []byte {
	b := make([]byte, 148)
	binary.BigEndian.PutUint16(b[0:], 18)          // player_types
	binary.BigEndian.PutUint16(b[2:], 3)           // subs_max
	binary.BigEndian.PutUint16(b[4:], 1)           // pt_max
	binary.BigEndian.PutUint32(b[8:], 0)           // player_speed_max_delta_min
	binary.BigEndian.PutUint32(b[24:], 6554)       // player_decay_delta_max 0.1
	binary.BigEndian.PutUint32(b[72:], 0xffffffff) // random_seed -1
	binary.BigEndian.PutUint16(b[88:], 1)          // allow_mult_default_type
	return b
}

func playerTypeFixture() []byte {
	b := make([]byte, 88)
	binary.BigEndian.PutUint16(b[0:], 3)           // id
	binary.BigEndian.PutUint32(b[4:], 68813)       // player_speed_max 1.05
	binary.BigEndian.PutUint32(b[12:], 26214)      // player_decay 0.4
	binary.BigEndian.PutUint32(b[44:], 39322)      // effort_min 0.6
	binary.BigEndian.PutUint32(b[48:], 0x12345678) // first spare
	return b
}

func showInfoV3Fixture() []byte {
	var f wireFixture
	f.i32(2 * 65536) // ball x
	f.i32(-65536)    // ball y
	f.i32(32768)     // ball vx
	f.i32(0)
	for i := 0; i < 2*MaxPlayer; i++ {
		if i != 0 {
			f.zero(playerV3Size)
			continue
		}
		f.i16(1) // stand
		f.i16(2) // type
		f.i32(-49 * 65536)
		f.i32(65536)
		f.i32(16384)
		f.i32(0)
		f.i32(0)
		f.i32(0)
		f.i32(102944) // view width, radians
		f.i16(1)
		f.zero(2)
		f.i32(8000 * 65536)
		f.i32(65536)
		f.i32(65536)
		for _, n := range []int16{3, 120, 4, 0, 0, 0, 1, 2} {
			f.i16(n)
		}
	}
	f.i16(42)
	f.zero(2)
	return f.b
}

func TestFixtureV3WithParamBlocks(t *testing.T) {
	var f wireFixture
	f.raw([]byte("ULG\x03"))
	f.i16(modeServerParam)
	f.raw(serverParamFixture())
	f.i16(modePlayerParam)
	f.raw(playerParamFixture())
	f.i16(modePlayerType)
	f.raw(playerTypeFixture())
	f.i16(modePlayMode)
	f.u8(uint8(PlayModeKickOffLeft))
	f.i16(modeTeam)
	f.str("alpha", teamNameLen)
	f.i16(0)
	f.str("beta", teamNameLen)
	f.i16(0)
	f.i16(modeShow)
	f.raw(showInfoV3Fixture())
	f.i16(modeMsg)
	f.i16(1)
	f.i16(6)
	f.raw([]byte("hello\x00"))

	c, out := reencode(t, f.b, V3)

	require.Len(t, c.ServerParams, 1)
	sp := c.ServerParams[0]
	assert.InDelta(t, 14.02, sp.GoalWidth, 1e-4)
	assert.True(t, sp.TeamActuatorNoise)
	assert.Equal(t, 1.0, sp.PlayerRandFactorL)
	assert.Equal(t, 2, sp.GoalieMaxMoves)
	assert.Equal(t, 1.0, sp.CornerKickMargin)
	assert.Equal(t, 300, sp.HalfTime)
	assert.True(t, sp.KickoffOffside)
	assert.InDelta(t, 9.15, sp.OffsideKickMargin, 1e-4)
	assert.Equal(t, 5, sp.PointToDuration)

	require.Len(t, c.PlayerParams, 1)
	pp := c.PlayerParams[0]
	assert.Equal(t, 18, pp.PlayerTypes)
	assert.Equal(t, 3, pp.SubsMax)
	assert.Equal(t, 1, pp.PtMax)
	assert.InDelta(t, 0.1, pp.PlayerDecayDeltaMax, 1e-4)
	assert.Equal(t, -1, pp.RandomSeed)
	assert.True(t, pp.AllowMultDefaultType)

	require.Len(t, c.PlayerTypes, 1)
	pt := c.PlayerTypes[0]
	assert.Equal(t, 3, pt.ID)
	assert.InDelta(t, 1.05, pt.PlayerSpeedMax, 1e-4)
	assert.InDelta(t, 0.4, pt.PlayerDecay, 1e-4)
	assert.InDelta(t, 0.6, pt.EffortMin, 1e-4)
	assert.Zero(t, pt.KickPowerRate)

	require.Len(t, c.Shows, 1)
	s := c.Shows[0]
	assert.Equal(t, 42, s.Time)
	assert.Equal(t, BallState{X: 2, Y: -1, VX: 0.5, HasVelocity: true}, s.Ball)
	l1 := s.Players[0]
	assert.Equal(t, 1, s.PopulatedPlayers())
	assert.Equal(t, 2, l1.Type)
	assert.Equal(t, -49.0, l1.X)
	assert.Equal(t, 0.25, l1.VX)
	assert.InDelta(t, 90, l1.ViewWidth, 1e-2)
	assert.True(t, l1.HighQuality)
	assert.Equal(t, 8000.0, l1.Stamina)
	assert.Equal(t, Counters{Kick: 3, Dash: 120, Turn: 4, Move: 1, ChangeView: 2}, l1.Counters)

	assert.Equal(t, []PlayModeChange{{Time: 0, Mode: PlayModeKickOffLeft}}, c.PlayModes)
	require.Len(t, c.Teams, 1)
	assert.Equal(t, "beta", c.Teams[0].Right.Name)
	require.Len(t, c.Msgs, 1)
	assert.Equal(t, 42, c.Msgs[0].Time)

	assert.Equal(t, f.b, out)
}
