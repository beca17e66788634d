package rcg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var showCorpus = []string{
	`(show 0 ((b) 0 0 0 0))`,
	`(show 12 ((b) 0.0 0.0 0.0 0.0))`,
	`(show 1 (pm 2) ((b) 0 0 0 0) ((l 1) 0 0x1 -49 0 0 0 0 0 (v h 90) (s 8000 1 1) (c 0 0 0 0 0 0 0 0 0 0 0)))`,
	`(show 100 (pm 3) (tm alpha beta 1 0) ((b) 1.5 -2.25 0.1 0) ` +
		`((l 1) 0 0x9 -49 0 0 0 0 0 (v h 90) (s 8000 1 1 130600) (c 0 0 0 0 0 0 0 0 0 0 0)) ` +
		`((r 11) 3 0x41 40.5 10 0.2 -0.1 180 -45 41 11 (v l 60) (s 7000.5 0.9 0.8) (f l 1) (c 1 2 3 4 5 6 7 8 9 10 11)))`,
	`(show 6000 (tm teamA teamB 2 2 3 1 4 0) ((b) -52.5 34 0 0) ((l 7) 1 0x40001 1 2 3 4 5 6))`,
	`(show 33 ((b) 1e-3 -0 0 0) ((r 2) 2 0 10 -10 0 0 -179.5 90 (s 4000 0.6 1 0)))`,
}

func TestShowStrategiesAgree(t *testing.T) {
	for _, line := range showCorpus {
		var fast, safe ShowRecord
		dropped, err := decodeShowFast([]byte(line), &fast)
		require.NoError(t, err, line)
		assert.Empty(t, dropped, line)
		safeDropped, err := decodeShowSafe([]byte(line), &safe)
		require.NoError(t, err, line)
		assert.Empty(t, safeDropped, line)
		assert.Equal(t, safe, fast, line)
	}
}

func TestShowFullPlayer(t *testing.T) {
	var rec ShowRecord
	_, err := decodeShowFast([]byte(showCorpus[3]), &rec)
	require.NoError(t, err)

	assert.Equal(t, 100, rec.Time)
	assert.True(t, rec.HasPlayMode)
	assert.Equal(t, PlayModePlayOn, rec.PlayMode)
	require.True(t, rec.HasTeam)
	assert.Equal(t, TeamRecord{Time: 100, Left: TeamInfo{Name: "alpha", Score: 1}, Right: TeamInfo{Name: "beta"}}, rec.Team)
	assert.Equal(t, BallState{X: 1.5, Y: -2.25, VX: 0.1, HasVelocity: true}, rec.Ball)
	assert.Equal(t, 2, rec.PopulatedPlayers())

	l1 := rec.Players[0]
	assert.Equal(t, Left, l1.Side)
	assert.True(t, l1.State.Has(FlagStand|FlagGoalie))
	assert.Equal(t, 130600.0, l1.Capacity)
	assert.True(t, l1.HasCapacity)
	assert.False(t, l1.HasPointTo)

	r11 := rec.Players[21]
	assert.Equal(t, PlayerState{
		Side: Right, Unum: 11, Type: 3, State: FlagStand | FlagBallToPlayer,
		X: 40.5, Y: 10, VX: 0.2, VY: -0.1, HasVelocity: true,
		Body: 180, Neck: -45,
		HasPointTo: true, PointX: 41, PointY: 11,
		HasView: true, HighQuality: false, ViewWidth: 60,
		HasStamina: true, Stamina: 7000.5, Effort: 0.9, Recovery: 0.8,
		FocusSide: Left, FocusUnum: 1,
		HasCounters: true,
		Counters:    Counters{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	}, r11)
}

func TestShowFastDropsMalformedTrailingPlayers(t *testing.T) {
	line := `(show 5 ((b) 0 0 0 0) ((l 1) 0 0x1 1 2 0 0 0 0) ((l 2) 0 zz 1 2 0 0 0 0) ((l 3) 0 0x1 1 2 0 0 0 0))`

	var fast ShowRecord
	dropped, err := decodeShowFast([]byte(line), &fast)
	require.NoError(t, err)
	assert.Len(t, dropped, 1)
	assert.Equal(t, 1, fast.PopulatedPlayers())
	assert.True(t, fast.Players[0].Populated())

	var safe ShowRecord
	_, err = decodeShowSafe([]byte(line), &safe)
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestShowOutOfRangePlayer(t *testing.T) {
	line := `(show 5 ((b) 0 0 0 0) ((l 12) 0 0x1 1 2 0 0 0 0) ((r 1) 0 0x1 1 2 0 0 0 0))`

	var fast ShowRecord
	dropped, err := decodeShowFast([]byte(line), &fast)
	require.NoError(t, err)
	assert.Equal(t, []playerSlot{{side: Left, unum: 12}}, dropped)
	assert.True(t, fast.Players[MaxPlayer].Populated())
	assert.Equal(t, 1, fast.PopulatedPlayers())

	var safe ShowRecord
	dropped, err = decodeShowSafe([]byte(line), &safe)
	require.NoError(t, err)
	assert.Equal(t, []playerSlot{{side: Left, unum: 12}}, dropped)
	assert.Equal(t, fast, safe)
}

func TestParserOutOfRangePlayerBothStrategies(t *testing.T) {
	input := "ULG5\n" +
		`(show 5 ((b) 0 0 0 0) ((l 12) 0 0x1 1 2 0 0 0 0) ((r 1) 0 0x1 1 2 0 0 0 0))` + "\n"

	for _, st := range []ShowStrategy{ShowFast, ShowSafe} {
		t.Run(st.String(), func(t *testing.T) {
			c, p := parseText(t, input, WithShowStrategy(st))
			require.Len(t, c.Shows, 1)
			assert.Equal(t, 1, c.Shows[0].PopulatedPlayers())
			assert.True(t, c.Shows[0].Players[MaxPlayer].Populated())
			assert.Equal(t, uint64(1), p.Stats().DroppedPlayers.Load())
			assert.Zero(t, p.Stats().DecodeErrors.Load())

			c, p = parseText(t, input, WithShowStrategy(st), WithStrict(true))
			assert.Empty(t, c.Shows)
			assert.Equal(t, uint64(1), p.Stats().DecodeErrors.Load())
		})
	}
}

func TestShowBallSentinel(t *testing.T) {
	line := []byte(`(show 5 ((bx) 0 0 0 0))`)

	var rec ShowRecord
	_, err := decodeShowFast(line, &rec)
	assert.ErrorIs(t, err, errBallSentinel)
	_, err = decodeShowSafe(line, &rec)
	assert.ErrorIs(t, err, errBallSentinel)
}

func TestShowRejectsMissingBall(t *testing.T) {
	var rec ShowRecord
	_, err := decodeShowFast([]byte(`(show 5)`), &rec)
	assert.ErrorIs(t, err, ErrMalformedRecord)
	_, err = decodeShowSafe([]byte(`(show 5)`), &rec)
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestParserShowStrategies(t *testing.T) {
	input := "ULG5\n" +
		`(show 5 ((b) 0 0 0 0) ((l 1) 0 0x1 1 2 0 0 0 0) ((l 2) 0 zz 1 2 0 0 0 0))` + "\n"

	t.Run("fast", func(t *testing.T) {
		c, p := parseText(t, input)
		require.Len(t, c.Shows, 1)
		assert.Equal(t, 1, c.Shows[0].PopulatedPlayers())
		assert.Equal(t, uint64(1), p.Stats().DroppedPlayers.Load())
	})

	t.Run("fast strict", func(t *testing.T) {
		c, p := parseText(t, input, WithStrict(true))
		assert.Empty(t, c.Shows)
		assert.Equal(t, uint64(1), p.Stats().DecodeErrors.Load())
	})

	t.Run("safe", func(t *testing.T) {
		c, p := parseText(t, input, WithShowStrategy(ShowSafe))
		assert.Empty(t, c.Shows)
		assert.Equal(t, uint64(1), p.Stats().DecodeErrors.Load())
	})
}

func TestShowEmbeddedModesDispatchedFirst(t *testing.T) {
	c, _ := parseText(t, "ULG5\n"+strings.Join(showCorpus[3:4], "\n")+"\n")

	require.Len(t, c.PlayModes, 1)
	assert.Equal(t, PlayModeChange{Time: 100, Mode: PlayModePlayOn}, c.PlayModes[0])
	require.Len(t, c.Teams, 1)
	assert.Equal(t, "alpha", c.Teams[0].Left.Name)
	assert.Len(t, c.Shows, 1)
}
