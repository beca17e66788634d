package rcg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamLayoutSizes(t *testing.T) {
	assert.Equal(t, 88, playerTypeLayout.size)
	assert.Equal(t, 148, playerParamLayout.size)
	assert.Equal(t, 392, serverParamLayout.size)
	assert.Equal(t, len(playerTypeTable.fields), len(playerTypeTable.names()))
}

func TestParamLayoutAlignment(t *testing.T) {
	// int16 id, two pad bytes, then the int32 members
	assert.Equal(t, 0, playerTypeLayout.offset("id"))
	assert.Equal(t, 4, playerTypeLayout.offset("player_speed_max"))
	assert.Equal(t, 44, playerTypeLayout.offset("effort_min"))

	assert.Equal(t, 4, playerParamLayout.offset("pt_max"))
	assert.Equal(t, 8, playerParamLayout.offset("player_speed_max_delta_min"))
	assert.Equal(t, 88, playerParamLayout.offset("allow_mult_default_type"))

	assert.Equal(t, 84, serverParamLayout.offset("team_actuator_noise"))
	assert.Equal(t, 88, serverParamLayout.offset("player_rand_factor_l"))
	assert.Equal(t, 284, serverParamLayout.offset("offside_kick_margin"))
}

func TestParamLayoutOmitsTextOnlyMembers(t *testing.T) {
	for _, name := range []string{"kick_power_rate", "foul_detect_probability", "catchable_area_l_stretch", "flag_max_observation_length"} {
		assert.Equal(t, -1, playerTypeLayout.offset(name), name)
	}
	for _, name := range []string{"kick_power_rate_delta_min", "catchable_area_l_stretch_max"} {
		assert.Equal(t, -1, playerParamLayout.offset(name), name)
	}
	for _, name := range []string{"foul_cycles", "illegal_defense_number", "stamina_capacity", "pen_nr_kicks", "random_seed", "module_dir"} {
		assert.Equal(t, -1, serverParamLayout.offset(name), name)
	}
}

func TestParamFieldSet(t *testing.T) {
	var pp PlayerParam
	f, ok := playerParamTable.lookup("subs_max")
	require.True(t, ok)
	require.NoError(t, f.set(&pp, "3.0"))
	assert.Equal(t, 3, pp.SubsMax)

	f, ok = playerParamTable.lookup("allow_mult_default_type")
	require.True(t, ok)
	require.NoError(t, f.set(&pp, "true"))
	assert.True(t, pp.AllowMultDefaultType)
	assert.Error(t, f.set(&pp, "maybe"))

	_, ok = playerParamTable.lookup("no_such_param")
	assert.False(t, ok)
}

func TestParamBinaryRoundTrip(t *testing.T) {
	in := PlayerType{ID: 7, PlayerSpeedMax: 1.25, PlayerDecay: 0.5, KickableMargin: 0.75}
	w := newWireWriter(playerTypeLayout.size)
	playerTypeLayout.encode(w, &in)
	require.Len(t, w.bytes(), playerTypeLayout.size)
	assert.Equal(t, []byte{0x00, 0x07, 0x00, 0x00, 0x00, 0x01, 0x40, 0x00}, w.bytes()[:8])

	var out PlayerType
	require.True(t, playerTypeLayout.decode(w.bytes(), &out))
	assert.Equal(t, in, out)

	assert.False(t, playerTypeLayout.decode(w.bytes()[:10], &out))
}

func TestParamBinaryDecodesCLayout(t *testing.T) {
	var pt PlayerType
	require.True(t, playerTypeLayout.decode(playerTypeFixture(), &pt))
	assert.Equal(t, 3, pt.ID)
	assert.InDelta(t, 1.05, pt.PlayerSpeedMax, 1e-4)
	assert.InDelta(t, 0.4, pt.PlayerDecay, 1e-4)
	assert.NotEmpty(t, pt.wireFill)

	w := newWireWriter(playerTypeLayout.size)
	playerTypeLayout.encode(w, &pt)
	assert.Equal(t, playerTypeFixture(), w.bytes())
}

func TestParamTextOnlyMembersDropInBinary(t *testing.T) {
	in := PlayerType{ID: 1, PlayerSpeedMax: 1, KickPowerRate: 0.027, FoulDetectProbability: 0.5}
	w := newWireWriter(playerTypeLayout.size)
	playerTypeLayout.encode(w, &in)

	var out PlayerType
	require.True(t, playerTypeLayout.decode(w.bytes(), &out))
	assert.Equal(t, 1.0, out.PlayerSpeedMax)
	assert.Zero(t, out.KickPowerRate)
	assert.Zero(t, out.FoulDetectProbability)
}

func TestParamValues(t *testing.T) {
	v := (&PlayerType{ID: 2, PlayerSpeedMax: 1.05}).Values()
	assert.Equal(t, "2", v["id"])
	assert.Equal(t, "1.05", v["player_speed_max"])
	assert.Equal(t, "0", v["kick_rand"])

	sp := DefaultServerParam()
	assert.Equal(t, "14.02", sp.Values()["goal_width"])
}

func TestDecodeParamLineMalformedValue(t *testing.T) {
	var pt PlayerType
	err := decodeParamLine([]byte("(player_type (id x))"), playerTypeTable, &pt, nil)
	assert.ErrorIs(t, err, ErrMalformedRecord)

	var names []string
	err = decodeParamLine([]byte(`(player_type (id 3) (future_knob "a b") (player_decay 0.4))`), playerTypeTable, &pt,
		func(_, name, _ string) { names = append(names, name) })
	require.NoError(t, err)
	assert.Equal(t, []string{"future_knob"}, names)
	assert.Equal(t, 3, pt.ID)
	assert.Equal(t, 0.4, pt.PlayerDecay)
}
