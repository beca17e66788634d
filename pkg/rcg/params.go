package rcg

import (
	"fmt"
	"strconv"
	"strings"
)

// paramKind selects the logical type of a parameter slot and its binary
// wire width.
type paramKind int

const (
	kindDouble paramKind = iota // int32, Scale65536
	kindInt                     // int16
	kindLong                    // int32
	kindBool                    // int16, zero = false
	kindString                  // text generations only
)

// paramField is one (name, typed slot) entry of a parameter table.
// Exactly one accessor matching kind is set.
type paramField[T any] struct {
	name string
	kind paramKind
	f64  func(*T) *float64
	num  func(*T) *int
	flag func(*T) *bool
	text func(*T) *string
}

func dbl[T any](name string, f func(*T) *float64) paramField[T] {
	return paramField[T]{name: name, kind: kindDouble, f64: f}
}

func i16[T any](name string, f func(*T) *int) paramField[T] {
	return paramField[T]{name: name, kind: kindInt, num: f}
}

func i32[T any](name string, f func(*T) *int) paramField[T] {
	return paramField[T]{name: name, kind: kindLong, num: f}
}

func bln[T any](name string, f func(*T) *bool) paramField[T] {
	return paramField[T]{name: name, kind: kindBool, flag: f}
}

func str[T any](name string, f func(*T) *string) paramField[T] {
	return paramField[T]{name: name, kind: kindString, text: f}
}

// set parses a textual value into the slot.
func (f paramField[T]) set(dst *T, raw string) error {
	switch f.kind {
	case kindDouble:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		*f.f64(dst) = v
	case kindInt, kindLong:
		v, err := strconv.Atoi(raw)
		if err != nil {
			// some servers print integral parameters as doubles
			fv, ferr := strconv.ParseFloat(raw, 64)
			if ferr != nil {
				return err
			}
			v = int(fv)
		}
		*f.num(dst) = v
	case kindBool:
		switch strings.ToLower(raw) {
		case "1", "true", "on":
			*f.flag(dst) = true
		case "0", "false", "off":
			*f.flag(dst) = false
		default:
			return fmt.Errorf("invalid boolean %q", raw)
		}
	case kindString:
		*f.text(dst) = unquote(raw)
	}
	return nil
}

// format renders the slot the way the text generations print it.
func (f paramField[T]) format(src *T) string {
	switch f.kind {
	case kindDouble:
		return formatFloat(*f.f64(src))
	case kindInt, kindLong:
		return strconv.Itoa(*f.num(src))
	case kindBool:
		if *f.flag(src) {
			return "1"
		}
		return "0"
	default:
		return strconv.Quote(*f.text(src))
	}
}

func (f paramField[T]) read(r *wireReader, dst *T) {
	switch f.kind {
	case kindDouble:
		*f.f64(dst) = r.fixed32()
	case kindInt:
		*f.num(dst) = int(r.int16())
	case kindLong:
		*f.num(dst) = int(r.int32())
	case kindBool:
		*f.flag(dst) = r.bool16()
	}
}

func (f paramField[T]) write(w *wireWriter, src *T) {
	switch f.kind {
	case kindDouble:
		w.fixed32(*f.f64(src))
	case kindInt:
		w.int16(int16(*f.num(src)))
	case kindLong:
		w.int32(int32(*f.num(src)))
	case kindBool:
		w.bool16(*f.flag(src))
	}
}

// paramTable is the name → slot schema of one parameter record kind as the
// text generations print it. The binary image is described by a cLayout.
type paramTable[T any] struct {
	tag    string
	fields []paramField[T]
	byName map[string]int
}

func newParamTable[T any](tag string, fields ...paramField[T]) *paramTable[T] {
	t := &paramTable[T]{tag: tag, fields: fields, byName: make(map[string]int, len(fields))}
	for i, f := range fields {
		if _, dup := t.byName[f.name]; dup {
			panic("rcg: duplicate parameter " + tag + "." + f.name)
		}
		t.byName[f.name] = i
	}
	return t
}

// lookup returns the field registered under name.
func (t *paramTable[T]) lookup(name string) (paramField[T], bool) {
	i, ok := t.byName[name]
	if !ok {
		return paramField[T]{}, false
	}
	return t.fields[i], true
}

// Names lists the field names in table order.
func (t *paramTable[T]) names() []string {
	out := make([]string, len(t.fields))
	for i, f := range t.fields {
		out[i] = f.name
	}
	return out
}

// values renders every field as a name → value map, in text form.
func (t *paramTable[T]) values(src *T) map[string]string {
	m := make(map[string]string, len(t.fields))
	for _, f := range t.fields {
		m[f.name] = f.format(src)
	}
	return m
}

// ─── Player type ───────────────────────────────────────────────────────────

// PlayerType is one heterogeneous player type definition.
type PlayerType struct {
	ID                         int
	PlayerSpeedMax             float64
	StaminaIncMax              float64
	PlayerDecay                float64
	InertiaMoment              float64
	DashPowerRate              float64
	PlayerSize                 float64
	KickableMargin             float64
	KickRand                   float64
	ExtraStamina               float64
	EffortMax                  float64
	EffortMin                  float64
	KickPowerRate              float64
	FoulDetectProbability      float64
	CatchableAreaLStretch      float64
	UnumFarLength              float64
	UnumTooFarLength           float64
	TeamFarLength              float64
	TeamTooFarLength           float64
	PlayerMaxObservationLength float64
	BallVelFarLength           float64
	BallVelTooFarLength        float64
	BallMaxObservationLength   float64
	FlagChgFarLength           float64
	FlagChgTooFarLength        float64
	FlagMaxObservationLength   float64

	wireFill []byte
}

var playerTypeTable = newParamTable[PlayerType]("player_type",
	i16("id", func(p *PlayerType) *int { return &p.ID }),
	dbl("player_speed_max", func(p *PlayerType) *float64 { return &p.PlayerSpeedMax }),
	dbl("stamina_inc_max", func(p *PlayerType) *float64 { return &p.StaminaIncMax }),
	dbl("player_decay", func(p *PlayerType) *float64 { return &p.PlayerDecay }),
	dbl("inertia_moment", func(p *PlayerType) *float64 { return &p.InertiaMoment }),
	dbl("dash_power_rate", func(p *PlayerType) *float64 { return &p.DashPowerRate }),
	dbl("player_size", func(p *PlayerType) *float64 { return &p.PlayerSize }),
	dbl("kickable_margin", func(p *PlayerType) *float64 { return &p.KickableMargin }),
	dbl("kick_rand", func(p *PlayerType) *float64 { return &p.KickRand }),
	dbl("extra_stamina", func(p *PlayerType) *float64 { return &p.ExtraStamina }),
	dbl("effort_max", func(p *PlayerType) *float64 { return &p.EffortMax }),
	dbl("effort_min", func(p *PlayerType) *float64 { return &p.EffortMin }),
	dbl("kick_power_rate", func(p *PlayerType) *float64 { return &p.KickPowerRate }),
	dbl("foul_detect_probability", func(p *PlayerType) *float64 { return &p.FoulDetectProbability }),
	dbl("catchable_area_l_stretch", func(p *PlayerType) *float64 { return &p.CatchableAreaLStretch }),
	dbl("unum_far_length", func(p *PlayerType) *float64 { return &p.UnumFarLength }),
	dbl("unum_too_far_length", func(p *PlayerType) *float64 { return &p.UnumTooFarLength }),
	dbl("team_far_length", func(p *PlayerType) *float64 { return &p.TeamFarLength }),
	dbl("team_too_far_length", func(p *PlayerType) *float64 { return &p.TeamTooFarLength }),
	dbl("player_max_observation_length", func(p *PlayerType) *float64 { return &p.PlayerMaxObservationLength }),
	dbl("ball_vel_far_length", func(p *PlayerType) *float64 { return &p.BallVelFarLength }),
	dbl("ball_vel_too_far_length", func(p *PlayerType) *float64 { return &p.BallVelTooFarLength }),
	dbl("ball_max_observation_length", func(p *PlayerType) *float64 { return &p.BallMaxObservationLength }),
	dbl("flag_chg_far_length", func(p *PlayerType) *float64 { return &p.FlagChgFarLength }),
	dbl("flag_chg_too_far_length", func(p *PlayerType) *float64 { return &p.FlagChgTooFarLength }),
	dbl("flag_max_observation_length", func(p *PlayerType) *float64 { return &p.FlagMaxObservationLength }),
)

// Values renders the player type as name → text value.
func (p *PlayerType) Values() map[string]string { return playerTypeTable.values(p) }

// ─── Player parameters ─────────────────────────────────────────────────────

// PlayerParam holds the heterogeneous player generation parameters.
type PlayerParam struct {
	PlayerTypes                      int
	SubsMax                          int
	PtMax                            int
	AllowMultDefaultType             bool
	PlayerSpeedMaxDeltaMin           float64
	PlayerSpeedMaxDeltaMax           float64
	StaminaIncMaxDeltaFactor         float64
	PlayerDecayDeltaMin              float64
	PlayerDecayDeltaMax              float64
	InertiaMomentDeltaFactor         float64
	DashPowerRateDeltaMin            float64
	DashPowerRateDeltaMax            float64
	PlayerSizeDeltaFactor            float64
	KickableMarginDeltaMin           float64
	KickableMarginDeltaMax           float64
	KickRandDeltaFactor              float64
	ExtraStaminaDeltaMin             float64
	ExtraStaminaDeltaMax             float64
	EffortMaxDeltaFactor             float64
	EffortMinDeltaFactor             float64
	RandomSeed                       int
	NewDashPowerRateDeltaMin         float64
	NewDashPowerRateDeltaMax         float64
	NewStaminaIncMaxDeltaFactor      float64
	KickPowerRateDeltaMin            float64
	KickPowerRateDeltaMax            float64
	FoulDetectProbabilityDeltaFactor float64
	CatchableAreaLStretchMin         float64
	CatchableAreaLStretchMax         float64

	wireFill []byte
}

var playerParamTable = newParamTable[PlayerParam]("player_param",
	i16("player_types", func(p *PlayerParam) *int { return &p.PlayerTypes }),
	i16("subs_max", func(p *PlayerParam) *int { return &p.SubsMax }),
	i16("pt_max", func(p *PlayerParam) *int { return &p.PtMax }),
	bln("allow_mult_default_type", func(p *PlayerParam) *bool { return &p.AllowMultDefaultType }),
	dbl("player_speed_max_delta_min", func(p *PlayerParam) *float64 { return &p.PlayerSpeedMaxDeltaMin }),
	dbl("player_speed_max_delta_max", func(p *PlayerParam) *float64 { return &p.PlayerSpeedMaxDeltaMax }),
	dbl("stamina_inc_max_delta_factor", func(p *PlayerParam) *float64 { return &p.StaminaIncMaxDeltaFactor }),
	dbl("player_decay_delta_min", func(p *PlayerParam) *float64 { return &p.PlayerDecayDeltaMin }),
	dbl("player_decay_delta_max", func(p *PlayerParam) *float64 { return &p.PlayerDecayDeltaMax }),
	dbl("inertia_moment_delta_factor", func(p *PlayerParam) *float64 { return &p.InertiaMomentDeltaFactor }),
	dbl("dash_power_rate_delta_min", func(p *PlayerParam) *float64 { return &p.DashPowerRateDeltaMin }),
	dbl("dash_power_rate_delta_max", func(p *PlayerParam) *float64 { return &p.DashPowerRateDeltaMax }),
	dbl("player_size_delta_factor", func(p *PlayerParam) *float64 { return &p.PlayerSizeDeltaFactor }),
	dbl("kickable_margin_delta_min", func(p *PlayerParam) *float64 { return &p.KickableMarginDeltaMin }),
	dbl("kickable_margin_delta_max", func(p *PlayerParam) *float64 { return &p.KickableMarginDeltaMax }),
	dbl("kick_rand_delta_factor", func(p *PlayerParam) *float64 { return &p.KickRandDeltaFactor }),
	dbl("extra_stamina_delta_min", func(p *PlayerParam) *float64 { return &p.ExtraStaminaDeltaMin }),
	dbl("extra_stamina_delta_max", func(p *PlayerParam) *float64 { return &p.ExtraStaminaDeltaMax }),
	dbl("effort_max_delta_factor", func(p *PlayerParam) *float64 { return &p.EffortMaxDeltaFactor }),
	dbl("effort_min_delta_factor", func(p *PlayerParam) *float64 { return &p.EffortMinDeltaFactor }),
	i32("random_seed", func(p *PlayerParam) *int { return &p.RandomSeed }),
	dbl("new_dash_power_rate_delta_min", func(p *PlayerParam) *float64 { return &p.NewDashPowerRateDeltaMin }),
	dbl("new_dash_power_rate_delta_max", func(p *PlayerParam) *float64 { return &p.NewDashPowerRateDeltaMax }),
	dbl("new_stamina_inc_max_delta_factor", func(p *PlayerParam) *float64 { return &p.NewStaminaIncMaxDeltaFactor }),
	dbl("kick_power_rate_delta_min", func(p *PlayerParam) *float64 { return &p.KickPowerRateDeltaMin }),
	dbl("kick_power_rate_delta_max", func(p *PlayerParam) *float64 { return &p.KickPowerRateDeltaMax }),
	dbl("foul_detect_probability_delta_factor", func(p *PlayerParam) *float64 { return &p.FoulDetectProbabilityDeltaFactor }),
	dbl("catchable_area_l_stretch_min", func(p *PlayerParam) *float64 { return &p.CatchableAreaLStretchMin }),
	dbl("catchable_area_l_stretch_max", func(p *PlayerParam) *float64 { return &p.CatchableAreaLStretchMax }),
)

// Values renders the parameters as name → text value.
func (p *PlayerParam) Values() map[string]string { return playerParamTable.values(p) }
