package rcg

// cMember names one member of a binary parameter struct for newCLayout.
// Named members take their wire type from the text table; unnamed ones are
// spare slots of the given width.
type cMember struct {
	name  string
	width int
	count int
}

func member(name string) cMember { return cMember{name: name} }
func spare16(n int) cMember      { return cMember{width: 2, count: n} }
func spare32(n int) cMember      { return cMember{width: 4, count: n} }

// cSlot is one member or padding run of a binary parameter struct.
// Unnamed slots are carried through the record's fill buffer.
type cSlot[T any] struct {
	field  paramField[T]
	named  bool
	offset int
	width  int
}

// cLayout is the wire image of one C parameter struct: big-endian members
// at natural alignment, the tail padded to four bytes.
type cLayout[T any] struct {
	tag   string
	slots []cSlot[T]
	size  int
	fill  func(*T) *[]byte
}

func newCLayout[T any](table *paramTable[T], fill func(*T) *[]byte, members ...cMember) *cLayout[T] {
	l := &cLayout[T]{tag: table.tag, fill: fill}
	off := 0
	align := func() {
		if off%4 != 0 {
			n := 4 - off%4
			l.slots = append(l.slots, cSlot[T]{offset: off, width: n})
			off += n
		}
	}
	add := func(s cSlot[T]) {
		if s.width == 4 {
			align()
		}
		s.offset = off
		l.slots = append(l.slots, s)
		off += s.width
	}
	for _, m := range members {
		if m.name == "" {
			for i := 0; i < m.count; i++ {
				add(cSlot[T]{width: m.width})
			}
			continue
		}
		f, ok := table.lookup(m.name)
		if !ok || f.kind == kindString {
			panic("rcg: no binary member " + table.tag + "." + m.name)
		}
		width := 2
		if f.kind == kindDouble || f.kind == kindLong {
			width = 4
		}
		add(cSlot[T]{field: f, named: true, width: width})
	}
	align()
	l.size = off
	return l
}

// offset reports where the named member starts, or -1.
func (l *cLayout[T]) offset(name string) int {
	for _, s := range l.slots {
		if s.named && s.field.name == name {
			return s.offset
		}
	}
	return -1
}

// decode fills dst from one struct image. Padding and spare bytes are kept
// on dst only when some of them are non-zero.
func (l *cLayout[T]) decode(b []byte, dst *T) bool {
	if len(b) < l.size {
		return false
	}
	r := newWireReader(b[:l.size])
	var fill []byte
	dirty := false
	for _, s := range l.slots {
		if s.named {
			s.field.read(r, dst)
			continue
		}
		raw := r.take(s.width)
		fill = append(fill, raw...)
		if !isZero(raw) {
			dirty = true
		}
	}
	if dirty {
		*l.fill(dst) = fill
	} else {
		*l.fill(dst) = nil
	}
	return !r.short
}

func (l *cLayout[T]) encode(w *wireWriter, src *T) {
	fill := *l.fill(src)
	for _, s := range l.slots {
		if s.named {
			s.field.write(w, src)
			continue
		}
		if len(fill) >= s.width {
			w.raw(fill[:s.width])
			fill = fill[s.width:]
			continue
		}
		w.pad(s.width)
	}
}

var playerTypeLayout = newCLayout(playerTypeTable,
	func(p *PlayerType) *[]byte { return &p.wireFill },
	member("id"),
	member("player_speed_max"),
	member("stamina_inc_max"),
	member("player_decay"),
	member("inertia_moment"),
	member("dash_power_rate"),
	member("player_size"),
	member("kickable_margin"),
	member("kick_rand"),
	member("extra_stamina"),
	member("effort_max"),
	member("effort_min"),
	spare32(10),
)

var playerParamLayout = newCLayout(playerParamTable,
	func(p *PlayerParam) *[]byte { return &p.wireFill },
	member("player_types"),
	member("subs_max"),
	member("pt_max"),
	member("player_speed_max_delta_min"),
	member("player_speed_max_delta_max"),
	member("stamina_inc_max_delta_factor"),
	member("player_decay_delta_min"),
	member("player_decay_delta_max"),
	member("inertia_moment_delta_factor"),
	member("dash_power_rate_delta_min"),
	member("dash_power_rate_delta_max"),
	member("player_size_delta_factor"),
	member("kickable_margin_delta_min"),
	member("kickable_margin_delta_max"),
	member("kick_rand_delta_factor"),
	member("extra_stamina_delta_min"),
	member("extra_stamina_delta_max"),
	member("effort_max_delta_factor"),
	member("effort_min_delta_factor"),
	member("random_seed"),
	member("new_dash_power_rate_delta_min"),
	member("new_dash_power_rate_delta_max"),
	member("new_stamina_inc_max_delta_factor"),
	member("allow_mult_default_type"),
	spare16(9),
	spare32(10),
)

var serverParamLayout = newCLayout(serverParamTable,
	func(p *ServerParam) *[]byte { return &p.wireFill },
	member("goal_width"),
	member("inertia_moment"),
	member("player_size"),
	member("player_decay"),
	member("player_rand"),
	member("player_weight"),
	member("player_speed_max"),
	member("player_accel_max"),
	member("stamina_max"),
	member("stamina_inc_max"),
	member("recover_init"),
	member("recover_dec_thr"),
	member("recover_min"),
	member("recover_dec"),
	member("effort_init"),
	member("effort_dec_thr"),
	member("effort_min"),
	member("effort_dec"),
	member("effort_inc_thr"),
	member("effort_inc"),
	member("kick_rand"),
	member("team_actuator_noise"),
	member("player_rand_factor_l"),
	member("player_rand_factor_r"),
	member("kick_rand_factor_l"),
	member("kick_rand_factor_r"),
	member("ball_size"),
	member("ball_decay"),
	member("ball_rand"),
	member("ball_weight"),
	member("ball_speed_max"),
	member("ball_accel_max"),
	member("dash_power_rate"),
	member("kick_power_rate"),
	member("kickable_margin"),
	member("control_radius"),
	member("control_radius_width"),
	member("max_power"),
	member("min_power"),
	member("max_moment"),
	member("min_moment"),
	member("max_neck_moment"),
	member("min_neck_moment"),
	member("max_neck_angle"),
	member("min_neck_angle"),
	member("visible_angle"),
	member("visible_distance"),
	member("wind_dir"),
	member("wind_force"),
	member("wind_angle"),
	member("wind_rand"),
	member("kickable_area"),
	member("catchable_area_l"),
	member("catchable_area_w"),
	member("catch_probability"),
	member("goalie_max_moves"),
	member("corner_kick_margin"),
	member("offside_active_area_size"),
	member("wind_none"),
	member("use_wind_random"),
	member("coach_say_count_max"),
	member("coach_say_msg_size"),
	member("clang_win_size"),
	member("clang_define_win"),
	member("clang_meta_win"),
	member("clang_advice_win"),
	member("clang_info_win"),
	member("clang_mess_delay"),
	member("clang_mess_per_cycle"),
	member("half_time"),
	member("simulator_step"),
	member("send_step"),
	member("recv_step"),
	member("sense_body_step"),
	member("lcm_step"),
	member("say_msg_size"),
	member("hear_max"),
	member("hear_inc"),
	member("hear_decay"),
	member("catch_ban_cycle"),
	member("slow_down_factor"),
	member("use_offside"),
	member("kickoff_offside"),
	member("offside_kick_margin"),
	member("audio_cut_dist"),
	member("quantize_step"),
	member("landmark_quantize_step"),
	member("dir_quantize_step"),
	member("dist_quantize_step_l"),
	member("dist_quantize_step_r"),
	member("landmark_dist_quantize_step_l"),
	member("landmark_dist_quantize_step_r"),
	member("dir_quantize_step_l"),
	member("dir_quantize_step_r"),
	member("coach_mode"),
	member("coach_with_referee_mode"),
	member("old_coach_hear"),
	member("send_vi_step"),
	member("slowness_on_top_for_left_team"),
	member("slowness_on_top_for_right_team"),
	member("keepaway_length"),
	member("keepaway_width"),
	member("ball_stuck_area"),
	member("max_tackle_power"),
	member("max_back_tackle_power"),
	member("player_speed_max_min"),
	member("extra_stamina"),
	member("start_goal_l"),
	member("start_goal_r"),
	member("fullstate_l"),
	member("fullstate_r"),
	member("drop_ball_time"),
	member("synch_mode"),
	member("synch_offset"),
	member("synch_micro_sleep"),
	member("point_to_ban"),
	member("point_to_duration"),
)
