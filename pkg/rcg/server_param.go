package rcg

// ServerParam holds the simulator server parameters. Only the members of
// serverParamLayout travel in the binary generations; the rest are filled
// from text logs.
type ServerParam struct {
	GoalWidth                 float64
	InertiaMoment             float64
	PlayerSize                float64
	PlayerDecay               float64
	PlayerRand                float64
	PlayerWeight              float64
	PlayerSpeedMax            float64
	PlayerAccelMax            float64
	StaminaMax                float64
	StaminaIncMax             float64
	RecoverInit               float64
	RecoverDecThr             float64
	RecoverMin                float64
	RecoverDec                float64
	EffortInit                float64
	EffortDecThr              float64
	EffortMin                 float64
	EffortDec                 float64
	EffortIncThr              float64
	EffortInc                 float64
	KickRand                  float64
	TeamActuatorNoise         bool
	PlayerRandFactorL         float64
	PlayerRandFactorR         float64
	KickRandFactorL           float64
	KickRandFactorR           float64
	BallSize                  float64
	BallDecay                 float64
	BallRand                  float64
	BallWeight                float64
	BallSpeedMax              float64
	BallAccelMax              float64
	DashPowerRate             float64
	KickPowerRate             float64
	KickableMargin            float64
	ControlRadius             float64
	ControlRadiusWidth        float64
	MaxPower                  float64
	MinPower                  float64
	MaxMoment                 float64
	MinMoment                 float64
	MaxNeckMoment             float64
	MinNeckMoment             float64
	MaxNeckAngle              float64
	MinNeckAngle              float64
	VisibleAngle              float64
	VisibleDistance           float64
	WindDir                   float64
	WindForce                 float64
	WindAngle                 float64
	WindRand                  float64
	CatchableAreaL            float64
	CatchableAreaW            float64
	CatchProbability          float64
	GoalieMaxMoves            int
	CornerKickMargin          float64
	OffsideActiveAreaSize     float64
	WindNone                  bool
	UseWindRandom             bool
	CoachSayCountMax          int
	CoachSayMsgSize           int
	ClangWinSize              int
	ClangDefineWin            int
	ClangMetaWin              int
	ClangAdviceWin            int
	ClangInfoWin              int
	ClangMessDelay            int
	ClangMessPerCycle         int
	HalfTime                  int
	SimulatorStep             int
	SendStep                  int
	RecvStep                  int
	SenseBodyStep             int
	LCMStep                   int
	SayMsgSize                int
	HearMax                   int
	HearInc                   int
	HearDecay                 int
	CatchBanCycle             int
	SlowDownFactor            int
	UseOffside                bool
	KickoffOffside            bool
	OffsideKickMargin         float64
	AudioCutDist              float64
	QuantizeStep              float64
	LandmarkQuantizeStep      float64
	DirQuantizeStep           float64
	DistQuantizeStepL         float64
	DistQuantizeStepR         float64
	LandmarkDistQuantizeStepL float64
	LandmarkDistQuantizeStepR float64
	DirQuantizeStepL          float64
	DirQuantizeStepR          float64
	CoachMode                 bool
	CoachWithRefereeMode      bool
	OldCoachHear              bool
	SendVIStep                int
	StartGoalL                int
	StartGoalR                int
	FullstateL                bool
	FullstateR                bool
	DropBallTime              int
	SynchMode                 bool
	SynchOffset               int
	SynchMicroSleep           int
	PointToBan                int
	PointToDuration           int
	MaxGoalKicks              int
	TackleDist                float64
	TackleBackDist            float64
	TackleWidth               float64
	TackleExponent            float64
	TackleCycles              int
	TacklePowerRate           float64
	FreeformWaitPeriod        int
	FreeformSendPeriod        int
	FreeKickFaults            bool
	BackPasses                bool
	ProperGoalKicks           bool
	StoppedBallVel            float64
	KickOffWait               int
	ConnectWait               int
	GameOverWait              int
	TextLogCompression        int
	GameLogCompression        int
	PlayerSpeedMaxMin         float64
	MaxTacklePower            float64
	MaxBackTacklePower        float64
	TackleRandFactor          float64
	FoulDetectProbability     float64
	FoulExponent              float64
	FoulCycles                int
	GoldenGoal                bool
	RedCardProbability        float64
	IllegalDefenseDuration    int
	IllegalDefenseNumber      int
	IllegalDefenseDistX       float64
	IllegalDefenseWidth       float64
	MaxDashAngle              float64
	MinDashAngle              float64
	DashAngleStep             float64
	SideDashRate              float64
	BackDashRate              float64
	MaxDashPower              float64
	MinDashPower              float64
	ExtraStamina              float64
	BallStuckArea             float64
	MaxCatchAngle             float64
	MinCatchAngle             float64
	StaminaCapacity           float64
	NrNormalHalfs             int
	NrExtraHalfs              int
	PenaltyShootOuts          bool
	PenBeforeSetupWait        int
	PenSetupWait              int
	PenReadyWait              int
	PenTakenWait              int
	PenNrKicks                int
	PenMaxExtraKicks          int
	PenDistX                  float64
	PenRandomWinner           bool
	PenAllowMultKicks         bool
	PenMaxGoalieDistX         float64
	PenCoachMovesPlayers      bool
	RandomSeed                int
	TeamLStart                string
	TeamRStart                string
	ModuleDir                 string
	FixedTeamnameL            string
	FixedTeamnameR            string
	KickableArea              float64
	SlownessOnTopForLeftTeam  float64
	SlownessOnTopForRightTeam float64
	KeepawayLength            float64
	KeepawayWidth             float64

	wireFill []byte
}

var serverParamTable = newParamTable[ServerParam]("server_param",
	dbl("goal_width", func(p *ServerParam) *float64 { return &p.GoalWidth }),
	dbl("inertia_moment", func(p *ServerParam) *float64 { return &p.InertiaMoment }),
	dbl("player_size", func(p *ServerParam) *float64 { return &p.PlayerSize }),
	dbl("player_decay", func(p *ServerParam) *float64 { return &p.PlayerDecay }),
	dbl("player_rand", func(p *ServerParam) *float64 { return &p.PlayerRand }),
	dbl("player_weight", func(p *ServerParam) *float64 { return &p.PlayerWeight }),
	dbl("player_speed_max", func(p *ServerParam) *float64 { return &p.PlayerSpeedMax }),
	dbl("player_accel_max", func(p *ServerParam) *float64 { return &p.PlayerAccelMax }),
	dbl("stamina_max", func(p *ServerParam) *float64 { return &p.StaminaMax }),
	dbl("stamina_inc_max", func(p *ServerParam) *float64 { return &p.StaminaIncMax }),
	dbl("recover_init", func(p *ServerParam) *float64 { return &p.RecoverInit }),
	dbl("recover_dec_thr", func(p *ServerParam) *float64 { return &p.RecoverDecThr }),
	dbl("recover_min", func(p *ServerParam) *float64 { return &p.RecoverMin }),
	dbl("recover_dec", func(p *ServerParam) *float64 { return &p.RecoverDec }),
	dbl("effort_init", func(p *ServerParam) *float64 { return &p.EffortInit }),
	dbl("effort_dec_thr", func(p *ServerParam) *float64 { return &p.EffortDecThr }),
	dbl("effort_min", func(p *ServerParam) *float64 { return &p.EffortMin }),
	dbl("effort_dec", func(p *ServerParam) *float64 { return &p.EffortDec }),
	dbl("effort_inc_thr", func(p *ServerParam) *float64 { return &p.EffortIncThr }),
	dbl("effort_inc", func(p *ServerParam) *float64 { return &p.EffortInc }),
	dbl("kick_rand", func(p *ServerParam) *float64 { return &p.KickRand }),
	bln("team_actuator_noise", func(p *ServerParam) *bool { return &p.TeamActuatorNoise }),
	dbl("player_rand_factor_l", func(p *ServerParam) *float64 { return &p.PlayerRandFactorL }),
	dbl("player_rand_factor_r", func(p *ServerParam) *float64 { return &p.PlayerRandFactorR }),
	dbl("kick_rand_factor_l", func(p *ServerParam) *float64 { return &p.KickRandFactorL }),
	dbl("kick_rand_factor_r", func(p *ServerParam) *float64 { return &p.KickRandFactorR }),
	dbl("ball_size", func(p *ServerParam) *float64 { return &p.BallSize }),
	dbl("ball_decay", func(p *ServerParam) *float64 { return &p.BallDecay }),
	dbl("ball_rand", func(p *ServerParam) *float64 { return &p.BallRand }),
	dbl("ball_weight", func(p *ServerParam) *float64 { return &p.BallWeight }),
	dbl("ball_speed_max", func(p *ServerParam) *float64 { return &p.BallSpeedMax }),
	dbl("ball_accel_max", func(p *ServerParam) *float64 { return &p.BallAccelMax }),
	dbl("dash_power_rate", func(p *ServerParam) *float64 { return &p.DashPowerRate }),
	dbl("kick_power_rate", func(p *ServerParam) *float64 { return &p.KickPowerRate }),
	dbl("kickable_margin", func(p *ServerParam) *float64 { return &p.KickableMargin }),
	dbl("control_radius", func(p *ServerParam) *float64 { return &p.ControlRadius }),
	dbl("control_radius_width", func(p *ServerParam) *float64 { return &p.ControlRadiusWidth }),
	dbl("max_power", func(p *ServerParam) *float64 { return &p.MaxPower }),
	dbl("min_power", func(p *ServerParam) *float64 { return &p.MinPower }),
	dbl("max_moment", func(p *ServerParam) *float64 { return &p.MaxMoment }),
	dbl("min_moment", func(p *ServerParam) *float64 { return &p.MinMoment }),
	dbl("max_neck_moment", func(p *ServerParam) *float64 { return &p.MaxNeckMoment }),
	dbl("min_neck_moment", func(p *ServerParam) *float64 { return &p.MinNeckMoment }),
	dbl("max_neck_angle", func(p *ServerParam) *float64 { return &p.MaxNeckAngle }),
	dbl("min_neck_angle", func(p *ServerParam) *float64 { return &p.MinNeckAngle }),
	dbl("visible_angle", func(p *ServerParam) *float64 { return &p.VisibleAngle }),
	dbl("visible_distance", func(p *ServerParam) *float64 { return &p.VisibleDistance }),
	dbl("wind_dir", func(p *ServerParam) *float64 { return &p.WindDir }),
	dbl("wind_force", func(p *ServerParam) *float64 { return &p.WindForce }),
	dbl("wind_angle", func(p *ServerParam) *float64 { return &p.WindAngle }),
	dbl("wind_rand", func(p *ServerParam) *float64 { return &p.WindRand }),
	dbl("kickable_area", func(p *ServerParam) *float64 { return &p.KickableArea }),
	dbl("catchable_area_l", func(p *ServerParam) *float64 { return &p.CatchableAreaL }),
	dbl("catchable_area_w", func(p *ServerParam) *float64 { return &p.CatchableAreaW }),
	dbl("catch_probability", func(p *ServerParam) *float64 { return &p.CatchProbability }),
	i16("goalie_max_moves", func(p *ServerParam) *int { return &p.GoalieMaxMoves }),
	dbl("corner_kick_margin", func(p *ServerParam) *float64 { return &p.CornerKickMargin }),
	dbl("offside_active_area_size", func(p *ServerParam) *float64 { return &p.OffsideActiveAreaSize }),
	bln("wind_none", func(p *ServerParam) *bool { return &p.WindNone }),
	bln("use_wind_random", func(p *ServerParam) *bool { return &p.UseWindRandom }),
	i16("coach_say_count_max", func(p *ServerParam) *int { return &p.CoachSayCountMax }),
	i16("coach_say_msg_size", func(p *ServerParam) *int { return &p.CoachSayMsgSize }),
	i16("clang_win_size", func(p *ServerParam) *int { return &p.ClangWinSize }),
	i16("clang_define_win", func(p *ServerParam) *int { return &p.ClangDefineWin }),
	i16("clang_meta_win", func(p *ServerParam) *int { return &p.ClangMetaWin }),
	i16("clang_advice_win", func(p *ServerParam) *int { return &p.ClangAdviceWin }),
	i16("clang_info_win", func(p *ServerParam) *int { return &p.ClangInfoWin }),
	i16("clang_mess_delay", func(p *ServerParam) *int { return &p.ClangMessDelay }),
	i16("clang_mess_per_cycle", func(p *ServerParam) *int { return &p.ClangMessPerCycle }),
	i16("half_time", func(p *ServerParam) *int { return &p.HalfTime }),
	i16("simulator_step", func(p *ServerParam) *int { return &p.SimulatorStep }),
	i16("send_step", func(p *ServerParam) *int { return &p.SendStep }),
	i16("recv_step", func(p *ServerParam) *int { return &p.RecvStep }),
	i16("sense_body_step", func(p *ServerParam) *int { return &p.SenseBodyStep }),
	i16("lcm_step", func(p *ServerParam) *int { return &p.LCMStep }),
	i16("say_msg_size", func(p *ServerParam) *int { return &p.SayMsgSize }),
	i16("hear_max", func(p *ServerParam) *int { return &p.HearMax }),
	i16("hear_inc", func(p *ServerParam) *int { return &p.HearInc }),
	i16("hear_decay", func(p *ServerParam) *int { return &p.HearDecay }),
	i16("catch_ban_cycle", func(p *ServerParam) *int { return &p.CatchBanCycle }),
	i16("slow_down_factor", func(p *ServerParam) *int { return &p.SlowDownFactor }),
	bln("use_offside", func(p *ServerParam) *bool { return &p.UseOffside }),
	bln("kickoff_offside", func(p *ServerParam) *bool { return &p.KickoffOffside }),
	dbl("offside_kick_margin", func(p *ServerParam) *float64 { return &p.OffsideKickMargin }),
	dbl("audio_cut_dist", func(p *ServerParam) *float64 { return &p.AudioCutDist }),
	dbl("quantize_step", func(p *ServerParam) *float64 { return &p.QuantizeStep }),
	dbl("landmark_quantize_step", func(p *ServerParam) *float64 { return &p.LandmarkQuantizeStep }),
	dbl("dir_quantize_step", func(p *ServerParam) *float64 { return &p.DirQuantizeStep }),
	dbl("dist_quantize_step_l", func(p *ServerParam) *float64 { return &p.DistQuantizeStepL }),
	dbl("dist_quantize_step_r", func(p *ServerParam) *float64 { return &p.DistQuantizeStepR }),
	dbl("landmark_dist_quantize_step_l", func(p *ServerParam) *float64 { return &p.LandmarkDistQuantizeStepL }),
	dbl("landmark_dist_quantize_step_r", func(p *ServerParam) *float64 { return &p.LandmarkDistQuantizeStepR }),
	dbl("dir_quantize_step_l", func(p *ServerParam) *float64 { return &p.DirQuantizeStepL }),
	dbl("dir_quantize_step_r", func(p *ServerParam) *float64 { return &p.DirQuantizeStepR }),
	bln("coach_mode", func(p *ServerParam) *bool { return &p.CoachMode }),
	bln("coach_with_referee_mode", func(p *ServerParam) *bool { return &p.CoachWithRefereeMode }),
	bln("old_coach_hear", func(p *ServerParam) *bool { return &p.OldCoachHear }),
	i16("send_vi_step", func(p *ServerParam) *int { return &p.SendVIStep }),
	dbl("slowness_on_top_for_left_team", func(p *ServerParam) *float64 { return &p.SlownessOnTopForLeftTeam }),
	dbl("slowness_on_top_for_right_team", func(p *ServerParam) *float64 { return &p.SlownessOnTopForRightTeam }),
	dbl("keepaway_length", func(p *ServerParam) *float64 { return &p.KeepawayLength }),
	dbl("keepaway_width", func(p *ServerParam) *float64 { return &p.KeepawayWidth }),
	i16("start_goal_l", func(p *ServerParam) *int { return &p.StartGoalL }),
	i16("start_goal_r", func(p *ServerParam) *int { return &p.StartGoalR }),
	bln("fullstate_l", func(p *ServerParam) *bool { return &p.FullstateL }),
	bln("fullstate_r", func(p *ServerParam) *bool { return &p.FullstateR }),
	i16("drop_ball_time", func(p *ServerParam) *int { return &p.DropBallTime }),
	bln("synch_mode", func(p *ServerParam) *bool { return &p.SynchMode }),
	i16("synch_offset", func(p *ServerParam) *int { return &p.SynchOffset }),
	i16("synch_micro_sleep", func(p *ServerParam) *int { return &p.SynchMicroSleep }),
	i16("point_to_ban", func(p *ServerParam) *int { return &p.PointToBan }),
	i16("point_to_duration", func(p *ServerParam) *int { return &p.PointToDuration }),
	i16("max_goal_kicks", func(p *ServerParam) *int { return &p.MaxGoalKicks }),
	dbl("tackle_dist", func(p *ServerParam) *float64 { return &p.TackleDist }),
	dbl("tackle_back_dist", func(p *ServerParam) *float64 { return &p.TackleBackDist }),
	dbl("tackle_width", func(p *ServerParam) *float64 { return &p.TackleWidth }),
	dbl("tackle_exponent", func(p *ServerParam) *float64 { return &p.TackleExponent }),
	i16("tackle_cycles", func(p *ServerParam) *int { return &p.TackleCycles }),
	dbl("tackle_power_rate", func(p *ServerParam) *float64 { return &p.TacklePowerRate }),
	i16("freeform_wait_period", func(p *ServerParam) *int { return &p.FreeformWaitPeriod }),
	i16("freeform_send_period", func(p *ServerParam) *int { return &p.FreeformSendPeriod }),
	bln("free_kick_faults", func(p *ServerParam) *bool { return &p.FreeKickFaults }),
	bln("back_passes", func(p *ServerParam) *bool { return &p.BackPasses }),
	bln("proper_goal_kicks", func(p *ServerParam) *bool { return &p.ProperGoalKicks }),
	dbl("stopped_ball_vel", func(p *ServerParam) *float64 { return &p.StoppedBallVel }),
	i16("kick_off_wait", func(p *ServerParam) *int { return &p.KickOffWait }),
	i16("connect_wait", func(p *ServerParam) *int { return &p.ConnectWait }),
	i16("game_over_wait", func(p *ServerParam) *int { return &p.GameOverWait }),
	i16("text_log_compression", func(p *ServerParam) *int { return &p.TextLogCompression }),
	i16("game_log_compression", func(p *ServerParam) *int { return &p.GameLogCompression }),
	dbl("player_speed_max_min", func(p *ServerParam) *float64 { return &p.PlayerSpeedMaxMin }),
	dbl("max_tackle_power", func(p *ServerParam) *float64 { return &p.MaxTacklePower }),
	dbl("max_back_tackle_power", func(p *ServerParam) *float64 { return &p.MaxBackTacklePower }),
	dbl("tackle_rand_factor", func(p *ServerParam) *float64 { return &p.TackleRandFactor }),
	dbl("foul_detect_probability", func(p *ServerParam) *float64 { return &p.FoulDetectProbability }),
	dbl("foul_exponent", func(p *ServerParam) *float64 { return &p.FoulExponent }),
	i16("foul_cycles", func(p *ServerParam) *int { return &p.FoulCycles }),
	bln("golden_goal", func(p *ServerParam) *bool { return &p.GoldenGoal }),
	dbl("red_card_probability", func(p *ServerParam) *float64 { return &p.RedCardProbability }),
	i16("illegal_defense_duration", func(p *ServerParam) *int { return &p.IllegalDefenseDuration }),
	i16("illegal_defense_number", func(p *ServerParam) *int { return &p.IllegalDefenseNumber }),
	dbl("illegal_defense_dist_x", func(p *ServerParam) *float64 { return &p.IllegalDefenseDistX }),
	dbl("illegal_defense_width", func(p *ServerParam) *float64 { return &p.IllegalDefenseWidth }),
	dbl("max_dash_angle", func(p *ServerParam) *float64 { return &p.MaxDashAngle }),
	dbl("min_dash_angle", func(p *ServerParam) *float64 { return &p.MinDashAngle }),
	dbl("dash_angle_step", func(p *ServerParam) *float64 { return &p.DashAngleStep }),
	dbl("side_dash_rate", func(p *ServerParam) *float64 { return &p.SideDashRate }),
	dbl("back_dash_rate", func(p *ServerParam) *float64 { return &p.BackDashRate }),
	dbl("max_dash_power", func(p *ServerParam) *float64 { return &p.MaxDashPower }),
	dbl("min_dash_power", func(p *ServerParam) *float64 { return &p.MinDashPower }),
	dbl("extra_stamina", func(p *ServerParam) *float64 { return &p.ExtraStamina }),
	dbl("ball_stuck_area", func(p *ServerParam) *float64 { return &p.BallStuckArea }),
	dbl("max_catch_angle", func(p *ServerParam) *float64 { return &p.MaxCatchAngle }),
	dbl("min_catch_angle", func(p *ServerParam) *float64 { return &p.MinCatchAngle }),
	dbl("stamina_capacity", func(p *ServerParam) *float64 { return &p.StaminaCapacity }),
	i16("nr_normal_halfs", func(p *ServerParam) *int { return &p.NrNormalHalfs }),
	i16("nr_extra_halfs", func(p *ServerParam) *int { return &p.NrExtraHalfs }),
	bln("penalty_shoot_outs", func(p *ServerParam) *bool { return &p.PenaltyShootOuts }),
	i16("pen_before_setup_wait", func(p *ServerParam) *int { return &p.PenBeforeSetupWait }),
	i16("pen_setup_wait", func(p *ServerParam) *int { return &p.PenSetupWait }),
	i16("pen_ready_wait", func(p *ServerParam) *int { return &p.PenReadyWait }),
	i16("pen_taken_wait", func(p *ServerParam) *int { return &p.PenTakenWait }),
	i16("pen_nr_kicks", func(p *ServerParam) *int { return &p.PenNrKicks }),
	i16("pen_max_extra_kicks", func(p *ServerParam) *int { return &p.PenMaxExtraKicks }),
	dbl("pen_dist_x", func(p *ServerParam) *float64 { return &p.PenDistX }),
	bln("pen_random_winner", func(p *ServerParam) *bool { return &p.PenRandomWinner }),
	bln("pen_allow_mult_kicks", func(p *ServerParam) *bool { return &p.PenAllowMultKicks }),
	dbl("pen_max_goalie_dist_x", func(p *ServerParam) *float64 { return &p.PenMaxGoalieDistX }),
	bln("pen_coach_moves_players", func(p *ServerParam) *bool { return &p.PenCoachMovesPlayers }),
	i32("random_seed", func(p *ServerParam) *int { return &p.RandomSeed }),
	str("team_l_start", func(p *ServerParam) *string { return &p.TeamLStart }),
	str("team_r_start", func(p *ServerParam) *string { return &p.TeamRStart }),
	str("module_dir", func(p *ServerParam) *string { return &p.ModuleDir }),
	str("fixed_teamname_l", func(p *ServerParam) *string { return &p.FixedTeamnameL }),
	str("fixed_teamname_r", func(p *ServerParam) *string { return &p.FixedTeamnameR }),
)

// Values renders the parameters as name → text value.
func (p *ServerParam) Values() map[string]string { return serverParamTable.values(p) }

// DefaultServerParam returns the defaults of a current simulator release
// for the most commonly consulted parameters.
func DefaultServerParam() ServerParam {
	return ServerParam{
		GoalWidth:         14.02,
		InertiaMoment:     5,
		PlayerSize:        0.3,
		PlayerDecay:       0.4,
		PlayerRand:        0.1,
		PlayerWeight:      60,
		PlayerSpeedMax:    1.05,
		PlayerAccelMax:    1,
		StaminaMax:        8000,
		StaminaIncMax:     45,
		RecoverInit:       1,
		RecoverDecThr:     0.3,
		RecoverMin:        0.5,
		RecoverDec:        0.002,
		EffortInit:        1,
		EffortDecThr:      0.3,
		EffortMin:         0.6,
		EffortDec:         0.005,
		EffortIncThr:      0.6,
		EffortInc:         0.01,
		KickRand:          0.1,
		BallSize:          0.085,
		BallDecay:         0.94,
		BallRand:          0.05,
		BallWeight:        0.2,
		BallSpeedMax:      3,
		BallAccelMax:      2.7,
		DashPowerRate:     0.006,
		KickPowerRate:     0.027,
		KickableMargin:    0.7,
		ControlRadius:     2,
		MaxPower:          100,
		MinPower:          -100,
		MaxMoment:         180,
		MinMoment:         -180,
		MaxNeckMoment:     180,
		MinNeckMoment:     -180,
		MaxNeckAngle:      90,
		MinNeckAngle:      -90,
		VisibleAngle:      90,
		VisibleDistance:   3,
		CatchableAreaL:    1.2,
		CatchableAreaW:    1,
		CatchProbability:  1,
		GoalieMaxMoves:    2,
		HalfTime:          300,
		SimulatorStep:     100,
		SendStep:          150,
		RecvStep:          10,
		SenseBodyStep:     100,
		UseOffside:        true,
		OffsideKickMargin: 9.15,
		TackleDist:        2,
		TackleBackDist:    0,
		TackleWidth:       1.25,
		TackleExponent:    6,
		TackleCycles:      10,
		MaxDashAngle:      180,
		MinDashAngle:      -180,
		DashAngleStep:     1,
		SideDashRate:      0.4,
		BackDashRate:      0.7,
		MaxDashPower:      100,
		MinDashPower:      -100,
		StaminaCapacity:   130600,
		MaxCatchAngle:     180,
		MinCatchAngle:     -180,
		NrNormalHalfs:     2,
		NrExtraHalfs:      2,
		PenNrKicks:        5,
		PenMaxExtraKicks:  5,
		PenDistX:          11,
	}
}
