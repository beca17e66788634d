package rcg

// PlayMode indexes the ordered play mode name table. The index is the
// value carried on the binary wire.
type PlayMode int

const (
	PlayModeNull PlayMode = iota
	PlayModeBeforeKickOff
	PlayModeTimeOver
	PlayModePlayOn
	PlayModeKickOffLeft
	PlayModeKickOffRight
	PlayModeKickInLeft
	PlayModeKickInRight
	PlayModeFreeKickLeft
	PlayModeFreeKickRight
	PlayModeCornerKickLeft
	PlayModeCornerKickRight
	PlayModeGoalKickLeft
	PlayModeGoalKickRight
	PlayModeAfterGoalLeft
	PlayModeAfterGoalRight
	PlayModeDropBall
	PlayModeOffsideLeft
	PlayModeOffsideRight
	PlayModePenaltyKickLeft
	PlayModePenaltyKickRight
	PlayModeFirstHalfOver
	PlayModePause
	PlayModeHuman
	PlayModeFoulChargeLeft
	PlayModeFoulChargeRight
	PlayModeFoulPushLeft
	PlayModeFoulPushRight
	PlayModeFoulMultipleAttackerLeft
	PlayModeFoulMultipleAttackerRight
	PlayModeFoulBallOutLeft
	PlayModeFoulBallOutRight
	PlayModeBackPassLeft
	PlayModeBackPassRight
	PlayModeFreeKickFaultLeft
	PlayModeFreeKickFaultRight
	PlayModeCatchFaultLeft
	PlayModeCatchFaultRight
	PlayModeIndirectFreeKickLeft
	PlayModeIndirectFreeKickRight
	PlayModePenaltySetupLeft
	PlayModePenaltySetupRight
	PlayModePenaltyReadyLeft
	PlayModePenaltyReadyRight
	PlayModePenaltyTakenLeft
	PlayModePenaltyTakenRight
	PlayModePenaltyMissLeft
	PlayModePenaltyMissRight
	PlayModePenaltyScoreLeft
	PlayModePenaltyScoreRight
	PlayModeIllegalDefenseLeft
	PlayModeIllegalDefenseRight
	playModeMax
)

var playModeNames = [playModeMax]string{
	"",
	"before_kick_off",
	"time_over",
	"play_on",
	"kick_off_l",
	"kick_off_r",
	"kick_in_l",
	"kick_in_r",
	"free_kick_l",
	"free_kick_r",
	"corner_kick_l",
	"corner_kick_r",
	"goal_kick_l",
	"goal_kick_r",
	"goal_l",
	"goal_r",
	"drop_ball",
	"offside_l",
	"offside_r",
	"penalty_kick_l",
	"penalty_kick_r",
	"first_half_over",
	"pause",
	"human_judge",
	"foul_charge_l",
	"foul_charge_r",
	"foul_push_l",
	"foul_push_r",
	"foul_multiple_attack_l",
	"foul_multiple_attack_r",
	"foul_ballout_l",
	"foul_ballout_r",
	"back_pass_l",
	"back_pass_r",
	"free_kick_fault_l",
	"free_kick_fault_r",
	"catch_fault_l",
	"catch_fault_r",
	"indirect_free_kick_l",
	"indirect_free_kick_r",
	"penalty_setup_l",
	"penalty_setup_r",
	"penalty_ready_l",
	"penalty_ready_r",
	"penalty_taken_l",
	"penalty_taken_r",
	"penalty_miss_l",
	"penalty_miss_r",
	"penalty_score_l",
	"penalty_score_r",
	"illegal_defense_l",
	"illegal_defense_r",
}

var playModeByName = func() map[string]PlayMode {
	m := make(map[string]PlayMode, len(playModeNames))
	m["null"] = PlayModeNull
	for i, name := range playModeNames {
		if name != "" {
			m[name] = PlayMode(i)
		}
	}
	return m
}()

// Valid reports whether pm indexes the name table.
func (pm PlayMode) Valid() bool { return pm >= 0 && pm < playModeMax }

func (pm PlayMode) String() string {
	if !pm.Valid() {
		return "unknown"
	}
	if pm == PlayModeNull {
		return "null"
	}
	return playModeNames[pm]
}

// PlayModeByName looks up a play mode by its wire name.
func PlayModeByName(name string) (PlayMode, bool) {
	pm, ok := playModeByName[name]
	return pm, ok
}
