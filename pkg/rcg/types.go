// Package rcg decodes soccer simulator game logs and monitor streams.
//
// Five wire generations are supported under one Parser:
//
//	Version  Encoding                                   Header
//	-------  -----------------------------------------  ---------
//	V1       fixed dispinfo struct per record (binary)  none
//	V2       mode tag + fixed struct (binary)           "ULG\x02"
//	V3       mode tag + fixed struct, 32-bit kinematics "ULG\x03"
//	V4       one s-expression per line (text)           "ULG4"
//	V5       V4 plus stamina capacity                   "ULG5"
//
// Every record is normalized into the generation-independent types below
// before it reaches a Handler.
package rcg

import (
	"fmt"
	"strings"
)

// MaxPlayer is the number of players per side.
const MaxPlayer = 11

// ─── Log version ───────────────────────────────────────────────────────────

// LogVersion identifies the wire generation of a stream.
type LogVersion int

const (
	VersionUnknown LogVersion = 0
	V1             LogVersion = 1
	V2             LogVersion = 2
	V3             LogVersion = 3
	V4             LogVersion = 4
	V5             LogVersion = 5
)

// IsText reports whether the generation is line-oriented text.
func (v LogVersion) IsText() bool { return v == V4 || v == V5 }

// IsBinary reports whether the generation is one of the binary layouts.
func (v LogVersion) IsBinary() bool { return v >= V1 && v <= V3 }

func (v LogVersion) String() string {
	switch v {
	case V1, V2, V3, V4, V5:
		return fmt.Sprintf("v%d", int(v))
	default:
		return "unknown"
	}
}

// ParseLogVersion accepts "1".."5" or "v1".."v5".
func ParseLogVersion(s string) (LogVersion, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "v") {
	case "1":
		return V1, nil
	case "2":
		return V2, nil
	case "3":
		return V3, nil
	case "4":
		return V4, nil
	case "5":
		return V5, nil
	}
	return VersionUnknown, fmt.Errorf("rcg: unknown log version %q", s)
}

// ─── Side ──────────────────────────────────────────────────────────────────

// Side is the team side. The numeric values match the binary wire.
type Side int

const (
	Neutral Side = 0
	Left    Side = 1
	Right   Side = -1
)

func (s Side) String() string {
	switch s {
	case Left:
		return "l"
	case Right:
		return "r"
	default:
		return "n"
	}
}

func parseSide(c byte) (Side, bool) {
	switch c {
	case 'l', 'L':
		return Left, true
	case 'r', 'R':
		return Right, true
	case 'n', 'N':
		return Neutral, true
	}
	return Neutral, false
}

// PlayerIndex maps side and uniform number onto the Players array.
// ok is false when the pair does not address a valid slot.
func PlayerIndex(side Side, unum int) (idx int, ok bool) {
	if unum < 1 || unum > MaxPlayer {
		return -1, false
	}
	switch side {
	case Left:
		return unum - 1, true
	case Right:
		return MaxPlayer + unum - 1, true
	}
	return -1, false
}

// ─── Player state flags ───────────────────────────────────────────────────

// PlayerFlags is the per-player state bitmask.
type PlayerFlags uint32

const (
	FlagStand          PlayerFlags = 0x00000001
	FlagKick           PlayerFlags = 0x00000002
	FlagKickFault      PlayerFlags = 0x00000004
	FlagGoalie         PlayerFlags = 0x00000008
	FlagCatch          PlayerFlags = 0x00000010
	FlagCatchFault     PlayerFlags = 0x00000020
	FlagBallToPlayer   PlayerFlags = 0x00000040
	FlagPlayerToBall   PlayerFlags = 0x00000080
	FlagDiscard        PlayerFlags = 0x00000100
	FlagLost           PlayerFlags = 0x00000200
	FlagBallCollide    PlayerFlags = 0x00000400
	FlagPlayerCollide  PlayerFlags = 0x00000800
	FlagTackle         PlayerFlags = 0x00001000
	FlagTackleFault    PlayerFlags = 0x00002000
	FlagBackPass       PlayerFlags = 0x00004000
	FlagFreeKickFault  PlayerFlags = 0x00008000
	FlagPostCollide    PlayerFlags = 0x00010000
	FlagFoulCharged    PlayerFlags = 0x00020000
	FlagYellowCard     PlayerFlags = 0x00040000
	FlagRedCard        PlayerFlags = 0x00080000
	FlagIllegalDefense PlayerFlags = 0x00100000
)

var flagNames = []struct {
	flag PlayerFlags
	name string
}{
	{FlagStand, "stand"},
	{FlagKick, "kick"},
	{FlagKickFault, "kick_fault"},
	{FlagGoalie, "goalie"},
	{FlagCatch, "catch"},
	{FlagCatchFault, "catch_fault"},
	{FlagBallToPlayer, "ball_to_player"},
	{FlagPlayerToBall, "player_to_ball"},
	{FlagDiscard, "discard"},
	{FlagLost, "lost"},
	{FlagBallCollide, "ball_collide"},
	{FlagPlayerCollide, "player_collide"},
	{FlagTackle, "tackle"},
	{FlagTackleFault, "tackle_fault"},
	{FlagBackPass, "back_pass"},
	{FlagFreeKickFault, "free_kick_fault"},
	{FlagPostCollide, "post_collide"},
	{FlagFoulCharged, "foul_charged"},
	{FlagYellowCard, "yellow_card"},
	{FlagRedCard, "red_card"},
	{FlagIllegalDefense, "illegal_defense"},
}

// Has reports whether every bit of f is set.
func (p PlayerFlags) Has(f PlayerFlags) bool { return p&f == f }

func (p PlayerFlags) String() string {
	if p == 0 {
		return "disable"
	}
	var parts []string
	rest := p
	for _, fn := range flagNames {
		if p&fn.flag != 0 {
			parts = append(parts, fn.name)
			rest &^= fn.flag
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}

// ─── Records ───────────────────────────────────────────────────────────────

type BallState struct {
	X, Y        float64
	VX, VY      float64
	HasVelocity bool

	wireHead []byte // non-default v1/v2 pos_t prefix
}

// Counters are the per-action command counts reported for a player.
type Counters struct {
	Kick        int
	Dash        int
	Turn        int
	Catch       int
	Move        int
	TurnNeck    int
	ChangeView  int
	Say         int
	Tackle      int
	PointTo     int
	AttentionTo int
}

// PlayerState is one player entry of a show record. A slot whose Side is
// Neutral is unpopulated.
type PlayerState struct {
	Side  Side
	Unum  int
	Type  int
	State PlayerFlags

	X, Y        float64
	VX, VY      float64
	HasVelocity bool

	Body float64 // degrees
	Neck float64 // degrees, relative to body

	HasPointTo     bool
	PointX, PointY float64

	HasView     bool
	HighQuality bool
	ViewWidth   float64 // degrees

	HasStamina  bool
	Stamina     float64
	Effort      float64
	Recovery    float64
	HasCapacity bool
	Capacity    float64

	FocusSide Side // Neutral when not focusing
	FocusUnum int

	HasCounters bool
	Counters    Counters
}

// Populated reports whether the slot holds a player.
func (p *PlayerState) Populated() bool { return p.Side != Neutral }

// ShowRecord is one simulation tick.
type ShowRecord struct {
	Time    int
	Ball    BallState
	Players [2 * MaxPlayer]PlayerState

	// Play mode and team info carried inside the show record itself
	// (binary v1/v2 showinfo, text "(pm)"/"(tm)" groups).
	HasPlayMode bool
	PlayMode    PlayMode
	HasTeam     bool
	Team        TeamRecord
}

// PopulatedPlayers counts populated slots.
func (s *ShowRecord) PopulatedPlayers() int {
	n := 0
	for i := range s.Players {
		if s.Players[i].Populated() {
			n++
		}
	}
	return n
}

type TeamInfo struct {
	Name         string
	Score        int
	PenaltyScore int
	PenaltyMiss  int
}

type TeamRecord struct {
	Time  int
	Left  TeamInfo
	Right TeamInfo
}

// HasPenalty reports whether any penalty shoot-out count is set.
func (t *TeamRecord) HasPenalty() bool {
	return t.Left.PenaltyScore != 0 || t.Left.PenaltyMiss != 0 ||
		t.Right.PenaltyScore != 0 || t.Right.PenaltyMiss != 0
}

type MsgRecord struct {
	Time  int
	Board int
	Text  string
}

type PointRecord struct {
	X, Y  float64
	Color string
}

type CircleRecord struct {
	X, Y, R float64
	Color   string
}

type LineRecord struct {
	X1, Y1 float64
	X2, Y2 float64
	Color  string
}
