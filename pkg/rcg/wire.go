package rcg

import (
	"bytes"
	"math"
	"strings"
)

// Binary layouts, all fields network byte order:
//
//	team_t        name[16] score:i16                                   18 bytes
//	pos_t         enable side unum angle x y (i16, x/y Scale16)        12 bytes
//	showinfo_t    pmode:u8 pad:u8 team_t[2] pos_t[23] time:i16          316 bytes
//	              pos_t[0] is the ball
//	msginfo_t     board:i16 message[2048]                              2050 bytes
//	drawinfo_t    mode:i16 union{point,circle,line}                    74 bytes
//	              point  x y (i16, Scale16) color[64]
//	              circle x y r (i16, Scale16) color[64]
//	              line   x1 y1 x2 y2 (i16, Scale16) color[64]
//	dispinfo_t    mode:i16 union{showinfo_t,msginfo_t,drawinfo_t}      2052 bytes (v1 only)
//	player_t      mode type:i16 x y vx vy body neck view_width:i32
//	              view_quality:i16 pad:i16 stamina effort recovery:i32
//	              kick dash turn say turn_neck catch move change_view:i16 64 bytes
//	showinfo_t2   ball{x y vx vy:i32} player_t[22] time:i16 pad:i16    1428 bytes (v3)
//
// All i32 kinematic fields use Scale65536; v3 angles are radians on the wire.
const (
	teamNameLen  = 16
	colorNameLen = 64
	msgBodyLen   = 2048

	teamWireSize     = teamNameLen + 2
	posWireSize      = 12
	posHeadSize      = 8 // enable side unum angle
	showInfoSize     = 2 + 2*teamWireSize + (2*MaxPlayer+1)*posWireSize + 2
	msgInfoSize      = 2 + msgBodyLen
	drawUnionSize    = 4*2 + colorNameLen
	drawInfoSize     = 2 + drawUnionSize
	dispInfoBodySize = msgInfoSize // largest union member
	dispInfoSize     = 2 + dispInfoBodySize
	playerV3Size     = 64
	showInfoV3Size   = 16 + 2*MaxPlayer*playerV3Size + 4
)

// ballHead is the enable/side/unum/angle prefix the simulator writes for the
// ball pos_t. Any other prefix is kept on BallState and written back as is.
var ballHead = [posHeadSize]byte{0, 1}

// ─── Show layouts, keyed by generation ─────────────────────────────────────

// showLayout is the fixed binary show payload of one generation. Decoding
// normalizes straight into ShowRecord; per-generation structs never escape.
type showLayout struct {
	size   int
	decode func(b []byte, rec *ShowRecord) (dropped []playerSlot)
	encode func(w *wireWriter, rec *ShowRecord)
}

// playerSlot identifies a player entry that did not map onto a valid index.
type playerSlot struct {
	side Side
	unum int
}

var showLayouts = map[LogVersion]showLayout{
	V1: {size: showInfoSize, decode: decodeShowInfo, encode: encodeShowInfo},
	V2: {size: showInfoSize, decode: decodeShowInfo, encode: encodeShowInfo},
	V3: {size: showInfoV3Size, decode: decodeShowInfoV3, encode: encodeShowInfoV3},
}

// ─── showinfo_t (v1, v2) ───────────────────────────────────────────────────

func decodeShowInfo(b []byte, rec *ShowRecord) []playerSlot {
	r := newWireReader(b)

	rec.HasPlayMode = true
	rec.PlayMode = PlayMode(r.uint8())
	r.skip(1)

	rec.HasTeam = true
	rec.Team = decodeTeamPair(r)

	// ball
	head := r.take(posHeadSize)
	rec.Ball = BallState{X: r.fixed16(), Y: r.fixed16()}
	if !r.short && !bytes.Equal(head, ballHead[:]) {
		rec.Ball.wireHead = append([]byte(nil), head...)
	}

	var dropped []playerSlot
	for i := 0; i < 2*MaxPlayer; i++ {
		enable := r.int16()
		side := Side(r.int16())
		unum := int(r.int16())
		angle := r.int16()
		x := r.fixed16()
		y := r.fixed16()

		idx, ok := PlayerIndex(side, unum)
		if !ok {
			if enable != 0 || side != Neutral || unum != 0 {
				dropped = append(dropped, playerSlot{side: side, unum: unum})
			}
			continue
		}
		rec.Players[idx] = PlayerState{
			Side:  side,
			Unum:  unum,
			State: PlayerFlags(uint16(enable)),
			X:     x,
			Y:     y,
			Body:  float64(angle),
		}
	}

	rec.Time = int(r.int16())
	rec.Team.Time = rec.Time
	return dropped
}

func encodeShowInfo(w *wireWriter, rec *ShowRecord) {
	w.uint8(uint8(rec.PlayMode))
	w.pad(1)
	encodeTeamPair(w, &rec.Team)

	// ball
	if len(rec.Ball.wireHead) == posHeadSize {
		w.raw(rec.Ball.wireHead)
	} else {
		w.raw(ballHead[:])
	}
	w.fixed16(rec.Ball.X)
	w.fixed16(rec.Ball.Y)

	for i := range rec.Players {
		p := &rec.Players[i]
		if !p.Populated() {
			w.pad(posWireSize)
			continue
		}
		w.int16(int16(uint16(p.State)))
		w.int16(int16(p.Side))
		w.int16(int16(p.Unum))
		w.int16(int16(clampRound(p.Body, math.MinInt16, math.MaxInt16)))
		w.fixed16(p.X)
		w.fixed16(p.Y)
	}

	w.int16(int16(rec.Time))
}

// ─── showinfo_t2 (v3) ──────────────────────────────────────────────────────

func decodeShowInfoV3(b []byte, rec *ShowRecord) []playerSlot {
	r := newWireReader(b)

	rec.Ball = BallState{
		X:           r.fixed32(),
		Y:           r.fixed32(),
		VX:          r.fixed32(),
		VY:          r.fixed32(),
		HasVelocity: true,
	}

	for i := 0; i < 2*MaxPlayer; i++ {
		raw := r.take(playerV3Size)
		if isZero(raw) {
			continue
		}
		pr := newWireReader(raw)
		p := &rec.Players[i]
		p.Side = Left
		if i >= MaxPlayer {
			p.Side = Right
		}
		p.Unum = i%MaxPlayer + 1
		p.State = PlayerFlags(uint16(pr.int16()))
		p.Type = int(pr.int16())
		p.X = pr.fixed32()
		p.Y = pr.fixed32()
		p.VX = pr.fixed32()
		p.VY = pr.fixed32()
		p.HasVelocity = true
		p.Body = radToDeg(pr.fixed32())
		p.Neck = radToDeg(pr.fixed32())
		p.ViewWidth = radToDeg(pr.fixed32())
		p.HighQuality = pr.bool16()
		p.HasView = true
		pr.skip(2)
		p.Stamina = pr.fixed32()
		p.Effort = pr.fixed32()
		p.Recovery = pr.fixed32()
		p.HasStamina = true
		p.Counters.Kick = int(pr.int16())
		p.Counters.Dash = int(pr.int16())
		p.Counters.Turn = int(pr.int16())
		p.Counters.Say = int(pr.int16())
		p.Counters.TurnNeck = int(pr.int16())
		p.Counters.Catch = int(pr.int16())
		p.Counters.Move = int(pr.int16())
		p.Counters.ChangeView = int(pr.int16())
		p.HasCounters = true
	}

	rec.Time = int(r.int16())
	return nil
}

func encodeShowInfoV3(w *wireWriter, rec *ShowRecord) {
	w.fixed32(rec.Ball.X)
	w.fixed32(rec.Ball.Y)
	w.fixed32(rec.Ball.VX)
	w.fixed32(rec.Ball.VY)

	for i := range rec.Players {
		p := &rec.Players[i]
		if !p.Populated() {
			w.pad(playerV3Size)
			continue
		}
		w.int16(int16(uint16(p.State)))
		w.int16(int16(p.Type))
		w.fixed32(p.X)
		w.fixed32(p.Y)
		w.fixed32(p.VX)
		w.fixed32(p.VY)
		w.fixed32(degToRad(p.Body))
		w.fixed32(degToRad(p.Neck))
		w.fixed32(degToRad(p.ViewWidth))
		w.bool16(p.HighQuality)
		w.pad(2)
		w.fixed32(p.Stamina)
		w.fixed32(p.Effort)
		w.fixed32(p.Recovery)
		w.int16(int16(p.Counters.Kick))
		w.int16(int16(p.Counters.Dash))
		w.int16(int16(p.Counters.Turn))
		w.int16(int16(p.Counters.Say))
		w.int16(int16(p.Counters.TurnNeck))
		w.int16(int16(p.Counters.Catch))
		w.int16(int16(p.Counters.Move))
		w.int16(int16(p.Counters.ChangeView))
	}

	w.int16(int16(rec.Time))
	w.pad(2)
}

// ─── team_t[2] ─────────────────────────────────────────────────────────────

func decodeTeamPair(r *wireReader) TeamRecord {
	var t TeamRecord
	t.Left.Name = r.str(teamNameLen)
	t.Left.Score = int(r.int16())
	t.Right.Name = r.str(teamNameLen)
	t.Right.Score = int(r.int16())
	return t
}

func encodeTeamPair(w *wireWriter, t *TeamRecord) {
	w.str(t.Left.Name, teamNameLen)
	w.int16(int16(t.Left.Score))
	w.str(t.Right.Name, teamNameLen)
	w.int16(int16(t.Right.Score))
}

// ─── drawinfo_t ────────────────────────────────────────────────────────────

type drawMode int16

const (
	drawClear  drawMode = 0
	drawPoint  drawMode = 1
	drawCircle drawMode = 2
	drawLine   drawMode = 3
)

// drawObject is the decoded secondary-mode union of a draw record.
type drawObject struct {
	mode   drawMode
	point  PointRecord
	circle CircleRecord
	line   LineRecord
}

func decodeDrawInfo(b []byte) (drawObject, bool) {
	r := newWireReader(b)
	d := drawObject{mode: drawMode(r.int16())}
	switch d.mode {
	case drawClear:
	case drawPoint:
		d.point.X = r.fixed16()
		d.point.Y = r.fixed16()
		d.point.Color = r.str(colorNameLen)
	case drawCircle:
		d.circle.X = r.fixed16()
		d.circle.Y = r.fixed16()
		d.circle.R = r.fixed16()
		d.circle.Color = r.str(colorNameLen)
	case drawLine:
		d.line.X1 = r.fixed16()
		d.line.Y1 = r.fixed16()
		d.line.X2 = r.fixed16()
		d.line.Y2 = r.fixed16()
		d.line.Color = r.str(colorNameLen)
	default:
		return d, false
	}
	return d, !r.short
}

func encodeDrawInfo(w *wireWriter, d *drawObject) {
	start := len(w.buf)
	w.int16(int16(d.mode))
	switch d.mode {
	case drawPoint:
		w.fixed16(d.point.X)
		w.fixed16(d.point.Y)
		w.str(d.point.Color, colorNameLen)
	case drawCircle:
		w.fixed16(d.circle.X)
		w.fixed16(d.circle.Y)
		w.fixed16(d.circle.R)
		w.str(d.circle.Color, colorNameLen)
	case drawLine:
		w.fixed16(d.line.X1)
		w.fixed16(d.line.Y1)
		w.fixed16(d.line.X2)
		w.fixed16(d.line.Y2)
		w.str(d.line.Color, colorNameLen)
	}
	w.padTo(start + drawInfoSize)
}

// ─── msginfo_t ─────────────────────────────────────────────────────────────

func decodeMsgInfoV1(b []byte) MsgRecord {
	r := newWireReader(b)
	return MsgRecord{Board: int(r.int16()), Text: r.str(msgBodyLen)}
}

func encodeMsgInfoV1(w *wireWriter, m *MsgRecord) {
	w.int16(int16(m.Board))
	w.str(m.Text, msgBodyLen)
}

// trimMsg drops the trailing nul padding of a length-prefixed message block.
func trimMsg(b []byte) string {
	return strings.TrimRight(string(b), "\x00")
}

// ─── helpers ───────────────────────────────────────────────────────────────

func radToDeg(r float64) float64 { return r * 180.0 / math.Pi }
func degToRad(d float64) float64 { return d * math.Pi / 180.0 }

func clampRound(v, lo, hi float64) float64 {
	return quantize(v, 1, lo, hi)
}

func isZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
