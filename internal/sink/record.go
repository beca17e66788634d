package sink

import (
	"fmt"

	"firestige.xyz/rcg/pkg/rcg"
)

// Record kinds, as used in output documents and the kinds filter.
const (
	KindVersion     = "version"
	KindShow        = "show"
	KindMsg         = "msg"
	KindPlayMode    = "playmode"
	KindTeam        = "team"
	KindDraw        = "draw"
	KindServerParam = "server_param"
	KindPlayerParam = "player_param"
	KindPlayerType  = "player_type"
)

var allKinds = []string{
	KindVersion, KindShow, KindMsg, KindPlayMode, KindTeam,
	KindDraw, KindServerParam, KindPlayerParam, KindPlayerType,
}

// Record is the document form of one notification.
type Record struct {
	Kind string      `json:"kind" yaml:"kind"`
	Time int         `json:"time" yaml:"time"`
	Data interface{} `json:"data,omitempty" yaml:"data,omitempty"`
}

type BallView struct {
	X  float64 `json:"x" yaml:"x"`
	Y  float64 `json:"y" yaml:"y"`
	VX float64 `json:"vx" yaml:"vx"`
	VY float64 `json:"vy" yaml:"vy"`
}

type PlayerView struct {
	Side     string   `json:"side" yaml:"side"`
	Unum     int      `json:"unum" yaml:"unum"`
	Type     int      `json:"type" yaml:"type"`
	State    string   `json:"state" yaml:"state"`
	X        float64  `json:"x" yaml:"x"`
	Y        float64  `json:"y" yaml:"y"`
	VX       float64  `json:"vx" yaml:"vx"`
	VY       float64  `json:"vy" yaml:"vy"`
	Body     float64  `json:"body" yaml:"body"`
	Neck     float64  `json:"neck" yaml:"neck"`
	Stamina  *float64 `json:"stamina,omitempty" yaml:"stamina,omitempty"`
	Capacity *float64 `json:"capacity,omitempty" yaml:"capacity,omitempty"`
	Focus    string   `json:"focus,omitempty" yaml:"focus,omitempty"`
}

type ShowView struct {
	Ball    BallView     `json:"ball" yaml:"ball"`
	Players []PlayerView `json:"players" yaml:"players"`
}

type TeamSideView struct {
	Name         string `json:"name" yaml:"name"`
	Score        int    `json:"score" yaml:"score"`
	PenaltyScore int    `json:"penalty_score,omitempty" yaml:"penalty_score,omitempty"`
	PenaltyMiss  int    `json:"penalty_miss,omitempty" yaml:"penalty_miss,omitempty"`
}

type TeamView struct {
	Left  TeamSideView `json:"left" yaml:"left"`
	Right TeamSideView `json:"right" yaml:"right"`
}

func teamSide(t rcg.TeamInfo) TeamSideView {
	return TeamSideView{Name: t.Name, Score: t.Score, PenaltyScore: t.PenaltyScore, PenaltyMiss: t.PenaltyMiss}
}

type MsgView struct {
	Board int    `json:"board" yaml:"board"`
	Text  string `json:"text" yaml:"text"`
}

type DrawView struct {
	Shape string    `json:"shape" yaml:"shape"`
	Color string    `json:"color,omitempty" yaml:"color,omitempty"`
	Args  []float64 `json:"args,omitempty" yaml:"args,omitempty"`
}

func showView(rec *rcg.ShowRecord) ShowView {
	v := ShowView{
		Ball:    BallView{X: rec.Ball.X, Y: rec.Ball.Y, VX: rec.Ball.VX, VY: rec.Ball.VY},
		Players: make([]PlayerView, 0, rec.PopulatedPlayers()),
	}
	for i := range rec.Players {
		p := &rec.Players[i]
		if !p.Populated() {
			continue
		}
		pv := PlayerView{
			Side: p.Side.String(), Unum: p.Unum, Type: p.Type, State: p.State.String(),
			X: p.X, Y: p.Y, VX: p.VX, VY: p.VY, Body: p.Body, Neck: p.Neck,
		}
		if p.HasStamina {
			stamina := p.Stamina
			pv.Stamina = &stamina
		}
		if p.HasCapacity {
			capacity := p.Capacity
			pv.Capacity = &capacity
		}
		if p.FocusSide != rcg.Neutral {
			pv.Focus = fmt.Sprintf("%s%d", p.FocusSide, p.FocusUnum)
		}
		v.Players = append(v.Players, pv)
	}
	return v
}

// recordHandler converts notifications into Records and hands them to emit.
// The kinds set, when non-empty, filters what is emitted.
type recordHandler struct {
	rcg.BaseHandler
	kinds map[string]bool
	emit  func(*Record) error
}

func newRecordHandler(kinds []string, emit func(*Record) error) (recordHandler, error) {
	h := recordHandler{emit: emit}
	if len(kinds) == 0 {
		return h, nil
	}
	valid := make(map[string]bool, len(allKinds))
	for _, k := range allKinds {
		valid[k] = true
	}
	h.kinds = make(map[string]bool, len(kinds))
	for _, k := range kinds {
		if !valid[k] {
			return h, fmt.Errorf("unknown record kind %q", k)
		}
		h.kinds[k] = true
	}
	return h, nil
}

func (h *recordHandler) send(kind string, time int, data interface{}) error {
	if h.kinds != nil && !h.kinds[kind] {
		return nil
	}
	return h.emit(&Record{Kind: kind, Time: time, Data: data})
}

func (h *recordHandler) HandleLogVersion(v rcg.LogVersion) error {
	if err := h.BaseHandler.HandleLogVersion(v); err != nil {
		return err
	}
	return h.send(KindVersion, 0, v.String())
}

func (h *recordHandler) HandleShow(rec *rcg.ShowRecord) error {
	return h.send(KindShow, rec.Time, showView(rec))
}

func (h *recordHandler) HandleMsg(m *rcg.MsgRecord) error {
	return h.send(KindMsg, m.Time, MsgView{Board: m.Board, Text: m.Text})
}

func (h *recordHandler) HandlePlayMode(time int, pm rcg.PlayMode) error {
	return h.send(KindPlayMode, time, pm.String())
}

func (h *recordHandler) HandleTeam(t *rcg.TeamRecord) error {
	return h.send(KindTeam, t.Time, TeamView{Left: teamSide(t.Left), Right: teamSide(t.Right)})
}

func (h *recordHandler) HandleDrawClear(time int) error {
	return h.send(KindDraw, time, DrawView{Shape: "clear"})
}

func (h *recordHandler) HandleDrawPoint(time int, p *rcg.PointRecord) error {
	return h.send(KindDraw, time, DrawView{Shape: "point", Color: p.Color, Args: []float64{p.X, p.Y}})
}

func (h *recordHandler) HandleDrawCircle(time int, c *rcg.CircleRecord) error {
	return h.send(KindDraw, time, DrawView{Shape: "circle", Color: c.Color, Args: []float64{c.X, c.Y, c.R}})
}

func (h *recordHandler) HandleDrawLine(time int, l *rcg.LineRecord) error {
	return h.send(KindDraw, time, DrawView{Shape: "line", Color: l.Color, Args: []float64{l.X1, l.Y1, l.X2, l.Y2}})
}

func (h *recordHandler) HandleServerParam(p *rcg.ServerParam) error {
	return h.send(KindServerParam, 0, p.Values())
}

func (h *recordHandler) HandlePlayerParam(p *rcg.PlayerParam) error {
	return h.send(KindPlayerParam, 0, p.Values())
}

func (h *recordHandler) HandlePlayerType(p *rcg.PlayerType) error {
	return h.send(KindPlayerType, 0, p.Values())
}
