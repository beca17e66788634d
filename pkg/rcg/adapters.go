package rcg

import "errors"

// Collector records every notification in memory.
type Collector struct {
	BaseHandler

	Versions     []LogVersion
	Shows        []ShowRecord
	Msgs         []MsgRecord
	PlayModes    []PlayModeChange
	Teams        []TeamRecord
	Clears       []int
	Points       []PointRecord
	Circles      []CircleRecord
	Lines        []LineRecord
	ServerParams []ServerParam
	PlayerParams []PlayerParam
	PlayerTypes  []PlayerType
	EOFs         int
}

// PlayModeChange is one play mode notification.
type PlayModeChange struct {
	Time int
	Mode PlayMode
}

func (c *Collector) HandleLogVersion(v LogVersion) error {
	c.Versions = append(c.Versions, v)
	return c.BaseHandler.HandleLogVersion(v)
}

func (c *Collector) HandleShow(r *ShowRecord) error { c.Shows = append(c.Shows, *r); return nil }
func (c *Collector) HandleMsg(m *MsgRecord) error   { c.Msgs = append(c.Msgs, *m); return nil }

func (c *Collector) HandlePlayMode(time int, pm PlayMode) error {
	c.PlayModes = append(c.PlayModes, PlayModeChange{Time: time, Mode: pm})
	return nil
}

func (c *Collector) HandleTeam(t *TeamRecord) error { c.Teams = append(c.Teams, *t); return nil }
func (c *Collector) HandleDrawClear(time int) error { c.Clears = append(c.Clears, time); return nil }

func (c *Collector) HandleDrawPoint(_ int, p *PointRecord) error {
	c.Points = append(c.Points, *p)
	return nil
}

func (c *Collector) HandleDrawCircle(_ int, r *CircleRecord) error {
	c.Circles = append(c.Circles, *r)
	return nil
}

func (c *Collector) HandleDrawLine(_ int, l *LineRecord) error {
	c.Lines = append(c.Lines, *l)
	return nil
}

func (c *Collector) HandleServerParam(p *ServerParam) error {
	c.ServerParams = append(c.ServerParams, *p)
	return nil
}

func (c *Collector) HandlePlayerParam(p *PlayerParam) error {
	c.PlayerParams = append(c.PlayerParams, *p)
	return nil
}

func (c *Collector) HandlePlayerType(p *PlayerType) error {
	c.PlayerTypes = append(c.PlayerTypes, *p)
	return nil
}

func (c *Collector) HandleEOF() error { c.EOFs++; return nil }

// ─── Fan-out ───────────────────────────────────────────────────────────────

// MultiHandler forwards every notification to each handler in order. All
// handlers see each record; their errors are joined.
type MultiHandler struct {
	handlers []Handler
}

func NewMultiHandler(hs ...Handler) *MultiHandler {
	return &MultiHandler{handlers: hs}
}

// LogVersion returns the first version a member has negotiated.
func (m *MultiHandler) LogVersion() LogVersion {
	for _, h := range m.handlers {
		if v := h.LogVersion(); v != VersionUnknown {
			return v
		}
	}
	return VersionUnknown
}

func (m *MultiHandler) each(f func(Handler) error) error {
	var errs []error
	for _, h := range m.handlers {
		if err := f(h); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiHandler) HandleLogVersion(v LogVersion) error {
	return m.each(func(h Handler) error { return h.HandleLogVersion(v) })
}

func (m *MultiHandler) HandleShow(r *ShowRecord) error {
	return m.each(func(h Handler) error { return h.HandleShow(r) })
}

func (m *MultiHandler) HandleMsg(r *MsgRecord) error {
	return m.each(func(h Handler) error { return h.HandleMsg(r) })
}

func (m *MultiHandler) HandlePlayMode(time int, pm PlayMode) error {
	return m.each(func(h Handler) error { return h.HandlePlayMode(time, pm) })
}

func (m *MultiHandler) HandleTeam(t *TeamRecord) error {
	return m.each(func(h Handler) error { return h.HandleTeam(t) })
}

func (m *MultiHandler) HandleDrawClear(time int) error {
	return m.each(func(h Handler) error { return h.HandleDrawClear(time) })
}

func (m *MultiHandler) HandleDrawPoint(time int, p *PointRecord) error {
	return m.each(func(h Handler) error { return h.HandleDrawPoint(time, p) })
}

func (m *MultiHandler) HandleDrawCircle(time int, c *CircleRecord) error {
	return m.each(func(h Handler) error { return h.HandleDrawCircle(time, c) })
}

func (m *MultiHandler) HandleDrawLine(time int, l *LineRecord) error {
	return m.each(func(h Handler) error { return h.HandleDrawLine(time, l) })
}

func (m *MultiHandler) HandleServerParam(p *ServerParam) error {
	return m.each(func(h Handler) error { return h.HandleServerParam(p) })
}

func (m *MultiHandler) HandlePlayerParam(p *PlayerParam) error {
	return m.each(func(h Handler) error { return h.HandlePlayerParam(p) })
}

func (m *MultiHandler) HandlePlayerType(p *PlayerType) error {
	return m.each(func(h Handler) error { return h.HandlePlayerType(p) })
}

func (m *MultiHandler) HandleEOF() error {
	return m.each(func(h Handler) error { return h.HandleEOF() })
}
