package rcg

// Handler receives decoded records. It is implemented by consumers
// (renderers, analyzers, converters) and invoked only by a Parser, on the
// decoding goroutine, one call per record. Record pointers are valid only for
// the duration of the call; copy what must be kept.
//
// A non-nil error aborts the current Parse call; it is returned wrapped in a
// *HandlerError and the Parser stays usable.
type Handler interface {
	// LogVersion reports the generation the consumer has negotiated, or
	// VersionUnknown. The Parser asks only under WithHandlerVersion.
	LogVersion() LogVersion

	HandleLogVersion(v LogVersion) error
	HandleShow(show *ShowRecord) error
	HandleMsg(msg *MsgRecord) error
	HandlePlayMode(time int, pm PlayMode) error
	HandleTeam(team *TeamRecord) error
	HandleDrawClear(time int) error
	HandleDrawPoint(time int, point *PointRecord) error
	HandleDrawCircle(time int, circle *CircleRecord) error
	HandleDrawLine(time int, line *LineRecord) error
	HandleServerParam(param *ServerParam) error
	HandlePlayerParam(param *PlayerParam) error
	HandlePlayerType(ptype *PlayerType) error
	HandleEOF() error
}

// BaseHandler implements every Handler method as a no-op and remembers the
// announced log version. Embed it and override what you need.
type BaseHandler struct {
	Version LogVersion
}

func (b *BaseHandler) LogVersion() LogVersion { return b.Version }

func (b *BaseHandler) HandleLogVersion(v LogVersion) error {
	b.Version = v
	return nil
}

func (b *BaseHandler) HandleShow(*ShowRecord) error                { return nil }
func (b *BaseHandler) HandleMsg(*MsgRecord) error                  { return nil }
func (b *BaseHandler) HandlePlayMode(int, PlayMode) error          { return nil }
func (b *BaseHandler) HandleTeam(*TeamRecord) error                { return nil }
func (b *BaseHandler) HandleDrawClear(int) error                   { return nil }
func (b *BaseHandler) HandleDrawPoint(int, *PointRecord) error     { return nil }
func (b *BaseHandler) HandleDrawCircle(int, *CircleRecord) error   { return nil }
func (b *BaseHandler) HandleDrawLine(int, *LineRecord) error       { return nil }
func (b *BaseHandler) HandleServerParam(*ServerParam) error        { return nil }
func (b *BaseHandler) HandlePlayerParam(*PlayerParam) error        { return nil }
func (b *BaseHandler) HandlePlayerType(*PlayerType) error          { return nil }
func (b *BaseHandler) HandleEOF() error                            { return nil }

// ─── Dispatch ──────────────────────────────────────────────────────────────

// dispatcher is the driver-side view of a Handler. Only the Parser builds
// one, so notification order and accounting live in a single place.
type dispatcher struct {
	h     Handler
	stats *Stats
}

func (d dispatcher) call(err error) error {
	if err != nil {
		return &HandlerError{Err: err}
	}
	return nil
}

func (d dispatcher) logVersion(v LogVersion) error {
	return d.call(d.h.HandleLogVersion(v))
}

// show announces embedded play mode and team info before the show itself.
func (d dispatcher) show(rec *ShowRecord) error {
	if rec.HasPlayMode {
		if err := d.playMode(rec.Time, rec.PlayMode); err != nil {
			return err
		}
	}
	if rec.HasTeam {
		team := rec.Team
		team.Time = rec.Time
		if err := d.team(&team); err != nil {
			return err
		}
	}
	d.stats.Shows.Add(1)
	return d.call(d.h.HandleShow(rec))
}

func (d dispatcher) msg(m *MsgRecord) error {
	d.stats.Msgs.Add(1)
	return d.call(d.h.HandleMsg(m))
}

func (d dispatcher) playMode(time int, pm PlayMode) error {
	d.stats.PlayModes.Add(1)
	return d.call(d.h.HandlePlayMode(time, pm))
}

func (d dispatcher) team(t *TeamRecord) error {
	d.stats.Teams.Add(1)
	return d.call(d.h.HandleTeam(t))
}

func (d dispatcher) draw(time int, obj *drawObject) error {
	d.stats.Draws.Add(1)
	switch obj.mode {
	case drawClear:
		return d.call(d.h.HandleDrawClear(time))
	case drawPoint:
		return d.call(d.h.HandleDrawPoint(time, &obj.point))
	case drawCircle:
		return d.call(d.h.HandleDrawCircle(time, &obj.circle))
	case drawLine:
		return d.call(d.h.HandleDrawLine(time, &obj.line))
	}
	return nil
}

func (d dispatcher) serverParam(p *ServerParam) error {
	d.stats.Params.Add(1)
	return d.call(d.h.HandleServerParam(p))
}

func (d dispatcher) playerParam(p *PlayerParam) error {
	d.stats.Params.Add(1)
	return d.call(d.h.HandlePlayerParam(p))
}

func (d dispatcher) playerType(p *PlayerType) error {
	d.stats.Params.Add(1)
	return d.call(d.h.HandlePlayerType(p))
}

func (d dispatcher) eof() error {
	return d.call(d.h.HandleEOF())
}
