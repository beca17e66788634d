package rcg

import (
	"fmt"
	"strings"
)

// show line templates
const (
	tmplPlayMode  = "(pm %d)"
	tmplBall      = "((b) %f %f %f %f)"
	tmplSide      = "(%c %d)"
	tmplHead      = "%d %v %f %f %f %f %f %f"
	tmplHeadPoint = "%d %v %f %f %f %f %f %f %f %f"
	tmplView      = "(v %c %f)"
	tmplStamina   = "(s %f %f %f)"
	tmplCapacity  = "(s %f %f %f %f)"
	tmplFocus     = "(f %c %d)"
	tmplCounters  = "(c %d %d %d %d %d %d %d %d %d %d %d)"
)

// decodeShowSafe matches every group of a show line against a fixed
// template. Any mismatch fails the whole record; well-formed players whose
// side or unum has no slot are returned as dropped.
func decodeShowSafe(line []byte, rec *ShowRecord) ([]playerSlot, error) {
	s := newScanner(line)
	if err := s.open(showTag); err != nil {
		return nil, err
	}
	var err error
	if rec.Time, err = s.int(); err != nil {
		return nil, err
	}

	ball := false
	var dropped []playerSlot
	for s.peek() == '(' {
		g, err := s.group()
		if err != nil {
			return nil, err
		}
		text := string(g)

		switch {
		case strings.HasPrefix(text, "(pm "):
			var pm int
			if err := scanTemplate(text, tmplPlayMode, 1, &pm); err != nil {
				return nil, err
			}
			rec.HasPlayMode, rec.PlayMode = true, PlayMode(pm)

		case strings.HasPrefix(text, "(tm "):
			ts := newScanner(g)
			if err := ts.open("tm"); err != nil {
				return nil, err
			}
			if err := decodeTeamBody(ts, &rec.Team); err != nil {
				return nil, err
			}
			if err := ts.expect(')'); err != nil {
				return nil, err
			}
			rec.HasTeam = true
			rec.Team.Time = rec.Time

		case strings.HasPrefix(text, "((b"):
			if !strings.HasPrefix(text, "((b) ") {
				return nil, errBallSentinel
			}
			b := &rec.Ball
			if err := scanTemplate(text, tmplBall, 4, &b.X, &b.Y, &b.VX, &b.VY); err != nil {
				return nil, err
			}
			b.HasVelocity = true
			ball = true

		case strings.HasPrefix(text, "(("):
			var p PlayerState
			if err := matchPlayer(g[1:len(g)-1], &p); err != nil {
				return nil, err
			}
			if !placePlayer(rec, &p) {
				dropped = append(dropped, playerSlot{side: p.Side, unum: p.Unum})
			}

		default:
			return nil, fmt.Errorf("%w: unknown show group", ErrMalformedRecord)
		}
	}

	if !ball {
		return nil, fmt.Errorf("%w: show without ball", ErrMalformedRecord)
	}
	if err := s.expect(')'); err != nil {
		return nil, err
	}
	return dropped, nil
}

// matchPlayer matches the inside of one player entry.
func matchPlayer(inner []byte, p *PlayerState) error {
	ps := newScanner(inner)
	sg, err := ps.group()
	if err != nil {
		return err
	}
	var side rune
	if err := scanTemplate(string(sg), tmplSide, 2, &side, &p.Unum); err != nil {
		return err
	}
	var ok bool
	if p.Side, ok = parseSide(byte(side)); !ok {
		return fmt.Errorf("%w: side %q", ErrMalformedRecord, side)
	}

	start := ps.pos
	for ps.pos < len(inner) && inner[ps.pos] != '(' {
		ps.pos++
	}
	head := string(inner[start:ps.pos])
	var state uint32
	switch len(strings.Fields(head)) {
	case 8:
		err = scanTemplate(head, tmplHead, 8, &p.Type, &state,
			&p.X, &p.Y, &p.VX, &p.VY, &p.Body, &p.Neck)
	case 10:
		err = scanTemplate(head, tmplHeadPoint, 10, &p.Type, &state,
			&p.X, &p.Y, &p.VX, &p.VY, &p.Body, &p.Neck, &p.PointX, &p.PointY)
		p.HasPointTo = true
	default:
		err = fmt.Errorf("%w: player head %q", ErrMalformedRecord, head)
	}
	if err != nil {
		return err
	}
	p.State = PlayerFlags(state)

	for ps.peek() == '(' {
		g, err := ps.group()
		if err != nil {
			return err
		}
		text := string(g)
		switch {
		case strings.HasPrefix(text, "(v "):
			var q rune
			if err := scanTemplate(text, tmplView, 2, &q, &p.ViewWidth); err != nil {
				return err
			}
			if p.HighQuality, err = viewQuality(byte(q)); err != nil {
				return err
			}
			p.HasView = true

		case strings.HasPrefix(text, "(s "):
			if len(strings.Fields(text)) == 5 {
				err = scanTemplate(text, tmplCapacity, 4, &p.Stamina, &p.Effort, &p.Recovery, &p.Capacity)
				p.HasCapacity = true
			} else {
				err = scanTemplate(text, tmplStamina, 3, &p.Stamina, &p.Effort, &p.Recovery)
			}
			if err != nil {
				return err
			}
			p.HasStamina = true

		case strings.HasPrefix(text, "(f "):
			var fs rune
			if err := scanTemplate(text, tmplFocus, 2, &fs, &p.FocusUnum); err != nil {
				return err
			}
			if p.FocusSide, ok = parseSide(byte(fs)); !ok {
				return fmt.Errorf("%w: focus side %q", ErrMalformedRecord, fs)
			}

		case strings.HasPrefix(text, "(c "):
			slots := counterSlots(&p.Counters)
			args := make([]interface{}, len(slots))
			for i, c := range slots {
				args[i] = c
			}
			if err := scanTemplate(text, tmplCounters, len(args), args...); err != nil {
				return err
			}
			p.HasCounters = true

		default:
			return fmt.Errorf("%w: unknown player group", ErrMalformedRecord)
		}
	}

	if ps.peek() != 0 {
		return fmt.Errorf("%w: trailing player data", ErrMalformedRecord)
	}
	return nil
}

func scanTemplate(text, tmpl string, want int, args ...interface{}) error {
	n, err := fmt.Sscanf(text, tmpl, args...)
	if err != nil || n != want {
		return fmt.Errorf("%w: %q does not match %q", ErrMalformedRecord, text, tmpl)
	}
	return nil
}
