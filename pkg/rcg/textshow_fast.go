package rcg

import (
	"bytes"
	"fmt"
	"strconv"
)

// decodeShowFast scans a show line in one pass. A malformed player entry
// stops the scan: it and every player after it are returned as dropped and
// the record keeps what was read so far.
func decodeShowFast(line []byte, rec *ShowRecord) ([]playerSlot, error) {
	s := newScanner(line)
	if err := s.open(showTag); err != nil {
		return nil, err
	}
	var err error
	if rec.Time, err = s.int(); err != nil {
		return nil, err
	}

	var dropped []playerSlot
	ball := false
	for s.peek() == '(' {
		s.pos++
		switch s.peek() {
		case 'p':
			if s.word() != "pm" {
				return nil, fmt.Errorf("%w: unknown show group", ErrMalformedRecord)
			}
			pm, err := s.int()
			if err != nil {
				return nil, err
			}
			rec.HasPlayMode, rec.PlayMode = true, PlayMode(pm)
			if err := s.expect(')'); err != nil {
				return nil, err
			}

		case 't':
			if s.word() != "tm" {
				return nil, fmt.Errorf("%w: unknown show group", ErrMalformedRecord)
			}
			rec.HasTeam = true
			if err := decodeTeamBody(s, &rec.Team); err != nil {
				return nil, err
			}
			rec.Team.Time = rec.Time
			if err := s.expect(')'); err != nil {
				return nil, err
			}

		case '(':
			if s.pos+1 < len(s.b) && s.b[s.pos+1] == 'b' {
				if !bytes.HasPrefix(s.b[s.pos:], []byte("(b) ")) {
					return nil, errBallSentinel
				}
				s.pos += 3
				b := &rec.Ball
				if err := s.floats(&b.X, &b.Y, &b.VX, &b.VY); err != nil {
					return nil, err
				}
				b.HasVelocity = true
				ball = true
				if err := s.expect(')'); err != nil {
					return nil, err
				}
				continue
			}

			var p PlayerState
			if err := scanPlayer(s, &p); err != nil {
				if !ball {
					return nil, err
				}
				dropped = append(dropped, playerSlot{side: p.Side, unum: p.Unum})
				return dropped, nil
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
	return dropped, s.expect(')')
}

// scanPlayer reads one player entry. The cursor is past the entry's opening
// parenthesis and stops past its closing one.
func scanPlayer(s *sexpScanner, p *PlayerState) error {
	if err := s.expect('('); err != nil {
		return err
	}
	side := s.word()
	if len(side) != 1 {
		return fmt.Errorf("%w: side %q", ErrMalformedRecord, side)
	}
	var ok bool
	if p.Side, ok = parseSide(side[0]); !ok {
		return fmt.Errorf("%w: side %q", ErrMalformedRecord, side)
	}
	var err error
	if p.Unum, err = s.int(); err != nil {
		return err
	}
	if err := s.expect(')'); err != nil {
		return err
	}

	if p.Type, err = s.int(); err != nil {
		return err
	}
	state, err := strconv.ParseUint(s.word(), 0, 32)
	if err != nil {
		return fmt.Errorf("%w: player state", ErrMalformedRecord)
	}
	p.State = PlayerFlags(state)

	if err := s.floats(&p.X, &p.Y, &p.VX, &p.VY, &p.Body, &p.Neck); err != nil {
		return err
	}
	if c := s.peek(); c != '(' && c != ')' {
		if err := s.floats(&p.PointX, &p.PointY); err != nil {
			return err
		}
		p.HasPointTo = true
	}

	for s.peek() == '(' {
		s.pos++
		switch s.word() {
		case "v":
			q := s.word()
			if len(q) != 1 {
				return fmt.Errorf("%w: view quality %q", ErrMalformedRecord, q)
			}
			if p.HighQuality, err = viewQuality(q[0]); err != nil {
				return err
			}
			if p.ViewWidth, err = s.float(); err != nil {
				return err
			}
			p.HasView = true
		case "s":
			if err := s.floats(&p.Stamina, &p.Effort, &p.Recovery); err != nil {
				return err
			}
			if s.peek() != ')' {
				if p.Capacity, err = s.float(); err != nil {
					return err
				}
				p.HasCapacity = true
			}
			p.HasStamina = true
		case "f":
			fs := s.word()
			if len(fs) != 1 {
				return fmt.Errorf("%w: focus side %q", ErrMalformedRecord, fs)
			}
			if p.FocusSide, ok = parseSide(fs[0]); !ok {
				return fmt.Errorf("%w: focus side %q", ErrMalformedRecord, fs)
			}
			if p.FocusUnum, err = s.int(); err != nil {
				return err
			}
		case "c":
			for _, c := range counterSlots(&p.Counters) {
				if *c, err = s.int(); err != nil {
					return err
				}
			}
			p.HasCounters = true
		default:
			return fmt.Errorf("%w: unknown player group", ErrMalformedRecord)
		}
		if err := s.expect(')'); err != nil {
			return err
		}
	}
	return s.expect(')')
}
