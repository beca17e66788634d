package rcg

import "fmt"

// showTag opens every show line.
const showTag = "show"

var errBallSentinel = fmt.Errorf("%w: corrupt ball field", ErrMalformedRecord)

// placePlayer stores p in its slot. It reports false when the side and unum
// do not address a slot.
func placePlayer(rec *ShowRecord, p *PlayerState) bool {
	idx, ok := PlayerIndex(p.Side, p.Unum)
	if !ok {
		return false
	}
	p.HasVelocity = true
	rec.Players[idx] = *p
	return true
}

func counterSlots(c *Counters) []*int {
	return []*int{
		&c.Kick, &c.Dash, &c.Turn, &c.Catch, &c.Move, &c.TurnNeck,
		&c.ChangeView, &c.Say, &c.Tackle, &c.PointTo, &c.AttentionTo,
	}
}

func viewQuality(c byte) (bool, error) {
	switch c {
	case 'h':
		return true, nil
	case 'l':
		return false, nil
	}
	return false, fmt.Errorf("%w: view quality %q", ErrMalformedRecord, c)
}
