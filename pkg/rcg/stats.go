package rcg

import (
	"sync/atomic"
)

// Stats counts decoder activity. Counters are atomic so a progress reporter
// may read them while the owning Parser decodes.
type Stats struct {
	Shows          atomic.Uint64
	Msgs           atomic.Uint64
	Draws          atomic.Uint64
	PlayModes      atomic.Uint64
	Teams          atomic.Uint64
	Params         atomic.Uint64
	DecodeErrors   atomic.Uint64
	UnknownNames   atomic.Uint64
	DroppedPlayers atomic.Uint64
	SkippedLines   atomic.Uint64
	Bytes          atomic.Uint64
}

// StatsSnapshot is a plain copy of Stats.
type StatsSnapshot struct {
	Shows          uint64 `json:"shows" yaml:"shows"`
	Msgs           uint64 `json:"msgs" yaml:"msgs"`
	Draws          uint64 `json:"draws" yaml:"draws"`
	PlayModes      uint64 `json:"playmodes" yaml:"playmodes"`
	Teams          uint64 `json:"teams" yaml:"teams"`
	Params         uint64 `json:"params" yaml:"params"`
	DecodeErrors   uint64 `json:"decode_errors" yaml:"decode_errors"`
	UnknownNames   uint64 `json:"unknown_names" yaml:"unknown_names"`
	DroppedPlayers uint64 `json:"dropped_players" yaml:"dropped_players"`
	SkippedLines   uint64 `json:"skipped_lines" yaml:"skipped_lines"`
	Bytes          uint64 `json:"bytes" yaml:"bytes"`
}

// Records is the total number of records delivered.
func (s StatsSnapshot) Records() uint64 {
	return s.Shows + s.Msgs + s.Draws + s.PlayModes + s.Teams + s.Params
}

func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Shows:          s.Shows.Load(),
		Msgs:           s.Msgs.Load(),
		Draws:          s.Draws.Load(),
		PlayModes:      s.PlayModes.Load(),
		Teams:          s.Teams.Load(),
		Params:         s.Params.Load(),
		DecodeErrors:   s.DecodeErrors.Load(),
		UnknownNames:   s.UnknownNames.Load(),
		DroppedPlayers: s.DroppedPlayers.Load(),
		SkippedLines:   s.SkippedLines.Load(),
		Bytes:          s.Bytes.Load(),
	}
}

// Reset resets all counters to zero.
func (s *Stats) Reset() {
	s.Shows.Store(0)
	s.Msgs.Store(0)
	s.Draws.Store(0)
	s.PlayModes.Store(0)
	s.Teams.Store(0)
	s.Params.Store(0)
	s.DecodeErrors.Store(0)
	s.UnknownNames.Store(0)
	s.DroppedPlayers.Store(0)
	s.SkippedLines.Store(0)
	s.Bytes.Store(0)
}
