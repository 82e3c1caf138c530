package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// StatLine is a flat record of named numeric metrics. Absent keys mean "no value";
// JSON nulls, non-numeric and non-finite values are dropped while decoding.
type StatLine map[string]float64

// Value returns the metric value and whether it is present.
func (s StatLine) Value(key string) (float64, bool) {
	if s == nil {
		return 0, false
	}
	v, ok := s[key]
	return v, ok
}

// HasAny reports whether at least one of keys is present.
func (s StatLine) HasAny(keys []string) bool {
	for _, k := range keys {
		if _, ok := s.Value(k); ok {
			return true
		}
	}
	return false
}

// UnmarshalJSON keeps numbers and numeric strings and skips everything else.
func (s *StatLine) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = nil
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(StatLine, len(raw))
	for k, v := range raw {
		if f, ok := decodeNumber(v); ok {
			out[k] = f
		}
	}
	*s = out
	return nil
}

func decodeNumber(raw json.RawMessage) (float64, bool) {
	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return 0, false
	}
	switch t := v.(type) {
	case json.Number:
		n = t
	case string:
		n = json.Number(strings.TrimSpace(t))
	default:
		return 0, false
	}
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// GradeBook is a sparse mapping from game key to that game's stat line.
type GradeBook map[GameKey]StatLine

// WeeklyGrade is one stored weekly stat record for a player.
type WeeklyGrade struct {
	PlayerID   int64      `json:"player_id"`
	Year       int        `json:"year"`
	Week       int        `json:"week"`
	SeasonType SeasonType `json:"season_type"`
	StatKind   string     `json:"stat_kind"`
	Metrics    StatLine   `json:"metrics"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Key returns the game key the record joins to.
func (g WeeklyGrade) Key() GameKey {
	return NewGameKey(g.Week, g.SeasonType)
}
