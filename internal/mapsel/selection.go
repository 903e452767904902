package mapsel // package mapsel manages building selection on the map and pairwise distance

import "github.com/iliesb/campus-admin-client/internal/model"

// capacity is the number of buildings a distance measurement needs.
const capacity = 2

// Selection is a fixed-capacity ordered set of buildings keyed by their
// code.  It holds at most two distinct members in insertion order.
// Picking a member again removes it (toggle); picking a third distinct
// building evicts the oldest member, so the set always keeps the two
// most recent picks.
type Selection struct {
	picked []model.BatimentInfo
}

// Pick toggles a building in or out of the selection, applying the
// replace-oldest policy at capacity.  It reports whether the building is
// selected afterwards.
func (s *Selection) Pick(b model.BatimentInfo) bool {
	for i, m := range s.picked {
		if m.Code == b.Code {
			s.picked = append(s.picked[:i], s.picked[i+1:]...)
			return false
		}
	}
	if len(s.picked) >= capacity {
		// Evict the oldest pick rather than rejecting the new one.
		rest := make([]model.BatimentInfo, 0, capacity)
		rest = append(rest, s.picked[1:]...)
		s.picked = append(rest, b)
		return true
	}
	s.picked = append(s.picked, b)
	return true
}

// Clear empties the selection.
func (s *Selection) Clear() { s.picked = nil }

// Contains reports whether the building code is currently selected.
func (s *Selection) Contains(code string) bool {
	for _, m := range s.picked {
		if m.Code == code {
			return true
		}
	}
	return false
}

// Members returns the selected buildings in insertion order.
func (s *Selection) Members() []model.BatimentInfo {
	out := make([]model.BatimentInfo, len(s.picked))
	copy(out, s.picked)
	return out
}

// Codes returns the selected building codes in insertion order.
func (s *Selection) Codes() []string {
	out := make([]string, len(s.picked))
	for i, m := range s.picked {
		out[i] = m.Code
	}
	return out
}

// Len returns the number of selected buildings.
func (s *Selection) Len() int { return len(s.picked) }

// Ready reports whether exactly two buildings are selected, the only
// state in which a distance can be computed.
func (s *Selection) Ready() bool { return len(s.picked) == capacity }
