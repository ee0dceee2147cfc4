package solver

import (
	"shiftrota/internal"
	"shiftrota/internal/rotation"
	"shiftrota/internal/slots"
)

// pick is one committed (unit, person) pair. Picks form a list that shares
// its tail between branches, newest first.
type pick struct {
	unit   int
	person int
	prev   *pick
}

// partial is the search state at one depth. It is never modified after
// construction; extending it yields a new value.
type partial struct {
	used  []bool
	picks *pick
}

func (p partial) with(unit, person int) partial {
	used := make([]bool, len(p.used))
	copy(used, p.used)
	used[person] = true
	return partial{used: used, picks: &pick{unit: unit, person: person, prev: p.picks}}
}

type search struct {
	people   []string
	units    []slots.Unit
	state    rotation.State
	shuffler Shuffler
	stats    *Stats
}

// candidates lists the people who may fill unit u given p.
func (s *search) candidates(p partial, u int) []int {
	role := s.units[u].Role
	var out []int
	for i, name := range s.people {
		if p.used[i] {
			continue
		}
		if !s.state.Allows(name, role) {
			continue
		}
		out = append(out, i)
	}
	return out
}

// next returns the position in open of the unit to fill now. Ties keep the
// earlier unit.
func (s *search) next(p partial, open []int) int {
	best, bestOutside, bestCount := -1, false, 0
	for at, u := range open {
		outside := s.units[u].Role.Outside()
		count := len(s.candidates(p, u))
		switch {
		case best < 0:
		case outside && !bestOutside:
		case outside == bestOutside && count < bestCount:
		default:
			continue
		}
		best, bestOutside, bestCount = at, outside, count
	}
	return best
}

func (s *search) run(p partial, open []int) (partial, bool) {
	if len(open) == 0 {
		return p, true
	}
	s.stats.Nodes++

	at := s.next(p, open)
	unit := open[at]
	rest := make([]int, 0, len(open)-1)
	rest = append(rest, open[:at]...)
	rest = append(rest, open[at+1:]...)

	cands := s.candidates(p, unit)
	s.shuffler.Shuffle(len(cands), func(i, j int) { cands[i], cands[j] = cands[j], cands[i] })
	for _, person := range cands {
		if done, ok := s.run(p.with(unit, person), rest); ok {
			return done, true
		}
		s.stats.Backtracks++
	}
	return partial{}, false
}

// assignment lays the picks out per role in commit order.
func (s *search) assignment(p partial) internal.Assignment {
	var ordered []*pick
	for pk := p.picks; pk != nil; pk = pk.prev {
		ordered = append(ordered, pk)
	}
	out := internal.Assignment{}
	for i := len(ordered) - 1; i >= 0; i-- {
		pk := ordered[i]
		role := s.units[pk.unit].Role
		out[role] = append(out[role], s.people[pk.person])
	}
	return out
}
