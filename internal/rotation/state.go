// Package rotation holds the memory carried from one block to the next.
//
// The state looks back exactly one block: Advance rebuilds it from the
// latest assignment alone and drops everything older.
package rotation

import (
	"sort"

	"shiftrota/internal"
	"shiftrota/internal/roles"
)

// State is passed and returned by value. Treat the maps as read-only; Advance
// never modifies its input.
type State struct {
	LastRole        map[string]roles.Kind
	OutsideCooldown map[string]struct{}
}

// Empty is the state before the first block: no constraints at all.
func Empty() State {
	return State{
		LastRole:        map[string]roles.Kind{},
		OutsideCooldown: map[string]struct{}{},
	}
}

// Advance returns the state after a block has been assigned. People who were
// not assigned in the block lose their entries.
func Advance(_ State, a internal.Assignment) State {
	next := Empty()
	for k, names := range a {
		for _, name := range names {
			next.LastRole[name] = k
			if k.Outside() {
				next.OutsideCooldown[name] = struct{}{}
			}
		}
	}
	return next
}

func (s State) Last(name string) (roles.Kind, bool) {
	k, ok := s.LastRole[name]
	return k, ok
}

func (s State) CoolingDown(name string) bool {
	_, ok := s.OutsideCooldown[name]
	return ok
}

// Allows reports whether name may take a unit of kind k: not the role they
// held last block, and no outside role straight after an outside role.
func (s State) Allows(name string, k roles.Kind) bool {
	if last, ok := s.LastRole[name]; ok && last == k {
		return false
	}
	if k.Outside() && s.CoolingDown(name) {
		return false
	}
	return true
}

func (s State) IsEmpty() bool {
	return len(s.LastRole) == 0 && len(s.OutsideCooldown) == 0
}

type snapshot struct {
	LastRole        map[string]roles.Kind `yaml:"last_role"`
	OutsideCooldown []string              `yaml:"outside_cooldown"`
}

// MarshalYAML writes the cooldown set as a sorted list.
func (s State) MarshalYAML() (interface{}, error) {
	cooldown := make([]string, 0, len(s.OutsideCooldown))
	for name := range s.OutsideCooldown {
		cooldown = append(cooldown, name)
	}
	sort.Strings(cooldown)
	last := s.LastRole
	if last == nil {
		last = map[string]roles.Kind{}
	}
	return snapshot{LastRole: last, OutsideCooldown: cooldown}, nil
}
