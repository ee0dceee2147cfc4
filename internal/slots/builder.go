// Package slots turns a block's enabled roles and headcount into the list of
// units the solver has to fill.
package slots

import (
	"shiftrota/internal"
	"shiftrota/internal/roles"
)

// Unit is one place in a block that takes exactly one person.
type Unit struct {
	Role roles.Kind `yaml:"role" json:"role"`
	// Overflow marks units added because the headcount exceeds the enabled roles.
	Overflow bool `yaml:"overflow,omitempty" json:"overflow,omitempty"`
}

// Validate checks the role combination rules. All violated rules are
// reported in one ConfigurationError.
func Validate(enabled roles.Set) error {
	var rules []string

	lanes := enabled.Has(roles.Lanes)
	lane1, lane2 := enabled.Has(roles.Lane1), enabled.Has(roles.Lane2)
	if lanes && (lane1 || lane2) {
		rules = append(rules, internal.RuleLanesExclusive)
	}
	if !lanes && lane1 != lane2 {
		rules = append(rules, internal.RuleLanesPair)
	}

	if enabled.Has(roles.Machine) {
		for _, k := range []roles.Kind{roles.FrontShots, roles.FrontMilk, roles.BackShots, roles.BackMilk} {
			if enabled.Has(k) {
				rules = append(rules, internal.RuleMachineExclusive)
				break
			}
		}
	}

	if enabled.Has(roles.TexterSlayer) && (enabled.Has(roles.Texter) || enabled.Has(roles.Slayer)) {
		rules = append(rules, internal.RuleTexterSlayerExclusive)
	}

	if len(rules) > 0 {
		return &internal.ConfigurationError{Rules: rules}
	}
	return nil
}

// Build validates enabled and lays out one unit per role, then spreads any
// extra people round-robin over the enabled overflow roles.
func Build(enabled roles.Set, people int) ([]Unit, error) {
	if err := Validate(enabled); err != nil {
		return nil, err
	}

	kinds := enabled.Enabled()
	base := len(kinds)
	if people < base {
		return nil, &internal.InsufficientPeopleError{People: people, Base: base}
	}

	units := make([]Unit, 0, people)
	var absorbers []roles.Kind
	for _, k := range kinds {
		units = append(units, Unit{Role: k})
		if k.Overflow() {
			absorbers = append(absorbers, k)
		}
	}

	extra := people - base
	if extra == 0 {
		return units, nil
	}
	if len(absorbers) == 0 {
		return nil, &internal.UnabsorbedOverflowError{People: people, Base: base}
	}
	for i := 0; i < extra; i++ {
		units = append(units, Unit{Role: absorbers[i%len(absorbers)], Overflow: true})
	}
	return units, nil
}

// ForBlock builds the units for b using its resolved roles.
func ForBlock(b internal.Block) ([]Unit, error) {
	return Build(b.EnabledRoles(), len(b.People))
}

// Count tallies units per role.
func Count(units []Unit) map[roles.Kind]int {
	out := make(map[roles.Kind]int)
	for _, u := range units {
		out[u.Role]++
	}
	return out
}
