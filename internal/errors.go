package internal

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInfeasible is returned when the search runs out of candidates for
	// some slot on every branch.
	ErrInfeasible = errors.New("no valid assignment found (outside cooldown or repeat-role rule); try adjusting the roster")

	ErrNoPeople = errors.New("block has no people")
)

// Rule names reported by ConfigurationError.
const (
	RuleLanesExclusive        = "lanes-exclusive"
	RuleLanesPair             = "lanes-pair"
	RuleMachineExclusive      = "machine-exclusive"
	RuleTexterSlayerExclusive = "texter-slayer-exclusive"
)

var ruleText = map[string]string{
	RuleLanesExclusive:        `enable either "Lanes" or ("Lane 1" + "Lane 2"), not both`,
	RuleLanesPair:             `"Lane 1" and "Lane 2" must be enabled together`,
	RuleMachineExclusive:      `"Machine" cannot be enabled with Shots/Milk roles`,
	RuleTexterSlayerExclusive: `"Texter / Slayer" cannot be enabled with "Texter" or "Slayer"`,
}

// ConfigurationError reports role combinations that may not be enabled
// together in one block.
type ConfigurationError struct {
	Rules []string
}

func (e *ConfigurationError) Error() string {
	parts := make([]string, 0, len(e.Rules))
	for _, r := range e.Rules {
		parts = append(parts, fmt.Sprintf("%s: %s", r, ruleText[r]))
	}
	return "invalid roles: " + strings.Join(parts, "; ")
}

// Violates reports whether rule is among the violations.
func (e *ConfigurationError) Violates(rule string) bool {
	for _, r := range e.Rules {
		if r == rule {
			return true
		}
	}
	return false
}

type InsufficientPeopleError struct {
	People int
	Base   int
}

func (e *InsufficientPeopleError) Error() string {
	return fmt.Sprintf("not enough people: %d people for %d enabled roles", e.People, e.Base)
}

type UnabsorbedOverflowError struct {
	People int
	Base   int
}

func (e *UnabsorbedOverflowError) Error() string {
	return fmt.Sprintf("too many people (%d) for enabled roles (%d), and Texter/Slayer are off so extras can't be assigned", e.People, e.Base)
}

// BlockError ties a failure to the block it happened in.
type BlockError struct {
	Index int // zero based
	Start string
	End   string
	Err   error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("block %d (%s - %s): %v", e.Index+1, e.Start, e.End, e.Err)
}

func (e *BlockError) Unwrap() error { return e.Err }
