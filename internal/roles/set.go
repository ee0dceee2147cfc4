package roles

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// Set is the group of roles enabled for one block. The zero value is empty.
type Set struct {
	on map[Kind]bool
}

func NewSet(kinds ...Kind) Set {
	s := Set{on: make(map[Kind]bool, len(kinds))}
	for _, k := range kinds {
		s.on[k] = true
	}
	return s
}

func (s Set) Has(k Kind) bool { return s.on[k] }

func (s Set) Len() int { return len(s.on) }

// IsZero lets yaml omitempty drop empty sets.
func (s Set) IsZero() bool { return len(s.on) == 0 }

// Enabled lists the members in catalog order.
func (s Set) Enabled() []Kind {
	out := make([]Kind, 0, len(s.on))
	for _, k := range order {
		if s.on[k] {
			out = append(out, k)
		}
	}
	return out
}

// With returns a copy of s with k added.
func (s Set) With(k Kind) Set {
	return NewSet(append(s.Enabled(), k)...)
}

func (s Set) String() string {
	names := make([]string, 0, s.Len())
	for _, k := range s.Enabled() {
		names = append(names, string(k))
	}
	return "{" + strings.Join(names, ", ") + "}"
}

func (s *Set) UnmarshalYAML(node *yaml.Node) error {
	var kinds []Kind
	if err := node.Decode(&kinds); err != nil {
		return err
	}
	*s = NewSet(kinds...)
	return nil
}

func (s Set) MarshalYAML() (interface{}, error) {
	return s.Enabled(), nil
}

func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Enabled())
}

func (s *Set) UnmarshalJSON(b []byte) error {
	var kinds []Kind
	if err := json.Unmarshal(b, &kinds); err != nil {
		return err
	}
	*s = NewSet(kinds...)
	return nil
}

// AutoToggles returns the default roles for a block staffed by n people.
// Seven people get the six-person layout; the extra person overflows onto
// texter/slayer.
func AutoToggles(n int) Set {
	switch {
	case n <= 1:
		return Set{}
	case n == 2:
		return NewSet(Machine, Lanes)
	case n == 3:
		return NewSet(FrontShots, FrontMilk, Lanes)
	case n == 4:
		return NewSet(FrontShots, FrontMilk, Lane1, Lane2)
	case n == 5:
		return NewSet(FrontShots, FrontMilk, Lane1, Lane2, TexterSlayer)
	case n <= 7:
		return NewSet(FrontShots, FrontMilk, Lane1, Lane2, Texter, Slayer)
	default:
		return NewSet(FrontShots, FrontMilk, BackShots, BackMilk, Lane1, Lane2, Texter, Slayer)
	}
}
