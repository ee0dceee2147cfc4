// Package roles is the static catalog of work roles a block can enable.
package roles

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies a role. The values double as the keys used in session files.
type Kind string

const (
	Machine      Kind = "machine"
	Lanes        Kind = "lanes"
	Lane1        Kind = "lane1"
	Lane2        Kind = "lane2"
	BackShots    Kind = "backShots"
	BackMilk     Kind = "backMilk"
	FrontShots   Kind = "frontShots"
	FrontMilk    Kind = "frontMilk"
	TexterSlayer Kind = "texterSlayer"
	Texter       Kind = "texter"
	Slayer       Kind = "slayer"
	Blender      Kind = "blender"
)

var ErrUnknownRole = errors.New("unknown role")

type info struct {
	label    string
	outside  bool
	overflow bool
}

// catalog order; enabled roles are always enumerated in this order
var order = []Kind{
	Machine, Lanes, Lane1, Lane2,
	BackShots, BackMilk, FrontShots, FrontMilk,
	TexterSlayer, Texter, Slayer,
	Blender,
}

var catalog = map[Kind]info{
	Machine:    {label: "Machine"},
	Lanes:      {label: "Lanes", outside: true},
	Lane1:      {label: "Lane 1", outside: true},
	Lane2:      {label: "Lane 2", outside: true},
	BackShots:  {label: "Back Shots"},
	BackMilk:   {label: "Back Milk"},
	FrontShots: {label: "Front Shots"},
	FrontMilk:  {label: "Front Milk"},
	// the combined role is not outside and never absorbs overflow
	TexterSlayer: {label: "Texter / Slayer"},
	Texter:       {label: "Texter", outside: true, overflow: true},
	Slayer:       {label: "Slayer", overflow: true},
	Blender:      {label: "Blender"},
}

var outputOrder = []Kind{
	Machine, Lanes, Lane1, Lane2,
	BackShots, BackMilk, FrontShots, FrontMilk,
	Blender, TexterSlayer, Texter, Slayer,
}

// All returns every kind in catalog order.
func All() []Kind {
	return append([]Kind(nil), order...)
}

// OutputOrder is the order roles are listed in rendered shift text.
func OutputOrder() []Kind {
	return append([]Kind(nil), outputOrder...)
}

func Parse(s string) (Kind, error) {
	k := Kind(strings.TrimSpace(s))
	if _, ok := catalog[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
	return k, nil
}

func (k Kind) Valid() bool {
	_, ok := catalog[k]
	return ok
}

func (k Kind) Label() string {
	if i, ok := catalog[k]; ok {
		return i.label
	}
	return string(k)
}

// Outside reports whether the role is subject to the outside cooldown.
func (k Kind) Outside() bool { return catalog[k].outside }

// Overflow reports whether extra people may be stacked onto the role.
func (k Kind) Overflow() bool { return catalog[k].overflow }

func (k Kind) String() string { return string(k) }

// UnmarshalText rejects keys that are not in the catalog, so yaml and json
// decoding fail early on typos.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k), nil
}

// LabelFor returns the display label of k within a block. Without the back
// split the front roles read as plain "Shots" and "Milk".
func LabelFor(k Kind, enabled Set) string {
	if !enabled.Has(BackShots) && !enabled.Has(BackMilk) {
		switch k {
		case FrontShots:
			return "Shots"
		case FrontMilk:
			return "Milk"
		}
	}
	return k.Label()
}
