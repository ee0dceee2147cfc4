package internal

import (
	"shiftrota/internal/roles"
)

// Block is one rotation period of a session. Start and End are display
// labels only.
type Block struct {
	Start  string    `yaml:"start" json:"start"`
	End    string    `yaml:"end" json:"end"`
	People []string  `yaml:"people" json:"people"`
	Roles  roles.Set `yaml:"roles,omitempty" json:"roles,omitempty"`
	// Auto derives the roles from the headcount; a block without roles is
	// treated the same way.
	Auto bool `yaml:"auto,omitempty" json:"auto,omitempty"`
}

// EnabledRoles resolves the toggles the block runs with.
func (b Block) EnabledRoles() roles.Set {
	if b.Auto || b.Roles.Len() == 0 {
		return roles.AutoToggles(len(b.People))
	}
	return b.Roles
}

type Session struct {
	Name   string   `yaml:"name,omitempty"`
	Seed   *uint64  `yaml:"seed,omitempty"`
	People []string `yaml:"people,omitempty"`
	Blocks []Block  `yaml:"blocks"`
}

// Assignment maps each role to the people filling its units, in the order
// they were committed.
type Assignment map[roles.Kind][]string

// Total counts assigned people across all roles.
func (a Assignment) Total() int {
	n := 0
	for _, names := range a {
		n += len(names)
	}
	return n
}

func (a Assignment) RoleOf(name string) (roles.Kind, bool) {
	for k, names := range a {
		for _, n := range names {
			if n == name {
				return k, true
			}
		}
	}
	return "", false
}

// BlockResult is what the reporting boundary receives for one block: either
// an assignment or the error that stopped it.
type BlockResult struct {
	Index      int        `yaml:"index" json:"index"`
	Start      string     `yaml:"start" json:"start"`
	End        string     `yaml:"end" json:"end"`
	Roles      roles.Set  `yaml:"roles" json:"roles"`
	Assignment Assignment `yaml:"assignment,omitempty" json:"assignment,omitempty"`
	Err        error      `yaml:"-" json:"-"`
}

func (r BlockResult) Failed() bool { return r.Err != nil }
