package directory

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Seed holds the rows a store starts with.
type Seed struct {
	Users []User `yaml:"users"`
	Roles []Role `yaml:"roles"`
}

// DefaultSeed returns the two example users and two example roles every
// console session starts with.
func DefaultSeed() Seed {
	return Seed{
		Users: []User{
			{ID: 1, Name: "John Doe", Email: "john@example.com", Role: "Admin", Status: StatusActive},
			{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Role: "Manager", Status: StatusActive},
		},
		Roles: []Role{
			{ID: 1, Name: "Admin", Permissions: []string{"Full Access"}},
			{ID: 2, Name: "Manager", Permissions: []string{"Read", "Write"}},
		},
	}
}

// LoadSeed reads a YAML seed file. An empty path yields DefaultSeed.
//
//	users:
//	  - {id: 1, name: John Doe, email: john@example.com, role: Admin, status: Active}
//	roles:
//	  - {id: 1, name: Admin, permissions: [Full Access]}
func LoadSeed(path string) (Seed, error) {
	if path == "" {
		return DefaultSeed(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed: %w", err)
	}
	var s Seed
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Seed{}, fmt.Errorf("parse seed %s: %w", path, err)
	}
	for i, u := range s.Users {
		if u.Status == "" {
			continue
		}
		st, err := ParseStatus(string(u.Status))
		if err != nil {
			return Seed{}, fmt.Errorf("seed user %d: %w", u.ID, err)
		}
		s.Users[i].Status = st
	}
	return s, nil
}
