package directory

import (
	"fmt"
	"slices"
	"strings"
)

// Status is the lifecycle state of a user account.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// ParseStatus accepts the two known states, case-insensitively.
func ParseStatus(s string) (Status, error) {
	switch {
	case strings.EqualFold(s, string(StatusActive)):
		return StatusActive, nil
	case strings.EqualFold(s, string(StatusInactive)):
		return StatusInactive, nil
	default:
		return "", fmt.Errorf("directory: unknown status %q", s)
	}
}

// User is an operator-managed account record.
// Role holds a role name but is not checked against the role collection.
type User struct {
	ID     int64  `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Email  string `json:"email" yaml:"email"`
	Role   string `json:"role" yaml:"role"`
	Status Status `json:"status" yaml:"status"`
}

func (u User) key() int64   { return u.ID }
func (u User) clone() User { return u }

// UserInput carries the operator-supplied fields of a new user.
type UserInput struct {
	Name  string
	Email string
	Role  string
}

// Role is a named, ordered list of permission labels.
type Role struct {
	ID          int64    `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Permissions []string `json:"permissions" yaml:"permissions"`
}

func (r Role) key() int64 { return r.ID }

func (r Role) clone() Role {
	r.Permissions = clonePermissions(r.Permissions)
	return r
}

// RoleInput carries the operator-supplied fields of a new role.
type RoleInput struct {
	Name        string
	Permissions []string
}

// clonePermissions keeps nil as nil and never aliases the caller's backing array.
func clonePermissions(p []string) []string {
	if p == nil {
		return nil
	}
	return slices.Clone(p)
}
