// Package query implements case-insensitive substring search over users.
package query

import (
	"strings"

	"github.com/dropDatabas3/rbacconsole/internal/directory"
)

// Normalize folds a term for comparison and cache keying.
func Normalize(s string) string {
	return strings.ToLower(s)
}

// Filter returns, in their original order, the users whose name or email
// contains term, ignoring case. An empty term keeps every user. The input
// slice is not modified.
func Filter(users []directory.User, term string) []directory.User {
	out := make([]directory.User, 0, len(users))
	for _, i := range matchPositions(users, Normalize(term)) {
		out = append(out, users[i])
	}
	return out
}

func matchPositions(users []directory.User, needle string) []int {
	pos := make([]int, 0, len(users))
	for i, u := range users {
		if matches(u, needle) {
			pos = append(pos, i)
		}
	}
	return pos
}

func matches(u directory.User, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(Normalize(u.Name), needle) ||
		strings.Contains(Normalize(u.Email), needle)
}
