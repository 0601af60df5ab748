// Package util holds small helpers shared by the daemon and the audit trail.
package util

import "strings"

// MaskEmail keeps the first character of the local part and of the first
// domain label: "john@example.com" becomes "j…@e….com".
func MaskEmail(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" {
		return maskWord(s)
	}
	labels := strings.Split(domain, ".")
	labels[0] = maskWord(labels[0])
	return maskWord(local) + "@" + strings.Join(labels, ".")
}

// MaskSecret hides a non-empty secret entirely.
func MaskSecret(s string) string {
	if s == "" {
		return ""
	}
	return "***"
}

func maskWord(s string) string {
	r := []rune(s)
	if len(r) <= 1 {
		return s
	}
	return string(r[0]) + "…"
}
