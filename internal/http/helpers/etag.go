package helpers

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
)

// ETag returns a short strong ETag over parts.
func ETag(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return `"` + hex.EncodeToString(h.Sum(nil)[:8]) + `"`
}

// TagETag quotes a snapshot tag. Tags are opaque "epoch.collection.version" strings,
// so they are sent as-is and read back by IfMatchTag.
func TagETag(tag string) string {
	return `"` + tag + `"`
}

// IfMatchTag returns the unquoted If-Match value, or "" when the header is
// absent or "*".
func IfMatchTag(r *http.Request) string {
	v := strings.TrimSpace(r.Header.Get("If-Match"))
	if v == "" || v == "*" {
		return ""
	}
	return strings.Trim(strings.TrimPrefix(v, "W/"), `"`)
}

// NotModified reports whether If-None-Match lists etag (weak comparison).
func NotModified(r *http.Request, etag string) bool {
	v := strings.TrimSpace(r.Header.Get("If-None-Match"))
	if v == "" {
		return false
	}
	if v == "*" {
		return true
	}
	for _, cand := range strings.Split(v, ",") {
		if strings.TrimPrefix(strings.TrimSpace(cand), "W/") == etag {
			return true
		}
	}
	return false
}
