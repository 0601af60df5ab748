// Package directory holds the authoritative in-memory user and role
// collections of the console and the only operations allowed to change them.
//
// Every successful mutation publishes a new immutable Snapshot and bumps its
// version, so derived views detect changes by comparing versions (or tags)
// instead of contents. Edits and deletes that match nothing publish nothing.
//
// Ids come from a per-collection counter and are never reused, even after a
// delete. User.Role is a free-text label; it is not checked against the role
// collection.
package directory
