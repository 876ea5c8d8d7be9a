// Package collision tracks whether two distinct inputs produce the same
// derived key, flagging the second and later occurrences so the caller can
// disambiguate them.
package collision

import "errors"

// ErrAlreadyTracked is returned by Track when the exact same (key, label)
// pair has already been recorded, which signals a caller bug (the same
// column processed twice) rather than a genuine collision between two
// distinct columns.
var ErrAlreadyTracked = errors.New("collision: key and label already tracked together")

// Tracker records which label first claimed a derived key and flags
// collisions: a later Track call for the same key but a different label.
type Tracker struct {
	owners       map[string]string
	orderedKeys  []string
	hasCollision bool
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{owners: make(map[string]string)}
}

// Track records that label derives key. It returns true if this call
// detected a collision: key was already claimed by a different label. A
// repeat call with the identical (key, label) pair returns
// ErrAlreadyTracked instead, since that indicates the caller tracked the
// same item twice rather than two distinct items colliding.
func (t *Tracker) Track(key, label string) (collided bool, err error) {
	if existing, ok := t.owners[key]; ok {
		if existing == label {
			return false, ErrAlreadyTracked
		}
		t.hasCollision = true
		return true, nil
	}

	t.owners[key] = label
	t.orderedKeys = append(t.orderedKeys, key)
	return false, nil
}

// HasCollision reports whether any Track call has detected a collision.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Count returns the number of distinct keys tracked.
func (t *Tracker) Count() int {
	return len(t.orderedKeys)
}

// Reset clears all tracked state, preserving the map's capacity for reuse.
func (t *Tracker) Reset() {
	for k := range t.owners {
		delete(t.owners, k)
	}
	t.orderedKeys = t.orderedKeys[:0]
	t.hasCollision = false
}
