package suftree

import "errors"

// ErrInvalidArgument is returned when a required argument was absent —
// currently this only arises from passing a nil *Tree to
// NewCachedTree.
var ErrInvalidArgument = errors.New("suftree: argument required")

// ErrInvalidInput is returned when a text or pattern contains the
// reserved sentinel byte. Construction failures leave no partial tree
// observable: Build returns a nil *Tree alongside this error.
var ErrInvalidInput = errors.New("suftree: input contains reserved sentinel byte")

// containsSentinel reports whether s carries the reserved sentinel
// byte anywhere in it.
func containsSentinel(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == sentinel {
			return true
		}
	}
	return false
}
