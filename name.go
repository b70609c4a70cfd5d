package bemu

import "sync"

// Name identifies an element. Names are interned so that repeated lookups of
// the same identifier share storage; two Names are equal when their strings are.
type Name struct{ s string }

// NewName returns the interned Name for s.
func NewName(s string) Name { return Name{s: internString(s)} }

func (n Name) String() string { return n.s }

// IsZero reports whether n is the empty name.
func (n Name) IsZero() bool { return n.s == "" }

// simple string interner for element names
var (
	_internMu   sync.RWMutex
	_internPool = map[string]string{}
)

func internString(s string) string {
	_internMu.RLock()
	if v, ok := _internPool[s]; ok {
		_internMu.RUnlock()
		return v
	}
	_internMu.RUnlock()

	_internMu.Lock()
	if v, ok := _internPool[s]; ok { // double-check
		_internMu.Unlock()
		return v
	}
	_internPool[s] = s
	_internMu.Unlock()
	return s
}
