// Package theme holds the visitor's light/dark preference.
package theme

// Preference is the display mode chosen by the visitor.
type Preference string

const (
	Light Preference = "light"
	Dark  Preference = "dark"

	// Default applies when nothing valid has been stored yet.
	Default = Dark
)

// StorageKey is the key the preference is persisted under.
const StorageKey = "theme"

// ParsePreference accepts "light" or "dark".
func ParsePreference(s string) (Preference, bool) {
	switch Preference(s) {
	case Light, Dark:
		return Preference(s), true
	}
	return "", false
}

// Toggle returns the opposite preference.
func (p Preference) Toggle() Preference {
	if p == Dark {
		return Light
	}
	return Dark
}

// Icon names the glyph on the toggle: the sun while dark, the moon while
// light.
func (p Preference) Icon() string {
	if p == Dark {
		return "sun"
	}
	return "moon"
}

// Class is the root element class that selects the stylesheet variant.
func (p Preference) Class() string { return string(p) }

func (p Preference) String() string { return string(p) }

// Storage is the persistent key-value medium the preference lives in.
// In the browser this is provided by the page; the server reads it from
// the request.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// MemoryStorage is a map-backed Storage.
type MemoryStorage map[string]string

func (m MemoryStorage) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MemoryStorage) Set(key, value string) { m[key] = value }

// State owns the preference for one page load. The stored value is read
// once by Resolve; until then Current reports false so the toggle can
// stay hidden instead of flashing the wrong icon.
type State struct {
	store     Storage
	pref      Preference
	resolved  bool
	listeners []func(Preference)
}

func New(store Storage) *State {
	return &State{store: store}
}

// Resolve reads the stored preference, falling back to Default for a
// missing or unrecognised value. Later calls return the current value
// without touching the store.
func (s *State) Resolve() Preference {
	if s.resolved {
		return s.pref
	}
	s.pref = Default
	if v, ok := s.store.Get(StorageKey); ok {
		if p, ok := ParsePreference(v); ok {
			s.pref = p
		}
	}
	s.resolved = true
	return s.pref
}

// Current returns the preference and whether it has been resolved.
func (s *State) Current() (Preference, bool) {
	return s.pref, s.resolved
}

// OnChange registers fn to run after every toggle.
func (s *State) OnChange(fn func(Preference)) {
	s.listeners = append(s.listeners, fn)
}

// Toggle flips the preference, persists it and notifies listeners.
func (s *State) Toggle() Preference {
	next := s.Resolve().Toggle()
	s.pref = next
	s.store.Set(StorageKey, string(next))
	for _, fn := range s.listeners {
		fn(next)
	}
	return next
}
