// Package nav keeps the navigation bar in step with the page: it tracks
// which section is in view while the visitor scrolls and scrolls to a
// section on request. The page itself is reached only through the
// Layout, Scroller and EventSource interfaces, so the same code drives
// the browser client and the tests.
package nav

import "sync"

const (
	// Lookahead is added to the scroll offset before testing section
	// bounds, so a section counts as active slightly before its top
	// reaches the viewport edge.
	Lookahead = 100

	// HeaderOffset is the height reserved for the fixed header when
	// scrolling a section into view.
	HeaderOffset = 80
)

// Bounds is the vertical extent of a section in page coordinates.
type Bounds struct {
	Top    float64
	Height float64
}

// Contains reports whether y lies in [Top, Top+Height).
func (b Bounds) Contains(y float64) bool {
	return y >= b.Top && y < b.Top+b.Height
}

// Layout exposes the parts of the mounted page the tracker reads.
type Layout interface {
	ScrollY() float64
	// Bounds returns false when no anchor with the id is mounted.
	Bounds(id string) (Bounds, bool)
}

// EventSource delivers scroll notifications. The returned func removes
// the listener.
type EventSource interface {
	OnScroll(fn func()) (remove func())
}

// Locate returns the first section, in declaration order, whose bounds
// contain the scroll offset plus Lookahead. It returns false when the
// point falls outside every mounted section.
func Locate(l Layout) (Section, bool) {
	point := l.ScrollY() + Lookahead
	for _, s := range Sections {
		b, ok := l.Bounds(string(s))
		if !ok {
			continue
		}
		if b.Contains(point) {
			return s, true
		}
	}
	return "", false
}

// Tracker owns the active section. It is the only writer; everything
// else observes it through Active or OnChange. A Tracker is meant to be
// driven from a single goroutine.
type Tracker struct {
	layout    Layout
	active    Section
	observers []func(prev, next Section)
	listener  *listener
}

type listener struct {
	remove func()
	once   sync.Once
}

func (l *listener) detach() { l.once.Do(l.remove) }

// NewTracker returns a tracker whose active section is Home.
func NewTracker(l Layout) *Tracker {
	return &Tracker{layout: l, active: Home}
}

func (t *Tracker) Active() Section { return t.active }

// OnChange registers fn to be called whenever the active section changes.
func (t *Tracker) OnChange(fn func(prev, next Section)) {
	t.observers = append(t.observers, fn)
}

// Update re-reads the layout and returns the active section. When the
// point is outside every section the previous value is kept.
func (t *Tracker) Update() Section {
	next, ok := Locate(t.layout)
	if !ok || next == t.active {
		return t.active
	}
	prev := t.active
	t.active = next
	for _, fn := range t.observers {
		fn(prev, next)
	}
	return t.active
}

// Mount installs Update as the scroll listener of src and returns the
// matching unmount func, which is safe to call more than once. Mounting
// again first removes the earlier listener.
func (t *Tracker) Mount(src EventSource) (unmount func()) {
	if t.listener != nil {
		t.listener.detach()
	}
	l := &listener{remove: src.OnScroll(func() { t.Update() })}
	t.listener = l
	return func() {
		l.detach()
		if t.listener == l {
			t.listener = nil
		}
	}
}

func (t *Tracker) mounted() bool { return t.listener != nil }
