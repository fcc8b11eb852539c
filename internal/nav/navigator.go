package nav

// Scroller moves the viewport. smooth requests an animated scroll.
type Scroller interface {
	ScrollTo(top float64, smooth bool)
}

// Navigator scrolls the page to a named section.
type Navigator struct {
	layout   Layout
	scroller Scroller
}

func NewNavigator(l Layout, s Scroller) *Navigator {
	return &Navigator{layout: l, scroller: s}
}

// Go smooth-scrolls so the anchor with the given id sits HeaderOffset
// below the top of the viewport. Ids with no mounted anchor are ignored.
func (n *Navigator) Go(id string) {
	b, ok := n.layout.Bounds(id)
	if !ok {
		return
	}
	n.scroller.ScrollTo(b.Top-HeaderOffset, true)
}
