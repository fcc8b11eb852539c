//go:build js && wasm

// Command wasm is the browser half of the portfolio. It binds the page's
// DOM to the nav and theme packages: the scroll tracker highlights the
// section in view, nav links smooth-scroll below the fixed header, and
// the theme button flips and persists the light/dark preference.
//
// Build with:
//
//	GOOS=js GOARCH=wasm go build -o internal/server/static/portfolio.wasm ./cmd/wasm
package main

import (
	"syscall/js"

	"github.com/YahyaAf/portfolio/internal/nav"
	"github.com/YahyaAf/portfolio/internal/theme"
)

// page adapts the live document to nav.Layout, nav.Scroller and
// nav.EventSource.
type page struct {
	win js.Value
	doc js.Value
}

func (p page) ScrollY() float64 { return p.win.Get("scrollY").Float() }

func (p page) Bounds(id string) (nav.Bounds, bool) {
	el := p.doc.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return nav.Bounds{}, false
	}
	return nav.Bounds{
		Top:    el.Get("offsetTop").Float(),
		Height: el.Get("offsetHeight").Float(),
	}, true
}

func (p page) ScrollTo(top float64, smooth bool) {
	behavior := "auto"
	if smooth {
		behavior = "smooth"
	}
	p.win.Call("scrollTo", map[string]any{"top": top, "behavior": behavior})
}

func (p page) OnScroll(fn func()) func() {
	return listen(p.win, "scroll", func(js.Value) { fn() })
}

// listen adds an event listener and returns the func that removes it and
// releases the callback.
func listen(target js.Value, event string, fn func(ev js.Value)) func() {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		var ev js.Value
		if len(args) > 0 {
			ev = args[0]
		}
		fn(ev)
		return nil
	})
	target.Call("addEventListener", event, cb)
	return func() {
		target.Call("removeEventListener", event, cb)
		cb.Release()
	}
}

func each(list js.Value, fn func(el js.Value)) {
	for i := 0; i < list.Length(); i++ {
		fn(list.Index(i))
	}
}

func (p page) applyTheme(pref theme.Preference) {
	p.doc.Get("documentElement").Set("className", pref.Class())
	if toggle := p.doc.Call("getElementById", "theme-toggle"); !toggle.IsNull() {
		toggle.Call("setAttribute", "data-icon", pref.Icon())
	}
}

func (p page) highlight(active nav.Section) {
	each(p.doc.Call("querySelectorAll", ".site-nav [data-section]"), func(el js.Value) {
		on := el.Get("dataset").Get("section").String() == active.String()
		el.Get("classList").Call("toggle", "active", on)
		if on {
			el.Call("setAttribute", "aria-current", "true")
		} else {
			el.Call("removeAttribute", "aria-current")
		}
	})
}

// mount wires the theme toggle, scroll tracker and nav links to the page
// and returns the func that detaches all of them.
func mount(p page) func() {
	var cleanups []func()

	st := theme.New(theme.NewCookieLine(
		func() string { return p.doc.Get("cookie").String() },
		func(line string) { p.doc.Set("cookie", line) },
	))
	p.applyTheme(st.Resolve())
	st.OnChange(p.applyTheme)

	if toggle := p.doc.Call("getElementById", "theme-toggle"); !toggle.IsNull() {
		cleanups = append(cleanups, listen(toggle, "click", func(ev js.Value) {
			ev.Call("preventDefault")
			st.Toggle()
		}))
		toggle.Call("removeAttribute", "hidden")
	}

	tracker := nav.NewTracker(p)
	tracker.OnChange(func(_, next nav.Section) { p.highlight(next) })
	cleanups = append(cleanups, tracker.Mount(p))

	navigator := nav.NewNavigator(p, p)
	each(p.doc.Call("querySelectorAll", "[data-section]"), func(el js.Value) {
		id := nav.Section(el.Get("dataset").Get("section").String())
		if !id.Valid() {
			return
		}
		cleanups = append(cleanups, listen(el, "click", func(ev js.Value) {
			ev.Call("preventDefault")
			navigator.Go(id.String())
		}))
	})

	return func() {
		for _, fn := range cleanups {
			fn()
		}
	}
}

func main() {
	p := page{win: js.Global(), doc: js.Global().Get("document")}
	teardown := mount(p)

	done := make(chan struct{})
	removePagehide := listen(p.win, "pagehide", func(ev js.Value) {
		// Pages kept in the back/forward cache come back with us still mounted.
		if ev.Get("persisted").Bool() {
			return
		}
		teardown()
		close(done)
	})
	<-done
	removePagehide()
}
