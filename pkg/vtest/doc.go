// Package vtest provides testing helpers for pages built on the shell.
//
// The vtest package reduces boilerplate when testing page behaviour by
// providing a fluent page builder, a virtual clock, recording navigators and
// notifiers, and render assertions.
//
// # Quick Start
//
//	func TestSearch(t *testing.T) {
//	    page := vtest.NewPage().Ready().Build()
//	    page.Shell.Dispatch(shell.Event{Type: "keypress", Target: "globalSearch", Key: "Enter", Value: "widget"})
//	    assert.Equal(t, []string{"/inventory?search=widget"}, page.Nav.URLs())
//	}
//
// # Fluent Page Builder
//
// The builder starts from the default layout and lets tests remove surfaces
// or change timing:
//
//	page := vtest.NewPage().
//	    Without(shell.IDSidebar).
//	    WithToastTiming(time.Second, 100*time.Millisecond).
//	    Ready().
//	    Build()
//
// # Time
//
// Every page runs on a clock.Virtual starting at a fixed instant. Advance it
// to drive toast lifecycles:
//
//	page.Shell.Notify("Saved", toast.TypeSuccess)
//	page.Clock.Advance(4300 * time.Millisecond)
//
// # Render Assertions
//
// Assert on rendered HTML output:
//
//	vtest.ExpectContains(t, page.Root, `class="toast success"`)
//	vtest.ExpectNotContains(t, page.Root, "modal-overlay show")
package vtest
