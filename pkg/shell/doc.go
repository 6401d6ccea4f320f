// Package shell hosts the page-level UI utilities of a WMS page.
//
// A Shell owns one page tree and the surfaces found in it: the modal, the
// toast container, the sidebar with its menu button and the global search
// field. Browser events reach the shell through Dispatch, which runs the
// listeners registered by OnReady with DOM-style bubbling:
//
//	page := shell.DefaultPage("WMS Pro")
//	sh := shell.New(page, shell.SurfacesFromPage(page),
//	    shell.WithScheduler(clock.Real()),
//	    shell.OnRender(push),
//	)
//	teardown := sh.OnReady(shell.Handlers{Navigator: nav})
//	defer teardown()
//
//	sh.Dispatch(shell.Event{Type: shell.EventClick, Target: "mobileMenuBtn"})
//
// Every mutation of the page is serialised on the shell's mutex. The modal
// and toaster share that mutex, so timer-driven toast transitions and
// dispatched events never interleave.
package shell
