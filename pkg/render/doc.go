// Package render serialises vdom surfaces to HTML.
//
// The bridge server uses it to push the current page state to the browser
// after every dispatched event, and to produce the initial page document.
//
//	html, err := render.String(page)
//
// Text and attribute values are escaped. Raw nodes (modal content supplied as
// an HTML string) are written verbatim.
package render
