// Package modal controls the page's singleton modal dialog.
package modal

import (
	"errors"
	"sync"

	"github.com/wmspro/wmsui/pkg/icons"
	"github.com/wmspro/wmsui/pkg/vdom"
)

// ShowClass is the overlay class that makes the modal visible.
const ShowClass = "show"

// ErrMissingSurface is returned by Open when the overlay, title or content
// node was not provided.
var ErrMissingSurface = errors.New("modal: missing overlay, title or content surface")

// Surfaces are the nodes the modal mutates.
type Surfaces struct {
	Overlay *vdom.VNode
	Title   *vdom.VNode
	Content *vdom.VNode
}

// Content is what Open places in the modal body: either a node built by the
// caller or an HTML string.
type Content interface {
	node() *vdom.VNode
}

type nodeContent struct{ n *vdom.VNode }

func (c nodeContent) node() *vdom.VNode { return c.n }

type htmlContent string

func (c htmlContent) node() *vdom.VNode {
	if c == "" {
		return nil
	}
	return vdom.Raw(string(c))
}

// Node wraps a pre-built element or fragment. A fragment's children are moved
// into the modal body.
func Node(n *vdom.VNode) Content { return nodeContent{n} }

// HTML wraps an HTML string that is injected verbatim. It is not sanitised;
// only trusted callers may pass markup.
func HTML(s string) Content { return htmlContent(s) }

// Modal shows and hides the dialog.
type Modal struct {
	s     Surfaces
	icons icons.Renderer
	mu    sync.Locker
}

// Option configures a Modal.
type Option func(*Modal)

// WithIcons sets the icon pass run after content is injected.
func WithIcons(r icons.Renderer) Option {
	return func(m *Modal) { m.icons = r }
}

// WithLocker makes the modal serialise surface mutations on l.
func WithLocker(l sync.Locker) Option {
	return func(m *Modal) { m.mu = l }
}

// New creates a Modal over the given surfaces.
func New(s Surfaces, opts ...Option) *Modal {
	m := &Modal{s: s, icons: icons.Nop, mu: &sync.Mutex{}}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Open sets the title, replaces the body with content and shows the modal.
// Prior body content is cleared, never appended to.
func (m *Modal) Open(title string, content Content) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.OpenLocked(title, content)
}

// OpenLocked is Open for callers already holding the modal's locker.
func (m *Modal) OpenLocked(title string, content Content) error {
	if m.s.Overlay == nil || m.s.Title == nil || m.s.Content == nil {
		return ErrMissingSurface
	}

	m.s.Title.SetText(title)
	m.s.Content.ClearChildren()
	if content != nil {
		m.s.Content.AppendChild(content.node())
	}

	m.s.Overlay.AddClass(ShowClass)
	m.icons.Render(m.s.Content)
	return nil
}

// Close hides the modal. Its content is left in place.
func (m *Modal) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CloseLocked()
}

// CloseLocked is Close for callers already holding the modal's locker.
func (m *Modal) CloseLocked() {
	if m.s.Overlay != nil {
		m.s.Overlay.RemoveClass(ShowClass)
	}
}

// IsOpen reports whether the overlay is showing.
func (m *Modal) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.s.Overlay != nil && m.s.Overlay.HasClass(ShowClass)
}

// Overlay returns the overlay node, used by hosts to route dismiss clicks.
func (m *Modal) Overlay() *vdom.VNode { return m.s.Overlay }
