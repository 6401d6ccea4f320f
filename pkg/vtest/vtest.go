package vtest

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/wmspro/wmsui/pkg/clock"
	"github.com/wmspro/wmsui/pkg/render"
	"github.com/wmspro/wmsui/pkg/shell"
	"github.com/wmspro/wmsui/pkg/toast"
	"github.com/wmspro/wmsui/pkg/vdom"
)

// Epoch is the start time of every virtual clock built here.
var Epoch = time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC)

// Page is a built test page.
type Page struct {
	Root     *vdom.VNode
	Shell    *shell.Shell
	Clock    *clock.Virtual
	Nav      *Navigator
	Teardown func()

	mu      sync.Mutex
	renders int
}

// Renders returns how many times the shell asked for a re-render.
func (p *Page) Renders() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.renders
}

// Click dispatches a click on the element with the given id.
func (p *Page) Click(id string) bool {
	return p.Shell.Dispatch(shell.Event{Type: shell.EventClick, Target: id})
}

// Key dispatches a keydown on the document.
func (p *Page) Key(key string) bool {
	return p.Shell.Dispatch(shell.Event{Type: shell.EventKeyDown, Key: key})
}

// Search types query into the global search field and presses Enter.
func (p *Page) Search(query string) {
	p.Shell.Dispatch(shell.Event{Type: shell.EventInput, Target: shell.IDGlobalSearch, Value: query})
	p.Shell.Dispatch(shell.Event{Type: shell.EventKeyPress, Target: shell.IDGlobalSearch, Key: "Enter"})
}

// PageBuilder allows fluent construction of test pages.
type PageBuilder struct {
	title   string
	without []string
	opts    []shell.Option
	ready   bool
	noNav   bool
}

// NewPage creates a new page builder for testing.
//
// Example:
//
//	page := vtest.NewPage().Ready().Build()
func NewPage() *PageBuilder {
	return &PageBuilder{title: "WMS Pro"}
}

// Without removes the elements with the given ids from the page before the
// surfaces are discovered.
//
// Example:
//
//	page := vtest.NewPage().Without(shell.IDToastContainer).Build()
func (b *PageBuilder) Without(ids ...string) *PageBuilder {
	b.without = append(b.without, ids...)
	return b
}

// WithToastTiming sets toast hold and fade durations.
func (b *PageBuilder) WithToastTiming(hold, fade time.Duration) *PageBuilder {
	b.opts = append(b.opts, shell.WithToastTiming(hold, fade))
	return b
}

// WithOption passes an extra option to the shell.
func (b *PageBuilder) WithOption(opt shell.Option) *PageBuilder {
	b.opts = append(b.opts, opt)
	return b
}

// Ready wires the page listeners with a recording navigator.
func (b *PageBuilder) Ready() *PageBuilder {
	b.ready = true
	return b
}

// ReadyWithoutNavigator wires the page listeners without a navigator.
func (b *PageBuilder) ReadyWithoutNavigator() *PageBuilder {
	b.ready = true
	b.noNav = true
	return b
}

// Build returns the page.
func (b *PageBuilder) Build() *Page {
	root := shell.DefaultPage(b.title)
	for _, id := range b.without {
		if n := root.FindByID(id); n != nil {
			n.Remove()
		}
	}

	p := &Page{Root: root, Clock: clock.NewVirtual(Epoch), Nav: &Navigator{}}
	opts := append([]shell.Option{
		shell.WithScheduler(p.Clock),
		shell.OnRender(func() {
			p.mu.Lock()
			p.renders++
			p.mu.Unlock()
		}),
	}, b.opts...)
	p.Shell = shell.New(root, shell.SurfacesFromPage(root), opts...)

	if b.ready {
		h := shell.Handlers{}
		if !b.noNav {
			h.Navigator = p.Nav
		}
		p.Teardown = p.Shell.OnReady(h)
	}
	return p
}

// Navigator records navigations.
type Navigator struct {
	mu   sync.Mutex
	urls []string
}

// Navigate records url.
func (n *Navigator) Navigate(url string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.urls = append(n.urls, url)
}

// URLs returns the recorded navigations in order.
func (n *Navigator) URLs() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.urls...)
}

// Shown is one recorded toast.
type Shown struct {
	Message string
	Type    toast.Type
}

// Notifier records toasts instead of showing them.
type Notifier struct {
	mu    sync.Mutex
	shown []Shown
}

// Notify records the toast. It returns nil.
func (n *Notifier) Notify(message string, t toast.Type) *toast.Toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.shown = append(n.shown, Shown{Message: message, Type: t})
	return nil
}

// Shown returns the recorded toasts in order.
func (n *Notifier) Shown() []Shown {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Shown(nil), n.shown...)
}

// RenderToString renders a VNode and returns the HTML string.
//
// Example:
//
//	html := vtest.RenderToString(page.Root)
func RenderToString(node *vdom.VNode) string {
	html, err := render.String(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that rendered output contains expected substring.
func ExpectContains(t testing.TB, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t testing.TB, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectClass asserts that the element with the given id has class c.
func ExpectClass(t testing.TB, root *vdom.VNode, id, c string) {
	t.Helper()
	n := root.FindByID(id)
	if n == nil {
		t.Errorf("element #%s not found", id)
		return
	}
	if !n.HasClass(c) {
		t.Errorf("expected #%s to have class %q, got %q", id, c, n.AttrString("class"))
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
