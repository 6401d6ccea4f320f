package shell

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/wmspro/wmsui/pkg/clock"
	"github.com/wmspro/wmsui/pkg/icons"
	"github.com/wmspro/wmsui/pkg/middleware"
	"github.com/wmspro/wmsui/pkg/modal"
	"github.com/wmspro/wmsui/pkg/render"
	"github.com/wmspro/wmsui/pkg/toast"
	"github.com/wmspro/wmsui/pkg/vdom"
)

// Event types understood by Dispatch.
const (
	EventClick    = "click"
	EventKeyDown  = "keydown"
	EventKeyPress = "keypress"
	EventInput    = "input"
)

// SidebarExpandedClass is toggled on the sidebar by the menu button.
const SidebarExpandedClass = "expanded"

// Event is a browser event. Target is the id of the nearest element with an
// id; empty means the document itself.
type Event struct {
	Type   string `json:"type"`
	Target string `json:"target,omitempty"`
	Key    string `json:"key,omitempty"`
	Value  string `json:"value,omitempty"`
}

// Navigator sends the browser to another page.
type Navigator interface {
	Navigate(url string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(url string)

// Navigate calls f.
func (f NavigatorFunc) Navigate(url string) { f(url) }

// Handlers are the host callbacks wired by OnReady.
type Handlers struct {
	// Navigator receives search navigations. Search is not wired without it.
	Navigator Navigator
}

// effects collects what listeners did while the lock was held.
type effects struct {
	changed  bool
	navigate []string
}

type listener struct {
	node *vdom.VNode // nil listens on the document
	typ  string
	fn   func(Event, *effects)
}

// Option configures a Shell.
type Option func(*Shell)

// WithScheduler sets the clock driving toast lifecycles.
func WithScheduler(s clock.Scheduler) Option {
	return func(sh *Shell) { sh.sched = s }
}

// WithIcons sets the icon pass run after content injection.
func WithIcons(r icons.Renderer) Option {
	return func(sh *Shell) { sh.icons = r }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(sh *Shell) { sh.logger = l }
}

// WithMetrics records dispatched events, toasts and navigations.
func WithMetrics(m *middleware.Metrics) Option {
	return func(sh *Shell) { sh.metrics = m }
}

// WithToastTiming overrides how long toasts stay and how long they fade.
func WithToastTiming(hold, fade time.Duration) Option {
	return func(sh *Shell) {
		sh.hold = hold
		sh.fade = fade
	}
}

// WithSearch sets the page and query parameter search navigates to.
func WithSearch(path, param string) Option {
	return func(sh *Shell) {
		sh.searchPath = path
		sh.searchParam = param
	}
}

// OnRender registers a callback run, outside the lock, whenever the page
// changed in a way the browser must see.
func OnRender(fn func()) Option {
	return func(sh *Shell) { sh.onRender = fn }
}

// Shell wires the page utilities to one page tree.
type Shell struct {
	mu   sync.Mutex
	root *vdom.VNode
	s    Surfaces

	modal   *modal.Modal
	toaster *toast.Toaster

	sched       clock.Scheduler
	icons       icons.Renderer
	logger      *slog.Logger
	metrics     *middleware.Metrics
	hold        time.Duration
	fade        time.Duration
	searchPath  string
	searchParam string
	onRender    func()

	listeners []*listener
	navigator Navigator
	teardown  func()
}

// New creates a Shell over root. The surfaces should be nodes of root.
func New(root *vdom.VNode, s Surfaces, opts ...Option) *Shell {
	sh := &Shell{
		root:        root,
		s:           s,
		sched:       clock.Real(),
		icons:       icons.Nop,
		logger:      slog.Default(),
		hold:        toast.DefaultHold,
		fade:        toast.DefaultFade,
		searchPath:  "/inventory",
		searchParam: "search",
	}
	for _, opt := range opts {
		opt(sh)
	}

	sh.modal = modal.New(modal.Surfaces{Overlay: s.Overlay, Title: s.Title, Content: s.Content},
		modal.WithIcons(sh.icons),
		modal.WithLocker(&sh.mu),
	)
	sh.toaster = toast.NewToaster(s.ToastContainer, sh.sched,
		toast.WithHold(sh.hold),
		toast.WithFade(sh.fade),
		toast.WithIcons(sh.icons),
		toast.WithLogger(sh.logger),
		toast.WithLocker(&sh.mu),
		toast.OnChange(func(*toast.Toast, toast.State) { sh.rendered() }),
	)
	return sh
}

// Surfaces returns the surfaces the shell was built with.
func (sh *Shell) Surfaces() Surfaces { return sh.s }

// Modal returns the page's modal.
func (sh *Shell) Modal() *modal.Modal { return sh.modal }

// Toaster returns the page's toaster.
func (sh *Shell) Toaster() *toast.Toaster { return sh.toaster }

// OnReady wires the page listeners: modal dismissal, sidebar toggle and
// global search. Listeners needing an absent surface are skipped. Calling
// OnReady again replaces the previous wiring. The returned function removes
// the listeners; it is safe to call more than once.
func (sh *Shell) OnReady(h Handlers) (teardown func()) {
	sh.mu.Lock()
	prev := sh.teardown
	sh.mu.Unlock()
	if prev != nil {
		prev()
	}

	var added []*listener
	on := func(node *vdom.VNode, typ string, fn func(Event, *effects)) {
		added = append(added, &listener{node: node, typ: typ, fn: fn})
	}

	if overlay := sh.s.Overlay; overlay != nil {
		on(overlay, EventClick, func(ev Event, fx *effects) {
			if ev.Target != "" && ev.Target == overlay.ID() {
				fx.changed = sh.closeLocked() || fx.changed
			}
		})
		on(nil, EventKeyDown, func(ev Event, fx *effects) {
			if ev.Key == "Escape" {
				fx.changed = sh.closeLocked() || fx.changed
			}
		})
	}
	if sh.s.Close != nil {
		on(sh.s.Close, EventClick, func(_ Event, fx *effects) {
			fx.changed = sh.closeLocked() || fx.changed
		})
	}

	if sh.s.MenuButton != nil && sh.s.Sidebar != nil {
		sidebar := sh.s.Sidebar
		on(sh.s.MenuButton, EventClick, func(_ Event, fx *effects) {
			sidebar.ToggleClass(SidebarExpandedClass)
			fx.changed = true
		})
	}

	if search := sh.s.Search; search != nil {
		on(search, EventInput, func(ev Event, _ *effects) {
			search.SetAttr("value", ev.Value)
		})
		if h.Navigator != nil {
			on(search, EventKeyPress, func(ev Event, fx *effects) {
				if ev.Key != "Enter" {
					return
				}
				q := ev.Value
				if q == "" {
					q = search.AttrString("value")
				}
				q = strings.TrimSpace(q)
				if q == "" {
					return
				}
				fx.navigate = append(fx.navigate, SearchURL(sh.searchPath, sh.searchParam, q))
			})
		}
	}

	sh.mu.Lock()
	sh.listeners = append(sh.listeners, added...)
	var once sync.Once
	teardown = func() {
		once.Do(func() {
			sh.mu.Lock()
			defer sh.mu.Unlock()
			kept := sh.listeners[:0]
			for _, l := range sh.listeners {
				if !containsListener(added, l) {
					kept = append(kept, l)
				}
			}
			sh.listeners = kept
			sh.teardown = nil
		})
	}
	sh.teardown = teardown
	sh.navigator = h.Navigator
	sh.mu.Unlock()

	sh.logger.Debug("shell ready", "listeners", len(added))
	return teardown
}

func containsListener(ls []*listener, l *listener) bool {
	for _, have := range ls {
		if have == l {
			return true
		}
	}
	return false
}

// closeLocked hides the modal and reports whether it was showing.
func (sh *Shell) closeLocked() bool {
	if sh.s.Overlay == nil || !sh.s.Overlay.HasClass(modal.ShowClass) {
		return false
	}
	sh.modal.CloseLocked()
	return true
}

// Dispatch delivers ev to the listeners on its target and every ancestor,
// innermost first, then to document listeners. An unknown target is treated
// as the document. Reports whether any listener ran.
func (sh *Shell) Dispatch(ev Event) bool {
	sh.metrics.RecordEvent(ev.Type)

	var fx effects
	handled := false

	sh.mu.Lock()
	var target *vdom.VNode
	if ev.Target != "" {
		target = sh.root.FindByID(ev.Target)
	}
	for n := target; n != nil; n = n.Parent() {
		for _, l := range sh.listeners {
			if l.node == n && l.typ == ev.Type {
				l.fn(ev, &fx)
				handled = true
			}
		}
	}
	for _, l := range sh.listeners {
		if l.node == nil && l.typ == ev.Type {
			l.fn(ev, &fx)
			handled = true
		}
	}
	nav := sh.navigator
	sh.mu.Unlock()

	if fx.changed {
		sh.rendered()
	}
	for _, url := range fx.navigate {
		if nav == nil {
			break
		}
		sh.logger.Info("search", "url", url)
		sh.metrics.RecordNavigation()
		nav.Navigate(url)
	}
	return handled
}

// OpenModal shows the modal with title and content.
func (sh *Shell) OpenModal(title string, content modal.Content) error {
	if err := sh.modal.Open(title, content); err != nil {
		return err
	}
	sh.rendered()
	return nil
}

// CloseModal hides the modal.
func (sh *Shell) CloseModal() {
	sh.mu.Lock()
	changed := sh.closeLocked()
	sh.mu.Unlock()
	if changed {
		sh.rendered()
	}
}

// Notify shows a toast. Shell implements toast.Notifier.
func (sh *Shell) Notify(message string, t toast.Type) *toast.Toast {
	n := sh.toaster.Notify(message, t)
	if n != nil {
		sh.metrics.RecordToast(string(t))
	}
	return n
}

// ToggleSidebar flips the sidebar's expanded class and reports the new
// state.
func (sh *Shell) ToggleSidebar() bool {
	if sh.s.Sidebar == nil {
		return false
	}
	sh.mu.Lock()
	on := sh.s.Sidebar.ToggleClass(SidebarExpandedClass)
	sh.mu.Unlock()
	sh.rendered()
	return on
}

// Render returns the whole page as HTML.
func (sh *Shell) Render() (string, error) {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	return render.String(sh.root)
}

// RenderBody returns the inner HTML of the page body, or of the root when
// the page has no body.
func (sh *Shell) RenderBody() (string, error) {
	sh.mu.Lock()
	defer sh.mu.Unlock()

	body := sh.root
	sh.root.Walk(func(n *vdom.VNode) bool {
		if n.Kind == vdom.KindElement && n.Tag == "body" {
			body = n
			return false
		}
		return true
	})

	var b strings.Builder
	r := render.NewRenderer(render.RendererConfig{})
	for _, c := range body.Children {
		if err := r.RenderToWriter(&b, c); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

// Locked runs fn with the page lock held, for hosts that mutate the tree
// directly.
func (sh *Shell) Locked(fn func(root *vdom.VNode)) {
	sh.mu.Lock()
	fn(sh.root)
	sh.mu.Unlock()
	sh.rendered()
}

func (sh *Shell) rendered() {
	if sh.onRender != nil {
		sh.onRender()
	}
}
