// Package toast shows transient notifications in the page's toast container.
//
// Each toast follows a fixed lifecycle driven by a clock.Scheduler:
//
//	created → visible → (hold) → fading → (fade) → removed
//
// With the default durations a toast is held for 4s, then plays its exit
// animation for 300ms before its node is removed from the container.
package toast

import (
	"log/slog"
	"sync"
	"time"

	"github.com/wmspro/wmsui/pkg/clock"
	"github.com/wmspro/wmsui/pkg/icons"
	"github.com/wmspro/wmsui/pkg/vdom"
)

// Type represents the toast notification type.
type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeWarning Type = "warning"
	TypeInfo    Type = "info"
)

const (
	// DefaultHold is how long a toast stays fully visible.
	DefaultHold = 4 * time.Second

	// DefaultFade is the length of the exit animation.
	DefaultFade = 300 * time.Millisecond

	// FadeAnimation is the inline animation applied when fading starts.
	FadeAnimation = "slideIn 0.3s ease reverse forwards"
)

var typeIcons = map[Type]string{
	TypeSuccess: "check-circle",
	TypeError:   "x-circle",
	TypeWarning: "alert-triangle",
	TypeInfo:    "info",
}

// Icon returns the icon name for t. Unknown types use the info icon.
func Icon(t Type) string {
	if name, ok := typeIcons[t]; ok {
		return name
	}
	return typeIcons[TypeInfo]
}

// Notifier shows a message to the user.
type Notifier interface {
	Notify(message string, t Type) *Toast
}

// Success shows a success toast.
//
//	toast.Success(n, "Product saved")
func Success(n Notifier, message string) { n.Notify(message, TypeSuccess) }

// Error shows an error toast.
func Error(n Notifier, message string) { n.Notify(message, TypeError) }

// Warning shows a warning toast.
func Warning(n Notifier, message string) { n.Notify(message, TypeWarning) }

// Info shows an info toast.
func Info(n Notifier, message string) { n.Notify(message, TypeInfo) }

// State is a toast's position in its lifecycle.
type State uint8

const (
	StateCreated State = iota
	StateVisible
	StateFading
	StateRemoved
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateVisible:
		return "visible"
	case StateFading:
		return "fading"
	case StateRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Toast is a single notification.
type Toast struct {
	Message string
	Type    Type

	toaster *Toaster
	node    *vdom.VNode
	state   State
	timer   clock.Timer
}

// State returns the toast's current lifecycle state.
func (t *Toast) State() State {
	t.toaster.mu.Lock()
	defer t.toaster.mu.Unlock()
	return t.state
}

// Node returns the toast's element.
func (t *Toast) Node() *vdom.VNode { return t.node }

// Option configures a Toaster.
type Option func(*Toaster)

// WithHold sets how long toasts stay visible before fading.
func WithHold(d time.Duration) Option {
	return func(t *Toaster) { t.hold = d }
}

// WithFade sets the exit animation length.
func WithFade(d time.Duration) Option {
	return func(t *Toaster) { t.fade = d }
}

// WithIcons sets the icon pass run after a toast is inserted.
func WithIcons(r icons.Renderer) Option {
	return func(t *Toaster) { t.icons = r }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(t *Toaster) { t.logger = l }
}

// WithLocker makes the toaster serialise surface mutations on l, which
// should be the lock guarding the rest of the page.
func WithLocker(l sync.Locker) Option {
	return func(t *Toaster) { t.mu = l }
}

// OnChange registers a callback run after every lifecycle transition,
// outside the lock. Hosts use it to push the updated surface.
func OnChange(fn func(*Toast, State)) Option {
	return func(t *Toaster) { t.onChange = fn }
}

// Toaster appends toasts to a container and drives their lifecycle.
type Toaster struct {
	container *vdom.VNode
	sched     clock.Scheduler
	hold      time.Duration
	fade      time.Duration
	icons     icons.Renderer
	logger    *slog.Logger
	mu        sync.Locker
	onChange  func(*Toast, State)

	live []*Toast
}

// NewToaster creates a Toaster for container. A nil container is allowed:
// Notify then does nothing.
func NewToaster(container *vdom.VNode, sched clock.Scheduler, opts ...Option) *Toaster {
	t := &Toaster{
		container: container,
		sched:     sched,
		hold:      DefaultHold,
		fade:      DefaultFade,
		icons:     icons.Nop,
		logger:    slog.Default(),
		mu:        &sync.Mutex{},
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.sched == nil {
		t.sched = clock.Real()
	}
	return t
}

// Notify appends a toast and starts its lifecycle. The type is applied as a
// class even when it is not one of the known types. Returns nil when there
// is no container.
func (t *Toaster) Notify(message string, typ Type) *Toast {
	if t == nil || t.container == nil {
		return nil
	}

	node := vdom.Div(vdom.Class("toast", string(typ)),
		vdom.I(vdom.Data("lucide", Icon(typ))),
		vdom.Span(message),
	)
	toast := &Toast{Message: message, Type: typ, toaster: t, node: node}

	t.mu.Lock()
	t.container.AppendChild(node)
	t.icons.Render(node)
	t.live = append(t.live, toast)
	toast.state = StateVisible
	toast.timer = t.sched.AfterFunc(t.hold, func() { t.startFade(toast) })
	t.mu.Unlock()

	t.logger.Debug("toast shown", "type", string(typ), "message", message)
	t.changed(toast, StateVisible)
	return toast
}

func (t *Toaster) startFade(toast *Toast) {
	t.mu.Lock()
	if toast.state != StateVisible {
		t.mu.Unlock()
		return
	}
	toast.state = StateFading
	toast.node.SetStyle("animation", FadeAnimation)
	toast.timer = t.sched.AfterFunc(t.fade, func() { t.remove(toast) })
	t.mu.Unlock()

	t.changed(toast, StateFading)
}

func (t *Toaster) remove(toast *Toast) {
	t.mu.Lock()
	if toast.state == StateRemoved {
		t.mu.Unlock()
		return
	}
	t.removeLocked(toast)
	t.mu.Unlock()

	t.changed(toast, StateRemoved)
}

func (t *Toaster) removeLocked(toast *Toast) {
	toast.state = StateRemoved
	toast.node.Remove()
	for i, have := range t.live {
		if have == toast {
			t.live = append(t.live[:i], t.live[i+1:]...)
			break
		}
	}
}

// Toasts returns the toasts not yet removed, in append order.
func (t *Toaster) Toasts() []*Toast {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*Toast, len(t.live))
	copy(out, t.live)
	return out
}

// Clear stops every pending lifecycle and removes all live toasts.
func (t *Toaster) Clear() {
	t.mu.Lock()
	cleared := make([]*Toast, len(t.live))
	copy(cleared, t.live)
	for _, toast := range cleared {
		if toast.timer != nil {
			toast.timer.Stop()
		}
		t.removeLocked(toast)
	}
	t.mu.Unlock()

	for _, toast := range cleared {
		t.changed(toast, StateRemoved)
	}
}

func (t *Toaster) changed(toast *Toast, s State) {
	if t.onChange != nil {
		t.onChange(toast, s)
	}
}
