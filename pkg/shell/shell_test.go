package shell_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wmspro/wmsui/pkg/modal"
	"github.com/wmspro/wmsui/pkg/shell"
	"github.com/wmspro/wmsui/pkg/toast"
	"github.com/wmspro/wmsui/pkg/vdom"
	"github.com/wmspro/wmsui/pkg/vtest"
)

func TestSurfacesFromDefaultPage(t *testing.T) {
	root := shell.DefaultPage("WMS Pro")
	s := shell.SurfacesFromPage(root)

	for name, n := range map[string]*vdom.VNode{
		"overlay": s.Overlay, "modal": s.Modal, "title": s.Title, "content": s.Content,
		"close": s.Close, "toasts": s.ToastContainer, "menu": s.MenuButton,
		"sidebar": s.Sidebar, "search": s.Search,
	} {
		assert.NotNil(t, n, name)
	}
	assert.True(t, s.Overlay.Contains(s.Close))
}

func TestModalDismissal(t *testing.T) {
	tests := []struct {
		name   string
		event  shell.Event
		closes bool
	}{
		{"overlay self click", shell.Event{Type: shell.EventClick, Target: shell.IDModalOverlay}, true},
		{"click inside dialog", shell.Event{Type: shell.EventClick, Target: shell.IDModalContent}, false},
		{"click on dialog", shell.Event{Type: shell.EventClick, Target: shell.IDModal}, false},
		{"close control", shell.Event{Type: shell.EventClick, Target: shell.IDModalClose}, true},
		{"escape", shell.Event{Type: shell.EventKeyDown, Key: "Escape"}, true},
		{"escape from search", shell.Event{Type: shell.EventKeyDown, Target: shell.IDGlobalSearch, Key: "Escape"}, true},
		{"other key", shell.Event{Type: shell.EventKeyDown, Key: "Enter"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := vtest.NewPage().Ready().Build()
			require.NoError(t, page.Shell.OpenModal("Edit Product", modal.HTML("<p>form</p>")))
			require.True(t, page.Shell.Modal().IsOpen())

			page.Shell.Dispatch(tt.event)

			assert.Equal(t, !tt.closes, page.Shell.Modal().IsOpen())
		})
	}
}

func TestModalOpenTwice(t *testing.T) {
	page := vtest.NewPage().Ready().Build()

	require.NoError(t, page.Shell.OpenModal("First", modal.Node(vdom.P("one"))))
	require.NoError(t, page.Shell.OpenModal("Second", modal.Node(vdom.P("two"))))

	content := page.Root.FindByID(shell.IDModalContent)
	assert.Equal(t, "Second", page.Root.FindByID(shell.IDModalTitle).TextContent())
	assert.Len(t, content.Children, 1)
	assert.Equal(t, "two", content.TextContent())
}

func TestEscapeWithClosedModalDoesNotRender(t *testing.T) {
	page := vtest.NewPage().Ready().Build()

	assert.True(t, page.Key("Escape"))
	assert.Zero(t, page.Renders())
}

func TestSidebarToggle(t *testing.T) {
	page := vtest.NewPage().Ready().Build()
	sidebar := page.Root.FindByID(shell.IDSidebar)

	page.Click(shell.IDMobileMenuBtn)
	assert.True(t, sidebar.HasClass(shell.SidebarExpandedClass))
	assert.True(t, sidebar.HasClass("sidebar"))

	page.Click(shell.IDMobileMenuBtn)
	assert.False(t, sidebar.HasClass(shell.SidebarExpandedClass))
	assert.Equal(t, 2, page.Renders())
}

func TestSidebarNeedsBothSurfaces(t *testing.T) {
	page := vtest.NewPage().Without(shell.IDSidebar).Ready().Build()

	assert.False(t, page.Click(shell.IDMobileMenuBtn))
}

func TestSearch(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"widget 9", []string{"/inventory?search=widget%209"}},
		{"  bolts  ", []string{"/inventory?search=bolts"}},
		{"a&b=c/d", []string{"/inventory?search=a%26b%3Dc%2Fd"}},
		{"it's (new)!", []string{"/inventory?search=it's%20(new)!"}},
		{"   ", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			page := vtest.NewPage().Ready().Build()
			page.Search(tt.query)
			assert.Equal(t, tt.want, page.Nav.URLs())
		})
	}
}

func TestSearchUsesEventValue(t *testing.T) {
	page := vtest.NewPage().Ready().Build()

	page.Shell.Dispatch(shell.Event{Type: shell.EventKeyPress, Target: shell.IDGlobalSearch, Key: "Enter", Value: "pallet"})
	page.Shell.Dispatch(shell.Event{Type: shell.EventKeyPress, Target: shell.IDGlobalSearch, Key: "a", Value: "pallet"})

	assert.Equal(t, []string{"/inventory?search=pallet"}, page.Nav.URLs())
}

func TestSearchPathOption(t *testing.T) {
	page := vtest.NewPage().WithOption(shell.WithSearch("/products", "q")).Ready().Build()
	page.Search("crate")
	assert.Equal(t, []string{"/products?q=crate"}, page.Nav.URLs())
}

func TestSearchWithoutNavigator(t *testing.T) {
	page := vtest.NewPage().ReadyWithoutNavigator().Build()

	assert.NotPanics(t, func() { page.Search("widget") })
	assert.Equal(t, "widget", page.Root.FindByID(shell.IDGlobalSearch).AttrString("value"))
}

func TestTeardown(t *testing.T) {
	page := vtest.NewPage().Ready().Build()

	page.Teardown()
	page.Teardown()

	assert.False(t, page.Click(shell.IDMobileMenuBtn))
	assert.False(t, page.Key("Escape"))
}

func TestOnReadyReplacesWiring(t *testing.T) {
	page := vtest.NewPage().Ready().Build()
	nav := &vtest.Navigator{}
	page.Shell.OnReady(shell.Handlers{Navigator: nav})

	page.Click(shell.IDMobileMenuBtn)
	page.Search("x")

	vtest.ExpectClass(t, page.Root, shell.IDSidebar, shell.SidebarExpandedClass)
	assert.Empty(t, page.Nav.URLs())
	assert.Equal(t, []string{"/inventory?search=x"}, nav.URLs())
}

func TestUnknownTargetIsDocument(t *testing.T) {
	page := vtest.NewPage().Ready().Build()
	assert.False(t, page.Click("nope"))
}

func TestMissingSurfacesAreSkipped(t *testing.T) {
	root := vdom.Div()
	sh := shell.New(root, shell.SurfacesFromPage(root))
	teardown := sh.OnReady(shell.Handlers{Navigator: &vtest.Navigator{}})
	defer teardown()

	assert.False(t, sh.Dispatch(shell.Event{Type: shell.EventKeyDown, Key: "Escape"}))
	assert.Nil(t, sh.Notify("lost", toast.TypeInfo))
	assert.ErrorIs(t, sh.OpenModal("t", modal.HTML("x")), modal.ErrMissingSurface)
	assert.False(t, sh.ToggleSidebar())
}

func TestNotifyLifecycle(t *testing.T) {
	page := vtest.NewPage().Build()

	n := page.Shell.Notify("Stock adjusted", toast.TypeSuccess)
	require.NotNil(t, n)
	vtest.ExpectContains(t, page.Root, `<div class="toast success"><i data-lucide="check-circle"></i><span>Stock adjusted</span></div>`)

	page.Clock.Advance(toast.DefaultHold + toast.DefaultFade)

	assert.Equal(t, toast.StateRemoved, n.State())
	vtest.ExpectNotContains(t, page.Root, "Stock adjusted")
}

func TestConcurrentDispatchAndToasts(t *testing.T) {
	page := vtest.NewPage().Ready().Build()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			page.Click(shell.IDMobileMenuBtn)
		}()
		go func() {
			defer wg.Done()
			page.Shell.Notify("saved", toast.TypeInfo)
		}()
	}
	wg.Wait()
	page.Clock.Advance(5 * time.Second)

	assert.False(t, page.Root.FindByID(shell.IDSidebar).HasClass(shell.SidebarExpandedClass))
	assert.Empty(t, page.Shell.Toaster().Toasts())
}

func TestRenderBody(t *testing.T) {
	page := vtest.NewPage().Build()

	body, err := page.Shell.RenderBody()
	require.NoError(t, err)
	assert.NotContains(t, body, "<body")
	assert.Contains(t, body, `id="sidebar"`)

	full, err := page.Shell.Render()
	require.NoError(t, err)
	assert.Contains(t, full, "<title>WMS Pro</title>")
}

func TestLocked(t *testing.T) {
	page := vtest.NewPage().Build()

	page.Shell.Locked(func(root *vdom.VNode) {
		root.FindByID("pageContent").AppendChild(vdom.H1("Inventory"))
	})

	vtest.ExpectContains(t, page.Root, "<h1>Inventory</h1>")
	assert.Equal(t, 1, page.Renders())
}

func TestEscapeComponent(t *testing.T) {
	assert.Equal(t, "widget%209", shell.EscapeComponent("widget 9"))
	assert.Equal(t, "a%2Bb", shell.EscapeComponent("a+b"))
	assert.Equal(t, "caf%C3%A9", shell.EscapeComponent("café"))
	assert.Equal(t, "-_.~!*'()", shell.EscapeComponent("-_.~!*'()"))
}
