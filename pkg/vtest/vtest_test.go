package vtest_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wmspro/wmsui/pkg/shell"
	"github.com/wmspro/wmsui/pkg/toast"
	"github.com/wmspro/wmsui/pkg/vtest"
)

func TestNewPage(t *testing.T) {
	page := vtest.NewPage().Build()

	require.NotNil(t, page.Shell)
	assert.Nil(t, page.Teardown)
	assert.Equal(t, vtest.Epoch, page.Clock.Now())
	vtest.ExpectContains(t, page.Root, `id="toastContainer"`)
}

func TestNewPage_Without(t *testing.T) {
	page := vtest.NewPage().Without(shell.IDSidebar, "missing").Build()

	assert.Nil(t, page.Root.FindByID(shell.IDSidebar))
	assert.Nil(t, page.Shell.Surfaces().Sidebar)
	assert.NotNil(t, page.Shell.Surfaces().MenuButton)
}

func TestNewPage_Ready(t *testing.T) {
	page := vtest.NewPage().Ready().Build()
	require.NotNil(t, page.Teardown)

	page.Search("bolts")

	assert.Equal(t, []string{"/inventory?search=bolts"}, page.Nav.URLs())
}

func TestNewPage_ToastTiming(t *testing.T) {
	page := vtest.NewPage().WithToastTiming(time.Second, 100*time.Millisecond).Build()

	n := page.Shell.Notify("Saved", toast.TypeSuccess)
	page.Clock.Advance(time.Second)
	assert.Equal(t, toast.StateFading, n.State())
	page.Clock.Advance(100 * time.Millisecond)
	assert.Equal(t, toast.StateRemoved, n.State())
	assert.Equal(t, 3, page.Renders())
}

func TestNotifier(t *testing.T) {
	var n vtest.Notifier
	assert.Nil(t, n.Notify("a", toast.TypeInfo))
	toast.Error(&n, "b")

	assert.Equal(t, []vtest.Shown{{"a", toast.TypeInfo}, {"b", toast.TypeError}}, n.Shown())
}

func TestExpectClass(t *testing.T) {
	page := vtest.NewPage().Ready().Build()
	page.Click(shell.IDMobileMenuBtn)

	vtest.ExpectClass(t, page.Root, shell.IDSidebar, shell.SidebarExpandedClass)
	vtest.ExpectNotContains(t, page.Root, "<script")
}

func TestRenderToString(t *testing.T) {
	page := vtest.NewPage().Build()
	html := vtest.RenderToString(page.Root.FindByID(shell.IDModalTitle))
	assert.Equal(t, `<h3 id="modalTitle"></h3>`, html)
}
