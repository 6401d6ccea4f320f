package icons

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wmspro/wmsui/pkg/vdom"
)

func TestLucideRender(t *testing.T) {
	icon := vdom.I(vdom.Data("lucide", "check-circle"))
	root := vdom.Div(icon, vdom.Span("Saved"), vdom.I(vdom.Class("plain")))

	assert.Equal(t, 1, Lucide{}.Render(root))
	assert.Equal(t, "svg", icon.Tag)
	assert.Equal(t, []string{"lucide", "lucide-check-circle"}, icon.ClassList())
	assert.Equal(t, "24", icon.AttrString("width"))

	assert.Zero(t, Lucide{}.Render(root), "second pass must not convert again")
}

func TestNop(t *testing.T) {
	icon := vdom.I(vdom.Data("lucide", "info"))
	assert.Zero(t, Nop.Render(icon))
	assert.Equal(t, "i", icon.Tag)
}
