package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/wmspro/wmsui/pkg/vdom"
)

func TestRenderElement(t *testing.T) {
	node := Div(ID("toastContainer"), Class("toast-container"),
		Div(Class("toast", "error"),
			I(Data("lucide", "x-circle")),
			Span("Quantity <exceeds> stock"),
		),
	)

	html, err := String(node)
	require.NoError(t, err)
	assert.Equal(t,
		`<div class="toast-container" id="toastContainer"><div class="toast error"><i data-lucide="x-circle"></i><span>Quantity &lt;exceeds&gt; stock</span></div></div>`,
		html)
}

func TestRenderRawIsVerbatim(t *testing.T) {
	node := Div(ID("modalContent"), Raw(`<form id="adjust"><b>x</b></form>`))

	html, err := String(node)
	require.NoError(t, err)
	assert.Equal(t, `<div id="modalContent"><form id="adjust"><b>x</b></form></div>`, html)
}

func TestRenderVoidAndBooleanAttrs(t *testing.T) {
	node := Input(ID("globalSearch"), Attr{Key: "disabled", Value: true}, Attr{Key: "required", Value: false})

	html, err := String(node)
	require.NoError(t, err)
	assert.Equal(t, `<input disabled id="globalSearch">`, html)
}

func TestRenderAttrEscaping(t *testing.T) {
	node := Div(StyleAttr("content: \"a\"\n"))

	html, err := String(node)
	require.NoError(t, err)
	assert.Equal(t, `<div style="content: &quot;a&quot;&#10;"></div>`, html)
}

func TestRenderPretty(t *testing.T) {
	r := NewRenderer(RendererConfig{Pretty: true})
	html, err := r.RenderToString(Div(P("a"), P("b")))
	require.NoError(t, err)
	assert.Equal(t, "<div><p>a</p>\n<p>b</p>\n</div>\n", html)
}

func TestRenderNil(t *testing.T) {
	html, err := String(nil)
	require.NoError(t, err)
	assert.Empty(t, html)
}
