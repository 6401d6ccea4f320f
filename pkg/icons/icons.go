// Package icons performs the icon-font pass that runs after content is
// injected into the page.
//
// Icon placeholders are written as <i data-lucide="name"></i>. The Lucide
// renderer turns each placeholder into an inline <svg> marker the client
// stylesheet recognises, the same transformation lucide.createIcons applies
// in the browser.
package icons

import "github.com/wmspro/wmsui/pkg/vdom"

// Attr is the placeholder attribute naming the icon.
const Attr = "data-lucide"

// Renderer rescans a subtree for icon placeholders.
type Renderer interface {
	// Render converts placeholders under root and returns how many it
	// converted.
	Render(root *vdom.VNode) int
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(root *vdom.VNode) int

// Render implements Renderer.
func (f RendererFunc) Render(root *vdom.VNode) int { return f(root) }

// Nop is a Renderer that leaves placeholders untouched.
var Nop Renderer = RendererFunc(func(*vdom.VNode) int { return 0 })

// Lucide converts <i data-lucide> placeholders into <svg> elements.
type Lucide struct {
	// Size is the width and height written on each icon. Defaults to 24.
	Size int
}

// Render implements Renderer. Already converted icons are skipped, so the
// pass can run over the whole page repeatedly.
func (l Lucide) Render(root *vdom.VNode) int {
	size := l.Size
	if size <= 0 {
		size = 24
	}
	n := 0
	root.Walk(func(node *vdom.VNode) bool {
		if node.Kind != vdom.KindElement || node.Tag != "i" {
			return true
		}
		name := node.AttrString(Attr)
		if name == "" {
			return true
		}
		node.Tag = "svg"
		node.AddClass("lucide")
		node.AddClass("lucide-" + name)
		node.SetAttr("width", size)
		node.SetAttr("height", size)
		node.SetAttr("aria-hidden", "true")
		n++
		return true
	})
	return n
}
