package vdom

import "strings"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement  VKind = iota // <div>, <button>, etc.
	KindText                  // Plain text node
	KindFragment              // Grouping without wrapper
	KindRaw                   // Raw HTML (dangerous)
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name (e.g., "div")
	Props    Props    // Attributes
	Children []*VNode // Child nodes
	Text     string   // For KindText and KindRaw

	parent *VNode
}

// Props holds element attributes.
type Props map[string]any

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Parent returns the node this node is attached to, or nil.
func (v *VNode) Parent() *VNode {
	if v == nil {
		return nil
	}
	return v.parent
}

// ID returns the id attribute of an element, or "".
func (v *VNode) ID() string {
	return v.AttrString("id")
}

// Attr returns the raw attribute value.
func (v *VNode) Attr(key string) (any, bool) {
	if v == nil || v.Props == nil {
		return nil, false
	}
	val, ok := v.Props[key]
	return val, ok
}

// AttrString returns the attribute value as a string, or "" when unset.
func (v *VNode) AttrString(key string) string {
	val, ok := v.Attr(key)
	if !ok || val == nil {
		return ""
	}
	if s, ok := val.(string); ok {
		return s
	}
	return attrString(val)
}

// SetAttr sets an attribute. A nil value removes it.
func (v *VNode) SetAttr(key string, value any) {
	if value == nil {
		delete(v.Props, key)
		return
	}
	if v.Props == nil {
		v.Props = make(Props)
	}
	v.Props[key] = value
}

// TextContent concatenates the text of every descendant text node.
// Raw HTML is included verbatim.
func (v *VNode) TextContent() string {
	if v == nil {
		return ""
	}
	switch v.Kind {
	case KindText, KindRaw:
		return v.Text
	}
	var sb strings.Builder
	for _, child := range v.Children {
		sb.WriteString(child.TextContent())
	}
	return sb.String()
}

// SetText replaces all children with a single text node.
func (v *VNode) SetText(text string) {
	v.ClearChildren()
	if text != "" {
		v.AppendChild(Text(text))
	}
}

// SetInnerHTML replaces all children with the given HTML, unescaped.
func (v *VNode) SetInnerHTML(html string) {
	v.ClearChildren()
	if html != "" {
		v.AppendChild(Raw(html))
	}
}

// AppendChild attaches child as the last child of v. A fragment contributes
// its children rather than itself, mirroring DocumentFragment. A child
// already attached elsewhere is moved. Appending v or one of its ancestors
// is a no-op.
func (v *VNode) AppendChild(child *VNode) {
	if child == nil || child.Contains(v) {
		return
	}
	if child.Kind == KindFragment {
		kids := child.Children
		child.Children = nil
		for _, c := range kids {
			c.parent = nil
			v.AppendChild(c)
		}
		return
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = v
	v.Children = append(v.Children, child)
}

// RemoveChild detaches child from v. Returns false if child was not a
// direct child.
func (v *VNode) RemoveChild(child *VNode) bool {
	if v == nil || child == nil {
		return false
	}
	for i, c := range v.Children {
		if c == child {
			v.Children = append(v.Children[:i], v.Children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Remove detaches v from its parent.
func (v *VNode) Remove() bool {
	if v == nil || v.parent == nil {
		return false
	}
	return v.parent.RemoveChild(v)
}

// ClearChildren detaches all children.
func (v *VNode) ClearChildren() {
	for _, c := range v.Children {
		c.parent = nil
	}
	v.Children = nil
}

// Contains reports whether other is v or a descendant of v.
func (v *VNode) Contains(other *VNode) bool {
	for n := other; n != nil; n = n.parent {
		if n == v {
			return true
		}
	}
	return false
}

// Walk visits v and its descendants depth-first. Returning false from fn
// stops the walk.
func (v *VNode) Walk(fn func(*VNode) bool) bool {
	if v == nil {
		return true
	}
	if !fn(v) {
		return false
	}
	for _, c := range v.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// FindByID returns the first element with the given id, or nil.
func (v *VNode) FindByID(id string) *VNode {
	var found *VNode
	v.Walk(func(n *VNode) bool {
		if n.Kind == KindElement && n.ID() == id {
			found = n
			return false
		}
		return true
	})
	return found
}
