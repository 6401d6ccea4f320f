package vdom

import (
	"fmt"
	"strings"
)

// ClassList returns the element's classes in attribute order.
func (v *VNode) ClassList() []string {
	return strings.Fields(v.AttrString("class"))
}

// HasClass reports whether the element carries class c.
func (v *VNode) HasClass(c string) bool {
	for _, have := range v.ClassList() {
		if have == c {
			return true
		}
	}
	return false
}

// AddClass adds c if it is not already present.
func (v *VNode) AddClass(c string) {
	if c == "" || v.HasClass(c) {
		return
	}
	v.setClasses(append(v.ClassList(), c))
}

// RemoveClass removes every occurrence of c.
func (v *VNode) RemoveClass(c string) {
	classes := v.ClassList()
	kept := classes[:0]
	for _, have := range classes {
		if have != c {
			kept = append(kept, have)
		}
	}
	v.setClasses(kept)
}

// ToggleClass flips c and reports whether it is now present.
func (v *VNode) ToggleClass(c string) bool {
	if v.HasClass(c) {
		v.RemoveClass(c)
		return false
	}
	v.AddClass(c)
	return true
}

func (v *VNode) setClasses(classes []string) {
	if len(classes) == 0 {
		v.SetAttr("class", nil)
		return
	}
	v.SetAttr("class", strings.Join(classes, " "))
}

// Style returns a single inline style property, or "".
func (v *VNode) Style(prop string) string {
	for _, decl := range parseStyle(v.AttrString("style")) {
		if decl[0] == prop {
			return decl[1]
		}
	}
	return ""
}

// SetStyle sets a single inline style property, preserving the order of
// the others. An empty value removes the property.
func (v *VNode) SetStyle(prop, value string) {
	decls := parseStyle(v.AttrString("style"))
	out := decls[:0]
	replaced := false
	for _, decl := range decls {
		if decl[0] == prop {
			replaced = true
			if value == "" {
				continue
			}
			decl[1] = value
		}
		out = append(out, decl)
	}
	if !replaced && value != "" {
		out = append(out, [2]string{prop, value})
	}
	if len(out) == 0 {
		v.SetAttr("style", nil)
		return
	}
	parts := make([]string, len(out))
	for i, decl := range out {
		parts[i] = fmt.Sprintf("%s: %s", decl[0], decl[1])
	}
	v.SetAttr("style", strings.Join(parts, "; "))
}

func parseStyle(style string) [][2]string {
	var decls [][2]string
	for _, part := range strings.Split(style, ";") {
		name, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		decls = append(decls, [2]string{name, strings.TrimSpace(value)})
	}
	return decls
}

func attrString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
