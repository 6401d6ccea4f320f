// Package vdom provides the in-memory DOM surface that the WMS UI layer
// mutates.
//
// The browser page is mirrored on the server as a tree of VNodes. Utility
// components (modal, toast, shell) hold references to the nodes they own and
// mutate them directly: class lists, text, style and children. The render
// package serialises the tree back to HTML for the browser.
//
// # Core Types
//
// VNode is the building block representing elements, text, fragments and raw
// HTML. Props holds attributes. Attr is used to build Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("modal-overlay"), ID("modalOverlay"),
//	    Div(ID("modal"),
//	        H3(ID("modalTitle")),
//	        Div(ID("modalContent")),
//	    ),
//	)
//
// # Mutation
//
// Nodes keep a pointer to their parent so that Remove, Contains and FindByID
// behave like their DOM counterparts. A VNode is not safe for concurrent
// use; callers serialise access (see the shell package).
package vdom
