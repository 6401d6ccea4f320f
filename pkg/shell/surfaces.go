package shell

import (
	"github.com/wmspro/wmsui/pkg/vdom"
)

// Element ids of the page contract.
const (
	IDModalOverlay   = "modalOverlay"
	IDModal          = "modal"
	IDModalTitle     = "modalTitle"
	IDModalContent   = "modalContent"
	IDModalClose     = "modalClose"
	IDToastContainer = "toastContainer"
	IDMobileMenuBtn  = "mobileMenuBtn"
	IDSidebar        = "sidebar"
	IDGlobalSearch   = "globalSearch"
)

// Surfaces are the page nodes the shell operates on. Any of them may be nil;
// the behaviour needing a missing surface is simply not wired.
type Surfaces struct {
	Overlay        *vdom.VNode
	Modal          *vdom.VNode
	Title          *vdom.VNode
	Content        *vdom.VNode
	Close          *vdom.VNode
	ToastContainer *vdom.VNode
	MenuButton     *vdom.VNode
	Sidebar        *vdom.VNode
	Search         *vdom.VNode
}

// SurfacesFromPage looks every contract id up once.
func SurfacesFromPage(root *vdom.VNode) Surfaces {
	return Surfaces{
		Overlay:        root.FindByID(IDModalOverlay),
		Modal:          root.FindByID(IDModal),
		Title:          root.FindByID(IDModalTitle),
		Content:        root.FindByID(IDModalContent),
		Close:          root.FindByID(IDModalClose),
		ToastContainer: root.FindByID(IDToastContainer),
		MenuButton:     root.FindByID(IDMobileMenuBtn),
		Sidebar:        root.FindByID(IDSidebar),
		Search:         root.FindByID(IDGlobalSearch),
	}
}

// NavItem is one sidebar link.
type NavItem struct {
	Label string
	Href  string
	Icon  string
}

// DefaultNav lists the application's sections.
var DefaultNav = []NavItem{
	{Label: "Dashboard", Href: "/", Icon: "layout-dashboard"},
	{Label: "Inventory", Href: "/inventory", Icon: "package"},
	{Label: "Receiving", Href: "/receiving", Icon: "package-plus"},
	{Label: "Shipping", Href: "/shipping", Icon: "truck"},
	{Label: "Locations", Href: "/locations", Icon: "map-pin"},
	{Label: "Forecast", Href: "/forecast", Icon: "trending-up"},
	{Label: "Reports", Href: "/reports", Icon: "bar-chart-3"},
}

// DefaultPage builds the standard layout carrying every contract id.
func DefaultPage(title string) *vdom.VNode {
	items := make([]*vdom.VNode, 0, len(DefaultNav))
	for _, item := range DefaultNav {
		items = append(items, vdom.Li(
			vdom.A(vdom.Href(item.Href), vdom.Class("nav-item"),
				vdom.I(vdom.Data("lucide", item.Icon)),
				vdom.Span(item.Label),
			),
		))
	}

	return vdom.Html(
		vdom.Head(
			vdom.Meta(vdom.Attr{Key: "charset", Value: "UTF-8"}),
			vdom.Meta(vdom.Name("viewport"), vdom.Attr{Key: "content", Value: "width=device-width, initial-scale=1.0"}),
			vdom.Title(title),
			vdom.Link(vdom.Rel("stylesheet"), vdom.Href("/static/css/style.css")),
		),
		vdom.Body(
			vdom.Aside(vdom.ID(IDSidebar), vdom.Class("sidebar"),
				vdom.Div(vdom.Class("sidebar-header"), vdom.H2(title)),
				vdom.Nav(vdom.Ul(items)),
			),
			vdom.Main(vdom.Class("main-content"),
				vdom.Header(vdom.Class("top-bar"),
					vdom.Button(vdom.ID(IDMobileMenuBtn), vdom.Class("mobile-menu-btn"), vdom.AriaLabel("Menu"),
						vdom.I(vdom.Data("lucide", "menu")),
					),
					vdom.Div(vdom.Class("search-box"),
						vdom.I(vdom.Data("lucide", "search")),
						vdom.Input(vdom.ID(IDGlobalSearch), vdom.Type("text"), vdom.Placeholder("Search products...")),
					),
				),
				vdom.Div(vdom.ID("pageContent"), vdom.Class("page-content")),
			),
			vdom.Div(vdom.ID(IDModalOverlay), vdom.Class("modal-overlay"),
				vdom.Div(vdom.ID(IDModal), vdom.Class("modal"), vdom.Role("dialog"),
					vdom.Div(vdom.Class("modal-header"),
						vdom.H3(vdom.ID(IDModalTitle)),
						vdom.Button(vdom.ID(IDModalClose), vdom.Class("modal-close"), vdom.AriaLabel("Close"),
							vdom.I(vdom.Data("lucide", "x")),
						),
					),
					vdom.Div(vdom.ID(IDModalContent), vdom.Class("modal-body")),
				),
			),
			vdom.Div(vdom.ID(IDToastContainer), vdom.Class("toast-container"), vdom.AriaLive("polite")),
		),
	)
}
