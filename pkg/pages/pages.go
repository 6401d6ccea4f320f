// Package pages holds the page loaders the server runs when a bridge
// connects.
package pages

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/wmspro/wmsui/internal/errors"
	"github.com/wmspro/wmsui/pkg/format"
	"github.com/wmspro/wmsui/pkg/server"
	"github.com/wmspro/wmsui/pkg/shell"
	"github.com/wmspro/wmsui/pkg/vdom"
	"github.com/wmspro/wmsui/pkg/wms"
)

// ContentID is the element loaders render into.
const ContentID = "pageContent"

var statusLabels = map[string]string{
	wms.StatusOutOfStock: "Out of Stock",
	wms.StatusLowStock:   "Low Stock",
	wms.StatusOverstock:  "Overstock",
	wms.StatusNormal:     "In Stock",
}

// Inventory lists the products matching the page's search and status
// query parameters.
func Inventory() server.Loader {
	return func(ctx context.Context, s *server.Session, q url.Values) error {
		if s.API() == nil {
			return nil
		}
		search := strings.TrimSpace(q.Get("search"))
		products, err := wms.New(s.API()).ListProducts(ctx, wms.ListOptions{
			Search: search,
			Status: q.Get("status"),
		})
		if err != nil {
			return err
		}

		missing := false
		s.Shell().Locked(func(root *vdom.VNode) {
			if input := root.FindByID(shell.IDGlobalSearch); input != nil && search != "" {
				input.SetAttr("value", search)
			}
			content := root.FindByID(ContentID)
			if content == nil {
				missing = true
				return
			}
			content.ClearChildren()
			content.AppendChild(vdom.Div(vdom.Class("page-header"),
				vdom.H1("Inventory"),
				vdom.If(search != "", vdom.P(vdom.Class("subtitle"), vdom.Textf("Results for %q", search))),
			))
			content.AppendChild(ProductTable(products))
		})
		if missing {
			return errors.New("W020").WithDetail("#" + ContentID + " is not on the page")
		}
		return nil
	}
}

// ProductTable renders products as the inventory table.
func ProductTable(products []wms.Product) *vdom.VNode {
	if len(products) == 0 {
		return vdom.Div(vdom.Class("empty-state"),
			vdom.I(vdom.Data("lucide", "package-x")),
			vdom.P("No products found"),
		)
	}

	rows := make([]*vdom.VNode, 0, len(products))
	for _, p := range products {
		status := p.StockStatus()
		category := p.CategoryName
		if category == "" {
			category = "-"
		}
		rows = append(rows, vdom.Tr(vdom.Data("id", strconv.Itoa(p.ID)),
			vdom.Td(vdom.Strong(p.SKU)),
			vdom.Td(p.Name),
			vdom.Td(category),
			vdom.Td(vdom.Class("num"), format.Number(float64(p.Quantity))+" "+p.Unit),
			vdom.Td(vdom.Class("num"), format.Currency(p.UnitPrice)),
			vdom.Td(vdom.Class("num"), format.Currency(p.StockValue())),
			vdom.Td(vdom.Span(vdom.Class("badge", "badge-"+strings.ReplaceAll(status, "_", "-")), statusLabels[status])),
			vdom.Td(format.Date(p.UpdatedAt)),
		))
	}

	return vdom.Table(vdom.Class("data-table"),
		vdom.Thead(vdom.Tr(
			vdom.Th("SKU"), vdom.Th("Name"), vdom.Th("Category"), vdom.Th("Quantity"),
			vdom.Th("Unit Price"), vdom.Th("Value"), vdom.Th("Status"), vdom.Th("Updated"),
		)),
		vdom.Tbody(rows),
	)
}
