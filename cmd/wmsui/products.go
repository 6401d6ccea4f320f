package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/wmspro/wmsui/internal/errors"
	"github.com/wmspro/wmsui/pkg/format"
	"github.com/wmspro/wmsui/pkg/wms"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	statusStyle = map[string]lipgloss.Style{
		wms.StatusNormal:     cellStyle.Foreground(lipgloss.Color("42")),
		wms.StatusLowStock:   cellStyle.Foreground(lipgloss.Color("214")),
		wms.StatusOutOfStock: cellStyle.Foreground(lipgloss.Color("196")),
		wms.StatusOverstock:  cellStyle.Foreground(lipgloss.Color("69")),
	}
)

func productsCmd(opts *rootOptions) *cobra.Command {
	var list wms.ListOptions

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products",
		Long: `List products from the backend as a table.

Quantities, prices and dates use the same formatting as the pages.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			stop, err := startTracing(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer stop()
			client, err := newCLIClient(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			products, err := wms.New(client).ListProducts(cmd.Context(), list)
			if err != nil {
				return silent(err)
			}
			writeProducts(cmd.OutOrStdout(), products)
			return nil
		},
	}

	cmd.Flags().StringVarP(&list.Search, "search", "s", "", "Filter by name or SKU")
	cmd.Flags().StringVar(&list.Status, "status", "", "Filter by stock status")
	cmd.Flags().IntVar(&list.CategoryID, "category", 0, "Filter by category id")
	cmd.Flags().StringVar(&list.SortBy, "sort", "", "Sort column")
	cmd.Flags().BoolVar(&list.Desc, "desc", false, "Sort descending")

	cmd.AddCommand(adjustCmd(opts))

	return cmd
}

func adjustCmd(opts *rootOptions) *cobra.Command {
	var adj wms.Adjustment

	cmd := &cobra.Command{
		Use:   "adjust <id> <add|remove> <quantity>",
		Short: "Adjust a product's stock",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			qty, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[2])
			}
			adj.Type = args[1]
			adj.Quantity = qty

			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			stop, err := startTracing(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer stop()
			client, err := newCLIClient(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			p, err := wms.New(client).AdjustStock(cmd.Context(), id, adj)
			if err != nil {
				// Rejected input never reaches the notifier.
				if errors.IsKind(err, errors.KindInvalid) {
					return err
				}
				return silent(err)
			}
			success("%s now has %s %s", p.Name, format.Number(float64(p.Quantity)), p.Unit)
			return nil
		},
	}

	cmd.Flags().StringVarP(&adj.Reason, "reason", "r", "", "Reason for the adjustment")
	cmd.Flags().StringVar(&adj.Notes, "notes", "", "Free-form notes")

	return cmd
}

// writeProducts renders products as a bordered table.
func writeProducts(w io.Writer, products []wms.Product) {
	if len(products) == 0 {
		fmt.Fprintln(w, "No products found")
		return
	}

	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			p.SKU,
			p.Name,
			p.CategoryName,
			format.Number(float64(p.Quantity)) + " " + p.Unit,
			format.Currency(p.UnitPrice),
			format.Currency(p.StockValue()),
			strings.ReplaceAll(p.StockStatus(), "_", " "),
			format.Date(p.UpdatedAt),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("SKU", "NAME", "CATEGORY", "QUANTITY", "UNIT PRICE", "VALUE", "STATUS", "UPDATED").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 6 && row >= 0 && row < len(products) {
				if s, ok := statusStyle[products[row].StockStatus()]; ok {
					return s
				}
			}
			return cellStyle
		})
	fmt.Fprintln(w, t.Render())
}
