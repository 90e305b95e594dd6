package client

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-product-catalog/models"
)

const (
	colID = iota
	colName
	colInventory
)

// renderPage writes page as a table followed by a pagination footer.
func renderPage(w io.Writer, page models.ProductPage) {
	if len(page.Objects) == 0 {
		fmt.Fprintln(w, helpStyle.Render("no products on this page"))
	} else {
		fmt.Fprintln(w, productTable(page.Objects...).String())
	}

	fmt.Fprintln(w, helpStyle.Render(fmt.Sprintf(
		"page %d of %d, %d per page, %d products total",
		page.Page, page.TotalPages, page.PerPage, page.NumResults,
	)))
}

// renderProduct writes a single created product.
func renderProduct(w io.Writer, p models.Product) {
	fmt.Fprintln(w, titleStyle.Render("product created"))
	fmt.Fprintln(w, productTable(p).String())
}

func productTable(products ...models.Product) *table.Table {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			strconv.FormatInt(p.Inventory, 10),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("ID", "NAME", "INVENTORY").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == colID, col == colInventory:
				return numberStyle
			default:
				return cellStyle
			}
		})
}
