package printers

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"catalogo/pkg/catalog"
	"catalogo/pkg/selection"
	"catalogo/pkg/view"
)

type PrettyPrint struct {
	ShowImage bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Warnings reports dropped catalog lines to stderr.
func (pp *PrettyPrint) Warnings(warnings []catalog.Warning) {
	y := color.New(color.FgHiYellow, color.Faint)
	for _, w := range warnings {
		_, _ = y.Fprintln(os.Stderr, w.String())
	}
}

// Catalog renders records as a table, with the selected quantity when a
// selection is supplied.
func (pp *PrettyPrint) Catalog(sel *selection.Store, records ...catalog.ProductRecord) {
	if len(records) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 50

	bold := color.New(color.Bold)
	if pp.ShowImage {
		tbl.AddRow(bold.Sprint("ID"), bold.Sprint("NAME"), bold.Sprint("BRAND"), bold.Sprint("MODEL"), bold.Sprint("QTY"), bold.Sprint("IMAGE"))
	} else {
		tbl.AddRow(bold.Sprint("ID"), bold.Sprint("NAME"), bold.Sprint("BRAND"), bold.Sprint("MODEL"), bold.Sprint("QTY"))
	}
	for _, r := range records {
		qty := ""
		if sel != nil && sel.Selected(r.ID) {
			qty = strconv.Itoa(sel.Quantity(r.ID))
		}
		if pp.ShowImage {
			tbl.AddRow(r.ID, r.Name, r.Brand, r.Model, qty, r.Image())
		} else {
			tbl.AddRow(r.ID, r.Name, r.Brand, r.Model, qty)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// PageInfo prints the pagination line shown after every browse.
func (pp *PrettyPrint) PageInfo(v view.View) {
	c := color.New(color.Faint)
	switch v.Total {
	case 1:
		_, _ = c.Printf("Page %d of %d - %d product\n", v.Page, v.TotalPages, v.Total)
	default:
		_, _ = c.Printf("Page %d of %d - %d products\n", v.Page, v.TotalPages, v.Total)
	}
}

// Cart renders the selection in catalog order, skipping orphaned entries.
func (pp *PrettyPrint) Cart(c *catalog.Catalog, selected map[int]selection.Entry) {
	if len(selected) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no products selected\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 50

	bold := color.New(color.Bold)
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("NAME"), bold.Sprint("QTY"))
	shown := 0
	for _, r := range c.Records() {
		e, ok := selected[r.ID]
		if !ok {
			continue
		}
		tbl.AddRow(r.ID, r.Name, e.Quantity)
		shown++
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	if orphaned := len(selected) - shown; orphaned > 0 {
		f := color.New(color.Faint)
		_, _ = f.Printf("%d selected item(s) no longer in the catalog\n", orphaned)
	}
	fmt.Println("")
}

// Brands lists the distinct brand names.
func (pp *PrettyPrint) Brands(brands []string) {
	if len(brands) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}
	for _, b := range brands {
		fmt.Println(b)
	}
	fmt.Println("")
}
