package options

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"catalogo/pkg/view"
)

// FilterOptions captures the browse filter and pagination flags.
type FilterOptions struct {
	Brand     string
	Name      string
	Page      int
	PerPage   string
	ShowImage bool
}

// AddFilterArgs wires filter and pagination flags on the provided command.
func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Brand, "brand", "b", "",
		"Only show products of this brand (exact match, case-insensitive).")
	cmd.Flags().StringVarP(&o.Name, "name", "n", "",
		"Only show products whose name contains this text.")
	cmd.Flags().IntVarP(&o.Page, "page", "p", 1,
		"Page to show, clamped into the valid range.")
	cmd.Flags().StringVar(&o.PerPage, "per-page", "",
		`Products per page, a positive number or "all". Defaults to the configured page size.`)
	cmd.Flags().BoolVar(&o.ShowImage, "images", false,
		"Include the image column.")
}

// Filter builds the view filter from the flags.
func (o *FilterOptions) Filter() view.Filter {
	return view.Filter{Brand: o.Brand, Name: o.Name}
}

// ParsePerPage resolves the page size flag; fallback applies when the flag
// was not set.
func (o *FilterOptions) ParsePerPage(fallback int) (int, error) {
	if o.PerPage == "" {
		return fallback, nil
	}
	if o.PerPage == "all" {
		return view.Unbounded, nil
	}
	n, err := strconv.Atoi(o.PerPage)
	if err != nil || n < 1 {
		return 0, fmt.Errorf(`per-page must be a positive number or "all", got %q`, o.PerPage)
	}
	return n, nil
}
