package brands

import (
	"context"
	"fmt"

	"catalogo/pkg/catalog"
	"catalogo/pkg/printers"
)

// Brands lists the distinct brand names in the catalog.
type Brands struct {
	CatalogPath string
}

func (n *Brands) Do(ctx context.Context) error {
	cat, warnings, err := catalog.Load(ctx, n.CatalogPath)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Warnings(warnings)
	fmt.Println("")
	pp.Title("Brands")
	pp.Brands(cat.Brands())

	return nil
}
