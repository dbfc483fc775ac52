package cart

import (
	"context"
	"fmt"

	"catalogo/pkg/catalog"
	"catalogo/pkg/printers"
	"catalogo/pkg/selection"
)

// Cart shows the current selection in catalog order.
type Cart struct {
	CatalogPath string

	KV selection.KV
}

func (n *Cart) Do(ctx context.Context) error {
	cat, warnings, err := catalog.Load(ctx, n.CatalogPath)
	if err != nil {
		return err
	}
	sel := selection.Load(n.KV)

	pp := printers.PrettyPrint{}
	pp.Warnings(warnings)
	fmt.Println("")
	pp.Title("Selection")
	pp.Cart(cat, sel.Snapshot())

	return nil
}
