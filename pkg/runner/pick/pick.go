package pick

import (
	"context"
	"fmt"

	"catalogo/pkg/catalog"
	"catalogo/pkg/printers"
	"catalogo/pkg/selection"
	"catalogo/pkg/session"
)

// Pick selects a product, or updates its quantity when already selected.
type Pick struct {
	CatalogPath string
	ID          int
	Quantity    int

	KV selection.KV
}

func (n *Pick) Do(ctx context.Context) error {
	cat, warnings, err := catalog.Load(ctx, n.CatalogPath)
	if err != nil {
		return err
	}
	sel := selection.Load(n.KV)
	s := session.New(cat, sel, 0)

	if sel.Selected(n.ID) {
		if err := s.Dispatch(session.QuantityEdited{ID: n.ID, Quantity: n.Quantity}); err != nil {
			return err
		}
	} else {
		if err := s.Dispatch(session.ItemToggled{ID: n.ID, Quantity: n.Quantity}); err != nil {
			return err
		}
	}

	r, _ := cat.ByID(n.ID)
	pp := printers.PrettyPrint{}
	pp.Warnings(warnings)
	fmt.Printf("selected %s (quantity %d)\n", r.Name, sel.Quantity(n.ID))
	return nil
}
