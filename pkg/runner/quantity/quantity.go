package quantity

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"catalogo/pkg/selection"
	"catalogo/pkg/session"
)

// Quantity edits the quantity of a selected product. Setting it below 1
// removes the product from the selection.
type Quantity struct {
	ID int
	N  int

	KV selection.KV
}

func (n *Quantity) Do(ctx context.Context) error {
	sel := selection.Load(n.KV)
	if !sel.Selected(n.ID) {
		f := color.New(color.Faint)
		_, _ = f.Printf("product %d is not selected, nothing to update\n", n.ID)
		return nil
	}

	s := session.New(nil, sel, 0)
	if err := s.Dispatch(session.QuantityEdited{ID: n.ID, Quantity: n.N}); err != nil {
		return err
	}
	if n.N < 1 {
		fmt.Printf("removed product %d from the selection\n", n.ID)
		return nil
	}
	fmt.Printf("product %d quantity set to %d\n", n.ID, n.N)
	return nil
}
