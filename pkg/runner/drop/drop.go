package drop

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"catalogo/pkg/selection"
	"catalogo/pkg/session"
)

// Drop unselects a product. It needs no catalog so that orphaned entries
// can still be removed.
type Drop struct {
	ID int

	KV selection.KV
}

func (n *Drop) Do(ctx context.Context) error {
	sel := selection.Load(n.KV)
	if !sel.Selected(n.ID) {
		f := color.New(color.Faint)
		_, _ = f.Printf("product %d is not selected\n", n.ID)
		return nil
	}

	s := session.New(nil, sel, 0)
	if err := s.Dispatch(session.ItemToggled{ID: n.ID}); err != nil {
		return err
	}
	fmt.Printf("removed product %d from the selection\n", n.ID)
	return nil
}
