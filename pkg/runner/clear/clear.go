package clear

import (
	"context"
	"fmt"

	"catalogo/pkg/selection"
	"catalogo/pkg/session"
)

// Clear empties the selection.
type Clear struct {
	KV selection.KV
}

func (n *Clear) Do(ctx context.Context) error {
	sel := selection.Load(n.KV)
	count := sel.Len()

	s := session.New(nil, sel, 0)
	if err := s.Dispatch(session.SelectionCleared{}); err != nil {
		return err
	}
	fmt.Printf("cleared %d selected product(s)\n", count)
	return nil
}
