package browse

import (
	"context"
	"fmt"

	"catalogo/pkg/catalog"
	"catalogo/pkg/printers"
	"catalogo/pkg/selection"
	"catalogo/pkg/session"
	"catalogo/pkg/view"
)

// Browse lists one page of the filtered catalog.
type Browse struct {
	CatalogPath string
	Filter      view.Filter
	Page        int
	PerPage     int
	ShowImage   bool

	KV selection.KV
}

func (n *Browse) Do(ctx context.Context) error {
	cat, warnings, err := catalog.Load(ctx, n.CatalogPath)
	if err != nil {
		return err
	}
	sel := selection.Load(n.KV)

	s := session.New(cat, sel, n.PerPage)
	if err := s.Dispatch(session.FilterChanged{Filter: n.Filter}); err != nil {
		return err
	}
	if n.Page > 0 {
		if err := s.Dispatch(session.PageRequested{Page: n.Page}); err != nil {
			return err
		}
	}
	v := s.Visible()

	pp := printers.PrettyPrint{ShowImage: n.ShowImage}
	pp.Warnings(warnings)
	fmt.Println("")
	if n.Filter.IsZero() {
		pp.Title("Catalog")
	} else {
		pp.Title("Catalog (filtered)")
	}
	pp.Catalog(sel, v.Records...)
	pp.PageInfo(v)

	return nil
}
