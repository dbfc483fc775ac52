// Package export wires the export transforms to their concrete sinks.
// Contact validation and the empty-selection check happen inside the
// session when the export intent is dispatched.
package export

import (
	"context"
	"fmt"

	"catalogo/pkg/catalog"
	"catalogo/pkg/export"
	"catalogo/pkg/export/sinks"
	"catalogo/pkg/selection"
	"catalogo/pkg/session"
	"catalogo/pkg/view"
)

// PDF renders the selection as a saved document.
type PDF struct {
	CatalogPath string
	Contact     export.Contact
	Out         string

	KV selection.KV

	// Sink overrides the gofpdf sink, for tests.
	Sink export.DocumentSink
}

func (n *PDF) Do(ctx context.Context) error {
	cat, _, err := catalog.Load(ctx, n.CatalogPath)
	if err != nil {
		return err
	}
	sel := selection.Load(n.KV)

	sink := n.Sink
	if sink == nil {
		sink = sinks.NewPDF()
	}
	out := n.Out
	if out == "" {
		out = "selected-products.pdf"
	}

	s := session.New(cat, sel, view.Unbounded)
	if err := s.Dispatch(session.ExportRequested{Contact: n.Contact, Sink: sink}); err != nil {
		return err
	}
	if err := sink.Save(out); err != nil {
		return fmt.Errorf("export: save document: %w", err)
	}
	fmt.Printf("saved %s\n", out)
	return nil
}

// WhatsApp composes the selection message and hands it to the deep link.
type WhatsApp struct {
	CatalogPath string
	Contact     export.Contact
	Recipient   string
	Open        bool

	KV selection.KV
}

func (n *WhatsApp) Do(ctx context.Context) error {
	cat, _, err := catalog.Load(ctx, n.CatalogPath)
	if err != nil {
		return err
	}
	sel := selection.Load(n.KV)

	s := session.New(cat, sel, view.Unbounded)
	return s.Dispatch(session.ExportRequested{
		Contact: n.Contact,
		Message: func(msg string) error {
			if n.Open {
				return sinks.OpenMessage(n.Recipient, msg)
			}
			fmt.Println(sinks.MessageURL(n.Recipient, msg))
			return nil
		},
	})
}
