// Package session is the coordinator: it owns the loaded catalog, the
// transient view configuration, and the durable selection, and applies
// user intents one at a time.
package session

import (
	"errors"

	"catalogo/pkg/catalog"
	"catalogo/pkg/export"
	"catalogo/pkg/selection"
	"catalogo/pkg/view"
)

var (
	ErrNoCatalog      = errors.New("session: no catalog loaded")
	ErrUnknownProduct = errors.New("session: no product with that id")
)

// Session is the single owned state object handlers operate on. There are
// no hidden globals; commands construct one per invocation.
type Session struct {
	Catalog   *catalog.Catalog
	View      view.State
	Selection *selection.Store
}

// New sets up a session on page 1 with the given page size.
func New(c *catalog.Catalog, sel *selection.Store, perPage int) *Session {
	return &Session{
		Catalog:   c,
		Selection: sel,
		View:      view.State{Page: 1, PerPage: perPage},
	}
}

// Intent is a discrete user action dispatched to the session.
type Intent interface {
	intent()
}

// FilterChanged replaces the active filter and resets to page 1.
type FilterChanged struct {
	Filter view.Filter
}

// PageRequested navigates to a page, clamped into the valid range.
type PageRequested struct {
	Page int
}

// ItemsPerPageChanged sets the page size and resets to page 1.
type ItemsPerPageChanged struct {
	N int
}

// ItemToggled selects an unselected product (Quantity, default 1) or
// unselects a selected one. Unselecting works even for orphaned ids.
type ItemToggled struct {
	ID       int
	Quantity int
}

// QuantityEdited updates the quantity of a selected product. Editing an
// unselected product is a no-op; a quantity below 1 removes the entry.
type QuantityEdited struct {
	ID       int
	Quantity int
}

// SelectionCleared empties the selection.
type SelectionCleared struct{}

// ExportRequested renders the selection for the contact. Exactly one
// target is used: Sink for the positioned-text document, Message for the
// plain-text hand-off. Exports only read; they never mutate the session.
type ExportRequested struct {
	Contact export.Contact
	Sink    export.DocumentSink
	Message func(msg string) error
}

func (FilterChanged) intent()       {}
func (PageRequested) intent()       {}
func (ItemsPerPageChanged) intent() {}
func (ItemToggled) intent()         {}
func (QuantityEdited) intent()      {}
func (SelectionCleared) intent()    {}
func (ExportRequested) intent()     {}

// Dispatch applies one intent. Selection mutations, including their
// persistence write, complete before Dispatch returns.
func (s *Session) Dispatch(i Intent) error {
	switch it := i.(type) {
	case FilterChanged:
		s.View.Filter = it.Filter
		s.View.Page = 1
	case ItemsPerPageChanged:
		s.View.PerPage = it.N
		s.View.Page = 1
	case PageRequested:
		v := view.Compute(s.Catalog, s.View.Filter, it.Page, s.View.PerPage)
		s.View.Page = v.Page
	case ItemToggled:
		if s.Selection.Selected(it.ID) {
			return s.Selection.Remove(it.ID)
		}
		if s.Catalog == nil {
			return ErrNoCatalog
		}
		if _, ok := s.Catalog.ByID(it.ID); !ok {
			return ErrUnknownProduct
		}
		quantity := it.Quantity
		if quantity == 0 {
			quantity = 1
		}
		return s.Selection.Add(it.ID, quantity)
	case QuantityEdited:
		return s.Selection.SetQuantity(it.ID, it.Quantity)
	case SelectionCleared:
		return s.Selection.Clear()
	case ExportRequested:
		if err := it.Contact.Validate(); err != nil {
			return err
		}
		if s.Selection.Len() == 0 {
			return export.ErrEmptySelection
		}
		if s.Catalog == nil {
			return ErrNoCatalog
		}
		cmp := &export.Composer{Catalog: s.Catalog}
		if it.Sink != nil {
			cmp.Document(s.Selection.Snapshot(), it.Contact, it.Sink)
			return nil
		}
		if it.Message != nil {
			msg, err := cmp.Message(s.Selection.Snapshot(), it.Contact)
			if err != nil {
				return err
			}
			return it.Message(msg)
		}
	}
	return nil
}

// Visible derives the current page of the filtered catalog, clamping the
// stored page position.
func (s *Session) Visible() view.View {
	v := view.Compute(s.Catalog, s.View.Filter, s.View.Page, s.View.PerPage)
	s.View.Page = v.Page
	return v
}
