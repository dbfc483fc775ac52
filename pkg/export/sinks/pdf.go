// Package sinks holds the concrete export targets: a gofpdf-backed
// document sink and the messaging deep link.
package sinks

import (
	"github.com/jung-kurt/gofpdf"
)

// PDF adapts gofpdf to the export.DocumentSink contract.
type PDF struct {
	doc *gofpdf.Fpdf
}

// NewPDF creates an A4 portrait document with the first page open.
func NewPDF() *PDF {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 11)
	doc.AddPage()
	return &PDF{doc: doc}
}

func (p *PDF) Text(text string, x, y float64) {
	p.doc.Text(x, y, text)
}

func (p *PDF) AddPage() {
	p.doc.AddPage()
}

func (p *PDF) Save(path string) error {
	return p.doc.OutputFileAndClose(path)
}
