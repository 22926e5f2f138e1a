package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Label is one printable box label.
type Label struct {
	Barcode     string
	ItemName    string
	BatchNumber string
	Quantity    int
	Location    string
}

// Generator renders barcode labels onto A4 pages, three labels per row.
type Generator struct {
	companyName string
}

func NewGenerator(companyName string) *Generator {
	return &Generator{companyName: companyName}
}

const (
	labelWidth   = 63.0
	labelHeight  = 38.0
	labelMargin  = 5.0
	labelsPerRow = 3
)

// RenderLabels returns the PDF bytes for the given labels.
func (g *Generator) RenderLabels(labels []Label) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	_, pageH := doc.GetPageSize()

	x, y := labelMargin, labelMargin
	for i, label := range labels {
		if i > 0 && i%labelsPerRow == 0 {
			x = labelMargin
			y += labelHeight + labelMargin
			if y+labelHeight > pageH-labelMargin {
				doc.AddPage()
				y = labelMargin
			}
		}
		g.drawLabel(doc, x, y, label)
		x += labelWidth + labelMargin
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render labels pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *Generator) drawLabel(doc *gofpdf.Fpdf, x, y float64, label Label) {
	doc.Rect(x, y, labelWidth, labelHeight, "D")

	doc.SetXY(x+2, y+2)
	doc.SetFont("Helvetica", "B", 8)
	doc.CellFormat(labelWidth-4, 4, g.companyName, "", 0, "C", false, 0, "")

	doc.SetXY(x+2, y+8)
	doc.SetFont("Helvetica", "", 9)
	doc.CellFormat(labelWidth-4, 5, label.ItemName, "", 0, "C", false, 0, "")

	// The barcode string doubles as the scannable text; printed oversized in
	// a monospace face for handheld scanners that OCR.
	doc.SetXY(x+2, y+15)
	doc.SetFont("Courier", "B", 10)
	doc.CellFormat(labelWidth-4, 8, label.Barcode, "1", 0, "C", false, 0, "")

	doc.SetXY(x+2, y+26)
	doc.SetFont("Helvetica", "", 7)
	doc.CellFormat(labelWidth-4, 4, fmt.Sprintf("Batch %s", label.BatchNumber), "", 0, "C", false, 0, "")

	doc.SetXY(x+2, y+31)
	doc.CellFormat(labelWidth-4, 4, fmt.Sprintf("Qty %d / %s", label.Quantity, label.Location), "", 0, "C", false, 0, "")
}
