package services

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"

	"sayarti/internal/fonts"
	"sayarti/internal/utils"
)

// A4 layout in mm. Columns are anchored to right-aligned x coordinates,
// consistent with right-to-left text flow.
const (
	pdfRightEdge = 190.0
	pdfLeftEdge  = 20.0
	pdfTopStart  = 30.0
	pdfPageTop   = 20.0
	pdfBottom    = 270.0
)

// ReportPDF renders a report into a paginated A4 document. Font is the
// process-wide resolution result, shared read-only across requests.
type ReportPDF struct {
	Font fonts.Config
}

// Output renders the document and returns its bytes plus a download filename.
func (p ReportPDF) Output(res ReportResult, rate decimal.Decimal) ([]byte, string, error) {
	pdf := p.Render(res, rate)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("report_%s.pdf", res.Mode.String())
	return buf.Bytes(), filename, nil
}

// Render builds the document without serializing it, so callers (and tests)
// can inspect page counts.
func (p ReportPDF) Render(res ReportResult, rate decimal.Decimal) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	family := "Helvetica"
	if p.Font.HasArabic() {
		pdf.AddUTF8Font("arabic", "", p.Font.Path)
		family = "arabic"
	}
	pdf.SetTitle("تقرير الصيانة", true)
	pdf.AddPage()

	if res.Mode == GroupNone {
		p.renderDetailed(pdf, family, res, rate)
	} else {
		p.renderGrouped(pdf, family, res, rate)
	}
	return pdf
}

// rtext draws shaped text anchored to a right x coordinate. The drawing
// primitive only handles left-to-right runs, so the string goes through the
// shaping step first.
func rtext(pdf *gofpdf.Fpdf, x, y float64, s string) {
	shaped := fonts.Shape(s)
	pdf.Text(x-pdf.GetStringWidth(shaped), y, shaped)
}

// rnum draws a plain numeric/latin value right-anchored, no shaping needed.
func rnum(pdf *gofpdf.Fpdf, x, y float64, s string) {
	pdf.Text(x-pdf.GetStringWidth(s), y, s)
}

func (p ReportPDF) renderGrouped(pdf *gofpdf.Fpdf, family string, res ReportResult, rate decimal.Decimal) {
	y := pdfTopStart

	pdf.SetFont(family, "", 14)
	rtext(pdf, pdfRightEdge, y, "تقرير الصيانة (تجميعي)")
	y += 8

	pdf.SetFont(family, "", 10)
	rtext(pdf, pdfRightEdge, y, "تجميع حسب: "+res.Label)
	y += 8

	header := func() {
		pdf.SetFont(family, "", 11)
		rtext(pdf, pdfRightEdge, y, "المجموعة")
		rtext(pdf, 125, y, "عدد")
		rtext(pdf, 75, y, "الإجمالي")
		y += 3
		pdf.Line(pdfLeftEdge, y, pdfRightEdge, y)
		y += 6
	}
	header()

	for _, g := range res.Groups {
		if y > pdfBottom {
			pdf.AddPage()
			y = pdfPageTop
			header()
		}
		pdf.SetFont(family, "", 10)
		rtext(pdf, pdfRightEdge, y, g.Group)
		rnum(pdf, 125, y, fmt.Sprintf("%d", g.Count))
		rnum(pdf, 75, y, g.Total.Mul(rate).StringFixed(2))
		y += 6
	}

	y += 8
	pdf.SetFont(family, "", 12)
	rtext(pdf, pdfRightEdge, y, "الإجمالي الكلي: "+res.TotalCost.Mul(rate).StringFixed(2))
}

func (p ReportPDF) renderDetailed(pdf *gofpdf.Fpdf, family string, res ReportResult, rate decimal.Decimal) {
	y := pdfTopStart

	pdf.SetFont(family, "", 14)
	rtext(pdf, pdfRightEdge, y, "تقرير الصيانة (تفصيلي)")
	y += 8

	header := func() {
		pdf.SetFont(family, "", 9)
		rtext(pdf, pdfRightEdge, y, "التاريخ")
		rtext(pdf, 160, y, "السيارة")
		rtext(pdf, 130, y, "النوع")
		rtext(pdf, 110, y, "العداد")
		rtext(pdf, 90, y, "التكلفة")
		rtext(pdf, 70, y, "المركز")
		y += 3
		pdf.Line(pdfLeftEdge, y, pdfRightEdge, y)
		y += 5
	}
	header()

	for _, rec := range res.Detailed {
		if y > pdfBottom {
			pdf.AddPage()
			y = pdfPageTop
			header()
		}
		pdf.SetFont(family, "", 9)
		rnum(pdf, pdfRightEdge, y, rec.MaintenanceDate)
		rtext(pdf, 160, y, rec.CarLabel())
		rtext(pdf, 130, y, rec.MaintenanceType)
		if rec.Mileage != nil {
			rnum(pdf, 110, y, fmt.Sprintf("%d", *rec.Mileage))
		}
		// null cost stays blank so it never reads as a free service
		if rec.Cost != nil {
			rnum(pdf, 90, y, decimal.NewFromFloat(*rec.Cost).Mul(rate).StringFixed(2))
		}
		rtext(pdf, 70, y, utils.Truncate(rec.ServiceCenter, 18))
		y += 5

		if rec.Notes != "" {
			rtext(pdf, pdfRightEdge, y, "- "+utils.Truncate(rec.Notes, 90))
			y += 4
		}
	}
}
