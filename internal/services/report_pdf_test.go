package services

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"sayarti/internal/fonts"
	"sayarti/internal/repositories"
)

func detailedRows(n int) []repositories.MaintenanceDetail {
	rows := make([]repositories.MaintenanceDetail, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, repositories.MaintenanceDetail{
			MaintenanceDate: fmt.Sprintf("2024-01-%02d", i%28+1),
			MaintenanceType: "Oil Change",
			Cost:            floatPtr(float64(i) + 0.5),
			ServiceCenter:   "Alfa Center",
			CarType:         "Toyota",
			Model:           "Camry",
		})
	}
	return rows
}

func TestReportPDFSinglePage(t *testing.T) {
	p := ReportPDF{Font: fonts.Config{}}
	res := ReportResult{Mode: GroupNone, Detailed: detailedRows(3)}

	pdf := p.Render(res, decimal.NewFromInt(1))
	if err := pdf.Error(); err != nil {
		t.Fatalf("render error: %v", err)
	}
	if got := pdf.PageCount(); got != 1 {
		t.Fatalf("pages = %d, want 1", got)
	}
}

func TestReportPDFPaginatesLongDetailedReport(t *testing.T) {
	p := ReportPDF{Font: fonts.Config{}}
	res := ReportResult{Mode: GroupNone, Detailed: detailedRows(120)}

	pdf := p.Render(res, decimal.NewFromInt(1))
	if err := pdf.Error(); err != nil {
		t.Fatalf("render error: %v", err)
	}
	if got := pdf.PageCount(); got < 2 {
		t.Fatalf("pages = %d, want at least 2 for 120 rows", got)
	}
}

func TestReportPDFGroupedOutput(t *testing.T) {
	p := ReportPDF{Font: fonts.Config{}}
	res := ReportResult{
		Mode:  GroupType,
		Label: GroupType.Label(),
		Groups: []repositories.MaintenanceGroup{
			{Group: "Oil Change", Count: 2, Total: decimal.NewFromFloat(110)},
		},
		TotalCost: decimal.NewFromFloat(110),
		Count:     2,
	}

	data, filename, err := p.Output(res, decimal.NewFromInt(1))
	if err != nil {
		t.Fatalf("Output error: %v", err)
	}
	if filename != "report_type.pdf" {
		t.Fatalf("filename = %q", filename)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output does not start with a PDF header")
	}
}
