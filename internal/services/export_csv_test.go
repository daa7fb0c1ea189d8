package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"sayarti/internal/repositories"
)

func floatPtr(v float64) *float64 { return &v }

func int64Ptr(v int64) *int64 { return &v }

func TestWriteReportCSVDetailed(t *testing.T) {
	res := ReportResult{
		Mode: GroupNone,
		Detailed: []repositories.MaintenanceDetail{
			{
				MaintenanceDate: "2024-01-20",
				MaintenanceType: "Oil Change",
				Mileage:         int64Ptr(42000),
				Cost:            floatPtr(120),
				ServiceCenter:   "Alfa, Center",
				Notes:           "first\nline",
				CarType:         "Toyota",
				Model:           "Camry",
			},
			{
				MaintenanceDate: "2024-01-15",
				MaintenanceType: "Inspection",
				CarType:         "Toyota",
				Model:           "Camry",
			},
			{
				MaintenanceDate: "2024-01-05",
				MaintenanceType: "Car Wash",
				Cost:            floatPtr(0),
				CarType:         "Toyota",
				Model:           "Camry",
			},
		},
	}

	var sb strings.Builder
	if err := WriteReportCSV(&sb, res, decimal.NewFromInt(1)); err != nil {
		t.Fatalf("WriteReportCSV error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want header + 3 rows:\n%s", len(lines), sb.String())
	}
	if lines[0] != "date,car,type,mileage,cost,service_center,notes" {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[1] != "2024-01-20,Toyota - Camry,Oil Change,42000,120.00,Alfa  Center,first line" {
		t.Fatalf("sanitized row = %q", lines[1])
	}
	// null cost stays empty, a real zero renders as 0.00
	if !strings.Contains(lines[2], ",Inspection,,,") {
		t.Fatalf("null cost row = %q", lines[2])
	}
	if !strings.Contains(lines[3], ",0.00,") {
		t.Fatalf("zero cost row = %q", lines[3])
	}
}

func TestWriteReportCSVGroupedAppliesRate(t *testing.T) {
	res := ReportResult{
		Mode: GroupType,
		Groups: []repositories.MaintenanceGroup{
			{Group: "Oil Change", Count: 2, Total: decimal.NewFromFloat(110)},
			{Group: "Tire Rotation", Count: 1, Total: decimal.Zero},
		},
	}

	var sb strings.Builder
	if err := WriteReportCSV(&sb, res, decimal.NewFromFloat(0.2667)); err != nil {
		t.Fatalf("WriteReportCSV error: %v", err)
	}

	want := "group,count,total\n" +
		"Oil Change,2,29.34\n" +
		"Tire Rotation,1,0.00\n"
	if sb.String() != want {
		t.Fatalf("csv mismatch\ngot:\n%s\nwant:\n%s", sb.String(), want)
	}
}

type failingWriter struct {
	allow int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.allow <= 0 {
		return 0, errors.New("consumer went away")
	}
	w.allow--
	return len(p), nil
}

func TestWriteReportCSVStopsOnWriteError(t *testing.T) {
	res := ReportResult{
		Mode: GroupType,
		Groups: []repositories.MaintenanceGroup{
			{Group: "A", Count: 1, Total: decimal.NewFromInt(1)},
			{Group: "B", Count: 1, Total: decimal.NewFromInt(1)},
		},
	}

	// header succeeds, first row fails, second row must not be attempted
	w := &failingWriter{allow: 1}
	err := WriteReportCSV(w, res, decimal.NewFromInt(1))
	if err == nil {
		t.Fatalf("expected write error to propagate")
	}
}
