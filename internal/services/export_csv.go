package services

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"sayarti/internal/utils"
)

// WriteReportCSV streams the report line by line. Nothing is buffered beyond
// the line being written, so a slow consumer naturally throttles generation.
// Fields are sanitized by replacement, not quoting; see utils.CSVField.
func WriteReportCSV(w io.Writer, res ReportResult, rate decimal.Decimal) error {
	if res.Mode != GroupNone {
		if _, err := io.WriteString(w, "group,count,total\n"); err != nil {
			return err
		}
		for _, g := range res.Groups {
			_, err := fmt.Fprintf(w, "%s,%d,%s\n",
				utils.CSVField(g.Group),
				g.Count,
				g.Total.Mul(rate).StringFixed(2),
			)
			if err != nil {
				return err
			}
		}
		return nil
	}

	if _, err := io.WriteString(w, "date,car,type,mileage,cost,service_center,notes\n"); err != nil {
		return err
	}
	for _, rec := range res.Detailed {
		mileage := ""
		if rec.Mileage != nil {
			mileage = fmt.Sprintf("%d", *rec.Mileage)
		}
		// null cost renders empty, distinguishable from a real 0.00
		cost := ""
		if rec.Cost != nil {
			cost = decimal.NewFromFloat(*rec.Cost).Mul(rate).StringFixed(2)
		}
		_, err := fmt.Fprintf(w, "%s,%s,%s,%s,%s,%s,%s\n",
			rec.MaintenanceDate,
			utils.CSVField(rec.CarLabel()),
			utils.CSVField(rec.MaintenanceType),
			mileage,
			cost,
			utils.CSVField(rec.ServiceCenter),
			utils.CSVField(rec.Notes),
		)
		if err != nil {
			return err
		}
	}
	return nil
}
