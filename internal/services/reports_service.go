package services

import (
	"time"

	"github.com/shopspring/decimal"

	"sayarti/internal/repositories"
)

// ReportResult is built fresh per request and never cached.
type ReportResult struct {
	Mode      GroupMode                        `json:"-"`
	ModeName  string                           `json:"mode"`
	Label     string                           `json:"label,omitempty"`
	Detailed  []repositories.MaintenanceDetail `json:"rows,omitempty"`
	Groups    []repositories.MaintenanceGroup  `json:"groups,omitempty"`
	TotalCost decimal.Decimal                  `json:"total_cost"`
	Count     int                              `json:"count"`
}

type ReportsService struct {
	MaintRepo repositories.MaintenanceRepository
	Now       func() time.Time
}

// BuildReport resolves filters and runs the selected aggregation. The same
// filter set feeds both modes; the mode only changes the shape of the rows,
// never the candidate set.
func (s ReportsService) BuildReport(q ReportQuery, scope AuthScope) (ReportResult, error) {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}

	mode := ParseGroupMode(q.Group)
	filters := ResolveFilters(q, scope, now)

	if mode == GroupNone {
		return s.buildDetailed(filters)
	}
	return s.buildGrouped(mode, filters)
}

func (s ReportsService) buildDetailed(filters repositories.FilterSet) (ReportResult, error) {
	rows, err := s.MaintRepo.ListDetailed(filters)
	if err != nil {
		return ReportResult{}, err
	}

	// null costs stay in the listing but out of the sum
	total := decimal.Zero
	for _, rec := range rows {
		if rec.Cost != nil {
			total = total.Add(decimal.NewFromFloat(*rec.Cost))
		}
	}

	return ReportResult{
		Mode:      GroupNone,
		ModeName:  "detailed",
		Detailed:  rows,
		TotalCost: total,
		Count:     len(rows),
	}, nil
}

func (s ReportsService) buildGrouped(mode GroupMode, filters repositories.FilterSet) (ReportResult, error) {
	rows, err := s.MaintRepo.ListGrouped(mode.SQLExpr(), filters)
	if err != nil {
		return ReportResult{}, err
	}

	// the grand total is the sum of group totals by construction
	grand := decimal.Zero
	count := 0
	for _, rec := range rows {
		grand = grand.Add(rec.Total)
		count += rec.Count
	}

	return ReportResult{
		Mode:      mode,
		ModeName:  "grouped",
		Label:     mode.Label(),
		Groups:    rows,
		TotalCost: grand,
		Count:     count,
	}, nil
}
