package services

import (
	"strconv"
	"time"

	"sayarti/internal/repositories"
	"sayarti/internal/utils"
)

// AuthScope is the authorization context of the caller. Admins see all
// records; everyone else only records for cars they own.
type AuthScope struct {
	IsAdmin bool
	UserID  int64
}

// ReportQuery carries the raw request parameters. Values arrive as strings;
// malformed ones are treated as absent rather than failing the request.
type ReportQuery struct {
	Group         string
	From          string
	To            string
	QuickFilter   string
	CarID         string
	Type          string
	ServiceCenter string
	OwnerID       string // admin-only owner override
	Currency      string
}

// GroupMode selects the aggregation of a report.
type GroupMode int

const (
	GroupNone GroupMode = iota
	GroupMonth
	GroupType
	GroupCar
)

// ParseGroupMode maps the raw group parameter; anything unrecognized is the
// detailed view.
func ParseGroupMode(s string) GroupMode {
	switch s {
	case "month":
		return GroupMonth
	case "type":
		return GroupType
	case "car":
		return GroupCar
	default:
		return GroupNone
	}
}

func (g GroupMode) String() string {
	switch g {
	case GroupMonth:
		return "month"
	case GroupType:
		return "type"
	case GroupCar:
		return "car"
	default:
		return "none"
	}
}

// SQLExpr is the grouping expression. Fixed per mode; never user input.
func (g GroupMode) SQLExpr() string {
	switch g {
	case GroupMonth:
		return "DATE_FORMAT(m.maintenance_date, '%Y-%m')"
	case GroupType:
		return "m.maintenance_type"
	case GroupCar:
		return "CONCAT(c.car_type, ' - ', c.model)"
	default:
		return ""
	}
}

// Label is the Arabic column heading for the group key.
func (g GroupMode) Label() string {
	switch g {
	case GroupMonth:
		return "الشهر"
	case GroupType:
		return "نوع الصيانة"
	case GroupCar:
		return "السيارة"
	default:
		return "المجموعة"
	}
}

// ResolveFilters turns raw parameters into the ordered predicate set. The
// authorization scope always comes first; absent values add no predicate at
// all, so nothing ever widens into a match-anything condition.
func ResolveFilters(q ReportQuery, scope AuthScope, now time.Time) repositories.FilterSet {
	f := repositories.FilterSet{Where: []string{"1=1"}}

	if !scope.IsAdmin {
		f.Add("c.owner_id = ?", scope.UserID)
	} else if owner := utils.TrimOrEmpty(q.OwnerID); owner != "" {
		if id, err := strconv.ParseInt(owner, 10, 64); err == nil {
			f.Add("c.owner_id = ?", id)
		}
	}

	from, to := resolveDateRange(q.From, q.To, q.QuickFilter, now)
	if from != "" {
		f.Add("m.maintenance_date >= ?", from)
	}
	if to != "" {
		f.Add("m.maintenance_date <= ?", to)
	}

	if carID := utils.TrimOrEmpty(q.CarID); carID != "" {
		if id, err := strconv.ParseInt(carID, 10, 64); err == nil {
			f.Add("m.car_id = ?", id)
		}
	}
	if mtype := utils.TrimOrEmpty(q.Type); mtype != "" {
		f.Add("m.maintenance_type = ?", mtype)
	}
	if sc := utils.TrimOrEmpty(q.ServiceCenter); sc != "" {
		// substring match, case-insensitive via the utf8mb4 collation
		f.Add("m.service_center LIKE ?", "%"+sc+"%")
	}

	return f
}

// resolveDateRange applies the quick-filter preset. Explicit from/to always
// win; an unrecognized token leaves the range open.
func resolveDateRange(from, to, qf string, now time.Time) (string, string) {
	from = utils.TrimOrEmpty(from)
	to = utils.TrimOrEmpty(to)
	qf = utils.TrimOrEmpty(qf)
	if from != "" || to != "" || qf == "" {
		return from, to
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch qf {
	case "today":
		d := utils.FormatDate(today)
		return d, d
	case "this_week":
		// ISO week, Monday first
		start := today.AddDate(0, 0, -int((today.Weekday()+6)%7))
		end := start.AddDate(0, 0, 6)
		return utils.FormatDate(start), utils.FormatDate(end)
	case "this_month":
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		end := start.AddDate(0, 1, 0).AddDate(0, 0, -1)
		return utils.FormatDate(start), utils.FormatDate(end)
	case "last_30d":
		return utils.FormatDate(today.AddDate(0, 0, -30)), utils.FormatDate(today)
	}
	return "", ""
}
