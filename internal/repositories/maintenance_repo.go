package repositories

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	intconfig "sayarti/internal/config"
	intdb "sayarti/internal/db"
	"sayarti/internal/domain"
)

// MaintenanceDetail is one report row joined with its car and creator labels.
type MaintenanceDetail struct {
	ID                  int64    `json:"id"`
	MaintenanceDate     string   `json:"maintenance_date"`
	MaintenanceType     string   `json:"maintenance_type"`
	Mileage             *int64   `json:"mileage"`
	Cost                *float64 `json:"cost"`
	ServiceCenter       string   `json:"service_center"`
	Notes               string   `json:"notes"`
	NextMaintenanceDate string   `json:"next_maintenance_date"`
	CarType             string   `json:"car_type"`
	Model               string   `json:"model"`
	CreatedByName       string   `json:"created_by_name"`
}

func (d MaintenanceDetail) CarLabel() string {
	return d.CarType + " - " + d.Model
}

// MaintenanceGroup is one aggregation bucket (month/type/car).
type MaintenanceGroup struct {
	Group    string          `json:"grp"`
	Count    int             `json:"cnt"`
	Total    decimal.Decimal `json:"total"`
	LastDate string          `json:"last_date"`
}

// NewMaintenance carries the fields of a record to insert.
type NewMaintenance struct {
	CarID               int64
	MaintenanceDate     string
	MaintenanceType     string
	Mileage             *int64
	Cost                *float64
	ServiceCenter       string
	Notes               string
	NextMaintenanceDate string
	CreatedBy           int64
}

// UpcomingMaintenance is a dashboard row for maintenance due soon.
type UpcomingMaintenance struct {
	ID                  int64  `json:"id"`
	MaintenanceDate     string `json:"maintenance_date"`
	NextMaintenanceDate string `json:"next_maintenance_date"`
	MaintenanceType     string `json:"maintenance_type"`
	CarType             string `json:"car_type"`
	Model               string `json:"model"`
}

type MaintenanceRepository struct {
	DB *sql.DB
}

func (r MaintenanceRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// ListDetailed returns every matching record, newest first with record id as
// the stable tie-break.
func (r MaintenanceRepository) ListDetailed(f FilterSet) ([]MaintenanceDetail, error) {
	db := r.db()
	if db == nil || !intdb.HasTable(db, "maintenance") {
		return []MaintenanceDetail{}, nil
	}

	query := `
		SELECT m.id,
		       DATE_FORMAT(m.maintenance_date, '%Y-%m-%d'),
		       m.maintenance_type,
		       m.mileage,
		       m.cost,
		       COALESCE(m.service_center, ''),
		       COALESCE(m.notes, ''),
		       COALESCE(DATE_FORMAT(m.next_maintenance_date, '%Y-%m-%d'), ''),
		       c.car_type,
		       c.model,
		       COALESCE(u.name, '')
		FROM maintenance m
		JOIN cars c ON c.id = m.car_id
		LEFT JOIN users u ON u.id = m.created_by
		WHERE ` + f.Clause() + `
		ORDER BY m.maintenance_date DESC, m.id DESC`

	rows, err := db.Query(query, f.Args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []MaintenanceDetail{}
	for rows.Next() {
		var (
			rec     MaintenanceDetail
			mileage sql.NullInt64
			cost    sql.NullFloat64
		)
		if err := rows.Scan(
			&rec.ID,
			&rec.MaintenanceDate,
			&rec.MaintenanceType,
			&mileage,
			&cost,
			&rec.ServiceCenter,
			&rec.Notes,
			&rec.NextMaintenanceDate,
			&rec.CarType,
			&rec.Model,
			&rec.CreatedByName,
		); err != nil {
			return out, err
		}
		if mileage.Valid {
			v := mileage.Int64
			rec.Mileage = &v
		}
		if cost.Valid {
			v := cost.Float64
			rec.Cost = &v
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// ListGrouped aggregates matching records by groupExpr. groupExpr comes from a
// fixed enum switch, never from user input.
func (r MaintenanceRepository) ListGrouped(groupExpr string, f FilterSet) ([]MaintenanceGroup, error) {
	db := r.db()
	if db == nil || !intdb.HasTable(db, "maintenance") {
		return []MaintenanceGroup{}, nil
	}

	query := `
		SELECT ` + groupExpr + ` AS grp,
		       COUNT(*) AS cnt,
		       COALESCE(SUM(m.cost), 0) AS total,
		       COALESCE(DATE_FORMAT(MAX(m.maintenance_date), '%Y-%m-%d'), '') AS last_date
		FROM maintenance m
		JOIN cars c ON c.id = m.car_id
		WHERE ` + f.Clause() + `
		GROUP BY ` + groupExpr + `
		ORDER BY last_date DESC, total DESC`

	rows, err := db.Query(query, f.Args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []MaintenanceGroup{}
	for rows.Next() {
		var (
			rec   MaintenanceGroup
			total float64
		)
		if err := rows.Scan(&rec.Group, &rec.Count, &total, &rec.LastDate); err != nil {
			return out, err
		}
		rec.Total = decimal.NewFromFloat(total)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Insert stores a new maintenance record.
func (r MaintenanceRepository) Insert(rec NewMaintenance) (int64, error) {
	db := r.db()
	if db == nil {
		return 0, domain.InternalError{Msg: "database not connected"}
	}

	var mileage, cost any
	if rec.Mileage != nil {
		mileage = *rec.Mileage
	}
	if rec.Cost != nil {
		cost = *rec.Cost
	}

	res, err := db.Exec(`
		INSERT INTO maintenance
			(maintenance_date, car_id, maintenance_type, mileage, cost, service_center, notes, next_maintenance_date, created_by)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		rec.MaintenanceDate,
		rec.CarID,
		rec.MaintenanceType,
		mileage,
		cost,
		intdb.NullIfEmpty(rec.ServiceCenter),
		intdb.NullIfEmpty(rec.Notes),
		intdb.NullIfEmpty(rec.NextMaintenanceDate),
		rec.CreatedBy,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// CountForScope counts maintenance rows visible to the given scope.
func (r MaintenanceRepository) CountForScope(adminAll bool, ownerID int64) (int, error) {
	db := r.db()
	if db == nil {
		return 0, domain.InternalError{Msg: "database not connected"}
	}

	var (
		count int
		err   error
	)
	if adminAll {
		err = db.QueryRow(`SELECT COUNT(*) FROM maintenance`).Scan(&count)
	} else {
		err = db.QueryRow(`
			SELECT COUNT(*)
			FROM maintenance m
			JOIN cars c ON c.id = m.car_id
			WHERE c.owner_id = ?`, ownerID).Scan(&count)
	}
	return count, err
}

// UpcomingWithin lists records whose next maintenance date falls within the
// given number of days, soonest first.
func (r MaintenanceRepository) UpcomingWithin(days int, adminAll bool, ownerID int64) ([]UpcomingMaintenance, error) {
	db := r.db()
	if db == nil {
		return []UpcomingMaintenance{}, nil
	}

	where := "m.next_maintenance_date IS NOT NULL AND m.next_maintenance_date <= DATE_ADD(CURDATE(), INTERVAL ? DAY)"
	args := []any{days}
	if !adminAll {
		where += " AND c.owner_id = ?"
		args = append(args, ownerID)
	}

	query := fmt.Sprintf(`
		SELECT m.id,
		       DATE_FORMAT(m.maintenance_date, '%%Y-%%m-%%d'),
		       DATE_FORMAT(m.next_maintenance_date, '%%Y-%%m-%%d'),
		       m.maintenance_type,
		       c.car_type,
		       c.model
		FROM maintenance m
		JOIN cars c ON c.id = m.car_id
		WHERE %s
		ORDER BY m.next_maintenance_date ASC
		LIMIT 10`, where)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []UpcomingMaintenance{}
	for rows.Next() {
		var rec UpcomingMaintenance
		if err := rows.Scan(
			&rec.ID,
			&rec.MaintenanceDate,
			&rec.NextMaintenanceDate,
			&rec.MaintenanceType,
			&rec.CarType,
			&rec.Model,
		); err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// ListServiceCenters returns distinct non-empty service centers for filter UIs.
func (r MaintenanceRepository) ListServiceCenters() ([]string, error) {
	db := r.db()
	if db == nil {
		return []string{}, nil
	}

	rows, err := db.Query(`
		SELECT DISTINCT service_center
		FROM maintenance
		WHERE service_center IS NOT NULL AND service_center <> ''
		ORDER BY service_center`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var sc string
		if err := rows.Scan(&sc); err != nil {
			return out, err
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}
