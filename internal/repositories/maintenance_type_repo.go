package repositories

import (
	"database/sql"

	intconfig "sayarti/internal/config"
	"sayarti/internal/domain"
)

type MaintenanceType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type MaintenanceTypeRepository struct {
	DB *sql.DB
}

func (r MaintenanceTypeRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r MaintenanceTypeRepository) List() ([]MaintenanceType, error) {
	db := r.db()
	if db == nil {
		return []MaintenanceType{}, nil
	}

	rows, err := db.Query(`SELECT id, name FROM maintenance_types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []MaintenanceType{}
	for rows.Next() {
		var rec MaintenanceType
		if err := rows.Scan(&rec.ID, &rec.Name); err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Create inserts a type name. Uniqueness is case-sensitive, hence the BINARY
// probe; the utf8mb4 collation would otherwise collapse case variants.
func (r MaintenanceTypeRepository) Create(name string) (int64, error) {
	db := r.db()
	if db == nil {
		return 0, domain.InternalError{Msg: "database not connected"}
	}

	var existing int64
	err := db.QueryRow(`SELECT id FROM maintenance_types WHERE BINARY name = ?`, name).Scan(&existing)
	if err == nil {
		return 0, domain.ConflictError{Resource: "maintenance type", Msg: "name already exists"}
	}
	if err != sql.ErrNoRows {
		return 0, err
	}

	res, err := db.Exec(`INSERT INTO maintenance_types (name) VALUES (?)`, name)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
