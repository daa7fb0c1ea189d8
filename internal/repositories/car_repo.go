package repositories

import (
	"database/sql"

	intconfig "sayarti/internal/config"
	"sayarti/internal/domain"
)

type Car struct {
	ID        int64  `json:"id"`
	CarType   string `json:"car_type"`
	Model     string `json:"model"`
	OwnerID   int64  `json:"owner_id"`
	OwnerName string `json:"owner_name,omitempty"`
}

func (c Car) Label() string {
	return c.CarType + " - " + c.Model
}

type CarRepository struct {
	DB *sql.DB
}

func (r CarRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// ListForScope returns all cars for admins, or the owner's cars otherwise.
func (r CarRepository) ListForScope(adminAll bool, ownerID int64) ([]Car, error) {
	db := r.db()
	if db == nil {
		return []Car{}, nil
	}

	var (
		rows *sql.Rows
		err  error
	)
	if adminAll {
		rows, err = db.Query(`
			SELECT c.id, c.car_type, c.model, c.owner_id, COALESCE(u.name, '')
			FROM cars c
			LEFT JOIN users u ON u.id = c.owner_id
			ORDER BY c.id DESC`)
	} else {
		rows, err = db.Query(`
			SELECT c.id, c.car_type, c.model, c.owner_id, ''
			FROM cars c
			WHERE c.owner_id = ?
			ORDER BY c.id DESC`, ownerID)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Car{}
	for rows.Next() {
		var rec Car
		if err := rows.Scan(&rec.ID, &rec.CarType, &rec.Model, &rec.OwnerID, &rec.OwnerName); err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r CarRepository) GetByID(id int64) (Car, error) {
	var rec Car
	db := r.db()
	if db == nil {
		return rec, domain.InternalError{Msg: "database not connected"}
	}

	err := db.QueryRow(`
		SELECT id, car_type, model, owner_id
		FROM cars
		WHERE id = ?`, id).Scan(&rec.ID, &rec.CarType, &rec.Model, &rec.OwnerID)
	if err == sql.ErrNoRows {
		return rec, domain.NotFoundError{Resource: "car"}
	}
	return rec, err
}

func (r CarRepository) Create(carType, model string, ownerID int64) (int64, error) {
	db := r.db()
	if db == nil {
		return 0, domain.InternalError{Msg: "database not connected"}
	}

	res, err := db.Exec(`INSERT INTO cars (car_type, model, owner_id) VALUES (?,?,?)`,
		carType, model, ownerID)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update edits type/model; non-admins can only touch their own cars.
func (r CarRepository) Update(id int64, carType, model string, adminAll bool, ownerID int64) error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not connected"}
	}

	var (
		res sql.Result
		err error
	)
	if adminAll {
		res, err = db.Exec(`UPDATE cars SET car_type = ?, model = ? WHERE id = ?`, carType, model, id)
	} else {
		res, err = db.Exec(`UPDATE cars SET car_type = ?, model = ? WHERE id = ? AND owner_id = ?`, carType, model, id, ownerID)
	}
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "car"}
	}
	return nil
}

// Delete removes a car, blocked while maintenance records still reference it.
func (r CarRepository) Delete(id int64, adminAll bool, ownerID int64) error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not connected"}
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM maintenance WHERE car_id = ?`, id).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return domain.ConflictError{Resource: "car", Msg: "maintenance records exist"}
	}

	var (
		res sql.Result
		err error
	)
	if adminAll {
		res, err = db.Exec(`DELETE FROM cars WHERE id = ?`, id)
	} else {
		res, err = db.Exec(`DELETE FROM cars WHERE id = ? AND owner_id = ?`, id, ownerID)
	}
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "car"}
	}
	return nil
}

func (r CarRepository) CountForScope(adminAll bool, ownerID int64) (int, error) {
	db := r.db()
	if db == nil {
		return 0, domain.InternalError{Msg: "database not connected"}
	}

	var (
		count int
		err   error
	)
	if adminAll {
		err = db.QueryRow(`SELECT COUNT(*) FROM cars`).Scan(&count)
	} else {
		err = db.QueryRow(`SELECT COUNT(*) FROM cars WHERE owner_id = ?`, ownerID).Scan(&count)
	}
	return count, err
}
