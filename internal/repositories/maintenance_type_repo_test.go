package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"sayarti/internal/domain"
)

func TestMaintenanceTypeCreateConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("WHERE BINARY name").
		WithArgs("Oil Change").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	repo := MaintenanceTypeRepository{DB: db}
	_, err = repo.Create("Oil Change")
	if !domain.IsConflict(err) {
		t.Fatalf("err = %v, want conflict for an existing name", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMaintenanceTypeCreateInsertsWhenNameIsNew(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("WHERE BINARY name").
		WithArgs("Wheel Alignment").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("INSERT INTO maintenance_types").
		WithArgs("Wheel Alignment").
		WillReturnResult(sqlmock.NewResult(8, 1))

	repo := MaintenanceTypeRepository{DB: db}
	id, err := repo.Create("Wheel Alignment")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if id != 8 {
		t.Fatalf("id = %d, want 8", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
