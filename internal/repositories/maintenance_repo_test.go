package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
)

func expectTableProbe(mock sqlmock.Sqlmock, present bool) {
	rows := sqlmock.NewRows([]string{"table_name"})
	if present {
		rows.AddRow("maintenance")
	}
	mock.ExpectQuery("information_schema\\.tables").WithArgs("maintenance").WillReturnRows(rows)
}

func TestListDetailedMissingTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectTableProbe(mock, false)

	repo := MaintenanceRepository{DB: db}
	out, err := repo.ListDetailed(FilterSet{Where: []string{"1=1"}})
	if err != nil {
		t.Fatalf("missing table must not error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("rows = %d, want empty", len(out))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListDetailedScansNullableColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectTableProbe(mock, true)
	mock.ExpectQuery("FROM maintenance m").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "maintenance_date", "maintenance_type", "mileage", "cost",
			"service_center", "notes", "next_maintenance_date",
			"car_type", "model", "created_by_name",
		}).AddRow(1, "2024-02-10", "Inspection", nil, nil, "", "", "", "Kia", "Rio", ""))

	repo := MaintenanceRepository{DB: db}
	out, err := repo.ListDetailed(FilterSet{
		Where: []string{"1=1", "c.owner_id = ?"},
		Args:  []any{int64(9)},
	})
	if err != nil {
		t.Fatalf("ListDetailed error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("rows = %d, want 1", len(out))
	}
	if out[0].Mileage != nil || out[0].Cost != nil {
		t.Fatalf("null mileage/cost must scan to nil pointers")
	}
	if out[0].CarLabel() != "Kia - Rio" {
		t.Fatalf("car label = %q", out[0].CarLabel())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListGroupedCoalescesNullTotals(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectTableProbe(mock, true)
	mock.ExpectQuery("GROUP BY m.maintenance_type").
		WillReturnRows(sqlmock.NewRows([]string{"grp", "cnt", "total", "last_date"}).
			AddRow("Tire Rotation", 3, 0.0, "2024-02-01"))

	repo := MaintenanceRepository{DB: db}
	out, err := repo.ListGrouped("m.maintenance_type", FilterSet{Where: []string{"1=1"}})
	if err != nil {
		t.Fatalf("ListGrouped error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("groups = %d, want 1", len(out))
	}
	if !out[0].Total.Equal(decimal.Zero) {
		t.Fatalf("total = %s, want 0", out[0].Total)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInsertStoresNullsForOptionalFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO maintenance").
		WithArgs("2024-03-01", int64(4), "Oil Change", nil, nil, nil, nil, nil, int64(2)).
		WillReturnResult(sqlmock.NewResult(11, 1))

	repo := MaintenanceRepository{DB: db}
	id, err := repo.Insert(NewMaintenance{
		CarID:           4,
		MaintenanceDate: "2024-03-01",
		MaintenanceType: "Oil Change",
		CreatedBy:       2,
	})
	if err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	if id != 11 {
		t.Fatalf("id = %d, want 11", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpcomingWithinScopesToOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("ORDER BY m.next_maintenance_date ASC").
		WithArgs(30, int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "maintenance_date", "next_maintenance_date",
			"maintenance_type", "car_type", "model",
		}).AddRow(7, "2024-05-01", "2024-06-10", "Brakes", "Kia", "Rio"))

	repo := MaintenanceRepository{DB: db}
	out, err := repo.UpcomingWithin(30, false, 5)
	if err != nil {
		t.Fatalf("UpcomingWithin error: %v", err)
	}
	if len(out) != 1 || out[0].NextMaintenanceDate != "2024-06-10" {
		t.Fatalf("unexpected rows: %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
