package repositories

import (
	"database/sql"
	"testing"
	"time"

	"vtc-booking/internal/domain/models"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

func newRepo(t *testing.T) (BookingRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
		db.Close()
	})
	return BookingRepo{DB: db}, mock
}

func storedColumns() []string {
	return []string{
		"id", "pickup", "destination", "date", "time", "passengers",
		"service_type", "name", "phone", "email", "notes", "status",
		"created_at", "updated_at",
	}
}

func storedRow(id int64) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(storedColumns()).AddRow(
		id, "Gare de Lyon", "Orly", "2025-06-11", "14:30", 2,
		"premium", "Jean Dupont", "0612345678", "jean@example.com", "",
		"pending", now, now,
	)
}

func TestCreate_ReturnsStoredRow(t *testing.T) {
	repo, mock := newRepo(t)

	req := models.BookingRequest{
		Pickup:      "Gare de Lyon",
		Destination: "Orly",
		Date:        "2025-06-11",
		Time:        "14:30",
		Passengers:  2,
		ServiceType: "premium",
		Name:        "Jean Dupont",
		Phone:       "0612345678",
		Email:       "jean@example.com",
	}

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs("Gare de Lyon", "Orly", "2025-06-11", "14:30", 2, "premium",
			"Jean Dupont", "0612345678", "jean@example.com", nil,
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(7, 1))

	b, err := repo.Create(req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if b.ID != 7 {
		t.Errorf("id = %d, want 7", b.ID)
	}
	if b.Status != models.StatusPending {
		t.Errorf("status = %q, want pending", b.Status)
	}
	if b.CreatedAt.IsZero() || !b.CreatedAt.Equal(b.UpdatedAt) {
		t.Errorf("timestamps not assigned together: %v / %v", b.CreatedAt, b.UpdatedAt)
	}
}

func TestCreate_StoresOptionalFieldsAsNull(t *testing.T) {
	repo, mock := newRepo(t)

	req := models.BookingRequest{
		Pickup:      "Gare de Lyon",
		Destination: "Orly",
		Date:        "2025-06-11",
		Time:        "14:30",
		Passengers:  1,
		ServiceType: "standard",
		Name:        "Jean Dupont",
		Phone:       "0612345678",
	}

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs("Gare de Lyon", "Orly", "2025-06-11", "14:30", 1, "standard",
			"Jean Dupont", "0612345678", nil, nil,
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(8, 1))

	if _, err := repo.Create(req); err != nil {
		t.Fatalf("create: %v", err)
	}
}

func TestGetByID(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("FROM bookings WHERE id").
		WithArgs(int64(7)).
		WillReturnRows(storedRow(7))

	b, err := repo.GetByID(7)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if b.Pickup != "Gare de Lyon" || b.Email != "jean@example.com" {
		t.Errorf("unexpected row: %+v", b)
	}
}

func TestGetByID_NoRows(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("FROM bookings WHERE id").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	if _, err := repo.GetByID(99); err != sql.ErrNoRows {
		t.Fatalf("err = %v, want sql.ErrNoRows", err)
	}
}

func TestList_FiltersByStatusAndPaginates(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings WHERE status`).
		WithArgs("confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery("OFFSET").
		WithArgs("confirmed", 5, 5).
		WillReturnRows(storedRow(7))

	out, total, err := repo.List("confirmed", 2, 5)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 12 {
		t.Errorf("total = %d, want 12", total)
	}
	if len(out) != 1 {
		t.Errorf("rows = %d, want 1", len(out))
	}
}

func TestList_NoFilter(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("OFFSET").
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows(storedColumns()))

	out, total, err := repo.List("", 1, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 0 || len(out) != 0 {
		t.Errorf("expected empty page, got total=%d rows=%d", total, len(out))
	}
	if out == nil {
		t.Error("empty page should be a non-nil slice")
	}
}

func TestUpdateStatus(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec("UPDATE bookings SET status").
		WithArgs("confirmed", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := repo.UpdateStatus(7, "confirmed")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if n != 1 {
		t.Errorf("affected = %d, want 1", n)
	}
}

func TestUpdateStatus_RejectsInvalidWithoutWriting(t *testing.T) {
	repo, _ := newRepo(t)

	if _, err := repo.UpdateStatus(7, "archived"); err == nil {
		t.Fatal("expected error for invalid status")
	}
}

func TestCountSlot(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("status IN").
		WithArgs("2025-06-11", "14:30").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	n, err := repo.CountSlot("2025-06-11", "14:30")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("n = %d, want 1", n)
	}
}

func TestRecent(t *testing.T) {
	repo, mock := newRepo(t)

	rows := storedRow(9)
	now := time.Now()
	rows.AddRow(8, "CDG", "Paris 8e", "2025-06-12", "09:00", 1,
		"standard", "Marie Curie", "0711223344", "", "", "confirmed", now, now)
	mock.ExpectQuery("ORDER BY created_at DESC LIMIT").
		WithArgs(5).
		WillReturnRows(rows)

	out, err := repo.Recent(5)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(out) != 2 || out[0].ID != 9 || out[1].ID != 8 {
		t.Errorf("unexpected rows: %+v", out)
	}
}
