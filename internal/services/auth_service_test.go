package services

import (
	"database/sql"
	"testing"
	"time"

	"vtc-booking/internal/domain"
	"vtc-booking/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) (AuthService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := AuthService{
		Repo:   repositories.AdminRepo{DB: db},
		Secret: []byte("test-secret"),
		Now:    func() time.Time { return testNow },
	}
	return svc, mock, func() { db.Close() }
}

func adminRow(hash string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "username", "password", "email", "created_at"}).
		AddRow(int64(1), "admin", hash, "admin@vtc.example", testNow)
}

func TestBootstrap_SucceedsOnceThenConflicts(t *testing.T) {
	svc, mock, done := newAuthService(t)
	defer done()

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("INSERT INTO admin_users").
		WithArgs("admin", sqlmock.AnyArg(), "admin@vtc.example").
		WillReturnResult(sqlmock.NewResult(1, 1))

	id, err := svc.Bootstrap("admin", "s3cret", "admin@vtc.example")
	if err != nil {
		t.Fatalf("first bootstrap failed: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected id 1, got %d", id)
	}

	// A principal now exists; the second call must not insert anything.
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	if _, err := svc.Bootstrap("intruder", "other", ""); !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected storage access: %v", err)
	}
}

func TestBootstrap_RequiresCredentials(t *testing.T) {
	svc, mock, done := newAuthService(t)
	defer done()

	if _, err := svc.Bootstrap("", "pass", ""); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := svc.Bootstrap("user", "", ""); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("storage touched: %v", err)
	}
}

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	svc, mock, done := newAuthService(t)
	defer done()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}

	mock.ExpectQuery("FROM admin_users WHERE username").
		WithArgs("admin").
		WillReturnRows(adminRow(string(hash)))

	token, user, err := svc.Login("admin", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Username != "admin" || user.ID != 1 {
		t.Fatalf("wrong user returned: %+v", user)
	}

	principal, err := svc.Authenticate(token)
	if err != nil {
		t.Fatalf("issued token rejected: %v", err)
	}
	if principal.ID != 1 || principal.Username != "admin" {
		t.Fatalf("wrong principal: %+v", principal)
	}
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	svc, mock, done := newAuthService(t)
	defer done()

	mock.ExpectQuery("FROM admin_users WHERE username").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	if _, _, err := svc.Login("ghost", "whatever"); !domain.IsAuth(err) {
		t.Fatalf("expected auth error for unknown user, got %v", err)
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.DefaultCost)
	mock.ExpectQuery("FROM admin_users WHERE username").
		WithArgs("admin").
		WillReturnRows(adminRow(string(hash)))

	if _, _, err := svc.Login("admin", "wrong"); !domain.IsAuth(err) {
		t.Fatalf("expected auth error for wrong password, got %v", err)
	}
}

func TestAuthenticate_RejectsTamperedToken(t *testing.T) {
	svc, mock, done := newAuthService(t)
	defer done()

	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	mock.ExpectQuery("FROM admin_users WHERE username").
		WithArgs("admin").
		WillReturnRows(adminRow(string(hash)))

	token, _, err := svc.Login("admin", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	// Flip one character of the signature.
	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'a' {
		tampered[last] = 'b'
	} else {
		tampered[last] = 'a'
	}

	if _, err := svc.Authenticate(string(tampered)); !domain.IsAuth(err) {
		t.Fatalf("tampered token accepted: %v", err)
	}
}

func TestAuthenticate_RejectsExpiredToken(t *testing.T) {
	svc, mock, done := newAuthService(t)
	defer done()

	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	mock.ExpectQuery("FROM admin_users WHERE username").
		WithArgs("admin").
		WillReturnRows(adminRow(string(hash)))

	token, _, err := svc.Login("admin", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	later := svc
	later.Now = func() time.Time { return testNow.Add(25 * time.Hour) }
	if _, err := later.Authenticate(token); !domain.IsAuth(err) {
		t.Fatalf("expired token accepted: %v", err)
	}

	// Still inside the 24-hour window it remains valid.
	within := svc
	within.Now = func() time.Time { return testNow.Add(23 * time.Hour) }
	if _, err := within.Authenticate(token); err != nil {
		t.Fatalf("token rejected inside validity window: %v", err)
	}
}
