package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"vtc-booking/internal/domain/models"
)

const bookingColumns = `id, pickup, destination, date, time, passengers, service_type, name, phone,
		COALESCE(email, ''), COALESCE(notes, ''), status, created_at, updated_at`

// BookingRepo owns the bookings table. The DB handle is injected; the repo
// never reaches for ambient state.
type BookingRepo struct {
	DB *sql.DB
}

// Create inserts a pending booking and returns the stored row. Timestamps
// are assigned here, once, so the caller gets back exactly what was written.
func (r BookingRepo) Create(req models.BookingRequest) (models.Booking, error) {
	now := time.Now().Truncate(time.Second)

	res, err := r.DB.Exec(`
		INSERT INTO bookings (pickup, destination, date, time, passengers, service_type,
			name, phone, email, notes, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 'pending', ?, ?)
	`,
		req.Pickup, req.Destination, req.Date, req.Time, req.Passengers, req.ServiceType,
		req.Name, req.Phone, nullIfEmpty(req.Email), nullIfEmpty(req.Notes), now, now,
	)
	if err != nil {
		return models.Booking{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Booking{}, err
	}

	return models.Booking{
		ID:          id,
		Pickup:      req.Pickup,
		Destination: req.Destination,
		Date:        req.Date,
		Time:        req.Time,
		Passengers:  req.Passengers,
		ServiceType: req.ServiceType,
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Notes:       req.Notes,
		Status:      models.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// GetByID returns the full row, or sql.ErrNoRows when absent.
func (r BookingRepo) GetByID(id int64) (models.Booking, error) {
	row := r.DB.QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id = ? LIMIT 1`, id)
	return scanBooking(row)
}

// List returns one page of bookings newest-first plus the total count
// matching the filter. An empty status means no filter.
func (r BookingRepo) List(status string, page, limit int) ([]models.Booking, int, error) {
	where := ""
	countArgs := []any{}
	if status != "" {
		where = " WHERE status = ?"
		countArgs = append(countArgs, status)
	}

	var total int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM bookings`+where, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	args := append(countArgs, limit, offset)
	rows, err := r.DB.Query(`SELECT `+bookingColumns+` FROM bookings`+where+`
		ORDER BY created_at DESC LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, b)
	}
	return out, total, rows.Err()
}

// UpdateStatus sets the status and refreshes updated_at, returning the
// number of rows matched. Invalid statuses are rejected before any write.
func (r BookingRepo) UpdateStatus(id int64, status string) (int64, error) {
	if !models.ValidStatus(status) {
		return 0, fmt.Errorf("invalid status %q", status)
	}
	res, err := r.DB.Exec(`UPDATE bookings SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, status, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// CountSlot counts active bookings holding the exact (date, time) slot.
// Cancelled and completed bookings do not occupy a slot.
func (r BookingRepo) CountSlot(date, timeStr string) (int, error) {
	var n int
	err := r.DB.QueryRow(`
		SELECT COUNT(*) FROM bookings
		WHERE date = ? AND time = ? AND status IN ('pending', 'confirmed')
	`, date, timeStr).Scan(&n)
	return n, err
}

// CountAll counts every booking regardless of status.
func (r BookingRepo) CountAll() (int, error) {
	var n int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM bookings`).Scan(&n)
	return n, err
}

// CountByStatus counts bookings in one status.
func (r BookingRepo) CountByStatus(status string) (int, error) {
	var n int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM bookings WHERE status = ?`, status).Scan(&n)
	return n, err
}

// CountToday counts bookings whose ride date is the current calendar date.
func (r BookingRepo) CountToday() (int, error) {
	var n int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM bookings WHERE date = CURDATE()`).Scan(&n)
	return n, err
}

// Recent returns the n most recently created bookings, any status.
func (r BookingRepo) Recent(n int) ([]models.Booking, error) {
	rows, err := r.DB.Query(`SELECT `+bookingColumns+` FROM bookings ORDER BY created_at DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (models.Booking, error) {
	var b models.Booking
	err := row.Scan(
		&b.ID, &b.Pickup, &b.Destination, &b.Date, &b.Time, &b.Passengers,
		&b.ServiceType, &b.Name, &b.Phone, &b.Email, &b.Notes, &b.Status,
		&b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

// nullIfEmpty stores optional strings as NULL instead of empty text.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
