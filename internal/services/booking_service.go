package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vtc-booking/internal/domain"
	"vtc-booking/internal/domain/models"
	"vtc-booking/internal/repositories"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Notifier dispatches the two outbound messages for a booking. Both sends
// are best-effort: the booking row is the source of truth either way.
type Notifier interface {
	SendBookingConfirmation(b models.Booking) error
	SendBookingNotification(b models.Booking) error
}

// Pagination describes one listing page.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// BookingService orchestrates the booking lifecycle: validate, persist,
// notify, and the admin-side reads and status transitions.
type BookingService struct {
	Repo     repositories.BookingRepo
	Notifier Notifier
	Log      *zap.Logger

	// Now is swappable in tests; defaults to time.Now.
	Now func() time.Time
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Submit validates the intake payload, persists a pending booking and
// kicks off notification dispatch. The HTTP response never waits on the
// emails: once the insert commits the submission has succeeded.
func (s BookingService) Submit(in BookingInput) (models.Booking, error) {
	req, err := ValidateBookingRequest(in, s.now())
	if err != nil {
		return models.Booking{}, err
	}

	booking, err := s.Repo.Create(req)
	if err != nil {
		return models.Booking{}, domain.PersistenceError{Op: "create booking", Err: err}
	}

	go s.dispatchNotifications(booking)

	return booking, nil
}

// dispatchNotifications sends the customer confirmation (when an email was
// supplied) and the operator notification. Failures are logged and
// swallowed; they never surface to the submitter.
func (s BookingService) dispatchNotifications(b models.Booking) {
	if s.Notifier == nil {
		return
	}
	if b.Email != "" {
		if err := s.Notifier.SendBookingConfirmation(b); err != nil {
			s.Log.Warn("customer confirmation email failed",
				zap.Int64("booking_id", b.ID),
				zap.String("recipient", b.Email),
				zap.Error(err))
		}
	}
	if err := s.Notifier.SendBookingNotification(b); err != nil {
		s.Log.Warn("operator notification email failed",
			zap.Int64("booking_id", b.ID),
			zap.Error(err))
	}
}

// GetPublic returns the unauthenticated projection of a booking.
func (s BookingService) GetPublic(id int64) (models.PublicBooking, error) {
	b, err := s.Get(id)
	if err != nil {
		return models.PublicBooking{}, err
	}
	return b.Public(), nil
}

// Get returns the full row. Admin-side callers only.
func (s BookingService) Get(id int64) (models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	if err != nil {
		return models.Booking{}, domain.PersistenceError{Op: "get booking", Err: err}
	}
	return b, nil
}

// CheckAvailability reports whether the exact (date, time) slot is free of
// pending or confirmed bookings. Advisory only: nothing is reserved, so a
// concurrent submission can still take the slot between this read and its
// insert.
func (s BookingService) CheckAvailability(date, timeStr string) (bool, error) {
	if _, err := time.ParseInLocation(layoutDate, date, time.Local); err != nil || !timePattern.MatchString(timeStr) {
		return false, domain.ValidationError{Fields: []string{"invalid date or time"}}
	}
	n, err := s.Repo.CountSlot(date, normalizeTime(timeStr))
	if err != nil {
		return false, domain.PersistenceError{Op: "availability check", Err: err}
	}
	return n == 0, nil
}

// List returns one admin page plus its pagination metadata. Out-of-range
// paging inputs fall back to page 1 / limit 10.
func (s BookingService) List(status string, page, limit int) ([]models.Booking, Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	rows, total, err := s.Repo.List(status, page, limit)
	if err != nil {
		return nil, Pagination{}, domain.PersistenceError{Op: "list bookings", Err: err}
	}
	return rows, Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

// UpdateStatus moves a booking to one of the four statuses. Any value
// outside the enum is rejected before the storage layer is touched; the
// transition graph itself is deliberately unrestricted.
func (s BookingService) UpdateStatus(id int64, status string) error {
	if !models.ValidStatus(status) {
		return domain.ValidationError{Fields: []string{"invalid status"}}
	}
	affected, err := s.Repo.UpdateStatus(id, status)
	if err != nil {
		return domain.PersistenceError{Op: "update booking status", Err: err}
	}
	if affected == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}

// Stats gathers the five dashboard reads concurrently and joins them.
func (s BookingService) Stats(ctx context.Context) (models.Stats, error) {
	var stats models.Stats

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.TotalBookings, err = s.Repo.CountAll()
		return err
	})
	g.Go(func() (err error) {
		stats.PendingBookings, err = s.Repo.CountByStatus(models.StatusPending)
		return err
	})
	g.Go(func() (err error) {
		stats.ConfirmedBookings, err = s.Repo.CountByStatus(models.StatusConfirmed)
		return err
	})
	g.Go(func() (err error) {
		stats.TodayBookings, err = s.Repo.CountToday()
		return err
	})
	g.Go(func() (err error) {
		stats.RecentBookings, err = s.Repo.Recent(5)
		return err
	})

	if err := g.Wait(); err != nil {
		return models.Stats{}, domain.PersistenceError{Op: "aggregate stats", Err: err}
	}
	return stats, nil
}

// Resend re-dispatches both notification emails for an existing booking,
// synchronously, and reports the outcome to the caller.
func (s BookingService) Resend(id int64) error {
	b, err := s.Get(id)
	if err != nil {
		return err
	}
	if s.Notifier == nil {
		return nil
	}
	if b.Email != "" {
		if err := s.Notifier.SendBookingConfirmation(b); err != nil {
			return err
		}
	}
	return s.Notifier.SendBookingNotification(b)
}
