package services

import (
	"bytes"
	"database/sql"
	"testing"

	"vtc-booking/internal/domain"
)

func TestVoucher_RendersPDF(t *testing.T) {
	svc, mock, done := newBookingService(t, nil)
	defer done()
	docs := DocsService{Bookings: svc}

	mock.ExpectQuery("FROM bookings WHERE id").
		WithArgs(int64(1)).
		WillReturnRows(bookingRows(1))

	pdf, filename, err := docs.Voucher(1)
	if err != nil {
		t.Fatalf("voucher: %v", err)
	}
	if filename != "BON_COURSE_1.pdf" {
		t.Errorf("filename = %q", filename)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Errorf("output is not a PDF document")
	}
}

func TestVoucher_UnknownBooking(t *testing.T) {
	svc, mock, done := newBookingService(t, nil)
	defer done()
	docs := DocsService{Bookings: svc}

	mock.ExpectQuery("FROM bookings WHERE id").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	if _, _, err := docs.Voucher(99); !domain.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
}
