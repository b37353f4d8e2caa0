package services

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"vtc-booking/internal/domain"
	"vtc-booking/internal/domain/models"
)

const (
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02 15:04"
)

var (
	// 24-hour HH:MM, single-digit hour accepted.
	timePattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

	// French national numbers: +33/0033/0 prefix, leading digit 1-9, then
	// four pairs of digits with optional space, dot or hyphen separators.
	frenchPhonePattern = regexp.MustCompile(`^(?:(?:\+|00)33|0)\s*[1-9](?:[\s.-]*[0-9]{2}){4}$`)
)

// BookingInput is the raw intake payload before validation. Passengers is
// a pointer so an absent field can be told apart from an explicit zero.
type BookingInput struct {
	Pickup      string `json:"pickup"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Passengers  *int   `json:"passengers"`
	ServiceType string `json:"serviceType"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Notes       string `json:"notes"`
}

// ValidateBookingRequest checks every field rule, fills defaults and
// returns either a normalized request or the full list of violations.
// Malformed input is a normal outcome here, never a panic.
//
// The future-date rule runs last and only once the fields themselves are
// admissible, so a caller gets field errors and the past-date rejection as
// two distinct failures, the way the intake form reports them.
func ValidateBookingRequest(in BookingInput, now time.Time) (models.BookingRequest, error) {
	var errs []string

	if n := utf8.RuneCountInString(in.Pickup); n < 3 || n > 200 {
		errs = append(errs, "pickup must be between 3 and 200 characters")
	}
	if n := utf8.RuneCountInString(in.Destination); n < 3 || n > 200 {
		errs = append(errs, "destination must be between 3 and 200 characters")
	}

	dateOK := false
	if _, err := time.ParseInLocation(layoutDate, in.Date, time.Local); err != nil {
		errs = append(errs, "date must be a valid ISO date (YYYY-MM-DD)")
	} else {
		dateOK = true
	}

	timeOK := timePattern.MatchString(in.Time)
	if !timeOK {
		errs = append(errs, "time must match the 24-hour HH:MM format")
	}

	passengers := 1
	if in.Passengers != nil {
		passengers = *in.Passengers
		if passengers < 1 || passengers > 8 {
			errs = append(errs, "passengers must be between 1 and 8")
		}
	}

	serviceType := in.ServiceType
	if serviceType == "" {
		serviceType = models.ServiceStandard
	} else if !models.ValidServiceType(serviceType) {
		errs = append(errs, "serviceType must be one of standard, premium, business")
	}

	if n := utf8.RuneCountInString(in.Name); n < 2 || n > 100 {
		errs = append(errs, "name must be between 2 and 100 characters")
	}
	if !frenchPhonePattern.MatchString(in.Phone) {
		errs = append(errs, "phone must be a valid French phone number")
	}

	email := strings.TrimSpace(in.Email)
	if email != "" && !validEmail(email) {
		errs = append(errs, "email must be a valid email address")
	}

	if utf8.RuneCountInString(in.Notes) > 500 {
		errs = append(errs, "notes must not exceed 500 characters")
	}

	if len(errs) > 0 {
		return models.BookingRequest{}, domain.ValidationError{Fields: errs}
	}

	if dateOK && timeOK {
		when, err := time.ParseInLocation(layoutDateTime, fmt.Sprintf("%s %s", in.Date, normalizeTime(in.Time)), time.Local)
		if err != nil || !when.After(now) {
			return models.BookingRequest{}, domain.PastDateError{}
		}
	}

	return models.BookingRequest{
		Pickup:      in.Pickup,
		Destination: in.Destination,
		Date:        in.Date,
		Time:        normalizeTime(in.Time),
		Passengers:  passengers,
		ServiceType: serviceType,
		Name:        in.Name,
		Phone:       in.Phone,
		Email:       email,
		Notes:       in.Notes,
	}, nil
}

// normalizeTime pads single-digit hours so stored slots compare equal
// regardless of how the form spelled them ("9:30" vs "09:30").
func normalizeTime(t string) string {
	if len(t) == 4 {
		return "0" + t
	}
	return t
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
