package models

import "time"

// Booking statuses. No other value is ever persisted.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Service tiers offered on the public form.
const (
	ServiceStandard = "standard"
	ServicePremium  = "premium"
	ServiceBusiness = "business"
)

// ValidStatus reports whether s is one of the four persistable statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// ValidServiceType reports whether s is an offered tier.
func ValidServiceType(s string) bool {
	switch s {
	case ServiceStandard, ServicePremium, ServiceBusiness:
		return true
	}
	return false
}

// Booking is a stored ride request.
type Booking struct {
	ID          int64     `json:"id"`
	Pickup      string    `json:"pickup"`
	Destination string    `json:"destination"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Passengers  int       `json:"passengers"`
	ServiceType string    `json:"serviceType"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BookingRequest is a validated, normalized intake payload before it has
// been assigned an id.
type BookingRequest struct {
	Pickup      string `json:"pickup"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Passengers  int    `json:"passengers"`
	ServiceType string `json:"serviceType"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// PublicBooking is the projection returned to unauthenticated callers for
// the confirmation view. Customer contact details never appear here.
type PublicBooking struct {
	ID          int64     `json:"id"`
	Pickup      string    `json:"pickup"`
	Destination string    `json:"destination"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Passengers  int       `json:"passengers"`
	ServiceType string    `json:"serviceType"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Public derives the unauthenticated projection from a stored booking.
func (b Booking) Public() PublicBooking {
	return PublicBooking{
		ID:          b.ID,
		Pickup:      b.Pickup,
		Destination: b.Destination,
		Date:        b.Date,
		Time:        b.Time,
		Passengers:  b.Passengers,
		ServiceType: b.ServiceType,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
	}
}

// Stats is the fixed dashboard aggregate.
type Stats struct {
	TotalBookings     int       `json:"totalBookings"`
	PendingBookings   int       `json:"pendingBookings"`
	ConfirmedBookings int       `json:"confirmedBookings"`
	TodayBookings     int       `json:"todayBookings"`
	RecentBookings    []Booking `json:"recentBookings"`
}
