package services

import (
	"fmt"
	"strings"
	"time"

	"vtc-booking/internal/config"
	"vtc-booking/internal/domain/models"

	"gopkg.in/gomail.v2"
)

var serviceTypeLabels = map[string]string{
	models.ServiceStandard: "Standard",
	models.ServicePremium:  "Premium",
	models.ServiceBusiness: "Business",
}

// Mailer sends the customer confirmation and the operator notification
// over SMTP. Sends quietly no-op when no recipient is configured, so a
// deployment without mail credentials still takes bookings.
type Mailer struct {
	From       string
	AdminEmail string

	// send delivers one message; swapped out in tests.
	send func(*gomail.Message) error
}

// NewMailer builds a Mailer from the SMTP settings in cfg.
func NewMailer(cfg config.Config) *Mailer {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	from := cfg.EmailFrom
	if from == "" {
		from = cfg.SMTPUser
	}
	return &Mailer{
		From:       from,
		AdminEmail: cfg.AdminEmail,
		send:       func(m *gomail.Message) error { return dialer.DialAndSend(m) },
	}
}

// SendBookingConfirmation emails the customer their reservation summary.
func (m *Mailer) SendBookingConfirmation(b models.Booking) error {
	if b.Email == "" {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.From, "VTC Premium")
	msg.SetHeader("To", b.Email)
	msg.SetHeader("Subject", "Confirmation de votre réservation")
	msg.SetBody("text/html", confirmationBody(b))

	return m.send(msg)
}

// SendBookingNotification emails the operator the full booking details.
func (m *Mailer) SendBookingNotification(b models.Booking) error {
	if m.AdminEmail == "" {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.From, "VTC Premium")
	msg.SetHeader("To", m.AdminEmail)
	msg.SetHeader("Subject", fmt.Sprintf("Nouvelle réservation #%d", b.ID))
	msg.SetBody("text/html", notificationBody(b))

	return m.send(msg)
}

func confirmationBody(b models.Booking) string {
	rows := [][2]string{
		{"N° de réservation :", fmt.Sprintf("#%d", b.ID)},
		{"Départ :", b.Pickup},
		{"Destination :", b.Destination},
		{"Date :", frenchDate(b.Date)},
		{"Heure :", b.Time},
		{"Passagers :", fmt.Sprintf("%d", b.Passengers)},
		{"Service :", serviceTypeLabels[b.ServiceType]},
	}

	var table strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&table, `<tr><td style="padding:8px 0;font-weight:bold;color:#555;">%s</td><td style="padding:8px 0;">%s</td></tr>`, r[0], r[1])
	}

	return fmt.Sprintf(`
<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;">
  <div style="background:linear-gradient(135deg,#667eea 0%%,#764ba2 100%%);color:white;padding:30px;text-align:center;">
    <h1 style="margin:0;font-size:28px;">🚗 VTC Premium</h1>
    <h2 style="margin:10px 0 0 0;font-weight:normal;">Confirmation de réservation</h2>
  </div>
  <div style="padding:30px;background:#f9f9f9;">
    <p style="font-size:18px;color:#28a745;font-weight:bold;">✅ Votre réservation a été enregistrée avec succès !</p>
    <div style="background:white;padding:25px;border-radius:10px;margin:20px 0;">
      <h3 style="color:#333;margin-top:0;">Détails de votre course</h3>
      <table style="width:100%%;border-collapse:collapse;">%s</table>
    </div>
    <p style="font-size:16px;color:#555;">Merci d'avoir choisi VTC Premium. Nous vous souhaitons une excellente course !</p>
  </div>
</div>`, table.String())
}

func notificationBody(b models.Booking) string {
	email := b.Email
	if email == "" {
		email = "Non fourni"
	}
	notes := b.Notes
	if notes == "" {
		notes = "Aucune"
	}

	items := [][2]string{
		{"N°", fmt.Sprintf("#%d", b.ID)},
		{"Nom", b.Name},
		{"Téléphone", b.Phone},
		{"Email", email},
		{"Départ", b.Pickup},
		{"Destination", b.Destination},
		{"Date", b.Date},
		{"Heure", b.Time},
		{"Passagers", fmt.Sprintf("%d", b.Passengers)},
		{"Service", serviceTypeLabels[b.ServiceType]},
		{"Notes", notes},
	}

	var list strings.Builder
	for _, it := range items {
		fmt.Fprintf(&list, `<li><strong>%s :</strong> %s</li>`, it[0], it[1])
	}

	return fmt.Sprintf(`
<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;">
  <div style="background:#333;color:white;padding:20px;text-align:center;">
    <h2 style="margin:0;">🚨 Nouvelle réservation reçue</h2>
  </div>
  <div style="padding:20px;background:#f9f9f9;">
    <p style="font-size:16px;color:#333;">Une nouvelle réservation a été faite sur le site VTC :</p>
    <div style="background:white;padding:15px;border-radius:8px;">
      <ul style="list-style:none;padding:0;margin:0;">%s</ul>
    </div>
  </div>
</div>`, list.String())
}

// frenchDate renders YYYY-MM-DD as DD/MM/YYYY; the raw value is kept when
// it does not parse.
func frenchDate(d string) string {
	t, err := time.Parse(layoutDate, d)
	if err != nil {
		return d
	}
	return t.Format("02/01/2006")
}
