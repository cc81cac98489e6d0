package mail

import (
	"html/template"
	"strings"
	"time"

	"photosite/internal/domain"
)

type confirmationData struct {
	GuestName    string
	GuestEmail   string
	Date         string
	Time         string
	Message      string
	JoinURL      string
	StartURL     string
	Password     string
	CalendarLink string
}

var clientTmpl = template.Must(template.New("client").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Photography Consultation Confirmed</h2>
  <p>Hi {{.GuestName}},</p>
  <p>Your photography consultation has been confirmed!</p>
  <p><strong>Date:</strong> {{.Date}}<br>
     <strong>Time:</strong> {{.Time}}<br>
     <strong>Duration:</strong> 1 hour</p>
  <p><a href="{{.JoinURL}}">Join the video meeting</a>{{if .Password}} (password: {{.Password}}){{end}}</p>
  {{if .CalendarLink}}<p><a href="{{.CalendarLink}}">Add to Google Calendar</a></p>{{end}}
  <p>If you need to reschedule, just reply to this email.</p>
</div>`))

var photographerTmpl = template.Must(template.New("photographer").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>New Consultation Booking</h2>
  <p><strong>Name:</strong> {{.GuestName}}<br>
     <strong>Email:</strong> {{.GuestEmail}}<br>
     <strong>Date:</strong> {{.Date}}<br>
     <strong>Time:</strong> {{.Time}}</p>
  {{if .Message}}<p><strong>Client message:</strong> {{.Message}}</p>{{end}}
  <p><a href="{{.StartURL}}">Start meeting (host)</a><br>
     <a href="{{.JoinURL}}">Join meeting</a>{{if .Password}} (password: {{.Password}}){{end}}</p>
  {{if .CalendarLink}}<p><a href="{{.CalendarLink}}">Calendar event</a></p>{{end}}
</div>`))

var consultationTmpl = template.Must(template.New("consultation").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>New Consultation Request</h2>
  <p><strong>Name:</strong> {{.Name}}<br>
     <strong>Email:</strong> {{.Email}}</p>
  {{if .PreferredDate}}<p><strong>Preferred date:</strong> {{.PreferredDate}} {{.PreferredTime}}</p>{{end}}
  <p><strong>Message:</strong> {{.Message}}</p>
</div>`))

// ClientConfirmation renders the guest-facing confirmation message.
func ClientConfirmation(b *domain.Booking, joinURL, password, calendarLink string, loc *time.Location) (string, string) {
	body := render(clientTmpl, confirmationData{
		GuestName:    b.GuestName,
		Date:         b.StartTime.In(loc).Format("Monday, January 2, 2006"),
		Time:         b.StartTime.In(loc).Format("3:04 PM"),
		JoinURL:      joinURL,
		Password:     password,
		CalendarLink: calendarLink,
	})
	return "Photography Consultation Confirmed", body
}

// PhotographerConfirmation renders the operator-facing notification.
func PhotographerConfirmation(b *domain.Booking, joinURL, startURL, password, calendarLink string, loc *time.Location) (string, string) {
	body := render(photographerTmpl, confirmationData{
		GuestName:    b.GuestName,
		GuestEmail:   b.GuestEmail,
		Date:         b.StartTime.In(loc).Format("Monday, January 2, 2006"),
		Time:         b.StartTime.In(loc).Format("3:04 PM"),
		Message:      b.Message,
		JoinURL:      joinURL,
		StartURL:     startURL,
		Password:     password,
		CalendarLink: calendarLink,
	})
	return "New Photography Consultation Booking", body
}

// ConsultationNotice renders the admin alert for a free-form request.
func ConsultationNotice(cr *domain.ConsultationRequest) (string, string) {
	return "New Consultation Request", render(consultationTmpl, cr)
}

func render(t *template.Template, data any) string {
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return ""
	}
	return sb.String()
}
