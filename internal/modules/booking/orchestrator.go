package booking

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"photosite/internal/domain"
	"photosite/internal/provider/gcal"
	"photosite/internal/provider/mail"
	"photosite/internal/repository"
)

// Orchestrator runs the external-effect chain for one admitted booking:
// meeting, then store insert, then calendar event, then confirmation mail.
// The meeting and the insert form one unit — if the insert loses the race,
// the meeting is deleted again and the caller sees a conflict. Calendar and
// mail failures degrade the booking but never roll it back.
type Orchestrator struct {
	store    BookingStore
	meetings MeetingProvider
	calendar CalendarProvider
	mailer   mail.Sender
	events   EventPublisher
	log      *zap.Logger

	photographerEmail string
	photographerName  string
	location          *time.Location
	callTimeout       time.Duration
}

type OrchestratorConfig struct {
	PhotographerEmail string
	PhotographerName  string
	Location          *time.Location
	// CallTimeout bounds each external provider call; a timed-out call is
	// handled by that step's failure policy.
	CallTimeout time.Duration
}

func NewOrchestrator(
	store BookingStore,
	meetings MeetingProvider,
	calendar CalendarProvider,
	mailer mail.Sender,
	events EventPublisher,
	log *zap.Logger,
	cfg OrchestratorConfig,
) *Orchestrator {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = 20 * time.Second
	}
	if cfg.PhotographerName == "" {
		cfg.PhotographerName = "Photographer"
	}
	return &Orchestrator{
		store:             store,
		meetings:          meetings,
		calendar:          calendar,
		mailer:            mailer,
		events:            events,
		log:               log,
		photographerEmail: cfg.PhotographerEmail,
		photographerName:  cfg.PhotographerName,
		location:          cfg.Location,
		callTimeout:       cfg.CallTimeout,
	}
}

// Finalize executes the effect chain. On success the result always carries
// the meeting details; the calendar link is filled in only when event
// creation succeeded.
func (o *Orchestrator) Finalize(ctx context.Context, b *domain.Booking) (*BookingResult, error) {
	topic := "Photography Consultation - " + b.GuestName
	duration := int(b.EndTime.Sub(b.StartTime).Minutes())

	// Step 1: meeting. Fatal — without it there is nothing to confirm.
	mctx, cancel := context.WithTimeout(ctx, o.callTimeout)
	meeting, err := o.meetings.CreateMeeting(mctx, topic, b.StartTime, duration)
	cancel()
	if err != nil {
		o.log.Error("booking finalization failed",
			zap.String("step", "meeting"),
			zap.String("booking_id", b.ID),
			zap.Time("start", b.StartTime),
			zap.Error(err))
		return nil, err
	}
	b.MeetingID = strconv.FormatInt(meeting.ID, 10)

	// Step 2: persist. The meeting must not outlive a booking that was
	// never admitted, so a failed insert deletes it again.
	if err := o.store.InsertIfFree(ctx, b); err != nil {
		dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), o.callTimeout)
		if derr := o.meetings.DeleteMeeting(dctx, meeting.ID); derr != nil {
			o.log.Error("compensating meeting delete failed",
				zap.Int64("meeting_id", meeting.ID),
				zap.String("booking_id", b.ID),
				zap.Error(derr))
		}
		cancel()

		if errors.Is(err, repository.ErrConflict) {
			o.log.Warn("booking lost slot race",
				zap.String("booking_id", b.ID),
				zap.Time("start", b.StartTime))
			return nil, ErrSlotTaken
		}
		o.log.Error("booking finalization failed",
			zap.String("step", "persist"),
			zap.String("booking_id", b.ID),
			zap.Error(err))
		return nil, err
	}

	result := &BookingResult{
		Booking: b,
		Meeting: MeetingInfo{
			ID:       meeting.ID,
			JoinURL:  meeting.JoinURL,
			StartURL: meeting.StartURL,
			Password: meeting.Password,
		},
	}

	// Step 3: calendar event. Non-fatal — the booking stands without it.
	event := o.createCalendarEvent(ctx, b, meeting.JoinURL)
	if event != nil {
		result.CalendarLink = event.HTMLLink
	}

	// Step 4: confirmation mail. Non-fatal, logged per recipient.
	o.sendConfirmations(b, result, event)

	if o.events != nil {
		o.events.Publish("booking.created", result.Booking)
	}

	o.log.Info("booking confirmed",
		zap.String("booking_id", b.ID),
		zap.String("guest_email", b.GuestEmail),
		zap.Time("start", b.StartTime),
		zap.Int64("meeting_id", meeting.ID),
		zap.Bool("calendar_event", event != nil))
	return result, nil
}

func (o *Orchestrator) createCalendarEvent(ctx context.Context, b *domain.Booking, joinURL string) *gcal.Event {
	description := fmt.Sprintf("Photography consultation with %s", b.GuestName)
	if b.Message != "" {
		description += "\n\nClient message: " + b.Message
	}

	cctx, cancel := context.WithTimeout(ctx, o.callTimeout)
	defer cancel()

	event, err := o.calendar.CreateEvent(cctx, gcal.EventInput{
		Summary:     "Photography Consultation - " + b.GuestName,
		Description: description,
		Start:       b.StartTime,
		End:         b.EndTime,
		TimeZone:    o.location.String(),
		Attendees: []gcal.Attendee{
			{Email: b.GuestEmail, Name: b.GuestName},
			{Email: o.photographerEmail, Name: o.photographerName},
		},
		JoinURL: joinURL,
	})
	if err != nil {
		o.log.Warn("calendar event creation failed, booking stands without invite",
			zap.String("step", "calendar"),
			zap.String("booking_id", b.ID),
			zap.Error(err))
		return nil
	}
	return event
}

func (o *Orchestrator) sendConfirmations(b *domain.Booking, res *BookingResult, event *gcal.Event) {
	calendarLink := ""
	if event != nil {
		calendarLink = event.HTMLLink
	}

	subject, body := mail.ClientConfirmation(b, res.Meeting.JoinURL, res.Meeting.Password, calendarLink, o.location)
	if err := o.mailer.Send(b.GuestEmail, subject, body); err != nil {
		o.log.Warn("confirmation mail failed",
			zap.String("step", "mail"),
			zap.String("recipient", "guest"),
			zap.String("booking_id", b.ID),
			zap.Error(err))
	}

	if o.photographerEmail != "" {
		subject, body = mail.PhotographerConfirmation(b, res.Meeting.JoinURL, res.Meeting.StartURL, res.Meeting.Password, calendarLink, o.location)
		if err := o.mailer.Send(o.photographerEmail, subject, body); err != nil {
			o.log.Warn("confirmation mail failed",
				zap.String("step", "mail"),
				zap.String("recipient", "photographer"),
				zap.String("booking_id", b.ID),
				zap.Error(err))
		}
	}
}
