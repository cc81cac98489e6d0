package gcal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// ErrNotConfigured means the service-account credentials are absent; the
// orchestrator treats calendar failures as non-fatal either way, but the
// log entries must tell configuration apart from outage.
var ErrNotConfigured = errors.New("gcal: service account credentials missing")

type Config struct {
	ClientEmail string
	PrivateKey  string
	CalendarID  string
}

type Attendee struct {
	Email string
	Name  string
}

type EventInput struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	TimeZone    string
	Attendees   []Attendee
	JoinURL     string
}

type Event struct {
	ID       string `json:"id"`
	HTMLLink string `json:"html_link"`
}

type Client struct {
	cfg Config
	log *zap.Logger
	// opts lets tests inject a fake transport in place of the real API.
	opts []option.ClientOption
}

func NewClient(cfg Config, log *zap.Logger, opts ...option.ClientOption) *Client {
	if cfg.CalendarID == "" {
		cfg.CalendarID = "primary"
	}
	return &Client{cfg: cfg, log: log, opts: opts}
}

func (c *Client) Configured() bool {
	return c.cfg.ClientEmail != "" && c.cfg.PrivateKey != ""
}

// CreateEvent inserts a calendar event on the photographer's calendar and
// lets Google deliver the invitations to all attendees.
func (c *Client) CreateEvent(ctx context.Context, in EventInput) (*Event, error) {
	srv, err := c.service(ctx)
	if err != nil {
		return nil, err
	}

	tz := in.TimeZone
	if tz == "" {
		tz = "UTC"
	}

	description := in.Description
	if in.JoinURL != "" {
		description += "\n\nJoin the video call: " + in.JoinURL
	}

	attendees := make([]*calendar.EventAttendee, 0, len(in.Attendees))
	for _, a := range in.Attendees {
		attendees = append(attendees, &calendar.EventAttendee{
			Email:       a.Email,
			DisplayName: a.Name,
		})
	}

	ev := &calendar.Event{
		Summary:     in.Summary,
		Description: description,
		Start: &calendar.EventDateTime{
			DateTime: in.Start.Format(time.RFC3339),
			TimeZone: tz,
		},
		End: &calendar.EventDateTime{
			DateTime: in.End.Format(time.RFC3339),
			TimeZone: tz,
		},
		Attendees: attendees,
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "email", Minutes: 24 * 60},
				{Method: "popup", Minutes: 15},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}

	created, err := srv.Events.Insert(c.cfg.CalendarID, ev).
		SendUpdates("all").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("gcal: inserting event: %w", err)
	}

	c.log.Info("calendar event created",
		zap.String("event_id", created.Id),
		zap.String("summary", in.Summary))
	return &Event{ID: created.Id, HTMLLink: created.HtmlLink}, nil
}

func (c *Client) service(ctx context.Context) (*calendar.Service, error) {
	if len(c.opts) > 0 {
		return calendar.NewService(ctx, c.opts...)
	}
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	// Keys arrive through env vars with escaped newlines, same as any
	// other deployment secret.
	key := strings.ReplaceAll(c.cfg.PrivateKey, `\n`, "\n")
	conf := &jwt.Config{
		Email:      c.cfg.ClientEmail,
		PrivateKey: []byte(key),
		Scopes:     []string{calendar.CalendarScope},
		TokenURL:   google.JWTTokenURL,
	}
	return calendar.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
}
