package zoom

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrNotConfigured means credentials are missing or rejected; an
	// operator problem, not an outage.
	ErrNotConfigured = errors.New("zoom: credentials missing or invalid")
	// ErrUnavailable means the Zoom API could not be reached or answered
	// with a server error.
	ErrUnavailable = errors.New("zoom: api unavailable")
)

type Meeting struct {
	ID        int64  `json:"id"`
	JoinURL   string `json:"join_url"`
	StartURL  string `json:"start_url"`
	Password  string `json:"password"`
	Topic     string `json:"topic"`
	StartTime string `json:"start_time"`
	Duration  int    `json:"duration"`
}

type Config struct {
	AccountID    string
	ClientID     string
	ClientSecret string
	// BaseURL / AuthURL default to the public Zoom endpoints; tests point
	// them at an httptest server.
	BaseURL string
	AuthURL string
}

type Client struct {
	cfg    Config
	http   *http.Client
	log    *zap.Logger
	tokens *tokenCache
}

func NewClient(cfg Config, log *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.zoom.us/v2"
	}
	if cfg.AuthURL == "" {
		cfg.AuthURL = "https://zoom.us/oauth/token"
	}
	c := &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 15 * time.Second},
		log:  log,
	}
	c.tokens = newTokenCache(c.fetchToken)
	return c
}

func (c *Client) Configured() bool {
	return c.cfg.AccountID != "" && c.cfg.ClientID != "" && c.cfg.ClientSecret != ""
}

// CreateMeeting schedules a video meeting for the consultation.
func (c *Client) CreateMeeting(ctx context.Context, topic string, start time.Time, durationMin int) (*Meeting, error) {
	token, err := c.tokens.get(ctx)
	if err != nil {
		return nil, err
	}

	payload := map[string]any{
		"topic":      topic,
		"type":       2, // scheduled meeting
		"start_time": start.UTC().Format(time.RFC3339),
		"duration":   durationMin,
		"settings": map[string]any{
			"host_video":        true,
			"participant_video": true,
			"join_before_host":  true,
			"waiting_room":      false,
			"approval_type":     0,
			"auto_recording":    "none",
		},
	}
	body, _ := json.Marshal(payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/users/me/meetings", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("%w: create meeting: %s", ErrNotConfigured, raw)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: create meeting status %d: %s", ErrUnavailable, resp.StatusCode, raw)
	}

	var m Meeting
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("%w: decoding meeting: %v", ErrUnavailable, err)
	}
	c.log.Info("zoom meeting created",
		zap.Int64("meeting_id", m.ID),
		zap.String("topic", topic),
		zap.Time("start", start))
	return &m, nil
}

// DeleteMeeting is the compensating action used when a booking cannot be
// persisted after its meeting was already created.
func (c *Client) DeleteMeeting(ctx context.Context, meetingID int64) error {
	token, err := c.tokens.get(ctx)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/meetings/%d", c.cfg.BaseURL, meetingID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: delete meeting status %d", ErrUnavailable, resp.StatusCode)
	}
	c.log.Info("zoom meeting deleted", zap.Int64("meeting_id", meetingID))
	return nil
}

// fetchToken performs the server-to-server OAuth account_credentials grant.
func (c *Client) fetchToken(ctx context.Context) (string, time.Time, error) {
	if !c.Configured() {
		return "", time.Time{}, ErrNotConfigured
	}

	url := fmt.Sprintf("%s?grant_type=account_credentials&account_id=%s", c.cfg.AuthURL, c.cfg.AccountID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return "", time.Time{}, err
	}
	req.SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: token request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return "", time.Time{}, fmt.Errorf("%w: token status %d: %s", ErrNotConfigured, resp.StatusCode, raw)
	}
	if resp.StatusCode != http.StatusOK {
		return "", time.Time{}, fmt.Errorf("%w: token status %d", ErrUnavailable, resp.StatusCode)
	}

	var tok struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(raw, &tok); err != nil {
		return "", time.Time{}, fmt.Errorf("%w: decoding token: %v", ErrUnavailable, err)
	}
	return tok.AccessToken, time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second), nil
}
