// Package calendar provides a minimal HTTP client for the Google Calendar v3
// API, covering the event operations the appointment flow needs: creating an
// event with a Meet conference, patching its time window, and deleting it.
package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/curaline/curaline_backend/config"
)

var (
	ErrDisabled           = errors.New("calendar: integration disabled")
	ErrUnauthorized       = errors.New("calendar: credential rejected, reconnect required")
	ErrEventNotFound      = errors.New("calendar: event not found")
	ErrNoMeetLink         = errors.New("calendar: event created without a video entry point")
	ErrUnexpectedResponse = errors.New("calendar: unexpected response from api")
)

// Scope requested during the OAuth consent flow.
const Scope = "https://www.googleapis.com/auth/calendar.events"

// Event is the subset of a Calendar event the appointment flow reads back.
type Event struct {
	ID       string
	MeetLink string
	Start    time.Time
	End      time.Time
}

// EventInput describes the event to create for a confirmed appointment.
type EventInput struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	Attendees   []string
	// RequestID deduplicates conference creation; use the appointment ID.
	RequestID string
}

// Client is a lightweight Google Calendar HTTP client. Calendar access is
// per doctor: every call takes the doctor's stored refresh token and
// exchanges it for a short-lived access token via the oauth2 transport.
type Client struct {
	enabled bool
	oauth   *oauth2.Config
	baseURL string
	timeout time.Duration
}

// New creates a Client from config. When cfg.Enabled is false every call
// returns ErrDisabled.
func New(cfg config.CalendarConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		enabled: cfg.Enabled,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{Scope},
		},
		baseURL: "https://www.googleapis.com/calendar/v3",
		timeout: timeout,
	}
}

// Enabled reports whether the integration is configured.
func (c *Client) Enabled() bool { return c.enabled }

// Exchange trades an OAuth authorization code for a token. The refresh token
// inside the result is what gets persisted against the doctor.
func (c *Client) Exchange(ctx context.Context, code, redirectURI string) (*oauth2.Token, error) {
	if !c.enabled {
		return nil, ErrDisabled
	}
	tok, err := c.oauth.Exchange(ctx, code, oauth2.SetAuthURLParam("redirect_uri", redirectURI))
	if err != nil {
		return nil, fmt.Errorf("calendar exchange: %w", err)
	}
	return tok, nil
}

// CreateEvent creates an event with a Meet conference on the doctor's primary
// calendar and returns the event ID and join link.
func (c *Client) CreateEvent(ctx context.Context, refreshToken string, in EventInput) (*Event, error) {
	if !c.enabled {
		return nil, ErrDisabled
	}

	attendees := make([]map[string]string, 0, len(in.Attendees))
	for _, email := range in.Attendees {
		attendees = append(attendees, map[string]string{"email": email})
	}

	reqBody := map[string]any{
		"summary":     in.Summary,
		"description": in.Description,
		"start":       map[string]string{"dateTime": in.Start.Format(time.RFC3339)},
		"end":         map[string]string{"dateTime": in.End.Format(time.RFC3339)},
		"attendees":   attendees,
		"conferenceData": map[string]any{
			"createRequest": map[string]any{
				"requestId": in.RequestID,
				"conferenceSolutionKey": map[string]string{
					"type": "hangoutsMeet",
				},
			},
		},
	}

	var resp eventResponse
	path := "/calendars/primary/events?conferenceDataVersion=1"
	if err := c.do(ctx, refreshToken, http.MethodPost, path, reqBody, &resp); err != nil {
		return nil, fmt.Errorf("calendar create event: %w", err)
	}

	ev, err := resp.toEvent()
	if err != nil {
		return nil, err
	}
	if ev.MeetLink == "" {
		return nil, ErrNoMeetLink
	}
	return ev, nil
}

// PatchEvent moves an existing event to a new time window. Used when a
// reschedule is approved; the Meet link stays the same.
func (c *Client) PatchEvent(ctx context.Context, refreshToken, eventID string, start, end time.Time) (*Event, error) {
	if !c.enabled {
		return nil, ErrDisabled
	}

	reqBody := map[string]any{
		"start": map[string]string{"dateTime": start.Format(time.RFC3339)},
		"end":   map[string]string{"dateTime": end.Format(time.RFC3339)},
	}

	var resp eventResponse
	path := "/calendars/primary/events/" + eventID
	if err := c.do(ctx, refreshToken, http.MethodPatch, path, reqBody, &resp); err != nil {
		return nil, fmt.Errorf("calendar patch event: %w", err)
	}
	return resp.toEvent()
}

// DeleteEvent removes an event after a cancellation. A 404/410 from the API
// is treated as success so cancellation stays idempotent.
func (c *Client) DeleteEvent(ctx context.Context, refreshToken, eventID string) error {
	if !c.enabled {
		return ErrDisabled
	}
	path := "/calendars/primary/events/" + eventID
	err := c.do(ctx, refreshToken, http.MethodDelete, path, nil, nil)
	if errors.Is(err, ErrEventNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("calendar delete event: %w", err)
	}
	return nil
}

type eventResponse struct {
	ID    string `json:"id"`
	Start struct {
		DateTime string `json:"dateTime"`
	} `json:"start"`
	End struct {
		DateTime string `json:"dateTime"`
	} `json:"end"`
	ConferenceData struct {
		EntryPoints []struct {
			EntryPointType string `json:"entryPointType"`
			URI            string `json:"uri"`
		} `json:"entryPoints"`
	} `json:"conferenceData"`
}

func (r eventResponse) toEvent() (*Event, error) {
	if r.ID == "" {
		return nil, ErrUnexpectedResponse
	}
	ev := &Event{ID: r.ID}
	for _, ep := range r.ConferenceData.EntryPoints {
		if ep.EntryPointType == "video" {
			ev.MeetLink = ep.URI
			break
		}
	}
	if t, err := time.Parse(time.RFC3339, r.Start.DateTime); err == nil {
		ev.Start = t
	}
	if t, err := time.Parse(time.RFC3339, r.End.DateTime); err == nil {
		ev.End = t
	}
	return ev, nil
}

// do sends a JSON request authenticated with a token derived from the
// refresh token, and decodes the JSON response into out when out is non-nil.
func (c *Client) do(ctx context.Context, refreshToken, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	// oauth2.Client refreshes the access token transparently using the
	// doctor's stored refresh token.
	src := c.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	httpClient := oauth2.NewClient(ctx, src)

	res, err := httpClient.Do(req)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return ErrUnauthorized
		}
		return fmt.Errorf("do request: %w", err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case res.StatusCode == http.StatusNotFound || res.StatusCode == http.StatusGone:
		return ErrEventNotFound
	case res.StatusCode >= 400:
		b, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
		return fmt.Errorf("%w (status=%d, body=%s)", ErrUnexpectedResponse, res.StatusCode, string(b))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
