package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/KasumiMercury/primind-medication-sync/internal/domain"
	"github.com/KasumiMercury/primind-medication-sync/internal/observability/logging"
	"github.com/KasumiMercury/primind-medication-sync/internal/observability/tracing"
)

const maxErrorBodyBytes = 4096

type Client struct {
	baseURL    string
	token      string
	location   *time.Location
	httpClient *http.Client
	now        func() time.Time
}

// NewClient builds a backend client. Timestamps without an offset are read in loc.
func NewClient(baseURL, token string, loc *time.Location) *Client {
	if loc == nil {
		loc = time.Local
	}
	return &Client{
		baseURL:  baseURL,
		token:    token,
		location: loc,
		httpClient: &http.Client{
			Timeout:   30 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		now: time.Now,
	}
}

func (c *Client) ListSchedules(ctx context.Context) ([]domain.Schedule, error) {
	var resp []scheduleResponse
	if err := c.do(ctx, http.MethodGet, "/schedules", nil, &resp); err != nil {
		return nil, err
	}

	schedules := make([]domain.Schedule, 0, len(resp))
	for _, r := range resp {
		s, err := scheduleFromResponse(r)
		if err != nil {
			slog.WarnContext(ctx, "skipping malformed schedule from backend",
				slog.String("schedule_id", string(r.ID)),
				slog.String("error", err.Error()),
			)
			continue
		}
		schedules = append(schedules, s)
	}

	slog.DebugContext(ctx, "fetched schedules",
		slog.Int("count", len(schedules)),
	)

	return schedules, nil
}

func (c *Client) CreateSchedule(ctx context.Context, schedule domain.Schedule) (*domain.Schedule, error) {
	var resp scheduleResponse
	if err := c.do(ctx, http.MethodPost, "/schedules", scheduleToRequest(schedule), &resp); err != nil {
		return nil, err
	}

	return c.echoedSchedule(resp, schedule)
}

func (c *Client) UpdateSchedule(ctx context.Context, schedule domain.Schedule) (*domain.Schedule, error) {
	path := "/schedules/" + url.PathEscape(schedule.ID)

	var resp scheduleResponse
	if err := c.do(ctx, http.MethodPut, path, scheduleToRequest(schedule), &resp); err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrScheduleNotFound, schedule.ID)
		}
		return nil, err
	}

	return c.echoedSchedule(resp, schedule)
}

func (c *Client) DeleteSchedule(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/schedules/"+url.PathEscape(id), nil, nil); err != nil {
		if IsNotFound(err) {
			return fmt.Errorf("%w: %s", domain.ErrScheduleNotFound, id)
		}
		return err
	}
	return nil
}

// echoedSchedule prefers the backend's copy and falls back to the request when
// the backend answers without a body.
func (c *Client) echoedSchedule(resp scheduleResponse, sent domain.Schedule) (*domain.Schedule, error) {
	if resp.ID == "" {
		return &sent, nil
	}

	s, err := scheduleFromResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to decode schedule: %w", err)
	}
	return &s, nil
}

func (c *Client) ListPendingNotifications(ctx context.Context) ([]domain.NotificationInstance, error) {
	var resp []pendingNotificationResponse
	if err := c.do(ctx, http.MethodGet, "/schedules/notifications/pending", nil, &resp); err != nil {
		return nil, err
	}

	instances := make([]domain.NotificationInstance, 0, len(resp))
	for _, r := range resp {
		at, err := parseDateTime(r.NotificationDateTime, c.location)
		if err != nil {
			slog.WarnContext(ctx, "skipping pending notification with invalid datetime",
				slog.String("notification_id", string(r.ID)),
				slog.String("schedule_id", string(r.ScheduleID)),
				slog.String("error", err.Error()),
			)
			continue
		}
		instances = append(instances, domain.NotificationInstance{
			ID:                   string(r.ID),
			ScheduleID:           string(r.ScheduleID),
			NotificationDateTime: at,
		})
	}

	slog.DebugContext(ctx, "fetched pending notifications",
		slog.Int("count", len(instances)),
	)

	return instances, nil
}

func (c *Client) LogAction(ctx context.Context, log domain.ActionLog) error {
	req := actionLogRequest{
		ScheduleID:             log.ScheduleID,
		ScheduleNotificationID: log.ScheduleNotificationID,
		ActionType:             log.ActionType.String(),
		ScheduledTime:          log.ScheduledTime.Format(time.RFC3339),
		Notes:                  log.Notes,
	}
	return c.do(ctx, http.MethodPost, "/schedules/log", req, nil)
}

func (c *Client) RegisterDevice(ctx context.Context, registration DeviceRegistration) error {
	req := registerDeviceRequest{
		PushToken:  registration.PushToken,
		Platform:   registration.Platform,
		DeviceInfo: registration.DeviceInfo,
	}
	return c.do(ctx, http.MethodPost, "/notifications/register-device", req, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) (err error) {
	ctx, span := tracing.StartExternalAPISpan(ctx, method+" "+path, c.baseURL+path)
	defer func() {
		var statusErr *StatusError
		statusCode := 0
		if errors.As(err, &statusErr) {
			statusCode = statusErr.StatusCode
		}
		tracing.RecordExternalAPIResult(span, statusCode, err)
		span.End()
	}()

	return c.send(ctx, method, path, body, out)
}

func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	if err := checkToken(c.token, c.now()); err != nil {
		return err
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("failed to parse base URL: %w", err)
	}
	u = u.JoinPath(path)

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	slog.DebugContext(ctx, "sending request to backend",
		slog.String("method", method),
		slog.String("url", u.String()),
	)

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	requestID := logging.ValidateAndExtractRequestID(logging.RequestIDFromContext(ctx))
	req.Header.Set("x-request-id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "failed to send request to backend",
			slog.String("method", method),
			slog.String("url", u.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.ErrorContext(ctx, "failed to read response body from backend",
			slog.String("url", u.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.ErrorContext(ctx, "unexpected status code from backend",
			slog.String("method", method),
			slog.String("url", u.String()),
			slog.Int("status_code", resp.StatusCode),
		)
		if len(respBody) > maxErrorBodyBytes {
			respBody = respBody[:maxErrorBodyBytes]
		}
		return &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	if out == nil {
		return nil
	}

	if err := decodeData(respBody, out); err != nil {
		slog.ErrorContext(ctx, "failed to decode response from backend",
			slog.String("url", u.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// CheckAuth reports whether the configured token is usable without calling the backend.
func (c *Client) CheckAuth(_ context.Context) error {
	return checkToken(c.token, c.now())
}
