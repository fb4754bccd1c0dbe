package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"turfadmin/models"
)

// API is the surface of the booking backend consumed by the admin services.
type API interface {
	Login(ctx context.Context, username, password string) (string, error)
	Slots(ctx context.Context, token, sport, date string) ([]models.Slot, error)
	Bookings(ctx context.Context, token, sport, date string) ([]models.Booking, error)
	CreateBlock(ctx context.Context, token, sport string, req models.BlockRequest) error
	RemoveBlock(ctx context.Context, token, sport, blockID string) error
	BlockDate(ctx context.Context, token, sport, date, reason string) error
	Dashboard(ctx context.Context, token string) (models.DashboardData, error)
}

// Client talks to the booking backend's REST API. The admin token is supplied
// per call from the caller's session; the client itself holds no credentials.
type Client struct {
	hc      *http.Client
	baseURL string
}

// NewClient builds a backend client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		hc:      &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Login exchanges admin credentials for a backend token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	payload := map[string]string{"username": username, "password": password}
	status, body, err := c.do(ctx, http.MethodPost, "/api-token-auth/", "", nil, payload)
	if err != nil {
		return "", err
	}
	if status == http.StatusUnauthorized || status == http.StatusBadRequest {
		return "", ErrUnauthorized
	}
	if status >= 400 {
		return "", apiError(status, body)
	}
	var res struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	if res.Token == "" {
		return "", ErrUnauthorized
	}
	return res.Token, nil
}

// Slots fetches the slot records for one sport and date. The backend may
// return a partial list: only hours with a non-default state need be present.
func (c *Client) Slots(ctx context.Context, token, sport, date string) ([]models.Slot, error) {
	path := fmt.Sprintf("/api/%s/slots/", sport)
	status, body, err := c.do(ctx, http.MethodGet, path, token, url.Values{"date": {date}}, nil)
	if err != nil {
		return nil, err
	}
	if status >= 400 {
		return nil, apiError(status, body)
	}
	var slots []models.Slot
	if err := json.Unmarshal(body, &slots); err != nil {
		return nil, fmt.Errorf("decode slots response: %w", err)
	}
	return slots, nil
}

// Bookings fetches the booking records for one sport and date.
func (c *Client) Bookings(ctx context.Context, token, sport, date string) ([]models.Booking, error) {
	path := fmt.Sprintf("/api/%s/bookings/", sport)
	status, body, err := c.do(ctx, http.MethodGet, path, token, url.Values{"date": {date}}, nil)
	if err != nil {
		return nil, err
	}
	if status >= 400 {
		return nil, apiError(status, body)
	}
	var bookings []models.Booking
	if err := json.Unmarshal(body, &bookings); err != nil {
		return nil, fmt.Errorf("decode bookings response: %w", err)
	}
	return bookings, nil
}

// CreateBlock creates one block.
func (c *Client) CreateBlock(ctx context.Context, token, sport string, req models.BlockRequest) error {
	path := fmt.Sprintf("/api/%s/blocks/", sport)
	status, body, err := c.do(ctx, http.MethodPost, path, token, nil, req)
	if err != nil {
		return err
	}
	if status >= 400 {
		return apiError(status, body)
	}
	return nil
}

// RemoveBlock deletes one block by id.
func (c *Client) RemoveBlock(ctx context.Context, token, sport, blockID string) error {
	path := fmt.Sprintf("/api/%s/blocks/%s/", sport, url.PathEscape(blockID))
	status, body, err := c.do(ctx, http.MethodDelete, path, token, nil, nil)
	if err != nil {
		return err
	}
	if status >= 400 {
		return apiError(status, body)
	}
	return nil
}

// BlockDate blocks every slot of one date in a single backend call. Backends
// without the endpoint yield ErrBulkUnsupported so the caller can fan out to
// 24 individual CreateBlock calls instead.
func (c *Client) BlockDate(ctx context.Context, token, sport, date, reason string) error {
	path := fmt.Sprintf("/api/%s/blocks/block-date/", sport)
	payload := map[string]string{"date": date, "reason": reason}
	status, body, err := c.do(ctx, http.MethodPost, path, token, nil, payload)
	if err != nil {
		return err
	}
	switch status {
	case http.StatusNotFound, http.StatusMethodNotAllowed, http.StatusNotImplemented:
		return ErrBulkUnsupported
	}
	if status >= 400 {
		return apiError(status, body)
	}
	return nil
}

// Dashboard fetches the aggregate admin overview.
func (c *Client) Dashboard(ctx context.Context, token string) (models.DashboardData, error) {
	var data models.DashboardData
	status, body, err := c.do(ctx, http.MethodGet, "/api/admin/dashboard/", token, nil, nil)
	if err != nil {
		return data, err
	}
	if status >= 400 {
		return data, apiError(status, body)
	}
	if err := json.Unmarshal(body, &data); err != nil {
		return data, fmt.Errorf("decode dashboard response: %w", err)
	}
	return data, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, payload any) (int, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	if query != nil {
		req.URL.RawQuery = query.Encode()
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return res.StatusCode, nil, err
	}
	return res.StatusCode, body, nil
}

func apiError(status int, body []byte) error {
	var res struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	_ = json.Unmarshal(body, &res)
	msg := res.Error
	if msg == "" {
		msg = res.Message
	}
	if msg == "" {
		msg = res.Detail
	}
	return &APIError{Status: status, Message: msg}
}
