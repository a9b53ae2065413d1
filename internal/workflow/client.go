package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"okada/internal/adapters/in/http/api"
)

const DefaultTimeout = 10 * time.Second

// Client calls the order service over HTTP.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

var _ OrderService = (*Client)(nil)

// NewClient returns a client for baseURL (for example "http://localhost:8080")
// sending token as a bearer credential. A zero timeout means DefaultTimeout.
func NewClient(baseURL, token string, timeout time.Duration) (*Client, error) {
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

func (c *Client) GetOrder(ctx context.Context, orderID int64) (api.OrderDetails, error) {
	var out api.OrderDetails
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/orders/%d", orderID), nil, &out)
	return out, err
}

func (c *Client) GetStatusHistory(ctx context.Context, orderID int64) ([]api.StatusTransition, error) {
	var out []api.StatusTransition
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/orders/%d/status-history", orderID), nil, &out)
	return out, err
}

func (c *Client) GetEditHistory(ctx context.Context, orderID int64) ([]api.FieldEdit, error) {
	var out []api.FieldEdit
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/orders/%d/edit-history", orderID), nil, &out)
	return out, err
}

func (c *Client) GetAvailableRiders(ctx context.Context) ([]api.Rider, error) {
	var out []api.Rider
	err := c.do(ctx, http.MethodGet, "/api/v1/riders/available", nil, &out)
	return out, err
}

func (c *Client) UpdateStatus(ctx context.Context, update StatusUpdate) (api.StatusTransition, error) {
	body := api.ChangeStatusRequest{
		Status:          update.Status,
		RiderId:         update.RiderID,
		Notes:           update.Notes,
		ExpectedVersion: update.ExpectedVersion,
	}

	var out api.StatusTransition
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/v1/orders/%d/status", update.OrderID), body, &out)
	return out, err
}

func (c *Client) UpdateOrder(ctx context.Context, update OrderUpdate) ([]api.FieldEdit, error) {
	body := api.EditOrderRequest{
		DeliveryAddress: update.DeliveryAddress,
		DeliveryLat:     update.DeliveryLat,
		DeliveryLng:     update.DeliveryLng,
		PaymentMethod:   update.PaymentMethod,
		Notes:           update.Notes,
		Reason:          update.Reason,
		ExpectedVersion: update.ExpectedVersion,
	}

	var out []api.FieldEdit
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/v1/orders/%d", update.OrderID), body, &out)
	return out, err
}

func (c *Client) ListOrders(ctx context.Context, params ListParams) (api.OrderPage, error) {
	q := url.Values{}
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if params.Status != "" {
		q.Set("status", params.Status)
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}

	path := "/api/v1/orders"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out api.OrderPage
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (c *Client) GetNextStatuses(ctx context.Context, status string) (api.NextStatuses, error) {
	var out api.NextStatuses
	err := c.do(ctx, http.MethodGet, "/api/v1/statuses/"+url.PathEscape(status)+"/next", nil, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeRemoteError(resp)
	}

	if out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

func decodeRemoteError(resp *http.Response) error {
	remote := &RemoteError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return remote
	}

	var apiErr api.Error
	if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
		remote.Message = apiErr.Message
	}
	return remote
}
