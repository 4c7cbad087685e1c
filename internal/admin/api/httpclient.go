package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/dhanya-017/infinart-admin/internal/admin/models"
	"github.com/dhanya-017/infinart-admin/internal/common"
	"github.com/dhanya-017/infinart-admin/internal/logging"
)

// HTTPClient is the JSON-over-HTTP implementation of Client.
//
// The credential is read from the token source on every outgoing call, never
// cached here, so a cleared store immediately stops authenticating requests.
// No client-side timeout is set; the transport's defaults apply.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

func NewHTTPClient(baseURL string, tokens TokenSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{},
		tokens:  tokens,
		log:     log,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Credential string `json:"credential"`
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (c *HTTPClient) Login(ctx context.Context, email string, password []byte) (string, error) {
	body := loginRequest{Email: email, Password: string(password)}

	resp, err := c.do(ctx, http.MethodPost, "/login", body, false)
	if err != nil {
		return "", err
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusOK {
		// Bad password and server error are deliberately indistinguishable
		// at this layer.
		return "", ErrInvalidCredentials
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	return lr.Credential, nil
}

func (c *HTTPClient) Verify(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, "/verify", nil, true)
	if err != nil {
		return err
	}
	defer drain(resp)
	return c.checkStatus(resp)
}

func (c *HTTPClient) PendingItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if err := c.getJSON(ctx, "/pending-items", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) ApproveItem(ctx context.Context, id string) error {
	resp, err := c.do(ctx, http.MethodPut, "/items/"+id+"/approve", nil, true)
	if err != nil {
		return err
	}
	defer drain(resp)
	return c.checkStatus(resp)
}

func (c *HTTPClient) RejectItem(ctx context.Context, id string, reason string) error {
	resp, err := c.do(ctx, http.MethodPut, "/items/"+id+"/reject", rejectRequest{Reason: reason}, true)
	if err != nil {
		return err
	}
	defer drain(resp)
	return c.checkStatus(resp)
}

func (c *HTTPClient) DeleteItem(ctx context.Context, id string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/items/"+id, nil, true)
	if err != nil {
		return err
	}
	defer drain(resp)
	return c.checkStatus(resp)
}

func (c *HTTPClient) Sellers(ctx context.Context) ([]models.Seller, error) {
	var sellers []models.Seller
	if err := c.getJSON(ctx, "/sellers", &sellers); err != nil {
		return nil, err
	}
	return sellers, nil
}

func (c *HTTPClient) SellerItems(ctx context.Context, sellerID string) ([]models.Item, error) {
	var items []models.Item
	if err := c.getJSON(ctx, "/sellers/"+sellerID+"/items", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// do builds and issues one request. When authed is true the current
// credential, if any, is attached as a bearer token.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, authed bool) (*http.Response, error) {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)

	if authed {
		token, err := c.tokens.Get(ctx)
		if err != nil {
			return nil, fmt.Errorf("read credential: %w", err)
		}
		if token != "" {
			req.Header.Set(common.AuthHeaderName, "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "authority request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return resp, nil
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil, true)
	if err != nil {
		return err
	}
	defer drain(resp)

	if err := c.checkStatus(resp); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response for %s: %w", path, err)
	}
	return nil
}

// checkStatus maps a non-success status to the error taxonomy: missing or
// invalid credential yields ErrUnauthorized uniformly, anything else
// non-2xx is a remote rejection.
func (c *HTTPClient) checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	default:
		return fmt.Errorf("%w: status %s", ErrRejected, resp.Status)
	}
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// IsAuthFailure reports whether err represents an authorization failure that
// must force a full session reset.
func IsAuthFailure(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
