package identity

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Deleter removes an identity record from the external auth service. The
// user lifecycle service depends on this interface so tests can stand in a
// fake without a live auth backend.
type Deleter interface {
	DeleteUser(ctx context.Context, userID string) error
}

// Client talks to the managed auth service's admin API with the service-role
// key. Only the operations this backend actually needs are implemented.
type Client struct {
	baseURL    string
	serviceKey string
	http       *http.Client
}

func NewClient(baseURL, serviceKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		http:       &http.Client{Timeout: 10 * time.Second},
	}
}

// DeleteUser removes the identity record. 404 from the auth service is
// treated as already deleted.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	url := fmt.Sprintf("%s/auth/v1/admin/users/%s", c.baseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("apikey", c.serviceKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("auth service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("auth service returned %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
