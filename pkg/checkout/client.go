package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Config represents the configuration for the checkout API client
type Config struct {
	// BaseURL is the restaurant API mount point, e.g.
	// http://localhost:8080/api/restaurant
	BaseURL string

	// Timeout for each request; defaults to 30 seconds
	Timeout time.Duration
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrInvalidConfig
	}
	return nil
}

// Client talks to the restaurant REST API. Responses use a status boolean
// as the primary success discriminator; a status:false body is surfaced as
// ErrRequestFailed (or ErrNotFound) carrying the server's message.
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a new checkout client with the given configuration
func NewClient(config Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// GetMenu fetches the menu, optionally filtered by cuisine. An empty
// cuisine lists everything.
func (c *Client) GetMenu(ctx context.Context, cuisine string) ([]MenuItem, error) {
	path := "getMenu"
	if cuisine != "" {
		path = "getMenu?cuisine=" + url.QueryEscape(cuisine)
	}

	body, _, err := c.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, err
	}

	var resp menuResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal menu response: %w", err)
	}
	if !resp.Status {
		return nil, fmt.Errorf("%w: %s", ErrRequestFailed, resp.Msg)
	}
	return resp.Menu, nil
}

// GetCartItems fetches every entry in the cart.
func (c *Client) GetCartItems(ctx context.Context) ([]CartEntry, error) {
	body, _, err := c.doRequest(ctx, http.MethodGet, "getCartItems")
	if err != nil {
		return nil, err
	}

	var resp cartResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart response: %w", err)
	}
	if !resp.Status {
		return nil, fmt.Errorf("%w: %s", ErrRequestFailed, resp.Msg)
	}
	return resp.Cart, nil
}

// IncreaseItem bumps the quantity for id, creating the entry when absent.
func (c *Client) IncreaseItem(ctx context.Context, id string) (*CartEntry, error) {
	body, _, err := c.doRequest(ctx, http.MethodPatch, "increaseCartItem/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}

	var resp cartItemResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal increase response: %w", err)
	}
	if !resp.Status {
		return nil, fmt.Errorf("%w: %s", ErrRequestFailed, resp.Msg)
	}
	return resp.CartItem, nil
}

// DecreaseItem lowers the quantity for id. A nil entry means the item hit
// zero and was deleted; that outcome is still success.
func (c *Client) DecreaseItem(ctx context.Context, id string) (*CartEntry, error) {
	body, _, err := c.doRequest(ctx, http.MethodPatch, "decreaseCartItem/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}

	var resp cartItemResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal decrease response: %w", err)
	}
	if !resp.Status {
		return nil, fmt.Errorf("%w: %s", ErrRequestFailed, resp.Msg)
	}
	return resp.CartItem, nil
}

// RemoveItem deletes the entry for id regardless of quantity.
func (c *Client) RemoveItem(ctx context.Context, id string) error {
	body, statusCode, err := c.doRequest(ctx, http.MethodDelete, "removeCartItem/"+url.PathEscape(id))
	if err != nil {
		return err
	}

	var resp statusResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("failed to unmarshal remove response: %w", err)
	}
	if !resp.Status {
		if statusCode == http.StatusNotFound {
			return fmt.Errorf("%w: %s", ErrNotFound, resp.Msg)
		}
		return fmt.Errorf("%w: %s", ErrRequestFailed, resp.Msg)
	}
	return nil
}

// doRequest performs one HTTP request and returns the raw body. Non-2xx
// responses are not treated as transport errors here: the restaurant API
// signals failure through the status field, and removeCartItem legitimately
// answers 404 with a parseable body.
func (c *Client) doRequest(ctx context.Context, method, path string) ([]byte, int, error) {
	reqURL := fmt.Sprintf("%s/%s", c.config.BaseURL, path)

	req, err := http.NewRequestWithContext(ctx, method, reqURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, resp.StatusCode, nil
}
