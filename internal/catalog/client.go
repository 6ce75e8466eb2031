package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Luisfp0/online-course-products/internal/shared/apperr"
)

// Product is a record as served by the remote demo API. Identity is ID.
// IDs above 100 are client-synthesized: created during this session
// against a backend that does not durably persist new records.
type Product struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Brand       string   `json:"brand"`
	Category    string   `json:"category"`
	Thumbnail   string   `json:"thumbnail"`
	Images      []string `json:"images"`
}

type ProductsResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
}

type DeleteResult struct {
	IsDeleted bool   `json:"isDeleted"`
	Message   string `json:"message"`
}

type Client interface {
	ListProducts(ctx context.Context, limit, skip int) (*ProductsResponse, error)
	GetProduct(ctx context.Context, id int) (*Product, error)
	CreateProduct(ctx context.Context, payload map[string]any) (*Product, error)
	UpdateProduct(ctx context.Context, id int, payload map[string]any) (*Product, error)
	DeleteProduct(ctx context.Context, id int) (*DeleteResult, error)
}

type client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string, timeout time.Duration) Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

func (c *client) ListProducts(ctx context.Context, limit, skip int) (*ProductsResponse, error) {
	if limit < 0 {
		limit = 0
	}
	if skip < 0 {
		skip = 0
	}

	url := fmt.Sprintf("%s/products?limit=%d&skip=%d", c.baseURL, limit, skip)

	var out ProductsResponse
	if err := c.do(ctx, http.MethodGet, url, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) GetProduct(ctx context.Context, id int) (*Product, error) {
	url := fmt.Sprintf("%s/products/%d", c.baseURL, id)

	var out Product
	if err := c.do(ctx, http.MethodGet, url, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) CreateProduct(ctx context.Context, payload map[string]any) (*Product, error) {
	url := fmt.Sprintf("%s/products/add", c.baseURL)

	var out Product
	if err := c.do(ctx, http.MethodPost, url, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) UpdateProduct(ctx context.Context, id int, payload map[string]any) (*Product, error) {
	url := fmt.Sprintf("%s/products/%d", c.baseURL, id)

	var out Product
	if err := c.do(ctx, http.MethodPut, url, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) DeleteProduct(ctx context.Context, id int) (*DeleteResult, error) {
	url := fmt.Sprintf("%s/products/%d", c.baseURL, id)

	var out DeleteResult
	if err := c.do(ctx, http.MethodDelete, url, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) do(ctx context.Context, method, url string, payload any, out any) error {
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode payload: %w", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperr.UpstreamErr("The products service is unavailable.",
			fmt.Errorf("API returned status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
