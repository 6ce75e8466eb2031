package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luisfp0/online-course-products/internal/catalog"
	"github.com/Luisfp0/online-course-products/internal/config"
	"github.com/Luisfp0/online-course-products/internal/http/middleware"
	"github.com/Luisfp0/online-course-products/internal/modules/auth"
	"github.com/Luisfp0/online-course-products/internal/modules/products"
)

// stubCatalog is an in-memory stand-in for the remote demo API.
type stubCatalog struct {
	items  []catalog.Product
	nextID int
}

func (s *stubCatalog) List(_ context.Context, _, limit int) (*catalog.ProductsResponse, error) {
	if limit <= 1 {
		return &catalog.ProductsResponse{Total: len(s.items)}, nil
	}
	return &catalog.ProductsResponse{Products: s.items, Total: len(s.items)}, nil
}

func (s *stubCatalog) Create(_ context.Context, in products.Input) (*catalog.Product, error) {
	s.nextID++
	return &catalog.Product{ID: 100 + s.nextID, Title: in.Title, Brand: in.Brand, Price: in.Price,
		Description: in.Description, Category: in.Category}, nil
}

func (s *stubCatalog) Update(_ context.Context, id int, in products.Input) (*catalog.Product, error) {
	return &catalog.Product{ID: id, Title: in.Title, Brand: in.Brand, Price: in.Price,
		Description: in.Description, Category: in.Category}, nil
}

func (s *stubCatalog) Delete(context.Context, int) error { return nil }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Cookie.FlashSecret = "test-secret"

	gate, err := auth.NewGate("admin", "password")
	require.NoError(t, err)

	store := products.NewStore(&stubCatalog{items: []catalog.Product{
		{ID: 1, Title: "iPhone 9", Brand: "Apple", Price: 549},
		{ID: 2, Title: "Galaxy S10", Brand: "Samsung", Price: 899},
	}})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(logger, cfg, gate, store)
}

func doRequest(r *gin.Engine, method, target string, form url.Values, authed bool) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if authed {
		req.AddCookie(&http.Cookie{Name: middleware.AuthCookieName, Value: middleware.AuthCookieValue})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRootRedirects(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/", nil, false)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	w = doRequest(r, http.MethodGet, "/", nil, true)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestLoginPageRenders(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/login", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `name="username"`)
	assert.Contains(t, w.Body.String(), `name="password"`)
}

func TestLoginSuccessSetsFlagAndRedirects(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodPost, "/login", url.Values{
		"username": {"admin"}, "password": {"password"},
	}, false)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	var flagSet bool
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.AuthCookieName && c.Value == middleware.AuthCookieValue {
			flagSet = true
			assert.True(t, c.HttpOnly)
		}
	}
	assert.True(t, flagSet, "login flag cookie not set")
}

func TestLoginInvalidCredentials(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodPost, "/login", url.Values{
		"username": {"admin"}, "password": {"nope"},
	}, false)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials. Please try again.")
	// submitted username stays in the form
	assert.Contains(t, w.Body.String(), `value="admin"`)
}

func TestLoginEmptyFields(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodPost, "/login", url.Values{}, false)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Username is required.")
	assert.Contains(t, w.Body.String(), "Password is required.")
}

func TestLoginRedirectsAwayWhenAlreadyAuthed(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/login", nil, true)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestDashboardRequiresLogin(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/dashboard", nil, false)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?return_to="+url.QueryEscape("/dashboard"), w.Header().Get("Location"))
}

func TestDashboardRendersProducts(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/dashboard", nil, true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "iPhone 9")
	assert.Contains(t, w.Body.String(), "Galaxy S10")
}

func TestDashboardSearchFilters(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/dashboard?q=apple", nil, true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "iPhone 9")
	assert.NotContains(t, w.Body.String(), "Galaxy S10")
}

func TestCreateProductFlow(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodPost, "/dashboard/products", url.Values{
		"title":       {"Mechanical Keyboard"},
		"description": {"Clicky switches"},
		"price":       {"$ 129.00"},
		"brand":       {"KeyCo"},
		"category":    {"peripherals"},
	}, true)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	w = doRequest(r, http.MethodGet, "/dashboard", nil, true)
	assert.Contains(t, w.Body.String(), "Mechanical Keyboard")
}

func TestCreateProductValidationRerendersModal(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodPost, "/dashboard/products", url.Values{
		"title": {"Only A Title"},
	}, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `value="Only A Title"`)
}

func TestDeleteProductFlow(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodPost, "/dashboard/products/1/delete", nil, true)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	w = doRequest(r, http.MethodGet, "/dashboard", nil, true)
	assert.NotContains(t, w.Body.String(), "iPhone 9")
	assert.Contains(t, w.Body.String(), "Galaxy S10")
}

func TestUpdateProductFlow(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodPost, "/dashboard/products/2", url.Values{
		"title":       {"Galaxy S10 Plus"},
		"description": {"Bigger"},
		"price":       {"$ 999.00"},
		"brand":       {"Samsung"},
		"category":    {"smartphones"},
	}, true)
	assert.Equal(t, http.StatusFound, w.Code)

	w = doRequest(r, http.MethodGet, "/dashboard", nil, true)
	assert.Contains(t, w.Body.String(), "Galaxy S10 Plus")
}

func TestLogoutClearsFlag(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodPost, "/logout", nil, true)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	var cleared bool
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.AuthCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "login flag cookie not cleared")
}

func TestUnknownRouteRenders404Page(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/nope", nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found.")
}

func TestReturnToIgnoresAbsoluteURLs(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodPost, "/login", url.Values{
		"username":  {"admin"},
		"password":  {"password"},
		"return_to": {"https://evil.example/phish"},
	}, false)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}
