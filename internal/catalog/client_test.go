package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luisfp0/online-course-products/internal/shared/apperr"
)

func TestListProducts(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		assert.Equal(t, http.MethodGet, r.Method)
		_ = json.NewEncoder(w).Encode(ProductsResponse{
			Products: []Product{{ID: 1, Title: "iPhone 9", Brand: "Apple"}},
			Total:    100,
			Skip:     0,
			Limit:    9,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	resp, err := c.ListProducts(context.Background(), 9, 0)
	require.NoError(t, err)

	assert.Equal(t, "/products?limit=9&skip=0", gotPath)
	assert.Equal(t, 100, resp.Total)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "iPhone 9", resp.Products[0].Title)
}

func TestGetProduct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/7", r.URL.Path)
		_ = json.NewEncoder(w).Encode(Product{ID: 7, Title: "Perfume", Thumbnail: "thumb.jpg"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	p, err := c.GetProduct(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, p.ID)
	assert.Equal(t, "thumb.jpg", p.Thumbnail)
}

func TestCreateProductSendsPayload(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/products/add", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(Product{ID: 101, Title: "New"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	p, err := c.CreateProduct(context.Background(), map[string]any{"title": "New", "stock": 100})
	require.NoError(t, err)

	assert.Equal(t, 101, p.ID)
	assert.Equal(t, "New", gotBody["title"])
	assert.Equal(t, float64(100), gotBody["stock"])
}

func TestUpdateProductMethod(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/products/3", r.URL.Path)
		_ = json.NewEncoder(w).Encode(Product{ID: 3, Title: "Edited"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	p, err := c.UpdateProduct(context.Background(), 3, map[string]any{"title": "Edited"})
	require.NoError(t, err)
	assert.Equal(t, "Edited", p.Title)
}

func TestDeleteProduct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		_ = json.NewEncoder(w).Encode(DeleteResult{IsDeleted: true, Message: "ok"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	res, err := c.DeleteProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, res.IsDeleted)
}

func TestNon2xxIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	_, err := c.ListProducts(context.Background(), 9, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.Equal(t, http.StatusBadGateway, apperr.HTTPStatus(err))
}
