package products

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Luisfp0/online-course-products/internal/catalog"
)

const (
	// SyntheticIDThreshold separates records the demo API really knows
	// about (id <= 100) from ones synthesized during this session.
	SyntheticIDThreshold = 100

	fallbackImage = "https://robohash.org/product"

	defaultStock    = 100
	defaultDiscount = 0
	defaultRating   = 5
)

// Synthetic reports whether the record was created during this session
// against a backend that never durably persisted it.
func Synthetic(id int) bool { return id > SyntheticIDThreshold }

// Input carries the fields the create/edit form submits.
type Input struct {
	Title       string
	Description string
	Price       float64
	Brand       string
	Category    string
}

// Service maps CRUD intents onto catalog API calls and papers over the
// demo backend's non-durable writes so callers always observe their own
// edits.
type Service struct {
	api catalog.Client
	log *slog.Logger
}

func NewService(api catalog.Client, log *slog.Logger) *Service {
	return &Service{api: api, log: log}
}

// List fetches one page. Pagination is plain offset arithmetic.
func (s *Service) List(ctx context.Context, page, limit int) (*catalog.ProductsResponse, error) {
	if page < 1 {
		page = 1
	}
	skip := (page - 1) * limit
	return s.api.ListProducts(ctx, limit, skip)
}

// Create posts the product with a synthesized placeholder thumbnail (the
// demo API does not accept uploaded images) and fixed stock/discount/rating.
func (s *Service) Create(ctx context.Context, in Input) (*catalog.Product, error) {
	placeholder := placeholderImage()
	payload := map[string]any{
		"title":              in.Title,
		"description":        in.Description,
		"price":              in.Price,
		"brand":              in.Brand,
		"category":           in.Category,
		"thumbnail":          placeholder,
		"images":             []string{placeholder},
		"stock":              defaultStock,
		"discountPercentage": defaultDiscount,
		"rating":             defaultRating,
	}

	created, err := s.api.CreateProduct(ctx, payload)
	if err != nil {
		return nil, err
	}
	if created == nil || created.ID == 0 {
		return nil, ErrCreationFailed
	}
	return created, nil
}

// Update preserves the record's existing thumbnail/images (best-effort GET
// first; failure tolerated) and then issues the update. For synthetic ids
// the API echoes back a stub unrelated to the real edit, so the response
// fields are overridden with the caller's submitted values.
func (s *Service) Update(ctx context.Context, id int, in Input) (*catalog.Product, error) {
	thumbnail := fmt.Sprintf("%s-%d", fallbackImage, id)
	images := []string{thumbnail}
	if current, err := s.api.GetProduct(ctx, id); err == nil && current != nil {
		if current.Thumbnail != "" {
			thumbnail = current.Thumbnail
		}
		if len(current.Images) > 0 {
			images = current.Images
		}
	}

	payload := map[string]any{
		"title":       in.Title,
		"description": in.Description,
		"price":       in.Price,
		"brand":       in.Brand,
		"category":    in.Category,
		"thumbnail":   thumbnail,
		"images":      images,
	}

	updated, err := s.api.UpdateProduct(ctx, id, payload)
	if err != nil {
		return nil, err
	}

	if Synthetic(id) {
		out := *updated
		out.ID = id
		if in.Title != "" {
			out.Title = in.Title
		}
		if in.Description != "" {
			out.Description = in.Description
		}
		if in.Price != 0 {
			out.Price = in.Price
		}
		if in.Brand != "" {
			out.Brand = in.Brand
		}
		if in.Category != "" {
			out.Category = in.Category
		}
		out.Thumbnail = thumbnail
		out.Images = images
		return &out, nil
	}

	return updated, nil
}

// Delete always reports success. Synthetic records never existed upstream
// so no remote call is made; for real ids any remote failure is swallowed,
// because the demo backend never persists deletions anyway and surfacing
// the error would mislead the user.
func (s *Service) Delete(ctx context.Context, id int) error {
	if Synthetic(id) {
		return nil
	}

	res, err := s.api.DeleteProduct(ctx, id)
	if err != nil {
		s.log.LogAttrs(ctx, slog.LevelWarn, "product_delete_swallowed",
			slog.Int("id", id),
			slog.Any("err", err),
		)
		return nil
	}
	if !res.IsDeleted {
		s.log.LogAttrs(ctx, slog.LevelWarn, "product_delete_not_confirmed",
			slog.Int("id", id),
			slog.String("message", res.Message),
		)
	}
	return nil
}

func placeholderImage() string {
	return fmt.Sprintf("%s-%s", fallbackImage, uuid.NewString())
}
