package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Luisfp0/online-course-products/internal/http/middleware"
	"github.com/Luisfp0/online-course-products/internal/http/render"
	"github.com/Luisfp0/online-course-products/internal/modules/products"
	"github.com/Luisfp0/online-course-products/pkg/view"
	"github.com/Luisfp0/online-course-products/templates/pages"
)

const maxVisiblePages = 7

// DashboardHandler renders the product grid. View state (search term,
// sort field, page, modal) is URL-driven; the product set itself lives in
// the store.
type DashboardHandler struct {
	store *products.Store
}

func NewDashboardHandler(store *products.Store) *DashboardHandler {
	return &DashboardHandler{store: store}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	// First visit fetches the whole collection; failures keep prior data
	// and surface as a page-level error from the snapshot.
	_ = h.store.EnsureLoaded(ctx)

	h.store.Search(c.Query("q"))
	h.store.Sort(products.SortFieldFrom(c.Query("sort")))
	if pageStr := c.Query("page"); pageStr != "" {
		if n, err := strconv.Atoi(pageStr); err == nil {
			h.store.ChangePage(n)
		}
	}

	switch {
	case c.Query("modal") == "new":
		h.store.SetModalOpen(true)
	case c.Query("edit") != "":
		if id, err := strconv.Atoi(c.Query("edit")); err == nil {
			h.store.SelectByID(id)
		}
	default:
		h.store.SetModalOpen(false)
	}

	snap := h.store.Snapshot()
	vm := dashboardVM(snap, middleware.GetFlash(c))
	render.Component(c, http.StatusOK, pages.Dashboard(vm))
}

func dashboardVM(snap products.Snapshot, f *view.Flash) view.DashboardVM {
	term, sortField, page := snap.SearchTerm, string(snap.SortField), snap.CurrentPage

	cards := make([]view.ProductCardVM, 0, len(snap.Page))
	for _, p := range snap.Page {
		cards = append(cards, view.ProductCardVM{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Price:       view.FormatPrice(p.Price),
			Brand:       p.Brand,
			Category:    p.Category,
			Thumbnail:   p.Thumbnail,
			EditURL:     view.DashboardEditURL(p.ID, term, sortField, page),
			DeleteURL:   fmt.Sprintf("/dashboard/products/%d/delete", p.ID),
		})
	}

	links := make([]view.PageLink, 0, maxVisiblePages+2)
	for _, entry := range view.VisiblePages(page, snap.TotalPages, maxVisiblePages) {
		if entry == view.Ellipsis {
			links = append(links, view.PageLink{Ellipsis: true})
			continue
		}
		n, _ := strconv.Atoi(entry)
		links = append(links, view.PageLink{
			Label:   entry,
			URL:     view.DashboardURL(term, sortField, n),
			Current: n == page,
		})
	}

	vm := view.DashboardVM{
		Title:       "Online Products Management",
		Products:    cards,
		SearchTerm:  term,
		SortField:   sortField,
		CurrentPage: page,
		TotalPages:  snap.TotalPages,
		TotalItems:  snap.TotalItems,
		Pages:       links,
		HasPrev:     page > 1,
		HasNext:     page < snap.TotalPages,
		PrevURL:     view.DashboardURL(term, sortField, page-1),
		NextURL:     view.DashboardURL(term, sortField, page+1),
		NewURL:      view.DashboardNewURL(term, sortField, page),
		AlertError:  snap.Err,
		IsModalOpen: snap.IsModalOpen,
		ModalAction: "/dashboard/products",
		CancelURL:   view.DashboardURL(term, sortField, page),
		Flash:       f,
	}

	if snap.Selected != nil {
		vm.ModalIsEdit = true
		vm.ModalAction = fmt.Sprintf("/dashboard/products/%d", snap.Selected.ID)
		vm.ModalForm = view.ProductFormVM{
			ID:          snap.Selected.ID,
			Title:       snap.Selected.Title,
			Description: snap.Selected.Description,
			Price:       view.FormatPrice(snap.Selected.Price),
			Brand:       snap.Selected.Brand,
			Category:    snap.Selected.Category,
		}
	}

	return vm
}
