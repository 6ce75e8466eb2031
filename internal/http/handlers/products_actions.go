package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Luisfp0/online-course-products/internal/http/flash"
	"github.com/Luisfp0/online-course-products/internal/http/middleware"
	"github.com/Luisfp0/online-course-products/internal/http/render"
	"github.com/Luisfp0/online-course-products/internal/http/validation"
	"github.com/Luisfp0/online-course-products/internal/modules/products"
	"github.com/Luisfp0/online-course-products/pkg/view"
	"github.com/Luisfp0/online-course-products/templates/pages"
)

type productInput struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
	Price       string `form:"price" binding:"required"`
	Brand       string `form:"brand" binding:"required"`
	Category    string `form:"category" binding:"required"`
}

func (in productInput) toDomain() products.Input {
	return products.Input{
		Title:       in.Title,
		Description: in.Description,
		Price:       view.ParsePrice(in.Price),
		Brand:       in.Brand,
		Category:    in.Category,
	}
}

// ProductsHandler owns the create/update/delete form actions.
type ProductsHandler struct {
	store *products.Store
	flash *flash.Codec
}

func NewProductsHandler(store *products.Store, flashCodec *flash.Codec) *ProductsHandler {
	return &ProductsHandler{store: store, flash: flashCodec}
}

func (h *ProductsHandler) Create(c *gin.Context) {
	var in productInput
	if err := c.ShouldBind(&in); err != nil {
		h.rerenderModal(c, in, 0, validation.FromBindError(err, &in))
		return
	}

	if err := h.store.Create(c.Request.Context(), in.toDomain()); err != nil {
		render.RedirectWithFlash(c, h.flash, "/dashboard", view.FlashError, "Failed to create product.")
		return
	}
	render.RedirectWithFlash(c, h.flash, "/dashboard", view.FlashSuccess, "Product created.")
}

func (h *ProductsHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		render.RedirectWithFlash(c, h.flash, "/dashboard", view.FlashError, "Unknown product.")
		return
	}

	var in productInput
	if err := c.ShouldBind(&in); err != nil {
		h.rerenderModal(c, in, id, validation.FromBindError(err, &in))
		return
	}

	if err := h.store.Update(c.Request.Context(), id, in.toDomain()); err != nil {
		render.RedirectWithFlash(c, h.flash, "/dashboard", view.FlashError, "Failed to update product.")
		return
	}
	render.RedirectWithFlash(c, h.flash, "/dashboard", view.FlashSuccess, "Product updated.")
}

// Delete always reports success: the demo backend never persists
// deletions, so a transport failure would only mislead the user.
func (h *ProductsHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		render.RedirectWithFlash(c, h.flash, "/dashboard", view.FlashError, "Unknown product.")
		return
	}

	_ = h.store.Delete(c.Request.Context(), id)
	render.RedirectWithFlash(c, h.flash, "/dashboard", view.FlashSuccess, "Product deleted.")
}

// rerenderModal re-renders the dashboard with the modal open, the
// submitted values preserved and field errors inline.
func (h *ProductsHandler) rerenderModal(c *gin.Context, in productInput, id int, errs validation.FieldErrors) {
	snap := h.store.Snapshot()
	vm := dashboardVM(snap, middleware.GetFlash(c))
	vm.IsModalOpen = true
	vm.ModalIsEdit = id != 0
	if id != 0 {
		vm.ModalAction = fmt.Sprintf("/dashboard/products/%d", id)
	}
	vm.FormErrors = errs
	vm.ModalForm = view.ProductFormVM{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Brand:       in.Brand,
		Category:    in.Category,
	}
	render.Component(c, http.StatusBadRequest, pages.Dashboard(vm))
}
