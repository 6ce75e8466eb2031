package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Luisfp0/online-course-products/internal/http/flash"
	"github.com/Luisfp0/online-course-products/internal/http/middleware"
	"github.com/Luisfp0/online-course-products/internal/http/render"
	"github.com/Luisfp0/online-course-products/internal/http/validation"
	"github.com/Luisfp0/online-course-products/internal/modules/auth"
	"github.com/Luisfp0/online-course-products/pkg/view"
	"github.com/Luisfp0/online-course-products/templates/pages"
)

const invalidCredentialsMsg = "Invalid credentials. Please try again."

type loginInput struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// LoginHandler owns the login gate routes.
type LoginHandler struct {
	gate    *auth.Gate
	flash   *flash.Codec
	gateCfg middleware.AuthGateCfg
}

func NewLoginHandler(gate *auth.Gate, flashCodec *flash.Codec, gateCfg middleware.AuthGateCfg) *LoginHandler {
	return &LoginHandler{gate: gate, flash: flashCodec, gateCfg: gateCfg}
}

// Root redirects to the dashboard or the login screen depending on the flag.
func (h *LoginHandler) Root(c *gin.Context) {
	if middleware.IsAuthenticated(c) {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

func (h *LoginHandler) Get(c *gin.Context) {
	if middleware.IsAuthenticated(c) {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	returnTo := normalizeReturnTo(c.Query("return_to"))
	render.Component(c, http.StatusOK, pages.Login(view.LoginVM{
		Title:    "Online Products Management - Login",
		Flash:    middleware.GetFlash(c),
		ReturnTo: returnTo,
	}))
}

func (h *LoginHandler) Post(c *gin.Context) {
	returnTo := normalizeReturnTo(c.PostForm("return_to"))

	var in loginInput
	if err := c.ShouldBind(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		// SSR: re-render the same page with 400
		render.Component(c, http.StatusBadRequest, pages.Login(view.LoginVM{
			Title:     "Online Products Management - Login",
			Form:      view.LoginForm{Username: in.Username},
			FormError: errs.Joined("username", "password"),
			Flash:     middleware.GetFlash(c),
			ReturnTo:  returnTo,
		}))
		return
	}

	if !h.gate.Verify(in.Username, in.Password) {
		// credentials error: page-level message, form stays editable
		render.Component(c, http.StatusUnauthorized, pages.Login(view.LoginVM{
			Title:     "Online Products Management - Login",
			Form:      view.LoginForm{Username: in.Username},
			FormError: invalidCredentialsMsg,
			Flash:     middleware.GetFlash(c),
			ReturnTo:  returnTo,
		}))
		return
	}

	middleware.SetAuthCookie(c, h.gateCfg)

	dest := "/dashboard"
	if returnTo != "" {
		dest = returnTo
	}
	render.RedirectWithFlash(c, h.flash, dest, view.FlashSuccess, "Login successful.")
}

func (h *LoginHandler) Logout(c *gin.Context) {
	middleware.ClearAuthCookie(c, h.gateCfg)
	render.RedirectWithFlash(c, h.flash, "/login", view.FlashInfo, "Logged out.")
}
