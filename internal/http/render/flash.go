package render

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Luisfp0/online-course-products/internal/http/flash"
	"github.com/Luisfp0/online-course-products/internal/http/middleware"
	"github.com/Luisfp0/online-course-products/pkg/view"
)

func RedirectWithFlash(c *gin.Context, codec *flash.Codec, location string, kind view.FlashKind, msg string) {
	middleware.SetFlashCookie(c, codec, view.Flash{Kind: kind, Message: msg})
	c.Redirect(http.StatusFound, location)
}
