package render

import (
	"github.com/gin-gonic/gin"

	"github.com/Luisfp0/online-course-products/internal/http/middleware"
	"github.com/Luisfp0/online-course-products/templates/pages"
)

func ErrorPage(c *gin.Context, status int, msg string, requestID string) {
	flash := middleware.GetFlash(c)
	Component(c, status, pages.Error(status, msg, requestID, flash))
}
