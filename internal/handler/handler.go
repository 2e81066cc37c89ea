package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const rootMessage = "Hair Hacker Salon API is running"

// Root answers the plain-text liveness probe at "/".
func Root(c *gin.Context) {
	c.String(http.StatusOK, rootMessage)
}
