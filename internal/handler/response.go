package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/DIX2580/salon-website/pkg/errors"
)

// BindJSON decodes the request body into dst. An empty body decodes as an
// empty object so that validation reports the missing fields. A body cut
// off by the size limit is a TooLarge error, not a validation one.
func BindJSON(c *gin.Context, resource string, dst interface{}) error {
	err := c.ShouldBindJSON(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperrors.TooLarge(
			fmt.Sprintf("Request size exceeds limit: body size exceeds %d bytes", tooLarge.Limit), err)
	}
	return apperrors.Validationf("%s validation failed: invalid JSON body: %v", resource, err)
}

// Fail attaches err for the error middleware. A non-zero status overrides
// the status derived from the error kind, except for TooLarge errors which
// always answer 413.
func Fail(c *gin.Context, status int, err error) {
	if apperrors.IsKind(err, apperrors.KindTooLarge) {
		status = 0
	}
	e := c.Error(err)
	if status != 0 {
		e.SetMeta(status)
	}
	c.Abort()
}

// FailUnlessNotFound reports not-found errors as 404 and everything else
// with status.
func FailUnlessNotFound(c *gin.Context, status int, err error) {
	if apperrors.IsKind(err, apperrors.KindNotFound) {
		Fail(c, 0, err)
		return
	}
	Fail(c, status, err)
}
