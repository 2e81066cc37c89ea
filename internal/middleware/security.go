package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecurityConfig lists the response headers set on every API response.
type SecurityConfig struct {
	FrameOptions       string
	ContentTypeOptions string
	ReferrerPolicy     string
	// CacheControl is applied to /api responses only; bookings carry
	// contact details that shared caches must not keep.
	CacheControl string
}

func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		FrameOptions:       "DENY",
		ContentTypeOptions: "nosniff",
		ReferrerPolicy:     "no-referrer",
		CacheControl:       "no-store",
	}
}

// SecurityHeaders adds the configured headers before the handler runs.
// Empty fields are skipped.
func SecurityHeaders(config SecurityConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		if config.FrameOptions != "" {
			h.Set("X-Frame-Options", config.FrameOptions)
		}
		if config.ContentTypeOptions != "" {
			h.Set("X-Content-Type-Options", config.ContentTypeOptions)
		}
		if config.ReferrerPolicy != "" {
			h.Set("Referrer-Policy", config.ReferrerPolicy)
		}
		c.Next()
	}
}

// NoStore marks every response of the group it is attached to with the
// configured Cache-Control value.
func NoStore(config SecurityConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.CacheControl != "" {
			c.Header("Cache-Control", config.CacheControl)
		}
		c.Next()
	}
}
