package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DIX2580/salon-website/internal/handler"
	"github.com/DIX2580/salon-website/internal/handler/health"
	"github.com/DIX2580/salon-website/internal/handler/prometheus"
	"github.com/DIX2580/salon-website/internal/middleware"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type RouterConfig struct {
	CORSConfig     middleware.CORSConfig
	Security       middleware.SecurityConfig
	RequestTimeout time.Duration
	MaxBodySize    int64
}

type Router struct {
	engine   *gin.Engine
	health   *health.Handler
	metrics  *prometheus.Handler
	security middleware.SecurityConfig
	bookingH Handler
	contactH Handler
}

func NewRouter(
	bookingH Handler,
	contactH Handler,
	healthH *health.Handler,
	metricsH *prometheus.Handler,
	config RouterConfig,
) *Router {
	if config.RequestTimeout <= 0 {
		config.RequestTimeout = 30 * time.Second
	}
	if config.MaxBodySize <= 0 {
		config.MaxBodySize = middleware.DefaultMaxBodySize
	}
	if config.Security == (middleware.SecurityConfig{}) {
		config.Security = middleware.DefaultSecurityConfig()
	}

	engine := gin.New()
	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		metricsH.Middleware(),
		middleware.CORS(config.CORSConfig),
		middleware.SecurityHeaders(config.Security),
		middleware.Timeout(config.RequestTimeout),
		middleware.SizeLimit(config.MaxBodySize),
		middleware.ErrorHandler(),
	)

	r := &Router{
		engine:   engine,
		health:   healthH,
		metrics:  metricsH,
		security: config.Security,
		bookingH: bookingH,
		contactH: contactH,
	}
	r.setup()
	return r
}

func (r *Router) setup() {
	r.engine.GET("/", handler.Root)
	r.health.RegisterRoutes(r.engine)
	r.engine.GET("/metrics", r.metrics.Handler())

	api := r.engine.Group("/api", middleware.NoStore(r.security))
	r.bookingH.RegisterRoutes(api)
	r.contactH.RegisterRoutes(api)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
