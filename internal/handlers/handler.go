package handlers

import (
	"html/template"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "rolsa/docs" // registers the OpenAPI document served under /swagger
	"rolsa/internal/logger"
	"rolsa/internal/metrics"
	"rolsa/internal/service"
	"rolsa/internal/session"
	"rolsa/web"
)

// Options carries the HTTP-layer collaborators that are not services.
type Options struct {
	Sessions       *session.Manager
	Metrics        *metrics.Metrics
	EmailPerMinute int
	EmailBurst     int
}

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services     *service.Service
	log          *logger.Logger
	sessions     *session.Manager
	metrics      *metrics.Metrics
	emailLimiter *rateLimiter
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts Options) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	if opts.Sessions == nil {
		opts.Sessions = session.NewManager("", "rolsa_session", 24*time.Hour, false)
	}
	return &Handler{
		services:     services,
		log:          log,
		sessions:     opts.Sessions,
		metrics:      opts.Metrics,
		emailLimiter: newRateLimiter(opts.EmailPerMinute, opts.EmailBurst),
	}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestID, h.requestLogger)
	if h.metrics != nil {
		router.Use(h.metrics.Middleware())
		router.GET("/metrics", gin.WrapH(h.metrics.Handler()))
	}

	tmpl, err := web.Templates(templateFuncs())
	if err != nil {
		panic(err) // templates are embedded, a parse error is a build defect
	}
	router.SetHTMLTemplate(tmpl)
	router.StaticFS("/static", http.FS(web.Static()))
	router.NoRoute(h.loadSession, func(c *gin.Context) {
		h.renderError(c, http.StatusNotFound, "Page not found", "The page you asked for does not exist.")
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Server-rendered site
	site := router.Group("/", h.loadSession)
	{
		h.registerPageRoutes(site)
		h.registerAuthRoutes(site)
		h.registerEnergyRoutes(site)
		h.registerCarbonRoutes(site)
		h.registerBookingRoutes(site)
		h.registerEmailRoutes(site)
	}

	// Versioned JSON API (read-only)
	h.registerAPIRoutes(router)

	// Live totals over WebSocket (HTTP upgrade), same port
	router.GET("/ws/totals", h.wsTotals)

	return router
}

func (h *Handler) registerPageRoutes(r *gin.RouterGroup) {
	r.GET("/", h.home)
	r.GET("/about", h.staticPage("about.html", "About"))
	r.GET("/products", h.staticPage("products.html", "Products"))
	r.GET("/news", h.staticPage("news.html", "News"))
	r.GET("/contact", h.staticPage("contact.html", "Contact"))
	r.GET("/summary", h.summaryPage)
}

func (h *Handler) registerAuthRoutes(r *gin.RouterGroup) {
	r.POST("/register", h.register)
	r.POST("/login", h.login)
	r.GET("/logout", h.logout)
}

func (h *Handler) registerEnergyRoutes(r *gin.RouterGroup) {
	r.GET("/energy", h.energyForm)
	r.POST("/energy", h.createEnergy)
	r.GET("/energy-summary", h.energySummary)
}

func (h *Handler) registerCarbonRoutes(r *gin.RouterGroup) {
	r.GET("/carbon", h.carbonForm)
	r.POST("/carbon", h.createCarbon)
	r.GET("/carbon-summary", h.carbonSummary)
}

func (h *Handler) registerBookingRoutes(r *gin.RouterGroup) {
	booking := r.Group("/", h.requireLogin)
	{
		booking.GET("/booking", h.bookingForm)
		booking.POST("/booking", h.createBooking)
		booking.GET("/booking-confirmation/:id", h.bookingConfirmation)
	}
}

func (h *Handler) registerEmailRoutes(r *gin.RouterGroup) {
	r.POST("/email-energy", h.throttleEmail(pathEnergySummary), h.emailEnergy)
	r.POST("/email-carbon", h.throttleEmail(pathCarbonSummary), h.emailCarbon)
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.GET("/energy", h.apiEnergy)
		api.GET("/carbon", h.apiCarbon)
		api.GET("/summary", h.apiSummary)
	}
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"num":  func(v float64) string { return humanize.FormatFloat("#,###.##", v) },
		"ago":  humanize.Time,
		"year": func() int { return time.Now().Year() },
	}
}
