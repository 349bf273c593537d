package api

import (
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	jwtware "github.com/gofiber/jwt/v3"
	jwt "github.com/golang-jwt/jwt/v4"

	"github.com/sk25649/pdf-api-landing-page/internal/billing"
	"github.com/sk25649/pdf-api-landing-page/internal/config"
	"github.com/sk25649/pdf-api-landing-page/internal/keys"
	"github.com/sk25649/pdf-api-landing-page/internal/pkg/supabase"
	"github.com/sk25649/pdf-api-landing-page/internal/render"
	"github.com/sk25649/pdf-api-landing-page/internal/stats"
	"github.com/sk25649/pdf-api-landing-page/pkg/database"
)

type Server struct {
	app      *fiber.App
	cfg      *config.Config
	db       *database.Clients
	renderer render.Client
	auth     supabase.Authenticator
	billing  *billing.Service
	keys     *keys.Service
	stats    *stats.Service
	validate *validator.Validate
	logger   *slog.Logger
}

func NewServer(cfg *config.Config, db *database.Clients, renderer render.Client, auth supabase.Authenticator) *Server {
	app := fiber.New(fiber.Config{
		AppName: "docapi-web",
	})

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status}\n",
	}))
	app.Use(cors.New())
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.Server.MaxRequests,
		Expiration: cfg.Server.RequestTimeout,
	}))

	log := slog.Default()
	server := &Server{
		app:      app,
		cfg:      cfg,
		db:       db,
		renderer: renderer,
		auth:     auth,
		billing: billing.NewService(db.DB, billing.Config{
			SecretKey:     cfg.Stripe.SecretKey,
			WebhookSecret: cfg.Stripe.WebhookSecret,
			SiteURL:       cfg.Server.SiteURL,
			PriceToPlan:   cfg.Stripe.PriceToPlan(),
		}, log),
		keys:     keys.NewService(db.DB),
		stats:    stats.NewService(db.Redis, log),
		validate: validator.New(),
		logger:   log,
	}

	// Routes
	server.setupRoutes()

	return server
}

func (s *Server) setupRoutes() {
	s.app.Get("/health", s.handleHealth)

	api := s.app.Group("/api")

	// Public routes
	api.Post("/login", s.handleLogin)
	api.Get("/plans", s.handlePlans)
	api.Get("/stats", s.handleStats)
	api.Post("/track", s.handleTrack)
	api.Post("/webhooks/stripe", s.handleStripeWebhook)

	tools := api.Group("/tools")
	tools.Get("/tax-rates", s.handleTaxRates)
	tools.Post("/invoice", s.handleInvoicePDF)
	tools.Post("/invoice/preview", s.handleInvoicePreview)
	tools.Post("/resume", s.handleResumePDF)
	tools.Post("/og-image", s.handleOGImage)

	// Protected routes
	protected := api.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(s.cfg.JWT.Secret),
	}))
	protected.Post("/checkout", s.handleCheckout)
	protected.Get("/dashboard", s.handleDashboard)
	protected.Post("/keys/regenerate", s.handleRegenerateKey)
}

func (s *Server) Start() error {
	return s.app.Listen(s.cfg.Server.Port)
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// userClaims reads the authenticated user out of the verified JWT.
func userClaims(c *fiber.Ctx) (userID, email string) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return "", ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ""
	}
	userID, _ = claims["sub"].(string)
	email, _ = claims["email"].(string)
	return userID, email
}

// validationDetails flattens validator errors into the structured details
// array returned with 400 responses.
func validationDetails(err error) []fiber.Map {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	details := make([]fiber.Map, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fiber.Map{
			"field": fe.Field(),
			"rule":  fe.Tag(),
		})
	}
	return details
}
