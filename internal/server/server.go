// Package server contains the HTTP handlers for the portal's API endpoints.
package server

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	_ "govportal/docs" // swagger docs
	"govportal/internal/cache"
	"govportal/internal/config"
	"govportal/internal/database"
	"govportal/internal/middleware"
	"govportal/internal/models"
	"govportal/internal/repository"
	"govportal/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus

	profileRepo      repository.ProfileRepository
	verificationRepo repository.VerificationRepository
	roleChangeRepo   repository.RoleChangeRepository
	appointmentRepo  repository.AppointmentRepository
	govActRepo       repository.GovActRepository
	courtActRepo     repository.CourtActRepository
	warrantRepo      repository.WarrantRepository
	caseRepo         repository.CaseRepository
	sessionRepo      repository.CourtSessionRepository
	lawyerRepo       repository.LawyerRepository
	lawyerReqRepo    repository.LawyerRequestRepository
	notificationRepo repository.NotificationRepository
	inspectionRepo   repository.InspectionRepository

	verificationService *service.VerificationService
	roleChangeService   *service.RoleChangeService
	appointmentService  *service.AppointmentService
	actService          *service.ActService
	warrantService      *service.WarrantService
	caseService         *service.CaseService
	lawyerService       *service.LawyerService
}

// NewServer creates a new server instance with all dependencies.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	return NewServerWithDeps(cfg, db, redisClient)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Tests and bootstrap layers that establish DB/Redis themselves use this.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	server := &Server{
		config:           cfg,
		db:               db,
		redis:            redisClient,
		promMiddleware:   middleware.InitMetrics("govportal-api"),
		profileRepo:      repository.NewProfileRepository(db),
		verificationRepo: repository.NewVerificationRepository(db),
		roleChangeRepo:   repository.NewRoleChangeRepository(db),
		appointmentRepo:  repository.NewAppointmentRepository(db),
		govActRepo:       repository.NewGovActRepository(db),
		courtActRepo:     repository.NewCourtActRepository(db),
		warrantRepo:      repository.NewWarrantRepository(db),
		caseRepo:         repository.NewCaseRepository(db),
		sessionRepo:      repository.NewCourtSessionRepository(db),
		lawyerRepo:       repository.NewLawyerRepository(db),
		lawyerReqRepo:    repository.NewLawyerRequestRepository(db),
		notificationRepo: repository.NewNotificationRepository(db),
		inspectionRepo:   repository.NewInspectionRepository(db),
	}

	server.verificationService = service.NewVerificationService(db, server.verificationRepo, server.profileRepo, server.notificationRepo)
	server.roleChangeService = service.NewRoleChangeService(db, server.roleChangeRepo, server.profileRepo, server.notificationRepo)
	server.appointmentService = service.NewAppointmentService(server.appointmentRepo, server.profileRepo, server.notificationRepo)
	server.actService = service.NewActService(server.govActRepo, server.courtActRepo, server.profileRepo)
	server.warrantService = service.NewWarrantService(server.warrantRepo, server.profileRepo)
	server.caseService = service.NewCaseService(server.caseRepo, server.sessionRepo, server.profileRepo)
	server.lawyerService = service.NewLawyerService(server.lawyerRepo, server.lawyerReqRepo, server.profileRepo, server.notificationRepo)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.ContextMiddleware())
	app.Use(middleware.Tracing())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())

	// CORS must run before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Gosuslugi Backend Metrics Dashboard",
	}))

	// Swagger documentation
	api.Get("/swagger/*", swagger.HandlerDefault)

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/signup", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "signup"), s.SignUp)
	auth.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)
	auth.Post("/refresh", s.Refresh)
	auth.Post("/logout", s.Logout)

	// Public registries (anonymous read access)
	publicActs := api.Group("/acts")
	publicActs.Get("/gov", s.ListGovActs)
	publicActs.Get("/gov/:id", s.GetGovAct)
	publicActs.Get("/court", s.ListCourtActs)
	publicActs.Get("/court/:id", s.GetCourtAct)

	publicWarrants := api.Group("/warrants")
	publicWarrants.Get("/", s.ListWarrants)
	publicWarrants.Get("/:id", s.GetWarrant)

	publicSessions := api.Group("/court-sessions")
	publicSessions.Get("/upcoming", s.ListUpcomingSessions)

	api.Get("/lawyers", s.ListLawyers)
	api.Get("/search", middleware.RateLimit(
		s.redis, 10, time.Minute, "search"), s.Search)

	// Protected routes
	protected := api.Group("", s.AuthRequired())

	// Profile routes
	profiles := protected.Group("/profiles")
	profiles.Get("/me", s.GetMyProfile)
	profiles.Put("/me", s.UpdateMyProfile)
	profiles.Get("/", s.ListProfiles)
	profiles.Get("/:id", s.GetProfile)

	// Verification request routes
	verifications := protected.Group("/verifications")
	verifications.Post("/", middleware.RateLimit(
		s.redis, 5, 10*time.Minute, "verification"), s.CreateVerification)
	verifications.Get("/me", s.GetMyVerifications)
	verifications.Get("/review", s.ListVerificationsForReview)
	verifications.Post("/:id/approve", s.ApproveVerification)
	verifications.Post("/:id/reject", s.RejectVerification)

	// Role change routes
	roleChanges := protected.Group("/role-changes")
	roleChanges.Post("/", middleware.RateLimit(
		s.redis, 5, 10*time.Minute, "role_change"), s.CreateRoleChange)
	roleChanges.Get("/me", s.GetMyRoleChanges)
	roleChanges.Get("/review", s.ListRoleChangesForReview)
	roleChanges.Post("/:id/approve", s.ApproveRoleChange)
	roleChanges.Post("/:id/reject", s.RejectRoleChange)

	// Appointment routes
	appointments := protected.Group("/appointments")
	appointments.Post("/", middleware.RateLimit(
		s.redis, 5, 10*time.Minute, "appointment"), s.CreateAppointment)
	appointments.Get("/me", s.GetMyAppointments)
	appointments.Get("/desk", s.ListDeskAppointments)
	appointments.Post("/:id/approve", s.ApproveAppointment)
	appointments.Post("/:id/reject", s.RejectAppointment)
	appointments.Post("/:id/done", s.CompleteAppointment)
	appointments.Post("/:id/cancel", s.CancelAppointment)

	// Act authoring routes
	acts := protected.Group("/acts")
	acts.Post("/gov", s.CreateGovAct)
	acts.Put("/gov/:id", s.UpdateGovAct)
	acts.Post("/gov/:id/status", s.SetGovActStatus)
	acts.Post("/court", s.CreateCourtAct)
	acts.Put("/court/:id", s.UpdateCourtAct)
	acts.Post("/court/:id/status", s.SetCourtActStatus)

	// Warrant authoring routes
	warrants := protected.Group("/warrants")
	warrants.Post("/", s.CreateWarrant)
	warrants.Post("/:id/revoke", s.RevokeWarrant)
	warrants.Delete("/:id", s.DeleteWarrant)

	// Case routes
	cases := protected.Group("/cases")
	cases.Post("/", s.CreateCase)
	cases.Get("/", s.ListCases)
	cases.Get("/:id/sessions", s.ListCaseSessions)
	cases.Post("/:id/sessions", s.ScheduleCourtSession)
	cases.Post("/:id/status", s.SetCaseStatus)
	cases.Get("/:id", s.GetCase)
	protected.Post("/court-sessions/:id/close", s.CloseCourtSession)

	// Lawyer routes
	lawyers := protected.Group("/lawyers")
	lawyers.Post("/", s.RegisterLawyer)
	lawyers.Post("/:id/status", s.SetLawyerStatus)
	lawyers.Post("/:id/requests", middleware.RateLimit(
		s.redis, 5, 10*time.Minute, "lawyer_request"), s.RequestRepresentation)
	protected.Get("/lawyer-requests/me", s.GetMyLawyerRequests)
	protected.Get("/lawyer-requests/incoming", s.GetIncomingLawyerRequests)
	protected.Post("/lawyer-requests/:id/respond", s.RespondLawyerRequest)

	// Inspection routes
	inspections := protected.Group("/inspections")
	inspections.Post("/", s.CreateInspection)
	inspections.Get("/", s.ListInspections)
	inspections.Post("/:id/complete", s.CompleteInspection)
	inspections.Get("/:id", s.GetInspection)

	// Notification routes
	notifications := protected.Group("/notifications")
	notifications.Get("/", s.GetMyNotifications)
	notifications.Post("/read-all", s.MarkAllNotificationsRead)
	notifications.Post("/:id/read", s.MarkNotificationRead)
	notifications.Delete("/:id", s.DeleteNotification)
}

// LivenessCheck handles liveness probe requests.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" || redisStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// AuthRequired returns the authentication middleware.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		tokenString := ""
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}
		if tokenString == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(s.config.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token claims"))
		}

		if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != tokenIssuer {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token issuer"))
		}
		if audience, audienceOk := claims["aud"].(string); !audienceOk || audience != tokenAudience {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token audience"))
		}

		sub, ok := claims["sub"].(string)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid subject claim"))
		}
		profileID, err := strconv.ParseUint(sub, 10, 32)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid profile ID in token"))
		}

		// Check JTI for revocation
		if jti, exists := claims["jti"].(string); exists && jti != "" && s.redis != nil {
			isBlacklisted, err := s.redis.Exists(c.Context(), "blacklist:"+jti).Result()
			if err == nil && isBlacklisted > 0 {
				return models.RespondWithError(c, fiber.StatusUnauthorized,
					models.NewUnauthorizedError("Token has been revoked"))
			}
		}

		c.Locals("profileID", uint(profileID))
		ctx := context.WithValue(c.UserContext(), middleware.ProfileIDKey, uint(profileID))
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// optionalProfileID extracts the profile ID from the Authorization header
// without enforcing it. Anonymous registry readers get (0, false).
func (s *Server) optionalProfileID(c *fiber.Ctx) (uint, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return 0, false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0, false
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, false
	}
	profileID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(profileID), true
}

// Start starts the server.
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Gosuslugi API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
