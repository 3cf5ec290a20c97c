package routes

import (
	"camp-portal/backend/catalog"
	"camp-portal/backend/config"
	"camp-portal/backend/controllers"
	"camp-portal/backend/metrics"
	"camp-portal/backend/middleware"
	"camp-portal/backend/repository"
	"camp-portal/backend/services"
	"camp-portal/backend/session"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps are the process-wide collaborators shared by every handler.
type Deps struct {
	Log      *zap.Logger
	Catalog  *catalog.Catalog
	Denylist session.Denylist
	Metrics  *metrics.Metrics
}

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, deps Deps) {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.New()
	}
	if deps.Denylist == nil {
		deps.Denylist = session.NewMemoryDenylist()
	}

	// Repositories
	progressRepo := repository.NewProgressRepository(db)
	bookmarkRepo := repository.NewBookmarkRepository(db)
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, profileRepo, deps.Denylist, cfg)
	progressService := services.NewProgressService(progressRepo, deps.Catalog, deps.Metrics, log)
	dashboardService := services.NewDashboardService(progressService, bookmarkRepo, profileRepo, deps.Catalog)
	guideService := services.NewGuideService(bookmarkRepo, deps.Catalog, deps.Metrics)
	exporter := services.NewGuideExporter(deps.Catalog, cfg.GuidePDFFont)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg, deps.Denylist, log)
	optionalAuth := middleware.OptionalAuth(cfg, deps.Denylist, log)

	app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))

	api := app.Group("/api")

	// Landing
	overviewController := controllers.NewOverviewController(authService, guideService, deps.Catalog, log)
	api.Get("/landing", optionalAuth, overviewController.Landing)

	// Auth routes
	authController := controllers.NewAuthController(authService, log)
	api.Post("/auth/register", authController.Register)
	api.Post("/auth/login", authController.Login)
	api.Post("/auth/logout", authMiddleware, authController.Logout)
	api.Get("/auth/me", authMiddleware, authController.Me)

	// User routes
	userController := controllers.NewUserController(authService, log)
	api.Get("/user/profile", authMiddleware, userController.GetProfile)
	api.Put("/user/profile", authMiddleware, userController.UpdateProfile)

	// Dashboard
	progressController := controllers.NewProgressController(dashboardService, log)
	api.Get("/dashboard", authMiddleware, progressController.GetDashboard)

	// Courses routes
	coursesController := controllers.NewCoursesController(progressService, log)
	courses := api.Group("/courses", authMiddleware)
	courses.Get("/:type", coursesController.GetCourse)
	courses.Get("/:type/items/:itemId", coursesController.GetItem)
	courses.Post("/:type/items/:itemId/complete", coursesController.CompleteItem)

	// Guide routes
	guideController := controllers.NewGuideController(guideService, exporter, log)
	guide := api.Group("/guide", authMiddleware)
	guide.Get("/", guideController.GetGuide)
	guide.Get("/search", overviewController.SearchGuide)
	guide.Get("/export.pdf", guideController.ExportPDF)
	guide.Put("/bookmarks/:sectionId", guideController.AddBookmark)
	guide.Delete("/bookmarks/:sectionId", guideController.RemoveBookmark)
}
