package server

import (
	"fmt"

	"github.com/capsule-retail/inventory-dashboard/internal/config"
	"github.com/capsule-retail/inventory-dashboard/internal/database"
	"github.com/capsule-retail/inventory-dashboard/internal/handlers"
	"github.com/capsule-retail/inventory-dashboard/internal/middleware"
	"github.com/capsule-retail/inventory-dashboard/internal/services"
	"github.com/capsule-retail/inventory-dashboard/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// NewRouter wires stores, services and handlers over db and registers every
// route.
func NewRouter(cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
	if err := handlers.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	users := database.NewUserStore(db)
	items := database.NewInventoryStore(db)
	activity := database.NewActivityStore(db)

	recorder := services.NewActivityRecorder(activity)
	authSvc := services.NewAuthService(users, recorder, cfg.Auth.BcryptCost)
	inventorySvc := services.NewInventoryService(items, recorder)
	dashboardSvc := services.NewDashboardService(users, items, activity)
	bot := services.NewChatbot(items)

	mgr := session.NewManager(session.NewStore(cfg.Session), cfg.Session.MaxAge.Duration())

	authH := handlers.NewAuthHandler(authSvc, mgr)
	inventoryH := handlers.NewInventoryHandler(inventorySvc)
	stockH := handlers.NewStockHandler(inventorySvc)
	chatH := handlers.NewChatbotHandler(bot)
	adminH := handlers.NewAdminHandler(dashboardSvc)
	pages := handlers.NewPageHandler(cfg.WebDir)
	health := handlers.NewHealthHandler()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(), middleware.RequestLogger(), middleware.Metrics())
	r.Use(mgr.Handler())
	r.Use(middleware.InjectPrincipal(mgr))

	r.Static("/static", cfg.WebDir)

	// public pages
	r.GET("/", pages.Index)
	r.GET("/login", pages.Guest("login"))
	r.GET("/register", pages.Guest("register"))
	r.GET("/contact", pages.Page("contact"))

	// auth
	r.POST("/login", authH.Login)
	r.POST("/register", authH.Register)
	r.POST("/logout", authH.Logout)

	// public reads
	r.GET("/inventory-data", inventoryH.List)
	r.GET("/trends-data", stockH.Trends)
	r.POST("/chatbot", chatH.Reply)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())
	{
		auth.GET("/dashboard", pages.Page("dashboard"))
		auth.GET("/inventory", pages.Page("inventory"))
		auth.GET("/notifications", pages.Page("notifications"))
		auth.GET("/trends", pages.Page("trends"))

		auth.POST("/inventory", inventoryH.Add)
		auth.DELETE("/inventory/:id", inventoryH.Delete)
		auth.GET("/notifications-data", stockH.Notifications)
		auth.GET("/api/me", authH.Me)
	}

	admin := r.Group("/")
	admin.Use(middleware.RequireAuth(), middleware.RequireAdmin())
	{
		admin.GET("/admin-dashboard", pages.Page("admin-dashboard"))
		admin.GET("/api/admin/dashboard-stats", adminH.DashboardStats)
		admin.GET("/api/admin/activity", adminH.ListActivity)
	}

	r.GET("/health", health.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r, nil
}
