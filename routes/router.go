package routes

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/JabirC/Closet/global"
	"github.com/JabirC/Closet/handlers"
	"github.com/JabirC/Closet/middlewares"
	"github.com/JabirC/Closet/services"
	"github.com/JabirC/Closet/utils/events"
)

// Deps is everything the HTTP layer needs from main.
type Deps struct {
	Users    services.UserService
	Clothes  services.ClothingService
	Outfits  services.OutfitService
	Calendar services.CalendarService
	Wardrobe services.SnapshotService
	Events   events.Subscriber

	JWTSecret   string
	JWTExpires  time.Duration
	CORSOrigins []string
}

// Setup attaches middlewares and registers all endpoints.
func Setup(r *gin.Engine, d Deps) {
	r.Use(middlewares.RequestLogger(), middlewares.Recovery(), corsMiddleware(d.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": global.AppVersion})
	})

	api := r.Group("/api/v1")

	uh := handlers.NewUserHandler(d.Users, d.JWTSecret, d.JWTExpires)
	api.POST("/auth/register", uh.Register)
	api.POST("/auth/login", uh.Login)

	protected := api.Group("/")
	protected.Use(middlewares.Auth(d.JWTSecret))

	protected.GET("/me", uh.Me)
	protected.GET("/wardrobe", handlers.NewWardrobeHandler(d.Wardrobe).Snapshot)

	ch := handlers.NewClothingHandler(d.Clothes)
	protected.GET("/clothes", ch.List)
	protected.POST("/clothes", ch.Create)
	protected.POST("/clothes/classify", ch.Classify)
	protected.DELETE("/clothes/:id", ch.Delete)

	oh := handlers.NewOutfitHandler(d.Outfits)
	protected.GET("/outfits", oh.List)
	protected.POST("/outfits", oh.Create)
	protected.DELETE("/outfits/:id", oh.Delete)

	cal := handlers.NewCalendarHandler(d.Calendar)
	protected.GET("/calendar", cal.Get)
	protected.POST("/calendar", cal.Plan)
	protected.DELETE("/calendar", cal.Unplan)

	protected.GET("/events", handlers.NewEventsHandler(d.Events, d.CORSOrigins).Stream)
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", global.HeaderRequestID},
		ExposeHeaders: []string{global.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}
