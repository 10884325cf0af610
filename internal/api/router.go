package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"ev-booking-backend/config"
	"ev-booking-backend/internal/mw"
	"ev-booking-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(s, &cfg.Auth)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst)

	cacheTTL := time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	requireAuth := mw.RequireAuth(cfg.Auth.JWTSecret)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.POST("/appointments", handler.CreateAppointment)
		api.GET("/appointments/:user_id", handler.GetUserAppointments)
		api.DELETE("/appointments/:appointment_id", handler.DeleteAppointment)

		api.POST("/users", handler.RegisterUser)
		api.POST("/users/login", handler.Login)
		api.DELETE("/users/:user_id", requireAuth, handler.DeleteUser)

		api.GET("/locations/locations_with_chargers", caching, handler.GetLocationsWithChargers)
		api.POST("/locations", requireAuth, handler.CreateLocation)
		api.DELETE("/locations/:location_id", requireAuth, handler.DeleteLocation)

		api.GET("/chargers", caching, handler.GetChargers)
		api.POST("/chargers", requireAuth, handler.CreateCharger)
	}

	return r
}
