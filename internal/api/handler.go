package api

import (
	"ev-booking-backend/config"
	"ev-booking-backend/internal/booking"
	"ev-booking-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store   store.Store
	booking *booking.Manager
	auth    *config.AuthConfig
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, authCfg *config.AuthConfig) *Handler {
	return &Handler{
		store:   s,
		booking: booking.NewManager(s),
		auth:    authCfg,
	}
}
