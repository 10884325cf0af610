package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ev-booking-backend/internal/model"
)

type chargerResponse struct {
	ID         int64  `json:"id"`
	LocationID int64  `json:"location_id"`
	Status     string `json:"status"`
}

// GetChargers handles GET /api/chargers.
func (h *Handler) GetChargers(c *gin.Context) {
	chargers, err := h.store.Chargers(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar os carregadores"})
		return
	}

	response := make([]chargerResponse, 0, len(chargers))
	for _, ch := range chargers {
		response = append(response, chargerResponse{ID: ch.ID, LocationID: ch.LocationID, Status: ch.Status})
	}
	c.JSON(http.StatusOK, response)
}

type createChargerRequest struct {
	LocationID int64  `json:"location_id" binding:"required"`
	Status     string `json:"status"`
}

var validChargerStatuses = map[string]bool{
	model.ChargerAvailable:   true,
	model.ChargerUnavailable: true,
	model.ChargerMaintenance: true,
}

// CreateCharger handles POST /api/chargers.
func (h *Handler) CreateCharger(c *gin.Context) {
	var req createChargerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "O campo location_id é obrigatório"})
		return
	}

	if req.Status == "" {
		req.Status = model.ChargerAvailable
	}
	if !validChargerStatuses[req.Status] {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Status de carregador inválido"})
		return
	}

	if _, err := h.store.LocationByID(c.Request.Context(), req.LocationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Local não encontrado"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Erro inesperado ao processar a requisição"})
		return
	}

	charger := model.Charger{LocationID: req.LocationID, Status: req.Status}
	if err := h.store.CreateCharger(c.Request.Context(), &charger); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Erro inesperado ao processar a requisição"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Carregador criado com sucesso!",
		"id":      charger.ID,
	})
}
