package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ev-booking-backend/internal/model"
)

type chargerSummary struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

type locationResponse struct {
	ID       int64            `json:"id"`
	Name     string           `json:"name"`
	Address  string           `json:"address"`
	Chargers []chargerSummary `json:"chargers"`
}

// GetLocationsWithChargers handles GET /api/locations/locations_with_chargers.
func (h *Handler) GetLocationsWithChargers(c *gin.Context) {
	locations, err := h.store.LocationsWithChargers(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar as localizações"})
		return
	}

	response := make([]locationResponse, 0, len(locations))
	for _, loc := range locations {
		chargers := make([]chargerSummary, 0, len(loc.Chargers))
		for _, ch := range loc.Chargers {
			chargers = append(chargers, chargerSummary{ID: ch.ID, Status: ch.Status})
		}
		response = append(response, locationResponse{
			ID:       loc.ID,
			Name:     loc.Name,
			Address:  loc.Address,
			Chargers: chargers,
		})
	}
	c.JSON(http.StatusOK, response)
}

type createLocationRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
}

// CreateLocation handles POST /api/locations.
func (h *Handler) CreateLocation(c *gin.Context) {
	var req createLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Nome e endereço são obrigatórios"})
		return
	}

	location := model.Location{Name: req.Name, Address: req.Address}
	if err := h.store.CreateLocation(c.Request.Context(), &location); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Erro inesperado ao processar a requisição"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Localização criada com sucesso!",
		"id":      location.ID,
	})
}

// DeleteLocation handles DELETE /api/locations/{location_id}. The
// location's chargers and their appointments are removed in the same
// transaction.
func (h *Handler) DeleteLocation(c *gin.Context) {
	locationID, err := strconv.ParseInt(c.Param("location_id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "ID de localização inválido"})
		return
	}

	if err := h.store.DeleteLocation(c.Request.Context(), locationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Local não encontrado"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Erro inesperado ao processar a requisição"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Localização excluída com sucesso"})
}
