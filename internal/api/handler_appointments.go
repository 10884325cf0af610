package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ev-booking-backend/internal/booking"
	"ev-booking-backend/internal/parse"
)

// appointmentResponse is the resolved view returned after booking.
type appointmentResponse struct {
	ID        int64  `json:"id"`
	User      string `json:"user"`
	Local     string `json:"local"`
	ChargerID int64  `json:"charger_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`
}

// userAppointmentResponse is one entry of a user's appointment listing.
type userAppointmentResponse struct {
	ID        int64  `json:"id"`
	Local     string `json:"local"`
	Endereco  string `json:"endereco"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`
}

// abortBookingError translates a booking error into the matching HTTP
// status. Unanticipated failures are logged by gin's recovery path and
// surfaced as a generic 500.
func abortBookingError(c *gin.Context, err error) {
	switch {
	case booking.IsInvalidArgument(err):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case booking.IsNotFound(err):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Erro inesperado ao processar a requisição"})
	}
}

// CreateAppointment handles POST /api/appointments.
func (h *Handler) CreateAppointment(c *gin.Context) {
	var req booking.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Corpo da requisição inválido"})
		return
	}

	detail, err := h.booking.Create(c.Request.Context(), req)
	if err != nil {
		abortBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Agendamento criado com sucesso!",
		"appointment": appointmentResponse{
			ID:        detail.ID,
			User:      detail.User,
			Local:     detail.Local,
			ChargerID: detail.ChargerID,
			StartTime: parse.FormatTimestamp(detail.StartTime),
			EndTime:   parse.FormatTimestamp(detail.EndTime),
			Status:    detail.Status,
		},
	})
}

// GetUserAppointments handles GET /api/appointments/{user_id}.
func (h *Handler) GetUserAppointments(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "ID de usuário inválido"})
		return
	}

	appointments, err := h.booking.ListForUser(c.Request.Context(), userID)
	if err != nil {
		abortBookingError(c, err)
		return
	}

	response := make([]userAppointmentResponse, 0, len(appointments))
	for _, ap := range appointments {
		response = append(response, userAppointmentResponse{
			ID:        ap.ID,
			Local:     ap.Local,
			Endereco:  ap.Endereco,
			StartTime: parse.FormatTimestamp(ap.StartTime),
			EndTime:   parse.FormatTimestamp(ap.EndTime),
			Status:    ap.Status,
		})
	}
	c.JSON(http.StatusOK, response)
}

// DeleteAppointment handles DELETE /api/appointments/{appointment_id}.
func (h *Handler) DeleteAppointment(c *gin.Context) {
	appointmentID, err := strconv.ParseInt(c.Param("appointment_id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "ID de agendamento inválido"})
		return
	}

	if err := h.booking.Cancel(c.Request.Context(), appointmentID); err != nil {
		abortBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Agendamento excluído com sucesso"})
}
