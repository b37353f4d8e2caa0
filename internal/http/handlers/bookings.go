package handlers

import (
	"net/http"
	"strconv"

	"vtc-booking/internal/domain"
	"vtc-booking/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/bookings
func (h *Handler) CreateBooking(c *gin.Context) {
	var in services.BookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Données invalides",
			"errors":  []string{"request body must be valid JSON with correctly typed fields"},
		})
		return
	}

	booking, err := h.Bookings.Submit(in)
	if err != nil {
		h.respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Réservation enregistrée avec succès",
		"bookingId": booking.ID,
		"data":      booking,
	})
}

// GET /api/bookings/:id
func (h *Handler) GetBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "ID de réservation invalide")
		return
	}

	booking, err := h.Bookings.GetPublic(id)
	if err != nil {
		h.respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    booking,
	})
}

// GET /api/bookings/availability/:date/:time
func (h *Handler) CheckAvailability(c *gin.Context) {
	available, err := h.Bookings.CheckAvailability(c.Param("date"), c.Param("time"))
	if err != nil {
		if domain.IsValidation(err) {
			respondError(c, http.StatusBadRequest, "Date ou heure invalide")
			return
		}
		h.respondDomainError(c, err)
		return
	}

	message := "Créneau déjà réservé"
	if available {
		message = "Créneau disponible"
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"available": available,
		"message":   message,
	})
}
