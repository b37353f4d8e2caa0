package handlers

import (
	"net/http"

	"vtc-booking/internal/domain"
	"vtc-booking/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler carries every dependency the endpoints need. Everything is
// injected; handlers never reach for package state.
type Handler struct {
	Bookings services.BookingService
	Auth     services.AuthService
	Docs     services.DocsService
	Log      *zap.Logger
}

func NewHandler(bookings services.BookingService, auth services.AuthService, docs services.DocsService, log *zap.Logger) *Handler {
	return &Handler{Bookings: bookings, Auth: auth, Docs: docs, Log: log}
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

// respondDomainError translates a domain error into the response envelope.
// Internal detail never reaches the client; it is logged instead.
func (h *Handler) respondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Données invalides",
			"errors":  domain.FieldErrors(err),
		})
	case domain.IsPastDate(err):
		respondError(c, http.StatusBadRequest, "La date et heure de réservation ne peuvent pas être dans le passé")
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "Réservation non trouvée")
	case domain.IsAuth(err):
		respondError(c, http.StatusUnauthorized, "Identifiants incorrects")
	case domain.IsConflict(err):
		respondError(c, http.StatusForbidden, "Un administrateur existe déjà")
	default:
		h.Log.Error("request failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Erreur interne du serveur")
	}
}
