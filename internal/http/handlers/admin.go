package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"vtc-booking/internal/domain"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/admin/login
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "Nom d'utilisateur et mot de passe requis")
		return
	}

	token, user, err := h.Auth.Login(req.Username, req.Password)
	if err != nil {
		h.respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

type createAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// POST /api/admin/create-admin — one-shot bootstrap.
func (h *Handler) CreateAdmin(c *gin.Context) {
	var req createAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "Nom d'utilisateur et mot de passe requis")
		return
	}

	id, err := h.Auth.Bootstrap(req.Username, req.Password, req.Email)
	if err != nil {
		h.respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Compte administrateur créé avec succès",
		"adminId": id,
	})
}

// GET /api/admin/bookings?page=&limit=&status=
func (h *Handler) ListBookings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	status := c.Query("status")

	rows, pagination, err := h.Bookings.List(status, page, limit)
	if err != nil {
		h.respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       rows,
		"pagination": pagination,
	})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// PUT /api/admin/bookings/:id
func (h *Handler) UpdateBookingStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "ID de réservation invalide")
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Statut invalide")
		return
	}

	if err := h.Bookings.UpdateStatus(id, req.Status); err != nil {
		if domain.IsValidation(err) {
			respondError(c, http.StatusBadRequest, "Statut invalide")
			return
		}
		h.respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Statut mis à jour avec succès",
	})
}

// GET /api/admin/stats
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.Bookings.Stats(c.Request.Context())
	if err != nil {
		h.respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stats,
	})
}

// GET /api/admin/bookings/:id/voucher
func (h *Handler) BookingVoucher(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "ID de réservation invalide")
		return
	}

	pdf, filename, err := h.Docs.Voucher(id)
	if err != nil {
		h.respondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// POST /api/admin/bookings/:id/resend-email
func (h *Handler) ResendBookingEmails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "ID de réservation invalide")
		return
	}

	if err := h.Bookings.Resend(id); err != nil {
		h.respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Emails renvoyés avec succès",
	})
}
