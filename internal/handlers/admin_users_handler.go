package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbershop-bg/booking-api/internal/httpresp"
	"github.com/barbershop-bg/booking-api/internal/middleware"
	"github.com/barbershop-bg/booking-api/internal/models"
)

type AdminUsersHandler struct {
	db *gorm.DB
}

func NewAdminUsersHandler(db *gorm.DB) *AdminUsersHandler {
	return &AdminUsersHandler{db: db}
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

func (h *AdminUsersHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)

	q := h.db.Model(&models.User{})

	if role := c.Query("role"); role == middleware.RoleUser || role == middleware.RoleAdmin {
		q = q.Where("role = ?", role)
	}

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_users"})
		return
	}

	var users []models.User
	if err := q.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_users"})
		return
	}

	httpresp.Page(c, users, paginationMeta(page, limit, total))
}

func (h *AdminUsersHandler) UpdateRole(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		(req.Role != middleware.RoleUser && req.Role != middleware.RoleAdmin) {

		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_role"})
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user_not_found"})
		return
	}

	user.Role = req.Role
	if err := h.db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_role"})
		return
	}

	httpresp.OK(c, user)
}
