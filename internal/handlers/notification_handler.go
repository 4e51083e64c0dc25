package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbershop-bg/booking-api/internal/models"
)

type NotificationHandler struct {
	db *gorm.DB
}

func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{db: db}
}

func (h *NotificationHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)

	var total int64
	if err := h.db.Model(&models.Notification{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_notifications"})
		return
	}

	var unread int64
	if err := h.db.Model(&models.Notification{}).
		Where("unread = ?", true).
		Count(&unread).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_notifications"})
		return
	}

	var notifications []models.Notification
	if err := h.db.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&notifications).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":         notifications,
		"pagination":   paginationMeta(page, limit, total),
		"unread_count": unread,
	})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var n models.Notification
	if err := h.db.First(&n, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification_not_found"})
		return
	}

	n.Unread = false
	if err := h.db.Save(&n).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_notification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.db.Model(&models.Notification{}).
		Where("unread = ?", true).
		Update("unread", false).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
