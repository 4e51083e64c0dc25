package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbershop-bg/booking-api/internal/httpresp"
	"github.com/barbershop-bg/booking-api/internal/media"
	"github.com/barbershop-bg/booking-api/internal/models"
)

// The catalog is a fixed menu; admins configure duration and price per
// entry but cannot invent new service names.
var allowedServiceNames = []string{
	"Подстригване",
	"Бръснене",
	"Оформяне на брада",
	"Пакет: Подстригване + Бръснене",
}

func isAllowedServiceName(name string) bool {
	for _, n := range allowedServiceNames {
		if n == name {
			return true
		}
	}
	return false
}

type ServiceHandler struct {
	db      *gorm.DB
	storage *media.Storage
}

func NewServiceHandler(db *gorm.DB, storage *media.Storage) *ServiceHandler {
	return &ServiceHandler{db: db, storage: storage}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	DurationMin int     `json:"duration_min" binding:"required,min=1"`
	Price       float64 `json:"price" binding:"required,min=0"`
}

type UpdateServiceRequest struct {
	DurationMin *int     `json:"duration_min,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("id ASC").Find(&services).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_services"})
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !isAllowedServiceName(req.Name) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown_service_name"})
		return
	}

	var count int64
	h.db.Model(&models.Service{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "service_already_exists"})
		return
	}

	service := models.Service{
		Name:        req.Name,
		DurationMin: req.DurationMin,
		Price:       req.Price,
	}

	if err := h.db.Create(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_service"})
		return
	}

	httpresp.Created(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_service"})
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.DurationMin != nil && *req.DurationMin > 0 {
		service.DurationMin = *req.DurationMin
	}
	if req.Price != nil && *req.Price >= 0 {
		service.Price = *req.Price
	}

	if err := h.db.Save(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_service"})
		return
	}

	httpresp.OK(c, service)
}

// Delete removes a catalog entry. Existing bookings are untouched: they
// carry their own snapshot of the service data.
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	res := h.db.Delete(&models.Service{}, id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_service"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
		return
	}

	httpresp.OK(c, gin.H{"status": "deleted"})
}

func (h *ServiceHandler) UploadImage(c *gin.Context) {
	if !h.storage.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image_storage_disabled"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
		return
	}

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_image_file"})
		return
	}
	defer file.Close()

	processed, err := media.ProcessServiceImage(file)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	url, err := h.storage.UploadServiceImage(c.Request.Context(), service.ID, processed)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_upload_image"})
		return
	}

	service.ImageURL = url
	if err := h.db.Save(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_service"})
		return
	}

	httpresp.OK(c, service)
}
