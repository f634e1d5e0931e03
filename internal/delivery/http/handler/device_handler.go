package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tracker-rental/internal/device/model"
	"tracker-rental/internal/device/service"
	"tracker-rental/pkg/utils"
)

type DeviceHandler struct {
	service *service.DeviceService
}

func NewDeviceHandler(service *service.DeviceService) *DeviceHandler {
	return &DeviceHandler{service: service}
}

func (h *DeviceHandler) RegisterRoutes(router *gin.RouterGroup) {
	dispositivos := router.Group("/dispositivos")
	{
		dispositivos.POST("", h.Create)
		dispositivos.GET("", h.FindAll)
		dispositivos.GET("/:id_dispositivo", h.FindOne)
		dispositivos.PUT("/:id_dispositivo", h.Update)
		dispositivos.DELETE("/:id_dispositivo", h.Delete)
	}
}

func (h *DeviceHandler) Create(c *gin.Context) {
	var req model.DeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	dispositivo, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Dispositivo criado com sucesso", dispositivo)
}

func (h *DeviceHandler) FindAll(c *gin.Context) {
	dispositivos, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dispositivos)
}

func (h *DeviceHandler) FindOne(c *gin.Context) {
	dispositivo, err := h.service.FindOne(c.Request.Context(), c.Param("id_dispositivo"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.DataResponse(c, http.StatusOK, dispositivo)
}

func (h *DeviceHandler) Update(c *gin.Context) {
	var req model.DeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	dispositivo, err := h.service.Update(c.Request.Context(), c.Param("id_dispositivo"), &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Dispositivo atualizado com sucesso", dispositivo)
}

func (h *DeviceHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id_dispositivo")); err != nil {
		utils.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
