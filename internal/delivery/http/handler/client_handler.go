package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tracker-rental/internal/client/model"
	"tracker-rental/internal/client/service"
	"tracker-rental/pkg/utils"
)

type ClientHandler struct {
	service *service.ClientService
}

func NewClientHandler(service *service.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

func (h *ClientHandler) RegisterRoutes(router *gin.RouterGroup) {
	clientes := router.Group("/clientes")
	{
		clientes.POST("", h.Create)
		clientes.GET("", h.FindAll)
		clientes.GET("/:id_cliente", h.FindOne)
		clientes.PUT("/:id_cliente", h.Update)
		clientes.DELETE("/:id_cliente", h.Delete)
	}
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req model.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	cliente, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Cliente criado com sucesso", cliente)
}

func (h *ClientHandler) FindAll(c *gin.Context) {
	clientes, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, clientes)
}

func (h *ClientHandler) FindOne(c *gin.Context) {
	cliente, err := h.service.FindOne(c.Request.Context(), c.Param("id_cliente"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.DataResponse(c, http.StatusOK, cliente)
}

func (h *ClientHandler) Update(c *gin.Context) {
	var req model.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	cliente, err := h.service.Update(c.Request.Context(), c.Param("id_cliente"), &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Cliente atualizado com sucesso", cliente)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id_cliente")); err != nil {
		utils.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
