package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tracker-rental/internal/rental/model"
	"tracker-rental/internal/rental/service"
	"tracker-rental/pkg/utils"
)

type RentalHandler struct {
	service *service.RentalService
}

func NewRentalHandler(service *service.RentalService) *RentalHandler {
	return &RentalHandler{service: service}
}

func (h *RentalHandler) RegisterRoutes(router *gin.RouterGroup) {
	locacoes := router.Group("/locacoes")
	{
		locacoes.POST("", h.Start)
		locacoes.GET("", h.FindAll)
		locacoes.PATCH("/:id_locacao/finalizar", h.Finalize)
	}
}

func (h *RentalHandler) Start(c *gin.Context) {
	var req model.StartRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	locacao, err := h.service.Start(c.Request.Context(), &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Locação iniciada com sucesso", locacao)
}

func (h *RentalHandler) Finalize(c *gin.Context) {
	locacao, err := h.service.Finalize(c.Request.Context(), c.Param("id_locacao"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Locação finalizada com sucesso", locacao)
}

func (h *RentalHandler) FindAll(c *gin.Context) {
	locacoes, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, locacoes)
}
