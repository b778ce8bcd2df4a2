package handler

import (
	"net/http"

	"github.com/ELPELADASTER/control-stock/internal/apierror"
	"github.com/ELPELADASTER/control-stock/internal/dto"
	"github.com/ELPELADASTER/control-stock/internal/service"

	"github.com/gin-gonic/gin"
)

type EstadisticasHandler struct{ svc service.EstadisticasService }

func NewEstadisticasHandler(svc service.EstadisticasService) *EstadisticasHandler {
	return &EstadisticasHandler{svc: svc}
}

func (h *EstadisticasHandler) Generales(c *gin.Context) {
	resp, err := h.svc.Generales(c.Request.Context(), c.Query("empresa"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EstadisticasHandler) Graficos(c *gin.Context) {
	var filter dto.ConteoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parámetros inválidos"))
		return
	}
	resp, err := h.svc.Graficos(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EstadisticasHandler) PorMaquina(c *gin.Context) {
	var filter dto.ConteoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parámetros inválidos"))
		return
	}
	resp, err := h.svc.PorMaquina(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
