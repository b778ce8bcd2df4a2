package handler

import (
	"net/http"

	"github.com/ELPELADASTER/control-stock/internal/apierror"
	"github.com/ELPELADASTER/control-stock/internal/dto"
	"github.com/ELPELADASTER/control-stock/internal/service"

	"github.com/gin-gonic/gin"
)

type ConteosHandler struct{ svc service.ConteoService }

func NewConteosHandler(svc service.ConteoService) *ConteosHandler {
	return &ConteosHandler{svc: svc}
}

func (h *ConteosHandler) Crear(c *gin.Context) {
	var req dto.CrearConteoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"mensaje": "Conteo creado exitosamente", "conteo": resp})
}

func (h *ConteosHandler) Ultimos(c *gin.Context) {
	var filter dto.ConteoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parámetros inválidos"))
		return
	}
	resp, err := h.svc.Ultimos(c.Request.Context(), filter.Empresa, filter.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ConteosHandler) PorMaquina(c *gin.Context) {
	maquinaID, ok := parseID(c, "maquina_id")
	if !ok {
		return
	}
	var filter dto.ConteoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parámetros inválidos"))
		return
	}
	resp, err := h.svc.PorMaquina(c.Request.Context(), maquinaID, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ConteosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarConteoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Conteo actualizado exitosamente", "conteo": resp})
}

func (h *ConteosHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Conteo eliminado exitosamente"})
}
