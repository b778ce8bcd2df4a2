package handler

import (
	"net/http"

	"github.com/ELPELADASTER/control-stock/internal/apierror"
	"github.com/ELPELADASTER/control-stock/internal/dto"
	"github.com/ELPELADASTER/control-stock/internal/service"

	"github.com/gin-gonic/gin"
)

type MaquinasHandler struct{ svc service.MaquinaService }

func NewMaquinasHandler(svc service.MaquinaService) *MaquinasHandler {
	return &MaquinasHandler{svc: svc}
}

func (h *MaquinasHandler) Crear(c *gin.Context) {
	var req dto.CrearMaquinaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *MaquinasHandler) Listar(c *gin.Context) {
	var filter dto.MaquinaFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parámetros inválidos"))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MaquinasHandler) Edificios(c *gin.Context) {
	resp, err := h.svc.Edificios(c.Request.Context(), c.Query("empresa"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MaquinasHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarMaquinaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Actualizar(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Máquina actualizada correctamente"})
}

func (h *MaquinasHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Máquina eliminada correctamente"})
}
