package handler

import (
	"net/http"

	"github.com/ELPELADASTER/control-stock/internal/dto"
	"github.com/ELPELADASTER/control-stock/internal/service"

	"github.com/gin-gonic/gin"
)

type ArticulosHandler struct{ svc service.ArticuloService }

func NewArticulosHandler(svc service.ArticuloService) *ArticulosHandler {
	return &ArticulosHandler{svc: svc}
}

func (h *ArticulosHandler) Crear(c *gin.Context) {
	var req dto.CrearArticuloRequest
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

func (h *ArticulosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), c.Query("empresa"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ArticulosHandler) Utilizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UtilizarRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Utilizar(c.Request.Context(), id, req.CantidadUtilizada); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "mensaje": "Artículo utilizado correctamente"})
}

func (h *ArticulosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarArticuloRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Actualizar(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "mensaje": "Artículo actualizado correctamente"})
}

func (h *ArticulosHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "mensaje": "Artículo eliminado correctamente"})
}
