package handler

import (
	"net/http"

	"github.com/ELPELADASTER/control-stock/internal/apierror"
	"github.com/ELPELADASTER/control-stock/internal/dto"
	"github.com/ELPELADASTER/control-stock/internal/service"

	"github.com/gin-gonic/gin"
)

type CargasHandler struct{ svc service.CargaService }

func NewCargasHandler(svc service.CargaService) *CargasHandler {
	return &CargasHandler{svc: svc}
}

func (h *CargasHandler) Crear(c *gin.Context) {
	var req dto.CrearCargaRequest
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

func (h *CargasHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	mensaje, err := h.svc.Eliminar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "mensaje": mensaje})
}

// ListarAgrupadas returns derived loading sessions, newest first.
func (h *CargasHandler) ListarAgrupadas(c *gin.Context) {
	var filter dto.CargaFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parámetros inválidos"))
		return
	}
	resp, err := h.svc.ListarAgrupadas(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerDetalles expands one session back into its individual loads.
// usuario arrives as a query param since it may contain spaces.
func (h *CargasHandler) ObtenerDetalles(c *gin.Context) {
	maquinaID, ok := parseID(c, "maquina_id")
	if !ok {
		return
	}
	fecha := c.Param("fecha")
	resp, err := h.svc.ObtenerDetalles(c.Request.Context(), maquinaID, fecha, c.Query("usuario"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CargasHandler) Listar(c *gin.Context) {
	var filter dto.CargaFilter
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

func (h *CargasHandler) Resumen(c *gin.Context) {
	resp, err := h.svc.Resumen(c.Request.Context(), c.Query("empresa"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
