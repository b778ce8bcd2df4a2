package handler

import (
	"errors"
	"net/http"

	"github.com/ELPELADASTER/control-stock/internal/apierror"
	"github.com/ELPELADASTER/control-stock/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError maps the service error taxonomy to HTTP status codes:
// validation / stock errors → 400, not-found sentinels → 404, rest → 500.
func respondError(c *gin.Context, err error) {
	var ve *service.ValidacionError
	var se *service.StockInsuficienteError
	switch {
	case errors.As(err, &ve), errors.As(err, &se):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	case service.EsNotFound(err):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
	}
}

// parseID reads a uuid path param. Writes the 400 itself on failure.
func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return uuid.Nil, false
	}
	return id, true
}
