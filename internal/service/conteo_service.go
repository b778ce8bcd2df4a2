package service

import (
	"context"
	"errors"
	"time"

	"github.com/ELPELADASTER/control-stock/internal/dto"
	"github.com/ELPELADASTER/control-stock/internal/model"
	"github.com/ELPELADASTER/control-stock/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ConteoService is CRUD over cup-count readings. Every write invalidates the
// dashboard statistics cache since the dashboard is derived from conteos.
type ConteoService interface {
	Crear(ctx context.Context, req dto.CrearConteoRequest) (*dto.ConteoResponse, error)
	Ultimos(ctx context.Context, empresa string, limit int) ([]dto.ConteoResponse, error)
	PorMaquina(ctx context.Context, maquinaID uuid.UUID, filter dto.ConteoFilter) ([]dto.ConteoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarConteoRequest) (*dto.ConteoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type conteoService struct {
	repo repository.ConteoRepository
	rdb  *redis.Client
}

func NewConteoService(repo repository.ConteoRepository, rdb *redis.Client) ConteoService {
	return &conteoService{repo: repo, rdb: rdb}
}

func (s *conteoService) Crear(ctx context.Context, req dto.CrearConteoRequest) (*dto.ConteoResponse, error) {
	if req.MaquinaID == "" {
		return nil, newValidacion("maquina_id y cantidad_vasos son requeridos")
	}
	if req.CantidadVasos <= 0 {
		return nil, newValidacion("La cantidad de vasos debe ser mayor a 0")
	}
	maquinaID, err := uuid.Parse(req.MaquinaID)
	if err != nil {
		return nil, newValidacion("maquina_id y cantidad_vasos son requeridos")
	}

	c := &model.ConteoVasos{
		MaquinaID:     maquinaID,
		CantidadVasos: req.CantidadVasos,
		FechaConteo:   time.Now(),
		Observaciones: req.Observaciones,
		Empresa:       model.NormalizeEmpresa(req.Empresa),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.invalidarEstadisticas(ctx)
	return conteoToResponse(c), nil
}

func (s *conteoService) Ultimos(ctx context.Context, empresa string, limit int) ([]dto.ConteoResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	conteos, err := s.repo.Ultimos(ctx, model.NormalizeEmpresa(empresa), limit)
	if err != nil {
		return nil, err
	}
	return conteosToResponse(conteos), nil
}

func (s *conteoService) PorMaquina(ctx context.Context, maquinaID uuid.UUID, filter dto.ConteoFilter) ([]dto.ConteoResponse, error) {
	conteos, err := s.repo.PorMaquina(ctx, maquinaID, model.NormalizeEmpresa(filter.Empresa), filter.FechaDesde, filter.FechaHasta)
	if err != nil {
		return nil, err
	}
	return conteosToResponse(conteos), nil
}

func (s *conteoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarConteoRequest) (*dto.ConteoResponse, error) {
	if req.CantidadVasos <= 0 {
		return nil, newValidacion("La cantidad de vasos debe ser mayor a 0")
	}
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConteoNoEncontrado
		}
		return nil, err
	}
	c.CantidadVasos = req.CantidadVasos
	c.Observaciones = req.Observaciones
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	s.invalidarEstadisticas(ctx)
	return conteoToResponse(c), nil
}

func (s *conteoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrConteoNoEncontrado
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidarEstadisticas(ctx)
	return nil
}

// invalidarEstadisticas drops the cached dashboard for both empresas.
// Best effort: a failed invalidation only delays freshness by one TTL.
func (s *conteoService) invalidarEstadisticas(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	keys := []string{
		claveEstadisticas(model.EmpresaTelecom),
		claveEstadisticas(model.EmpresaPagoOnline),
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Warn().Err(err).Msg("no se pudo invalidar el cache de estadísticas")
	}
}

func conteoToResponse(c *model.ConteoVasos) *dto.ConteoResponse {
	resp := &dto.ConteoResponse{
		ID:            c.ID.String(),
		MaquinaID:     c.MaquinaID.String(),
		CantidadVasos: c.CantidadVasos,
		FechaConteo:   formatearFecha(c.FechaConteo),
		Observaciones: c.Observaciones,
		Empresa:       string(c.Empresa),
	}
	if c.Maquina != nil {
		resp.MaquinaNombre = c.Maquina.Nombre
		resp.Edificio = c.Maquina.Edificio
		resp.Ubicacion = c.Maquina.Ubicacion
	}
	return resp
}

func conteosToResponse(conteos []model.ConteoVasos) []dto.ConteoResponse {
	resp := make([]dto.ConteoResponse, 0, len(conteos))
	for i := range conteos {
		resp = append(resp, *conteoToResponse(&conteos[i]))
	}
	return resp
}
