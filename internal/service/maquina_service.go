package service

import (
	"context"
	"errors"

	"github.com/ELPELADASTER/control-stock/internal/dto"
	"github.com/ELPELADASTER/control-stock/internal/model"
	"github.com/ELPELADASTER/control-stock/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaquinaService is plain CRUD over the machine registry. The only business
// rule is the delete guard: a machine with load history cannot be removed.
type MaquinaService interface {
	Crear(ctx context.Context, req dto.CrearMaquinaRequest) (*dto.MaquinaResponse, error)
	Listar(ctx context.Context, filter dto.MaquinaFilter) ([]dto.MaquinaResponse, error)
	Edificios(ctx context.Context, empresa string) ([]string, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMaquinaRequest) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type maquinaService struct {
	repo      repository.MaquinaRepository
	cargaRepo repository.CargaRepository
}

func NewMaquinaService(repo repository.MaquinaRepository, cargaRepo repository.CargaRepository) MaquinaService {
	return &maquinaService{repo: repo, cargaRepo: cargaRepo}
}

func (s *maquinaService) Crear(ctx context.Context, req dto.CrearMaquinaRequest) (*dto.MaquinaResponse, error) {
	if req.Nombre == "" || req.Edificio == "" {
		return nil, newValidacion("Nombre y edificio son requeridos")
	}
	m := &model.Maquina{
		Nombre:    req.Nombre,
		Edificio:  req.Edificio,
		Ubicacion: req.Ubicacion,
		Empresa:   model.NormalizeEmpresa(req.Empresa),
		Estado:    "activa",
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return maquinaToResponse(m), nil
}

func (s *maquinaService) Listar(ctx context.Context, filter dto.MaquinaFilter) ([]dto.MaquinaResponse, error) {
	var empresa *model.Empresa
	if e, ok := model.ParseEmpresa(filter.Empresa); ok {
		empresa = &e
	}
	maquinas, err := s.repo.List(ctx, empresa, filter.Edificio)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MaquinaResponse, 0, len(maquinas))
	for i := range maquinas {
		resp = append(resp, *maquinaToResponse(&maquinas[i]))
	}
	return resp, nil
}

func (s *maquinaService) Edificios(ctx context.Context, empresa string) ([]string, error) {
	var filtro *model.Empresa
	if e, ok := model.ParseEmpresa(empresa); ok {
		filtro = &e
	}
	return s.repo.Edificios(ctx, filtro)
}

func (s *maquinaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMaquinaRequest) error {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMaquinaNoEncontrada
		}
		return err
	}

	if req.Nombre != nil && *req.Nombre != "" {
		m.Nombre = *req.Nombre
	}
	if req.Edificio != nil && *req.Edificio != "" {
		m.Edificio = *req.Edificio
	}
	if req.Ubicacion != nil {
		m.Ubicacion = *req.Ubicacion
	}
	if req.Empresa != nil {
		if e, ok := model.ParseEmpresa(*req.Empresa); ok {
			m.Empresa = e
		}
	}
	if req.Estado != nil && *req.Estado != "" {
		m.Estado = *req.Estado
	}

	return s.repo.Update(ctx, m)
}

func (s *maquinaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	count, err := s.cargaRepo.CountByMaquinaID(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return newValidacion("No se puede eliminar la máquina porque tiene cargas registradas")
	}
	return s.repo.Delete(ctx, id)
}

func maquinaToResponse(m *model.Maquina) *dto.MaquinaResponse {
	return &dto.MaquinaResponse{
		ID:        m.ID.String(),
		Nombre:    m.Nombre,
		Edificio:  m.Edificio,
		Ubicacion: m.Ubicacion,
		Empresa:   string(m.Empresa),
		Estado:    m.Estado,
		CreatedAt: formatearFecha(m.CreatedAt),
		UpdatedAt: formatearFecha(m.UpdatedAt),
	}
}
