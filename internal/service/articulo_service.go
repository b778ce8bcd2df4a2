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

// ArticuloService is the inventory ledger: every mutation of cantidad /
// utilizados goes through here and maintains disponibles = cantidad - utilizados.
type ArticuloService interface {
	Crear(ctx context.Context, req dto.CrearArticuloRequest) (*dto.ArticuloResponse, error)
	Listar(ctx context.Context, empresa string) ([]dto.ArticuloResponse, error)
	Utilizar(ctx context.Context, id uuid.UUID, cantidadUtilizada int) error
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarArticuloRequest) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type articuloService struct {
	repo      repository.ArticuloRepository
	cargaRepo repository.CargaRepository
}

func NewArticuloService(repo repository.ArticuloRepository, cargaRepo repository.CargaRepository) ArticuloService {
	return &articuloService{repo: repo, cargaRepo: cargaRepo}
}

func (s *articuloService) Crear(ctx context.Context, req dto.CrearArticuloRequest) (*dto.ArticuloResponse, error) {
	if req.Nombre == "" || req.Cantidad == nil || *req.Cantidad <= 0 {
		return nil, newValidacion("Nombre y cantidad (mayor a 0) son requeridos y cantidad debe ser un número válido.")
	}

	a := &model.Articulo{
		Nombre:      req.Nombre,
		Simbolo:     req.Simbolo,
		Cantidad:    *req.Cantidad,
		Utilizados:  0,
		Disponibles: *req.Cantidad,
		Imagen:      req.Imagen,
		Empresa:     model.NormalizeEmpresa(req.Empresa),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return articuloToResponse(a), nil
}

func (s *articuloService) Listar(ctx context.Context, empresa string) ([]dto.ArticuloResponse, error) {
	var filtro *model.Empresa
	if e, ok := model.ParseEmpresa(empresa); ok {
		filtro = &e
	}
	articulos, err := s.repo.List(ctx, filtro)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ArticuloResponse, 0, len(articulos))
	for i := range articulos {
		resp = append(resp, *articuloToResponse(&articulos[i]))
	}
	return resp, nil
}

// Utilizar consumes stock directly from an article. Runs inside one
// transaction with a row lock so two concurrent consumers cannot both read
// the same disponibles and overdraw.
func (s *articuloService) Utilizar(ctx context.Context, id uuid.UUID, cantidadUtilizada int) error {
	if cantidadUtilizada <= 0 {
		return newValidacion("Cantidad utilizada inválida")
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		a, err := s.repo.FindByIDForUpdateTx(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrArticuloNoEncontrado
			}
			return err
		}
		if a.Disponibles < cantidadUtilizada {
			return &StockInsuficienteError{Disponible: a.Disponibles, Solicitado: cantidadUtilizada}
		}
		nuevosUtilizados := a.Utilizados + cantidadUtilizada
		return s.repo.UpdateStockTx(tx, id, nuevosUtilizados, a.Cantidad-nuevosUtilizados)
	})
}

// Actualizar patches an article. Each field falls back to its stored value
// independently; disponibles is recomputed from the resulting pair, which may
// go negative when the caller supplies utilizados > cantidad.
func (s *articuloService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarArticuloRequest) error {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrArticuloNoEncontrado
		}
		return err
	}

	if req.Nombre != nil && *req.Nombre != "" {
		a.Nombre = *req.Nombre
	}
	if req.Cantidad != nil {
		a.Cantidad = *req.Cantidad
	}
	if req.Utilizados != nil {
		a.Utilizados = *req.Utilizados
	}
	a.Disponibles = a.Cantidad - a.Utilizados
	if req.Simbolo != nil {
		a.Simbolo = *req.Simbolo
	}
	if req.Imagen != nil {
		a.Imagen = req.Imagen
	}
	if req.Empresa != nil {
		if e, ok := model.ParseEmpresa(*req.Empresa); ok {
			a.Empresa = e
		}
	}

	return s.repo.Update(ctx, a)
}

// Eliminar removes an article. Deletion is rejected while load records still
// reference it, mirroring the machine-delete guard.
func (s *articuloService) Eliminar(ctx context.Context, id uuid.UUID) error {
	count, err := s.cargaRepo.CountByArticuloID(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return newValidacion("No se puede eliminar el artículo porque tiene cargas registradas")
	}
	return s.repo.Delete(ctx, id)
}

func articuloToResponse(a *model.Articulo) *dto.ArticuloResponse {
	return &dto.ArticuloResponse{
		ID:          a.ID.String(),
		Nombre:      a.Nombre,
		Simbolo:     a.Simbolo,
		Cantidad:    a.Cantidad,
		Utilizados:  a.Utilizados,
		Disponibles: a.Disponibles,
		Imagen:      a.Imagen,
		Empresa:     string(a.Empresa),
		CreatedAt:   formatearFecha(a.CreatedAt),
		UpdatedAt:   formatearFecha(a.UpdatedAt),
	}
}
