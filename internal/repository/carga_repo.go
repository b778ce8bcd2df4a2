package repository

import (
	"context"

	"github.com/ELPELADASTER/control-stock/internal/dto"
	"github.com/ELPELADASTER/control-stock/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CargaRepository defines the data access contract for load records.
// Loads are create/delete only; both writes happen inside the caller's
// transaction together with the article stock update.
type CargaRepository interface {
	CreateTx(tx *gorm.DB, c *model.CargaMaquina) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CargaMaquina, error)
	DeleteTx(tx *gorm.DB, id uuid.UUID) error

	// List returns loads with machine and article preloaded, ordered by
	// fecha_carga ascending. Callers derive sessions and summaries from it.
	List(ctx context.Context, filter dto.CargaFilter) ([]model.CargaMaquina, error)

	CountByMaquinaID(ctx context.Context, maquinaID uuid.UUID) (int64, error)
	CountByArticuloID(ctx context.Context, articuloID uuid.UUID) (int64, error)

	DB() *gorm.DB
}

type cargaRepo struct{ db *gorm.DB }

func NewCargaRepository(db *gorm.DB) CargaRepository { return &cargaRepo{db: db} }

func (r *cargaRepo) CreateTx(tx *gorm.DB, c *model.CargaMaquina) error {
	return tx.Create(c).Error
}

func (r *cargaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.CargaMaquina, error) {
	var c model.CargaMaquina
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cargaRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.CargaMaquina{}, "id = ?", id).Error
}

func (r *cargaRepo) List(ctx context.Context, filter dto.CargaFilter) ([]model.CargaMaquina, error) {
	var cargas []model.CargaMaquina

	q := r.db.WithContext(ctx).Model(&model.CargaMaquina{}).
		Preload("Maquina").
		Preload("Articulo")

	if filter.MaquinaID != "" {
		q = q.Where("cargas_maquinas.maquina_id = ?", filter.MaquinaID)
	}
	if filter.ArticuloID != "" {
		q = q.Where("cargas_maquinas.articulo_id = ?", filter.ArticuloID)
	}
	if filter.Empresa != "" {
		q = q.Joins("JOIN maquinas ON maquinas.id = cargas_maquinas.maquina_id").
			Where("maquinas.empresa = ?", filter.Empresa)
	}
	// Dates are compared in UTC, the same zone the service uses to derive
	// session identity, so grouping and filtering never disagree on the day.
	if filter.FechaDesde != "" {
		q = q.Where("(cargas_maquinas.fecha_carga AT TIME ZONE 'UTC')::date >= ?::date", filter.FechaDesde)
	}
	if filter.FechaHasta != "" {
		q = q.Where("(cargas_maquinas.fecha_carga AT TIME ZONE 'UTC')::date <= ?::date", filter.FechaHasta)
	}
	if filter.FechaExacta != "" {
		q = q.Where("(cargas_maquinas.fecha_carga AT TIME ZONE 'UTC')::date = ?::date", filter.FechaExacta)
	}
	if filter.Usuario != "" {
		q = q.Where("cargas_maquinas.usuario = ?", filter.Usuario)
	}

	err := q.Order("cargas_maquinas.fecha_carga ASC").Find(&cargas).Error
	return cargas, err
}

func (r *cargaRepo) CountByMaquinaID(ctx context.Context, maquinaID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CargaMaquina{}).
		Where("maquina_id = ?", maquinaID).Count(&count).Error
	return count, err
}

func (r *cargaRepo) CountByArticuloID(ctx context.Context, articuloID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CargaMaquina{}).
		Where("articulo_id = ?", articuloID).Count(&count).Error
	return count, err
}

func (r *cargaRepo) DB() *gorm.DB { return r.db }
