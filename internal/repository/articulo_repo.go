package repository

import (
	"context"

	"github.com/ELPELADASTER/control-stock/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ArticuloRepository defines the data access contract for inventory articles.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ArticuloRepository interface {
	Create(ctx context.Context, a *model.Articulo) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Articulo, error)
	List(ctx context.Context, empresa *model.Empresa) ([]model.Articulo, error)
	Update(ctx context.Context, a *model.Articulo) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Used inside transactions — callers must pass the tx instance.
	// FindByIDForUpdateTx takes a row lock so concurrent stock mutations
	// against the same article serialize instead of losing updates.
	FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Articulo, error)
	UpdateStockTx(tx *gorm.DB, id uuid.UUID, utilizados, disponibles int) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type articuloRepo struct{ db *gorm.DB }

func NewArticuloRepository(db *gorm.DB) ArticuloRepository { return &articuloRepo{db: db} }

func (r *articuloRepo) Create(ctx context.Context, a *model.Articulo) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *articuloRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Articulo, error) {
	var a model.Articulo
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *articuloRepo) List(ctx context.Context, empresa *model.Empresa) ([]model.Articulo, error) {
	var articulos []model.Articulo
	q := r.db.WithContext(ctx)
	if empresa != nil {
		q = q.Where("empresa = ?", *empresa)
	}
	err := q.Order("nombre ASC").Find(&articulos).Error
	return articulos, err
}

func (r *articuloRepo) Update(ctx context.Context, a *model.Articulo) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *articuloRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Articulo{}, "id = ?", id).Error
}

func (r *articuloRepo) FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Articulo, error) {
	var a model.Articulo
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *articuloRepo) UpdateStockTx(tx *gorm.DB, id uuid.UUID, utilizados, disponibles int) error {
	return tx.Model(&model.Articulo{}).Where("id = ?", id).Updates(map[string]interface{}{
		"utilizados":  utilizados,
		"disponibles": disponibles,
	}).Error
}

func (r *articuloRepo) DB() *gorm.DB { return r.db }
