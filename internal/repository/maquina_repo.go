package repository

import (
	"context"

	"github.com/ELPELADASTER/control-stock/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaquinaRepository defines the data access contract for vending machines.
type MaquinaRepository interface {
	Create(ctx context.Context, m *model.Maquina) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Maquina, error)
	List(ctx context.Context, empresa *model.Empresa, edificio string) ([]model.Maquina, error)
	Edificios(ctx context.Context, empresa *model.Empresa) ([]string, error)
	Update(ctx context.Context, m *model.Maquina) error
	Delete(ctx context.Context, id uuid.UUID) error
	DB() *gorm.DB
}

type maquinaRepo struct{ db *gorm.DB }

func NewMaquinaRepository(db *gorm.DB) MaquinaRepository { return &maquinaRepo{db: db} }

func (r *maquinaRepo) Create(ctx context.Context, m *model.Maquina) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *maquinaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Maquina, error) {
	var m model.Maquina
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *maquinaRepo) List(ctx context.Context, empresa *model.Empresa, edificio string) ([]model.Maquina, error) {
	var maquinas []model.Maquina
	q := r.db.WithContext(ctx)
	if empresa != nil {
		q = q.Where("empresa = ?", *empresa)
	}
	if edificio != "" {
		q = q.Where("edificio = ?", edificio)
	}
	err := q.Order("edificio ASC, nombre ASC").Find(&maquinas).Error
	return maquinas, err
}

func (r *maquinaRepo) Edificios(ctx context.Context, empresa *model.Empresa) ([]string, error) {
	var edificios []string
	q := r.db.WithContext(ctx).Model(&model.Maquina{}).Distinct("edificio")
	if empresa != nil {
		q = q.Where("empresa = ?", *empresa)
	}
	err := q.Order("edificio ASC").Pluck("edificio", &edificios).Error
	return edificios, err
}

func (r *maquinaRepo) Update(ctx context.Context, m *model.Maquina) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *maquinaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Maquina{}, "id = ?", id).Error
}

func (r *maquinaRepo) DB() *gorm.DB { return r.db }
