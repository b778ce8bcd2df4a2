package service_test

import (
	"context"
	"sort"
	"time"

	"github.com/ELPELADASTER/control-stock/internal/dto"
	"github.com/ELPELADASTER/control-stock/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── In-memory ArticuloRepository stub ────────────────────────────────────────

type stubArticuloRepo struct {
	articulos map[uuid.UUID]*model.Articulo
}

func newStubArticuloRepo() *stubArticuloRepo {
	return &stubArticuloRepo{articulos: make(map[uuid.UUID]*model.Articulo)}
}

func (r *stubArticuloRepo) Create(_ context.Context, a *model.Articulo) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	clone := *a
	r.articulos[a.ID] = &clone
	return nil
}

func (r *stubArticuloRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Articulo, error) {
	a, ok := r.articulos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubArticuloRepo) List(_ context.Context, empresa *model.Empresa) ([]model.Articulo, error) {
	var result []model.Articulo
	for _, a := range r.articulos {
		if empresa != nil && a.Empresa != *empresa {
			continue
		}
		result = append(result, *a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Nombre < result[j].Nombre })
	return result, nil
}

func (r *stubArticuloRepo) Update(_ context.Context, a *model.Articulo) error {
	if _, ok := r.articulos[a.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *a
	r.articulos[a.ID] = &clone
	return nil
}

func (r *stubArticuloRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.articulos, id)
	return nil
}

func (r *stubArticuloRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.Articulo, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubArticuloRepo) UpdateStockTx(_ *gorm.DB, id uuid.UUID, utilizados, disponibles int) error {
	a, ok := r.articulos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.Utilizados = utilizados
	a.Disponibles = disponibles
	return nil
}

func (r *stubArticuloRepo) DB() *gorm.DB { return nil }

// ── In-memory MaquinaRepository stub ─────────────────────────────────────────

type stubMaquinaRepo struct {
	maquinas map[uuid.UUID]*model.Maquina
}

func newStubMaquinaRepo() *stubMaquinaRepo {
	return &stubMaquinaRepo{maquinas: make(map[uuid.UUID]*model.Maquina)}
}

func (r *stubMaquinaRepo) Create(_ context.Context, m *model.Maquina) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	clone := *m
	r.maquinas[m.ID] = &clone
	return nil
}

func (r *stubMaquinaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Maquina, error) {
	m, ok := r.maquinas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *stubMaquinaRepo) List(_ context.Context, empresa *model.Empresa, edificio string) ([]model.Maquina, error) {
	var result []model.Maquina
	for _, m := range r.maquinas {
		if empresa != nil && m.Empresa != *empresa {
			continue
		}
		if edificio != "" && m.Edificio != edificio {
			continue
		}
		result = append(result, *m)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Edificio != result[j].Edificio {
			return result[i].Edificio < result[j].Edificio
		}
		return result[i].Nombre < result[j].Nombre
	})
	return result, nil
}

func (r *stubMaquinaRepo) Edificios(_ context.Context, empresa *model.Empresa) ([]string, error) {
	seen := make(map[string]bool)
	var edificios []string
	for _, m := range r.maquinas {
		if empresa != nil && m.Empresa != *empresa {
			continue
		}
		if !seen[m.Edificio] {
			seen[m.Edificio] = true
			edificios = append(edificios, m.Edificio)
		}
	}
	sort.Strings(edificios)
	return edificios, nil
}

func (r *stubMaquinaRepo) Update(_ context.Context, m *model.Maquina) error {
	if _, ok := r.maquinas[m.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *m
	r.maquinas[m.ID] = &clone
	return nil
}

func (r *stubMaquinaRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.maquinas, id)
	return nil
}

func (r *stubMaquinaRepo) DB() *gorm.DB { return nil }

// ── In-memory CargaRepository stub ───────────────────────────────────────────

// stubCargaRepo keeps loads in insertion order and resolves the Maquina /
// Articulo associations against the sibling stubs when present.
type stubCargaRepo struct {
	cargas   []*model.CargaMaquina
	maquinas *stubMaquinaRepo
	arts     *stubArticuloRepo
}

func newStubCargaRepo(maquinas *stubMaquinaRepo, arts *stubArticuloRepo) *stubCargaRepo {
	return &stubCargaRepo{maquinas: maquinas, arts: arts}
}

func (r *stubCargaRepo) CreateTx(_ *gorm.DB, c *model.CargaMaquina) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	clone := *c
	r.cargas = append(r.cargas, &clone)
	return nil
}

func (r *stubCargaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.CargaMaquina, error) {
	for _, c := range r.cargas {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCargaRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	for i, c := range r.cargas {
		if c.ID == id {
			r.cargas = append(r.cargas[:i], r.cargas[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubCargaRepo) List(_ context.Context, filter dto.CargaFilter) ([]model.CargaMaquina, error) {
	var result []model.CargaMaquina
	for _, c := range r.cargas {
		clone := *c
		if r.maquinas != nil {
			if m, ok := r.maquinas.maquinas[c.MaquinaID]; ok {
				mClone := *m
				clone.Maquina = &mClone
			}
		}
		if r.arts != nil {
			if a, ok := r.arts.articulos[c.ArticuloID]; ok {
				aClone := *a
				clone.Articulo = &aClone
			}
		}

		if filter.MaquinaID != "" && clone.MaquinaID.String() != filter.MaquinaID {
			continue
		}
		if filter.ArticuloID != "" && clone.ArticuloID.String() != filter.ArticuloID {
			continue
		}
		if filter.Empresa != "" {
			if clone.Maquina == nil || string(clone.Maquina.Empresa) != filter.Empresa {
				continue
			}
		}
		fecha := clone.FechaCarga.UTC().Format("2006-01-02")
		if filter.FechaDesde != "" && fecha < filter.FechaDesde {
			continue
		}
		if filter.FechaHasta != "" && fecha > filter.FechaHasta {
			continue
		}
		if filter.FechaExacta != "" && fecha != filter.FechaExacta {
			continue
		}
		if filter.Usuario != "" && clone.Usuario != filter.Usuario {
			continue
		}
		result = append(result, clone)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].FechaCarga.Before(result[j].FechaCarga)
	})
	return result, nil
}

func (r *stubCargaRepo) CountByMaquinaID(_ context.Context, maquinaID uuid.UUID) (int64, error) {
	var count int64
	for _, c := range r.cargas {
		if c.MaquinaID == maquinaID {
			count++
		}
	}
	return count, nil
}

func (r *stubCargaRepo) CountByArticuloID(_ context.Context, articuloID uuid.UUID) (int64, error) {
	var count int64
	for _, c := range r.cargas {
		if c.ArticuloID == articuloID {
			count++
		}
	}
	return count, nil
}

func (r *stubCargaRepo) DB() *gorm.DB { return nil }

// ── In-memory ConteoRepository stub ──────────────────────────────────────────

type stubConteoRepo struct {
	conteos  []*model.ConteoVasos
	maquinas *stubMaquinaRepo

	maquinaMasUsada string
	promedioDiario  float64
	porMaquina      []dto.EstadisticaMaquina
	graficos        *dto.DatosGraficos
}

func newStubConteoRepo(maquinas *stubMaquinaRepo) *stubConteoRepo {
	return &stubConteoRepo{maquinas: maquinas}
}

func (r *stubConteoRepo) Create(_ context.Context, c *model.ConteoVasos) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	clone := *c
	r.conteos = append(r.conteos, &clone)
	return nil
}

func (r *stubConteoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.ConteoVasos, error) {
	for _, c := range r.conteos {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubConteoRepo) Update(_ context.Context, c *model.ConteoVasos) error {
	for i, existing := range r.conteos {
		if existing.ID == c.ID {
			clone := *c
			r.conteos[i] = &clone
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubConteoRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, c := range r.conteos {
		if c.ID == id {
			r.conteos = append(r.conteos[:i], r.conteos[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubConteoRepo) Ultimos(_ context.Context, empresa model.Empresa, limit int) ([]model.ConteoVasos, error) {
	var result []model.ConteoVasos
	for _, c := range r.conteos {
		if c.Empresa != empresa {
			continue
		}
		result = append(result, *c)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].FechaConteo.After(result[j].FechaConteo)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *stubConteoRepo) PorMaquina(_ context.Context, maquinaID uuid.UUID, empresa model.Empresa, desde, hasta string) ([]model.ConteoVasos, error) {
	var result []model.ConteoVasos
	for _, c := range r.conteos {
		if c.MaquinaID != maquinaID || c.Empresa != empresa {
			continue
		}
		fecha := c.FechaConteo.Format("2006-01-02")
		if desde != "" && fecha < desde {
			continue
		}
		if hasta != "" && fecha > hasta {
			continue
		}
		result = append(result, *c)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].FechaConteo.After(result[j].FechaConteo)
	})
	return result, nil
}

func (r *stubConteoRepo) SumVasos(_ context.Context, empresa model.Empresa, desde, hasta time.Time) (int64, error) {
	var total int64
	for _, c := range r.conteos {
		if c.Empresa != empresa || c.FechaConteo.Before(desde) {
			continue
		}
		if !hasta.IsZero() && !c.FechaConteo.Before(hasta) {
			continue
		}
		total += int64(c.CantidadVasos)
	}
	return total, nil
}

func (r *stubConteoRepo) MaquinaMasUsada(_ context.Context, _ model.Empresa) (string, error) {
	return r.maquinaMasUsada, nil
}

func (r *stubConteoRepo) PromedioDiario(_ context.Context, _ model.Empresa, _ time.Time) (float64, error) {
	return r.promedioDiario, nil
}

func (r *stubConteoRepo) EstadisticasPorMaquina(_ context.Context, _ model.Empresa, _, _ string) ([]dto.EstadisticaMaquina, error) {
	return r.porMaquina, nil
}

func (r *stubConteoRepo) DatosGraficos(_ context.Context, _ model.Empresa, _, _ string) (*dto.DatosGraficos, error) {
	if r.graficos == nil {
		return &dto.DatosGraficos{
			ConsumoPorDia:      []dto.PuntoGrafico{},
			ConsumoPorMaquina:  []dto.ConsumoMaquina{},
			TendenciaSemanal:   []dto.PuntoGrafico{},
			ComparativaMensual: []dto.PuntoGrafico{},
		}, nil
	}
	return r.graficos, nil
}

func (r *stubConteoRepo) DB() *gorm.DB { return nil }
