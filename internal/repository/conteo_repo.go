package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/ELPELADASTER/control-stock/internal/dto"
	"github.com/ELPELADASTER/control-stock/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConteoRepository defines the data access contract for cup counts, including
// the aggregate queries behind the dashboard statistics.
type ConteoRepository interface {
	Create(ctx context.Context, c *model.ConteoVasos) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ConteoVasos, error)
	Update(ctx context.Context, c *model.ConteoVasos) error
	Delete(ctx context.Context, id uuid.UUID) error

	Ultimos(ctx context.Context, empresa model.Empresa, limit int) ([]model.ConteoVasos, error)
	PorMaquina(ctx context.Context, maquinaID uuid.UUID, empresa model.Empresa, desde, hasta string) ([]model.ConteoVasos, error)

	// Statistics. SumVasos counts cups in [desde, hasta); a zero hasta leaves
	// the range open-ended.
	SumVasos(ctx context.Context, empresa model.Empresa, desde, hasta time.Time) (int64, error)
	MaquinaMasUsada(ctx context.Context, empresa model.Empresa) (string, error)
	PromedioDiario(ctx context.Context, empresa model.Empresa, desde time.Time) (float64, error)
	EstadisticasPorMaquina(ctx context.Context, empresa model.Empresa, desde, hasta string) ([]dto.EstadisticaMaquina, error)
	DatosGraficos(ctx context.Context, empresa model.Empresa, desde, hasta string) (*dto.DatosGraficos, error)

	DB() *gorm.DB
}

type conteoRepo struct{ db *gorm.DB }

func NewConteoRepository(db *gorm.DB) ConteoRepository { return &conteoRepo{db: db} }

func (r *conteoRepo) Create(ctx context.Context, c *model.ConteoVasos) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *conteoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ConteoVasos, error) {
	var c model.ConteoVasos
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *conteoRepo) Update(ctx context.Context, c *model.ConteoVasos) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *conteoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ConteoVasos{}, "id = ?", id).Error
}

func (r *conteoRepo) Ultimos(ctx context.Context, empresa model.Empresa, limit int) ([]model.ConteoVasos, error) {
	var conteos []model.ConteoVasos
	err := r.db.WithContext(ctx).
		Preload("Maquina").
		Where("empresa = ?", empresa).
		Order("fecha_conteo DESC").
		Limit(limit).
		Find(&conteos).Error
	return conteos, err
}

func (r *conteoRepo) PorMaquina(ctx context.Context, maquinaID uuid.UUID, empresa model.Empresa, desde, hasta string) ([]model.ConteoVasos, error) {
	var conteos []model.ConteoVasos
	q := r.db.WithContext(ctx).
		Preload("Maquina").
		Where("maquina_id = ? AND empresa = ?", maquinaID, empresa)
	if desde != "" {
		q = q.Where("fecha_conteo::date >= ?::date", desde)
	}
	if hasta != "" {
		q = q.Where("fecha_conteo::date <= ?::date", hasta)
	}
	err := q.Order("fecha_conteo DESC").Find(&conteos).Error
	return conteos, err
}

func (r *conteoRepo) SumVasos(ctx context.Context, empresa model.Empresa, desde, hasta time.Time) (int64, error) {
	var total int64
	q := r.db.WithContext(ctx).Model(&model.ConteoVasos{}).
		Where("empresa = ? AND fecha_conteo >= ?", empresa, desde)
	if !hasta.IsZero() {
		q = q.Where("fecha_conteo < ?", hasta)
	}
	err := q.Select("COALESCE(SUM(cantidad_vasos), 0)").Scan(&total).Error
	return total, err
}

func (r *conteoRepo) MaquinaMasUsada(ctx context.Context, empresa model.Empresa) (string, error) {
	var nombre string
	err := r.db.WithContext(ctx).Raw(`
		SELECT m.nombre
		FROM maquinas m
		LEFT JOIN conteos_vasos cv ON m.id = cv.maquina_id AND cv.empresa = ?
		WHERE m.empresa = ?
		GROUP BY m.id, m.nombre
		ORDER BY COALESCE(SUM(cv.cantidad_vasos), 0) DESC
		LIMIT 1`, empresa, empresa).Scan(&nombre).Error
	return nombre, err
}

func (r *conteoRepo) PromedioDiario(ctx context.Context, empresa model.Empresa, desde time.Time) (float64, error) {
	var promedio float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(AVG(daily_total), 0)
		FROM (
			SELECT SUM(cantidad_vasos) AS daily_total
			FROM conteos_vasos
			WHERE empresa = ? AND fecha_conteo >= ?
			GROUP BY fecha_conteo::date
		) diarios`, empresa, desde).Scan(&promedio).Error
	return promedio, err
}

type estadisticaMaquinaRow struct {
	MaquinaID     string
	MaquinaNombre string
	Edificio      string
	Ubicacion     string
	TotalVasos    int64
	TotalConteos  int64
	UltimoConteo  *time.Time
}

func (r *conteoRepo) EstadisticasPorMaquina(ctx context.Context, empresa model.Empresa, desde, hasta string) ([]dto.EstadisticaMaquina, error) {
	sql := `
		SELECT m.id::text AS maquina_id,
		       m.nombre   AS maquina_nombre,
		       m.edificio,
		       m.ubicacion,
		       COALESCE(SUM(cv.cantidad_vasos), 0) AS total_vasos,
		       COUNT(cv.id)                        AS total_conteos,
		       MAX(cv.fecha_conteo)                AS ultimo_conteo
		FROM maquinas m
		LEFT JOIN conteos_vasos cv ON m.id = cv.maquina_id AND cv.empresa = ?`
	args := []interface{}{empresa}

	if desde != "" {
		sql += " AND cv.fecha_conteo::date >= ?::date"
		args = append(args, desde)
	}
	if hasta != "" {
		sql += " AND cv.fecha_conteo::date <= ?::date"
		args = append(args, hasta)
	}
	sql += `
		WHERE m.empresa = ?
		GROUP BY m.id, m.nombre, m.edificio, m.ubicacion
		ORDER BY total_vasos DESC`
	args = append(args, empresa)

	var rows []estadisticaMaquinaRow
	if err := r.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	stats := make([]dto.EstadisticaMaquina, 0, len(rows))
	for _, row := range rows {
		stat := dto.EstadisticaMaquina{
			MaquinaID:     row.MaquinaID,
			MaquinaNombre: row.MaquinaNombre,
			Edificio:      row.Edificio,
			Ubicacion:     row.Ubicacion,
			TotalVasos:    row.TotalVasos,
			TotalConteos:  row.TotalConteos,
		}
		if row.UltimoConteo != nil {
			formatted := row.UltimoConteo.UTC().Format("2006-01-02T15:04:05Z")
			stat.UltimoConteo = &formatted
		}
		stats = append(stats, stat)
	}
	return stats, nil
}

// DatosGraficos builds the chart series: daily consumption (last 30 buckets),
// per-machine totals, ISO-week trend and monthly comparison (12 buckets each).
func (r *conteoRepo) DatosGraficos(ctx context.Context, empresa model.Empresa, desde, hasta string) (*dto.DatosGraficos, error) {
	serie := func(bucket string, limit int) ([]dto.PuntoGrafico, error) {
		sql := `SELECT ` + bucket + ` AS fecha, SUM(cantidad_vasos) AS cantidad
			FROM conteos_vasos
			WHERE empresa = ?`
		args := []interface{}{empresa}
		if desde != "" {
			sql += " AND fecha_conteo::date >= ?::date"
			args = append(args, desde)
		}
		if hasta != "" {
			sql += " AND fecha_conteo::date <= ?::date"
			args = append(args, hasta)
		}
		sql += ` GROUP BY ` + bucket + ` ORDER BY fecha DESC LIMIT ` + strconv.Itoa(limit)

		puntos := []dto.PuntoGrafico{}
		if err := r.db.WithContext(ctx).Raw(sql, args...).Scan(&puntos).Error; err != nil {
			return nil, err
		}
		return puntos, nil
	}

	porDia, err := serie(`to_char(fecha_conteo, 'YYYY-MM-DD')`, 30)
	if err != nil {
		return nil, err
	}
	porSemana, err := serie(`to_char(fecha_conteo, 'IYYY-"W"IW')`, 12)
	if err != nil {
		return nil, err
	}
	porMes, err := serie(`to_char(fecha_conteo, 'YYYY-MM')`, 12)
	if err != nil {
		return nil, err
	}

	sql := `
		SELECT m.nombre   AS maquina_nombre,
		       m.id::text AS maquina_id,
		       COALESCE(SUM(cv.cantidad_vasos), 0) AS cantidad
		FROM maquinas m
		LEFT JOIN conteos_vasos cv ON m.id = cv.maquina_id AND cv.empresa = ?`
	args := []interface{}{empresa}
	if desde != "" {
		sql += " AND cv.fecha_conteo::date >= ?::date"
		args = append(args, desde)
	}
	if hasta != "" {
		sql += " AND cv.fecha_conteo::date <= ?::date"
		args = append(args, hasta)
	}
	sql += `
		WHERE m.empresa = ?
		GROUP BY m.id, m.nombre
		ORDER BY cantidad DESC`
	args = append(args, empresa)

	porMaquina := []dto.ConsumoMaquina{}
	if err := r.db.WithContext(ctx).Raw(sql, args...).Scan(&porMaquina).Error; err != nil {
		return nil, err
	}

	return &dto.DatosGraficos{
		ConsumoPorDia:      porDia,
		ConsumoPorMaquina:  porMaquina,
		TendenciaSemanal:   porSemana,
		ComparativaMensual: porMes,
	}, nil
}

func (r *conteoRepo) DB() *gorm.DB { return r.db }
