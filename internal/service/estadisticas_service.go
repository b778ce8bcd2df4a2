package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ELPELADASTER/control-stock/internal/dto"
	"github.com/ELPELADASTER/control-stock/internal/model"
	"github.com/ELPELADASTER/control-stock/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Trend thresholds: last week vs the week before. Above 110% reads as
// "subida", below 90% as "bajada", anything in between "estable".
var (
	umbralSubida = decimal.NewFromFloat(1.1)
	umbralBajada = decimal.NewFromFloat(0.9)
)

// EstadisticasService computes the cup-count dashboard. Generales is served
// through a Redis read-through cache keyed per empresa.
type EstadisticasService interface {
	Generales(ctx context.Context, empresa string) (*dto.EstadisticasGenerales, error)
	PorMaquina(ctx context.Context, filter dto.ConteoFilter) ([]dto.EstadisticaMaquina, error)
	Graficos(ctx context.Context, filter dto.ConteoFilter) (*dto.DatosGraficos, error)
}

type estadisticasService struct {
	repo repository.ConteoRepository
	rdb  *redis.Client
	ttl  time.Duration
}

func NewEstadisticasService(repo repository.ConteoRepository, rdb *redis.Client, ttl time.Duration) EstadisticasService {
	return &estadisticasService{repo: repo, rdb: rdb, ttl: ttl}
}

func claveEstadisticas(empresa model.Empresa) string {
	return "estadisticas:" + string(empresa)
}

func (s *estadisticasService) Generales(ctx context.Context, empresa string) (*dto.EstadisticasGenerales, error) {
	emp := model.NormalizeEmpresa(empresa)
	clave := claveEstadisticas(emp)

	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, clave).Result(); err == nil {
			var cached dto.EstadisticasGenerales
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	stats, err := s.calcularGenerales(ctx, emp)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(stats); err == nil {
			if err := s.rdb.Set(ctx, clave, raw, s.ttl).Err(); err != nil {
				log.Warn().Err(err).Str("clave", clave).Msg("no se pudo cachear estadísticas")
			}
		}
	}
	return stats, nil
}

func (s *estadisticasService) calcularGenerales(ctx context.Context, emp model.Empresa) (*dto.EstadisticasGenerales, error) {
	now := time.Now()
	hoy := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	// Week starts on Monday.
	dias := (int(now.Weekday()) + 6) % 7
	inicioSemana := hoy.AddDate(0, 0, -dias)
	inicioMes := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	vasosHoy, err := s.repo.SumVasos(ctx, emp, hoy, time.Time{})
	if err != nil {
		return nil, err
	}
	vasosSemana, err := s.repo.SumVasos(ctx, emp, inicioSemana, time.Time{})
	if err != nil {
		return nil, err
	}
	vasosMes, err := s.repo.SumVasos(ctx, emp, inicioMes, time.Time{})
	if err != nil {
		return nil, err
	}

	// Rolling 7-day windows for the trend, independent of the calendar week.
	ultimaSemana, err := s.repo.SumVasos(ctx, emp, hoy.AddDate(0, 0, -6), time.Time{})
	if err != nil {
		return nil, err
	}
	semanaAnterior, err := s.repo.SumVasos(ctx, emp, hoy.AddDate(0, 0, -13), hoy.AddDate(0, 0, -6))
	if err != nil {
		return nil, err
	}

	maquina, err := s.repo.MaquinaMasUsada(ctx, emp)
	if err != nil {
		return nil, err
	}
	if maquina == "" {
		maquina = "Sin datos"
	}

	promedio, err := s.repo.PromedioDiario(ctx, emp, inicioMes)
	if err != nil {
		return nil, err
	}

	return &dto.EstadisticasGenerales{
		TotalVasosHoy:       vasosHoy,
		TotalVasosSemana:    vasosSemana,
		TotalVasosMes:       vasosMes,
		MaquinaMasUsada:     maquina,
		PromedioVasosPorDia: decimal.NewFromFloat(promedio).Round(0).IntPart(),
		Tendencia:           clasificarTendencia(ultimaSemana, semanaAnterior),
		UltimaSemana:        ultimaSemana,
		SemanaAnterior:      semanaAnterior,
	}, nil
}

func clasificarTendencia(ultima, anterior int64) string {
	if anterior == 0 {
		if ultima > 0 {
			return "subida"
		}
		return "estable"
	}
	razon := decimal.NewFromInt(ultima).Div(decimal.NewFromInt(anterior))
	switch {
	case razon.GreaterThan(umbralSubida):
		return "subida"
	case razon.LessThan(umbralBajada):
		return "bajada"
	default:
		return "estable"
	}
}

func (s *estadisticasService) PorMaquina(ctx context.Context, filter dto.ConteoFilter) ([]dto.EstadisticaMaquina, error) {
	emp := model.NormalizeEmpresa(filter.Empresa)
	return s.repo.EstadisticasPorMaquina(ctx, emp, filter.FechaDesde, filter.FechaHasta)
}

func (s *estadisticasService) Graficos(ctx context.Context, filter dto.ConteoFilter) (*dto.DatosGraficos, error) {
	emp := model.NormalizeEmpresa(filter.Empresa)
	return s.repo.DatosGraficos(ctx, emp, filter.FechaDesde, filter.FechaHasta)
}
