package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/ELPELADASTER/control-stock/internal/dto"
	"github.com/ELPELADASTER/control-stock/internal/model"
	"github.com/ELPELADASTER/control-stock/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEstadisticasFixture() (service.EstadisticasService, *stubConteoRepo) {
	repo := newStubConteoRepo(newStubMaquinaRepo())
	return service.NewEstadisticasService(repo, nil, time.Minute), repo
}

// sembrarVasos inserts one conteo with the given cup count at an offset in
// days relative to now.
func sembrarVasos(t *testing.T, repo *stubConteoRepo, vasos, diasAtras int) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &model.ConteoVasos{
		MaquinaID:     uuid.New(),
		CantidadVasos: vasos,
		FechaConteo:   time.Now().AddDate(0, 0, -diasAtras),
		Empresa:       model.EmpresaTelecom,
	}))
}

func TestGeneralesSinDatos(t *testing.T) {
	svc, _ := newEstadisticasFixture()

	stats, err := svc.Generales(context.Background(), "Telecom")
	require.NoError(t, err)

	assert.Zero(t, stats.TotalVasosHoy)
	assert.Zero(t, stats.TotalVasosSemana)
	assert.Zero(t, stats.TotalVasosMes)
	assert.Equal(t, "Sin datos", stats.MaquinaMasUsada)
	assert.Equal(t, "estable", stats.Tendencia)
}

func TestGeneralesCuentaVentanasMoviles(t *testing.T) {
	svc, repo := newEstadisticasFixture()
	sembrarVasos(t, repo, 100, 0) // hoy
	sembrarVasos(t, repo, 120, 2) // dentro de los últimos 7 días
	sembrarVasos(t, repo, 100, 8) // semana anterior

	stats, err := svc.Generales(context.Background(), "Telecom")
	require.NoError(t, err)

	assert.Equal(t, int64(100), stats.TotalVasosHoy)
	assert.Equal(t, int64(220), stats.UltimaSemana)
	assert.Equal(t, int64(100), stats.SemanaAnterior)
	assert.Equal(t, "subida", stats.Tendencia, "220 vs 100 supera el umbral de 110%")
}

func TestGeneralesTendenciaBajada(t *testing.T) {
	svc, repo := newEstadisticasFixture()
	sembrarVasos(t, repo, 80, 1)
	sembrarVasos(t, repo, 100, 8)

	stats, err := svc.Generales(context.Background(), "Telecom")
	require.NoError(t, err)
	assert.Equal(t, "bajada", stats.Tendencia)
}

func TestGeneralesTendenciaEstable(t *testing.T) {
	svc, repo := newEstadisticasFixture()
	sembrarVasos(t, repo, 100, 1)
	sembrarVasos(t, repo, 100, 8)

	stats, err := svc.Generales(context.Background(), "Telecom")
	require.NoError(t, err)
	assert.Equal(t, "estable", stats.Tendencia)
}

func TestGeneralesSinSemanaAnteriorConActividad(t *testing.T) {
	svc, repo := newEstadisticasFixture()
	sembrarVasos(t, repo, 10, 1)

	stats, err := svc.Generales(context.Background(), "Telecom")
	require.NoError(t, err)
	assert.Equal(t, "subida", stats.Tendencia)
}

func TestGeneralesRedondeaPromedio(t *testing.T) {
	svc, repo := newEstadisticasFixture()
	repo.promedioDiario = 7.6
	repo.maquinaMasUsada = "Expendedora 1"

	stats, err := svc.Generales(context.Background(), "Telecom")
	require.NoError(t, err)
	assert.Equal(t, int64(8), stats.PromedioVasosPorDia)
	assert.Equal(t, "Expendedora 1", stats.MaquinaMasUsada)
}

func TestGraficosDevuelveLasCuatroSeries(t *testing.T) {
	svc, repo := newEstadisticasFixture()
	repo.graficos = &dto.DatosGraficos{
		ConsumoPorDia:      []dto.PuntoGrafico{{Fecha: "2026-08-30", Cantidad: 40}},
		ConsumoPorMaquina:  []dto.ConsumoMaquina{{MaquinaNombre: "Expendedora 1", MaquinaID: uuid.NewString(), Cantidad: 40}},
		TendenciaSemanal:   []dto.PuntoGrafico{{Fecha: "2026-W35", Cantidad: 40}},
		ComparativaMensual: []dto.PuntoGrafico{{Fecha: "2026-08", Cantidad: 40}},
	}

	datos, err := svc.Graficos(context.Background(), dto.ConteoFilter{Empresa: "Telecom"})
	require.NoError(t, err)
	require.Len(t, datos.ConsumoPorDia, 1)
	assert.Equal(t, int64(40), datos.ConsumoPorDia[0].Cantidad)
	assert.Equal(t, "Expendedora 1", datos.ConsumoPorMaquina[0].MaquinaNombre)
	require.Len(t, datos.TendenciaSemanal, 1)
	require.Len(t, datos.ComparativaMensual, 1)
}

func TestGraficosSinDatosDevuelveSeriesVacias(t *testing.T) {
	svc, _ := newEstadisticasFixture()

	datos, err := svc.Graficos(context.Background(), dto.ConteoFilter{Empresa: "Telecom"})
	require.NoError(t, err)
	assert.NotNil(t, datos.ConsumoPorDia)
	assert.Empty(t, datos.ConsumoPorDia)
	assert.NotNil(t, datos.ConsumoPorMaquina)
	assert.Empty(t, datos.TendenciaSemanal)
	assert.Empty(t, datos.ComparativaMensual)
}

func TestPorMaquinaDelegaAlRepositorio(t *testing.T) {
	svc, repo := newEstadisticasFixture()
	repo.porMaquina = []dto.EstadisticaMaquina{
		{MaquinaID: uuid.NewString(), MaquinaNombre: "Expendedora 1", TotalVasos: 150, TotalConteos: 3},
	}

	stats, err := svc.PorMaquina(context.Background(), dto.ConteoFilter{Empresa: "Telecom"})
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, int64(150), stats[0].TotalVasos)
}
