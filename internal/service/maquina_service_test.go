package service_test

import (
	"context"
	"testing"

	"github.com/ELPELADASTER/control-stock/internal/dto"
	"github.com/ELPELADASTER/control-stock/internal/model"
	"github.com/ELPELADASTER/control-stock/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMaquinaFixture() (service.MaquinaService, *stubMaquinaRepo, *stubCargaRepo) {
	maqs := newStubMaquinaRepo()
	cargas := newStubCargaRepo(maqs, nil)
	return service.NewMaquinaService(maqs, cargas), maqs, cargas
}

func TestCrearMaquinaValidaNombreYEdificio(t *testing.T) {
	svc, _, _ := newMaquinaFixture()

	var ve *service.ValidacionError
	_, err := svc.Crear(context.Background(), dto.CrearMaquinaRequest{Nombre: "", Edificio: "Anexo"})
	require.ErrorAs(t, err, &ve)
	_, err = svc.Crear(context.Background(), dto.CrearMaquinaRequest{Nombre: "Expendedora 1", Edificio: ""})
	require.ErrorAs(t, err, &ve)
}

func TestCrearMaquinaArrancaActiva(t *testing.T) {
	svc, _, _ := newMaquinaFixture()

	resp, err := svc.Crear(context.Background(), dto.CrearMaquinaRequest{
		Nombre:   "Expendedora 1",
		Edificio: "Anexo",
		Empresa:  "Pago Online",
	})
	require.NoError(t, err)
	assert.Equal(t, "activa", resp.Estado)
	assert.Equal(t, string(model.EmpresaPagoOnline), resp.Empresa)
}

func TestActualizarMaquinaIgnoraEmpresaInvalida(t *testing.T) {
	svc, repo, _ := newMaquinaFixture()
	resp, err := svc.Crear(context.Background(), dto.CrearMaquinaRequest{Nombre: "Expendedora 1", Edificio: "Anexo"})
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	require.NoError(t, svc.Actualizar(context.Background(), id, dto.ActualizarMaquinaRequest{
		Empresa: strPtr("Banana"),
		Estado:  strPtr("mantenimiento"),
	}))

	m, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, model.EmpresaTelecom, m.Empresa)
	assert.Equal(t, "mantenimiento", m.Estado)
}

func TestActualizarMaquinaInexistente(t *testing.T) {
	svc, _, _ := newMaquinaFixture()
	err := svc.Actualizar(context.Background(), uuid.New(), dto.ActualizarMaquinaRequest{})
	assert.ErrorIs(t, err, service.ErrMaquinaNoEncontrada)
}

func TestEliminarMaquinaConCargasRechazado(t *testing.T) {
	svc, repo, cargas := newMaquinaFixture()
	resp, err := svc.Crear(context.Background(), dto.CrearMaquinaRequest{Nombre: "Expendedora 1", Edificio: "Anexo"})
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	require.NoError(t, cargas.CreateTx(nil, &model.CargaMaquina{
		MaquinaID:       id,
		ArticuloID:      uuid.New(),
		CantidadCargada: 5,
	}))

	err = svc.Eliminar(context.Background(), id)
	var ve *service.ValidacionError
	require.ErrorAs(t, err, &ve)

	_, err = repo.FindByID(context.Background(), id)
	assert.NoError(t, err)
}

func TestEdificiosDistintosPorEmpresa(t *testing.T) {
	svc, _, _ := newMaquinaFixture()
	for _, m := range []dto.CrearMaquinaRequest{
		{Nombre: "A", Edificio: "Central", Empresa: "Telecom"},
		{Nombre: "B", Edificio: "Central", Empresa: "Telecom"},
		{Nombre: "C", Edificio: "Anexo", Empresa: "Pago Online"},
	} {
		_, err := svc.Crear(context.Background(), m)
		require.NoError(t, err)
	}

	edificios, err := svc.Edificios(context.Background(), "Telecom")
	require.NoError(t, err)
	assert.Equal(t, []string{"Central"}, edificios)

	todos, err := svc.Edificios(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Anexo", "Central"}, todos)
}
