package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ELPELADASTER/control-stock/internal/dto"
	"github.com/ELPELADASTER/control-stock/internal/model"
	"github.com/ELPELADASTER/control-stock/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CargaService records machine loads and derives loading sessions from them.
//
// A load debits its article (utilizados += cantidad_cargada) and deleting it
// credits the debit back; both writes share a transaction with the load row
// so the ledger can never observe half a load.
type CargaService interface {
	Crear(ctx context.Context, req dto.CrearCargaRequest) (*dto.CargaResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) (string, error)

	ListarAgrupadas(ctx context.Context, filter dto.CargaFilter) ([]dto.SesionResumen, error)
	ObtenerDetalles(ctx context.Context, maquinaID uuid.UUID, fecha, usuario string) ([]dto.CargaConDetalle, error)
	Listar(ctx context.Context, filter dto.CargaFilter) ([]dto.CargaConDetalle, error)
	Resumen(ctx context.Context, empresa string) ([]dto.ResumenMaquina, error)
}

type cargaService struct {
	repo         repository.CargaRepository
	articuloRepo repository.ArticuloRepository
	maquinaRepo  repository.MaquinaRepository
}

func NewCargaService(
	repo repository.CargaRepository,
	articuloRepo repository.ArticuloRepository,
	maquinaRepo repository.MaquinaRepository,
) CargaService {
	return &cargaService{repo: repo, articuloRepo: articuloRepo, maquinaRepo: maquinaRepo}
}

// ── Crear ─────────────────────────────────────────────────────────────────────

func (s *cargaService) Crear(ctx context.Context, req dto.CrearCargaRequest) (*dto.CargaResponse, error) {
	if req.MaquinaID == "" || req.ArticuloID == "" || req.CantidadCargada <= 0 {
		return nil, newValidacion("Máquina, artículo y cantidad válida son requeridos")
	}
	maquinaID, err := uuid.Parse(req.MaquinaID)
	if err != nil {
		return nil, newValidacion("Máquina, artículo y cantidad válida son requeridos")
	}
	articuloID, err := uuid.Parse(req.ArticuloID)
	if err != nil {
		return nil, newValidacion("Máquina, artículo y cantidad válida son requeridos")
	}

	if _, err := s.maquinaRepo.FindByID(ctx, maquinaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMaquinaNoEncontrada
		}
		return nil, err
	}

	carga := model.CargaMaquina{
		MaquinaID:       maquinaID,
		ArticuloID:      articuloID,
		CantidadCargada: req.CantidadCargada,
		FechaCarga:      time.Now(),
		Usuario:         req.Usuario,
		Observaciones:   req.Observaciones,
	}

	// Load insert + article debit commit or roll back together. The article
	// row is locked first, so a concurrent load against the same article
	// waits and re-reads disponibles instead of overdrawing.
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		a, err := s.articuloRepo.FindByIDForUpdateTx(tx, articuloID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrArticuloNoEncontrado
			}
			return err
		}
		if a.Disponibles < req.CantidadCargada {
			return &StockInsuficienteError{Disponible: a.Disponibles, Solicitado: req.CantidadCargada}
		}
		if err := s.repo.CreateTx(tx, &carga); err != nil {
			return err
		}
		nuevosUtilizados := a.Utilizados + req.CantidadCargada
		return s.articuloRepo.UpdateStockTx(tx, articuloID, nuevosUtilizados, a.Cantidad-nuevosUtilizados)
	})
	if txErr != nil {
		return nil, txErr
	}

	return &dto.CargaResponse{
		ID:              carga.ID.String(),
		MaquinaID:       carga.MaquinaID.String(),
		ArticuloID:      carga.ArticuloID.String(),
		CantidadCargada: carga.CantidadCargada,
		FechaCarga:      formatearFecha(carga.FechaCarga),
		Usuario:         carga.Usuario,
		Observaciones:   carga.Observaciones,
		Success:         true,
	}, nil
}

// ── Eliminar ──────────────────────────────────────────────────────────────────

// Eliminar is the compensating transaction for Crear: it credits the debit
// back to the article and removes the load row. Create-then-delete restores
// the article's cantidad/utilizados/disponibles exactly.
func (s *cargaService) Eliminar(ctx context.Context, id uuid.UUID) (string, error) {
	carga, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrCargaNoEncontrada
		}
		return "", err
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		a, err := s.articuloRepo.FindByIDForUpdateTx(tx, carga.ArticuloID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrArticuloNoEncontrado
			}
			return err
		}
		nuevosUtilizados := a.Utilizados - carga.CantidadCargada
		if nuevosUtilizados < 0 {
			nuevosUtilizados = 0
		}
		if err := s.articuloRepo.UpdateStockTx(tx, carga.ArticuloID, nuevosUtilizados, a.Cantidad-nuevosUtilizados); err != nil {
			return err
		}
		return s.repo.DeleteTx(tx, id)
	})
	if txErr != nil {
		return "", txErr
	}
	return "Carga eliminada y stock revertido", nil
}

// ── Session aggregation ───────────────────────────────────────────────────────

// sessionKey is the identity contract for derived loading sessions: one
// user's work on one machine in one calendar day, under one notes text.
// The day is taken in UTC, matching the repository's date filters, so a
// session's fecha always round-trips through ObtenerDetalles.
func sessionKey(c *model.CargaMaquina) string {
	return c.MaquinaID.String() + "|" + fechaSesion(c.FechaCarga) + "|" + c.Usuario + "|" + c.Observaciones
}

func fechaSesion(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

func (s *cargaService) ListarAgrupadas(ctx context.Context, filter dto.CargaFilter) ([]dto.SesionResumen, error) {
	sanitizeEmpresa(&filter)
	cargas, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	type grupo struct {
		resumen  dto.SesionResumen
		primera  time.Time
		detalles []string
	}

	grupos := make(map[string]*grupo)
	var orden []string

	// Rows arrive fecha_carga ASC, so the first row of each group is the
	// session's earliest load and supplies its representative id.
	for i := range cargas {
		c := &cargas[i]
		key := sessionKey(c)
		g, ok := grupos[key]
		if !ok {
			g = &grupo{
				resumen: dto.SesionResumen{
					ID:            c.ID.String(),
					MaquinaID:     c.MaquinaID.String(),
					Usuario:       c.Usuario,
					Observaciones: c.Observaciones,
					Fecha:         fechaSesion(c.FechaCarga),
					FechaCarga:    formatearFecha(c.FechaCarga),
				},
				primera: c.FechaCarga,
			}
			if c.Maquina != nil {
				g.resumen.MaquinaNombre = c.Maquina.Nombre
				g.resumen.Edificio = c.Maquina.Edificio
				g.resumen.Ubicacion = c.Maquina.Ubicacion
				g.resumen.Empresa = string(c.Maquina.Empresa)
			}
			grupos[key] = g
			orden = append(orden, key)
		}
		g.resumen.TotalProductos++
		g.resumen.TotalCantidad += c.CantidadCargada
		g.detalles = append(g.detalles, detalleProducto(c))
	}

	resumenes := make([]dto.SesionResumen, 0, len(orden))
	ordenados := make([]*grupo, 0, len(orden))
	for _, key := range orden {
		g := grupos[key]
		g.resumen.ProductosDetalle = strings.Join(g.detalles, " + ")
		ordenados = append(ordenados, g)
	}
	sort.SliceStable(ordenados, func(i, j int) bool {
		return ordenados[i].primera.After(ordenados[j].primera)
	})
	for _, g := range ordenados {
		resumenes = append(resumenes, g.resumen)
	}
	return resumenes, nil
}

func detalleProducto(c *model.CargaMaquina) string {
	nombre := ""
	if c.Articulo != nil {
		nombre = strings.TrimSpace(c.Articulo.Simbolo + " " + c.Articulo.Nombre)
	}
	return fmt.Sprintf("%s (%d)", nombre, c.CantidadCargada)
}

func (s *cargaService) ObtenerDetalles(ctx context.Context, maquinaID uuid.UUID, fecha, usuario string) ([]dto.CargaConDetalle, error) {
	filter := dto.CargaFilter{
		MaquinaID:   maquinaID.String(),
		FechaExacta: fecha,
		Usuario:     usuario,
	}
	cargas, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	detalles := make([]dto.CargaConDetalle, 0, len(cargas))
	for i := range cargas {
		detalles = append(detalles, *cargaToDetalle(&cargas[i]))
	}
	return detalles, nil
}

func (s *cargaService) Listar(ctx context.Context, filter dto.CargaFilter) ([]dto.CargaConDetalle, error) {
	sanitizeEmpresa(&filter)
	cargas, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	// Repo orders ascending for the aggregator; the flat listing is newest first.
	detalles := make([]dto.CargaConDetalle, 0, len(cargas))
	for i := len(cargas) - 1; i >= 0; i-- {
		detalles = append(detalles, *cargaToDetalle(&cargas[i]))
	}
	return detalles, nil
}

func (s *cargaService) Resumen(ctx context.Context, empresa string) ([]dto.ResumenMaquina, error) {
	var filtro *model.Empresa
	filter := dto.CargaFilter{}
	if e, ok := model.ParseEmpresa(empresa); ok {
		filtro = &e
		filter.Empresa = string(e)
	}

	maquinas, err := s.maquinaRepo.List(ctx, filtro, "")
	if err != nil {
		return nil, err
	}
	cargas, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	type acumulado struct {
		cargas   int
		cantidad int
		ultima   time.Time
	}
	porMaquina := make(map[uuid.UUID]*acumulado)
	for i := range cargas {
		c := &cargas[i]
		acc, ok := porMaquina[c.MaquinaID]
		if !ok {
			acc = &acumulado{}
			porMaquina[c.MaquinaID] = acc
		}
		acc.cargas++
		acc.cantidad += c.CantidadCargada
		if c.FechaCarga.After(acc.ultima) {
			acc.ultima = c.FechaCarga
		}
	}

	// Machines come back ordered by edificio, nombre; machines without any
	// load still appear with zeroed totals.
	resumen := make([]dto.ResumenMaquina, 0, len(maquinas))
	for i := range maquinas {
		m := &maquinas[i]
		r := dto.ResumenMaquina{
			MaquinaID:     m.ID.String(),
			MaquinaNombre: m.Nombre,
			Edificio:      m.Edificio,
			Ubicacion:     m.Ubicacion,
		}
		if acc, ok := porMaquina[m.ID]; ok {
			r.TotalCargas = acc.cargas
			r.TotalCantidad = acc.cantidad
			ultima := formatearFecha(acc.ultima)
			r.UltimaCarga = &ultima
		}
		resumen = append(resumen, r)
	}
	return resumen, nil
}

func cargaToDetalle(c *model.CargaMaquina) *dto.CargaConDetalle {
	d := &dto.CargaConDetalle{
		ID:              c.ID.String(),
		MaquinaID:       c.MaquinaID.String(),
		ArticuloID:      c.ArticuloID.String(),
		CantidadCargada: c.CantidadCargada,
		FechaCarga:      formatearFecha(c.FechaCarga),
		Usuario:         c.Usuario,
		Observaciones:   c.Observaciones,
	}
	if c.Maquina != nil {
		d.MaquinaNombre = c.Maquina.Nombre
		d.Edificio = c.Maquina.Edificio
		d.Ubicacion = c.Maquina.Ubicacion
		d.Empresa = string(c.Maquina.Empresa)
	}
	if c.Articulo != nil {
		d.ArticuloNombre = &c.Articulo.Nombre
		d.ArticuloSimbolo = &c.Articulo.Simbolo
	}
	return d
}

// sanitizeEmpresa blanks out unrecognized empresa filters — they are ignored,
// never rejected.
func sanitizeEmpresa(f *dto.CargaFilter) {
	if _, ok := model.ParseEmpresa(f.Empresa); !ok {
		f.Empresa = ""
	}
}
