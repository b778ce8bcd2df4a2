package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearCargaRequest struct {
	MaquinaID       string `json:"maquina_id"       validate:"required,uuid"`
	ArticuloID      string `json:"articulo_id"      validate:"required,uuid"`
	CantidadCargada int    `json:"cantidad_cargada" validate:"required,gt=0"`
	Usuario         string `json:"usuario"`
	Observaciones   string `json:"observaciones"`
}

// CargaFilter narrows load listings. FechaExacta and Usuario are only set by
// the session-detail endpoint (path/query params), never by the flat listing.
type CargaFilter struct {
	MaquinaID   string `form:"maquina_id"`
	ArticuloID  string `form:"articulo_id"`
	Empresa     string `form:"empresa"`
	FechaDesde  string `form:"fecha_desde"`
	FechaHasta  string `form:"fecha_hasta"`
	FechaExacta string `form:"-"`
	Usuario     string `form:"-"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CargaResponse struct {
	ID              string `json:"id"`
	MaquinaID       string `json:"maquina_id"`
	ArticuloID      string `json:"articulo_id"`
	CantidadCargada int    `json:"cantidad_cargada"`
	FechaCarga      string `json:"fecha_carga"`
	Usuario         string `json:"usuario"`
	Observaciones   string `json:"observaciones"`
	Success         bool   `json:"success"`
}

// CargaConDetalle is a load row annotated with machine and article metadata.
// Article fields are pointers: a load whose article was removed before the
// delete guard existed still lists, with nulls.
type CargaConDetalle struct {
	ID              string  `json:"id"`
	MaquinaID       string  `json:"maquina_id"`
	ArticuloID      string  `json:"articulo_id"`
	CantidadCargada int     `json:"cantidad_cargada"`
	FechaCarga      string  `json:"fecha_carga"`
	Usuario         string  `json:"usuario"`
	Observaciones   string  `json:"observaciones"`
	MaquinaNombre   string  `json:"maquina_nombre"`
	Edificio        string  `json:"edificio"`
	Ubicacion       string  `json:"ubicacion"`
	Empresa         string  `json:"empresa"`
	ArticuloNombre  *string `json:"articulo_nombre"`
	ArticuloSimbolo *string `json:"articulo_simbolo"`
}

// SesionResumen is one derived loading session: every load sharing
// (maquina_id, calendar date, usuario, observaciones).
type SesionResumen struct {
	ID               string `json:"id"` // id of the group's earliest load
	MaquinaID        string `json:"maquina_id"`
	Usuario          string `json:"usuario"`
	Observaciones    string `json:"observaciones"`
	Fecha            string `json:"fecha"`
	FechaCarga       string `json:"fecha_carga"` // earliest load time in the group
	MaquinaNombre    string `json:"maquina_nombre"`
	Edificio         string `json:"edificio"`
	Ubicacion        string `json:"ubicacion"`
	Empresa          string `json:"empresa"`
	TotalProductos   int    `json:"total_productos"`
	TotalCantidad    int    `json:"total_cantidad"`
	ProductosDetalle string `json:"productos_detalle"`
}

type ResumenMaquina struct {
	MaquinaID     string  `json:"maquina_id"`
	MaquinaNombre string  `json:"maquina_nombre"`
	Edificio      string  `json:"edificio"`
	Ubicacion     string  `json:"ubicacion"`
	TotalCargas   int     `json:"total_cargas"`
	TotalCantidad int     `json:"total_cantidad"`
	UltimaCarga   *string `json:"ultima_carga"`
}
