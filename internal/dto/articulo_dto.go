package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearArticuloRequest struct {
	Nombre   string  `json:"nombre"   validate:"required"`
	Cantidad *int    `json:"cantidad" validate:"required"`
	Simbolo  string  `json:"simbolo"`
	Imagen   *string `json:"imagen"`
	Empresa  string  `json:"empresa"`
}

// UtilizarRequest consumes stock directly from an article (outside any machine).
type UtilizarRequest struct {
	CantidadUtilizada int `json:"cantidadUtilizada" validate:"required,gt=0"`
}

// ActualizarArticuloRequest patches an article. Every field is independent:
// absent fields keep their stored value, disponibles is recomputed from
// whichever cantidad/utilizados pair results.
type ActualizarArticuloRequest struct {
	Nombre     *string `json:"nombre"`
	Cantidad   *int    `json:"cantidad"`
	Utilizados *int    `json:"utilizados"`
	Simbolo    *string `json:"simbolo"`
	Imagen     *string `json:"imagen"`
	Empresa    *string `json:"empresa"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ArticuloResponse struct {
	ID          string  `json:"id"`
	Nombre      string  `json:"nombre"`
	Simbolo     string  `json:"simbolo"`
	Cantidad    int     `json:"cantidad"`
	Utilizados  int     `json:"utilizados"`
	Disponibles int     `json:"disponibles"`
	Imagen      *string `json:"imagen"`
	Empresa     string  `json:"empresa"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
