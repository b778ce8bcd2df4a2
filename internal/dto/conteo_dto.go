package dto

type CrearConteoRequest struct {
	MaquinaID     string  `json:"maquina_id"     validate:"required,uuid"`
	CantidadVasos int     `json:"cantidad_vasos" validate:"required,gt=0"`
	Observaciones *string `json:"observaciones"`
	Empresa       string  `json:"empresa"`
}

type ActualizarConteoRequest struct {
	CantidadVasos int     `json:"cantidad_vasos" validate:"required,gt=0"`
	Observaciones *string `json:"observaciones"`
}

type ConteoFilter struct {
	Empresa    string `form:"empresa"`
	FechaDesde string `form:"fecha_desde"`
	FechaHasta string `form:"fecha_hasta"`
	Limit      int    `form:"limit,default=10" validate:"min=1,max=100"`
}

type ConteoResponse struct {
	ID            string  `json:"id"`
	MaquinaID     string  `json:"maquina_id"`
	CantidadVasos int     `json:"cantidad_vasos"`
	FechaConteo   string  `json:"fecha_conteo"`
	Observaciones *string `json:"observaciones"`
	Empresa       string  `json:"empresa"`
	MaquinaNombre string  `json:"maquina_nombre"`
	Edificio      string  `json:"edificio"`
	Ubicacion     string  `json:"ubicacion"`
}
