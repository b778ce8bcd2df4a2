package dto

// EstadisticasGenerales feeds the dashboard header. JSON keys stay camelCase
// for compatibility with the existing frontend.
type EstadisticasGenerales struct {
	TotalVasosHoy       int64  `json:"totalVasosHoy"`
	TotalVasosSemana    int64  `json:"totalVasosSemana"`
	TotalVasosMes       int64  `json:"totalVasosMes"`
	MaquinaMasUsada     string `json:"maquinaMasUsada"`
	PromedioVasosPorDia int64  `json:"promedioVasosPorDia"`
	Tendencia           string `json:"tendencia"` // subida | bajada | estable
	UltimaSemana        int64  `json:"ultimaSemana"`
	SemanaAnterior      int64  `json:"semanaAnterior"`
}

// PuntoGrafico is one bucketed point of a chart series; Fecha is the bucket
// label (day, ISO week or month depending on the series).
type PuntoGrafico struct {
	Fecha    string `json:"fecha"`
	Cantidad int64  `json:"cantidad"`
}

type ConsumoMaquina struct {
	MaquinaNombre string `json:"maquina_nombre"`
	MaquinaID     string `json:"maquina_id"`
	Cantidad      int64  `json:"cantidad"`
}

// DatosGraficos feeds the dashboard charts, camelCase keys like the header.
type DatosGraficos struct {
	ConsumoPorDia      []PuntoGrafico   `json:"consumoPorDia"`
	ConsumoPorMaquina  []ConsumoMaquina `json:"consumoPorMaquina"`
	TendenciaSemanal   []PuntoGrafico   `json:"tendenciaSemanal"`
	ComparativaMensual []PuntoGrafico   `json:"comparativaMensual"`
}

type EstadisticaMaquina struct {
	MaquinaID     string  `json:"maquina_id"`
	MaquinaNombre string  `json:"maquina_nombre"`
	Edificio      string  `json:"edificio"`
	Ubicacion     string  `json:"ubicacion"`
	TotalVasos    int64   `json:"total_vasos"`
	TotalConteos  int64   `json:"total_conteos"`
	UltimoConteo  *string `json:"ultimo_conteo"`
}
