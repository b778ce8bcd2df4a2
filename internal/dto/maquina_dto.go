package dto

type CrearMaquinaRequest struct {
	Nombre    string `json:"nombre"   validate:"required"`
	Edificio  string `json:"edificio" validate:"required"`
	Ubicacion string `json:"ubicacion"`
	Empresa   string `json:"empresa"`
}

type ActualizarMaquinaRequest struct {
	Nombre    *string `json:"nombre"`
	Edificio  *string `json:"edificio"`
	Ubicacion *string `json:"ubicacion"`
	Empresa   *string `json:"empresa"`
	Estado    *string `json:"estado"`
}

type MaquinaFilter struct {
	Empresa  string `form:"empresa"`
	Edificio string `form:"edificio"`
}

type MaquinaResponse struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Edificio  string `json:"edificio"`
	Ubicacion string `json:"ubicacion"`
	Empresa   string `json:"empresa"`
	Estado    string `json:"estado"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
