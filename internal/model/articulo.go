package model

import (
	"time"

	"github.com/google/uuid"
)

// Articulo is a consumable inventory item.
//
// Cantidad is the fixed total stocked; Utilizados accumulates every unit
// consumed or loaded into a machine. Disponibles is always recomputed as
// Cantidad - Utilizados — every mutation path goes through the same formula.
type Articulo struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"index;not null"`
	Simbolo     string    // display glyph used in session summaries, e.g. "☕"
	Cantidad    int       `gorm:"not null"`
	Utilizados  int       `gorm:"not null;default:0"`
	Disponibles int       `gorm:"not null"`
	Imagen      *string   // opaque reference; upload handling lives elsewhere
	Empresa     Empresa   `gorm:"type:text;not null;default:'Telecom';index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides GORM's default pluralization (articulos, not articulos_).
func (Articulo) TableName() string { return "articulos" }
