package model

import (
	"time"

	"github.com/google/uuid"
)

// Maquina is a physical dispensing unit located in a building.
type Maquina struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"not null"`
	Edificio  string    `gorm:"not null;index"`
	Ubicacion string
	Empresa   Empresa `gorm:"type:text;not null;default:'Telecom';index"`
	Estado    string  `gorm:"not null;default:'activa'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Maquina) TableName() string { return "maquinas" }
