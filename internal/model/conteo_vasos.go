package model

import (
	"time"

	"github.com/google/uuid"
)

// ConteoVasos is a cup-count reading taken at a machine. Independent of the
// stock ledger — plain CRUD feeding the dashboard statistics.
type ConteoVasos struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MaquinaID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CantidadVasos int       `gorm:"not null"`
	FechaConteo   time.Time `gorm:"not null;index"`
	Observaciones *string
	Empresa       Empresa `gorm:"type:text;not null;default:'Telecom';index"`

	Maquina *Maquina `gorm:"foreignKey:MaquinaID"`
}

func (ConteoVasos) TableName() string { return "conteos_vasos" }
