package model

import (
	"time"

	"github.com/google/uuid"
)

// CargaMaquina records that a quantity of an article was loaded into a
// machine, debiting the article's stock. Rows are immutable: the only write
// after creation is a full delete, which credits the stock back.
type CargaMaquina struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MaquinaID       uuid.UUID `gorm:"type:uuid;not null;index"`
	ArticuloID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CantidadCargada int       `gorm:"not null"`
	FechaCarga      time.Time `gorm:"not null;index"`
	Usuario         string
	Observaciones   string

	Maquina  *Maquina  `gorm:"foreignKey:MaquinaID"`
	Articulo *Articulo `gorm:"foreignKey:ArticuloID"`
}

func (CargaMaquina) TableName() string { return "cargas_maquinas" }
