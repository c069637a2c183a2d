package models

import (
	"github.com/google/uuid"
)

// Hospital — госпиталь, к которому привязаны проверки прибытия и докования
type Hospital struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Lat  float64   `json:"lat"`
	Lon  float64   `json:"lon"`
}

// DangerZone — геозона опасности с уровнем серьезности от 1 до 5
type DangerZone struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Lat          float64   `json:"lat"`
	Lon          float64   `json:"lon"`
	RadiusMeters int       `json:"radius_meters"`
	Severity     int       `json:"severity"`
	IsActive     bool      `json:"is_active"`
}
