package v1

import (
	"time"

	"github.com/google/uuid"
)

// RegisterPersonRequest DTO для регистрации человека
// @Description DTO для регистрации человека
type RegisterPersonRequest struct {
	ID   string `json:"id" validate:"required,min=1,max=64"`
	Role string `json:"role" validate:"required,oneof=civilian responder"`
}

// PersonResponse DTO для ответа с информацией о человеке
// @Description DTO для ответа с информацией о человеке
type PersonResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SaveCallRequest DTO для сохранения звонка
// @Description DTO для сохранения звонка с транскриптом и тегами
type SaveCallRequest struct {
	ID         string    `json:"id" validate:"required"`
	Transcript string    `json:"transcript"`
	Tags       []string  `json:"tags,omitempty"`
	StartedAt  time.Time `json:"started_at" validate:"required"`
	EndedAt    time.Time `json:"ended_at" validate:"required"`
}

// SaveLocationRequest DTO для сохранения GPS-точки
// @Description DTO для сохранения GPS-точки
type SaveLocationRequest struct {
	Latitude       float64   `json:"latitude" validate:"required,latitude"`
	Longitude      float64   `json:"longitude" validate:"required,longitude"`
	AccuracyMeters float64   `json:"accuracy_meters" validate:"gte=0"`
	Timestamp      time.Time `json:"timestamp" validate:"required"`
}

// CreateAssignmentRequest DTO для создания назначения
// @Description DTO для создания назначения "гражданский — спасатель"
type CreateAssignmentRequest struct {
	CivilianID  string `json:"civilian_id" validate:"required"`
	ResponderID string `json:"responder_id" validate:"required"`
}

// AssignmentResponse DTO для ответа с информацией о назначении
// @Description DTO для ответа с информацией о назначении
type AssignmentResponse struct {
	ID          uuid.UUID  `json:"id"`
	CivilianID  string     `json:"civilian_id"`
	ResponderID string     `json:"responder_id"`
	AssignedAt  time.Time  `json:"assigned_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	IsActive    bool       `json:"is_active"`
}

// PriorityResponse DTO для ответа с оценкой срочности
// @Description DTO для ответа с оценкой срочности гражданского
type PriorityResponse struct {
	PersonID string `json:"person_id"`
	Score    int    `json:"score"`
}
