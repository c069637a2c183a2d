package models

import (
	"time"

	"github.com/google/uuid"
)

// Assignment — пара "гражданский — спасатель", созданная диспетчером.
// У каждого человека может быть не более одного активного назначения.
type Assignment struct {
	ID          uuid.UUID  `json:"id"`
	CivilianID  string     `json:"civilian_id"`
	ResponderID string     `json:"responder_id"`
	AssignedAt  time.Time  `json:"assigned_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	IsActive    bool       `json:"is_active"`
}

// OtherParty возвращает ID второго участника назначения
func (a *Assignment) OtherParty(personID string) string {
	if a.CivilianID == personID {
		return a.ResponderID
	}
	return a.CivilianID
}
