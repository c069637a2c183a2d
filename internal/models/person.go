package models

import (
	"time"
)

// Role определяет тип отслеживаемого человека
type Role string

const (
	RoleCivilian  Role = "civilian"
	RoleResponder Role = "responder"
)

// Valid проверяет, что роль входит в закрытый набор
func (r Role) Valid() bool {
	return r == RoleCivilian || r == RoleResponder
}

// Status — операционный статус человека. Допустимые значения зависят от роли.
type Status string

// Статусы гражданских: строго линейный поток без обратных переходов
const (
	StatusNormal      Status = "normal"
	StatusNeedsHelp   Status = "needs_help"
	StatusHelpComing  Status = "help_coming"
	StatusAtIncident  Status = "at_incident"
	StatusInTransport Status = "in_transport"
	StatusAtHospital  Status = "at_hospital"
)

// Статусы спасателей: цикл через docked
const (
	StatusRoaming           Status = "roaming"
	StatusDocked            Status = "docked"
	StatusEnRouteToCivilian Status = "en_route_to_civ"
	StatusOnScene           Status = "on_scene"
	StatusEnRouteToHospital Status = "en_route_to_hospital"
)

var civilianStatuses = map[Status]struct{}{
	StatusNormal:      {},
	StatusNeedsHelp:   {},
	StatusHelpComing:  {},
	StatusAtIncident:  {},
	StatusInTransport: {},
	StatusAtHospital:  {},
}

var responderStatuses = map[Status]struct{}{
	StatusRoaming:           {},
	StatusDocked:            {},
	StatusEnRouteToCivilian: {},
	StatusOnScene:           {},
	StatusEnRouteToHospital: {},
}

// ValidStatus проверяет, что статус принадлежит набору статусов роли
func ValidStatus(role Role, status Status) bool {
	switch role {
	case RoleCivilian:
		_, ok := civilianStatuses[status]
		return ok
	case RoleResponder:
		_, ok := responderStatuses[status]
		return ok
	}
	return false
}

// InitialStatus возвращает стартовый статус для роли
func InitialStatus(role Role) Status {
	if role == RoleResponder {
		return StatusDocked
	}
	return StatusNormal
}

// LocationSample — одна GPS-точка из истории перемещений человека
type LocationSample struct {
	Lat            float64   `json:"lat"`
	Lon            float64   `json:"lon"`
	AccuracyMeters float64   `json:"accuracy"`
	Timestamp      time.Time `json:"timestamp"`
}

// CallRecord — сохраненный звонок с транскриптом и извлеченными тегами
type CallRecord struct {
	ID         string    `json:"id"`
	Transcript string    `json:"transcript"`
	Tags       []string  `json:"tags"`
	StartedAt  time.Time `json:"started_at"`
	EndedAt    time.Time `json:"ended_at"`
}

// Person — отслеживаемый человек (гражданский или спасатель)
type Person struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PersonSnapshot — снимок состояния человека, который читает движок инференса.
// Locations отсортированы по времени по возрастанию.
type PersonSnapshot struct {
	ID         string
	Role       Role
	Status     Status
	Locations  []LocationSample
	LatestCall *CallRecord
	Assignment *Assignment
}

// LatestLocation возвращает последнюю точку истории или nil, если истории нет
func (s *PersonSnapshot) LatestLocation() *LocationSample {
	if len(s.Locations) == 0 {
		return nil
	}
	return &s.Locations[len(s.Locations)-1]
}
