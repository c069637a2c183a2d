package notifier

import (
	"context"

	"github.com/shenikar/rescue_status_engine/internal/models"
)

// StatusChangedEvent — событие смены статуса человека, рассылаемое наблюдателям.
// Timestamp — unix-время в секундах с дробной частью.
type StatusChangedEvent struct {
	PersonID  string        `json:"person_id"`
	Role      models.Role   `json:"role"`
	OldStatus models.Status `json:"old_status"`
	NewStatus models.Status `json:"new_status"`
	Reason    string        `json:"reason"`
	Timestamp float64       `json:"timestamp"`
}

// Publisher - интерфейс для публикации событий смены статуса
type Publisher interface {
	Publish(ctx context.Context, event StatusChangedEvent) error
}
