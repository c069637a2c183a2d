package inference

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/rescue_status_engine/internal/config"
	"github.com/shenikar/rescue_status_engine/internal/models"
	"github.com/shenikar/rescue_status_engine/internal/notifier"
	"github.com/shenikar/rescue_status_engine/internal/priority"
	"github.com/sirupsen/logrus"
)

// Repository определяет контракт чтения снапшотов и записи статусов.
// Движок никогда не пишет ничего, кроме статуса и авто-завершения назначения.
type Repository interface {
	GetSnapshot(ctx context.Context, personID string) (*models.PersonSnapshot, error)
	SetStatus(ctx context.Context, personID string, status models.Status) error
	ListPersonIDs(ctx context.Context) ([]string, error)
	GetHospitals(ctx context.Context) ([]models.Hospital, error)
	GetActiveDangerZones(ctx context.Context) ([]models.DangerZone, error)
	CompleteAssignment(ctx context.Context, assignmentID uuid.UUID) error
}

// transition — одно ребро конечного автомата с машиночитаемой причиной
type transition struct {
	to     models.Status
	reason string
}

// Result — итог одного прохода инференса для одного человека
type Result struct {
	// Changes — применённые переходы в порядке применения
	Changes []notifier.StatusChangedEvent
	// FollowUps — id людей, которым нужен отдельный проход из-за побочных
	// эффектов этого (например, гражданский после авто-завершения назначения)
	FollowUps []string
}

// Engine пересчитывает статус человека по его текущему снапшоту.
// Каждый вызов выполняет полный пересчет с нуля, инкрементального состояния нет.
type Engine struct {
	repo           Repository
	publisher      notifier.Publisher
	priorityTables priority.KeywordTables
	cfg            config.InferenceConfig
	logger         *logrus.Logger

	// now вынесено в поле ради детерминированных тестов
	now func() time.Time
}

// NewEngine создает движок инференса. Все пороги приходят в cfg,
// в логике переходов числовых литералов нет.
func NewEngine(repo Repository, publisher notifier.Publisher, priorityTables priority.KeywordTables, cfg config.InferenceConfig, logger *logrus.Logger) *Engine {
	return &Engine{
		repo:           repo,
		publisher:      publisher,
		priorityTables: priorityTables,
		cfg:            cfg,
		logger:         logger,
		now:            time.Now,
	}
}

// maxCatchUpSteps ограничивает догоняющий цикл: длиннее самой длинной цепочки
// ребер переходов быть не может
const maxCatchUpSteps = 6

// InferPerson пересчитывает статус человека. За один вызов может быть применено
// несколько ребер подряд ("догон" при одновременно истинных условиях), но каждый
// шаг следует ровно одному документированному ребру и публикует отдельное
// событие. Отсутствие данных не является ошибкой: условие просто ложно.
func (e *Engine) InferPerson(ctx context.Context, personID string) (*Result, error) {
	log := e.logger.WithFields(logrus.Fields{
		"service":   "inference",
		"person_id": personID,
	})

	result := &Result{}
	for step := 0; step < maxCatchUpSteps; step++ {
		snap, err := e.repo.GetSnapshot(ctx, personID)
		if err != nil {
			return result, fmt.Errorf("inference: could not load snapshot for %s: %w", personID, err)
		}
		if snap == nil {
			return result, nil
		}

		var tr *transition
		var followUps []string
		switch snap.Role {
		case models.RoleCivilian:
			tr, err = e.nextCivilianStatus(ctx, snap)
		case models.RoleResponder:
			tr, followUps, err = e.nextResponderStatus(ctx, snap)
		default:
			return result, fmt.Errorf("inference: unknown role %q for person %s", snap.Role, personID)
		}
		if err != nil {
			return result, err
		}
		if tr == nil {
			// Ни одно условие не выполнено — неподвижная точка, идемпотентный no-op
			return result, nil
		}

		if !models.ValidStatus(snap.Role, tr.to) {
			return result, fmt.Errorf("inference: status %q is not valid for role %q", tr.to, snap.Role)
		}

		if err := e.repo.SetStatus(ctx, personID, tr.to); err != nil {
			return result, fmt.Errorf("inference: could not persist status for %s: %w", personID, err)
		}

		event := notifier.StatusChangedEvent{
			PersonID:  personID,
			Role:      snap.Role,
			OldStatus: snap.Status,
			NewStatus: tr.to,
			Reason:    tr.reason,
			Timestamp: float64(e.now().UnixNano()) / float64(time.Second),
		}
		// Доставка события best-effort: сбой публикации не откатывает статус
		if err := e.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Warn("Failed to publish status change event")
		}

		log.WithFields(logrus.Fields{
			"old_status": snap.Status,
			"new_status": tr.to,
			"reason":     tr.reason,
		}).Info("Status transition applied")

		result.Changes = append(result.Changes, event)
		result.FollowUps = append(result.FollowUps, followUps...)
	}

	return result, nil
}

// partnerSnapshot возвращает снапшот второго участника активного назначения
// или nil, если назначения нет либо партнер не найден
func (e *Engine) partnerSnapshot(ctx context.Context, snap *models.PersonSnapshot) (*models.PersonSnapshot, error) {
	if snap.Assignment == nil {
		return nil, nil
	}
	partner, err := e.repo.GetSnapshot(ctx, snap.Assignment.OtherParty(snap.ID))
	if err != nil {
		return nil, fmt.Errorf("inference: could not load partner snapshot: %w", err)
	}
	return partner, nil
}
