package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/rescue_status_engine/internal/models"
	"github.com/sirupsen/logrus"
)

// AssignmentRepository определяет контракт для работы с бд назначений
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *models.Assignment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Assignment, error)
	Complete(ctx context.Context, id uuid.UUID, completedAt time.Time) error
	ActiveFor(ctx context.Context, personID string) (*models.Assignment, error)
	List(ctx context.Context, activeOnly bool) ([]*models.Assignment, error)
}

// InferenceTrigger — хуки диспетчера инференса. Сервисы дергают их после
// успешной записи, чтобы движок пересчитал статусы затронутых людей.
type InferenceTrigger interface {
	OnCallSaved(personID string)
	OnLocationSaved(personID string)
	OnAssignmentChanged(civilianID, responderID string)
}

// AssignmentService определяет контракт для бизнес-логики диспетчеризации
type AssignmentService interface {
	Create(ctx context.Context, civilianID, responderID string) (*models.Assignment, error)
	Complete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*models.Assignment, error)
	List(ctx context.Context, activeOnly bool) ([]*models.Assignment, error)
	ActiveFor(ctx context.Context, personID string) (*models.Assignment, error)
}

type assignmentService struct {
	assignments AssignmentRepository
	persons     PersonRepository
	trigger     InferenceTrigger
	logger      *logrus.Logger
}

func NewAssignmentService(assignments AssignmentRepository, persons PersonRepository, trigger InferenceTrigger, logger *logrus.Logger) AssignmentService {
	return &assignmentService{
		assignments: assignments,
		persons:     persons,
		trigger:     trigger,
		logger:      logger,
	}
}

// Create создает назначение "гражданский — спасатель".
// Инвариант: не более одного активного назначения на каждого участника.
func (s *assignmentService) Create(ctx context.Context, civilianID, responderID string) (*models.Assignment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "assignment",
		"method":       "Create",
		"civilian_id":  civilianID,
		"responder_id": responderID,
	})
	log.Info("Attempting to create a new assignment")

	if err := s.checkRole(ctx, civilianID, models.RoleCivilian); err != nil {
		return nil, err
	}
	if err := s.checkRole(ctx, responderID, models.RoleResponder); err != nil {
		return nil, err
	}

	// Проверка конфликта активных назначений у обоих участников
	for _, personID := range []string{civilianID, responderID} {
		active, err := s.assignments.ActiveFor(ctx, personID)
		if err != nil {
			log.WithError(err).Error("Failed to check active assignment")
			return nil, fmt.Errorf("service: could not check active assignment for %s: %w", personID, err)
		}
		if active != nil {
			log.WithField("conflict_person_id", personID).Warn("Person already has an active assignment")
			return nil, fmt.Errorf("service: person %s: %w", personID, ErrActiveAssignmentExists)
		}
	}

	assignment := &models.Assignment{
		CivilianID:  civilianID,
		ResponderID: responderID,
		AssignedAt:  time.Now(),
		IsActive:    true,
	}
	if err := s.assignments.Create(ctx, assignment); err != nil {
		log.WithError(err).Error("Failed to create assignment in repository")
		return nil, fmt.Errorf("service: could not create assignment: %w", err)
	}

	log.WithField("assignment_id", assignment.ID).Info("Assignment created successfully")

	// Оба участника пересчитываются: у каждого могло открыться свое ребро
	s.trigger.OnAssignmentChanged(civilianID, responderID)
	return assignment, nil
}

// Complete переводит назначение в завершенные. Идемпотентна: повторное
// завершение уже завершенного назначения — no-op без побочных эффектов.
func (s *assignmentService) Complete(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "assignment",
		"method":        "Complete",
		"assignment_id": id,
	})
	log.Info("Attempting to complete assignment")

	assignment, err := s.assignments.GetByID(ctx, id)
	if err != nil {
		// Транзиентный сбой бд не превращается в "не найдено"
		if errors.Is(err, ErrAssignmentNotFound) {
			log.WithError(err).Warn("Attempted to complete a non-existent assignment")
			return fmt.Errorf("service: assignment %s: %w", id, ErrAssignmentNotFound)
		}
		log.WithError(err).Error("Failed to load assignment")
		return fmt.Errorf("service: could not load assignment %s: %w", id, err)
	}

	if !assignment.IsActive {
		log.Info("Assignment already completed, nothing to do")
		return nil
	}

	if err := s.assignments.Complete(ctx, id, time.Now()); err != nil {
		log.WithError(err).Error("Failed to complete assignment in repository")
		return fmt.Errorf("service: could not complete assignment: %w", err)
	}

	log.Info("Assignment completed successfully")
	s.trigger.OnAssignmentChanged(assignment.CivilianID, assignment.ResponderID)
	return nil
}

// Get возвращает назначение по ID
func (s *assignmentService) Get(ctx context.Context, id uuid.UUID) (*models.Assignment, error) {
	assignment, err := s.assignments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrAssignmentNotFound) {
			return nil, fmt.Errorf("service: assignment %s: %w", id, ErrAssignmentNotFound)
		}
		return nil, fmt.Errorf("service: could not load assignment %s: %w", id, err)
	}
	return assignment, nil
}

// List возвращает назначения, опционально только активные
func (s *assignmentService) List(ctx context.Context, activeOnly bool) ([]*models.Assignment, error) {
	assignments, err := s.assignments.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("service: could not list assignments: %w", err)
	}
	return assignments, nil
}

// ActiveFor возвращает активное назначение участника или nil
func (s *assignmentService) ActiveFor(ctx context.Context, personID string) (*models.Assignment, error) {
	assignment, err := s.assignments.ActiveFor(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get active assignment for %s: %w", personID, err)
	}
	return assignment, nil
}

// checkRole проверяет, что человек существует и имеет ожидаемую роль
func (s *assignmentService) checkRole(ctx context.Context, personID string, role models.Role) error {
	person, err := s.persons.GetByID(ctx, personID)
	if err != nil {
		if errors.Is(err, ErrPersonNotFound) {
			return fmt.Errorf("service: person %s: %w", personID, ErrPersonNotFound)
		}
		return fmt.Errorf("service: could not load person %s: %w", personID, err)
	}
	if person.Role != role {
		return fmt.Errorf("service: person %s is not a %s: %w", personID, role, ErrRoleMismatch)
	}
	return nil
}
