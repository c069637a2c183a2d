package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/rescue_status_engine/internal/models"
	"github.com/shenikar/rescue_status_engine/internal/priority"
	"github.com/sirupsen/logrus"
)

// PersonRepository определяет контракт для работы с бд людей
type PersonRepository interface {
	Create(ctx context.Context, person *models.Person) error
	GetByID(ctx context.Context, id string) (*models.Person, error)
	SaveLocation(ctx context.Context, personID string, sample models.LocationSample) error
	SaveCall(ctx context.Context, personID string, call models.CallRecord) error
}

// SnapshotReader читает снимки состояния и справочные данные для скоринга
type SnapshotReader interface {
	GetSnapshot(ctx context.Context, personID string) (*models.PersonSnapshot, error)
	GetActiveDangerZones(ctx context.Context) ([]models.DangerZone, error)
}

// PersonService определяет контракт для бизнес-логики людей
type PersonService interface {
	Register(ctx context.Context, id string, role models.Role) (*models.Person, error)
	Get(ctx context.Context, id string) (*models.Person, error)
	SaveCall(ctx context.Context, personID string, call models.CallRecord) error
	SaveLocation(ctx context.Context, personID string, sample models.LocationSample) error
	PriorityScore(ctx context.Context, personID string) (int, error)
}

type personService struct {
	persons   PersonRepository
	snapshots SnapshotReader
	scorer    *priority.Scorer
	trigger   InferenceTrigger
	logger    *logrus.Logger
}

func NewPersonService(persons PersonRepository, snapshots SnapshotReader, scorer *priority.Scorer, trigger InferenceTrigger, logger *logrus.Logger) PersonService {
	return &personService{
		persons:   persons,
		snapshots: snapshots,
		scorer:    scorer,
		trigger:   trigger,
		logger:    logger,
	}
}

// Register регистрирует человека со стартовым статусом его роли.
// Идемпотентна: повторная регистрация возвращает уже существующую запись.
func (s *personService) Register(ctx context.Context, id string, role models.Role) (*models.Person, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "person",
		"method":    "Register",
		"person_id": id,
	})

	existing, err := s.persons.GetByID(ctx, id)
	if err == nil {
		if existing.Role != role {
			log.Warn("Person already registered with a different role")
			return nil, fmt.Errorf("service: person %s: %w", id, ErrRoleMismatch)
		}
		log.Info("Person already registered")
		return existing, nil
	}
	// Создаем только когда человека точно нет: транзиентный сбой бд не повод
	// для повторной вставки
	if !errors.Is(err, ErrPersonNotFound) {
		log.WithError(err).Error("Failed to check existing person")
		return nil, fmt.Errorf("service: could not check person %s: %w", id, err)
	}

	person := &models.Person{
		ID:     id,
		Role:   role,
		Status: models.InitialStatus(role),
	}
	if err := s.persons.Create(ctx, person); err != nil {
		log.WithError(err).Error("Failed to create person in repository")
		return nil, fmt.Errorf("service: could not register person: %w", err)
	}

	log.WithField("role", role).Info("Person registered successfully")
	return person, nil
}

// Get возвращает человека по ID
func (s *personService) Get(ctx context.Context, id string) (*models.Person, error) {
	person, err := s.persons.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrPersonNotFound) {
			return nil, fmt.Errorf("service: person %s: %w", id, ErrPersonNotFound)
		}
		return nil, fmt.Errorf("service: could not load person %s: %w", id, err)
	}
	return person, nil
}

// SaveCall сохраняет звонок и запускает пересчет статуса
func (s *personService) SaveCall(ctx context.Context, personID string, call models.CallRecord) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "person",
		"method":    "SaveCall",
		"person_id": personID,
		"call_id":   call.ID,
	})

	if _, err := s.persons.GetByID(ctx, personID); err != nil {
		if errors.Is(err, ErrPersonNotFound) {
			return fmt.Errorf("service: person %s: %w", personID, ErrPersonNotFound)
		}
		return fmt.Errorf("service: could not load person %s: %w", personID, err)
	}

	if err := s.persons.SaveCall(ctx, personID, call); err != nil {
		log.WithError(err).Error("Failed to save call in repository")
		return fmt.Errorf("service: could not save call: %w", err)
	}

	log.Info("Call saved successfully")
	s.trigger.OnCallSaved(personID)
	return nil
}

// SaveLocation сохраняет GPS-точку и запускает пересчет статуса
func (s *personService) SaveLocation(ctx context.Context, personID string, sample models.LocationSample) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "person",
		"method":    "SaveLocation",
		"person_id": personID,
	})

	if _, err := s.persons.GetByID(ctx, personID); err != nil {
		if errors.Is(err, ErrPersonNotFound) {
			return fmt.Errorf("service: person %s: %w", personID, ErrPersonNotFound)
		}
		return fmt.Errorf("service: could not load person %s: %w", personID, err)
	}

	if err := s.persons.SaveLocation(ctx, personID, sample); err != nil {
		log.WithError(err).Error("Failed to save location in repository")
		return fmt.Errorf("service: could not save location: %w", err)
	}

	s.trigger.OnLocationSaved(personID)
	return nil
}

// PriorityScore считает приоритет гражданского по текущему снимку состояния
func (s *personService) PriorityScore(ctx context.Context, personID string) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "person",
		"method":    "PriorityScore",
		"person_id": personID,
	})

	snapshot, err := s.snapshots.GetSnapshot(ctx, personID)
	if err != nil {
		log.WithError(err).Error("Failed to load person snapshot")
		return 0, fmt.Errorf("service: could not load snapshot for %s: %w", personID, err)
	}
	if snapshot == nil {
		return 0, fmt.Errorf("service: person %s: %w", personID, ErrPersonNotFound)
	}
	if snapshot.Role != models.RoleCivilian {
		return 0, fmt.Errorf("service: person %s is not a civilian: %w", personID, ErrRoleMismatch)
	}

	zones, err := s.snapshots.GetActiveDangerZones(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load active danger zones")
		return 0, fmt.Errorf("service: could not load danger zones: %w", err)
	}

	return s.scorer.Score(snapshot, zones), nil
}
