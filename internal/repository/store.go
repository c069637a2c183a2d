package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/rescue_status_engine/internal/models"
)

// InferenceStore собирает репозитории в единую точку чтения и записи для
// движка инференса: снапшоты и статусы людей, справочники, авто-завершение
// назначений.
type InferenceStore struct {
	persons     *PersonRepository
	assignments *AssignmentRepository
	reference   *ReferenceRepository
}

func NewInferenceStore(persons *PersonRepository, assignments *AssignmentRepository, reference *ReferenceRepository) *InferenceStore {
	return &InferenceStore{
		persons:     persons,
		assignments: assignments,
		reference:   reference,
	}
}

func (s *InferenceStore) GetSnapshot(ctx context.Context, personID string) (*models.PersonSnapshot, error) {
	return s.persons.GetSnapshot(ctx, personID)
}

func (s *InferenceStore) SetStatus(ctx context.Context, personID string, status models.Status) error {
	return s.persons.SetStatus(ctx, personID, status)
}

func (s *InferenceStore) ListPersonIDs(ctx context.Context) ([]string, error) {
	return s.persons.ListPersonIDs(ctx)
}

func (s *InferenceStore) GetHospitals(ctx context.Context) ([]models.Hospital, error) {
	return s.reference.GetHospitals(ctx)
}

func (s *InferenceStore) GetActiveDangerZones(ctx context.Context) ([]models.DangerZone, error) {
	return s.reference.GetActiveDangerZones(ctx)
}

func (s *InferenceStore) CompleteAssignment(ctx context.Context, assignmentID uuid.UUID) error {
	return s.assignments.Complete(ctx, assignmentID, time.Now())
}
