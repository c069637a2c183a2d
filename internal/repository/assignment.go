package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/rescue_status_engine/internal/models"
	"github.com/shenikar/rescue_status_engine/internal/service"
)

type AssignmentRepository struct {
	db *pgxpool.Pool
}

func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create создает новую запись о назначении в бд
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	query := `
		INSERT INTO assignments (civilian_id, responder_id, assigned_at, is_active)
		VALUES ($1, $2, $3, $4) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		assignment.CivilianID,
		assignment.ResponderID,
		assignment.AssignedAt,
		assignment.IsActive,
	).Scan(&assignment.ID)
	if err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}
	return nil
}

// GetByID возвращает назначение по его UUID
func (r *AssignmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Assignment, error) {
	assignment := &models.Assignment{}
	query := `
		SELECT id, civilian_id, responder_id, assigned_at, completed_at, is_active
		FROM assignments
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&assignment.ID,
		&assignment.CivilianID,
		&assignment.ResponderID,
		&assignment.AssignedAt,
		&assignment.CompletedAt,
		&assignment.IsActive,
	)
	if err != nil {
		// Отсутствие строки отличимо от сбоя соединения: сервис отображает
		// первое в 404, второе — в 500
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("assignment with id %s: %w", id, service.ErrAssignmentNotFound)
		}
		return nil, fmt.Errorf("failed to get assignment by id: %w", err)
	}
	return assignment, nil
}

// Complete помечает назначение завершенным. Уже завершенное назначение
// повторно не трогается: WHERE is_active = true делает запись идемпотентной.
func (r *AssignmentRepository) Complete(ctx context.Context, id uuid.UUID, completedAt time.Time) error {
	query := `
		UPDATE assignments SET
			is_active = false,
			completed_at = $1
		WHERE id = $2 AND is_active = true;
	`
	if _, err := r.db.Exec(ctx, query, completedAt, id); err != nil {
		return fmt.Errorf("failed to complete assignment: %w", err)
	}
	return nil
}

// ActiveFor возвращает активное назначение участника или nil, если его нет
func (r *AssignmentRepository) ActiveFor(ctx context.Context, personID string) (*models.Assignment, error) {
	assignment := &models.Assignment{}
	query := `
		SELECT id, civilian_id, responder_id, assigned_at, completed_at, is_active
		FROM assignments
		WHERE (civilian_id = $1 OR responder_id = $1) AND is_active = true
		LIMIT 1;
	`
	err := r.db.QueryRow(ctx, query, personID).Scan(
		&assignment.ID,
		&assignment.CivilianID,
		&assignment.ResponderID,
		&assignment.AssignedAt,
		&assignment.CompletedAt,
		&assignment.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active assignment for person: %w", err)
	}
	return assignment, nil
}

// List возвращает назначения, при activeOnly — только активные
func (r *AssignmentRepository) List(ctx context.Context, activeOnly bool) ([]*models.Assignment, error) {
	query := `
		SELECT id, civilian_id, responder_id, assigned_at, completed_at, is_active
		FROM assignments
		WHERE ($1 = false OR is_active = true)
		ORDER BY assigned_at DESC;
	`
	rows, err := r.db.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	assignments := make([]*models.Assignment, 0)
	for rows.Next() {
		assignment := &models.Assignment{}
		err := rows.Scan(
			&assignment.ID,
			&assignment.CivilianID,
			&assignment.ResponderID,
			&assignment.AssignedAt,
			&assignment.CompletedAt,
			&assignment.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment row: %w", err)
		}
		assignments = append(assignments, assignment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error assignments iteration: %w", err)
	}
	return assignments, nil
}
