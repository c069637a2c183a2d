package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/rescue_status_engine/internal/models"
	"github.com/shenikar/rescue_status_engine/internal/service"
)

// locationHistoryWindow ограничивает глубину истории GPS-точек в снапшоте.
// Все окна движка короче, тащить более старые точки нет смысла.
const locationHistoryWindow = 15 * time.Minute

type PersonRepository struct {
	db *pgxpool.Pool
}

func NewPersonRepository(db *pgxpool.Pool) *PersonRepository {
	return &PersonRepository{db: db}
}

// Create создает новую запись о человеке в бд
func (r *PersonRepository) Create(ctx context.Context, person *models.Person) error {
	query := `
		INSERT INTO persons (id, role, status)
		VALUES ($1, $2, $3) RETURNING created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		person.ID,
		person.Role,
		person.Status,
	).Scan(&person.CreatedAt, &person.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create person: %w", err)
	}
	return nil
}

// GetByID возвращает человека по его идентификатору
func (r *PersonRepository) GetByID(ctx context.Context, id string) (*models.Person, error) {
	person := &models.Person{}
	query := `
		SELECT id, role, status, created_at, updated_at
		FROM persons
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&person.ID,
		&person.Role,
		&person.Status,
		&person.CreatedAt,
		&person.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("person with id %s: %w", id, service.ErrPersonNotFound)
		}
		return nil, fmt.Errorf("failed to get person by id: %w", err)
	}
	return person, nil
}

// SetStatus записывает новый статус человека
func (r *PersonRepository) SetStatus(ctx context.Context, personID string, status models.Status) error {
	query := `
		UPDATE persons SET
			status = $1,
			updated_at = NOW()
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, status, personID)
	if err != nil {
		return fmt.Errorf("failed to set person status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("person with id %s not found for status update", personID)
	}
	return nil
}

// ListPersonIDs возвращает идентификаторы всех людей для полного прохода
func (r *PersonRepository) ListPersonIDs(ctx context.Context) ([]string, error) {
	query := `SELECT id FROM persons ORDER BY id;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list person ids: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan person id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error person ids iteration: %w", err)
	}
	return ids, nil
}

// SaveLocation сохраняет GPS-точку человека
func (r *PersonRepository) SaveLocation(ctx context.Context, personID string, sample models.LocationSample) error {
	query := `
		INSERT INTO location_samples (person_id, location, accuracy_meters, recorded_at)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326), $4, $5);
	`
	_, err := r.db.Exec(ctx, query,
		personID,
		sample.Lon,
		sample.Lat,
		sample.AccuracyMeters,
		sample.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to save location sample: %w", err)
	}
	return nil
}

// SaveCall сохраняет звонок с транскриптом и тегами
func (r *PersonRepository) SaveCall(ctx context.Context, personID string, call models.CallRecord) error {
	query := `
		INSERT INTO calls (id, person_id, transcript, tags, started_at, ended_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.db.Exec(ctx, query,
		call.ID,
		personID,
		call.Transcript,
		call.Tags,
		call.StartedAt,
		call.EndedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save call: %w", err)
	}
	return nil
}

// GetSnapshot собирает снимок состояния человека для движка инференса.
// Неизвестный человек — (nil, nil): для движка это не ошибка, а ложное условие.
func (r *PersonRepository) GetSnapshot(ctx context.Context, personID string) (*models.PersonSnapshot, error) {
	snap := &models.PersonSnapshot{}
	personQuery := `
		SELECT id, role, status
		FROM persons
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, personQuery, personID).Scan(&snap.ID, &snap.Role, &snap.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get person for snapshot: %w", err)
	}

	locations, err := r.recentLocations(ctx, personID)
	if err != nil {
		return nil, err
	}
	snap.Locations = locations

	latestCall, err := r.latestCall(ctx, personID)
	if err != nil {
		return nil, err
	}
	snap.LatestCall = latestCall

	assignment, err := r.activeAssignment(ctx, personID)
	if err != nil {
		return nil, err
	}
	snap.Assignment = assignment

	return snap, nil
}

// recentLocations возвращает точки за окно истории, отсортированные по времени по возрастанию
func (r *PersonRepository) recentLocations(ctx context.Context, personID string) ([]models.LocationSample, error) {
	query := `
		SELECT
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			accuracy_meters,
			recorded_at
		FROM location_samples
		WHERE person_id = $1 AND recorded_at >= NOW() - ($2 * INTERVAL '1 second')
		ORDER BY recorded_at ASC;
	`
	rows, err := r.db.Query(ctx, query, personID, locationHistoryWindow.Seconds())
	if err != nil {
		return nil, fmt.Errorf("failed to get recent locations: %w", err)
	}
	defer rows.Close()

	samples := make([]models.LocationSample, 0)
	for rows.Next() {
		var sample models.LocationSample
		if err := rows.Scan(&sample.Lat, &sample.Lon, &sample.AccuracyMeters, &sample.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan location sample: %w", err)
		}
		samples = append(samples, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error locations iteration: %w", err)
	}
	return samples, nil
}

func (r *PersonRepository) latestCall(ctx context.Context, personID string) (*models.CallRecord, error) {
	call := &models.CallRecord{}
	query := `
		SELECT id, transcript, tags, started_at, ended_at
		FROM calls
		WHERE person_id = $1
		ORDER BY ended_at DESC
		LIMIT 1;
	`
	err := r.db.QueryRow(ctx, query, personID).Scan(
		&call.ID,
		&call.Transcript,
		&call.Tags,
		&call.StartedAt,
		&call.EndedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest call: %w", err)
	}
	return call, nil
}

func (r *PersonRepository) activeAssignment(ctx context.Context, personID string) (*models.Assignment, error) {
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
		return nil, fmt.Errorf("failed to get active assignment: %w", err)
	}
	return assignment, nil
}
