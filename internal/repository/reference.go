package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/rescue_status_engine/internal/models"
)

const (
	hospitalsCacheKey   = "ref:hospitals"
	dangerZonesCacheKey = "ref:danger_zones:active"
	referenceCacheTTL   = 5 * time.Minute
)

// ReferenceRepository читает справочники госпиталей и зон опасности.
// Справочники меняются редко, поэтому кэшируются в Redis целиком.
type ReferenceRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewReferenceRepository(db *pgxpool.Pool, redisClient *redis.Client) *ReferenceRepository {
	return &ReferenceRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// GetHospitals возвращает все госпитали в стабильном порядке
func (r *ReferenceRepository) GetHospitals(ctx context.Context) ([]models.Hospital, error) {
	var cached []models.Hospital
	if ok, err := r.fromCache(ctx, hospitalsCacheKey, &cached); err == nil && ok {
		return cached, nil
	}

	query := `
		SELECT
			id,
			name,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude
		FROM hospitals
		ORDER BY created_at, id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get hospitals: %w", err)
	}
	defer rows.Close()

	hospitals := make([]models.Hospital, 0)
	for rows.Next() {
		var hospital models.Hospital
		if err := rows.Scan(&hospital.ID, &hospital.Name, &hospital.Lat, &hospital.Lon); err != nil {
			return nil, fmt.Errorf("failed to scan hospital row: %w", err)
		}
		hospitals = append(hospitals, hospital)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error hospitals iteration: %w", err)
	}

	r.toCache(ctx, hospitalsCacheKey, hospitals)
	return hospitals, nil
}

// GetActiveDangerZones возвращает активные зоны опасности в стабильном порядке
func (r *ReferenceRepository) GetActiveDangerZones(ctx context.Context) ([]models.DangerZone, error) {
	var cached []models.DangerZone
	if ok, err := r.fromCache(ctx, dangerZonesCacheKey, &cached); err == nil && ok {
		return cached, nil
	}

	query := `
		SELECT
			id,
			name,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			radius_meters,
			severity,
			is_active
		FROM danger_zones
		WHERE is_active = true
		ORDER BY created_at, id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get active danger zones: %w", err)
	}
	defer rows.Close()

	zones := make([]models.DangerZone, 0)
	for rows.Next() {
		var zone models.DangerZone
		err := rows.Scan(
			&zone.ID,
			&zone.Name,
			&zone.Lat,
			&zone.Lon,
			&zone.RadiusMeters,
			&zone.Severity,
			&zone.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan danger zone row: %w", err)
		}
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error danger zones iteration: %w", err)
	}

	r.toCache(ctx, dangerZonesCacheKey, zones)
	return zones, nil
}

// InvalidateCache сбрасывает оба справочника из Redis
func (r *ReferenceRepository) InvalidateCache(ctx context.Context) error {
	if err := r.redisClient.Del(ctx, hospitalsCacheKey, dangerZonesCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate reference cache: %w", err)
	}
	return nil
}

func (r *ReferenceRepository) fromCache(ctx context.Context, key string, dest any) (bool, error) {
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get %s from cache: %w", key, err)
	}
	if err := json.Unmarshal(val, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s from cache: %w", key, err)
	}
	return true, nil
}

// toCache кладет справочник в Redis best-effort: сбой кэша не ломает чтение
func (r *ReferenceRepository) toCache(ctx context.Context, key string, value any) {
	val, err := json.Marshal(value)
	if err != nil {
		return
	}
	r.redisClient.Set(ctx, key, val, referenceCacheTTL)
}
