package geo

import (
	"testing"
	"time"

	"github.com/shenikar/rescue_status_engine/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	london   = Point{Lat: 51.5074, Lon: -0.1278}
	paris    = Point{Lat: 48.8566, Lon: 2.3522}
	istanbul = Point{Lat: 41.0082, Lon: 28.9784}
)

// sampleAt строит точку истории со смещением offset от базового времени
func sampleAt(base time.Time, offset time.Duration, lat, lon float64) models.LocationSample {
	return models.LocationSample{
		Lat:       lat,
		Lon:       lon,
		Timestamp: base.Add(offset),
	}
}

func TestDistanceMeters_KnownDistance(t *testing.T) {
	// Лондон — Париж: примерно 344 км
	d := DistanceMeters(london, paris)
	assert.InDelta(t, 344000, d, 5000)
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	pairs := [][2]Point{
		{london, paris},
		{london, istanbul},
		{paris, istanbul},
		{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 180}},
	}
	for _, pair := range pairs {
		assert.Equal(t, DistanceMeters(pair[0], pair[1]), DistanceMeters(pair[1], pair[0]))
	}
}

func TestDistanceMeters_ZeroForSamePoint(t *testing.T) {
	assert.Zero(t, DistanceMeters(london, london))
}

func TestDistanceMeters_TriangleInequality(t *testing.T) {
	ab := DistanceMeters(london, paris)
	bc := DistanceMeters(paris, istanbul)
	ac := DistanceMeters(london, istanbul)
	assert.LessOrEqual(t, ac, ab+bc+1e-6)
}

func TestVelocity_InsufficientData(t *testing.T) {
	base := time.Now()

	// Пустая история
	_, ok := Velocity(nil, time.Minute)
	assert.False(t, ok)

	// Одна точка
	_, ok = Velocity([]models.LocationSample{sampleAt(base, 0, 51.5, -0.12)}, time.Minute)
	assert.False(t, ok)

	// Две точки, но старая не попадает в окно
	history := []models.LocationSample{
		sampleAt(base, -10*time.Minute, 51.5, -0.12),
		sampleAt(base, 0, 51.6, -0.12),
	}
	_, ok = Velocity(history, time.Minute)
	assert.False(t, ok)
}

func TestVelocity_ConstantSpeed(t *testing.T) {
	base := time.Now()
	// ~111 м на 0.001 градуса широты, шаг 10 секунд → ~11.1 м/с
	history := []models.LocationSample{
		sampleAt(base, 0, 51.5000, -0.12),
		sampleAt(base, 10*time.Second, 51.5010, -0.12),
		sampleAt(base, 20*time.Second, 51.5020, -0.12),
	}

	v, ok := Velocity(history, time.Minute)
	require.True(t, ok)
	assert.InDelta(t, 11.1, v, 0.5)
	assert.GreaterOrEqual(t, v, 0.0)
}

func TestVelocity_StationarySamples(t *testing.T) {
	base := time.Now()
	history := []models.LocationSample{
		sampleAt(base, 0, 51.5, -0.12),
		sampleAt(base, 30*time.Second, 51.5, -0.12),
	}

	v, ok := Velocity(history, time.Minute)
	require.True(t, ok)
	assert.Zero(t, v)
}

func TestIsStationary_InsufficientData(t *testing.T) {
	base := time.Now()

	assert.False(t, IsStationary(nil, 20, 2*time.Minute))
	assert.False(t, IsStationary([]models.LocationSample{sampleAt(base, 0, 51.5, -0.12)}, 20, 2*time.Minute))
}

func TestIsStationary_WithinThreshold(t *testing.T) {
	base := time.Now()
	// Все точки в пределах пары метров друг от друга
	history := []models.LocationSample{
		sampleAt(base, 0, 51.50000, -0.12000),
		sampleAt(base, time.Minute, 51.50001, -0.12001),
		sampleAt(base, 2*time.Minute, 51.50000, -0.12002),
	}

	assert.True(t, IsStationary(history, 20, 2*time.Minute))
}

func TestIsStationary_MovementBeyondThreshold(t *testing.T) {
	base := time.Now()
	// Вторая точка примерно в 111 м от первой
	history := []models.LocationSample{
		sampleAt(base, 0, 51.500, -0.12),
		sampleAt(base, time.Minute, 51.501, -0.12),
	}

	assert.False(t, IsStationary(history, 20, 2*time.Minute))
}

func TestIsStationary_OldMovementOutsideWindowIgnored(t *testing.T) {
	base := time.Now()
	// Большое смещение было давно, в окне только близкие точки
	history := []models.LocationSample{
		sampleAt(base, -time.Hour, 52.0, -0.5),
		sampleAt(base, 0, 51.50000, -0.12000),
		sampleAt(base, time.Minute, 51.50001, -0.12001),
	}

	assert.True(t, IsStationary(history, 20, 2*time.Minute))
}

func TestNearestFacility_Empty(t *testing.T) {
	idx, _ := NearestFacility(london, nil)
	assert.Equal(t, -1, idx)
}

func TestNearestFacility_PicksClosest(t *testing.T) {
	facilities := []Point{istanbul, paris, {Lat: 51.51, Lon: -0.13}}

	idx, d := NearestFacility(london, facilities)
	require.Equal(t, 2, idx)
	assert.Less(t, d, 1000.0)
}

func TestNearestFacility_TieBreaksByInputOrder(t *testing.T) {
	// Две идентичные точки на одном расстоянии: побеждает первая
	duplicate := Point{Lat: 51.51, Lon: -0.13}
	facilities := []Point{duplicate, duplicate, paris}

	idx, _ := NearestFacility(london, facilities)
	assert.Equal(t, 0, idx)
}
