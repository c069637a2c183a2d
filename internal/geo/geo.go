package geo

import (
	"math"
	"time"

	"github.com/shenikar/rescue_status_engine/internal/models"
)

// Радиус Земли в метрах
const earthRadiusMeters = 6371000

// Point — точка на поверхности Земли в градусах
type Point struct {
	Lat float64
	Lon float64
}

// DistanceMeters вычисляет расстояние по дуге большого круга (формула гаверсинуса)
// между двумя точками. Результат в метрах.
func DistanceMeters(a, b Point) float64 {
	phi1 := a.Lat * math.Pi / 180
	phi2 := b.Lat * math.Pi / 180
	deltaPhi := (b.Lat - a.Lat) * math.Pi / 180
	deltaLambda := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// samplesInWindow возвращает хвост истории, попадающий в окно window
// от последней точки. История должна быть отсортирована по времени.
func samplesInWindow(history []models.LocationSample, window time.Duration) []models.LocationSample {
	if len(history) == 0 {
		return nil
	}
	latest := history[len(history)-1].Timestamp
	start := 0
	for i := range history {
		if latest.Sub(history[i].Timestamp) <= window {
			start = i
			break
		}
	}
	return history[start:]
}

// Velocity вычисляет среднюю скорость (м/с) по точкам, попавшим в окно window
// от последней точки истории. Второе значение false означает "недостаточно
// данных" (меньше двух точек в окне или нулевой интервал времени) — это
// сознательно отличимо от подтвержденной нулевой скорости.
func Velocity(history []models.LocationSample, window time.Duration) (float64, bool) {
	recent := samplesInWindow(history, window)
	if len(recent) < 2 {
		return 0, false
	}

	totalDistance := 0.0
	for i := 1; i < len(recent); i++ {
		prev := Point{Lat: recent[i-1].Lat, Lon: recent[i-1].Lon}
		curr := Point{Lat: recent[i].Lat, Lon: recent[i].Lon}
		totalDistance += DistanceMeters(prev, curr)
	}

	span := recent[len(recent)-1].Timestamp.Sub(recent[0].Timestamp)
	if span <= 0 {
		return 0, false
	}

	return totalDistance / span.Seconds(), true
}

// IsStationary возвращает true, если все попарные смещения между точками окна
// меньше thresholdMeters. При менее чем двух точках в окне возвращает false:
// без данных неподвижность не подтверждается.
func IsStationary(history []models.LocationSample, thresholdMeters float64, window time.Duration) bool {
	recent := samplesInWindow(history, window)
	if len(recent) < 2 {
		return false
	}

	for i := 0; i < len(recent); i++ {
		for j := i + 1; j < len(recent); j++ {
			a := Point{Lat: recent[i].Lat, Lon: recent[i].Lon}
			b := Point{Lat: recent[j].Lat, Lon: recent[j].Lon}
			if DistanceMeters(a, b) >= thresholdMeters {
				return false
			}
		}
	}
	return true
}

// NearestFacility находит ближайшую к p точку линейным проходом и возвращает
// ее индекс и расстояние в метрах. При равных расстояниях побеждает точка
// с меньшим индексом (порядок входного слайса). Для пустого слайса индекс -1.
func NearestFacility(p Point, facilities []Point) (int, float64) {
	nearest := -1
	minDistance := math.Inf(1)

	for i, f := range facilities {
		d := DistanceMeters(p, f)
		if d < minDistance {
			minDistance = d
			nearest = i
		}
	}

	if nearest == -1 {
		return -1, 0
	}
	return nearest, minDistance
}
