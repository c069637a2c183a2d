package priority

import (
	"time"

	"github.com/shenikar/rescue_status_engine/internal/geo"
	"github.com/shenikar/rescue_status_engine/internal/models"
)

const (
	baseScore = 50

	medicalKeywordPoints = 15
	medicalKeywordCapPts = 30

	multipleVictimPoints = 10

	recencyMaxPoints = 20
	recencyWindow    = time.Hour

	dangerSeverityPoints = 5
)

// Индикаторы нескольких пострадавших (en + tr + числительные)
var multipleVictimIndicators = []string{"people", "victims", "injured", "kişi", "yaralı", "2", "3", "4", "5"}

// Scorer вычисляет оценку срочности 0–100 для гражданского по его последнему
// звонку, свежести звонка и близости к активным зонам опасности
type Scorer struct {
	medical       KeywordTables
	falloffMeters float64

	// now вынесено в поле ради детерминированных тестов
	now func() time.Time
}

// NewScorer создает Scorer с переданными таблицами медицинских слов.
// falloffMeters — радиус, за которым зона опасности перестает влиять на оценку.
func NewScorer(medical KeywordTables, falloffMeters float64) *Scorer {
	return &Scorer{
		medical:       medical,
		falloffMeters: falloffMeters,
		now:           time.Now,
	}
}

// Score возвращает оценку срочности в диапазоне [0, 100].
// Модель аддитивная: база 50, медицинские слова до +30, несколько
// пострадавших +10, свежесть звонка до +20, близость к зоне опасности до +25.
func (s *Scorer) Score(snap *models.PersonSnapshot, zones []models.DangerZone) int {
	if snap == nil || snap.LatestCall == nil {
		return baseScore
	}

	call := snap.LatestCall
	score := baseScore

	// Медицинские ключевые слова: 15 за каждое различное, максимум 30
	distinct := s.medical.CountDistinct(call.Transcript, call.Tags, medicalKeywordCapPts/medicalKeywordPoints)
	score += distinct * medicalKeywordPoints

	// Признаки нескольких пострадавших
	indicators := KeywordTables{"any": multipleVictimIndicators}
	if indicators.MatchesAny(call.Transcript, call.Tags) {
		score += multipleVictimPoints
	}

	// Свежесть: линейно затухает до нуля за час с момента окончания звонка
	elapsed := s.now().Sub(call.EndedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed < recencyWindow {
		fraction := 1 - elapsed.Seconds()/recencyWindow.Seconds()
		score += int(recencyMaxPoints * fraction)
	}

	// Близость к ближайшей активной зоне опасности: severity*5 с линейным
	// затуханием по расстоянию внутри falloffMeters
	if loc := snap.LatestLocation(); loc != nil {
		score += s.dangerZoneTerm(geo.Point{Lat: loc.Lat, Lon: loc.Lon}, zones)
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

func (s *Scorer) dangerZoneTerm(p geo.Point, zones []models.DangerZone) int {
	points := make([]geo.Point, 0, len(zones))
	active := make([]models.DangerZone, 0, len(zones))
	for _, zone := range zones {
		if zone.IsActive {
			points = append(points, geo.Point{Lat: zone.Lat, Lon: zone.Lon})
			active = append(active, zone)
		}
	}

	idx, distance := geo.NearestFacility(p, points)
	if idx < 0 || distance >= s.falloffMeters {
		return 0
	}

	falloff := 1 - distance/s.falloffMeters
	return int(float64(active[idx].Severity) * dangerSeverityPoints * falloff)
}
