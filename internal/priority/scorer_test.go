package priority

import (
	"testing"
	"time"

	"github.com/shenikar/rescue_status_engine/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestScorer создает Scorer с фиксированным "сейчас"
func newTestScorer(now time.Time) *Scorer {
	s := NewScorer(DefaultMedicalTables(), 1000)
	s.now = func() time.Time { return now }
	return s
}

func snapshotWithCall(transcript string, tags []string, endedAt time.Time) *models.PersonSnapshot {
	return &models.PersonSnapshot{
		ID:     "civ_001",
		Role:   models.RoleCivilian,
		Status: models.StatusNeedsHelp,
		LatestCall: &models.CallRecord{
			Transcript: transcript,
			Tags:       tags,
			EndedAt:    endedAt,
		},
	}
}

func TestScore_NoCall_ReturnsBase(t *testing.T) {
	scorer := newTestScorer(time.Now())

	assert.Equal(t, 50, scorer.Score(nil, nil))
	assert.Equal(t, 50, scorer.Score(&models.PersonSnapshot{ID: "civ_001"}, nil))
}

func TestScore_MedicalKeywordsCapped(t *testing.T) {
	now := time.Now()
	scorer := newTestScorer(now)

	// Четыре медицинских слова, но вклад ограничен 30 баллами.
	// Звонок час назад — свежесть не дает вклада, пострадавших нет.
	snap := snapshotWithCall("bleeding unconscious heart chest", nil, now.Add(-time.Hour))

	assert.Equal(t, 50+30, scorer.Score(snap, nil))
}

func TestScore_SingleMedicalKeyword(t *testing.T) {
	now := time.Now()
	scorer := newTestScorer(now)

	snap := snapshotWithCall("there is bleeding", nil, now.Add(-time.Hour))

	assert.Equal(t, 50+15, scorer.Score(snap, nil))
}

func TestScore_KeywordsCaseInsensitiveAndFromTags(t *testing.T) {
	now := time.Now()
	scorer := newTestScorer(now)

	// Слово только в тегах и в другом регистре
	snap := snapshotWithCall("no medical words here", []string{"BLEEDING"}, now.Add(-time.Hour))

	assert.Equal(t, 50+15, scorer.Score(snap, nil))
}

func TestScore_TurkishKeywords(t *testing.T) {
	now := time.Now()
	scorer := newTestScorer(now)

	snap := snapshotWithCall("kanama var nefes alamıyor", nil, now.Add(-time.Hour))

	assert.Equal(t, 50+30, scorer.Score(snap, nil))
}

func TestScore_MultipleVictims(t *testing.T) {
	now := time.Now()
	scorer := newTestScorer(now)

	snap := snapshotWithCall("there are 3 victims", nil, now.Add(-time.Hour))

	assert.Equal(t, 50+10, scorer.Score(snap, nil))
}

func TestScore_RecencyDecay(t *testing.T) {
	now := time.Now()
	scorer := newTestScorer(now)

	// Звонок только что закончился: полные 20 баллов свежести
	fresh := snapshotWithCall("stuck in traffic", nil, now)
	assert.Equal(t, 50+20, scorer.Score(fresh, nil))

	// Полчаса назад: половина
	half := snapshotWithCall("stuck in traffic", nil, now.Add(-30*time.Minute))
	assert.Equal(t, 50+10, scorer.Score(half, nil))

	// Больше часа назад: ноль
	stale := snapshotWithCall("stuck in traffic", nil, now.Add(-2*time.Hour))
	assert.Equal(t, 50, scorer.Score(stale, nil))
}

func TestScore_DangerZoneProximity(t *testing.T) {
	now := time.Now()
	scorer := newTestScorer(now)

	snap := snapshotWithCall("stuck in traffic", nil, now.Add(-time.Hour))
	snap.Locations = []models.LocationSample{{Lat: 51.5074, Lon: -0.1278, Timestamp: now}}

	// Зона серьезности 5 прямо в точке: полные 25 баллов
	zones := []models.DangerZone{
		{Lat: 51.5074, Lon: -0.1278, Severity: 5, IsActive: true},
	}
	assert.Equal(t, 50+25, scorer.Score(snap, zones))

	// Неактивная зона не учитывается
	zones[0].IsActive = false
	assert.Equal(t, 50, scorer.Score(snap, zones))

	// Зона дальше 1 км не учитывается
	far := []models.DangerZone{
		{Lat: 51.6, Lon: -0.1278, Severity: 5, IsActive: true},
	}
	assert.Equal(t, 50, scorer.Score(snap, far))
}

func TestScore_PathologicalInputStaysInRange(t *testing.T) {
	now := time.Now()
	scorer := newTestScorer(now)

	// Все слагаемые на максимуме: слова, пострадавшие, нулевая давность,
	// зона серьезности 5 на нулевом расстоянии
	snap := snapshotWithCall("help bleeding unconscious heart chest pain 3 people injured", nil, now)
	snap.Locations = []models.LocationSample{{Lat: 51.5074, Lon: -0.1278, Timestamp: now}}
	zones := []models.DangerZone{
		{Lat: 51.5074, Lon: -0.1278, Severity: 5, IsActive: true},
	}

	score := scorer.Score(snap, zones)
	require.LessOrEqual(t, score, 100)
	assert.Equal(t, 100, score)
}

func TestDefaultTables_NotEmpty(t *testing.T) {
	assert.NotEmpty(t, DefaultPriorityTables()["en"])
	assert.NotEmpty(t, DefaultPriorityTables()["tr"])
	assert.NotEmpty(t, DefaultMedicalTables()["en"])
	assert.NotEmpty(t, DefaultMedicalTables()["tr"])
}

func TestMatchesAny_SubstringNotExact(t *testing.T) {
	tables := DefaultPriorityTables()

	// "trapped!" содержит "trapped" как подстроку
	assert.True(t, tables.MatchesAny("we are trapped!", nil))
	assert.True(t, tables.MatchesAny("", []string{"Fire"}))
	assert.False(t, tables.MatchesAny("everything is fine", nil))
}
