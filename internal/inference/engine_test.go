package inference

import (
	"bytes"
	"context"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/rescue_status_engine/internal/config"
	"github.com/shenikar/rescue_status_engine/internal/inference/mocks"
	"github.com/shenikar/rescue_status_engine/internal/models"
	"github.com/shenikar/rescue_status_engine/internal/notifier"
	notifier_mocks "github.com/shenikar/rescue_status_engine/internal/notifier/mocks"
	"github.com/shenikar/rescue_status_engine/internal/priority"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestEngine — вспомогательная функция для создания движка с моками
func newTestEngine(t *testing.T) (*Engine, *mocks.MockRepository, *notifier_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockRepository(ctrl)
	pubMock := notifier_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	engine := NewEngine(repoMock, pubMock, priority.DefaultPriorityTables(), config.DefaultInferenceConfig(), logger)
	return engine, repoMock, pubMock
}

// stubStore подключает мок-репозиторий к in-memory карте снапшотов:
// GetSnapshot читает из нее, SetStatus пишет в нее
func stubStore(repoMock *mocks.MockRepository, snaps map[string]*models.PersonSnapshot) {
	repoMock.EXPECT().
		GetSnapshot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id string) (*models.PersonSnapshot, error) {
			return snaps[id], nil
		}).AnyTimes()
	repoMock.EXPECT().
		SetStatus(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id string, status models.Status) error {
			snaps[id].Status = status
			return nil
		}).AnyTimes()
}

// capturePublished собирает все опубликованные события в слайс
func capturePublished(pubMock *notifier_mocks.MockPublisher) *[]notifier.StatusChangedEvent {
	events := &[]notifier.StatusChangedEvent{}
	pubMock.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event notifier.StatusChangedEvent) error {
			*events = append(*events, event)
			return nil
		}).AnyTimes()
	return events
}

func metersToLat(m float64) float64 {
	return m / 111320.0
}

func metersToLon(m, lat float64) float64 {
	return m / (111320.0 * math.Cos(lat*math.Pi/180))
}

// stationaryHistory строит историю из неподвижных точек, покрывающую spanSeconds
func stationaryHistory(end time.Time, lat, lon float64, spanSeconds int) []models.LocationSample {
	var history []models.LocationSample
	for offset := -spanSeconds; offset <= 0; offset += 10 {
		history = append(history, models.LocationSample{
			Lat:       lat,
			Lon:       lon,
			Timestamp: end.Add(time.Duration(offset) * time.Second),
		})
	}
	return history
}

// movingHistory строит историю движения вдоль широты с постоянной скоростью,
// заканчивающуюся в (lat, lon)
func movingHistory(end time.Time, lat, lon, speedMS float64) []models.LocationSample {
	const steps = 6
	var history []models.LocationSample
	for i := steps; i >= 0; i-- {
		back := float64(i) * 10 // секунд назад
		history = append(history, models.LocationSample{
			Lat:       lat - metersToLat(speedMS*back),
			Lon:       lon,
			Timestamp: end.Add(-time.Duration(back) * time.Second),
		})
	}
	return history
}

func activeAssignment(civID, respID string) *models.Assignment {
	return &models.Assignment{
		ID:          uuid.New(),
		CivilianID:  civID,
		ResponderID: respID,
		AssignedAt:  time.Now().Add(-10 * time.Minute),
		IsActive:    true,
	}
}

// Сценарий A: гражданский без назначения получает звонок с приоритетными
// словами и переходит normal → needs_help
func TestInferPerson_CivilianPriorityCall(t *testing.T) {
	// Подготовка
	engine, repoMock, pubMock := newTestEngine(t)
	now := time.Now()
	snaps := map[string]*models.PersonSnapshot{
		"civ_001": {
			ID:     "civ_001",
			Role:   models.RoleCivilian,
			Status: models.StatusNormal,
			LatestCall: &models.CallRecord{
				Transcript: "Help! There's a fire and people are trapped!",
				Tags:       []string{"help", "trapped", "fire"},
				EndedAt:    now,
			},
		},
	}
	stubStore(repoMock, snaps)
	events := capturePublished(pubMock)

	// Действие
	result, err := engine.InferPerson(context.Background(), "civ_001")

	// Проверки
	require.NoError(t, err)
	require.Len(t, result.Changes, 1)
	assert.Equal(t, models.StatusNeedsHelp, snaps["civ_001"].Status)
	assert.Equal(t, models.StatusNormal, result.Changes[0].OldStatus)
	assert.Equal(t, models.StatusNeedsHelp, result.Changes[0].NewStatus)
	assert.Equal(t, ReasonPriorityKeywords, result.Changes[0].Reason)

	require.Len(t, *events, 1)
	assert.Equal(t, models.RoleCivilian, (*events)[0].Role)
	assert.Greater(t, (*events)[0].Timestamp, 0.0)
}

// Сценарий B: после создания назначения движущийся спасатель становится
// en_route_to_civ, а гражданский — help_coming
func TestInferPerson_DispatchFlow(t *testing.T) {
	// Подготовка
	engine, repoMock, pubMock := newTestEngine(t)
	now := time.Now()
	assignment := activeAssignment("civ_001", "resp_001")
	snaps := map[string]*models.PersonSnapshot{
		"civ_001": {
			ID:         "civ_001",
			Role:       models.RoleCivilian,
			Status:     models.StatusNeedsHelp,
			Locations:  stationaryHistory(now, 51.5074, -0.1278, 130),
			Assignment: assignment,
		},
		"resp_001": {
			ID:         "resp_001",
			Role:       models.RoleResponder,
			Status:     models.StatusDocked,
			Locations:  movingHistory(now, 51.52, -0.13, 8),
			Assignment: assignment,
		},
	}
	stubStore(repoMock, snaps)
	capturePublished(pubMock)

	// Действие: сначала проход по спасателю (пришла его геолокация)
	respResult, err := engine.InferPerson(context.Background(), "resp_001")
	require.NoError(t, err)

	// Затем проход по гражданскому (событие создания назначения)
	civResult, err := engine.InferPerson(context.Background(), "civ_001")
	require.NoError(t, err)

	// Проверки
	require.Len(t, respResult.Changes, 1)
	assert.Equal(t, models.StatusEnRouteToCivilian, snaps["resp_001"].Status)
	assert.Equal(t, ReasonDispatched, respResult.Changes[0].Reason)

	require.Len(t, civResult.Changes, 1)
	assert.Equal(t, models.StatusHelpComing, snaps["civ_001"].Status)
	assert.Equal(t, ReasonResponderAssigned, civResult.Changes[0].Reason)
}

// Сценарий C: спасатель остановился в 30 м от гражданского → on_scene,
// гражданский → at_incident
func TestInferPerson_ArrivalOnScene(t *testing.T) {
	// Подготовка
	engine, repoMock, pubMock := newTestEngine(t)
	now := time.Now()
	assignment := activeAssignment("civ_001", "resp_001")
	civLat, civLon := 51.5074, -0.1278
	respLat := civLat + metersToLat(30)
	snaps := map[string]*models.PersonSnapshot{
		"civ_001": {
			ID:         "civ_001",
			Role:       models.RoleCivilian,
			Status:     models.StatusHelpComing,
			Locations:  stationaryHistory(now, civLat, civLon, 130),
			Assignment: assignment,
		},
		"resp_001": {
			ID:         "resp_001",
			Role:       models.RoleResponder,
			Status:     models.StatusEnRouteToCivilian,
			Locations:  stationaryHistory(now, respLat, civLon, 125),
			Assignment: assignment,
		},
	}
	stubStore(repoMock, snaps)
	capturePublished(pubMock)

	// Действие
	respResult, err := engine.InferPerson(context.Background(), "resp_001")
	require.NoError(t, err)
	civResult, err := engine.InferPerson(context.Background(), "civ_001")
	require.NoError(t, err)

	// Проверки
	require.Len(t, respResult.Changes, 1)
	assert.Equal(t, models.StatusOnScene, snaps["resp_001"].Status)
	assert.Equal(t, ReasonArrivedAtCivilian, respResult.Changes[0].Reason)

	require.Len(t, civResult.Changes, 1)
	assert.Equal(t, models.StatusAtIncident, snaps["civ_001"].Status)
	assert.Equal(t, ReasonProximityIncident, civResult.Changes[0].Reason)
}

// Сценарий D: транспортировка и прибытие в госпиталь с авто-завершением
// назначения
func TestInferPerson_TransportAndDelivery(t *testing.T) {
	// Подготовка
	engine, repoMock, pubMock := newTestEngine(t)
	now := time.Now()
	assignment := activeAssignment("civ_001", "resp_001")
	civLat, civLon := 51.5074, -0.1278
	respLon := civLon + metersToLon(12, civLat)
	snaps := map[string]*models.PersonSnapshot{
		"civ_001": {
			ID:         "civ_001",
			Role:       models.RoleCivilian,
			Status:     models.StatusAtIncident,
			Locations:  movingHistory(now, civLat, civLon, 15),
			Assignment: assignment,
		},
		"resp_001": {
			ID:         "resp_001",
			Role:       models.RoleResponder,
			Status:     models.StatusOnScene,
			Locations:  movingHistory(now, civLat, respLon, 15),
			Assignment: assignment,
		},
	}
	stubStore(repoMock, snaps)
	capturePublished(pubMock)

	hospitalLat, hospitalLon := 51.51, -0.125
	hospitals := []models.Hospital{{ID: uuid.New(), Name: "St Thomas", Lat: hospitalLat, Lon: hospitalLon}}
	repoMock.EXPECT().GetHospitals(gomock.Any()).Return(hospitals, nil).AnyTimes()

	// Фаза 1: оба движутся со скоростью 15 м/с в 12 м друг от друга
	respResult, err := engine.InferPerson(context.Background(), "resp_001")
	require.NoError(t, err)
	civResult, err := engine.InferPerson(context.Background(), "civ_001")
	require.NoError(t, err)

	require.Len(t, respResult.Changes, 1)
	assert.Equal(t, models.StatusEnRouteToHospital, snaps["resp_001"].Status)
	assert.Equal(t, ReasonTransportingCivilian, respResult.Changes[0].Reason)

	require.Len(t, civResult.Changes, 1)
	assert.Equal(t, models.StatusInTransport, snaps["civ_001"].Status)
	assert.Equal(t, ReasonMovingWithResponder, civResult.Changes[0].Reason)

	// Фаза 2: оба стоят 130 секунд в 80 м от госпиталя
	later := now.Add(5 * time.Minute)
	stopLat := hospitalLat + metersToLat(80)
	snaps["civ_001"].Locations = stationaryHistory(later, stopLat, hospitalLon, 130)
	snaps["resp_001"].Locations = stationaryHistory(later, stopLat, hospitalLon, 130)

	// Авто-завершение назначения снимает его с обоих участников
	repoMock.EXPECT().
		CompleteAssignment(gomock.Any(), assignment.ID).
		DoAndReturn(func(_ context.Context, _ uuid.UUID) error {
			snaps["civ_001"].Assignment = nil
			snaps["resp_001"].Assignment = nil
			return nil
		}).Times(1)

	respResult, err = engine.InferPerson(context.Background(), "resp_001")
	require.NoError(t, err)

	require.Len(t, respResult.Changes, 1)
	assert.Equal(t, models.StatusDocked, snaps["resp_001"].Status)
	assert.Equal(t, ReasonDeliveredToHospital, respResult.Changes[0].Reason)
	// Гражданский назван follow-up'ом: его нужно пересчитать отдельным проходом
	assert.Equal(t, []string{"civ_001"}, respResult.FollowUps)

	civResult, err = engine.InferPerson(context.Background(), "civ_001")
	require.NoError(t, err)

	require.Len(t, civResult.Changes, 1)
	assert.Equal(t, models.StatusAtHospital, snaps["civ_001"].Status)
	assert.Equal(t, ReasonArrivedAtHospital, civResult.Changes[0].Reason)
}

// Повторный прогон с неизменными данными не пишет статус и не публикует событий
func TestInferPerson_Idempotent(t *testing.T) {
	// Подготовка
	engine, repoMock, pubMock := newTestEngine(t)
	snap := &models.PersonSnapshot{
		ID:     "civ_001",
		Role:   models.RoleCivilian,
		Status: models.StatusNeedsHelp, // без назначения дальше двигаться некуда
	}

	// Ожидания: только чтение, никаких записей и событий
	repoMock.EXPECT().GetSnapshot(gomock.Any(), "civ_001").Return(snap, nil).Times(1)
	repoMock.EXPECT().SetStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	pubMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, err := engine.InferPerson(context.Background(), "civ_001")

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, result.Changes)
}

// Догоняющий проход: два ребра за один вызов, каждое со своим событием,
// без пропуска промежуточного статуса
func TestInferPerson_CatchUpAppliesMultipleEdges(t *testing.T) {
	// Подготовка: гражданский еще normal, но звонок с приоритетными словами
	// уже сохранен, назначение уже создано и спасатель уже в пути
	engine, repoMock, pubMock := newTestEngine(t)
	now := time.Now()
	assignment := activeAssignment("civ_001", "resp_001")
	snaps := map[string]*models.PersonSnapshot{
		"civ_001": {
			ID:     "civ_001",
			Role:   models.RoleCivilian,
			Status: models.StatusNormal,
			LatestCall: &models.CallRecord{
				Transcript: "yardım edin, mahsur kaldık",
				Tags:       []string{"yardım"},
				EndedAt:    now,
			},
			Assignment: assignment,
		},
		"resp_001": {
			ID:         "resp_001",
			Role:       models.RoleResponder,
			Status:     models.StatusEnRouteToCivilian,
			Locations:  movingHistory(now, 51.52, -0.13, 8),
			Assignment: assignment,
		},
	}
	stubStore(repoMock, snaps)
	events := capturePublished(pubMock)

	// Действие
	result, err := engine.InferPerson(context.Background(), "civ_001")

	// Проверки: normal → needs_help → help_coming за один вызов
	require.NoError(t, err)
	require.Len(t, result.Changes, 2)
	assert.Equal(t, models.StatusNeedsHelp, result.Changes[0].NewStatus)
	assert.Equal(t, models.StatusNeedsHelp, result.Changes[1].OldStatus)
	assert.Equal(t, models.StatusHelpComing, result.Changes[1].NewStatus)
	assert.Equal(t, models.StatusHelpComing, snaps["civ_001"].Status)
	assert.Len(t, *events, 2)
}

// Статусы двигаются только вперед: терминальный at_hospital не реагирует
// даже на свежий приоритетный звонок
func TestInferPerson_NoBackwardEdges(t *testing.T) {
	// Подготовка
	engine, repoMock, pubMock := newTestEngine(t)
	now := time.Now()
	snaps := map[string]*models.PersonSnapshot{
		"civ_001": {
			ID:     "civ_001",
			Role:   models.RoleCivilian,
			Status: models.StatusAtHospital,
			LatestCall: &models.CallRecord{
				Transcript: "help, emergency!",
				Tags:       []string{"help"},
				EndedAt:    now,
			},
		},
	}
	stubStore(repoMock, snaps)
	capturePublished(pubMock)

	// Действие
	result, err := engine.InferPerson(context.Background(), "civ_001")

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, result.Changes)
	assert.Equal(t, models.StatusAtHospital, snaps["civ_001"].Status)
}

// Спасатель без назначения: docked → roaming при движении,
// roaming → docked у госпиталя в покое
func TestInferPerson_ResponderIdleCycle(t *testing.T) {
	// Подготовка
	engine, repoMock, pubMock := newTestEngine(t)
	now := time.Now()
	snaps := map[string]*models.PersonSnapshot{
		"resp_001": {
			ID:        "resp_001",
			Role:      models.RoleResponder,
			Status:    models.StatusDocked,
			Locations: movingHistory(now, 51.52, -0.13, 4),
		},
	}
	stubStore(repoMock, snaps)
	capturePublished(pubMock)

	hospitals := []models.Hospital{{ID: uuid.New(), Name: "St Thomas", Lat: 51.51, Lon: -0.125}}
	repoMock.EXPECT().GetHospitals(gomock.Any()).Return(hospitals, nil).AnyTimes()

	// Действие: движение без назначения
	result, err := engine.InferPerson(context.Background(), "resp_001")
	require.NoError(t, err)
	require.Len(t, result.Changes, 1)
	assert.Equal(t, models.StatusRoaming, snaps["resp_001"].Status)
	assert.Equal(t, ReasonMovingWithoutAssignment, result.Changes[0].Reason)

	// Остановка возле госпиталя
	later := now.Add(10 * time.Minute)
	snaps["resp_001"].Locations = stationaryHistory(later, 51.51, -0.125, 130)

	result, err = engine.InferPerson(context.Background(), "resp_001")
	require.NoError(t, err)
	require.Len(t, result.Changes, 1)
	assert.Equal(t, models.StatusDocked, snaps["resp_001"].Status)
	assert.Equal(t, ReasonIdleAtDock, result.Changes[0].Reason)
}

// Отсутствие данных (нет истории, нет госпиталей) — не ошибка, статус не меняется
func TestInferPerson_MissingDataIsNoop(t *testing.T) {
	// Подготовка
	engine, repoMock, pubMock := newTestEngine(t)
	snaps := map[string]*models.PersonSnapshot{
		"resp_001": {
			ID:     "resp_001",
			Role:   models.RoleResponder,
			Status: models.StatusRoaming,
		},
	}
	stubStore(repoMock, snaps)
	pubMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, err := engine.InferPerson(context.Background(), "resp_001")

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, result.Changes)
}

// Неизвестный человек — no-op без ошибки
func TestInferPerson_UnknownPerson(t *testing.T) {
	// Подготовка
	engine, repoMock, _ := newTestEngine(t)
	repoMock.EXPECT().GetSnapshot(gomock.Any(), "ghost").Return(nil, nil).Times(1)

	// Действие
	result, err := engine.InferPerson(context.Background(), "ghost")

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, result.Changes)
}

// Сбой публикации события не откатывает сохраненный статус
func TestInferPerson_PublishFailureDoesNotRevertStatus(t *testing.T) {
	// Подготовка
	engine, repoMock, pubMock := newTestEngine(t)
	now := time.Now()
	snaps := map[string]*models.PersonSnapshot{
		"civ_001": {
			ID:     "civ_001",
			Role:   models.RoleCivilian,
			Status: models.StatusNormal,
			LatestCall: &models.CallRecord{
				Transcript: "fire! help!",
				Tags:       []string{"fire"},
				EndedAt:    now,
			},
		},
	}
	stubStore(repoMock, snaps)
	pubMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(assert.AnError).Times(1)

	// Действие
	result, err := engine.InferPerson(context.Background(), "civ_001")

	// Проверки
	require.NoError(t, err)
	require.Len(t, result.Changes, 1)
	assert.Equal(t, models.StatusNeedsHelp, snaps["civ_001"].Status)
}
