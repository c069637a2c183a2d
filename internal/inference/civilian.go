package inference

import (
	"context"

	"github.com/shenikar/rescue_status_engine/internal/geo"
	"github.com/shenikar/rescue_status_engine/internal/models"
)

// Причины переходов гражданского автомата
const (
	ReasonPriorityKeywords    = "priority_keywords"
	ReasonResponderAssigned   = "responder_assigned"
	ReasonProximityIncident   = "proximity_incident"
	ReasonMovingWithResponder = "moving_with_responder"
	ReasonArrivedAtHospital   = "arrived_at_hospital"
)

// nextCivilianStatus вычисляет следующее ребро гражданского автомата:
// normal → needs_help → help_coming → at_incident → in_transport → at_hospital.
// Обратных ребер нет; nil означает "условия не выполнены, статус не меняется".
func (e *Engine) nextCivilianStatus(ctx context.Context, snap *models.PersonSnapshot) (*transition, error) {
	switch snap.Status {
	case models.StatusNormal:
		// Приоритетные слова в последнем звонке (теги или транскрипт)
		if call := snap.LatestCall; call != nil {
			if e.priorityTables.MatchesAny(call.Transcript, call.Tags) {
				return &transition{to: models.StatusNeedsHelp, reason: ReasonPriorityKeywords}, nil
			}
		}

	case models.StatusNeedsHelp:
		// Назначенный спасатель выехал
		partner, err := e.partnerSnapshot(ctx, snap)
		if err != nil {
			return nil, err
		}
		if partner != nil && partner.Status == models.StatusEnRouteToCivilian {
			return &transition{to: models.StatusHelpComing, reason: ReasonResponderAssigned}, nil
		}

	case models.StatusHelpComing:
		// Спасатель на месте и физически рядом
		partner, err := e.partnerSnapshot(ctx, snap)
		if err != nil {
			return nil, err
		}
		if partner != nil && partner.Status == models.StatusOnScene {
			if d, ok := distanceBetween(snap, partner); ok && d < e.cfg.IncidentProximityMeters {
				return &transition{to: models.StatusAtIncident, reason: ReasonProximityIncident}, nil
			}
		}

	case models.StatusAtIncident:
		// Оба движутся с транспортной скоростью и рядом друг с другом
		partner, err := e.partnerSnapshot(ctx, snap)
		if err != nil {
			return nil, err
		}
		if partner != nil {
			civVelocity, civOK := geo.Velocity(snap.Locations, e.cfg.VelocityWindow)
			respVelocity, respOK := geo.Velocity(partner.Locations, e.cfg.VelocityWindow)
			if civOK && respOK && civVelocity > e.cfg.TransportVelocityMS && respVelocity > e.cfg.TransportVelocityMS {
				if d, ok := distanceBetween(snap, partner); ok && d < e.cfg.TransportProximityMeters {
					return &transition{to: models.StatusInTransport, reason: ReasonMovingWithResponder}, nil
				}
			}
		}

	case models.StatusInTransport:
		// Возле госпиталя и стоят
		loc := snap.LatestLocation()
		if loc == nil {
			return nil, nil
		}
		hospitals, err := e.repo.GetHospitals(ctx)
		if err != nil {
			return nil, err
		}
		idx, d := geo.NearestFacility(geo.Point{Lat: loc.Lat, Lon: loc.Lon}, hospitalPoints(hospitals))
		if idx < 0 || d >= e.cfg.HospitalProximityMeters {
			return nil, nil
		}
		if !geo.IsStationary(snap.Locations, e.cfg.StationaryThresholdM, e.cfg.StationaryWindow) {
			return nil, nil
		}
		// Если назначение еще активно, спасатель тоже должен остановиться
		partner, err := e.partnerSnapshot(ctx, snap)
		if err != nil {
			return nil, err
		}
		if partner != nil && !geo.IsStationary(partner.Locations, e.cfg.StationaryThresholdM, e.cfg.StationaryWindow) {
			return nil, nil
		}
		return &transition{to: models.StatusAtHospital, reason: ReasonArrivedAtHospital}, nil
	}

	return nil, nil
}

// distanceBetween возвращает расстояние между последними точками двух людей
func distanceBetween(a, b *models.PersonSnapshot) (float64, bool) {
	locA := a.LatestLocation()
	locB := b.LatestLocation()
	if locA == nil || locB == nil {
		return 0, false
	}
	return geo.DistanceMeters(
		geo.Point{Lat: locA.Lat, Lon: locA.Lon},
		geo.Point{Lat: locB.Lat, Lon: locB.Lon},
	), true
}

// hospitalPoints проецирует госпитали в точки для поиска ближайшего,
// сохраняя входной порядок
func hospitalPoints(hospitals []models.Hospital) []geo.Point {
	points := make([]geo.Point, len(hospitals))
	for i, h := range hospitals {
		points[i] = geo.Point{Lat: h.Lat, Lon: h.Lon}
	}
	return points
}
