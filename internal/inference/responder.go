package inference

import (
	"context"

	"github.com/shenikar/rescue_status_engine/internal/geo"
	"github.com/shenikar/rescue_status_engine/internal/models"
)

// Причины переходов автомата спасателя
const (
	ReasonMovingWithoutAssignment = "moving_without_assignment"
	ReasonIdleAtDock              = "idle_at_dock"
	ReasonDispatched              = "dispatched"
	ReasonArrivedAtCivilian       = "arrived_at_civilian"
	ReasonTransportingCivilian    = "transporting_civilian"
	ReasonDeliveredToHospital     = "delivered_to_hospital"
)

// nextResponderStatus вычисляет следующее ребро автомата спасателя:
// roaming ↔ docked → en_route_to_civ → on_scene → en_route_to_hospital → docked.
// Ребро en_route_to_hospital → docked дополнительно завершает активное
// назначение и возвращает id гражданского как follow-up для отдельного прохода.
func (e *Engine) nextResponderStatus(ctx context.Context, snap *models.PersonSnapshot) (*transition, []string, error) {
	if snap.Assignment == nil {
		tr, err := e.nextIdleResponderStatus(ctx, snap)
		return tr, nil, err
	}

	switch snap.Status {
	case models.StatusDocked, models.StatusRoaming:
		// Назначение есть и спасатель начал движение — выехал
		if v, ok := geo.Velocity(snap.Locations, e.cfg.VelocityWindow); ok && v > e.cfg.RoamingVelocityMS {
			return &transition{to: models.StatusEnRouteToCivilian, reason: ReasonDispatched}, nil, nil
		}

	case models.StatusEnRouteToCivilian:
		// Рядом с назначенным гражданским и остановился
		partner, err := e.partnerSnapshot(ctx, snap)
		if err != nil {
			return nil, nil, err
		}
		if partner != nil {
			if d, ok := distanceBetween(snap, partner); ok && d < e.cfg.IncidentProximityMeters {
				if geo.IsStationary(snap.Locations, e.cfg.StationaryThresholdM, e.cfg.ArrivalStationaryWindow) {
					return &transition{to: models.StatusOnScene, reason: ReasonArrivedAtCivilian}, nil, nil
				}
			}
		}

	case models.StatusOnScene:
		// Поехал с транспортной скоростью, гражданский рядом — везет его
		partner, err := e.partnerSnapshot(ctx, snap)
		if err != nil {
			return nil, nil, err
		}
		if partner != nil {
			if v, ok := geo.Velocity(snap.Locations, e.cfg.VelocityWindow); ok && v > e.cfg.TransportVelocityMS {
				if d, ok := distanceBetween(snap, partner); ok && d < e.cfg.TransportProximityMeters {
					return &transition{to: models.StatusEnRouteToHospital, reason: ReasonTransportingCivilian}, nil, nil
				}
			}
		}

	case models.StatusEnRouteToHospital:
		// Доехал до госпиталя и стоит: доковка + авто-завершение назначения
		nearHospital, err := e.nearHospital(ctx, snap)
		if err != nil {
			return nil, nil, err
		}
		if nearHospital && geo.IsStationary(snap.Locations, e.cfg.StationaryThresholdM, e.cfg.StationaryWindow) {
			if err := e.repo.CompleteAssignment(ctx, snap.Assignment.ID); err != nil {
				return nil, nil, err
			}
			followUps := []string{snap.Assignment.OtherParty(snap.ID)}
			return &transition{to: models.StatusDocked, reason: ReasonDeliveredToHospital}, followUps, nil
		}
	}

	return nil, nil, nil
}

// nextIdleResponderStatus обрабатывает ребра без назначения: docked ↔ roaming
func (e *Engine) nextIdleResponderStatus(ctx context.Context, snap *models.PersonSnapshot) (*transition, error) {
	switch snap.Status {
	case models.StatusDocked:
		if v, ok := geo.Velocity(snap.Locations, e.cfg.VelocityWindow); ok && v > e.cfg.RoamingVelocityMS {
			return &transition{to: models.StatusRoaming, reason: ReasonMovingWithoutAssignment}, nil
		}

	case models.StatusRoaming:
		nearHospital, err := e.nearHospital(ctx, snap)
		if err != nil {
			return nil, err
		}
		if nearHospital && geo.IsStationary(snap.Locations, e.cfg.StationaryThresholdM, e.cfg.StationaryWindow) {
			return &transition{to: models.StatusDocked, reason: ReasonIdleAtDock}, nil
		}
	}

	return nil, nil
}

// nearHospital проверяет, что последняя точка человека ближе порога
// к ближайшему госпиталю
func (e *Engine) nearHospital(ctx context.Context, snap *models.PersonSnapshot) (bool, error) {
	loc := snap.LatestLocation()
	if loc == nil {
		return false, nil
	}
	hospitals, err := e.repo.GetHospitals(ctx)
	if err != nil {
		return false, err
	}
	idx, d := geo.NearestFacility(geo.Point{Lat: loc.Lat, Lon: loc.Lon}, hospitalPoints(hospitals))
	return idx >= 0 && d < e.cfg.HospitalProximityMeters, nil
}
