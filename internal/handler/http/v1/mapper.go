package v1

import "github.com/shenikar/rescue_status_engine/internal/models"

// DTOToCallRecord преобразует DTO звонка в доменную модель
func DTOToCallRecord(dto SaveCallRequest) models.CallRecord {
	return models.CallRecord{
		ID:         dto.ID,
		Transcript: dto.Transcript,
		Tags:       dto.Tags,
		StartedAt:  dto.StartedAt,
		EndedAt:    dto.EndedAt,
	}
}

// DTOToLocationSample преобразует DTO GPS-точки в доменную модель
func DTOToLocationSample(dto SaveLocationRequest) models.LocationSample {
	return models.LocationSample{
		Lat:            dto.Latitude,
		Lon:            dto.Longitude,
		AccuracyMeters: dto.AccuracyMeters,
		Timestamp:      dto.Timestamp,
	}
}

// ModelToPersonResponse преобразует доменную модель в DTO для ответа
func ModelToPersonResponse(model *models.Person) *PersonResponse {
	return &PersonResponse{
		ID:        model.ID,
		Role:      string(model.Role),
		Status:    string(model.Status),
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// ModelToAssignmentResponse преобразует доменную модель в DTO для ответа
func ModelToAssignmentResponse(model *models.Assignment) *AssignmentResponse {
	return &AssignmentResponse{
		ID:          model.ID,
		CivilianID:  model.CivilianID,
		ResponderID: model.ResponderID,
		AssignedAt:  model.AssignedAt,
		CompletedAt: model.CompletedAt,
		IsActive:    model.IsActive,
	}
}

// ModelsToAssignmentResponses преобразует слайс моделей в слайс DTO
func ModelsToAssignmentResponses(models []*models.Assignment) []*AssignmentResponse {
	responses := make([]*AssignmentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToAssignmentResponse(model)
	}
	return responses
}
