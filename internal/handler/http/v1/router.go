package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check без аутентификации
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	if len(h.cfg.APIKeys) > 0 {
		protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}

	// Маршруты людей: регистрация, чтение, поток звонков и GPS-точек
	persons := protected.Group("/persons")
	{
		persons.POST("", h.registerPerson)
		persons.GET("/:id", h.getPerson)
		persons.POST("/:id/calls", h.saveCall)
		persons.POST("/:id/locations", h.saveLocation)
		persons.GET("/:id/priority", h.getPriorityScore)
	}

	// Маршруты назначений "гражданский — спасатель"
	assignments := protected.Group("/assignments")
	{
		assignments.POST("", h.createAssignment)
		assignments.GET("", h.listAssignments)
		assignments.GET("/:id", h.getAssignment)
		assignments.PUT("/:id/complete", h.completeAssignment)
	}
}
