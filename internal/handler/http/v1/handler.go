package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/rescue_status_engine/internal/config"
	"github.com/shenikar/rescue_status_engine/internal/models"
	"github.com/shenikar/rescue_status_engine/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	personService     service.PersonService
	assignmentService service.AssignmentService
	logger            *logrus.Logger
	validate          *validator.Validate
	cfg               *config.Config
}

func NewHandler(personService service.PersonService, assignmentService service.AssignmentService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		personService:     personService,
		assignmentService: assignmentService,
		logger:            logger,
		validate:          validator.New(),
		cfg:               cfg,
	}
}

// respondServiceError отображает типизированные ошибки сервиса в HTTP-коды
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPersonNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "person not found"})
	case errors.Is(err, service.ErrAssignmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "assignment not found"})
	case errors.Is(err, service.ErrRoleMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": "person role mismatch"})
	case errors.Is(err, service.ErrActiveAssignmentExists):
		c.JSON(http.StatusConflict, gin.H{"error": "active assignment already exists"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Register a person
// @Description Register a tracked person (civilian or responder). Registration is idempotent. Requires API key.
// @Tags Persons
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param person body RegisterPersonRequest true "Person registration request"
// @Success 201 {object} PersonResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /persons [post]
func (h *Handler) registerPerson(c *gin.Context) {
	var input RegisterPersonRequest
	log := h.logger.WithField("method", "registerPerson")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	person, err := h.personService.Register(c.Request.Context(), input.ID, models.Role(input.Role))
	if err != nil {
		log.WithError(err).Error("Failed to register person in service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToPersonResponse(person))
}

// @Summary Get person by ID
// @Description Get a tracked person with the current inferred status. Requires API key.
// @Tags Persons
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Person ID"
// @Success 200 {object} PersonResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Person not found"
// @Router /persons/{id} [get]
func (h *Handler) getPerson(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getPerson").WithField("id", id)

	person, err := h.personService.Get(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get person from service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToPersonResponse(person))
}

// @Summary Save a call for a person
// @Description Save a call transcript with tags and trigger status inference. Requires API key.
// @Tags Persons
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Person ID"
// @Param call body SaveCallRequest true "Call record"
// @Success 202 "Accepted"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Person not found"
// @Router /persons/{id}/calls [post]
func (h *Handler) saveCall(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "saveCall").WithField("id", id)

	var input SaveCallRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.personService.SaveCall(c.Request.Context(), id, DTOToCallRecord(input)); err != nil {
		log.WithError(err).Error("Failed to save call in service")
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// @Summary Save a location sample for a person
// @Description Save a GPS sample and trigger status inference. Requires API key.
// @Tags Persons
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Person ID"
// @Param location body SaveLocationRequest true "Location sample"
// @Success 202 "Accepted"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Person not found"
// @Router /persons/{id}/locations [post]
func (h *Handler) saveLocation(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "saveLocation").WithField("id", id)

	var input SaveLocationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.personService.SaveLocation(c.Request.Context(), id, DTOToLocationSample(input)); err != nil {
		log.WithError(err).Error("Failed to save location in service")
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// @Summary Get priority score for a civilian
// @Description Compute the urgency score (0-100) for a civilian from the latest call, its recency and danger zone proximity. Requires API key.
// @Tags Persons
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Person ID"
// @Success 200 {object} PriorityResponse
// @Failure 400 {object} map[string]string "Person is not a civilian"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Person not found"
// @Router /persons/{id}/priority [get]
func (h *Handler) getPriorityScore(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getPriorityScore").WithField("id", id)

	score, err := h.personService.PriorityScore(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to compute priority score")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, PriorityResponse{PersonID: id, Score: score})
}

// @Summary Create an assignment
// @Description Pair a civilian with a responder. Each person can hold at most one active assignment. Requires API key.
// @Tags Assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param assignment body CreateAssignmentRequest true "Assignment creation request"
// @Success 201 {object} AssignmentResponse
// @Failure 400 {object} map[string]string "Invalid request body or role mismatch"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Person not found"
// @Failure 409 {object} map[string]string "Active assignment already exists"
// @Router /assignments [post]
func (h *Handler) createAssignment(c *gin.Context) {
	var input CreateAssignmentRequest
	log := h.logger.WithField("method", "createAssignment")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.assignmentService.Create(c.Request.Context(), input.CivilianID, input.ResponderID)
	if err != nil {
		log.WithError(err).Warn("Failed to create assignment in service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToAssignmentResponse(assignment))
}

// @Summary Get a list of assignments
// @Description Get all assignments, optionally only the active ones. Requires API key.
// @Tags Assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param active query bool false "Return only active assignments" default(false)
// @Success 200 {array} AssignmentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /assignments [get]
func (h *Handler) listAssignments(c *gin.Context) {
	log := h.logger.WithField("method", "listAssignments")
	activeOnly := c.DefaultQuery("active", "false") == "true"

	assignments, err := h.assignmentService.List(c.Request.Context(), activeOnly)
	if err != nil {
		log.WithError(err).Error("Failed to list assignments from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToAssignmentResponses(assignments))
}

// @Summary Get assignment by ID
// @Description Get a single assignment by its ID. Requires API key.
// @Tags Assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Assignment ID"
// @Success 200 {object} AssignmentResponse
// @Failure 400 {object} map[string]string "Invalid assignment ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Assignment not found"
// @Router /assignments/{id} [get]
func (h *Handler) getAssignment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assignment ID"})
		return
	}
	log := h.logger.WithField("method", "getAssignment").WithField("id", id)

	assignment, err := h.assignmentService.Get(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get assignment from service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAssignmentResponse(assignment))
}

// @Summary Complete an assignment
// @Description Mark an assignment as completed. Completing an already completed assignment is a no-op. Requires API key.
// @Tags Assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Assignment ID"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid assignment ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Assignment not found"
// @Router /assignments/{id}/complete [put]
func (h *Handler) completeAssignment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assignment ID"})
		return
	}
	log := h.logger.WithField("method", "completeAssignment").WithField("id", id)

	if err := h.assignmentService.Complete(c.Request.Context(), id); err != nil {
		log.WithError(err).Warn("Failed to complete assignment in service")
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Get application health status
// @Description Check if the application is up and running.
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
