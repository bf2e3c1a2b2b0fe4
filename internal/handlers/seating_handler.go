package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"

	"wedplan-go/internal/api"
	"wedplan-go/internal/domain"
	"wedplan-go/internal/metrics"
	"wedplan-go/internal/service"
)

// SeatingHandler serves POST /v1/optimize and GET /health.
type SeatingHandler struct {
	service    *service.SeatingService
	logger     hclog.Logger
	appVersion string
}

// NewSeatingHandler wires a SeatingHandler from its collaborators.
func NewSeatingHandler(svc *service.SeatingService, logger hclog.Logger, appVersion string) *SeatingHandler {
	return &SeatingHandler{service: svc, logger: logger, appVersion: appVersion}
}

// HealthCheck reports the service is up and which version is running.
func (h *SeatingHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.appVersion,
	})
}

// Optimize handles POST /v1/optimize: bind and schema-validate the
// request body (400 on failure), run the seating pipeline, and classify
// any domain validation error into a 422 before falling back to 500 for
// anything else (spec §7).
func (h *SeatingHandler) Optimize(c *gin.Context) {
	var req api.ProblemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "schema_error",
			"detail": err.Error(),
		})
		return
	}

	problem := req.ToDomain()

	resp, err := h.service.Optimize(c.Request.Context(), problem)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.FromDomain(resp))
}

func (h *SeatingHandler) handleError(c *gin.Context, err error) {
	var validationErr domain.ValidationError
	if errors.As(err, &validationErr) {
		metrics.ValidationErrorsTotal.WithLabelValues(validationErrorKind(err)).Inc()
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  validationErrorKind(err),
			"detail": validationErr.Error(),
		})
		return
	}

	var modelErr *domain.ModelBuildError
	if errors.As(err, &modelErr) {
		h.logger.Error("model build invariant violated", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  "model_build_error",
			"detail": "internal solver error",
		})
		return
	}

	h.logger.Error("unclassified solve error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":  "internal_error",
		"detail": "internal error",
	})
}

// validationErrorKind names the concrete error type for the response
// body's "error" field and the validation-error metric label.
func validationErrorKind(err error) string {
	switch {
	case errors.As(err, new(*domain.DuplicateIDError)):
		return "duplicate_id"
	case errors.As(err, new(*domain.GuestNotFoundError)):
		return "guest_not_found"
	case errors.As(err, new(*domain.GroupNotFoundError)):
		return "group_not_found"
	case errors.As(err, new(*domain.GroupTooLargeError)):
		return "group_too_large"
	case errors.As(err, new(*domain.DuplicateGroupMemberError)):
		return "duplicate_group_member"
	case errors.As(err, new(*domain.CapacityError)):
		return "capacity_error"
	case errors.As(err, new(*domain.AsymmetricPartnerError)):
		return "asymmetric_partner"
	case errors.As(err, new(*domain.PartnerSizeError)):
		return "partner_size_error"
	default:
		return "validation_error"
	}
}
