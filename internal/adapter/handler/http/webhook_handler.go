package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/growcrm/outreach-sync/internal/auth"
	"github.com/growcrm/outreach-sync/internal/domain/dto"
	"github.com/growcrm/outreach-sync/internal/usecase"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// WebhookHandler receives outreach connection events. Requests fail with
// 401 on a secret mismatch and 400 on schema validation problems; anything
// downstream of that degrades to skipped outcomes inside a 200 response.
type WebhookHandler struct {
	logger   *zap.Logger
	verifier *auth.Verifier
	sync     *usecase.ContactSyncService
	batch    *usecase.BatchCoordinator
	validate *validator.Validate
}

func NewWebhookHandler(logger *zap.Logger, verifier *auth.Verifier, sync *usecase.ContactSyncService, batch *usecase.BatchCoordinator) *WebhookHandler {
	return &WebhookHandler{
		logger:   logger,
		verifier: verifier,
		sync:     sync,
		batch:    batch,
		validate: validator.New(),
	}
}

// ConnectionAccepted handles POST /webhooks/outreach/connection-accepted.
func (h *WebhookHandler) ConnectionAccepted(c echo.Context) error {
	var req dto.ConnectionAcceptedRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "invalid request body",
		})
	}

	if !h.verifier.Verify(req.WebhookSecret) {
		h.logger.Warn("Webhook secret mismatch",
			zap.String("event_type", req.EventType))
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"success": false,
			"error":   "invalid webhook secret",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "validation failed",
			"details": validationDetails(err),
		})
	}

	h.logger.Info("Connection accepted event received",
		zap.String("event_id", req.Connection.ID),
		zap.String("organization_id", req.Source.OrganizationID),
		zap.String("urn_id", req.Connection.URNID))

	outcome := h.sync.Sync(c.Request().Context(), req.Source.OrganizationID, &req.Connection)
	return c.JSON(http.StatusOK, outcome)
}

// BatchSync handles POST /webhooks/outreach/batch-sync. Individual item
// failures are reflected inside the results, never as a non-200 status.
func (h *WebhookHandler) BatchSync(c echo.Context) error {
	var req dto.BatchSyncRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "invalid request body",
		})
	}

	if !h.verifier.Verify(req.WebhookSecret) {
		h.logger.Warn("Webhook secret mismatch on batch sync")
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"success": false,
			"error":   "invalid webhook secret",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "validation failed",
			"details": validationDetails(err),
		})
	}
	if req.Connections == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "connections must be a list",
		})
	}

	h.logger.Info("Batch sync request received",
		zap.String("organization_id", req.OrganizationID),
		zap.Int("connection_count", len(req.Connections)))

	result := h.batch.Run(c.Request().Context(), req.OrganizationID, req.Connections)
	return c.JSON(http.StatusOK, result)
}

// validationDetails flattens validator errors into field/tag strings.
func validationDetails(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	details := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		details = append(details, fieldErr.Namespace()+": "+fieldErr.Tag())
	}
	return details
}
