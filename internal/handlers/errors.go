package handlers

import (
	"errors"

	"github.com/gigconnect/marketplace-api/internal/apierrors"
	"github.com/gigconnect/marketplace-api/internal/logging"
	"github.com/gigconnect/marketplace-api/internal/services"
	"github.com/gin-gonic/gin"
)

// respondServiceError maps domain errors onto the HTTP error taxonomy.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotTaskCreator), errors.Is(err, services.ErrOwnTaskBid):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrDuplicateBid):
		apierrors.Conflict(c, err.Error())
	case services.IsValidationError(err):
		apierrors.BadRequest(c, err.Error())
	default:
		logging.Logger.WithError(err).Error("Unhandled service error")
		apierrors.InternalError(c, "")
	}
}
