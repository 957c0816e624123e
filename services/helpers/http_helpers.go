package helpers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"auction-platform/internal/auctionerrors"
	"auction-platform/utils"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuth):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, auctionerrors.ErrForbidden):
		return http.StatusForbidden, "operation not permitted"
	case errors.Is(err, auctionerrors.ErrCommissionOutstanding):
		return http.StatusForbidden, "unpaid commission outstanding"
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, auctionerrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, auctionerrors.ErrProofNotFound):
		return http.StatusNotFound, "payment proof not found"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrBidBelowStarting):
		return http.StatusConflict, "bid below starting bid"
	case errors.Is(err, auctionerrors.ErrEmailTaken):
		return http.StatusConflict, "email already registered"
	case errors.Is(err, auctionerrors.ErrActiveAuctionExists):
		return http.StatusConflict, "an active auction already exists"
	case errors.Is(err, auctionerrors.ErrStillActive):
		return http.StatusConflict, "auction is still active"
	case errors.Is(err, auctionerrors.ErrNotStarted):
		return http.StatusBadRequest, "auction has not started yet"
	case errors.Is(err, auctionerrors.ErrEnded):
		return http.StatusBadRequest, "auction has ended"
	case errors.Is(err, auctionerrors.ErrStartInPast):
		return http.StatusBadRequest, "start time must be in the future"
	case errors.Is(err, auctionerrors.ErrEndBeforeStart):
		return http.StatusBadRequest, "end time must be after start time"
	case errors.Is(err, auctionerrors.ErrProofExceedsBalance):
		return http.StatusBadRequest, "amount exceeds unpaid commission"
	case errors.Is(err, auctionerrors.ErrValidation):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, auctionerrors.ErrUnsupportedMedia):
		return http.StatusUnsupportedMediaType, "unsupported image format"
	case errors.Is(err, auctionerrors.ErrUpload):
		return http.StatusBadGateway, "image upload failed"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondError maps the error, sends the JSON error body and logs it.
func RespondError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	if ctx == nil {
		ctx = map[string]any{}
	}
	ctx["error"] = err.Error()
	utils.Error(handlerName+": "+message, ctx)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// ReadImageFile pulls the named multipart file, enforcing the size cap.
// The MIME allow-list check happens at the service layer.
func ReadImageFile(c *gin.Context, field string, maxSize int64) ([]byte, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("missing %s file: %w", field, auctionerrors.ErrValidation)
	}
	if fileHeader.Size > maxSize {
		return nil, fmt.Errorf("%s exceeds %d bytes: %w", field, maxSize, auctionerrors.ErrValidation)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", field, auctionerrors.ErrValidation)
	}
	defer file.Close()

	content := make([]byte, fileHeader.Size)
	if _, err := io.ReadFull(file, content); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", field, auctionerrors.ErrValidation)
	}
	return content, nil
}
