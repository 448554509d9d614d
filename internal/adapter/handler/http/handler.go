package http

import (
	"errors"
	"net/http"

	"github.com/brsantos/burgerhall/internal/core/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrBadRequest: http.StatusBadRequest,

	domain.ErrInvalidOrder:       http.StatusUnprocessableEntity,
	domain.ErrInvalidProducts:    http.StatusUnprocessableEntity,
	domain.ErrOrderNotValid:      http.StatusUnprocessableEntity,
	domain.ErrUnknownOrderStatus: http.StatusBadRequest,
	domain.ErrSameStatus:         http.StatusConflict,
}

type errorResponse struct {
	Error string `json:"error"`
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleValidationError sends an error response for some specific request validation error
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

// handleError sends the mapped status code with the domain error message.
// Wrapped errors are matched through errors.Is so typed failures keep their
// user-facing text.
func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode := http.StatusInternalServerError
	for e, code := range errorStatusMap {
		if errors.Is(err, e) {
			statusCode = code
			break
		}
	}
	if statusCode == http.StatusInternalServerError {
		h.logger.Error("error processing request", zap.Error(err))
	}
	ctx.JSON(statusCode, errorResponse{Error: err.Error()})
}

// handleSuccess sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}
