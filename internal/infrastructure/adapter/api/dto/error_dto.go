package dto

import (
	"context"

	domainerr "github.com/amirhossein-jamali/fanattics-portal/internal/domain/error"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/logger"
)

// ErrorResponse is the body of every failed API call. RequestID echoes
// X-Request-ID so a member can quote it to support.
type ErrorResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

// NewErrorResponse builds the body for err, coded by its domain error
func NewErrorResponse(ctx context.Context, err error, message string) ErrorResponse {
	return ErrorResponse{
		Code:      domainerr.ErrorCode(err),
		Message:   message,
		RequestID: logger.RequestID(ctx),
	}
}

// HealthResponse answers GET /healthz
type HealthResponse struct {
	Status string        `json:"status"`
	Pool   *PoolResponse `json:"pool,omitempty"`
}

// PoolResponse is the last sampled database connection pool usage
type PoolResponse struct {
	Open         int    `json:"open"`
	Idle         int    `json:"idle"`
	InUse        int    `json:"inUse"`
	MaxOpen      int    `json:"maxOpen"`
	WaitCount    int64  `json:"waitCount"`
	WaitDuration string `json:"waitDuration"`
}
