// Package transport holds what every gRPC handler shares: error mapping and
// server construction.
package transport

import (
	"errors"

	"github.com/fekuna/omnipos-tracker/internal/inventory"
	"github.com/fekuna/omnipos-tracker/internal/model"
	"github.com/fekuna/omnipos-tracker/pkg/database/sqlite"
	"github.com/fekuna/omnipos-tracker/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Code classifies err into a gRPC status code.
func Code(err error) codes.Code {
	switch {
	case err == nil:
		return codes.OK
	case errors.Is(err, model.ErrInvalidInput):
		return codes.InvalidArgument
	case errors.Is(err, inventory.ErrNegativeStock), errors.Is(err, sqlite.ErrConstraint):
		return codes.FailedPrecondition
	case errors.Is(err, sqlite.ErrUnavailable):
		return codes.Unavailable
	default:
		return codes.Internal
	}
}

// Error converts a use case error to a status error, logging the ones the
// caller cannot fix.
func Error(log logger.ZapLogger, msg string, err error) error {
	code := Code(err)
	if code == codes.Internal || code == codes.Unavailable {
		log.Error(msg, zap.Error(err))
	}
	return status.Error(code, err.Error())
}

// NotFound is returned by handlers when the use case reports a nil result.
func NotFound(what string) error {
	return status.Error(codes.NotFound, what+" not found")
}
