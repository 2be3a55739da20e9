package common

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    codes.Code
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// GRPCStatus lets status.FromError read an AppError.
func (e *AppError) GRPCStatus() *status.Status {
	return status.New(e.Code, e.Message)
}

// Common application errors
var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("resource not found")
	ErrUpstream       = errors.New("upstream service error")
	ErrInfrastructure = errors.New("infrastructure error")
	ErrInternal       = errors.New("internal error")
)

// Error constructors
func NewAppError(code codes.Code, message string, cause error) *AppError {
	return &AppError{Code: code, Message: message, Cause: cause}
}

func InvalidArgument(message string, cause error) error {
	return NewAppError(codes.InvalidArgument, message, cause)
}

func NotFound(message string, cause error) error {
	return NewAppError(codes.NotFound, message, cause)
}

func Unavailable(message string, cause error) error {
	return NewAppError(codes.Unavailable, message, cause)
}

func Internal(message string, cause error) error {
	return NewAppError(codes.Internal, message, cause)
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Code classifies err. Wrapped AppErrors and gRPC statuses keep their code;
// context errors map to Canceled and DeadlineExceeded; anything else is
// Unknown.
func Code(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	switch {
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	case errors.Is(err, ErrInvalidInput):
		return codes.InvalidArgument
	case errors.Is(err, ErrNotFound):
		return codes.NotFound
	case errors.Is(err, ErrUpstream), errors.Is(err, ErrInfrastructure):
		return codes.Unavailable
	case errors.Is(err, ErrInternal):
		return codes.Internal
	}
	if s, ok := status.FromError(err); ok {
		return s.Code()
	}
	return codes.Unknown
}

// HTTPStatus maps a code onto the closest HTTP status.
func HTTPStatus(c codes.Code) int {
	switch c {
	case codes.OK:
		return http.StatusOK
	case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.Canceled:
		return 499
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	case codes.Unavailable:
		return http.StatusBadGateway
	case codes.Unimplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// ExitCode maps a code onto a process exit status.
func ExitCode(c codes.Code) int {
	switch c {
	case codes.OK:
		return 0
	case codes.InvalidArgument, codes.NotFound:
		return 2
	case codes.Unavailable, codes.DeadlineExceeded:
		return 3
	default:
		return 1
	}
}
