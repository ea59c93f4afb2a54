package errors

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
)

// ToErrorResponse converts any error into ErrorResponse.
// Supported inputs:
// - ErrorResponse / *ErrorResponse anywhere in the chain
// - context.Canceled / context.DeadlineExceeded
// - go-playground validator.ValidationErrors (via FromPlayground with DefaultTagReasons)
func ToErrorResponse(err error) ErrorResponse {
	if err == nil {
		return Internal()
	}

	switch {
	case errors.Is(err, context.Canceled):
		return newResponse(codes.Canceled, ReasonCanceled, "Run canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return newResponse(codes.DeadlineExceeded, ReasonDeadline, "Deadline exceeded")
	}

	var ev ErrorResponse
	if errors.As(err, &ev) {
		return ev
	}

	var ep *ErrorResponse
	if errors.As(err, &ep) && ep != nil {
		return *ep
	}

	if ves, ok := asPlayground(err); ok {
		return FromPlayground(ves, DefaultTagReasons)
	}

	return Internal().WithDetail("cause", err.Error())
}
