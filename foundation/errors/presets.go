package errors

import (
	"fmt"

	"google.golang.org/grpc/codes"
)

func InvalidArgument() ErrorResponse {
	return newResponse(codes.InvalidArgument, ReasonInvalidArgument, "Invalid argument")
}

func Internal() ErrorResponse {
	return newResponse(codes.Internal, ReasonUnexpected, "Internal error")
}

// InvalidRecord is returned when a processor is handed something that is not a record.
func InvalidRecord(domain string) ErrorResponse {
	return InvalidArgument().
		WithReason(ReasonInvalidRecord).
		WithDomain(domain).
		WithDetail("record", "must be a non-nil mapping")
}

// InvalidConfig reports one bad configuration key.
func InvalidConfig(domain, key, reason string) ErrorResponse {
	return Validation(violationsFromMap(map[string]string{key: reason})).
		WithReason(ReasonInvalidConfig).
		WithDomain(domain).
		WithDetail(key, reason)
}

// UnknownStep is returned for a pipeline step name no processor answers to.
func UnknownStep(name string) ErrorResponse {
	return InvalidArgument().WithReason(ReasonUnknownStep).WithDetail("step", name)
}

// ConfigLoad wraps a failure to read or decode a configuration source.
func ConfigLoad(source string, cause error) ErrorResponse {
	e := newResponse(codes.FailedPrecondition, ReasonConfigLoad, "Configuration could not be loaded").
		WithDetail("source", source)
	if cause != nil {
		e.Message = cause.Error()
	}
	return e
}

func EmptyPipeline(domain string) ErrorResponse {
	return InvalidArgument().WithReason(ReasonEmptyPipeline).WithDomain(domain)
}

func NilStep(index int) ErrorResponse {
	return InvalidArgument().WithReason(ReasonNilStep).WithDetail("index", fmt.Sprint(index))
}

// Validation carries struct validation failures.
func Validation(v []FieldViolation) ErrorResponse {
	return InvalidArgument().WithReason(ReasonValidation).WithViolations(v)
}
