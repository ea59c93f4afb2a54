package errors

import (
	"encoding/json"
	"maps"
	"slices"

	"google.golang.org/grpc/codes"
)

// Reason is a stable machine-readable code.
type Reason string

const (
	ReasonInvalidRecord  Reason = "invalid_record"
	ReasonInvalidConfig  Reason = "invalid_config"
	ReasonConfigLoad     Reason = "config_load_failed"
	ReasonUnknownStep    Reason = "unknown_step"
	ReasonEmptyPipeline  Reason = "empty_pipeline"
	ReasonNilStep        Reason = "nil_step"
	ReasonValidation     Reason = "validation_failed"
	ReasonCanceled       Reason = "canceled"
	ReasonDeadline       Reason = "deadline_exceeded"
	ReasonUnexpected     Reason = "unexpected_error"
	ReasonInvalidArgument Reason = "invalid_argument"
)

type FieldViolation struct {
	Field       string `json:"field"`
	Reason      string `json:"reason,omitempty"`
	Description string `json:"description,omitempty"`
}

// ErrorResponse is the error value shared by config loading, processors and
// the pipeline. Domain names the normalization domain, e.g. "email".
type ErrorResponse struct {
	Code       codes.Code        `json:"code"`
	Reason     Reason            `json:"reason,omitempty"`
	Domain     string            `json:"domain,omitempty"`
	Message    string            `json:"message"`
	Details    map[string]string `json:"details,omitempty"`
	Violations []FieldViolation  `json:"violations,omitempty"`
}

func newResponse(code codes.Code, reason Reason, message string) ErrorResponse {
	return ErrorResponse{Code: code, Reason: reason, Message: message}
}

func (e ErrorResponse) WithReason(r Reason) ErrorResponse { e.Reason = r; return e }
func (e ErrorResponse) WithDomain(d string) ErrorResponse { e.Domain = d; return e }

// WithDetail and WithDetails never write into the receiver's map.
func (e ErrorResponse) WithDetail(k, v string) ErrorResponse {
	return e.WithDetails(map[string]string{k: v})
}

func (e ErrorResponse) WithDetails(m map[string]string) ErrorResponse {
	if len(m) == 0 {
		return e
	}
	details := make(map[string]string, len(e.Details)+len(m))
	maps.Copy(details, e.Details)
	maps.Copy(details, m)
	e.Details = details
	return e
}

func (e ErrorResponse) WithViolations(v []FieldViolation) ErrorResponse {
	if len(v) == 0 {
		return e
	}
	e.Violations = slices.Clone(v)
	return e
}

// MarshalJSON renders Code by name so logged errors stay readable.
func (e ErrorResponse) MarshalJSON() ([]byte, error) {
	type plain ErrorResponse
	return json.Marshal(struct {
		Code string `json:"code"`
		plain
	}{Code: e.Code.String(), plain: plain(e)})
}

func (e ErrorResponse) Error() string {
	b, err := json.Marshal(e)
	if err != nil {
		return string(e.Reason) + ": " + e.Message
	}
	return string(b)
}

// violationsFromMap orders violations by field name.
func violationsFromMap(m map[string]string) []FieldViolation {
	if len(m) == 0 {
		return nil
	}
	out := make([]FieldViolation, 0, len(m))
	for _, f := range slices.Sorted(maps.Keys(m)) {
		out = append(out, FieldViolation{Field: f, Reason: m[f]})
	}
	return out
}
