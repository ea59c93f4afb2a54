package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
)

func TestToErrorResponse_Context(t *testing.T) {
	cases := []struct {
		err    error
		code   codes.Code
		reason Reason
	}{
		{err: fmt.Errorf("read records: %w", context.Canceled), code: codes.Canceled, reason: ReasonCanceled},
		{err: fmt.Errorf("read records: %w", context.DeadlineExceeded), code: codes.DeadlineExceeded, reason: ReasonDeadline},
	}
	for _, tc := range cases {
		out := ToErrorResponse(tc.err)
		if out.Code != tc.code || out.Reason != tc.reason {
			t.Fatalf("%v: got %+v", tc.err, out)
		}
	}
}

func TestToErrorResponse_Nil(t *testing.T) {
	out := ToErrorResponse(nil)
	if out.Code != codes.Internal || out.Reason != ReasonUnexpected {
		t.Fatalf("unexpected nil adaptation: %+v", out)
	}
}

func TestToErrorResponse_Passthrough(t *testing.T) {
	in := InvalidRecord("name")
	if out := ToErrorResponse(fmt.Errorf("name step: %w", in)); out.Reason != ReasonInvalidRecord || out.Domain != "name" {
		t.Fatalf("expected passthrough, got %+v", out)
	}

	ptr := &ErrorResponse{Code: codes.InvalidArgument, Reason: ReasonNilStep}
	if out := ToErrorResponse(fmt.Errorf("pipeline: %w", ptr)); out.Reason != ReasonNilStep {
		t.Fatalf("expected pointer passthrough, got %+v", out)
	}
}

func TestToErrorResponse_Unknown(t *testing.T) {
	out := ToErrorResponse(errors.New("boom"))
	if out.Code != codes.Internal || out.Details["cause"] != "boom" {
		t.Fatalf("unexpected generic adaptation: %+v", out)
	}
}
