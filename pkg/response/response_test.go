package response_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/maxviazov/bjj-scoreboard/internal/service"
	"github.com/maxviazov/bjj-scoreboard/pkg/response"
)

// fakeInvalid mimics the service aggregated validation error to test mapping without reaching into internals.
type fakeInvalid struct{ fe []service.FieldError }

func (f *fakeInvalid) Error() string                { return service.ErrInvalidInput.Error() }
func (f *fakeInvalid) Unwrap() error                { return service.ErrInvalidInput }
func (f *fakeInvalid) Fields() []service.FieldError { return f.fe }

func TestMapError(t *testing.T) {
	cases := []struct {
		name     string
		in       error
		wantCode int
		wantErr  string
	}{
		{"ok", nil, 200, "ok"},
		{"invalid_input", &fakeInvalid{fe: []service.FieldError{{Field: "competitor", Message: "bad"}}}, 400, "invalid_input"},
		{"match_started", fmt.Errorf("update: %w", service.ErrMatchStarted), 409, "match_started"},
		{"no_match", service.ErrNoMatch, 503, "no_match"},
		{"cancelled", context.Canceled, 503, "cancelled"},
		{"internal", errors.New("boom"), 500, "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, payload := response.MapError(tc.in)
			if code != tc.wantCode || payload.Error != tc.wantErr {
				t.Fatalf("unexpected mapping: got (%d,%s) want (%d,%s)", code, payload.Error, tc.wantCode, tc.wantErr)
			}
			if tc.wantErr == "invalid_input" && len(payload.FieldErrors) == 0 {
				t.Fatalf("expected field errors in payload")
			}
		})
	}
}
