package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestToHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrInvalid("x"), http.StatusBadRequest},
		{ErrNotFound("x"), http.StatusNotFound},
		{ErrConflict("x"), http.StatusConflict},
		{ErrUnauthenticated("x"), http.StatusUnauthorized},
		{ErrForbidden("x"), http.StatusForbidden},
		{ErrInternal("x"), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", ErrNotFound("x")), http.StatusNotFound},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := ToHTTPStatus(tt.err); got != tt.want {
			t.Errorf("ToHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestBodyFromHidesPlainErrors(t *testing.T) {
	b := BodyFrom(errors.New("dial tcp 10.0.0.1:3306: refused"))
	if b.Error.Code != CodeInternal || b.Error.Message != "internal error" {
		t.Errorf("body = %+v", b)
	}
	b = BodyFrom(Invalidf("period %d", 3))
	if b.Error.Code != CodeInvalidArgument || b.Error.Message != "period 3" {
		t.Errorf("body = %+v", b)
	}
}
