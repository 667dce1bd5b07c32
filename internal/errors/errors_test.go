package errors

import (
	stderrors "errors"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	err := New(TypeValidation, "bad input")
	want := "[VALIDATION_ERROR] bad input"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(TypeTransport, "relay unreachable", cause)

	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause lost")
	}
	if !IsType(err, TypeTransport) {
		t.Error("IsType missed the transport type")
	}
	if IsType(err, TypeUpstream) {
		t.Error("IsType matched the wrong type")
	}
}

func TestIsTypeOnPlainError(t *testing.T) {
	if IsType(stderrors.New("plain"), TypeInternal) {
		t.Error("IsType matched a plain error")
	}
}

func TestHelpers(t *testing.T) {
	tests := []struct {
		err  *Error
		want Type
	}{
		{Validation("v"), TypeValidation},
		{Transport("t", nil), TypeTransport},
		{Upstream("u", nil), TypeUpstream},
		{Config("c"), TypeConfig},
		{Internal("i", nil), TypeInternal},
	}

	for _, tt := range tests {
		if tt.err.Type != tt.want {
			t.Errorf("helper produced type %s, want %s", tt.err.Type, tt.want)
		}
	}
}
