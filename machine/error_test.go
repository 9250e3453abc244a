package machine

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{EmptyFinalStates, "EmptyFinalStates"},
		{InvalidKind, "InvalidKind"},
		{InvalidFlags, "InvalidFlags"},
		{NilTransitionFunc, "NilTransitionFunc"},
		{InvalidConfig, "InvalidConfig"},
		{UnrecognizedMode, "UnrecognizedMode"},
		{ErrorKind(99), "UnknownErrorKind(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestErrorError(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "sentinel",
			err:  ErrEmptyFinalStates,
			want: "fsm: the set of final states cannot be empty",
		},
		{
			name: "with cause",
			err:  &Error{Kind: InvalidConfig, Message: "bad config", Cause: fmt.Errorf("limit is zero")},
			want: "fsm: bad config: limit is zero",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorIsComparesKinds(t *testing.T) {
	err := &Error{Kind: InvalidKind, Message: "custom message"}
	if !errors.Is(err, ErrInvalidKind) {
		t.Error("errors.Is should match on kind")
	}
	if errors.Is(err, ErrInvalidFlags) {
		t.Error("errors.Is should not match a different kind")
	}
	if errors.Is(err, errors.New("fsm: the machine kind is invalid")) {
		t.Error("errors.Is should not match a non-*Error")
	}

	cause := errors.New("root")
	wrapped := &Error{Kind: InvalidConfig, Message: "wrap", Cause: cause}
	if !errors.Is(wrapped, cause) {
		t.Error("Unwrap should expose the cause")
	}
}
