package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeSyntaxNotRectangular, "panel %q is not rectangular", "a")

	if err.Code != ErrCodeSyntaxNotRectangular {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeSyntaxNotRectangular)
	}

	if err.Message != `panel "a" is not rectangular` {
		t.Errorf("Message = %v", err.Message)
	}

	expected := `SYNTAX_NOT_RECTANGULAR: panel "a" is not rectangular`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeSyntaxInvalidInset, cause, "bad inset bound")

	if err.Code != ErrCodeSyntaxInvalidInset {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeSyntaxInvalidInset)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeSyntaxEmpty, "test"),
			code:     ErrCodeSyntaxEmpty,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeSyntaxEmpty, "test"),
			code:     ErrCodeValidationFailed,
			expected: false,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			code:     ErrCodeSyntaxEmpty,
			expected: false,
		},
		{
			name:     "wrapped structured error",
			err:      Wrap(ErrCodeInvalidPlain, New(ErrCodeSyntaxEmpty, "inner"), "outer"),
			code:     ErrCodeInvalidPlain,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeUnknownOwner, "x")); got != ErrCodeUnknownOwner {
		t.Errorf("GetCode = %v, want %v", got, ErrCodeUnknownOwner)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeSyntaxEmpty, "layout code is empty")
	if got := UserMessage(err); got != "layout code is empty" {
		t.Errorf("UserMessage = %v", got)
	}
	plain := errors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage = %v", got)
	}
}

func TestTaxonomy(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		syntax, valid  bool
	}{
		{"syntax empty", New(ErrCodeSyntaxEmpty, "x"), true, false},
		{"syntax rect", New(ErrCodeSyntaxNotRectangular, "x"), true, false},
		{"validation", New(ErrCodeValidationFailed, "x"), false, true},
		{"unknown owner", New(ErrCodeUnknownOwner, "x"), false, true},
		{"plain doc", New(ErrCodeInvalidPlain, "x"), false, false},
		{"stdlib error", errors.New("x"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSyntax(tt.err); got != tt.syntax {
				t.Errorf("IsSyntax = %v, want %v", got, tt.syntax)
			}
			if got := IsValidation(tt.err); got != tt.valid {
				t.Errorf("IsValidation = %v, want %v", got, tt.valid)
			}
		})
	}
}
