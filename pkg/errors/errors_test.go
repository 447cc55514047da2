package errors

import (
	stderrors "errors"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeInvalidDocument, "topology has no %q key", "objects")
	want := `INVALID_DOCUMENT: topology has no "objects" key`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("no such file")
	err := Wrap(ErrCodeFileNotFound, cause, "open metadata")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error lost its cause")
	}
	if !Is(err, ErrCodeFileNotFound) {
		t.Error("Is() failed to match code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is() matched wrong code")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeObjectNotFound, "x")); got != ErrCodeObjectNotFound {
		t.Errorf("GetCode() = %q, want OBJECT_NOT_FOUND", got)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidInput, "bad flag")); got != "bad flag" {
		t.Errorf("UserMessage() = %q, want %q", got, "bad flag")
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}
