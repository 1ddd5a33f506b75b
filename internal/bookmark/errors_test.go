package bookmark

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	base := fs.ErrPermission
	err := NewError(KindIO, "opening store", base)

	if !IsIO(err) {
		t.Errorf("IsIO() = false, want true")
	}
	if IsParse(err) || IsUsage(err) || IsSerialization(err) {
		t.Errorf("unexpected kind match for %v", err)
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("errors.Is(err, fs.ErrPermission) = false, want true")
	}
	if got, want := err.Error(), "opening store: permission denied"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	wrapped := fmt.Errorf("add: %w", err)
	if KindOf(wrapped) != KindIO {
		t.Errorf("KindOf(wrapped) = %v, want %v", KindOf(wrapped), KindIO)
	}
	if KindOf(base) != KindUnknown {
		t.Errorf("KindOf(plain) = %v, want %v", KindOf(base), KindUnknown)
	}
}

func TestValidateName(t *testing.T) {
	if err := ValidateName("alpha"); err != nil {
		t.Errorf("ValidateName(alpha) = %v, want nil", err)
	}
	err := ValidateName("")
	if !IsUsage(err) {
		t.Errorf("ValidateName(\"\") kind = %v, want %v", KindOf(err), KindUsage)
	}
	if !errors.Is(err, ErrEmptyName) {
		t.Errorf("ValidateName(\"\") = %v, want ErrEmptyName", err)
	}
}

func TestUsageErrorf(t *testing.T) {
	err := UsageErrorf("invalid offset %q", "x")
	if !IsUsage(err) {
		t.Errorf("UsageErrorf() kind = %v, want %v", KindOf(err), KindUsage)
	}
	if got, want := err.Error(), `invalid offset "x"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
