package errorx

import (
	"errors"
	"fmt"
	"testing"

	"libstat/infra/errorx/errCode"
)

func TestCodeThroughWrap(t *testing.T) {
	err := New(errCode.INVALID_INDEX, "idx=7")
	wrapped := fmt.Errorf("range: %w", err)

	if !HasCode(wrapped, errCode.INVALID_INDEX) {
		t.Fatalf("expected INVALID_INDEX, got %v", CodeOf(wrapped))
	}
	if HasCode(wrapped, errCode.INVALID_BOUNDS) {
		t.Fatal("unexpected INVALID_BOUNDS")
	}
	if !errors.Is(wrapped, New(errCode.INVALID_INDEX, "")) {
		t.Fatal("errors.Is should match on code")
	}
	if CodeOf(fmt.Errorf("plain")) != errCode.UNKNOWN {
		t.Fatal("plain error should have UNKNOWN code")
	}
	if HasCode(nil, errCode.UNKNOWN) {
		t.Fatal("nil error has no code")
	}
}

func TestMessage(t *testing.T) {
	err := Newf(errCode.INVALID_PART_COUNT, "parts=%d", 1)
	if err.Error() != "[INVALID_PART_COUNT] parts=1" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
