package requests

import (
	"errors"
	"testing"
)

func TestTransitionFromPending(t *testing.T) {
	if err := Transition(StatusPending, StatusApproved); err != nil {
		t.Fatalf("pending→approved should be allowed: %v", err)
	}
	if err := Transition(StatusPending, StatusRejected); err != nil {
		t.Fatalf("pending→rejected should be allowed: %v", err)
	}
}

func TestTransitionTerminalStatesAreFinal(t *testing.T) {
	for _, current := range []string{StatusApproved, StatusRejected} {
		for _, target := range []string{StatusApproved, StatusRejected} {
			err := Transition(current, target)
			if !errors.Is(err, ErrTerminalState) {
				t.Errorf("Transition(%s, %s) = %v, want ErrTerminalState", current, target, err)
			}
		}
	}
}

func TestTransitionRejectsInvalidTargets(t *testing.T) {
	for _, target := range []string{StatusPending, "CANCELADO", ""} {
		err := Transition(StatusPending, target)
		if !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("Transition(pending, %q) = %v, want ErrInvalidStatus", target, err)
		}
	}
}

func TestTransitionRejectsUnknownCurrentState(t *testing.T) {
	if err := Transition("BORRADOR", StatusApproved); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestValidType(t *testing.T) {
	for _, requestType := range []string{TypeVacation, TypePermission, TypeLeave} {
		if !ValidType(requestType) {
			t.Errorf("expected %s to be valid", requestType)
		}
	}
	if ValidType("FERIADO") {
		t.Error("expected FERIADO to be invalid")
	}
	if ValidType("vacaciones") {
		t.Error("type matching is case-sensitive on the wire")
	}
}
