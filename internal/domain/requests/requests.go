package requests

import (
	"errors"
	"time"

	"adminrec/internal/domain/directory"
)

const (
	TypeVacation   = "VACACIONES"
	TypePermission = "PERMISO"
	TypeLeave      = "LICENCIA"
)

const (
	StatusPending  = "PENDIENTE"
	StatusApproved = "ACEPTADO"
	StatusRejected = "RECHAZADO"
)

var (
	ErrInvalidType   = errors.New("invalid request type")
	ErrInvalidStatus = errors.New("invalid request status")
	ErrTerminalState = errors.New("request already decided")
)

func ValidType(requestType string) bool {
	switch requestType {
	case TypeVacation, TypePermission, TypeLeave:
		return true
	}
	return false
}

// Transition validates a status change. Only a pending request may move, and
// only into one of the two terminal states.
func Transition(current, target string) error {
	switch target {
	case StatusApproved, StatusRejected:
	default:
		return ErrInvalidStatus
	}
	switch current {
	case StatusPending:
		return nil
	case StatusApproved, StatusRejected:
		return ErrTerminalState
	default:
		return ErrInvalidStatus
	}
}

type Request struct {
	ID           int64
	Employee     directory.Employee
	Type         string
	DurationDays int
	Reason       string
	Status       string
	CreatedAt    time.Time
}
