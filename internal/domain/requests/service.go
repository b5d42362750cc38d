package requests

import (
	"context"

	"adminrec/internal/domain/directory"
)

type Service struct {
	Store     *Store
	Directory *directory.Store
}

func NewService(store *Store, dir *directory.Store) *Service {
	return &Service{Store: store, Directory: dir}
}

func (s *Service) ListForEmployee(ctx context.Context, dni int) ([]Request, error) {
	return s.Store.ListByDNI(ctx, dni)
}

// ListForSupervisor resolves the supervisor's sector and returns its
// requests.
func (s *Service) ListForSupervisor(ctx context.Context, supervisorDNI int) ([]Request, error) {
	supervisor, err := s.Directory.GetEmployeeByDNI(ctx, supervisorDNI)
	if err != nil {
		return nil, err
	}
	return s.Store.ListBySector(ctx, supervisor.Position.Sector.ID)
}

func (s *Service) Create(ctx context.Context, dni int, requestType string, durationDays int, reason string) (*Request, error) {
	if !ValidType(requestType) {
		return nil, ErrInvalidType
	}
	if _, err := s.Directory.GetEmployeeByDNI(ctx, dni); err != nil {
		return nil, err
	}
	return s.Store.Create(ctx, dni, requestType, durationDays, reason)
}

// Decide applies pending→approved or pending→rejected and returns the
// updated request.
func (s *Service) Decide(ctx context.Context, id int64, target string) (*Request, error) {
	current, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := Transition(current.Status, target); err != nil {
		return nil, err
	}

	updated, err := s.Store.SetStatus(ctx, id, target)
	if err != nil {
		return nil, err
	}
	if !updated {
		// lost a race with another decision
		return nil, ErrTerminalState
	}
	return s.Store.Get(ctx, id)
}
