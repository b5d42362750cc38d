package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"adminrec/internal/domain/directory"
)

type Service struct {
	Store     *Store
	Directory *directory.Store
	Location  *time.Location
}

func NewService(store *Store, dir *directory.Store, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{Store: store, Directory: dir, Location: loc}
}

// RegisterToday marks the caller present for the current calendar day.
// A second call the same day returns ErrAlreadyRegistered.
func (s *Service) RegisterToday(ctx context.Context, dni int) (*Record, error) {
	if _, err := s.Directory.GetEmployeeByDNI(ctx, dni); err != nil {
		return nil, err
	}

	day := DayOf(time.Now(), s.Location)
	record, err := s.Store.Register(ctx, dni, day)
	if errors.Is(err, pgx.ErrNoRows) {
		// the insert hit the (employee_id, day) unique index
		return nil, ErrAlreadyRegistered
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (s *Service) ListForEmployee(ctx context.Context, dni int) ([]Record, error) {
	if _, err := s.Directory.GetEmployeeByDNI(ctx, dni); err != nil {
		return nil, err
	}
	return s.Store.ListByDNI(ctx, dni)
}
