package registration

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
)

// Service validates incoming registrations and drives the repository.
// Validation is pure; every suspension point is a store round-trip.
type Service struct {
	repo Repository
	log  zerolog.Logger
	now  func() time.Time
}

func NewService(repo Repository, log zerolog.Logger) *Service {
	return &Service{repo: repo, log: log, now: time.Now}
}

// Register validates req and, when clean, inserts the resulting record.
// Returns ValidationErrors carrying every violation found, ErrDuplicate on
// a conflicting registration, or a store error.
func (s *Service) Register(ctx context.Context, req RawBirthRequest) (*BirthRecord, error) {
	rec, verrs := ValidateRequest(req, s.now())
	if len(verrs) > 0 {
		return nil, verrs
	}
	if err := s.repo.Insert(ctx, rec); err != nil {
		if errors.Is(err, ErrPersistenceUnconfirmed) {
			s.log.Error().
				Str("father_id", rec.FatherID).
				Str("mother_id", rec.MotherID).
				Msg("birth record insert not confirmed by re-read")
		}
		return nil, err
	}
	return rec, nil
}

// Search returns all records where id matches either parent, newest first.
// An empty result is not an error at this level.
func (s *Service) Search(ctx context.Context, id string, limit, offset int) ([]*BirthRecord, int, error) {
	return s.repo.SearchByParentID(ctx, id, limit, offset)
}

// Purge deletes records whose birth date fell out of the registration
// window. Idempotent: a second call with nothing newly eligible deletes
// zero rows.
func (s *Service) Purge(ctx context.Context) (int64, error) {
	cutoff := s.now().AddDate(0, 0, -RegistrationWindowDays)
	return s.repo.DeleteOlderThan(ctx, cutoff)
}
