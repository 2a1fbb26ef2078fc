package registration

import (
	"context"
	"time"
)

// Repository persists birth records. All exclusion between concurrent
// writers is delegated to the store; implementations hold no in-process
// shared state beyond the connection pool.
type Repository interface {
	// Insert atomically checks for an existing record with the same
	// (father_id, mother_id, birth_date) and inserts, assigning ID and
	// CreatedAt. Returns ErrDuplicate on a conflict and
	// ErrPersistenceUnconfirmed when the post-commit re-read finds nothing.
	Insert(ctx context.Context, rec *BirthRecord) error

	// SearchByParentID returns every record where id matches either parent,
	// ordered by created_at descending, plus the total match count.
	SearchByParentID(ctx context.Context, id string, limit, offset int) ([]*BirthRecord, int, error)

	// DeleteOlderThan deletes all records whose birth_date is strictly
	// before cutoff and returns the number of rows removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
