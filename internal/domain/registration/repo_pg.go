package registration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type birthRepoPG struct{ pool *pgxpool.Pool }

// NewBirthRepoPG returns the PostgreSQL-backed birth record repository.
func NewBirthRepoPG(pool *pgxpool.Pool) Repository {
	return &birthRepoPG{pool: pool}
}

const birthCols = `id, father_id, father_id_type, father_name,
	mother_id, mother_id_type, mother_name, hospital_name,
	birth_date, created_at`

func (r *birthRepoPG) scanBirth(row pgx.Row) (*BirthRecord, error) {
	var b BirthRecord
	err := row.Scan(&b.ID, &b.FatherID, &b.FatherIDType, &b.FatherName,
		&b.MotherID, &b.MotherIDType, &b.MotherName, &b.HospitalName,
		&b.BirthDate, &b.CreatedAt)
	return &b, err
}

// uniqueParentsBirthDate is the constraint backing the duplicate check.
const uniqueParentsBirthDate = "births_parents_birth_date_key"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == uniqueParentsBirthDate
}

func (r *birthRepoPG) Insert(ctx context.Context, b *BirthRecord) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin insert transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Pre-check inside the transaction; a committed duplicate is visible
	// here and locked. Two inserts racing past this point are serialized by
	// the unique index on (father_id, mother_id, birth_date).
	var existing uuid.UUID
	err = tx.QueryRow(ctx, `
		SELECT id FROM births
		WHERE father_id = $1 AND mother_id = $2 AND birth_date = $3
		FOR UPDATE`,
		b.FatherID, b.MotherID, b.BirthDate).Scan(&existing)
	if err == nil {
		return ErrDuplicate
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("duplicate check: %w", err)
	}

	b.ID = uuid.New()
	err = tx.QueryRow(ctx, `
		INSERT INTO births (id, father_id, father_id_type, father_name,
			mother_id, mother_id_type, mother_name, hospital_name, birth_date)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING created_at`,
		b.ID, b.FatherID, b.FatherIDType, b.FatherName,
		b.MotherID, b.MotherIDType, b.MotherName, b.HospitalName, b.BirthDate).
		Scan(&b.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert birth record: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("commit insert: %w", err)
	}

	// Confirmation re-read after commit. A missing row here is an
	// integrity fault, never a validation outcome.
	saved, err := r.scanBirth(r.pool.QueryRow(ctx,
		`SELECT `+birthCols+` FROM births WHERE id = $1`, b.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrPersistenceUnconfirmed
		}
		return fmt.Errorf("confirm insert: %w", err)
	}
	b.CreatedAt = saved.CreatedAt
	return nil
}

func (r *birthRepoPG) SearchByParentID(ctx context.Context, id string, limit, offset int) ([]*BirthRecord, int, error) {
	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM births WHERE father_id = $1 OR mother_id = $1`, id).Scan(&total)
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+birthCols+` FROM births
		WHERE father_id = $1 OR mother_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, id, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*BirthRecord
	for rows.Next() {
		b, err := r.scanBirth(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *birthRepoPG) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	cutoffDate := time.Date(cutoff.Year(), cutoff.Month(), cutoff.Day(), 0, 0, 0, 0, time.UTC)
	tag, err := r.pool.Exec(ctx, `DELETE FROM births WHERE birth_date < $1`, cutoffDate)
	if err != nil {
		return 0, fmt.Errorf("purge old birth records: %w", err)
	}
	return tag.RowsAffected(), nil
}
