package repositories

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/mytsparks/Campus-Resource-Hub/app/entities"
)

type WaitlistRepository interface {
	// Enroll appends the entry, returning ErrAlreadyEnrolled if the
	// (resource, user) pair is already present.
	Enroll(entry entities.WaitlistEntry) error
	// ListFor returns the entries for a resource in FIFO order.
	ListFor(resourceID int) ([]entities.WaitlistEntry, error)
	// Remove deletes the entry and reports whether one existed.
	Remove(resourceID, userID int) (bool, error)
}

type waitlistRepository struct {
	db *sql.DB
}

func NewWaitlistRepository(db *sql.DB) WaitlistRepository {
	return &waitlistRepository{db: db}
}

func (r *waitlistRepository) Enroll(entry entities.WaitlistEntry) error {
	query := `
		INSERT INTO waitlist (resource_id, user_id, preferred_start, preferred_end, created_at)
		VALUES ($1, $2, $3, $4, NOW())`

	_, err := r.db.Exec(query, entry.ResourceID, entry.UserID, entry.PreferredStart, entry.PreferredEnd)
	if err != nil {
		// Duplicate enrollment races land on the primary key.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return ErrAlreadyEnrolled
		}
		return err
	}
	return nil
}

func (r *waitlistRepository) ListFor(resourceID int) ([]entities.WaitlistEntry, error) {
	query := `
		SELECT resource_id, user_id, preferred_start, preferred_end, created_at
		FROM waitlist
		WHERE resource_id = $1
		ORDER BY created_at ASC`

	rows, err := r.db.Query(query, resourceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []entities.WaitlistEntry
	for rows.Next() {
		var e entities.WaitlistEntry
		var start, end sql.NullTime
		if err := rows.Scan(&e.ResourceID, &e.UserID, &start, &end, &e.CreatedAt); err != nil {
			return nil, err
		}
		if start.Valid {
			e.PreferredStart = &start.Time
		}
		if end.Valid {
			e.PreferredEnd = &end.Time
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *waitlistRepository) Remove(resourceID, userID int) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM waitlist WHERE resource_id = $1 AND user_id = $2`, resourceID, userID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
