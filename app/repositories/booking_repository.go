package repositories

import (
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"github.com/mytsparks/Campus-Resource-Hub/app/entities"
)

type BookingRepository interface {
	// ActiveForResource returns the bookings that count for conflict
	// detection (pending or approved), ordered by start time ascending.
	ActiveForResource(resourceID int) ([]entities.Booking, error)
	// Create inserts the booking, re-checking for overlap inside the same
	// transaction. Returns ErrBookingConflict if the window is taken.
	Create(booking entities.Booking) (entities.Booking, error)
	GetByID(id int) (entities.Booking, error)
	ListForRequester(userID int) ([]entities.Booking, error)
	UpdateStatus(id int, status string) error
	// CompleteEnded marks approved bookings whose end time has passed as
	// completed and returns how many rows changed.
	CompleteEnded(now time.Time) (int64, error)
}

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, reference, resource_id, requester_id, start_datetime, end_datetime, status, created_at, updated_at`

func scanBooking(row interface{ Scan(...interface{}) error }) (entities.Booking, error) {
	var b entities.Booking
	err := row.Scan(&b.ID, &b.Reference, &b.ResourceID, &b.RequesterID, &b.Start, &b.End, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func (r *bookingRepository) ActiveForResource(resourceID int) ([]entities.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE resource_id = $1 AND status IN ('pending', 'approved')
		ORDER BY start_datetime ASC`

	rows, err := r.db.Query(query, resourceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []entities.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) Create(booking entities.Booking) (entities.Booking, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return entities.Booking{}, err
	}
	defer tx.Rollback()

	var existing int
	check := `
		SELECT COUNT(*) FROM bookings
		WHERE resource_id = $1 AND status IN ('pending', 'approved')
		AND (start_datetime, end_datetime) OVERLAPS ($2, $3)`
	if err := tx.QueryRow(check, booking.ResourceID, booking.Start, booking.End).Scan(&existing); err != nil {
		return entities.Booking{}, err
	}
	if existing > 0 {
		return entities.Booking{}, ErrBookingConflict
	}

	insert := `
		INSERT INTO bookings (reference, resource_id, requester_id, start_datetime, end_datetime, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + bookingColumns

	created, err := scanBooking(tx.QueryRow(insert,
		booking.Reference, booking.ResourceID, booking.RequesterID,
		booking.Start, booking.End, booking.Status,
	))
	if err != nil {
		// The exclusion constraint catches overlapping inserts that raced
		// past the check in another connection.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "exclusion_violation" {
			return entities.Booking{}, ErrBookingConflict
		}
		return entities.Booking{}, err
	}

	if err := tx.Commit(); err != nil {
		return entities.Booking{}, err
	}
	return created, nil
}

func (r *bookingRepository) GetByID(id int) (entities.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	b, err := scanBooking(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Booking{}, ErrNotFound
	}
	return b, err
}

func (r *bookingRepository) ListForRequester(userID int) ([]entities.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE requester_id = $1
		ORDER BY start_datetime DESC`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []entities.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) UpdateStatus(id int, status string) error {
	result, err := r.db.Exec(`UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *bookingRepository) CompleteEnded(now time.Time) (int64, error) {
	result, err := r.db.Exec(
		`UPDATE bookings SET status = 'completed', updated_at = NOW() WHERE status = 'approved' AND end_datetime <= $1`,
		now,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
