package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mytsparks/Campus-Resource-Hub/app/entities"
)

type ResourceRepository interface {
	Create(ownerID int, req entities.ResourceRequest) (entities.Resource, error)
	GetByID(id int) (entities.Resource, error)
	List(category, location string, capacity, limit, offset int) ([]entities.Resource, int, error)
	Update(id int, req entities.ResourceRequest) error
	UpdateStatus(id int, status string) error
}

type resourceRepository struct {
	db *sql.DB
}

func NewResourceRepository(db *sql.DB) ResourceRepository {
	return &resourceRepository{db: db}
}

const resourceColumns = `id, owner_id, title, description, category, location, capacity, admission_mode, status, created_at, updated_at`

func scanResource(row interface{ Scan(...interface{}) error }) (entities.Resource, error) {
	var res entities.Resource
	err := row.Scan(&res.ID, &res.OwnerID, &res.Title, &res.Description, &res.Category,
		&res.Location, &res.Capacity, &res.AdmissionMode, &res.Status, &res.CreatedAt, &res.UpdatedAt)
	return res, err
}

func (r *resourceRepository) Create(ownerID int, req entities.ResourceRequest) (entities.Resource, error) {
	mode := req.AdmissionMode
	if mode == "" {
		mode = entities.AdmissionModeOpen
	}

	query := `
		INSERT INTO resources (owner_id, title, description, category, location, capacity, admission_mode, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'draft', NOW(), NOW())
		RETURNING ` + resourceColumns

	return scanResource(r.db.QueryRow(query,
		ownerID, req.Title, req.Description, req.Category, req.Location, req.Capacity, mode))
}

func (r *resourceRepository) GetByID(id int) (entities.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources WHERE id = $1`
	res, err := scanResource(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Resource{}, ErrNotFound
	}
	return res, err
}

func (r *resourceRepository) List(category, location string, capacity, limit, offset int) ([]entities.Resource, int, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources WHERE status = 'published'`

	var args []interface{}
	argIndex := 1

	if category != "" {
		query += fmt.Sprintf(" AND category = $%d", argIndex)
		args = append(args, category)
		argIndex++
	}
	if location != "" {
		query += fmt.Sprintf(" AND LOWER(location) LIKE LOWER($%d)", argIndex)
		args = append(args, "%"+location+"%")
		argIndex++
	}
	if capacity > 0 {
		query += fmt.Sprintf(" AND capacity >= $%d", argIndex)
		args = append(args, capacity)
		argIndex++
	}

	countQuery := "SELECT COUNT(*) FROM (" + query + ") AS total"
	var totalData int
	if err := r.db.QueryRow(countQuery, args...).Scan(&totalData); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var resources []entities.Resource
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, 0, err
		}
		resources = append(resources, res)
	}
	return resources, totalData, rows.Err()
}

func (r *resourceRepository) Update(id int, req entities.ResourceRequest) error {
	// An omitted admission mode keeps the current one.
	query := `
		UPDATE resources
		SET title = $1, description = $2, category = $3, location = $4, capacity = $5,
			admission_mode = COALESCE(NULLIF($6, ''), admission_mode), updated_at = NOW()
		WHERE id = $7`

	result, err := r.db.Exec(query, req.Title, req.Description, req.Category, req.Location, req.Capacity, req.AdmissionMode, id)
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

func (r *resourceRepository) UpdateStatus(id int, status string) error {
	result, err := r.db.Exec(`UPDATE resources SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
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
