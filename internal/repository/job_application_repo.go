package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-job-tracker/internal/model"
)

type JobApplicationRepository struct {
	pool *pgxpool.Pool
}

func NewJobApplicationRepository(pool *pgxpool.Pool) *JobApplicationRepository {
	return &JobApplicationRepository{pool: pool}
}

func (r *JobApplicationRepository) FindByID(ctx context.Context, id string) (model.JobApplication, error) {
	var a model.JobApplication
	var userID *string
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, company, location, description, status, user_id, created_at, updated_at
		 FROM job_applications WHERE id = $1`, id).
		Scan(&a.ID, &a.Title, &a.Company, &a.Location, &a.Description, &a.Status,
			&userID, &a.CreatedAt, &a.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.JobApplication{}, model.ErrJobApplicationNotFound
	}
	if err != nil {
		return model.JobApplication{}, fmt.Errorf("find job application: %w", err)
	}
	if userID != nil {
		a.UserID = *userID
	}
	return a, nil
}

func (r *JobApplicationRepository) List(ctx context.Context) ([]model.JobApplication, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, company, location, description, status, user_id, created_at, updated_at
		 FROM job_applications ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list job applications: %w", err)
	}
	defer rows.Close()

	applications := make([]model.JobApplication, 0)
	for rows.Next() {
		var a model.JobApplication
		var userID *string
		if err := rows.Scan(&a.ID, &a.Title, &a.Company, &a.Location, &a.Description, &a.Status,
			&userID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan job application: %w", err)
		}
		if userID != nil {
			a.UserID = *userID
		}
		applications = append(applications, a)
	}
	return applications, rows.Err()
}

func (r *JobApplicationRepository) Create(ctx context.Context, a model.JobApplication) error {
	var userID *string
	if a.UserID != "" {
		userID = &a.UserID
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO job_applications (id, title, company, location, description, status, user_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		a.ID, a.Title, a.Company, a.Location, a.Description, a.Status, userID, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create job application: %w", err)
	}
	return nil
}

func (r *JobApplicationRepository) Update(ctx context.Context, a model.JobApplication) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE job_applications
		 SET title = $2, company = $3, location = $4, description = $5, status = $6, updated_at = $7
		 WHERE id = $1`,
		a.ID, a.Title, a.Company, a.Location, a.Description, a.Status, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update job application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrJobApplicationNotFound
	}
	return nil
}

func (r *JobApplicationRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM job_applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete job application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrJobApplicationNotFound
	}
	return nil
}
