package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"go-job-tracker/internal/model"
)

type jobApplicationStore interface {
	FindByID(ctx context.Context, id string) (model.JobApplication, error)
	List(ctx context.Context) ([]model.JobApplication, error)
	Create(ctx context.Context, a model.JobApplication) error
	Update(ctx context.Context, a model.JobApplication) error
	Delete(ctx context.Context, id string) error
}

type JobApplicationService struct {
	applications jobApplicationStore
}

func NewJobApplicationService(applications jobApplicationStore) *JobApplicationService {
	return &JobApplicationService{applications: applications}
}

func (s *JobApplicationService) ListJobApplications(ctx context.Context) ([]model.JobApplicationDTO, error) {
	applications, err := s.applications.List(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]model.JobApplicationDTO, 0, len(applications))
	for _, a := range applications {
		dtos = append(dtos, toJobApplicationDTO(a))
	}
	return dtos, nil
}

func (s *JobApplicationService) GetJobApplication(ctx context.Context, id string) (model.JobApplicationDTO, error) {
	application, err := s.applications.FindByID(ctx, id)
	if err != nil {
		return model.JobApplicationDTO{}, err
	}
	return toJobApplicationDTO(application), nil
}

// CreateJobApplication assigns the identifier and timestamps; ownerID may
// be empty when the creating principal is unknown.
func (s *JobApplicationService) CreateJobApplication(ctx context.Context, req model.JobApplicationRequest, ownerID string) (model.JobApplicationDTO, error) {
	now := time.Now().UTC()
	application := model.JobApplication{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Description: req.Description,
		Status:      req.Status,
		UserID:      ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.applications.Create(ctx, application); err != nil {
		return model.JobApplicationDTO{}, err
	}
	return toJobApplicationDTO(application), nil
}

// UpdateJobApplication overwrites every mutable field in place; creation
// timestamp and owner are immutable.
func (s *JobApplicationService) UpdateJobApplication(ctx context.Context, id string, req model.JobApplicationRequest) (model.JobApplicationDTO, error) {
	application, err := s.applications.FindByID(ctx, id)
	if err != nil {
		return model.JobApplicationDTO{}, err
	}

	application.Title = req.Title
	application.Company = req.Company
	application.Location = req.Location
	application.Description = req.Description
	application.Status = req.Status
	application.UpdatedAt = time.Now().UTC()

	if err := s.applications.Update(ctx, application); err != nil {
		return model.JobApplicationDTO{}, err
	}
	return toJobApplicationDTO(application), nil
}

func (s *JobApplicationService) DeleteJobApplication(ctx context.Context, id string) error {
	return s.applications.Delete(ctx, id)
}

func toJobApplicationDTO(a model.JobApplication) model.JobApplicationDTO {
	dto := model.JobApplicationDTO{
		ID:          a.ID,
		Title:       a.Title,
		Company:     a.Company,
		Location:    a.Location,
		Description: a.Description,
		Status:      a.Status,
		UserID:      a.UserID,
	}
	if !a.CreatedAt.IsZero() {
		dto.CreatedAt = a.CreatedAt.Format(time.RFC3339)
	}
	if !a.UpdatedAt.IsZero() {
		dto.UpdatedAt = a.UpdatedAt.Format(time.RFC3339)
	}
	return dto
}
