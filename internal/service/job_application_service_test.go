package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-job-tracker/internal/model"
)

type fakeJobApplicationStore struct {
	byID map[string]model.JobApplication
}

func newFakeJobApplicationStore() *fakeJobApplicationStore {
	return &fakeJobApplicationStore{byID: map[string]model.JobApplication{}}
}

func (f *fakeJobApplicationStore) FindByID(_ context.Context, id string) (model.JobApplication, error) {
	application, ok := f.byID[id]
	if !ok {
		return model.JobApplication{}, model.ErrJobApplicationNotFound
	}
	return application, nil
}

func (f *fakeJobApplicationStore) List(_ context.Context) ([]model.JobApplication, error) {
	applications := make([]model.JobApplication, 0, len(f.byID))
	for _, a := range f.byID {
		applications = append(applications, a)
	}
	return applications, nil
}

func (f *fakeJobApplicationStore) Create(_ context.Context, a model.JobApplication) error {
	f.byID[a.ID] = a
	return nil
}

func (f *fakeJobApplicationStore) Update(_ context.Context, a model.JobApplication) error {
	if _, ok := f.byID[a.ID]; !ok {
		return model.ErrJobApplicationNotFound
	}
	f.byID[a.ID] = a
	return nil
}

func (f *fakeJobApplicationStore) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return model.ErrJobApplicationNotFound
	}
	delete(f.byID, id)
	return nil
}

func sampleRequest() model.JobApplicationRequest {
	return model.JobApplicationRequest{
		Title:       "Software Engineer",
		Company:     "Tech Corp",
		Location:    "New York, NY",
		Description: "Backend work on the billing platform",
		Status:      "APPLIED",
	}
}

func TestJobApplicationService_Create(t *testing.T) {
	store := newFakeJobApplicationStore()
	svc := NewJobApplicationService(store)

	dto, err := svc.CreateJobApplication(context.Background(), sampleRequest(), "u-1")
	require.NoError(t, err)

	assert.NotEmpty(t, dto.ID)
	assert.Equal(t, "Software Engineer", dto.Title)
	assert.Equal(t, "u-1", dto.UserID)
	assert.NotEmpty(t, dto.CreatedAt)
	assert.Equal(t, dto.CreatedAt, dto.UpdatedAt)

	stored, ok := store.byID[dto.ID]
	require.True(t, ok)
	assert.Equal(t, "APPLIED", stored.Status)
}

func TestJobApplicationService_Update(t *testing.T) {
	store := newFakeJobApplicationStore()
	createdAt := time.Date(2025, 8, 6, 10, 0, 0, 0, time.UTC)
	store.byID["a-1"] = model.JobApplication{
		ID:        "a-1",
		Title:     "Software Engineer",
		Company:   "Tech Corp",
		Location:  "New York, NY",
		Status:    "APPLIED",
		UserID:    "u-1",
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	svc := NewJobApplicationService(store)

	req := sampleRequest()
	req.Status = "INTERVIEWING"
	dto, err := svc.UpdateJobApplication(context.Background(), "a-1", req)
	require.NoError(t, err)

	assert.Equal(t, "INTERVIEWING", dto.Status)

	stored := store.byID["a-1"]
	assert.Equal(t, createdAt, stored.CreatedAt)
	assert.Equal(t, "u-1", stored.UserID)
	assert.True(t, stored.UpdatedAt.After(createdAt))
}

func TestJobApplicationService_NotFound(t *testing.T) {
	svc := NewJobApplicationService(newFakeJobApplicationStore())

	_, err := svc.GetJobApplication(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrJobApplicationNotFound)

	_, err = svc.UpdateJobApplication(context.Background(), "missing", sampleRequest())
	assert.ErrorIs(t, err, model.ErrJobApplicationNotFound)

	err = svc.DeleteJobApplication(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrJobApplicationNotFound)
}

func TestJobApplicationService_Delete(t *testing.T) {
	store := newFakeJobApplicationStore()
	store.byID["a-1"] = model.JobApplication{ID: "a-1"}
	svc := NewJobApplicationService(store)

	require.NoError(t, svc.DeleteJobApplication(context.Background(), "a-1"))
	assert.Empty(t, store.byID)
}
