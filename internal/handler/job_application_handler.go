package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-job-tracker/internal/middleware"
	"go-job-tracker/internal/model"
	"go-job-tracker/internal/service"
	"go-job-tracker/pkg/apierror"
)

type JobApplicationHandler struct {
	service *service.JobApplicationService
}

func NewJobApplicationHandler(service *service.JobApplicationService) *JobApplicationHandler {
	return &JobApplicationHandler{service: service}
}

func (h *JobApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	applications, err := h.service.ListJobApplications(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, applications)
}

func (h *JobApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, apierror.New("BAD_REQUEST", "job application id is required", "id", http.StatusBadRequest))
		return
	}

	application, err := h.service.GetJobApplication(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, application)
}

func (h *JobApplicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.JobApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}
	if err := validateRequest(payload); err != nil {
		writeError(w, err)
		return
	}

	ownerID := ""
	if principal, ok := middleware.PrincipalFromContext(r.Context()); ok {
		ownerID = principal.User().ID
	}

	application, err := h.service.CreateJobApplication(r.Context(), payload, ownerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, application)
}

func (h *JobApplicationHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, apierror.New("BAD_REQUEST", "job application id is required", "id", http.StatusBadRequest))
		return
	}

	var payload model.JobApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}
	if err := validateRequest(payload); err != nil {
		writeError(w, err)
		return
	}

	application, err := h.service.UpdateJobApplication(r.Context(), id, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, application)
}

func (h *JobApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, apierror.New("BAD_REQUEST", "job application id is required", "id", http.StatusBadRequest))
		return
	}

	if err := h.service.DeleteJobApplication(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"deleted": true})
}
