package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cybershieldpro/backend/models"
	"github.com/cybershieldpro/backend/store"
	"github.com/cybershieldpro/backend/utils"
)

// CareerController manages CRUD operations for job postings. Listing and
// single lookup are public; the mutating endpoints sit behind admin auth.
type CareerController struct {
	jobs store.JobRepository
}

// NewCareerController creates a new CareerController instance.
func NewCareerController(jobs store.JobRepository) *CareerController {
	return &CareerController{jobs: jobs}
}

// ListJobs returns active postings for the public careers page.
func (c *CareerController) ListJobs(ctx *gin.Context) {
	jobs, err := c.jobs.List()
	if err != nil {
		utils.Sugar.Errorf("list jobs: %v", err)
		utils.Error(ctx, http.StatusInternalServerError, 50030, "failed to list jobs")
		return
	}

	active := make([]models.JobPosting, 0, len(jobs))
	for _, job := range jobs {
		if job.IsActive {
			active = append(active, job)
		}
	}
	utils.Success(ctx, gin.H{"items": active})
}

// ListAllJobs returns every posting, inactive included, for the admin surface.
func (c *CareerController) ListAllJobs(ctx *gin.Context) {
	jobs, err := c.jobs.List()
	if err != nil {
		utils.Sugar.Errorf("list jobs: %v", err)
		utils.Error(ctx, http.StatusInternalServerError, 50030, "failed to list jobs")
		return
	}
	utils.Success(ctx, gin.H{"items": jobs})
}

// GetJob returns a single posting by id.
func (c *CareerController) GetJob(ctx *gin.Context) {
	id := strings.TrimSpace(ctx.Param("id"))
	job, err := c.jobs.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40430, "job not found")
			return
		}
		utils.Sugar.Errorf("get job %s: %v", id, err)
		utils.Error(ctx, http.StatusInternalServerError, 50031, "failed to load job")
		return
	}
	utils.Success(ctx, gin.H{"job": job})
}

type jobRequest struct {
	Title        string   `json:"title"`
	Department   string   `json:"department"`
	Location     string   `json:"location"`
	Type         string   `json:"type"`
	Experience   string   `json:"experience"`
	Salary       string   `json:"salary"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Benefits     []string `json:"benefits"`
	Deadline     string   `json:"applicationDeadline"`
	IsActive     *bool    `json:"isActive"`
}

// CreateJob creates a posting. Required field validation lives in the store
// so both backends report the offending field the same way.
func (c *CareerController) CreateJob(ctx *gin.Context) {
	var req jobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40030, "invalid request payload")
		return
	}

	job := models.JobPosting{
		Title:        strings.TrimSpace(req.Title),
		Department:   strings.TrimSpace(req.Department),
		Location:     strings.TrimSpace(req.Location),
		Type:         strings.TrimSpace(req.Type),
		Experience:   strings.TrimSpace(req.Experience),
		Salary:       strings.TrimSpace(req.Salary),
		Description:  utils.Sanitize(req.Description),
		Requirements: sanitizeAll(req.Requirements),
		Benefits:     sanitizeAll(req.Benefits),
		Deadline:     strings.TrimSpace(req.Deadline),
		IsActive:     true,
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}

	created, err := c.jobs.Create(job)
	if err != nil {
		respondStoreError(ctx, err, 50032, "failed to create job")
		return
	}
	utils.Created(ctx, gin.H{"job": created})
}

// UpdateJob merges a partial payload onto an existing posting.
func (c *CareerController) UpdateJob(ctx *gin.Context) {
	id := strings.TrimSpace(ctx.Param("id"))

	var patch models.JobPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40031, "invalid request payload")
		return
	}
	if patch.Description != nil {
		clean := utils.Sanitize(*patch.Description)
		patch.Description = &clean
	}
	if patch.Requirements != nil {
		clean := sanitizeAll(*patch.Requirements)
		patch.Requirements = &clean
	}
	if patch.Benefits != nil {
		clean := sanitizeAll(*patch.Benefits)
		patch.Benefits = &clean
	}

	job, err := c.jobs.Update(id, patch)
	if err != nil {
		respondStoreError(ctx, err, 50033, "failed to update job")
		return
	}
	utils.Success(ctx, gin.H{"job": job})
}

// DeleteJob removes a posting.
func (c *CareerController) DeleteJob(ctx *gin.Context) {
	id := strings.TrimSpace(ctx.Param("id"))
	if err := c.jobs.Delete(id); err != nil {
		respondStoreError(ctx, err, 50034, "failed to delete job")
		return
	}
	utils.Success(ctx, gin.H{"deleted": id})
}

func sanitizeAll(items []string) []string {
	if items == nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, utils.SanitizeStrict(strings.TrimSpace(item)))
	}
	return out
}

// respondStoreError maps the store error taxonomy onto HTTP statuses:
// NotFound -> 404, ValidationError -> 400, everything else -> 500.
func respondStoreError(ctx *gin.Context, err error, internalCode int, internalMsg string) {
	var vErr *store.ValidationError
	switch {
	case errors.Is(err, store.ErrNotFound):
		utils.Error(ctx, http.StatusNotFound, 40430, "job not found")
	case errors.As(err, &vErr):
		utils.Error(ctx, http.StatusBadRequest, 40032, vErr.Error())
	default:
		utils.Sugar.Errorf("%s: %v", internalMsg, err)
		utils.Error(ctx, http.StatusInternalServerError, internalCode, internalMsg)
	}
}
