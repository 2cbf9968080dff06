package handlers

import (
	"fmt"
	"strconv"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/celestiaorg/jobtracker/internal/api/v1/middleware"
	"github.com/celestiaorg/jobtracker/internal/db/models"
	"github.com/celestiaorg/jobtracker/internal/services"
	"github.com/celestiaorg/jobtracker/internal/types"
)

// JobHandler handles HTTP requests for job operations
type JobHandler struct {
	jobService *services.Job
}

// NewJobHandler creates a new job handler instance
func NewJobHandler(s *services.Job) *JobHandler {
	return &JobHandler{
		jobService: s,
	}
}

// ListJobs godoc
// @Summary List jobs
// @Description Returns every job of the authenticated user, oldest first
// @Tags jobs
// @Produce json
// @Param X-User-ID header int true "Authenticated user ID"
// @Success 200 {object} types.ListJobsResponse
// @Failure 401 {object} types.SlugResponse
// @Router /api/v1/jobs [get]
func (h *JobHandler) ListJobs(c *fiber.Ctx) error {
	ownerID, err := middleware.OwnerID(c)
	if err != nil {
		return err
	}

	jobs, err := h.jobService.List(c.UserContext(), ownerID)
	if err != nil {
		return err
	}
	if jobs == nil {
		jobs = []models.Job{}
	}

	return c.JSON(types.ListJobsResponse{
		Msg:    types.MsgAllJobs,
		Length: len(jobs),
		Jobs:   jobs,
	})
}

// GetJob godoc
// @Summary Get a job
// @Tags jobs
// @Produce json
// @Param X-User-ID header int true "Authenticated user ID"
// @Param id path int true "Job ID"
// @Success 200 {object} types.JobResponse
// @Failure 404 {object} types.SlugResponse
// @Router /api/v1/jobs/{id} [get]
func (h *JobHandler) GetJob(c *fiber.Ctx) error {
	ownerID, jobID, err := jobParams(c)
	if err != nil {
		return err
	}

	job, err := h.jobService.Get(c.UserContext(), ownerID, jobID)
	if err != nil {
		return err
	}

	return c.JSON(types.JobResponse{
		Msg: types.MsgSingleJob,
		Job: *job,
	})
}

// CreateJob godoc
// @Summary Create a job
// @Description Creates a job owned by the authenticated user. Any owner in the body is ignored.
// @Tags jobs
// @Accept json
// @Produce json
// @Param X-User-ID header int true "Authenticated user ID"
// @Param request body types.JobRequest true "Job to create"
// @Success 201 {object} types.CreateJobResponse
// @Failure 400 {object} types.SlugResponse
// @Router /api/v1/jobs [post]
func (h *JobHandler) CreateJob(c *fiber.Ctx) error {
	ownerID, err := middleware.OwnerID(c)
	if err != nil {
		return err
	}

	var req types.JobRequest
	if err := c.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}

	job := req.ToModel()
	if err := h.jobService.Create(c.UserContext(), ownerID, job); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(types.CreateJobResponse{Job: *job})
}

// UpdateJob godoc
// @Summary Update a job
// @Description Merges the given fields into the job. Company and position cannot be blanked.
// @Tags jobs
// @Accept json
// @Produce json
// @Param X-User-ID header int true "Authenticated user ID"
// @Param id path int true "Job ID"
// @Param request body models.JobPatch true "Fields to change"
// @Success 200 {object} types.JobResponse
// @Failure 400 {object} types.SlugResponse
// @Failure 404 {object} types.SlugResponse
// @Router /api/v1/jobs/{id} [patch]
func (h *JobHandler) UpdateJob(c *fiber.Ctx) error {
	ownerID, jobID, err := jobParams(c)
	if err != nil {
		return err
	}

	var patch models.JobPatch
	if err := c.BodyParser(&patch); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}

	job, err := h.jobService.Update(c.UserContext(), ownerID, jobID, patch)
	if err != nil {
		return err
	}

	return c.JSON(types.JobResponse{
		Msg: types.MsgUpdatedJob,
		Job: *job,
	})
}

// DeleteJob godoc
// @Summary Delete a job
// @Description Deletes the job and returns the authenticated user's remaining jobs
// @Tags jobs
// @Produce json
// @Param X-User-ID header int true "Authenticated user ID"
// @Param id path int true "Job ID"
// @Success 200 {object} types.DeleteJobResponse
// @Failure 404 {object} types.SlugResponse
// @Router /api/v1/jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c *fiber.Ctx) error {
	ownerID, jobID, err := jobParams(c)
	if err != nil {
		return err
	}

	remaining, err := h.jobService.Delete(c.UserContext(), ownerID, jobID)
	if err != nil {
		return err
	}
	if remaining == nil {
		remaining = []models.Job{}
	}

	return c.JSON(types.DeleteJobResponse{
		Msg:     types.MsgJobDeleted,
		Updated: remaining,
	})
}

// jobParams returns the acting user and the job id from the path.
// An id that cannot name a job is reported as not found.
func jobParams(c *fiber.Ctx) (uint, uint, error) {
	ownerID, err := middleware.OwnerID(c)
	if err != nil {
		return 0, 0, err
	}

	// Using 32-bit limit for ParseUint
	jobID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", services.ErrJobNotFound, c.Params("id"))
	}

	return ownerID, uint(jobID), nil
}
