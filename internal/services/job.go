// Package services implements the job tracker's business operations
package services

import (
	"context"
	"errors"
	"time"

	"github.com/celestiaorg/jobtracker/internal/db/models"
	"github.com/celestiaorg/jobtracker/internal/db/repos"
	"github.com/celestiaorg/jobtracker/internal/logger"
)

// Job service errors
var (
	// ErrJobNotFound covers both a missing job and a job owned by someone else
	ErrJobNotFound = errors.New("job not found")
	// ErrEmptyField is returned when an update blanks company or position
	ErrEmptyField = errors.New("company or position must be specified")
	// ErrInvalidJob is returned when a job fails schema validation
	ErrInvalidJob = models.ErrInvalidJob
)

// Job provides the owner-scoped CRUD operations on job records
type Job struct {
	repo *repos.JobRepository
}

// NewJobService creates a new job service instance
func NewJobService(repo *repos.JobRepository) *Job {
	return &Job{
		repo: repo,
	}
}

// List returns every job of the owner, oldest first
func (s *Job) List(ctx context.Context, ownerID uint) ([]models.Job, error) {
	return s.repo.Find(ctx, repos.Owner(ownerID))
}

// Get returns a single job of the owner
func (s *Job) Get(ctx context.Context, ownerID, jobID uint) (*models.Job, error) {
	job, err := s.repo.FindOne(ctx, repos.OwnedBy(ownerID, jobID))
	if err != nil {
		return nil, notFound(err)
	}
	return job, nil
}

// Create persists a new job for the owner. Any ID, owner or timestamp set by the
// caller is discarded.
func (s *Job) Create(ctx context.Context, ownerID uint, job *models.Job) error {
	job.ID = 0
	job.OwnerID = ownerID
	job.CreatedAt = time.Time{}
	job.UpdatedAt = time.Time{}

	if err := s.repo.Create(ctx, job); err != nil {
		return err
	}

	logger.DebugWithFields("job created", map[string]interface{}{
		"owner_id": ownerID,
		"job_id":   job.ID,
	})
	return nil
}

// Update merges the patch into the owner's job and returns the updated job.
// An empty company or position is rejected before the store is touched.
func (s *Job) Update(ctx context.Context, ownerID, jobID uint, patch models.JobPatch) (*models.Job, error) {
	if (patch.Company != nil && *patch.Company == "") || (patch.Position != nil && *patch.Position == "") {
		return nil, ErrEmptyField
	}

	job, err := s.repo.FindOneAndUpdate(ctx, repos.OwnedBy(ownerID, jobID), patch)
	if err != nil {
		return nil, notFound(err)
	}

	logger.DebugWithFields("job updated", map[string]interface{}{
		"owner_id": ownerID,
		"job_id":   jobID,
	})
	return job, nil
}

// Delete removes the owner's job and returns the owner's remaining jobs
func (s *Job) Delete(ctx context.Context, ownerID, jobID uint) ([]models.Job, error) {
	if _, err := s.repo.FindOneAndDelete(ctx, repos.OwnedBy(ownerID, jobID)); err != nil {
		return nil, notFound(err)
	}

	logger.DebugWithFields("job deleted", map[string]interface{}{
		"owner_id": ownerID,
		"job_id":   jobID,
	})
	return s.repo.Find(ctx, repos.Owner(ownerID))
}

// notFound maps the repository's not-found error onto the service one
func notFound(err error) error {
	if errors.Is(err, repos.ErrJobNotFound) {
		return errors.Join(ErrJobNotFound, err)
	}
	return err
}
