// Package repos provides database repository implementations
package repos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/celestiaorg/jobtracker/internal/db/models"
)

// ErrJobNotFound is returned when no job matches the owner-scoped filter
var ErrJobNotFound = errors.New("job not found")

// Filter is an equality predicate over job columns
type Filter map[string]interface{}

// OwnedBy builds the predicate matching a single job of the given owner.
// A map is used rather than a struct condition so that zero values are never dropped.
func OwnedBy(ownerID, jobID uint) Filter {
	return Filter{
		models.FieldID:      jobID,
		models.FieldOwnerID: ownerID,
	}
}

// Owner builds the predicate matching every job of the given owner
func Owner(ownerID uint) Filter {
	return Filter{models.FieldOwnerID: ownerID}
}

// JobRepository provides access to job-related database operations
type JobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository instance
func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// Create inserts a new job. Defaults and schema rules are applied by the model hooks.
func (r *JobRepository) Create(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// Find returns the jobs matching the filter, oldest first
func (r *JobRepository) Find(ctx context.Context, filter Filter) ([]models.Job, error) {
	jobs := []models.Job{}
	err := r.db.WithContext(ctx).
		Where(map[string]interface{}(filter)).
		Order(models.FieldCreatedAt + " ASC").
		Order(models.FieldID + " ASC").
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// FindOne returns the single job matching the filter
func (r *JobRepository) FindOne(ctx context.Context, filter Filter) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).Where(map[string]interface{}(filter)).First(&job).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &job, nil
}

// FindOneAndUpdate locks the job matching the filter, merges the patch into it and
// writes it back. The schema rules run before the write. The updated job is returned.
func (r *JobRepository) FindOneAndUpdate(ctx context.Context, filter Filter, patch models.JobPatch) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockOne(tx, filter, &job); err != nil {
			return err
		}
		patch.ApplyTo(&job)
		return tx.Save(&job).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	return &job, nil
}

// FindOneAndDelete locks and removes the job matching the filter. The removed job is returned.
func (r *JobRepository) FindOneAndDelete(ctx context.Context, filter Filter) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockOne(tx, filter, &job); err != nil {
			return err
		}
		return tx.Delete(&models.Job{}, job.ID).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	return &job, nil
}

// lockOne loads the job matching the filter with a row lock held until the transaction ends
func lockOne(tx *gorm.DB, filter Filter, job *models.Job) error {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(map[string]interface{}(filter)).
		First(job).Error
}

func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %w", ErrJobNotFound, err)
	}
	if errors.Is(err, models.ErrInvalidJob) {
		return err
	}
	return fmt.Errorf("failed to access job: %w", err)
}
