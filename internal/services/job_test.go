package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/celestiaorg/jobtracker/internal/db/models"
	"github.com/celestiaorg/jobtracker/internal/db/repos"
)

// TestSetup holds the common test setup
type TestSetup struct {
	DB         *gorm.DB
	JobRepo    *repos.JobRepository
	JobService *Job
	ctx        context.Context
}

// NewTestSetup creates a job service over an isolated in-memory database
func NewTestSetup(t *testing.T) *TestSetup {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to create in-memory database")
	require.NoError(t, db.AutoMigrate(&models.Job{}), "Failed to run migrations")

	jobRepo := repos.NewJobRepository(db)
	return &TestSetup{
		DB:         db,
		JobRepo:    jobRepo,
		JobService: NewJobService(jobRepo),
		ctx:        context.Background(),
	}
}

// CleanUp cleans up resources after test
func (ts *TestSetup) CleanUp() {
	sqlDB, err := ts.DB.DB()
	if err == nil && sqlDB != nil {
		_ = sqlDB.Close()
	}
}

func (ts *TestSetup) createJob(t *testing.T, ownerID uint, company, position string) *models.Job {
	job := &models.Job{Company: company, Position: position}
	require.NoError(t, ts.JobService.Create(ts.ctx, ownerID, job))
	return job
}

func strPtr(s string) *string { return &s }

const (
	alice uint = 1
	bob   uint = 2
)

func TestJobService_CreateAndGetRoundTrip(t *testing.T) {
	ts := NewTestSetup(t)
	defer ts.CleanUp()

	created := ts.createJob(t, alice, "Acme", "Engineer")
	require.NotZero(t, created.ID)

	found, err := ts.JobService.Get(ts.ctx, alice, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", found.Company)
	assert.Equal(t, "Engineer", found.Position)
	assert.Equal(t, models.DefaultJobStatus, found.Status)
	assert.Equal(t, alice, found.OwnerID)
}

func TestJobService_CreateIgnoresCallerSuppliedOwner(t *testing.T) {
	ts := NewTestSetup(t)
	defer ts.CleanUp()

	job := &models.Job{ID: 42, OwnerID: bob, Company: "Acme", Position: "Engineer"}
	require.NoError(t, ts.JobService.Create(ts.ctx, alice, job))

	assert.Equal(t, alice, job.OwnerID)
	assert.NotEqual(t, uint(42), job.ID)

	// Bob cannot see it, Alice can
	_, err := ts.JobService.Get(ts.ctx, bob, job.ID)
	assert.ErrorIs(t, err, ErrJobNotFound)
	_, err = ts.JobService.Get(ts.ctx, alice, job.ID)
	assert.NoError(t, err)
}

func TestJobService_CreateValidation(t *testing.T) {
	ts := NewTestSetup(t)
	defer ts.CleanUp()

	err := ts.JobService.Create(ts.ctx, alice, &models.Job{Company: "Acme"})
	assert.ErrorIs(t, err, ErrInvalidJob)

	err = ts.JobService.Create(ts.ctx, alice, &models.Job{Company: "Acme", Position: "Engineer", Status: "hired"})
	assert.ErrorIs(t, err, ErrInvalidJob)

	jobs, err := ts.JobService.List(ts.ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestJobService_ListIsOwnerScopedAndOrdered(t *testing.T) {
	ts := NewTestSetup(t)
	defer ts.CleanUp()

	first := ts.createJob(t, alice, "Acme", "Engineer")
	ts.createJob(t, bob, "Globex", "Designer")
	second := ts.createJob(t, alice, "Initech", "Analyst")
	third := ts.createJob(t, alice, "Umbrella", "Researcher")

	jobs, err := ts.JobService.List(ts.ctx, alice)
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, []uint{first.ID, second.ID, third.ID}, []uint{jobs[0].ID, jobs[1].ID, jobs[2].ID})
	for i, job := range jobs {
		assert.Equal(t, alice, job.OwnerID)
		if i > 0 {
			assert.False(t, job.CreatedAt.Before(jobs[i-1].CreatedAt))
		}
	}

	// No jobs is not an error
	jobs, err = ts.JobService.List(ts.ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestJobService_OtherOwnerGetsNotFound(t *testing.T) {
	ts := NewTestSetup(t)
	defer ts.CleanUp()

	job := ts.createJob(t, alice, "Acme", "Engineer")

	_, err := ts.JobService.Get(ts.ctx, bob, job.ID)
	assert.ErrorIs(t, err, ErrJobNotFound)

	_, err = ts.JobService.Update(ts.ctx, bob, job.ID, models.JobPatch{Company: strPtr("Evil Corp")})
	assert.ErrorIs(t, err, ErrJobNotFound)

	_, err = ts.JobService.Delete(ts.ctx, bob, job.ID)
	assert.ErrorIs(t, err, ErrJobNotFound)

	// Untouched
	stored, err := ts.JobService.Get(ts.ctx, alice, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", stored.Company)

	// Missing and foreign jobs are indistinguishable
	_, errMissing := ts.JobService.Get(ts.ctx, bob, job.ID+100)
	assert.ErrorIs(t, errMissing, ErrJobNotFound)
}

func TestJobService_Update(t *testing.T) {
	ts := NewTestSetup(t)
	defer ts.CleanUp()

	job := ts.createJob(t, alice, "Acme", "Engineer")
	status := models.JobStatusInterview

	updated, err := ts.JobService.Update(ts.ctx, alice, job.ID, models.JobPatch{
		Position: strPtr("Senior Engineer"),
		Status:   &status,
	})
	require.NoError(t, err)
	assert.Equal(t, job.ID, updated.ID)
	assert.Equal(t, alice, updated.OwnerID)
	assert.Equal(t, "Acme", updated.Company)
	assert.Equal(t, "Senior Engineer", updated.Position)
	assert.Equal(t, models.JobStatusInterview, updated.Status)
}

func TestJobService_UpdateRejectsEmptyFieldsWithoutTouchingStore(t *testing.T) {
	ts := NewTestSetup(t)
	defer ts.CleanUp()

	job := ts.createJob(t, alice, "Acme", "Engineer")

	tests := []struct {
		name  string
		patch models.JobPatch
	}{
		{name: "empty company", patch: models.JobPatch{Company: strPtr("")}},
		{name: "empty position", patch: models.JobPatch{Position: strPtr("")}},
		{name: "empty position with valid company", patch: models.JobPatch{Company: strPtr("Globex"), Position: strPtr("")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ts.JobService.Update(ts.ctx, alice, job.ID, tt.patch)
			assert.ErrorIs(t, err, ErrEmptyField)

			stored, err := ts.JobService.Get(ts.ctx, alice, job.ID)
			require.NoError(t, err)
			assert.Equal(t, "Acme", stored.Company)
			assert.Equal(t, "Engineer", stored.Position)
			assert.Equal(t, job.UpdatedAt.UnixNano(), stored.UpdatedAt.UnixNano())
		})
	}

	// The check happens before the ownership lookup
	_, err := ts.JobService.Update(ts.ctx, bob, job.ID+100, models.JobPatch{Company: strPtr("")})
	assert.ErrorIs(t, err, ErrEmptyField)
}

func TestJobService_UpdateRunsSchemaValidators(t *testing.T) {
	ts := NewTestSetup(t)
	defer ts.CleanUp()

	job := ts.createJob(t, alice, "Acme", "Engineer")
	invalid := models.JobStatus("hired")

	_, err := ts.JobService.Update(ts.ctx, alice, job.ID, models.JobPatch{Status: &invalid})
	assert.ErrorIs(t, err, ErrInvalidJob)
	assert.NotErrorIs(t, err, ErrJobNotFound)
}

func TestJobService_DeleteThenGetIsNotFound(t *testing.T) {
	ts := NewTestSetup(t)
	defer ts.CleanUp()

	job := ts.createJob(t, alice, "Acme", "Engineer")

	_, err := ts.JobService.Delete(ts.ctx, alice, job.ID)
	require.NoError(t, err)

	_, err = ts.JobService.Get(ts.ctx, alice, job.ID)
	assert.ErrorIs(t, err, ErrJobNotFound)

	_, err = ts.JobService.Delete(ts.ctx, alice, job.ID)
	assert.ErrorIs(t, err, ErrJobNotFound)
}

// Delete never leaks other owners' jobs in its remaining list
func TestJobService_DeleteReturnsOnlyCallersRemainingJobs(t *testing.T) {
	ts := NewTestSetup(t)
	defer ts.CleanUp()

	doomed := ts.createJob(t, alice, "Acme", "Engineer")
	kept := ts.createJob(t, alice, "Initech", "Analyst")
	ts.createJob(t, bob, "Globex", "Designer")

	remaining, err := ts.JobService.Delete(ts.ctx, alice, doomed.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, kept.ID, remaining[0].ID)
	for _, job := range remaining {
		assert.Equal(t, alice, job.OwnerID)
	}
}
