// Package mock provides a call-recording Client for tests
package mock

import (
	"context"

	"github.com/celestiaorg/jobtracker/internal/db/models"
	"github.com/celestiaorg/jobtracker/internal/types"
	"github.com/celestiaorg/jobtracker/pkg/api/v1/client"
)

// MockClient implements the Client interface for testing
type MockClient struct {
	// Function fields that can be set to mock behavior
	HealthCheckFn func(ctx context.Context) (map[string]string, error)
	ListJobsFn    func(ctx context.Context) ([]models.Job, error)
	GetJobFn      func(ctx context.Context, id uint) (models.Job, error)
	CreateJobFn   func(ctx context.Context, req types.JobRequest) (models.Job, error)
	UpdateJobFn   func(ctx context.Context, id uint, patch models.JobPatch) (models.Job, error)
	DeleteJobFn   func(ctx context.Context, id uint) ([]models.Job, error)

	// Call tracking for verification
	HealthCheckCalls int
	ListJobsCalls    int
	GetJobCalls      []uint
	CreateJobCalls   []types.JobRequest
	UpdateJobCalls   []struct {
		ID    uint
		Patch models.JobPatch
	}
	DeleteJobCalls []uint
}

// Ensure MockClient implements Client interface
var _ client.Client = (*MockClient)(nil)

// HealthCheck mocks the HealthCheck method
func (m *MockClient) HealthCheck(ctx context.Context) (map[string]string, error) {
	m.HealthCheckCalls++
	if m.HealthCheckFn != nil {
		return m.HealthCheckFn(ctx)
	}
	return map[string]string{"status": "healthy"}, nil
}

// ListJobs mocks the ListJobs method
func (m *MockClient) ListJobs(ctx context.Context) ([]models.Job, error) {
	m.ListJobsCalls++
	if m.ListJobsFn != nil {
		return m.ListJobsFn(ctx)
	}
	return []models.Job{}, nil
}

// GetJob mocks the GetJob method
func (m *MockClient) GetJob(ctx context.Context, id uint) (models.Job, error) {
	m.GetJobCalls = append(m.GetJobCalls, id)
	if m.GetJobFn != nil {
		return m.GetJobFn(ctx, id)
	}
	return models.Job{ID: id}, nil
}

// CreateJob mocks the CreateJob method
func (m *MockClient) CreateJob(ctx context.Context, req types.JobRequest) (models.Job, error) {
	m.CreateJobCalls = append(m.CreateJobCalls, req)
	if m.CreateJobFn != nil {
		return m.CreateJobFn(ctx, req)
	}

	// Default mock implementation
	job := req.ToModel()
	job.ID = 1
	job.ApplyDefaults()
	return *job, nil
}

// UpdateJob mocks the UpdateJob method
func (m *MockClient) UpdateJob(ctx context.Context, id uint, patch models.JobPatch) (models.Job, error) {
	m.UpdateJobCalls = append(m.UpdateJobCalls, struct {
		ID    uint
		Patch models.JobPatch
	}{
		ID:    id,
		Patch: patch,
	})
	if m.UpdateJobFn != nil {
		return m.UpdateJobFn(ctx, id, patch)
	}

	job := models.Job{ID: id}
	patch.ApplyTo(&job)
	return job, nil
}

// DeleteJob mocks the DeleteJob method
func (m *MockClient) DeleteJob(ctx context.Context, id uint) ([]models.Job, error) {
	m.DeleteJobCalls = append(m.DeleteJobCalls, id)
	if m.DeleteJobFn != nil {
		return m.DeleteJobFn(ctx, id)
	}
	return []models.Job{}, nil
}
