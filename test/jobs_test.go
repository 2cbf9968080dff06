package test

import (
	"errors"
	"net/http"
	"testing"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celestiaorg/jobtracker/internal/db/models"
	"github.com/celestiaorg/jobtracker/internal/types"
	"github.com/celestiaorg/jobtracker/pkg/api/v1/handlers"
)

const (
	alice uint = 1
	bob   uint = 2
)

func strPtr(s string) *string { return &s }

// requireStatus asserts that err is an HTTP error with the given status code
func requireStatus(t *testing.T, err error, code int) *fiber.Error {
	t.Helper()
	var fiberErr *fiber.Error
	require.True(t, errors.As(err, &fiberErr), "expected an HTTP error, got %v", err)
	require.Equal(t, code, fiberErr.Code)
	return fiberErr
}

func TestNewSuite(t *testing.T) {
	suite := NewSuite(t)
	defer suite.Cleanup()

	assert.Same(t, t, suite.T())
	assert.NotNil(t, suite.App)
	assert.NotNil(t, suite.Server)
	assert.NotNil(t, suite.APIClient)
	assert.NotNil(t, suite.DB)
	assert.NotNil(t, suite.JobRepo)
	assert.NoError(t, suite.Context().Err())

	health, err := suite.APIClient.HealthCheck(suite.Context())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health["status"])
}

func TestJobLifecycle(t *testing.T) {
	suite := NewSuite(t)
	defer suite.Cleanup()
	ctx := suite.Context()
	client := suite.ClientFor(alice)

	created, err := client.CreateJob(ctx, types.JobRequest{Company: "Acme", Position: "Engineer"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, alice, created.OwnerID)
	assert.Equal(t, models.DefaultJobStatus, created.Status)
	assert.Equal(t, models.DefaultJobType, created.JobType)
	assert.Equal(t, models.DefaultJobLocation, created.Location)

	got, err := client.GetJob(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Company)
	assert.Equal(t, "Engineer", got.Position)
	assert.Equal(t, models.JobStatusPending, got.Status)

	status := models.JobStatusInterview
	updated, err := client.UpdateJob(ctx, created.ID, models.JobPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusInterview, updated.Status)
	assert.Equal(t, "Acme", updated.Company)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	remaining, err := client.DeleteJob(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	_, err = client.GetJob(ctx, created.ID)
	notFound := requireStatus(t, err, http.StatusNotFound)
	assert.Equal(t, handlers.ErrMsgJobNotFound, notFound.Message)
}

func TestOwnershipIsolation(t *testing.T) {
	suite := NewSuite(t)
	defer suite.Cleanup()
	ctx := suite.Context()
	aliceClient := suite.ClientFor(alice)
	bobClient := suite.ClientFor(bob)

	job, err := aliceClient.CreateJob(ctx, types.JobRequest{Company: "Acme", Position: "Engineer"})
	require.NoError(t, err)

	_, err = bobClient.GetJob(ctx, job.ID)
	requireStatus(t, err, http.StatusNotFound)

	_, err = bobClient.UpdateJob(ctx, job.ID, models.JobPatch{Company: strPtr("Evil Corp")})
	requireStatus(t, err, http.StatusNotFound)

	_, err = bobClient.DeleteJob(ctx, job.ID)
	requireStatus(t, err, http.StatusNotFound)

	jobs, err := bobClient.ListJobs(ctx)
	require.NoError(t, err)
	assert.Empty(t, jobs)

	// Alice's record survived untouched
	got, err := aliceClient.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Company)
}

func TestListIsOrderedAndOwnerScoped(t *testing.T) {
	suite := NewSuite(t)
	defer suite.Cleanup()
	ctx := suite.Context()
	aliceClient := suite.ClientFor(alice)
	bobClient := suite.ClientFor(bob)

	var want []uint
	for _, company := range []string{"Acme", "Globex", "Initech"} {
		job, err := aliceClient.CreateJob(ctx, types.JobRequest{Company: company, Position: "Engineer"})
		require.NoError(t, err)
		want = append(want, job.ID)

		_, err = bobClient.CreateJob(ctx, types.JobRequest{Company: company, Position: "Designer"})
		require.NoError(t, err)
	}

	jobs, err := aliceClient.ListJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, len(want))
	for i, job := range jobs {
		assert.Equal(t, want[i], job.ID)
		assert.Equal(t, alice, job.OwnerID)
	}
}

func TestUpdateRejectsEmptyCompanyOrPosition(t *testing.T) {
	suite := NewSuite(t)
	defer suite.Cleanup()
	ctx := suite.Context()
	client := suite.ClientFor(alice)

	job, err := client.CreateJob(ctx, types.JobRequest{Company: "Acme", Position: "Engineer"})
	require.NoError(t, err)

	for _, patch := range []models.JobPatch{
		{Company: strPtr("")},
		{Position: strPtr("")},
	} {
		_, err = client.UpdateJob(ctx, job.ID, patch)
		badRequest := requireStatus(t, err, http.StatusBadRequest)
		assert.Equal(t, handlers.ErrMsgCompanyPosition, badRequest.Message)
	}

	got, err := client.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Company)
	assert.Equal(t, "Engineer", got.Position)
}

func TestCreateSchemaValidation(t *testing.T) {
	suite := NewSuite(t)
	defer suite.Cleanup()
	client := suite.ClientFor(alice)

	_, err := client.CreateJob(suite.Context(), types.JobRequest{Company: "Acme"})
	requireStatus(t, err, http.StatusBadRequest)

	_, err = client.CreateJob(suite.Context(), types.JobRequest{Company: "Acme", Position: "Engineer", JobType: "contract"})
	requireStatus(t, err, http.StatusBadRequest)
}

func TestDeleteReturnsCallersRemainingJobs(t *testing.T) {
	suite := NewSuite(t)
	defer suite.Cleanup()
	ctx := suite.Context()
	aliceClient := suite.ClientFor(alice)
	bobClient := suite.ClientFor(bob)

	doomed, err := aliceClient.CreateJob(ctx, types.JobRequest{Company: "Acme", Position: "Engineer"})
	require.NoError(t, err)
	kept, err := aliceClient.CreateJob(ctx, types.JobRequest{Company: "Initech", Position: "Analyst"})
	require.NoError(t, err)
	_, err = bobClient.CreateJob(ctx, types.JobRequest{Company: "Globex", Position: "Designer"})
	require.NoError(t, err)

	remaining, err := aliceClient.DeleteJob(ctx, doomed.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, kept.ID, remaining[0].ID)
	assert.Equal(t, alice, remaining[0].OwnerID)
}

func TestRequestsWithoutIdentityAreRejected(t *testing.T) {
	suite := NewSuite(t)
	defer suite.Cleanup()

	_, err := suite.APIClient.ListJobs(suite.Context())
	requireStatus(t, err, http.StatusUnauthorized)

	_, err = suite.APIClient.CreateJob(suite.Context(), types.JobRequest{Company: "Acme", Position: "Engineer"})
	requireStatus(t, err, http.StatusUnauthorized)

	var count int64
	require.NoError(t, suite.DB.Model(&models.Job{}).Count(&count).Error)
	assert.Zero(t, count)
}
