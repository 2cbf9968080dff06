// Package client provides the API client for interacting with the job tracker API
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/celestiaorg/jobtracker/internal/constants"
	"github.com/celestiaorg/jobtracker/internal/db/models"
	"github.com/celestiaorg/jobtracker/internal/types"
	"github.com/celestiaorg/jobtracker/pkg/api/v1/routes"
)

// DefaultTimeout is the default timeout for API requests
const DefaultTimeout = 30 * time.Second

// Client is the interface for API client
type Client interface {
	// Health Check
	HealthCheck(ctx context.Context) (map[string]string, error)

	// Job Endpoints
	ListJobs(ctx context.Context) ([]models.Job, error)
	GetJob(ctx context.Context, id uint) (models.Job, error)
	CreateJob(ctx context.Context, req types.JobRequest) (models.Job, error)
	UpdateJob(ctx context.Context, id uint, patch models.JobPatch) (models.Job, error)
	DeleteJob(ctx context.Context, id uint) ([]models.Job, error)
}

var _ Client = &APIClient{}

// Options contains configuration options for the API client
type Options struct {
	// BaseURL is the base URL of the API
	BaseURL string

	// Timeout is the request timeout
	Timeout time.Duration

	// OwnerID is sent as the acting user on every job request
	OwnerID uint
}

// DefaultOptions returns the default client options
func DefaultOptions() *Options {
	return &Options{
		BaseURL: routes.DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// APIClient implements the Client interface
type APIClient struct {
	baseURL string
	timeout time.Duration
	ownerID uint
}

// NewClient creates a new API client with the given options
func NewClient(opts *Options) (Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	// Validate the base URL
	_, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &APIClient{
		baseURL: opts.BaseURL,
		timeout: timeout,
		ownerID: opts.OwnerID,
	}, nil
}

// createAgent creates a new Fiber Agent for the given method and endpoint
func (c *APIClient) createAgent(ctx context.Context, method, endpoint string, body interface{}) (*fiber.Agent, error) {
	// Resolve the endpoint URL
	fullURL := c.baseURL + endpoint

	// Create a new agent based on the HTTP method
	var agent *fiber.Agent
	switch method {
	case http.MethodGet:
		agent = fiber.Get(fullURL)
	case http.MethodPost:
		agent = fiber.Post(fullURL)
	case http.MethodPut:
		agent = fiber.Put(fullURL)
	case http.MethodDelete:
		agent = fiber.Delete(fullURL)
	case http.MethodPatch:
		agent = fiber.Patch(fullURL)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	// Set timeout from context or client default
	if deadline, ok := ctx.Deadline(); ok {
		agent.Timeout(time.Until(deadline))
	} else {
		agent.Timeout(c.timeout)
	}

	// Set common headers
	agent.Set("Content-Type", "application/json")
	agent.Set("Accept", "application/json")
	if c.ownerID != 0 {
		agent.Set(constants.UserIDHeader, strconv.FormatUint(uint64(c.ownerID), 10))
	}

	// Add body if provided
	if body != nil {
		agent.JSON(body)
	}

	return agent, nil
}

// doRequest sends the HTTP request and processes the response
func (c *APIClient) doRequest(agent *fiber.Agent, v interface{}) error {
	// Execute the request
	statusCode, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("error sending request: %w", errs[0])
	}

	// Check for non-success status codes
	if statusCode < 200 || statusCode >= 300 {
		// Prefer the slug error message, fall back to the raw body
		var slugResponse types.SlugResponse
		if err := json.Unmarshal(body, &slugResponse); err == nil && slugResponse.Error != "" {
			return &fiber.Error{
				Code:    statusCode,
				Message: slugResponse.Error,
			}
		}
		return &fiber.Error{
			Code:    statusCode,
			Message: string(body),
		}
	}

	// Decode the response body if a target is provided
	if v != nil && len(body) > 0 {
		if err := json.Unmarshal(body, v); err != nil {
			return fmt.Errorf("error decoding response: %w", err)
		}
	}

	return nil
}

// executeRequest creates an agent, sends the request, and processes the response
func (c *APIClient) executeRequest(ctx context.Context, method, endpoint string, body, response interface{}) error {
	agent, err := c.createAgent(ctx, method, endpoint, body)
	if err != nil {
		return err
	}

	return c.doRequest(agent, response)
}

// Health check implementation

// HealthCheck checks the health of the API
func (c *APIClient) HealthCheck(ctx context.Context) (map[string]string, error) {
	endpoint := routes.HealthCheckURL()
	var response map[string]string
	if err := c.executeRequest(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return map[string]string{}, err
	}
	return response, nil
}

// Job methods implementation

func jobIDParam(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// ListJobs lists the jobs of the acting user
func (c *APIClient) ListJobs(ctx context.Context) ([]models.Job, error) {
	endpoint := routes.GetJobsURL()
	var response types.ListJobsResponse
	if err := c.executeRequest(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return []models.Job{}, err
	}
	return response.Jobs, nil
}

// GetJob retrieves a job by ID
func (c *APIClient) GetJob(ctx context.Context, id uint) (models.Job, error) {
	endpoint := routes.GetJobURL(jobIDParam(id))
	var response types.JobResponse
	if err := c.executeRequest(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return models.Job{}, err
	}
	return response.Job, nil
}

// CreateJob creates a job for the acting user
func (c *APIClient) CreateJob(ctx context.Context, req types.JobRequest) (models.Job, error) {
	endpoint := routes.CreateJobURL()
	var response types.CreateJobResponse
	if err := c.executeRequest(ctx, http.MethodPost, endpoint, req, &response); err != nil {
		return models.Job{}, err
	}
	return response.Job, nil
}

// UpdateJob applies a partial update to a job
func (c *APIClient) UpdateJob(ctx context.Context, id uint, patch models.JobPatch) (models.Job, error) {
	endpoint := routes.UpdateJobURL(jobIDParam(id))
	var response types.JobResponse
	if err := c.executeRequest(ctx, http.MethodPatch, endpoint, patch, &response); err != nil {
		return models.Job{}, err
	}
	return response.Job, nil
}

// DeleteJob deletes a job and returns the acting user's remaining jobs
func (c *APIClient) DeleteJob(ctx context.Context, id uint) ([]models.Job, error) {
	endpoint := routes.DeleteJobURL(jobIDParam(id))
	var response types.DeleteJobResponse
	if err := c.executeRequest(ctx, http.MethodDelete, endpoint, nil, &response); err != nil {
		return []models.Job{}, err
	}
	return response.Updated, nil
}
