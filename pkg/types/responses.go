// Package types re-exports the job tracker's request and response bodies for API consumers
package types

import (
	internaltypes "github.com/celestiaorg/jobtracker/internal/types"
)

// Slug is the machine readable outcome of an API call
type Slug = internaltypes.Slug

// Slug values
const (
	SuccessSlug      Slug = internaltypes.SuccessSlug
	ErrorSlug        Slug = internaltypes.ErrorSlug
	InvalidInputSlug Slug = internaltypes.InvalidInputSlug
	NotFoundSlug     Slug = internaltypes.NotFoundSlug
	UnauthorizedSlug Slug = internaltypes.UnauthorizedSlug
	ServerErrorSlug  Slug = internaltypes.ServerErrorSlug
)

// SlugResponse is the body of every error response
type SlugResponse = internaltypes.SlugResponse

// Response tags
const (
	MsgAllJobs    = internaltypes.MsgAllJobs
	MsgSingleJob  = internaltypes.MsgSingleJob
	MsgUpdatedJob = internaltypes.MsgUpdatedJob
	MsgJobDeleted = internaltypes.MsgJobDeleted
)

// JobRequest is the body of a create request
type JobRequest = internaltypes.JobRequest

// ListJobsResponse is returned by the list endpoint
type ListJobsResponse = internaltypes.ListJobsResponse

// JobResponse is returned by the get and update endpoints
type JobResponse = internaltypes.JobResponse

// CreateJobResponse is returned by the create endpoint
type CreateJobResponse = internaltypes.CreateJobResponse

// DeleteJobResponse is returned by the delete endpoint
type DeleteJobResponse = internaltypes.DeleteJobResponse
