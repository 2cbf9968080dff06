// Package models re-exports the job tracker's record types for API consumers
package models

import (
	internalmodels "github.com/celestiaorg/jobtracker/internal/db/models"
)

// JobStatus represents where an application stands
type JobStatus = internalmodels.JobStatus

// Job status constants
const (
	// JobStatusApplied indicates the application was sent
	JobStatusApplied JobStatus = internalmodels.JobStatusApplied
	// JobStatusInterview indicates an interview is scheduled or done
	JobStatusInterview JobStatus = internalmodels.JobStatusInterview
	// JobStatusPending indicates no answer yet
	JobStatusPending JobStatus = internalmodels.JobStatusPending
	// JobStatusDeclined indicates the application was rejected
	JobStatusDeclined JobStatus = internalmodels.JobStatusDeclined
)

// JobType represents the kind of engagement
type JobType = internalmodels.JobType

// Job type constants
const (
	JobTypeFullTime   JobType = internalmodels.JobTypeFullTime
	JobTypePartTime   JobType = internalmodels.JobTypePartTime
	JobTypeRemote     JobType = internalmodels.JobTypeRemote
	JobTypeInternship JobType = internalmodels.JobTypeInternship
)

// Defaults applied by the server when a field is omitted on create
const (
	DefaultJobStatus   = internalmodels.DefaultJobStatus
	DefaultJobType     = internalmodels.DefaultJobType
	DefaultJobLocation = internalmodels.DefaultJobLocation
)

// Job is a tracked job application
type Job = internalmodels.Job

// JobPatch carries the fields of a partial update
type JobPatch = internalmodels.JobPatch

// ErrInvalidJob is returned when a job fails schema validation
var ErrInvalidJob = internalmodels.ErrInvalidJob

// ParseJobStatus converts a string to a JobStatus.
var ParseJobStatus = internalmodels.ParseJobStatus

// ParseJobType converts a string to a JobType.
var ParseJobType = internalmodels.ParseJobType
