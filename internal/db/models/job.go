package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// JobStatus represents where an application currently stands
type JobStatus string

// Job status constants
const (
	// JobStatusApplied indicates the application was sent
	JobStatusApplied JobStatus = "applied"
	// JobStatusInterview indicates an interview is scheduled or done
	JobStatusInterview JobStatus = "interview"
	// JobStatusPending indicates the application is awaiting an answer
	JobStatusPending JobStatus = "pending"
	// JobStatusDeclined indicates the application was turned down
	JobStatusDeclined JobStatus = "declined"
)

// DefaultJobStatus is applied when a job is created without a status
const DefaultJobStatus = JobStatusPending

// ParseJobStatus converts a string representation of a job status to JobStatus type
func ParseJobStatus(str string) (JobStatus, error) {
	for _, status := range []JobStatus{
		JobStatusApplied,
		JobStatusInterview,
		JobStatusPending,
		JobStatusDeclined,
	} {
		if string(status) == str {
			return status, nil
		}
	}
	return "", fmt.Errorf("invalid job status: %s", str)
}

func (s JobStatus) String() string {
	return string(s)
}

// JobType represents the kind of engagement the position offers
type JobType string

// Job type constants
const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeRemote     JobType = "remote"
	JobTypeInternship JobType = "internship"
)

// DefaultJobType is applied when a job is created without a type
const DefaultJobType = JobTypeFullTime

// ParseJobType converts a string representation of a job type to JobType type
func ParseJobType(str string) (JobType, error) {
	for _, jobType := range []JobType{
		JobTypeFullTime,
		JobTypePartTime,
		JobTypeRemote,
		JobTypeInternship,
	} {
		if string(jobType) == str {
			return jobType, nil
		}
	}
	return "", fmt.Errorf("invalid job type: %s", str)
}

func (t JobType) String() string {
	return string(t)
}

// DefaultJobLocation is applied when a job is created without a location
const DefaultJobLocation = "my city"

// Job is a single tracked job application. It belongs to exactly one owner.
type Job struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	OwnerID   uint      `json:"owner_id" gorm:"not null;index"`
	Company   string    `json:"company" gorm:"not null;size:50" validate:"required,max=50"`
	Position  string    `json:"position" gorm:"not null;size:100" validate:"required,max=100"`
	Status    JobStatus `json:"status" gorm:"not null;size:20;index" validate:"oneof=applied interview pending declined"`
	JobType   JobType   `json:"job_type" gorm:"not null;size:20" validate:"oneof=full-time part-time remote internship"`
	Location  string    `json:"location" gorm:"not null;size:100" validate:"max=100"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ApplyDefaults fills the optional fields the caller left empty
func (j *Job) ApplyDefaults() {
	if j.Status == "" {
		j.Status = DefaultJobStatus
	}
	if j.JobType == "" {
		j.JobType = DefaultJobType
	}
	if j.Location == "" {
		j.Location = DefaultJobLocation
	}
}

// Validate checks the job against its schema rules
func (j *Job) Validate() error {
	return validateStruct(j)
}

// BeforeCreate fills defaults and runs the schema rules before insertion
func (j *Job) BeforeCreate(_ *gorm.DB) error {
	j.ApplyDefaults()
	return j.Validate()
}

// BeforeUpdate runs the schema rules before a saved job is written back.
// Defaults are not re-applied: an update that blanks a field must fail.
func (j *Job) BeforeUpdate(_ *gorm.DB) error {
	return j.Validate()
}

// JobPatch is a partial update of a job. Nil fields are left untouched.
//
// There is deliberately no ID or OwnerID field: neither can change after creation.
type JobPatch struct {
	Company  *string    `json:"company,omitempty"`
	Position *string    `json:"position,omitempty"`
	Status   *JobStatus `json:"status,omitempty"`
	JobType  *JobType   `json:"job_type,omitempty"`
	Location *string    `json:"location,omitempty"`
}

// IsEmpty reports whether the patch carries no field at all
func (p JobPatch) IsEmpty() bool {
	return p.Company == nil && p.Position == nil && p.Status == nil &&
		p.JobType == nil && p.Location == nil
}

// ApplyTo merges the patch into the given job
func (p JobPatch) ApplyTo(job *Job) {
	if p.Company != nil {
		job.Company = *p.Company
	}
	if p.Position != nil {
		job.Position = *p.Position
	}
	if p.Status != nil {
		job.Status = *p.Status
	}
	if p.JobType != nil {
		job.JobType = *p.JobType
	}
	if p.Location != nil {
		job.Location = *p.Location
	}
}
